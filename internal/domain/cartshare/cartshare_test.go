package cartshare

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func TestRoundTrip(t *testing.T) {
	cases := [][]entity.CartItem{
		{},
		{{ProductID: "p1", Name: "Café de Nariño", Price: "25000", Quantity: 2}},
		{
			{ProductID: "p1", Name: "Arepa ñ 🌽", Price: "3.50", Quantity: 1, ImagePreviewURL: "https://img/1.png"},
			{ProductID: "p2", Name: "Jugo", Price: "a convenir", Quantity: 10},
		},
	}
	for _, items := range cases {
		code, err := Encode(items)
		require.NoError(t, err)
		got, err := Decode(code)
		require.NoError(t, err)
		if diff := cmp.Diff(items, got); diff != "" {
			t.Errorf("round-trip (-want +got):\n%s", diff)
		}
	}
}

func TestDecode_RechazaListaCompleta(t *testing.T) {
	cases := map[string]string{
		"sin quantity":       `[{"productId":"a","name":"n","price":"1","quantity":1},{"productId":"b","name":"n","price":"1"}]`,
		"quantity cero":      `[{"productId":"a","name":"n","price":"1","quantity":0}]`,
		"quantity negativa":  `[{"productId":"a","name":"n","price":"1","quantity":-2}]`,
		"quantity texto":     `[{"productId":"a","name":"n","price":"1","quantity":"2"}]`,
		"price numérico":     `[{"productId":"a","name":"n","price":1,"quantity":1}]`,
		"sin productId":      `[{"name":"n","price":"1","quantity":1}]`,
		"productId en mayús": `[{"PRODUCTID":"a","name":"n","price":"1","quantity":1}]`,
		"quantity en mayús":  `[{"productId":"a","name":"n","price":"1","Quantity":1}]`,
		"quantity fracción":  `[{"productId":"a","name":"n","price":"1","quantity":1.5}]`,
		"no es arreglo":      `{"productId":"a"}`,
		"elemento no objeto": `[1]`,
		"null":               `null`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(b64(payload))
			assert.ErrorIs(t, err, ErrInvalidSharedCart)
			assert.Nil(t, got)
		})
	}
}

func TestDecode_TextoNoBase64(t *testing.T) {
	_, err := Decode("%%%no-base64%%%")
	assert.ErrorIs(t, err, ErrInvalidSharedCart)

	_, err = Decode("")
	assert.ErrorIs(t, err, ErrInvalidSharedCart)
}

func TestDecode_EspacioComoMas(t *testing.T) {
	items := []entity.CartItem{{ProductID: "p?>", Name: "ü>>?", Price: "1", Quantity: 1}}
	code, err := Encode(items)
	require.NoError(t, err)

	got, err := Decode(strings.ReplaceAll(code, "+", " "))
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]entity.CartItem{{ProductID: "a", Quantity: 1}}))
	assert.ErrorIs(t, Validate([]entity.CartItem{{ProductID: "a", Quantity: 0}}), ErrInvalidSharedCart)
}
