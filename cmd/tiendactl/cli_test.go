package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendapyme-api/internal/application/superadmin"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/infrastructure/memory"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCart_EncodeDecode(t *testing.T) {
	in := `[{"productId":"p1","name":"Vela de soya","price":"15000","quantity":2}]`
	code, err := run(t, in, "cart", "encode")
	require.NoError(t, err)
	code = strings.TrimSpace(code)
	require.NotEmpty(t, code)

	out, err := run(t, "", "cart", "decode", code)
	require.NoError(t, err)
	var items []entity.CartItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Vela de soya", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCart_DecodeInvalido(t *testing.T) {
	_, err := run(t, "", "cart", "decode", "no-es-base64!!")
	assert.Error(t, err)
}

func TestLoadPlans_ArchivoPorDefecto(t *testing.T) {
	fh, err := os.Open("../../configs/plans.yaml")
	require.NoError(t, err)
	defer fh.Close()

	plans, err := loadPlans(fh)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "Gratis", plans[0].Name)
	assert.True(t, plans[0].Price.IsZero())
	require.NotNil(t, plans[0].Limits.MaxProducts)
	assert.Equal(t, 10, *plans[0].Limits.MaxProducts)
	assert.True(t, plans[1].Price.Equal(decimal.NewFromInt(29900)))
	assert.Nil(t, plans[2].Limits.MaxProducts, "sin límite")
}

func TestLoadPlans_Errores(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"precio inválido", "plans:\n  - name: X\n    price: gratis\n"},
		{"sin nombre", "plans:\n  - price: \"1\"\n"},
		{"campo desconocido", "plans:\n  - name: X\n    price: \"1\"\n    color: azul\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadPlans(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestSeedPlans_Idempotente(t *testing.T) {
	fh, err := os.Open("../../configs/plans.yaml")
	require.NoError(t, err)
	defer fh.Close()
	plans, err := loadPlans(fh)
	require.NoError(t, err)

	repo := memory.NewPlanRepository(memory.NewDB())
	uc := superadmin.NewPlanUseCase(repo)
	ctx := context.Background()

	var first, second bytes.Buffer
	require.NoError(t, seedPlans(ctx, uc, plans, &first))
	require.NoError(t, seedPlans(ctx, uc, plans, &second))

	assert.Equal(t, 3, strings.Count(first.String(), "creado"))
	assert.Equal(t, 3, strings.Count(second.String(), "actualizado"))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
