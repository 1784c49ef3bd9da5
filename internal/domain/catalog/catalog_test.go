package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

var base = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func prod(id, name, price string, day int) *entity.Product {
	return &entity.Product{
		ID: id, Name: name, Price: price, Status: entity.ProductActive,
		Category: "Otro", CreatedAt: base.AddDate(0, 0, day),
	}
}

func ids(ps []*entity.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestSort_PriceAsc_NoNumericosAlFinal(t *testing.T) {
	ps := []*entity.Product{
		prod("a", "A", "consultar", 1),
		prod("b", "B", "10", 2),
		prod("c", "C", "0", 3),
		prod("d", "D", "", 4),
		prod("e", "E", "5.5", 5),
	}
	Sort(ps, SortPriceAsc)
	assert.Equal(t, []string{"c", "e", "b", "a", "d"}, ids(ps))
}

func TestSort_PriceDesc_NoNumericosAlInicio(t *testing.T) {
	ps := []*entity.Product{
		prod("b", "B", "10", 2),
		prod("a", "A", "consultar", 1),
		prod("c", "C", "0", 3),
		prod("e", "E", "5.5", 5),
	}
	Sort(ps, SortPriceDesc)
	assert.Equal(t, []string{"a", "b", "e", "c"}, ids(ps))
}

func TestSort_Fechas(t *testing.T) {
	ps := []*entity.Product{prod("a", "A", "1", 2), prod("b", "B", "1", 1), prod("c", "C", "1", 3)}

	Sort(ps, SortDateAsc)
	assert.Equal(t, []string{"b", "a", "c"}, ids(ps))

	Sort(ps, "clave-rara")
	assert.Equal(t, []string{"c", "a", "b"}, ids(ps))
}

func TestSort_NombreEspanol(t *testing.T) {
	ps := []*entity.Product{prod("1", "ñame", "1", 0), prod("2", "Zanahoria", "1", 0), prod("3", "nuez", "1", 0), prod("4", "Árbol", "1", 0)}
	Sort(ps, SortNameAsc)
	assert.Equal(t, []string{"4", "3", "1", "2"}, ids(ps))

	Sort(ps, SortNameDesc)
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(ps))
}

func TestApply_Filtros(t *testing.T) {
	cafe := prod("1", "Café Especial", "20", 1)
	cafe.Idea = "granos tostados"
	jugo := prod("2", "Jugo", "5", 2)
	jugo.Category = "Alimentos y Bebidas"
	jugo.Idea = "naranja con CAFÉ"
	taza := prod("3", "Taza", "8", 3)
	taza.Status = entity.ProductInactive

	all := []*entity.Product{cafe, jugo, taza}

	assert.Equal(t, []string{"2", "1"}, ids(Apply(all, Query{Search: "cafe"})))
	assert.Equal(t, []string{"1"}, ids(Apply(all, Query{Search: "TOSTADOS"})))
	assert.Equal(t, []string{"2"}, ids(Apply(all, Query{Category: "Alimentos y Bebidas"})))
	assert.Equal(t, []string{"3"}, ids(Apply(all, Query{Status: entity.ProductInactive})))
	assert.Len(t, Apply(all, Query{}), 3)
	assert.Empty(t, Apply(all, Query{Search: "zzz"}))

	// La entrada conserva su orden.
	assert.Equal(t, []string{"1", "2", "3"}, ids(all))
}

func TestMatchCategory(t *testing.T) {
	got, ok := MatchCategory("  tecnologia y electronicos ")
	assert.True(t, ok)
	assert.Equal(t, "Tecnología y Electrónicos", got)

	_, ok = MatchCategory("Mascotas")
	assert.False(t, ok)
}
