// Package catalog filtra y ordena el listado de productos de una tienda.
package catalog

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// Claves de orden.
const (
	SortDateDesc  = "date-desc"
	SortDateAsc   = "date-asc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// Query criterios de filtro y orden. Campos vacíos no filtran.
type Query struct {
	Search   string
	Category string
	Status   entity.ProductStatus
	Sort     string
}

// fold normaliza para comparar sin mayúsculas ni tildes.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

// Apply devuelve una lista nueva filtrada y ordenada; la entrada no se modifica.
func Apply(products []*entity.Product, q Query) []*entity.Product {
	needle := fold(strings.TrimSpace(q.Search))
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !strings.Contains(fold(p.Name), needle) && !strings.Contains(fold(p.Idea), needle) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Status != "" && p.Status != q.Status {
			continue
		}
		out = append(out, p)
	}
	Sort(out, q.Sort)
	return out
}

// Sort ordena in-place de forma estable. Claves desconocidas usan date-desc.
// Los precios no numéricos quedan al final en price-asc y al inicio en price-desc.
func Sort(products []*entity.Product, key string) {
	switch key {
	case SortDateAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		})
	case SortNameAsc, SortNameDesc:
		col := collate.New(language.Spanish, collate.IgnoreCase)
		desc := key == SortNameDesc
		sort.SliceStable(products, func(i, j int) bool {
			c := col.CompareString(products[i].Name, products[j].Name)
			if desc {
				return c > 0
			}
			return c < 0
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return lessPrice(products[i], products[j], false)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return lessPrice(products[i], products[j], true)
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

// lessPrice trata un precio no numérico como +∞ en ambas direcciones.
func lessPrice(a, b *entity.Product, desc bool) bool {
	pa, okA := a.NumericPrice()
	pb, okB := b.NumericPrice()
	switch {
	case !okA && !okB:
		return false
	case !okA:
		return desc
	case !okB:
		return !desc
	}
	if desc {
		return pa.GreaterThan(pb)
	}
	return pa.LessThan(pb)
}

// MatchCategory busca la categoría predefinida equivalente, sin distinguir mayúsculas ni tildes.
func MatchCategory(s string) (string, bool) {
	needle := fold(strings.TrimSpace(s))
	if needle == "" {
		return "", false
	}
	for _, c := range entity.PredefinedCategories {
		if fold(c) == needle {
			return c, true
		}
	}
	return "", false
}
