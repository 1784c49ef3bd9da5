package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus estado de publicación del producto.
type ProductStatus string

const (
	ProductActive     ProductStatus = "Activo"
	ProductInactive   ProductStatus = "Inactivo"
	ProductOutOfStock ProductStatus = "Agotado"
)

// Valid indica si el estado es conocido.
func (s ProductStatus) Valid() bool {
	return s == ProductActive || s == ProductInactive || s == ProductOutOfStock
}

// Toggled devuelve el estado tras el interruptor rápido: Activo→Inactivo, el resto→Activo.
func (s ProductStatus) Toggled() ProductStatus {
	if s == ProductActive {
		return ProductInactive
	}
	return ProductActive
}

// PredefinedCategories categorías ofrecidas al comerciante y aceptadas por la sugerencia IA.
var PredefinedCategories = []string{
	"Ropa y Accesorios",
	"Alimentos y Bebidas",
	"Tecnología y Electrónicos",
	"Hogar y Jardín",
	"Belleza y Cuidado Personal",
	"Deportes y Aire Libre",
	"Juguetes y Juegos",
	"Libros y Multimedia",
	"Servicios",
	"Otro",
}

// Product producto del catálogo de una tienda.
// Price se guarda como texto tal como lo escribió el comerciante; puede no ser numérico.
type Product struct {
	ID                   string
	StoreID              string
	Name                 string
	Category             string
	Price                string
	Idea                 string
	GeneratedDescription string
	ImageURLs            []string
	Status               ProductStatus
	Stock                *int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NumericPrice devuelve el precio como decimal y si es numérico.
func (p *Product) NumericPrice() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(p.Price))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FirstImage devuelve la primera imagen o vacío.
func (p *Product) FirstImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

// Duplicate copia el producto con nombre "(Copia)" y estado Inactivo.
func (p *Product) Duplicate(newID string, now time.Time) *Product {
	cp := *p
	cp.ID = newID
	cp.Name = p.Name + " (Copia)"
	cp.Status = ProductInactive
	cp.ImageURLs = append([]string(nil), p.ImageURLs...)
	if p.Stock != nil {
		s := *p.Stock
		cp.Stock = &s
	}
	cp.CreatedAt = now
	cp.UpdatedAt = now
	return &cp
}
