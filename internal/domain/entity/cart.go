package entity

import "github.com/shopspring/decimal"

// CartItem línea del carrito. Se persiste como JSONB y viaja en el enlace compartido,
// por eso lleva tags JSON con los nombres del cliente.
type CartItem struct {
	ProductID       string `json:"productId"`
	Name            string `json:"name"`
	Price           string `json:"price"`
	Quantity        int    `json:"quantity"`
	ImagePreviewURL string `json:"imagePreviewUrl,omitempty"`
}

// Subtotal precio × cantidad; un precio no numérico cuenta como 0.
func (i CartItem) Subtotal() decimal.Decimal {
	p, err := decimal.NewFromString(i.Price)
	if err != nil {
		return decimal.Zero
	}
	return p.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotal suma de subtotales.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// SyncCartWithProduct refresca nombre, precio e imagen de las líneas del producto.
// Devuelve true si alguna línea cambió.
func SyncCartWithProduct(items []CartItem, p *Product) bool {
	changed := false
	for i := range items {
		if items[i].ProductID != p.ID {
			continue
		}
		img := p.FirstImage()
		if items[i].Name != p.Name || items[i].Price != p.Price || items[i].ImagePreviewURL != img {
			items[i].Name = p.Name
			items[i].Price = p.Price
			items[i].ImagePreviewURL = img
			changed = true
		}
	}
	return changed
}

// RemoveFromCart quita las líneas del producto. Devuelve la lista nueva y si cambió.
func RemoveFromCart(items []CartItem, productID string) ([]CartItem, bool) {
	out := make([]CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out, len(out) != len(items)
}
