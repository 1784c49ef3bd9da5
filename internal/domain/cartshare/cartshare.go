// Package cartshare codifica un carrito en un texto apto para URL y lo decodifica validándolo.
package cartshare

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// ErrInvalidSharedCart el texto no es un carrito compartido válido.
var ErrInvalidSharedCart = errors.New("carrito compartido inválido")

// Encode serializa los ítems a JSON y los codifica en base64 estándar.
func Encode(items []entity.CartItem) (string, error) {
	if items == nil {
		items = []entity.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("cartshare: serializar: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode invierte Encode. Cualquier ítem inválido invalida la lista completa.
func Decode(code string) ([]entity.CartItem, error) {
	// Un '+' que viajó en query string sin escapar llega como espacio.
	code = strings.ReplaceAll(strings.TrimSpace(code), " ", "+")
	if code == "" {
		return nil, ErrInvalidSharedCart
	}
	raw, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		// Tolerar la variante URL-safe sin relleno.
		raw, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(code, "="))
		if err != nil {
			return nil, ErrInvalidSharedCart
		}
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return nil, ErrInvalidSharedCart
	}
	items := make([]entity.CartItem, 0, len(list))
	for _, elem := range list {
		item, ok := validateItem(elem)
		if !ok {
			return nil, ErrInvalidSharedCart
		}
		items = append(items, item)
	}
	return items, nil
}

// Validate aplica a una lista ya decodificada las mismas reglas que Decode.
func Validate(items []entity.CartItem) error {
	for _, it := range items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return ErrInvalidSharedCart
		}
	}
	return nil
}

func validateItem(elem json.RawMessage) (entity.CartItem, bool) {
	trimmed := bytes.TrimSpace(elem)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return entity.CartItem{}, false
	}
	// Claves exactas; un struct aceptaría "PRODUCTID".
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return entity.CartItem{}, false
	}
	var out entity.CartItem
	if !asString(fields["productId"], &out.ProductID) || !asString(fields["name"], &out.Name) || !asString(fields["price"], &out.Price) {
		return entity.CartItem{}, false
	}
	var qty float64
	if raw := fields["quantity"]; len(raw) == 0 || json.Unmarshal(raw, &qty) != nil || qty <= 0 {
		return entity.CartItem{}, false
	}
	if qty != float64(int(qty)) {
		return entity.CartItem{}, false
	}
	out.Quantity = int(qty)
	if img := fields["imagePreviewUrl"]; len(img) > 0 && string(img) != "null" {
		if !asString(img, &out.ImagePreviewURL) {
			return entity.CartItem{}, false
		}
	}
	return out, true
}

// asString exige un string JSON (no número, no null).
func asString(raw json.RawMessage, dst *string) bool {
	if len(raw) == 0 || raw[0] != '"' {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}
