package repository

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// CartRepository un carrito por tienda. Get devuelve lista vacía si no hay carrito.
type CartRepository interface {
	Get(ctx context.Context, storeID string) ([]entity.CartItem, error)
	Save(ctx context.Context, storeID string, items []entity.CartItem) error
}
