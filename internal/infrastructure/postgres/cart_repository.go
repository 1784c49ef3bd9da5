package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo guarda el carrito de cada tienda como documento JSONB.
type CartRepo struct {
	q Querier
}

func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Get devuelve las líneas del carrito; lista vacía si la tienda aún no tiene carrito.
func (r *CartRepo) Get(ctx context.Context, storeID string) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.q.QueryRow(ctx, `SELECT items FROM carts WHERE store_id = $1`, storeID).Scan(&items)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []entity.CartItem{}, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if items == nil {
		items = []entity.CartItem{}
	}
	return items, nil
}

// Save reemplaza el carrito completo (upsert).
func (r *CartRepo) Save(ctx context.Context, storeID string, items []entity.CartItem) error {
	if items == nil {
		items = []entity.CartItem{}
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO carts (store_id, items, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (store_id) DO UPDATE SET items = EXCLUDED.items, updated_at = now()`,
		storeID, items,
	)
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
