package repository

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, storeID, id string) (*entity.Order, error)
	ListByStore(ctx context.Context, storeID string) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, order *entity.Order) error
}
