package repository

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product. Todo se acota a la tienda.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, storeID, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, storeID, id string) (bool, error)
	ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error)
	CountByStore(ctx context.Context, storeID string) (int, error)
}
