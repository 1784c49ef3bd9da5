package repository

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	UpdateOnboardingStatus(ctx context.Context, storeID string, status entity.OnboardingStatus) error
}
