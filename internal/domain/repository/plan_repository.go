package repository

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// PlanRepository define el puerto de persistencia para SubscriptionPlan.
type PlanRepository interface {
	Create(ctx context.Context, plan *entity.SubscriptionPlan) error
	GetByID(ctx context.Context, id string) (*entity.SubscriptionPlan, error)
	GetByName(ctx context.Context, name string) (*entity.SubscriptionPlan, error)
	Update(ctx context.Context, plan *entity.SubscriptionPlan) error
	List(ctx context.Context) ([]*entity.SubscriptionPlan, error)
}
