package repository

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// AIProviderRepository define el puerto de persistencia para AIProviderConfig.
type AIProviderRepository interface {
	Create(ctx context.Context, p *entity.AIProviderConfig) error
	GetByID(ctx context.Context, id string) (*entity.AIProviderConfig, error)
	Update(ctx context.Context, p *entity.AIProviderConfig) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*entity.AIProviderConfig, error)
	// GetDefault devuelve el proveedor por defecto activo, o (nil, nil).
	GetDefault(ctx context.Context) (*entity.AIProviderConfig, error)
	// ClearDefault quita la marca de defecto a todos excepto exceptID.
	ClearDefault(ctx context.Context, exceptID string) error
}
