package repository

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// AdminMessageRepository define el puerto de persistencia para AdminMessage.
type AdminMessageRepository interface {
	Create(ctx context.Context, m *entity.AdminMessage) error
	List(ctx context.Context) ([]*entity.AdminMessage, error)
	Delete(ctx context.Context, id string) (bool, error)
}
