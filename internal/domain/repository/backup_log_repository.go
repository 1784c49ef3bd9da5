package repository

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// BackupLogRepository define el puerto de persistencia para BackupLog.
type BackupLogRepository interface {
	Create(ctx context.Context, log *entity.BackupLog) error
	GetByID(ctx context.Context, id string) (*entity.BackupLog, error)
	Update(ctx context.Context, log *entity.BackupLog) error
	List(ctx context.Context) ([]*entity.BackupLog, error)
	Delete(ctx context.Context, id string) (bool, error)
}
