package repository

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// SettingsRepository documento de configuración por tienda. Get devuelve (nil, nil) si no existe.
type SettingsRepository interface {
	Get(ctx context.Context, storeID string) (*entity.BusinessSettings, error)
	Save(ctx context.Context, storeID string, settings *entity.BusinessSettings) error
}
