package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo guarda la configuración de la tienda como documento JSONB.
type SettingsRepo struct {
	q Querier
}

func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve (nil, nil) si la tienda no ha guardado configuración.
func (r *SettingsRepo) Get(ctx context.Context, storeID string) (*entity.BusinessSettings, error) {
	var s entity.BusinessSettings
	err := r.q.QueryRow(ctx, `SELECT data FROM business_settings WHERE store_id = $1`, storeID).Scan(&s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Save reemplaza el documento completo; la mezcla de campos la hace el caso de uso.
func (r *SettingsRepo) Save(ctx context.Context, storeID string, s *entity.BusinessSettings) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO business_settings (store_id, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (store_id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		storeID, s,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
