package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

const storeColumns = `id, user_id, business_name, onboarding_status, created_at, updated_at`

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una tienda.
func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stores (`+storeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.UserID, s.BusinessName, string(s.OnboardingStatus), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	s, err := scanStore(r.q.QueryRow(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	return s, nil
}

// GetByUserID obtiene la tienda de un usuario.
func (r *StoreRepo) GetByUserID(ctx context.Context, userID string) (*entity.Store, error) {
	s, err := scanStore(r.q.QueryRow(ctx, `SELECT `+storeColumns+` FROM stores WHERE user_id = $1`, userID))
	if err != nil {
		return nil, fmt.Errorf("get store by user: %w", err)
	}
	return s, nil
}

// Update actualiza nombre y estado de onboarding.
func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE stores SET business_name = $2, onboarding_status = $3, updated_at = $4 WHERE id = $1`,
		s.ID, s.BusinessName, string(s.OnboardingStatus), s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateOnboardingStatus cambia solo la etapa de onboarding.
func (r *StoreRepo) UpdateOnboardingStatus(ctx context.Context, storeID string, status entity.OnboardingStatus) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE stores SET onboarding_status = $2, updated_at = now() WHERE id = $1`,
		storeID, string(status),
	)
	if err != nil {
		return fmt.Errorf("update onboarding status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanStore(row pgx.Row) (*entity.Store, error) {
	var s entity.Store
	var status string
	if err := row.Scan(&s.ID, &s.UserID, &s.BusinessName, &status, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	s.OnboardingStatus = entity.OnboardingStatus(status)
	return &s, nil
}
