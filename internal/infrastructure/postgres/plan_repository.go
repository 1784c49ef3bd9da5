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

var _ repository.PlanRepository = (*PlanRepo)(nil)

const planColumns = `id, name, price, price_suffix, features, limits, is_popular, is_archived, created_at, updated_at`

// PlanRepo implementación del puerto PlanRepository sobre PostgreSQL.
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador de persistencia para planes.
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// Create persiste un plan. Nombre repetido devuelve domain.ErrDuplicate.
func (r *PlanRepo) Create(ctx context.Context, p *entity.SubscriptionPlan) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO subscription_plans (`+planColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Name, p.Price, p.PriceSuffix, planFeatures(p), p.Limits, p.IsPopular, p.IsArchived, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

func (r *PlanRepo) GetByID(ctx context.Context, id string) (*entity.SubscriptionPlan, error) {
	p, err := scanPlan(r.q.QueryRow(ctx, `SELECT `+planColumns+` FROM subscription_plans WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

func (r *PlanRepo) GetByName(ctx context.Context, name string) (*entity.SubscriptionPlan, error) {
	p, err := scanPlan(r.q.QueryRow(ctx, `SELECT `+planColumns+` FROM subscription_plans WHERE name = $1`, name))
	if err != nil {
		return nil, fmt.Errorf("get plan by name: %w", err)
	}
	return p, nil
}

// Update reemplaza los campos del plan (incluye archivado).
func (r *PlanRepo) Update(ctx context.Context, p *entity.SubscriptionPlan) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE subscription_plans SET name = $2, price = $3, price_suffix = $4, features = $5, limits = $6,
			is_popular = $7, is_archived = $8, updated_at = $9
		WHERE id = $1`,
		p.ID, p.Name, p.Price, p.PriceSuffix, planFeatures(p), p.Limits, p.IsPopular, p.IsArchived, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update plan: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los planes ordenados por precio.
func (r *PlanRepo) List(ctx context.Context) ([]*entity.SubscriptionPlan, error) {
	rows, err := r.q.Query(ctx, `SELECT `+planColumns+` FROM subscription_plans ORDER BY price ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubscriptionPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func planFeatures(p *entity.SubscriptionPlan) []entity.PlanFeature {
	if p.Features == nil {
		return []entity.PlanFeature{}
	}
	return p.Features
}

func scanPlan(row pgx.Row) (*entity.SubscriptionPlan, error) {
	var p entity.SubscriptionPlan
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.PriceSuffix, &p.Features, &p.Limits,
		&p.IsPopular, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
