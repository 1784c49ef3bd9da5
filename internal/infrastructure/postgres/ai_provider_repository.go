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

var _ repository.AIProviderRepository = (*AIProviderRepo)(nil)

const aiProviderColumns = `id, provider_name, api_key, endpoint_url, status, is_default, monthly_limit, daily_limit,
	per_user_limit, avg_response_time_ms, success_rate_percent, created_at, updated_at`

// AIProviderRepo implementación del puerto AIProviderRepository sobre PostgreSQL.
// El índice único parcial uq_ai_providers_default garantiza un solo proveedor por defecto.
type AIProviderRepo struct {
	q Querier
}

func NewAIProviderRepository(q Querier) *AIProviderRepo {
	return &AIProviderRepo{q: q}
}

func (r *AIProviderRepo) Create(ctx context.Context, p *entity.AIProviderConfig) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO ai_providers (`+aiProviderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.ProviderName, p.APIKey, p.EndpointURL, p.Status, p.IsDefault, p.MonthlyLimit, p.DailyLimit,
		p.PerUserLimit, p.AvgResponseTimeMs, p.SuccessRatePercent, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert ai provider: %w", err)
	}
	return nil
}

func (r *AIProviderRepo) GetByID(ctx context.Context, id string) (*entity.AIProviderConfig, error) {
	p, err := scanAIProvider(r.q.QueryRow(ctx, `SELECT `+aiProviderColumns+` FROM ai_providers WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get ai provider: %w", err)
	}
	return p, nil
}

func (r *AIProviderRepo) Update(ctx context.Context, p *entity.AIProviderConfig) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE ai_providers SET provider_name = $2, api_key = $3, endpoint_url = $4, status = $5, is_default = $6,
			monthly_limit = $7, daily_limit = $8, per_user_limit = $9, avg_response_time_ms = $10,
			success_rate_percent = $11, updated_at = $12
		WHERE id = $1`,
		p.ID, p.ProviderName, p.APIKey, p.EndpointURL, p.Status, p.IsDefault, p.MonthlyLimit, p.DailyLimit,
		p.PerUserLimit, p.AvgResponseTimeMs, p.SuccessRatePercent, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update ai provider: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AIProviderRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM ai_providers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete ai provider: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *AIProviderRepo) List(ctx context.Context) ([]*entity.AIProviderConfig, error) {
	rows, err := r.q.Query(ctx, `SELECT `+aiProviderColumns+` FROM ai_providers ORDER BY is_default DESC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list ai providers: %w", err)
	}
	defer rows.Close()
	var list []*entity.AIProviderConfig
	for rows.Next() {
		p, err := scanAIProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ai provider: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetDefault devuelve el proveedor por defecto si está activo.
func (r *AIProviderRepo) GetDefault(ctx context.Context) (*entity.AIProviderConfig, error) {
	p, err := scanAIProvider(r.q.QueryRow(ctx,
		`SELECT `+aiProviderColumns+` FROM ai_providers WHERE is_default AND status = $1 LIMIT 1`, entity.AIProviderActive))
	if err != nil {
		return nil, fmt.Errorf("get default ai provider: %w", err)
	}
	return p, nil
}

func (r *AIProviderRepo) ClearDefault(ctx context.Context, exceptID string) error {
	if _, err := r.q.Exec(ctx,
		`UPDATE ai_providers SET is_default = FALSE, updated_at = now() WHERE is_default AND id::text <> $1`, exceptID); err != nil {
		return fmt.Errorf("clear default ai provider: %w", err)
	}
	return nil
}

func scanAIProvider(row pgx.Row) (*entity.AIProviderConfig, error) {
	var p entity.AIProviderConfig
	err := row.Scan(&p.ID, &p.ProviderName, &p.APIKey, &p.EndpointURL, &p.Status, &p.IsDefault,
		&p.MonthlyLimit, &p.DailyLimit, &p.PerUserLimit, &p.AvgResponseTimeMs, &p.SuccessRatePercent,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
