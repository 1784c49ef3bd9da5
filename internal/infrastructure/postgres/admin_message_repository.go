package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

var _ repository.AdminMessageRepository = (*AdminMessageRepo)(nil)

// AdminMessageRepo persistencia de comunicados del superadmin.
type AdminMessageRepo struct {
	q Querier
}

func NewAdminMessageRepository(q Querier) *AdminMessageRepo {
	return &AdminMessageRepo{q: q}
}

func (r *AdminMessageRepo) Create(ctx context.Context, m *entity.AdminMessage) error {
	recipients, readBy := m.Recipients, m.ReadBy
	if recipients == nil {
		recipients = []string{}
	}
	if readBy == nil {
		readBy = []string{}
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO admin_messages (id, subject, body, recipients, category, sent_at, read_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Subject, m.Body, recipients, m.Category, m.SentAt, readBy,
	)
	if err != nil {
		return fmt.Errorf("insert admin message: %w", err)
	}
	return nil
}

// List devuelve los comunicados, más recientes primero.
func (r *AdminMessageRepo) List(ctx context.Context) ([]*entity.AdminMessage, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, subject, body, recipients, category, sent_at, read_by FROM admin_messages ORDER BY sent_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list admin messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.AdminMessage
	for rows.Next() {
		var m entity.AdminMessage
		if err := rows.Scan(&m.ID, &m.Subject, &m.Body, &m.Recipients, &m.Category, &m.SentAt, &m.ReadBy); err != nil {
			return nil, fmt.Errorf("scan admin message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *AdminMessageRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM admin_messages WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete admin message: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
