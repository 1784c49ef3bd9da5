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

var _ repository.BackupLogRepository = (*BackupLogRepo)(nil)

const backupLogColumns = `id, type, account_id, "timestamp", status, file_path, size_mb, triggered_by, error`

// BackupLogRepo bitácora de respaldos.
type BackupLogRepo struct {
	q Querier
}

func NewBackupLogRepository(q Querier) *BackupLogRepo {
	return &BackupLogRepo{q: q}
}

func (r *BackupLogRepo) Create(ctx context.Context, l *entity.BackupLog) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO backup_logs (`+backupLogColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		l.ID, l.Type, nullIfEmpty(l.AccountID), l.Timestamp, l.Status, l.FilePath, l.SizeMB, l.TriggeredBy, l.Error,
	)
	if err != nil {
		return fmt.Errorf("insert backup log: %w", err)
	}
	return nil
}

func (r *BackupLogRepo) GetByID(ctx context.Context, id string) (*entity.BackupLog, error) {
	l, err := scanBackupLog(r.q.QueryRow(ctx, `SELECT `+backupLogColumns+` FROM backup_logs WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get backup log: %w", err)
	}
	return l, nil
}

// Update registra el resultado del respaldo.
func (r *BackupLogRepo) Update(ctx context.Context, l *entity.BackupLog) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE backup_logs SET status = $2, file_path = $3, size_mb = $4, error = $5 WHERE id = $1`,
		l.ID, l.Status, l.FilePath, l.SizeMB, l.Error,
	)
	if err != nil {
		return fmt.Errorf("update backup log: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BackupLogRepo) List(ctx context.Context) ([]*entity.BackupLog, error) {
	rows, err := r.q.Query(ctx, `SELECT `+backupLogColumns+` FROM backup_logs ORDER BY "timestamp" DESC`)
	if err != nil {
		return nil, fmt.Errorf("list backup logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.BackupLog
	for rows.Next() {
		l, err := scanBackupLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan backup log: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *BackupLogRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM backup_logs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete backup log: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanBackupLog(row pgx.Row) (*entity.BackupLog, error) {
	var l entity.BackupLog
	var accountID *string
	err := row.Scan(&l.ID, &l.Type, &accountID, &l.Timestamp, &l.Status, &l.FilePath, &l.SizeMB, &l.TriggeredBy, &l.Error)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	l.AccountID = derefString(accountID)
	return &l, nil
}
