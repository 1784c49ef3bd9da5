package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
)

var _ ports.BackupSource = (*BackupExporter)(nil)

// tablas del respaldo completo y el filtro por cuenta de cada una ($1 = user id).
var backupTables = []struct {
	name          string
	accountFilter string
}{
	{"subscription_plans", ""},
	{"users", "id = $1"},
	{"stores", "user_id = $1"},
	{"products", "store_id IN (SELECT id FROM stores WHERE user_id = $1)"},
	{"carts", "store_id IN (SELECT id FROM stores WHERE user_id = $1)"},
	{"orders", "store_id IN (SELECT id FROM stores WHERE user_id = $1)"},
	{"business_settings", "store_id IN (SELECT id FROM stores WHERE user_id = $1)"},
	{"ai_providers", ""},
	{"admin_messages", "recipients ? $1::text"},
	{"backup_logs", ""},
}

// BackupExporter lee cada tabla como un arreglo JSON usando json_agg.
type BackupExporter struct {
	q Querier
}

func NewBackupExporter(q Querier) *BackupExporter {
	return &BackupExporter{q: q}
}

// Snapshot devuelve {tabla: [filas]}. Las tablas globales se omiten en respaldos por cuenta.
func (e *BackupExporter) Snapshot(ctx context.Context, accountID string) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(backupTables))
	for _, t := range backupTables {
		var (
			raw  []byte
			err  error
			base = `SELECT COALESCE(json_agg(t), '[]'::json) FROM ` + t.name + ` t`
		)
		switch {
		case accountID == "":
			err = e.q.QueryRow(ctx, base).Scan(&raw)
		case t.accountFilter != "":
			err = e.q.QueryRow(ctx, base+` WHERE `+t.accountFilter, accountID).Scan(&raw)
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", t.name, err)
		}
		out[t.name] = raw
	}
	return out, nil
}
