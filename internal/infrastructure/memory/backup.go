package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
)

var _ ports.BackupSource = (*BackupExporter)(nil)

// BackupExporter vuelca las tablas en memoria con el mismo formato que el exportador de PostgreSQL.
type BackupExporter struct{ db *DB }

func NewBackupExporter(db *DB) *BackupExporter { return &BackupExporter{db: db} }

func (e *BackupExporter) Snapshot(_ context.Context, accountID string) (map[string]json.RawMessage, error) {
	e.db.mu.RLock()
	defer e.db.mu.RUnlock()

	tables := map[string][]any{}
	add := func(name string, row any) { tables[name] = append(tables[name], row) }

	storeIDs := map[string]bool{}
	for _, u := range e.db.users {
		if accountID == "" || u.ID == accountID {
			add("users", u)
		}
	}
	for _, s := range e.db.stores {
		if accountID == "" || s.UserID == accountID {
			storeIDs[s.ID] = true
			add("stores", s)
		}
	}
	for _, p := range e.db.products {
		if storeIDs[p.StoreID] {
			add("products", p)
		}
	}
	for sid, items := range e.db.carts {
		if storeIDs[sid] {
			add("carts", map[string]any{"store_id": sid, "items": items})
		}
	}
	for _, o := range e.db.orders {
		if storeIDs[o.StoreID] {
			add("orders", o)
		}
	}
	for sid, s := range e.db.settings {
		if storeIDs[sid] {
			add("business_settings", map[string]any{"store_id": sid, "data": s})
		}
	}
	for _, m := range e.db.messages {
		if accountID == "" || slices.Contains(m.Recipients, accountID) {
			add("admin_messages", m)
		}
	}
	if accountID == "" {
		for _, p := range e.db.plans {
			add("subscription_plans", p)
		}
		for _, p := range e.db.providers {
			add("ai_providers", p)
		}
		for _, l := range e.db.backups {
			add("backup_logs", l)
		}
	}

	out := make(map[string]json.RawMessage, len(tables))
	for name, rows := range tables {
		raw, err := json.Marshal(rows)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", name, err)
		}
		out[name] = raw
	}
	return out, nil
}
