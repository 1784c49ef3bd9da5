package ports

import (
	"context"
	"encoding/json"
)

// BackupSource vuelca las tablas a documentos JSON, una entrada por tabla.
// accountID vacío = sistema completo; si no, solo los datos de esa cuenta y su tienda.
type BackupSource interface {
	Snapshot(ctx context.Context, accountID string) (map[string]json.RawMessage, error)
}
