package entity

import "time"

// Tipos, estados y disparadores de respaldo.
const (
	BackupFullSystem      = "full_system"
	BackupAccountSpecific = "account_specific"

	BackupCompleted  = "completed"
	BackupFailed     = "failed"
	BackupInProgress = "in_progress"

	BackupManual    = "manual"
	BackupScheduled = "scheduled"
)

// BackupLog registro de un respaldo ejecutado o en curso.
type BackupLog struct {
	ID          string
	Type        string
	AccountID   string // solo account_specific
	Timestamp   time.Time
	Status      string
	FilePath    string
	SizeMB      float64
	TriggeredBy string
	Error       string
}
