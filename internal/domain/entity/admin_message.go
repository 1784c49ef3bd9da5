package entity

import "time"

// Categorías de mensajes del superadmin.
const (
	MessageInfo            = "info"
	MessageAlert           = "alert"
	MessagePaymentReminder = "payment_reminder"
	MessageFeatureUpdate   = "feature_update"
	MessageCongratulations = "congratulations"
)

// AdminMessage comunicado enviado por el superadmin a una o varias cuentas.
type AdminMessage struct {
	ID         string
	Subject    string
	Body       string
	Recipients []string // IDs de cuentas
	Category   string
	SentAt     time.Time
	ReadBy     []string
}
