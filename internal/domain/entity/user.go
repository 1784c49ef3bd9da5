package entity

import "time"

// Roles válidos para User.
const (
	RoleSME        = "sme"
	RoleSuperadmin = "superadmin"
)

// Estados de cuenta.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// User representa un usuario del sistema. Un usuario sme es dueño de exactamente una Store.
type User struct {
	ID           string
	Email        string // siempre en minúsculas
	Name         string
	PasswordHash string // bcrypt hash
	Role         string // sme, superadmin
	Status       string // active, inactive, suspended
	PlanID       string // vacío = sin plan
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    *time.Time
}

// IsActive indica si el usuario puede iniciar sesión.
func (u *User) IsActive() bool {
	return u.Status == "" || u.Status == UserStatusActive
}
