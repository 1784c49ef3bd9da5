package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// AccountRequest alta o edición de una cuenta sme. Password vacío en alta = aleatorio.
type AccountRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	PlanID   string `json:"planId" validate:"omitempty,uuid"`
}

// AccountResponse vista de administración de una cuenta. Fechas en milisegundos Unix.
type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	PlanID    string `json:"planId,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	LastLogin *int64 `json:"lastLogin,omitempty"`
}

// PlanRequest alta o edición de un plan.
type PlanRequest struct {
	Name        string               `json:"name" validate:"required,max=100"`
	Price       decimal.Decimal      `json:"price"`
	PriceSuffix string               `json:"priceSuffix" validate:"omitempty,max=20"`
	Features    []entity.PlanFeature `json:"features"`
	Limits      entity.PlanLimits    `json:"limits"`
	IsPopular   bool                 `json:"isPopular"`
	IsArchived  bool                 `json:"isArchived"`
}

// PlanResponse salida de un plan.
type PlanResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Price       decimal.Decimal      `json:"price"`
	PriceSuffix string               `json:"priceSuffix,omitempty"`
	Features    []entity.PlanFeature `json:"features"`
	Limits      entity.PlanLimits    `json:"limits"`
	IsPopular   bool                 `json:"isPopular"`
	IsArchived  bool                 `json:"isArchived"`
}

// AIProviderRequest alta o edición de un proveedor de IA. APIKey vacío en edición conserva la actual.
type AIProviderRequest struct {
	ProviderName string `json:"providerName" validate:"required,max=100"`
	APIKey       string `json:"apiKey"`
	EndpointURL  string `json:"endpointUrl" validate:"omitempty,url"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive error"`
	IsDefault    bool   `json:"isDefault"`
	MonthlyLimit *int   `json:"monthlyLimit" validate:"omitempty,min=0"`
	DailyLimit   *int   `json:"dailyLimit" validate:"omitempty,min=0"`
	PerUserLimit *int   `json:"perUserLimit" validate:"omitempty,min=0"`
}

// AIProviderResponse salida de un proveedor; la clave va enmascarada.
type AIProviderResponse struct {
	ID                 string   `json:"id"`
	ProviderName       string   `json:"providerName"`
	APIKey             string   `json:"apiKey"`
	EndpointURL        string   `json:"endpointUrl,omitempty"`
	Status             string   `json:"status"`
	IsDefault          bool     `json:"isDefault"`
	MonthlyLimit       *int     `json:"monthlyLimit,omitempty"`
	DailyLimit         *int     `json:"dailyLimit,omitempty"`
	PerUserLimit       *int     `json:"perUserLimit,omitempty"`
	AvgResponseTimeMs  *int     `json:"avgResponseTimeMs,omitempty"`
	SuccessRatePercent *float64 `json:"successRatePercent,omitempty"`
}

// AdminMessageRequest comunicado a una o varias cuentas.
type AdminMessageRequest struct {
	Subject    string   `json:"subject" validate:"required,max=200"`
	Body       string   `json:"body" validate:"required"`
	Recipients []string `json:"recipients" validate:"required,min=1,dive,required"`
	Category   string   `json:"category" validate:"omitempty,oneof=info alert payment_reminder feature_update congratulations"`
}

// AdminMessageResponse salida de un comunicado. SentAt en milisegundos Unix.
type AdminMessageResponse struct {
	ID         string   `json:"id"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Recipients []string `json:"recipients"`
	Category   string   `json:"category"`
	SentAt     int64    `json:"sentAt"`
	ReadBy     []string `json:"readBy"`
}

// BackupRequest disparo manual de un respaldo.
type BackupRequest struct {
	Type      string `json:"type" validate:"required,oneof=full_system account_specific"`
	AccountID string `json:"accountId" validate:"required_if=Type account_specific"`
}

// BackupLogResponse salida de una entrada de la bitácora. Timestamp en milisegundos Unix.
type BackupLogResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	AccountID   string  `json:"accountId,omitempty"`
	Timestamp   int64   `json:"timestamp"`
	Status      string  `json:"status"`
	FilePath    string  `json:"filePath,omitempty"`
	SizeMB      float64 `json:"sizeMb,omitempty"`
	TriggeredBy string  `json:"triggeredBy"`
	Error       string  `json:"error,omitempty"`
}
