package dto

import "github.com/jhoicas/tiendapyme-api/internal/domain/entity"

// OnboardingStatusResponse etapa actual del asistente.
type OnboardingStatusResponse struct {
	Status string `json:"status"`
}

// OnboardingStatusRequest cambio directo de etapa.
type OnboardingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NOT_STARTED BUSINESS_INFO_SUBMITTED PERSONALIZATION_SUBMITTED COMPLETED"`
}

// BusinessInfoRequest paso 1 del onboarding.
type BusinessInfoRequest struct {
	BusinessName     string `json:"businessName" validate:"required,min=1,max=200"`
	BusinessCategory string `json:"businessCategory" validate:"omitempty,max=100"`
}

// PersonalizationRequest paso 2 del onboarding.
type PersonalizationRequest struct {
	PrimaryColor   string `json:"primaryColor" validate:"omitempty,hexcolor"`
	LogoPreviewURL string `json:"logoPreviewUrl"`
	ContactInfo    string `json:"contactInfo" validate:"omitempty,max=500"`
	WhatsappNumber string `json:"whatsappNumber" validate:"omitempty,max=32"`
}

// SettingsResponse documento de configuración; se devuelve tal cual se guarda.
type SettingsResponse = entity.BusinessSettings
