package entity

import (
	"strings"
	"time"
)

// Estados de un proveedor de IA.
const (
	AIProviderActive   = "active"
	AIProviderInactive = "inactive"
	AIProviderError    = "error"
)

// Familias de proveedor soportadas por los adaptadores.
const (
	AIKindGemini    = "gemini"
	AIKindAnthropic = "anthropic"
	AIKindUnknown   = ""
)

// AIProviderConfig credenciales y cuotas de un proveedor de IA.
type AIProviderConfig struct {
	ID                 string
	ProviderName       string
	APIKey             string
	EndpointURL        string
	Status             string
	IsDefault          bool
	MonthlyLimit       *int
	DailyLimit         *int
	PerUserLimit       *int
	AvgResponseTimeMs  *int
	SuccessRatePercent *float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Kind deduce la familia del proveedor a partir del nombre.
func (p *AIProviderConfig) Kind() string {
	name := strings.ToLower(p.ProviderName)
	switch {
	case strings.Contains(name, "gemini"):
		return AIKindGemini
	case strings.Contains(name, "claude"), strings.Contains(name, "anthropic"):
		return AIKindAnthropic
	}
	return AIKindUnknown
}

// MaskedAPIKey devuelve la clave con solo los últimos 4 caracteres visibles.
func (p *AIProviderConfig) MaskedAPIKey() string {
	if len(p.APIKey) <= 4 {
		return strings.Repeat("*", len(p.APIKey))
	}
	return strings.Repeat("*", len(p.APIKey)-4) + p.APIKey[len(p.APIKey)-4:]
}
