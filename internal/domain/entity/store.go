package entity

import "time"

// OnboardingStatus etapa del asistente inicial de la tienda.
type OnboardingStatus string

const (
	OnboardingNotStarted               OnboardingStatus = "NOT_STARTED"
	OnboardingBusinessInfoSubmitted    OnboardingStatus = "BUSINESS_INFO_SUBMITTED"
	OnboardingPersonalizationSubmitted OnboardingStatus = "PERSONALIZATION_SUBMITTED"
	OnboardingCompleted                OnboardingStatus = "COMPLETED"
)

// Valid indica si el valor es una etapa conocida.
func (s OnboardingStatus) Valid() bool {
	switch s {
	case OnboardingNotStarted, OnboardingBusinessInfoSubmitted,
		OnboardingPersonalizationSubmitted, OnboardingCompleted:
		return true
	}
	return false
}

// Store tienda (tenant) de un usuario sme.
type Store struct {
	ID               string
	UserID           string
	BusinessName     string
	OnboardingStatus OnboardingStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultStoreName nombre inicial de la tienda al registrarse.
func DefaultStoreName(ownerName string) string {
	if ownerName == "" {
		return "My Store"
	}
	return ownerName + "'s Store"
}
