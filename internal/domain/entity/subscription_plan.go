package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanFeature línea de la ficha comercial del plan.
type PlanFeature struct {
	Text    string `json:"text" yaml:"text"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// PlanLimits límites del plan; nil = sin límite.
type PlanLimits struct {
	MaxProducts           *int `json:"maxProducts,omitempty" yaml:"maxProducts,omitempty"`
	AIGenerationsPerMonth *int `json:"aiGenerationsPerMonth,omitempty" yaml:"aiGenerationsPerMonth,omitempty"`
}

// SubscriptionPlan plan de suscripción ofrecido a las tiendas.
type SubscriptionPlan struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	PriceSuffix string
	Features    []PlanFeature
	Limits      PlanLimits
	IsPopular   bool
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
