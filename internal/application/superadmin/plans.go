package superadmin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

// PlanUseCase administra los planes de suscripción.
type PlanUseCase struct {
	plans repository.PlanRepository
	now   func() time.Time
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(plans repository.PlanRepository) *PlanUseCase {
	return &PlanUseCase{plans: plans, now: time.Now}
}

// List devuelve todos los planes, archivados incluidos.
func (uc *PlanUseCase) List(ctx context.Context) ([]dto.PlanResponse, error) {
	plans, err := uc.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanResponse(p))
	}
	return out, nil
}

// Create da de alta un plan; el nombre es único.
func (uc *PlanUseCase) Create(ctx context.Context, in dto.PlanRequest) (*dto.PlanResponse, error) {
	if err := validatePlan(in); err != nil {
		return nil, err
	}
	now := uc.now()
	plan := &entity.SubscriptionPlan{ID: uuid.NewString(), CreatedAt: now}
	applyPlan(plan, in, now)
	if err := uc.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	resp := toPlanResponse(plan)
	return &resp, nil
}

// Upsert crea el plan o actualiza el existente con el mismo nombre. Usado por la semilla.
func (uc *PlanUseCase) Upsert(ctx context.Context, in dto.PlanRequest) (*dto.PlanResponse, bool, error) {
	existing, err := uc.plans.GetByName(ctx, strings.TrimSpace(in.Name))
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		resp, err := uc.Create(ctx, in)
		return resp, true, err
	}
	resp, err := uc.Update(ctx, existing.ID, in)
	return resp, false, err
}

// Update reemplaza los datos del plan.
func (uc *PlanUseCase) Update(ctx context.Context, id string, in dto.PlanRequest) (*dto.PlanResponse, error) {
	if err := validatePlan(in); err != nil {
		return nil, err
	}
	plan, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPlan(plan, in, uc.now())
	if err := uc.plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	resp := toPlanResponse(plan)
	return &resp, nil
}

// ToggleArchive invierte la marca de archivado.
func (uc *PlanUseCase) ToggleArchive(ctx context.Context, id string) (*dto.PlanResponse, error) {
	plan, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	plan.IsArchived = !plan.IsArchived
	plan.UpdatedAt = uc.now()
	if err := uc.plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	resp := toPlanResponse(plan)
	return &resp, nil
}

func (uc *PlanUseCase) get(ctx context.Context, id string) (*entity.SubscriptionPlan, error) {
	plan, err := uc.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return plan, nil
}

func validatePlan(in dto.PlanRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: el nombre del plan es obligatorio", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if m := in.Limits.MaxProducts; m != nil && *m < 0 {
		return fmt.Errorf("%w: maxProducts no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func applyPlan(plan *entity.SubscriptionPlan, in dto.PlanRequest, now time.Time) {
	plan.Name = strings.TrimSpace(in.Name)
	plan.Price = in.Price
	plan.PriceSuffix = in.PriceSuffix
	plan.Features = in.Features
	if plan.Features == nil {
		plan.Features = []entity.PlanFeature{}
	}
	plan.Limits = in.Limits
	plan.IsPopular = in.IsPopular
	plan.IsArchived = in.IsArchived
	plan.UpdatedAt = now
}

func toPlanResponse(p *entity.SubscriptionPlan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		PriceSuffix: p.PriceSuffix,
		Features:    p.Features,
		Limits:      p.Limits,
		IsPopular:   p.IsPopular,
		IsArchived:  p.IsArchived,
	}
}
