// Package superadmin casos de uso del panel de administración global:
// cuentas, planes, proveedores de IA, comunicados y respaldos.
package superadmin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tiendapyme-api/internal/application/auth"
	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

// AccountUseCase administra las cuentas sme y sus tiendas.
type AccountUseCase struct {
	users repository.UserRepository
	plans repository.PlanRepository
	tx    ports.TxRunner
	now   func() time.Time
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(users repository.UserRepository, plans repository.PlanRepository, tx ports.TxRunner) *AccountUseCase {
	return &AccountUseCase{users: users, plans: plans, tx: tx, now: time.Now}
}

// List devuelve las cuentas sme, más recientes primero.
func (uc *AccountUseCase) List(ctx context.Context) ([]dto.AccountResponse, error) {
	users, err := uc.users.ListByRole(ctx, entity.RoleSME)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toAccountResponse(u))
	}
	return out, nil
}

// Create da de alta un usuario sme con su tienda. Sin contraseña se genera una aleatoria.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.AccountRequest) (*dto.AccountResponse, error) {
	if err := uc.checkPlan(ctx, in.PlanID); err != nil {
		return nil, err
	}
	password := in.Password
	if password == "" {
		password = uuid.NewString()
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	status := in.Status
	if status == "" {
		status = entity.UserStatusActive
	}
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        auth.NormalizeEmail(in.Email),
		Name:         in.Name,
		PasswordHash: hash,
		Role:         entity.RoleSME,
		Status:       status,
		PlanID:       in.PlanID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.RunAuth(ctx, func(users repository.UserRepository, stores repository.StoreRepository) error {
		existing, err := users.GetByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return stores.Create(ctx, &entity.Store{
			ID:               uuid.NewString(),
			UserID:           user.ID,
			BusinessName:     entity.DefaultStoreName(user.Name),
			OnboardingStatus: entity.OnboardingNotStarted,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	})
	if err != nil {
		return nil, err
	}
	resp := toAccountResponse(user)
	return &resp, nil
}

// Update modifica nombre, email, estado, plan y, si viene, la contraseña.
func (uc *AccountUseCase) Update(ctx context.Context, id string, in dto.AccountRequest) (*dto.AccountResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != entity.RoleSME {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkPlan(ctx, in.PlanID); err != nil {
		return nil, err
	}
	user.Name = in.Name
	user.Email = auth.NormalizeEmail(in.Email)
	if in.Status != "" {
		user.Status = in.Status
	}
	user.PlanID = in.PlanID
	if in.Password != "" {
		if user.PasswordHash, err = auth.HashPassword(in.Password); err != nil {
			return nil, err
		}
	}
	user.UpdatedAt = uc.now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := toAccountResponse(user)
	return &resp, nil
}

// Delete elimina la cuenta; la tienda y sus datos se eliminan en cascada.
func (uc *AccountUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil || user.Role != entity.RoleSME {
		return domain.ErrNotFound
	}
	return uc.users.Delete(ctx, id)
}

func (uc *AccountUseCase) checkPlan(ctx context.Context, planID string) error {
	if planID == "" {
		return nil
	}
	plan, err := uc.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("%w: el plan no existe", domain.ErrInvalidInput)
	}
	return nil
}

func toAccountResponse(u *entity.User) dto.AccountResponse {
	resp := dto.AccountResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Status:    u.Status,
		PlanID:    u.PlanID,
		CreatedAt: u.CreatedAt.UnixMilli(),
	}
	if u.LastLogin != nil {
		ms := u.LastLogin.UnixMilli()
		resp.LastLogin = &ms
	}
	return resp
}
