package superadmin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

// ProviderUseCase administra los proveedores de IA. A lo sumo uno es el predeterminado.
type ProviderUseCase struct {
	providers repository.AIProviderRepository
	tx        ports.TxRunner
	now       func() time.Time
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(providers repository.AIProviderRepository, tx ports.TxRunner) *ProviderUseCase {
	return &ProviderUseCase{providers: providers, tx: tx, now: time.Now}
}

// List devuelve los proveedores con la clave enmascarada.
func (uc *ProviderUseCase) List(ctx context.Context) ([]dto.AIProviderResponse, error) {
	list, err := uc.providers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AIProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProviderResponse(p))
	}
	return out, nil
}

// Create registra un proveedor. La clave es obligatoria en el alta.
func (uc *ProviderUseCase) Create(ctx context.Context, in dto.AIProviderRequest) (*dto.AIProviderResponse, error) {
	if strings.TrimSpace(in.APIKey) == "" {
		return nil, fmt.Errorf("%w: la clave de API es obligatoria", domain.ErrInvalidInput)
	}
	now := uc.now()
	p := &entity.AIProviderConfig{ID: uuid.NewString(), CreatedAt: now}
	applyProvider(p, in, now)

	err := uc.tx.RunProviders(ctx, func(providers repository.AIProviderRepository) error {
		if p.IsDefault {
			if err := providers.ClearDefault(ctx, p.ID); err != nil {
				return err
			}
		}
		return providers.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	resp := toProviderResponse(p)
	return &resp, nil
}

// Update modifica el proveedor; APIKey vacío conserva la clave actual.
func (uc *ProviderUseCase) Update(ctx context.Context, id string, in dto.AIProviderRequest) (*dto.AIProviderResponse, error) {
	var out *entity.AIProviderConfig
	err := uc.tx.RunProviders(ctx, func(providers repository.AIProviderRepository) error {
		p, err := providers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		applyProvider(p, in, uc.now())
		if p.IsDefault {
			if err := providers.ClearDefault(ctx, p.ID); err != nil {
				return err
			}
		}
		if err := providers.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toProviderResponse(out)
	return &resp, nil
}

// Delete elimina el proveedor.
func (uc *ProviderUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.providers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func applyProvider(p *entity.AIProviderConfig, in dto.AIProviderRequest, now time.Time) {
	p.ProviderName = strings.TrimSpace(in.ProviderName)
	if key := strings.TrimSpace(in.APIKey); key != "" {
		p.APIKey = key
	}
	p.EndpointURL = in.EndpointURL
	p.Status = in.Status
	if p.Status == "" {
		p.Status = entity.AIProviderActive
	}
	p.IsDefault = in.IsDefault
	p.MonthlyLimit = in.MonthlyLimit
	p.DailyLimit = in.DailyLimit
	p.PerUserLimit = in.PerUserLimit
	p.UpdatedAt = now
}

func toProviderResponse(p *entity.AIProviderConfig) dto.AIProviderResponse {
	return dto.AIProviderResponse{
		ID:                 p.ID,
		ProviderName:       p.ProviderName,
		APIKey:             p.MaskedAPIKey(),
		EndpointURL:        p.EndpointURL,
		Status:             p.Status,
		IsDefault:          p.IsDefault,
		MonthlyLimit:       p.MonthlyLimit,
		DailyLimit:         p.DailyLimit,
		PerUserLimit:       p.PerUserLimit,
		AvgResponseTimeMs:  p.AvgResponseTimeMs,
		SuccessRatePercent: p.SuccessRatePercent,
	}
}
