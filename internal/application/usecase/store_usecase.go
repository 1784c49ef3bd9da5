package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

// StoreUseCase configuración del negocio y asistente de onboarding.
type StoreUseCase struct {
	stores   repository.StoreRepository
	settings repository.SettingsRepository
	tx       ports.TxRunner
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(stores repository.StoreRepository, settings repository.SettingsRepository, tx ports.TxRunner) *StoreUseCase {
	return &StoreUseCase{stores: stores, settings: settings, tx: tx}
}

func (uc *StoreUseCase) store(ctx context.Context, storeID string) (*entity.Store, error) {
	return findStore(ctx, uc.stores, storeID)
}

func findStore(ctx context.Context, stores repository.StoreRepository, storeID string) (*entity.Store, error) {
	s, err := stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// Settings devuelve el documento guardado; sin documento, los valores por defecto de la tienda.
func (uc *StoreUseCase) Settings(ctx context.Context, storeID string) (*entity.BusinessSettings, error) {
	return loadSettings(ctx, uc.stores, uc.settings, storeID)
}

func loadSettings(ctx context.Context, stores repository.StoreRepository, settings repository.SettingsRepository, storeID string) (*entity.BusinessSettings, error) {
	s, err := settings.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	store, err := findStore(ctx, stores, storeID)
	if err != nil {
		return nil, err
	}
	return &entity.BusinessSettings{
		BusinessName: store.BusinessName,
		PrimaryColor: entity.DefaultPrimaryColor,
	}, nil
}

// MergeSettings mezcla las claves del parche sobre el documento guardado.
// Si cambia businessName, también se renombra la tienda.
func (uc *StoreUseCase) MergeSettings(ctx context.Context, storeID string, patch json.RawMessage) (*entity.BusinessSettings, error) {
	return uc.merge(ctx, storeID, patch, "")
}

// merge guarda el documento, renombra la tienda y, con next no vacío, avanza el onboarding.
// Todo ocurre en la misma transacción.
func (uc *StoreUseCase) merge(ctx context.Context, storeID string, patch json.RawMessage, next entity.OnboardingStatus) (*entity.BusinessSettings, error) {
	var merged *entity.BusinessSettings
	err := uc.tx.RunStore(ctx, func(stores repository.StoreRepository, settings repository.SettingsRepository, _ repository.ProductRepository) error {
		current, err := loadSettings(ctx, stores, settings, storeID)
		if err != nil {
			return err
		}
		merged, err = mergeJSON(current, patch)
		if err != nil {
			return err
		}
		if err := settings.Save(ctx, storeID, merged); err != nil {
			return err
		}
		if name := strings.TrimSpace(merged.BusinessName); name != "" && name != current.BusinessName {
			store, err := findStore(ctx, stores, storeID)
			if err != nil {
				return err
			}
			store.BusinessName = name
			store.UpdatedAt = time.Now()
			if err := stores.Update(ctx, store); err != nil {
				return err
			}
		}
		if next != "" {
			return stores.UpdateOnboardingStatus(ctx, storeID, next)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// mergeJSON superpone las claves de patch sobre base, clave por clave.
func mergeJSON(base *entity.BusinessSettings, patch json.RawMessage) (*entity.BusinessSettings, error) {
	doc := map[string]any{}
	raw, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	var changes map[string]any
	if err := json.Unmarshal(patch, &changes); err != nil {
		return nil, fmt.Errorf("%w: el cuerpo debe ser un objeto JSON", domain.ErrInvalidInput)
	}
	for k, v := range changes {
		doc[k] = v
	}
	raw, err = json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	var out entity.BusinessSettings
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: tipo inválido en la configuración", domain.ErrInvalidInput)
	}
	return &out, nil
}

// OnboardingStatus etapa actual.
func (uc *StoreUseCase) OnboardingStatus(ctx context.Context, storeID string) (entity.OnboardingStatus, error) {
	s, err := uc.store(ctx, storeID)
	if err != nil {
		return "", err
	}
	return s.OnboardingStatus, nil
}

// SetOnboardingStatus cambio directo de etapa.
func (uc *StoreUseCase) SetOnboardingStatus(ctx context.Context, storeID string, status entity.OnboardingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: estado de onboarding desconocido", domain.ErrInvalidInput)
	}
	if _, err := uc.store(ctx, storeID); err != nil {
		return err
	}
	return uc.stores.UpdateOnboardingStatus(ctx, storeID, status)
}

// SubmitBusinessInfo paso 1: nombre y categoría del negocio.
func (uc *StoreUseCase) SubmitBusinessInfo(ctx context.Context, storeID string, in dto.BusinessInfoRequest) (*entity.BusinessSettings, error) {
	patch, err := json.Marshal(map[string]string{
		"businessName":     strings.TrimSpace(in.BusinessName),
		"businessCategory": in.BusinessCategory,
	})
	if err != nil {
		return nil, err
	}
	return uc.merge(ctx, storeID, patch, entity.OnboardingBusinessInfoSubmitted)
}

// SubmitPersonalization paso 2: marca y contacto. El onboarding termina con el primer producto.
func (uc *StoreUseCase) SubmitPersonalization(ctx context.Context, storeID string, in dto.PersonalizationRequest) (*entity.BusinessSettings, error) {
	fields := map[string]string{}
	if in.PrimaryColor != "" {
		fields["primaryColor"] = in.PrimaryColor
	}
	if in.LogoPreviewURL != "" {
		fields["logoPreviewUrl"] = in.LogoPreviewURL
	}
	if in.ContactInfo != "" {
		fields["contactInfo"] = in.ContactInfo
	}
	if in.WhatsappNumber != "" {
		fields["whatsappNumber"] = in.WhatsappNumber
	}
	patch, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return uc.merge(ctx, storeID, patch, entity.OnboardingPersonalizationSubmitted)
}

