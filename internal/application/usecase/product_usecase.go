package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/catalog"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

// ProductUseCase catálogo de la tienda. Las escrituras que tocan el carrito van en transacción.
type ProductUseCase struct {
	repo   repository.ProductRepository
	stores repository.StoreRepository
	users  repository.UserRepository
	plans  repository.PlanRepository
	tx     ports.TxRunner
	now    func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	stores repository.StoreRepository,
	users repository.UserRepository,
	plans repository.PlanRepository,
	tx ports.TxRunner,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, stores: stores, users: users, plans: plans, tx: tx, now: time.Now}
}

// List aplica filtros y orden del catálogo.
func (uc *ProductUseCase) List(ctx context.Context, storeID string, q dto.ProductListQuery) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	filtered := catalog.Apply(list, catalog.Query{
		Search:   q.Search,
		Category: q.Category,
		Status:   entity.ProductStatus(q.Status),
		Sort:     q.Sort,
	})
	out := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto de la tienda; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, storeID, id string) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func (uc *ProductUseCase) get(ctx context.Context, storeID, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Create crea un producto. Estado por defecto Activo.
// Si la tienda estaba en PERSONALIZATION_SUBMITTED, el primer producto completa el onboarding.
func (uc *ProductUseCase) Create(ctx context.Context, storeID string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkPlanLimit(ctx, store); err != nil {
		return nil, err
	}
	now := uc.now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		CreatedAt: now,
	}
	applyProductInput(p, in, now)
	if p.Status == "" {
		p.Status = entity.ProductActive
	}
	err = uc.tx.RunStore(ctx, func(stores repository.StoreRepository, _ repository.SettingsRepository, products repository.ProductRepository) error {
		if err := products.Create(ctx, p); err != nil {
			return err
		}
		if store.OnboardingStatus == entity.OnboardingPersonalizationSubmitted {
			return stores.UpdateOnboardingStatus(ctx, storeID, entity.OnboardingCompleted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// checkPlanLimit aplica maxProducts del plan de la cuenta, si tiene plan y límite.
func (uc *ProductUseCase) checkPlanLimit(ctx context.Context, store *entity.Store) error {
	user, err := uc.users.GetByID(ctx, store.UserID)
	if err != nil || user == nil || user.PlanID == "" {
		return err
	}
	plan, err := uc.plans.GetByID(ctx, user.PlanID)
	if err != nil || plan == nil || plan.Limits.MaxProducts == nil {
		return err
	}
	n, err := uc.repo.CountByStore(ctx, store.ID)
	if err != nil {
		return err
	}
	if n >= *plan.Limits.MaxProducts {
		return domain.ErrPlanLimitReached
	}
	return nil
}

// Update reemplaza el producto y refresca sus líneas en el carrito en la misma transacción.
func (uc *ProductUseCase) Update(ctx context.Context, storeID, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	var out *entity.Product
	err := uc.tx.RunCatalog(ctx, func(products repository.ProductRepository, carts repository.CartRepository, _ repository.OrderRepository) error {
		p, err := products.GetByID(ctx, storeID, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		applyProductInput(p, in, uc.now())
		if p.Status == "" {
			p.Status = entity.ProductActive
		}
		if err := products.Update(ctx, p); err != nil {
			return err
		}
		if err := syncCart(ctx, carts, storeID, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(out), nil
}

// Delete elimina el producto y su línea del carrito.
func (uc *ProductUseCase) Delete(ctx context.Context, storeID, id string) error {
	return uc.tx.RunCatalog(ctx, func(products repository.ProductRepository, carts repository.CartRepository, _ repository.OrderRepository) error {
		deleted, err := products.Delete(ctx, storeID, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrNotFound
		}
		items, err := carts.Get(ctx, storeID)
		if err != nil {
			return err
		}
		if rest, changed := entity.RemoveFromCart(items, id); changed {
			return carts.Save(ctx, storeID, rest)
		}
		return nil
	})
}

// Duplicate crea una copia "(Copia)" inactiva. Cuenta para el límite del plan.
func (uc *ProductUseCase) Duplicate(ctx context.Context, storeID, id string) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store != nil {
		if err := uc.checkPlanLimit(ctx, store); err != nil {
			return nil, err
		}
	}
	cp := p.Duplicate(uuid.New().String(), uc.now())
	if err := uc.repo.Create(ctx, cp); err != nil {
		return nil, err
	}
	return toProductResponse(cp), nil
}

// ToggleStatus Activo→Inactivo; Inactivo o Agotado→Activo.
func (uc *ProductUseCase) ToggleStatus(ctx context.Context, storeID, id string) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	p.Status = p.Status.Toggled()
	p.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func syncCart(ctx context.Context, carts repository.CartRepository, storeID string, p *entity.Product) error {
	items, err := carts.Get(ctx, storeID)
	if err != nil {
		return err
	}
	if entity.SyncCartWithProduct(items, p) {
		return carts.Save(ctx, storeID, items)
	}
	return nil
}

func validateProductInput(in dto.ProductRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if in.Status != "" && !entity.ProductStatus(in.Status).Valid() {
		return fmt.Errorf("%w: estado desconocido", domain.ErrInvalidInput)
	}
	if in.Stock != nil && *in.Stock < 0 {
		return fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func applyProductInput(p *entity.Product, in dto.ProductRequest, now time.Time) {
	p.Name = strings.TrimSpace(in.Name)
	p.Category = in.Category
	p.Price = strings.TrimSpace(in.Price)
	p.Idea = in.Idea
	p.GeneratedDescription = in.GeneratedDescription
	p.ImageURLs = append([]string{}, in.ImagePreviewURLs...)
	p.Status = entity.ProductStatus(in.Status)
	p.Stock = in.Stock
	p.UpdatedAt = now
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	images := p.ImageURLs
	if images == nil {
		images = []string{}
	}
	return &dto.ProductResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		Category:             p.Category,
		Price:                p.Price,
		Idea:                 p.Idea,
		GeneratedDescription: p.GeneratedDescription,
		ImagePreviewURLs:     images,
		Status:               string(p.Status),
		Stock:                p.Stock,
		CreatedAt:            p.CreatedAt.UnixMilli(),
	}
}
