package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/catalog"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

// AITimeout límite de cada llamada al modelo.
const AITimeout = 20 * time.Second

// fallbackCategory se devuelve cuando el modelo no sugiere ninguna categoría válida.
const fallbackCategory = "Otro"

// AIUseCase orquesta el contenido asistido por IA: descripciones, categorías y marketing.
// Usa el proveedor por defecto activo; si no hay, el adaptador de respaldo del entorno.
type AIUseCase struct {
	providers repository.AIProviderRepository
	factory   ports.LLMFactory
	fallback  ports.LLMService
	timeout   time.Duration
}

// NewAIUseCase construye el caso de uso. providers/factory o fallback pueden ser nil.
func NewAIUseCase(providers repository.AIProviderRepository, factory ports.LLMFactory, fallback ports.LLMService) *AIUseCase {
	return &AIUseCase{providers: providers, factory: factory, fallback: fallback, timeout: AITimeout}
}

// GenerateDescription redacta la descripción de un producto.
func (uc *AIUseCase) GenerateDescription(ctx context.Context, req dto.GenerateDescriptionRequest) (*dto.GenerateDescriptionResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre del producto es obligatorio", domain.ErrInvalidInput)
	}
	llm, err := uc.service(ctx)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := llm.GenerateDescription(ctx, ports.ProductBrief{
		Name: req.Name, Category: req.Category, Price: req.Price, Idea: req.Idea,
	})
	if err != nil {
		return nil, wrapAIError(ctx, "descripción IA", err)
	}
	return &dto.GenerateDescriptionResponse{Description: text}, nil
}

// SuggestCategories devuelve hasta tres categorías de la lista predefinida.
func (uc *AIUseCase) SuggestCategories(ctx context.Context, req dto.SuggestCategoriesRequest) (*dto.SuggestCategoriesResponse, error) {
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, fmt.Errorf("%w: el nombre del producto es obligatorio", domain.ErrInvalidInput)
	}
	llm, err := uc.service(ctx)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := llm.SuggestCategories(ctx, req.ProductName, req.ProductIdea, entity.PredefinedCategories)
	if err != nil {
		return nil, wrapAIError(ctx, "categorías IA", err)
	}
	return &dto.SuggestCategoriesResponse{Categories: filterCategories(raw)}, nil
}

// GenerateMarketingContent responde una instrucción libre del asistente de marketing.
func (uc *AIUseCase) GenerateMarketingContent(ctx context.Context, req dto.MarketingContentRequest) (*dto.MarketingContentResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("%w: la instrucción es obligatoria", domain.ErrInvalidInput)
	}
	llm, err := uc.service(ctx)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := llm.GenerateMarketingContent(ctx, req.Prompt)
	if err != nil {
		return nil, wrapAIError(ctx, "marketing IA", err)
	}
	return &dto.MarketingContentResponse{Content: text}, nil
}

func (uc *AIUseCase) service(ctx context.Context) (ports.LLMService, error) {
	if uc.providers != nil && uc.factory != nil {
		p, err := uc.providers.GetDefault(ctx)
		if err != nil {
			return nil, err
		}
		if p != nil {
			return uc.factory.ForProvider(ctx, p)
		}
	}
	if uc.fallback == nil {
		return nil, domain.ErrAIUnavailable
	}
	return uc.fallback, nil
}

func wrapAIError(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", domain.ErrAITimeout, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// filterCategories normaliza contra la lista predefinida, sin repetidos, máximo 3.
func filterCategories(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, 3)
	for _, c := range raw {
		match, ok := catalog.MatchCategory(c)
		if !ok || seen[match] {
			continue
		}
		seen[match] = true
		out = append(out, match)
		if len(out) == 3 {
			break
		}
	}
	if len(out) == 0 {
		return []string{fallbackCategory}
	}
	return out
}
