package ports

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// ProductBrief datos del producto que recibe el modelo.
type ProductBrief struct {
	Name     string
	Category string
	Price    string
	Idea     string
}

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type LLMService interface {
	// GenerateDescription redacta la descripción comercial del producto.
	GenerateDescription(ctx context.Context, p ProductBrief) (string, error)

	// SuggestCategories propone categorías; el caso de uso filtra contra la lista predefinida.
	SuggestCategories(ctx context.Context, productName, productIdea string, allowed []string) ([]string, error)

	// GenerateMarketingContent responde a una instrucción libre del asistente de marketing.
	GenerateMarketingContent(ctx context.Context, prompt string) (string, error)
}

// LLMFactory construye el adaptador para un proveedor configurado.
// Devuelve domain.ErrAIUnavailable si la familia del proveedor no está soportada.
type LLMFactory interface {
	ForProvider(ctx context.Context, cfg *entity.AIProviderConfig) (LLMService, error)
}
