package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/pkg/config"
)

var _ ports.LLMFactory = (*Factory)(nil)

// Factory crea y cachea adaptadores por proveedor configurado.
// La clave de caché incluye UpdatedAt: editar el proveedor invalida el adaptador.
type Factory struct {
	cfg config.AIConfig

	mu    sync.Mutex
	cache map[string]ports.LLMService
}

// NewFactory usa los modelos de cfg para cada familia.
func NewFactory(cfg config.AIConfig) *Factory {
	return &Factory{cfg: cfg, cache: map[string]ports.LLMService{}}
}

// ForProvider devuelve el adaptador de la familia del proveedor.
func (f *Factory) ForProvider(ctx context.Context, p *entity.AIProviderConfig) (ports.LLMService, error) {
	key := p.ID + "@" + p.UpdatedAt.String()
	f.mu.Lock()
	defer f.mu.Unlock()
	if svc, ok := f.cache[key]; ok {
		return svc, nil
	}
	var svc ports.LLMService
	switch p.Kind() {
	case entity.AIKindGemini:
		g, err := NewGeminiService(ctx, p.APIKey, f.cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		svc = g
	case entity.AIKindAnthropic:
		svc = NewAnthropicService(p.APIKey, f.cfg.AnthropicModel, p.EndpointURL)
	default:
		return nil, fmt.Errorf("%w: proveedor %q no soportado", domain.ErrAIUnavailable, p.ProviderName)
	}
	// una versión por proveedor: la anterior queda obsoleta al cambiar updatedAt
	for k := range f.cache {
		if strings.HasPrefix(k, p.ID+"@") {
			delete(f.cache, k)
		}
	}
	f.cache[key] = svc
	return svc, nil
}

// FromEnv adaptador de respaldo según las claves del entorno: Gemini primero, luego Anthropic.
// Devuelve nil si no hay ninguna clave.
func FromEnv(ctx context.Context, cfg config.AIConfig) (ports.LLMService, error) {
	switch {
	case cfg.GeminiAPIKey != "":
		return NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case cfg.AnthropicAPIKey != "":
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, ""), nil
	}
	return nil, nil
}
