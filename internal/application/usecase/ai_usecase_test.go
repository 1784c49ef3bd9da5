package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/infrastructure/memory"
)

type stubLLM struct {
	name       string
	categories []string
	delay      time.Duration
}

func (s *stubLLM) GenerateDescription(ctx context.Context, p ports.ProductBrief) (string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.name + ": " + p.Name, nil
}

func (s *stubLLM) SuggestCategories(_ context.Context, _, _ string, _ []string) ([]string, error) {
	return s.categories, nil
}

func (s *stubLLM) GenerateMarketingContent(_ context.Context, prompt string) (string, error) {
	return s.name + ": " + prompt, nil
}

type stubFactory struct{ llm ports.LLMService }

func (f stubFactory) ForProvider(context.Context, *entity.AIProviderConfig) (ports.LLMService, error) {
	return f.llm, nil
}

func TestAIUseCase_SinProveedor(t *testing.T) {
	uc := NewAIUseCase(memory.NewAIProviderRepository(memory.NewDB()), stubFactory{}, nil)
	_, err := uc.GenerateDescription(context.Background(), dto.GenerateDescriptionRequest{Name: "Café"})
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestAIUseCase_PrefiereProveedorPorDefecto(t *testing.T) {
	db := memory.NewDB()
	require.NoError(t, memory.NewAIProviderRepository(db).Create(context.Background(), &entity.AIProviderConfig{
		ID: "p1", ProviderName: "Gemini", APIKey: "k", Status: entity.AIProviderActive, IsDefault: true,
	}))
	uc := NewAIUseCase(memory.NewAIProviderRepository(db), stubFactory{llm: &stubLLM{name: "db"}}, &stubLLM{name: "env"})

	out, err := uc.GenerateMarketingContent(context.Background(), dto.MarketingContentRequest{Prompt: "promo"})
	require.NoError(t, err)
	assert.Equal(t, "db: promo", out.Content)
}

func TestAIUseCase_RespaldoDelEntorno(t *testing.T) {
	uc := NewAIUseCase(memory.NewAIProviderRepository(memory.NewDB()), stubFactory{}, &stubLLM{name: "env"})
	out, err := uc.GenerateDescription(context.Background(), dto.GenerateDescriptionRequest{Name: "Café"})
	require.NoError(t, err)
	assert.Equal(t, "env: Café", out.Description)
}

func TestAIUseCase_FiltraCategorias(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{"normaliza y quita repetidos", []string{"alimentos y bebidas", "Alimentos y Bebidas", "Inventada"}, []string{"Alimentos y Bebidas"}},
		{"máximo tres", []string{"Servicios", "Otro", "Hogar y Jardín", "Ropa y Accesorios"}, []string{"Servicios", "Otro", "Hogar y Jardín"}},
		{"sin coincidencias", []string{"Nada"}, []string{"Otro"}},
		{"vacío", nil, []string{"Otro"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewAIUseCase(nil, nil, &stubLLM{categories: tt.raw})
			out, err := uc.SuggestCategories(context.Background(), dto.SuggestCategoriesRequest{ProductName: "x"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Categories)
		})
	}
}

func TestAIUseCase_Timeout(t *testing.T) {
	uc := NewAIUseCase(nil, nil, &stubLLM{delay: time.Second})
	uc.timeout = 10 * time.Millisecond
	_, err := uc.GenerateDescription(context.Background(), dto.GenerateDescriptionRequest{Name: "Café"})
	assert.ErrorIs(t, err, domain.ErrAITimeout)
}

func TestAIUseCase_ValidaEntrada(t *testing.T) {
	uc := NewAIUseCase(nil, nil, &stubLLM{})
	_, err := uc.GenerateMarketingContent(context.Background(), dto.MarketingContentRequest{Prompt: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
