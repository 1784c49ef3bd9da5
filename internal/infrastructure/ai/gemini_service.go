package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

// GeminiService adaptador que implementa LLMService con el SDK google.golang.org/genai.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService construye el cliente del SDK. model suele ser "gemini-2.5-flash-preview-04-17".
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente Gemini: %w", err)
	}
	return &GeminiService{client: client, model: model}, nil
}

// GenerateDescription redacta la descripción del producto.
func (s *GeminiService) GenerateDescription(ctx context.Context, p ports.ProductBrief) (string, error) {
	return s.generate(ctx, descriptionSystemPrompt, descriptionUserPrompt(p), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		MaxOutputTokens: 512,
	})
}

// SuggestCategories usa ResponseMIMEType=application/json para recibir JSON puro.
func (s *GeminiService) SuggestCategories(ctx context.Context, name, idea string, allowed []string) ([]string, error) {
	system := fmt.Sprintf(categoriesSystemPrompt, strings.Join(allowed, ", "))
	text, err := s.generate(ctx, system, categoriesUserPrompt(name, idea), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.2),
		MaxOutputTokens:  256,
	})
	if err != nil {
		return nil, err
	}
	return parseCategories(text)
}

// GenerateMarketingContent responde la instrucción del asistente de marketing.
func (s *GeminiService) GenerateMarketingContent(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, marketingSystemPrompt, prompt, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.8),
		MaxOutputTokens: 1024,
	})
}

func (s *GeminiService) generate(ctx context.Context, system, user string, cfg *genai.GenerateContentConfig) (string, error) {
	cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	resp, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{genai.NewContentFromText(user, genai.RoleUser)}, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: Gemini: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return text, nil
}
