package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/usecase"
)

// AIHandler contenido asistido por IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerateDescription godoc
// @Summary      Generar descripción de producto
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateDescriptionRequest  true  "name, category, price, idea"
// @Success      200   {object}  dto.GenerateDescriptionResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/generate-description [post]
func (h *AIHandler) GenerateDescription(c *fiber.Ctx) error {
	var in dto.GenerateDescriptionRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GenerateDescription(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SuggestCategories godoc
// @Summary      Sugerir categorías
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SuggestCategoriesRequest  true  "productName, productIdea"
// @Success      200   {object}  dto.SuggestCategoriesResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/suggest-categories [post]
func (h *AIHandler) SuggestCategories(c *fiber.Ctx) error {
	var in dto.SuggestCategoriesRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SuggestCategories(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GenerateMarketingContent godoc
// @Summary      Asistente de marketing
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarketingContentRequest  true  "prompt"
// @Success      200   {object}  dto.MarketingContentResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/generate-marketing-content [post]
func (h *AIHandler) GenerateMarketingContent(c *fiber.Ctx) error {
	var in dto.MarketingContentRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GenerateMarketingContent(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
