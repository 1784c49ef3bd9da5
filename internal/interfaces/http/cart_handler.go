package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/usecase"
)

// CartHandler carrito de la tienda y enlaces compartidos.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Carrito actual
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetStoreID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Reemplazar carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CartRequest  true  "items"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart [post]
func (h *CartHandler) Replace(c *fiber.Ctx) error {
	var in dto.CartRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Replace(c.UserContext(), GetStoreID(c), in.Items)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Share godoc
// @Summary      Compartir carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartShareResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/share [post]
func (h *CartHandler) Share(c *fiber.Ctx) error {
	out, err := h.uc.Share(c.UserContext(), GetStoreID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar carrito compartido
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CartImportRequest  true  "code"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/import [post]
func (h *CartHandler) Import(c *fiber.Ctx) error {
	var in dto.CartImportRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Import(c.UserContext(), GetStoreID(c), in.Code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
