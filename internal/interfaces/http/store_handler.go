package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/usecase"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// StoreHandler configuración del negocio y onboarding.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// GetSettings godoc
// @Summary      Configuración del negocio
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings/business [get]
func (h *StoreHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.uc.Settings(c.UserContext(), GetStoreID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateSettings godoc
// @Summary      Mezclar configuración del negocio
// @Description  Las claves enviadas reemplazan a las guardadas; el resto se conserva.
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsResponse  true  "claves a actualizar"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/business [put]
func (h *StoreHandler) UpdateSettings(c *fiber.Ctx) error {
	body := c.Body()
	if !json.Valid(body) {
		return respondError(c, errInvalidBody)
	}
	out, err := h.uc.MergeSettings(c.UserContext(), GetStoreID(c), json.RawMessage(body))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetOnboardingStatus godoc
// @Summary      Etapa de onboarding
// @Tags         onboarding
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OnboardingStatusResponse
// @Router       /api/onboarding/status [get]
func (h *StoreHandler) GetOnboardingStatus(c *fiber.Ctx) error {
	status, err := h.uc.OnboardingStatus(c.UserContext(), GetStoreID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OnboardingStatusResponse{Status: string(status)})
}

// SetOnboardingStatus godoc
// @Summary      Cambiar etapa de onboarding
// @Tags         onboarding
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingStatusRequest  true  "status"
// @Success      200   {object}  dto.OnboardingStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/onboarding/status [put]
func (h *StoreHandler) SetOnboardingStatus(c *fiber.Ctx) error {
	var in dto.OnboardingStatusRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.SetOnboardingStatus(c.UserContext(), GetStoreID(c), entity.OnboardingStatus(in.Status)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OnboardingStatusResponse{Status: in.Status})
}

// SubmitBusinessInfo godoc
// @Summary      Onboarding paso 1
// @Tags         onboarding
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BusinessInfoRequest  true  "businessName, businessCategory"
// @Success      200   {object}  dto.SettingsResponse
// @Router       /api/onboarding/business-info [post]
func (h *StoreHandler) SubmitBusinessInfo(c *fiber.Ctx) error {
	var in dto.BusinessInfoRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SubmitBusinessInfo(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SubmitPersonalization godoc
// @Summary      Onboarding paso 2
// @Tags         onboarding
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PersonalizationRequest  true  "color, logo, contacto, WhatsApp"
// @Success      200   {object}  dto.SettingsResponse
// @Router       /api/onboarding/personalization [post]
func (h *StoreHandler) SubmitPersonalization(c *fiber.Ctx) error {
	var in dto.PersonalizationRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SubmitPersonalization(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
