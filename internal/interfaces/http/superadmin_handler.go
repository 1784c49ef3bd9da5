package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/superadmin"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// SuperadminHandler panel global: cuentas, planes, proveedores de IA, comunicados y respaldos.
type SuperadminHandler struct {
	accounts  *superadmin.AccountUseCase
	plans     *superadmin.PlanUseCase
	providers *superadmin.ProviderUseCase
	messages  *superadmin.MessageUseCase
	backups   *superadmin.BackupUseCase
}

// NewSuperadminHandler construye el handler.
func NewSuperadminHandler(
	accounts *superadmin.AccountUseCase,
	plans *superadmin.PlanUseCase,
	providers *superadmin.ProviderUseCase,
	messages *superadmin.MessageUseCase,
	backups *superadmin.BackupUseCase,
) *SuperadminHandler {
	return &SuperadminHandler{accounts: accounts, plans: plans, providers: providers, messages: messages, backups: backups}
}

// ── Cuentas ───────────────────────────────────────────────────────────────────

// ListAccounts godoc
// @Summary      Listar cuentas
// @Tags         superadmin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/superadmin/accounts [get]
func (h *SuperadminHandler) ListAccounts(c *fiber.Ctx) error {
	out, err := h.accounts.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateAccount godoc
// @Summary      Crear cuenta
// @Tags         superadmin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AccountRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/superadmin/accounts [post]
func (h *SuperadminHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.AccountRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.accounts.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateAccount godoc
// @Summary      Editar cuenta
// @Tags         superadmin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la cuenta"
// @Param        body  body  dto.AccountRequest  true  "Datos de la cuenta"
// @Success      200   {object}  dto.AccountResponse
// @Router       /api/superadmin/accounts/{id} [put]
func (h *SuperadminHandler) UpdateAccount(c *fiber.Ctx) error {
	var in dto.AccountRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.accounts.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteAccount godoc
// @Summary      Eliminar cuenta
// @Tags         superadmin
// @Security     Bearer
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      204
// @Router       /api/superadmin/accounts/{id} [delete]
func (h *SuperadminHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.accounts.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Planes ────────────────────────────────────────────────────────────────────

// ListPlans godoc
// @Summary      Listar planes
// @Tags         superadmin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/superadmin/plans [get]
func (h *SuperadminHandler) ListPlans(c *fiber.Ctx) error {
	out, err := h.plans.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreatePlan godoc
// @Summary      Crear plan
// @Tags         superadmin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlanRequest  true  "Datos del plan"
// @Success      201   {object}  dto.PlanResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/superadmin/plans [post]
func (h *SuperadminHandler) CreatePlan(c *fiber.Ctx) error {
	var in dto.PlanRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.plans.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePlan godoc
// @Summary      Editar plan
// @Tags         superadmin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del plan"
// @Param        body  body  dto.PlanRequest  true  "Datos del plan"
// @Success      200   {object}  dto.PlanResponse
// @Router       /api/superadmin/plans/{id} [put]
func (h *SuperadminHandler) UpdatePlan(c *fiber.Ctx) error {
	var in dto.PlanRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.plans.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TogglePlanArchive godoc
// @Summary      Archivar o restaurar plan
// @Tags         superadmin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plan"
// @Success      200  {object}  dto.PlanResponse
// @Router       /api/superadmin/plans/{id}/archive-toggle [patch]
func (h *SuperadminHandler) TogglePlanArchive(c *fiber.Ctx) error {
	out, err := h.plans.ToggleArchive(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Proveedores de IA ─────────────────────────────────────────────────────────

// ListProviders godoc
// @Summary      Listar proveedores de IA
// @Tags         superadmin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AIProviderResponse
// @Router       /api/superadmin/ai-providers [get]
func (h *SuperadminHandler) ListProviders(c *fiber.Ctx) error {
	out, err := h.providers.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateProvider godoc
// @Summary      Registrar proveedor de IA
// @Tags         superadmin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AIProviderRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.AIProviderResponse
// @Router       /api/superadmin/ai-providers [post]
func (h *SuperadminHandler) CreateProvider(c *fiber.Ctx) error {
	var in dto.AIProviderRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.providers.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProvider godoc
// @Summary      Editar proveedor de IA
// @Tags         superadmin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del proveedor"
// @Param        body  body  dto.AIProviderRequest  true  "Datos del proveedor"
// @Success      200   {object}  dto.AIProviderResponse
// @Router       /api/superadmin/ai-providers/{id} [put]
func (h *SuperadminHandler) UpdateProvider(c *fiber.Ctx) error {
	var in dto.AIProviderRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.providers.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteProvider godoc
// @Summary      Eliminar proveedor de IA
// @Tags         superadmin
// @Security     Bearer
// @Param        id   path  string  true  "ID del proveedor"
// @Success      204
// @Router       /api/superadmin/ai-providers/{id} [delete]
func (h *SuperadminHandler) DeleteProvider(c *fiber.Ctx) error {
	if err := h.providers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Comunicados ───────────────────────────────────────────────────────────────

// ListMessages godoc
// @Summary      Listar comunicados
// @Tags         superadmin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AdminMessageResponse
// @Router       /api/superadmin/messages [get]
func (h *SuperadminHandler) ListMessages(c *fiber.Ctx) error {
	out, err := h.messages.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SendMessage godoc
// @Summary      Enviar comunicado
// @Tags         superadmin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminMessageRequest  true  "asunto, cuerpo, destinatarios"
// @Success      201   {object}  dto.AdminMessageResponse
// @Router       /api/superadmin/messages [post]
func (h *SuperadminHandler) SendMessage(c *fiber.Ctx) error {
	var in dto.AdminMessageRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.messages.Send(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteMessage godoc
// @Summary      Eliminar comunicado
// @Tags         superadmin
// @Security     Bearer
// @Param        id   path  string  true  "ID del comunicado"
// @Success      204
// @Router       /api/superadmin/messages/{id} [delete]
func (h *SuperadminHandler) DeleteMessage(c *fiber.Ctx) error {
	if err := h.messages.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Respaldos ─────────────────────────────────────────────────────────────────

// ListBackups godoc
// @Summary      Bitácora de respaldos
// @Tags         superadmin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BackupLogResponse
// @Router       /api/superadmin/backups/logs [get]
func (h *SuperadminHandler) ListBackups(c *fiber.Ctx) error {
	out, err := h.backups.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateBackup godoc
// @Summary      Lanzar respaldo
// @Description  Registra el respaldo en estado in_progress y lo ejecuta en segundo plano.
// @Tags         superadmin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackupRequest  true  "type, accountId"
// @Success      202   {object}  dto.BackupLogResponse
// @Router       /api/superadmin/backups/create [post]
func (h *SuperadminHandler) CreateBackup(c *fiber.Ctx) error {
	var in dto.BackupRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.backups.Create(c.UserContext(), in, entity.BackupManual)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}

// DeleteBackup godoc
// @Summary      Eliminar respaldo
// @Tags         superadmin
// @Security     Bearer
// @Param        id   path  string  true  "ID del respaldo"
// @Success      204
// @Router       /api/superadmin/backups/logs/{id} [delete]
func (h *SuperadminHandler) DeleteBackup(c *fiber.Ctx) error {
	if err := h.backups.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadBackup godoc
// @Summary      Descargar respaldo
// @Tags         superadmin
// @Security     Bearer
// @Produce      application/zip
// @Param        id   path  string  true  "ID del respaldo"
// @Success      200  {file}    binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/superadmin/backups/download/{id} [get]
func (h *SuperadminHandler) DownloadBackup(c *fiber.Ctx) error {
	path, name, err := h.backups.Download(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Download(path, name)
}
