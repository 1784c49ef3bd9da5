package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// storeChecker es el contrato mínimo que necesita el middleware para verificar la tienda.
// Lo implementa repository.StoreRepository; el uso de interfaz evita el import circular.
type storeChecker interface {
	GetByID(ctx context.Context, id string) (*entity.Store, error)
}

// RequireStore verifica que el token traiga una tienda y que siga existiendo.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalStoreID).
//
// Comportamiento:
//   - 403 Forbidden → token sin tienda (superadmin) o tienda eliminada.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequireStore(checker storeChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := GetStoreID(c)
		if storeID == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "STORE_REQUIRED",
				Message: "el token no está asociado a una tienda",
			})
		}

		store, err := checker.GetByID(c.UserContext(), storeID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "STORE_CHECK_FAILED",
				Message: "no se pudo verificar la tienda, intente más tarde",
			})
		}
		if store == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "STORE_NOT_FOUND",
				Message: "la tienda del token ya no existe",
			})
		}

		return c.Next()
	}
}
