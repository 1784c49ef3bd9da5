package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/pkg/validate"
)

var errInvalidBody = errors.New("cuerpo inválido")

// parseBody decodifica el JSON y aplica las reglas validate del DTO.
func parseBody(c *fiber.Ctx, in interface{}) error {
	if err := c.BodyParser(in); err != nil {
		return errInvalidBody
	}
	if errs := validate.Struct(in); errs != nil {
		return &validationError{msg: validate.Format(errs)}
	}
	return nil
}

type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }
func (e *validationError) Unwrap() error { return domain.ErrInvalidInput }

// respondError traduce errores de dominio a HTTP. Lo desconocido es 500 con mensaje genérico
// y la causa solo va al log.
func respondError(c *fiber.Ctx, err error) error {
	status, code, msg := fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor"
	var verr *validationError
	switch {
	case errors.Is(err, errInvalidBody):
		status, code, msg = fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido"
	case errors.As(err, &verr):
		status, code, msg = fiber.StatusBadRequest, "VALIDATION", verr.msg
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		status, code, msg = fiber.StatusBadRequest, "EMAIL_EXISTS", "el email ya está registrado"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, msg = fiber.StatusBadRequest, "VALIDATION", detail(err, domain.ErrInvalidInput)
	case errors.Is(err, domain.ErrEmptyCart):
		status, code, msg = fiber.StatusBadRequest, "EMPTY_CART", domain.ErrEmptyCart.Error()
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		status, code, msg = fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		status, code, msg = fiber.StatusForbidden, "FORBIDDEN", "cuenta inactiva o suspendida"
	case errors.Is(err, domain.ErrPlanLimitReached):
		status, code, msg = fiber.StatusForbidden, "PLAN_LIMIT", domain.ErrPlanLimitReached.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, code, msg = fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"
	case errors.Is(err, domain.ErrDuplicate):
		status, code, msg = fiber.StatusConflict, "DUPLICATE", "ya existe un recurso con esos datos"
	case errors.Is(err, domain.ErrConflict):
		status, code, msg = fiber.StatusConflict, "CONFLICT", detail(err, domain.ErrConflict)
	case errors.Is(err, domain.ErrAITimeout):
		status, code, msg = fiber.StatusRequestTimeout, "AI_TIMEOUT", domain.ErrAITimeout.Error()
	case errors.Is(err, domain.ErrAIUnavailable):
		status, code, msg = fiber.StatusServiceUnavailable, "AI_UNAVAILABLE", domain.ErrAIUnavailable.Error()
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Interface("request_id", c.Locals("requestid")).
			Msg("error no controlado")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// detail devuelve el texto añadido al error de dominio ("entrada inválida: X" → "X").
func detail(err, sentinel error) string {
	s := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(s, prefix); i >= 0 {
		return s[i+len(prefix):]
	}
	return sentinel.Error()
}
