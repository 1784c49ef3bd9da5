package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrPlanLimitReached   = errors.New("límite de productos del plan alcanzado")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrAIUnavailable      = errors.New("servicio de IA no configurado")
	ErrAITimeout          = errors.New("el servicio de IA tardó demasiado")
)
