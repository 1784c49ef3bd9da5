package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// CartRequest reemplazo completo del carrito.
type CartRequest struct {
	Items []entity.CartItem `json:"items" validate:"required"`
}

// CartResponse carrito con total calculado.
type CartResponse struct {
	Items []entity.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// CartShareResponse código base64 y enlace con ?sharedCart=.
type CartShareResponse struct {
	Code string `json:"code"`
	URL  string `json:"url"`
}

// CartImportRequest código recibido por enlace.
type CartImportRequest struct {
	Code string `json:"code" validate:"required"`
}
