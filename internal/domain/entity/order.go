package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del pedido.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pendiente"
	OrderInProgress OrderStatus = "En Proceso"
	OrderCompleted  OrderStatus = "Completado"
	OrderCancelled  OrderStatus = "Cancelado"
)

// Valid indica si el estado es conocido.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order pedido generado desde el carrito de la tienda.
type Order struct {
	ID            string
	StoreID       string
	Items         []CartItem
	TotalAmount   decimal.Decimal
	CustomerNotes string
	OrderDate     time.Time
	Status        OrderStatus
	UpdatedAt     time.Time
}
