package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// CreateOrderRequest pedido directo con sus líneas.
type CreateOrderRequest struct {
	Items         []entity.CartItem `json:"items" validate:"required,min=1"`
	CustomerNotes string            `json:"customerNotes" validate:"omitempty,max=2000"`
}

// UpdateOrderStatusRequest cambio de estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pendiente 'En Proceso' Completado Cancelado"`
}

// CustomerForm datos del comprador en el checkout.
type CustomerForm struct {
	FullName string `json:"fullName" validate:"omitempty,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Address  string `json:"address" validate:"omitempty,max=500"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// CheckoutRequest pedido desde el carrito de la tienda.
type CheckoutRequest struct {
	CustomerNotes string        `json:"customerNotes" validate:"omitempty,max=2000"`
	Customer      *CustomerForm `json:"customer"`
	PaymentMethod string        `json:"paymentMethod" validate:"omitempty,oneof=cashOnDelivery qrPayment nequiPayment stripeMock paypalMock"`
}

// OrderResponse salida de un pedido. OrderDate en milisegundos Unix.
type OrderResponse struct {
	ID            string            `json:"id"`
	Items         []entity.CartItem `json:"items"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	CustomerNotes string            `json:"customerNotes,omitempty"`
	OrderDate     int64             `json:"orderDate"`
	Status        string            `json:"status"`
}

// CheckoutResponse pedido creado y mensaje listo para WhatsApp.
type CheckoutResponse struct {
	Order        OrderResponse `json:"order"`
	Message      string        `json:"message"`
	WhatsappLink string        `json:"whatsappLink,omitempty"`
}

// InquiryResponse mensaje de consulta y enlace wa.me.
type InquiryResponse struct {
	Message      string `json:"message"`
	WhatsappLink string `json:"whatsappLink"`
}
