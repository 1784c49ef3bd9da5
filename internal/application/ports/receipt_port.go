package ports

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// ReceiptData todo lo que necesita el comprobante de un pedido.
type ReceiptData struct {
	Order        *entity.Order
	BusinessName string
	ContactInfo  string
	PrimaryColor string
	// ConfirmLink enlace wa.me de confirmación; vacío = sin QR.
	ConfirmLink string
}

// ReceiptRenderer genera el comprobante PDF de un pedido.
type ReceiptRenderer interface {
	RenderOrderReceipt(ctx context.Context, data ReceiptData) ([]byte, error)
}
