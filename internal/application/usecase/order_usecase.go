package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/cartshare"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
	"github.com/jhoicas/tiendapyme-api/internal/domain/whatsapp"
)

// OrderUseCase pedidos, checkout por WhatsApp y comprobante PDF.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	stores   *StoreUseCase
	tx       ports.TxRunner
	receipts ports.ReceiptRenderer
	now      func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	stores *StoreUseCase,
	tx ports.TxRunner,
	receipts ports.ReceiptRenderer,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, stores: stores, tx: tx, receipts: receipts, now: time.Now}
}

// List pedidos de la tienda, más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, storeID string) ([]dto.OrderResponse, error) {
	list, err := uc.orders.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Create registra un pedido con las líneas dadas; total = suma de subtotales.
func (uc *OrderUseCase) Create(ctx context.Context, storeID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := cartshare.Validate(in.Items); err != nil {
		return nil, fmt.Errorf("%w: cada línea necesita productId y quantity > 0", domain.ErrInvalidInput)
	}
	o := uc.newOrder(storeID, in.Items, in.CustomerNotes)
	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	res := toOrderResponse(o)
	return &res, nil
}

func (uc *OrderUseCase) newOrder(storeID string, items []entity.CartItem, notes string) *entity.Order {
	now := uc.now()
	return &entity.Order{
		ID:            uuid.New().String(),
		StoreID:       storeID,
		Items:         items,
		TotalAmount:   entity.CartTotal(items),
		CustomerNotes: notes,
		OrderDate:     now,
		Status:        entity.OrderPending,
		UpdatedAt:     now,
	}
}

// UpdateStatus cambia el estado del pedido.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, storeID, id string, status entity.OrderStatus) (*dto.OrderResponse, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado de pedido desconocido", domain.ErrInvalidInput)
	}
	o, err := uc.orders.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = uc.now()
	if err := uc.orders.UpdateStatus(ctx, o); err != nil {
		return nil, err
	}
	res := toOrderResponse(o)
	return &res, nil
}

// Checkout crea el pedido desde el carrito y lo vacía en una transacción.
// Devuelve el mensaje para WhatsApp y, si la tienda tiene número, el enlace wa.me.
func (uc *OrderUseCase) Checkout(ctx context.Context, storeID string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	settings, err := uc.stores.Settings(ctx, storeID)
	if err != nil {
		return nil, err
	}
	input := whatsapp.OrderInput{Notes: in.CustomerNotes, PaymentKey: in.PaymentMethod}
	if in.Customer != nil {
		input.Customer = &whatsapp.Customer{
			FullName: in.Customer.FullName,
			Phone:    in.Customer.Phone,
			Address:  in.Customer.Address,
			Email:    in.Customer.Email,
		}
	}

	var order *entity.Order
	err = uc.tx.RunCatalog(ctx, func(_ repository.ProductRepository, carts repository.CartRepository, orders repository.OrderRepository) error {
		items, err := carts.Get(ctx, storeID)
		if err != nil {
			return err
		}
		input.Items = items
		if err := input.Validate(*settings); err != nil {
			return err
		}
		order = uc.newOrder(storeID, items, whatsapp.CombinedNotes(input))
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		return carts.Save(ctx, storeID, []entity.CartItem{})
	})
	if err != nil {
		return nil, err
	}

	msg := whatsapp.OrderMessage(*settings, input)
	link, err := whatsapp.Link(settings.WhatsappNumber, msg)
	if err != nil && !errors.Is(err, whatsapp.ErrNoWhatsappNumber) {
		return nil, err
	}
	return &dto.CheckoutResponse{Order: toOrderResponse(order), Message: msg, WhatsappLink: link}, nil
}

// Receipt genera el PDF del pedido con QR al enlace de confirmación cuando hay número.
func (uc *OrderUseCase) Receipt(ctx context.Context, storeID, id string) ([]byte, string, error) {
	o, err := uc.orders.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, "", err
	}
	if o == nil {
		return nil, "", domain.ErrNotFound
	}
	settings, err := uc.stores.Settings(ctx, storeID)
	if err != nil {
		return nil, "", err
	}
	data := ports.ReceiptData{
		Order:        o,
		BusinessName: whatsapp.BusinessName(*settings),
		ContactInfo:  settings.ContactInfo,
		PrimaryColor: settings.PrimaryColor,
	}
	confirm := fmt.Sprintf("Hola %s, quiero confirmar mi pedido %s por $%s.",
		data.BusinessName, shortID(o.ID), o.TotalAmount.StringFixed(2))
	if link, err := whatsapp.Link(settings.WhatsappNumber, confirm); err == nil {
		data.ConfirmLink = link
	}
	pdf, err := uc.receipts.RenderOrderReceipt(ctx, data)
	if err != nil {
		return nil, "", err
	}
	return pdf, "pedido-" + shortID(o.ID) + ".pdf", nil
}

// ProductInquiry mensaje de consulta sobre un producto de la vitrina.
func (uc *OrderUseCase) ProductInquiry(ctx context.Context, storeID, productID string) (*dto.InquiryResponse, error) {
	p, err := uc.products.GetByID(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	settings, err := uc.stores.Settings(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return inquiry(settings.WhatsappNumber, whatsapp.ProductInquiry(*settings, p))
}

// GeneralInquiry mensaje del botón flotante de la vitrina.
func (uc *OrderUseCase) GeneralInquiry(ctx context.Context, storeID string) (*dto.InquiryResponse, error) {
	settings, err := uc.stores.Settings(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return inquiry(settings.WhatsappNumber, whatsapp.GeneralInquiry(*settings))
}

func inquiry(number, msg string) (*dto.InquiryResponse, error) {
	link, err := whatsapp.Link(number, msg)
	if err != nil {
		if errors.Is(err, whatsapp.ErrNoWhatsappNumber) {
			return nil, fmt.Errorf("%w: %v", domain.ErrConflict, err)
		}
		return nil, err
	}
	return &dto.InquiryResponse{Message: msg, WhatsappLink: link}, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := o.Items
	if items == nil {
		items = []entity.CartItem{}
	}
	return dto.OrderResponse{
		ID:            o.ID,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		CustomerNotes: o.CustomerNotes,
		OrderDate:     o.OrderDate.UnixMilli(),
		Status:        string(o.Status),
	}
}
