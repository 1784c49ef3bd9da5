// Package whatsapp arma los mensajes de pedido y consulta que la tienda recibe por WhatsApp.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// DefaultBusinessName nombre usado cuando la tienda no configuró uno.
const DefaultBusinessName = "Mi Tienda"

const (
	notSpecified   = "No especificado"
	noNotes        = "Ninguna"
	closingLine    = "\n\nHe realizado el pago / enviaré el comprobante según las instrucciones. ¡Gracias!"
	orderPlacedFix = "he realizado el siguiente pedido"
)

// ErrNoWhatsappNumber la tienda no configuró número.
var ErrNoWhatsappNumber = errors.New("el número de WhatsApp no está configurado para este negocio")

var orderIntentRe = regexp.MustCompile(`(?i)quisiera hacer un pedido|quiero confirmar mi pedido`)

// ReplacePlaceholders reemplaza cada {clave} por su valor, de forma literal y global.
// Los marcadores sin dato se dejan tal cual. Las claves se procesan en orden alfabético.
func ReplacePlaceholders(template string, data map[string]string) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := template
	for _, k := range keys {
		out = strings.ReplaceAll(out, "{"+k+"}", data[k])
	}
	return out
}

// BusinessName nombre de la tienda o el valor por defecto.
func BusinessName(s entity.BusinessSettings) string {
	if strings.TrimSpace(s.BusinessName) == "" {
		return DefaultBusinessName
	}
	return s.BusinessName
}

// Link arma la URL wa.me; del número solo se conservan dígitos y '+'.
func Link(number, message string) (string, error) {
	clean := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, number)
	if clean == "" {
		return "", ErrNoWhatsappNumber
	}
	return "https://wa.me/" + clean + "?text=" + encodeURIComponent(message), nil
}

// encodeURIComponent codifica como el navegador: espacios como %20, no como '+'.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// PaymentMethod medio de pago habilitado por la tienda.
type PaymentMethod struct {
	Key          string `json:"key"`
	Title        string `json:"title"`
	Instructions string `json:"instructions,omitempty"`
}

// Claves de medios de pago.
const (
	PayCashOnDelivery = "cashOnDelivery"
	PayQR             = "qrPayment"
	PayNequi          = "nequiPayment"
	PayStripeMock     = "stripeMock"
	PayPaypalMock     = "paypalMock"
)

// EnabledPaymentMethods medios activos en el orden en que se muestran al cliente.
func EnabledPaymentMethods(s entity.BusinessSettings) []PaymentMethod {
	var out []PaymentMethod
	if s.EnableCashOnDelivery {
		out = append(out, PaymentMethod{Key: PayCashOnDelivery, Title: "Pago Contra Entrega", Instructions: s.CashOnDeliveryInstructions})
	}
	if s.EnableQRPayment {
		out = append(out, PaymentMethod{Key: PayQR, Title: "Paga con Código QR", Instructions: s.QRPaymentInstructions})
	}
	if s.EnableNequiPayment {
		ins := s.NequiPaymentInstructions
		if s.NequiPhoneNumber != "" {
			ins = strings.TrimSpace("Número: " + s.NequiPhoneNumber + ". " + ins)
		}
		out = append(out, PaymentMethod{Key: PayNequi, Title: "Paga con Nequi", Instructions: ins})
	}
	if s.StripeAPIKeyMock != "" {
		out = append(out, PaymentMethod{Key: PayStripeMock, Title: "Tarjeta de Crédito/Débito (Simulado)"})
	}
	if s.PaypalEmailMock != "" {
		out = append(out, PaymentMethod{Key: PayPaypalMock, Title: "PayPal (Simulado)", Instructions: "Email: " + s.PaypalEmailMock})
	}
	return out
}

// Customer datos del formulario del cliente.
type Customer struct {
	FullName string
	Phone    string
	Address  string
	Email    string
}

func (c *Customer) trimmed() Customer {
	if c == nil {
		return Customer{}
	}
	return Customer{
		FullName: strings.TrimSpace(c.FullName),
		Phone:    strings.TrimSpace(c.Phone),
		Address:  strings.TrimSpace(c.Address),
		Email:    strings.TrimSpace(c.Email),
	}
}

// OrderInput datos del checkout. Customer nil = formulario cerrado.
type OrderInput struct {
	Items      []entity.CartItem
	Notes      string
	Customer   *Customer
	PaymentKey string
}

// Validate aplica las reglas del checkout contra la configuración de la tienda.
func (in OrderInput) Validate(s entity.BusinessSettings) error {
	if len(in.Items) == 0 {
		return domain.ErrEmptyCart
	}
	if in.Customer != nil {
		c := in.Customer.trimmed()
		switch {
		case c.FullName == "":
			return fmt.Errorf("%w: el nombre completo es obligatorio", domain.ErrInvalidInput)
		case c.Phone == "":
			return fmt.Errorf("%w: el número de teléfono es obligatorio", domain.ErrInvalidInput)
		case c.Address == "":
			return fmt.Errorf("%w: la dirección de envío es obligatoria", domain.ErrInvalidInput)
		}
	}
	methods := EnabledPaymentMethods(s)
	if len(methods) > 0 && in.PaymentKey == "" {
		return fmt.Errorf("%w: selecciona un método de pago", domain.ErrInvalidInput)
	}
	return nil
}

// PaymentTitle título del medio elegido, o "No especificado".
func PaymentTitle(s entity.BusinessSettings, key string) string {
	if key == "" {
		return notSpecified
	}
	for _, m := range EnabledPaymentMethods(s) {
		if m.Key == key {
			return m.Title
		}
	}
	return notSpecified
}

// CombinedNotes notas que se guardan con el pedido: notas del carrito más el formulario.
func CombinedNotes(in OrderInput) string {
	var b strings.Builder
	if n := strings.TrimSpace(in.Notes); n != "" {
		b.WriteString("Notas del Pedido (Carrito): " + n + "\n\n")
	}
	c := in.Customer.trimmed()
	if in.Customer != nil && (c.FullName != "" || c.Phone != "" || c.Address != "" || c.Email != "") {
		b.WriteString("Información del Cliente (Formulario):\n")
		if c.FullName != "" {
			b.WriteString("Nombre: " + c.FullName + "\n")
		}
		if c.Phone != "" {
			b.WriteString("Teléfono: " + c.Phone + "\n")
		}
		if c.Address != "" {
			b.WriteString("Dirección: " + c.Address + "\n")
		}
		if c.Email != "" {
			b.WriteString("Email: " + c.Email + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func itemsList(items []entity.CartItem) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("- %s (x%d) - $%s", it.Name, it.Quantity, it.Subtotal().StringFixed(2)))
	}
	return strings.Join(lines, "\n")
}

// OrderMessage mensaje de confirmación de pedido. Con plantilla se adapta el texto a
// "pedido realizado" y se garantiza la línea de método de pago.
func OrderMessage(s entity.BusinessSettings, in OrderInput) string {
	business := BusinessName(s)
	payment := PaymentTitle(s, in.PaymentKey)
	total := entity.CartTotal(in.Items).StringFixed(2)
	list := itemsList(in.Items)
	c := in.Customer.trimmed()

	var msg string
	if tpl := s.WhatsappOrderTemplate; tpl != "" {
		notes := CombinedNotes(in)
		if notes == "" {
			notes = noNotes
		}
		adapted := orderIntentRe.ReplaceAllLiteralString(tpl, orderPlacedFix)
		if !strings.Contains(tpl, "{paymentMethod}") {
			adapted += "\nMétodo de Pago: {paymentMethod}"
		}
		msg = ReplacePlaceholders(adapted, map[string]string{
			"businessName":     business,
			"cartItemsList":    list,
			"totalAmount":      total,
			"customerNotes":    notes,
			"customerFullName": c.FullName,
			"customerPhone":    c.Phone,
			"customerAddress":  c.Address,
			"customerEmail":    c.Email,
			"paymentMethod":    payment,
		})
	} else {
		var b strings.Builder
		b.WriteString("Hola " + business + ", he realizado el siguiente pedido:\n\n")
		b.WriteString(list + "\n")
		b.WriteString("\nTotal: $" + total + "\n")
		b.WriteString("Método de Pago Seleccionado: " + payment + "\n")
		if in.Customer != nil && c.FullName != "" {
			b.WriteString("\n--- Información del Cliente ---\n")
			b.WriteString("Nombre: " + c.FullName + "\n")
			b.WriteString("Teléfono: " + c.Phone + "\n")
			b.WriteString("Dirección: " + c.Address + "\n")
			if c.Email != "" {
				b.WriteString("Email: " + c.Email + "\n")
			}
			b.WriteString("-----------------------------\n")
		}
		if n := strings.TrimSpace(in.Notes); n != "" {
			b.WriteString("\nNotas Adicionales (Carrito): " + n + "\n")
		}
		msg = b.String()
	}
	return msg + closingLine
}

// ProductInquiry consulta sobre un producto puntual.
func ProductInquiry(s entity.BusinessSettings, p *entity.Product) string {
	business := BusinessName(s)
	price := p.Price
	if price == "" {
		price = "N/A"
	}
	if tpl := s.WhatsappInquiryTemplate; tpl != "" {
		return ReplacePlaceholders(tpl, map[string]string{
			"businessName": business,
			"productName":  p.Name,
			"productPrice": price,
		})
	}
	return fmt.Sprintf("Hola %s, estoy interesado/a en el producto: \"%s\". Precio: $%s. ¿Podrías darme más información?", business, p.Name, price)
}

// GeneralInquiry consulta general desde el botón flotante de la vitrina.
// Si la plantilla queda casi vacía sin datos de producto, se usa un texto genérico.
func GeneralInquiry(s entity.BusinessSettings) string {
	business := BusinessName(s)
	greeting := "Hola " + business + ", "
	if tpl := s.WhatsappInquiryTemplate; tpl != "" {
		msg := ReplacePlaceholders(tpl, map[string]string{
			"businessName": business,
			"productName":  "",
			"productPrice": "",
		})
		if len([]rune(msg)) < len([]rune(greeting))+5 {
			return greeting + "tengo una consulta general sobre tus productos/servicios."
		}
		return msg
	}
	return greeting + "tengo una consulta general."
}
