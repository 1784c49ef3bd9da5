package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

var items = []entity.CartItem{
	{ProductID: "p1", Name: "Café", Price: "12.5", Quantity: 2},
	{ProductID: "p2", Name: "Taza", Price: "8", Quantity: 1},
}

func TestReplacePlaceholders(t *testing.T) {
	got := ReplacePlaceholders("Hola {a}, {a} y {b}. {c} queda", map[string]string{"a": "X", "b": "$1.00"})
	assert.Equal(t, "Hola X, X y $1.00. {c} queda", got)
}

func TestLink(t *testing.T) {
	got, err := Link("+57 (300) 123-4567", "Hola Mi Tienda, ¿precio?&x=1")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/+573001234567?text=Hola%20Mi%20Tienda%2C%20%C2%BFprecio%3F%26x%3D1", got)

	_, err = Link("sin número", "x")
	assert.ErrorIs(t, err, ErrNoWhatsappNumber)
}

func TestOrderMessage_PorDefecto(t *testing.T) {
	s := entity.BusinessSettings{BusinessName: "Donde Ana", EnableCashOnDelivery: true}
	in := OrderInput{
		Items:      items,
		Notes:      "sin azúcar",
		Customer:   &Customer{FullName: " Ana Pérez ", Phone: "300", Address: "Calle 1"},
		PaymentKey: PayCashOnDelivery,
	}
	want := "Hola Donde Ana, he realizado el siguiente pedido:\n\n" +
		"- Café (x2) - $25.00\n- Taza (x1) - $8.00\n" +
		"\nTotal: $33.00\n" +
		"Método de Pago Seleccionado: Pago Contra Entrega\n" +
		"\n--- Información del Cliente ---\n" +
		"Nombre: Ana Pérez\nTeléfono: 300\nDirección: Calle 1\n" +
		"-----------------------------\n" +
		"\nNotas Adicionales (Carrito): sin azúcar\n" +
		"\n\nHe realizado el pago / enviaré el comprobante según las instrucciones. ¡Gracias!"
	assert.Equal(t, want, OrderMessage(s, in))
}

func TestOrderMessage_ConPlantilla(t *testing.T) {
	s := entity.BusinessSettings{
		WhatsappOrderTemplate: "Hola {businessName}, QUISIERA HACER UN PEDIDO:\n{cartItemsList}\nTotal {totalAmount}\nNotas: {customerNotes}",
	}
	got := OrderMessage(s, OrderInput{Items: items[:1]})
	want := "Hola Mi Tienda, he realizado el siguiente pedido:\n- Café (x2) - $25.00\nTotal 25.00\nNotas: Ninguna" +
		"\nMétodo de Pago: No especificado" +
		"\n\nHe realizado el pago / enviaré el comprobante según las instrucciones. ¡Gracias!"
	assert.Equal(t, want, got)
}

func TestOrderInput_Validate(t *testing.T) {
	s := entity.BusinessSettings{EnableQRPayment: true}

	assert.ErrorIs(t, OrderInput{}.Validate(s), domain.ErrEmptyCart)
	assert.ErrorIs(t, OrderInput{Items: items}.Validate(s), domain.ErrInvalidInput, "falta método de pago")
	assert.ErrorIs(t, OrderInput{Items: items, PaymentKey: PayQR, Customer: &Customer{FullName: "A"}}.Validate(s), domain.ErrInvalidInput)
	assert.NoError(t, OrderInput{Items: items, PaymentKey: PayQR}.Validate(s))
	assert.NoError(t, OrderInput{Items: items}.Validate(entity.BusinessSettings{}))
}

func TestCombinedNotes(t *testing.T) {
	got := CombinedNotes(OrderInput{Notes: "rápido", Customer: &Customer{FullName: "Ana", Email: "a@b.co"}})
	assert.Equal(t, "Notas del Pedido (Carrito): rápido\n\nInformación del Cliente (Formulario):\nNombre: Ana\nEmail: a@b.co", got)
	assert.Empty(t, CombinedNotes(OrderInput{}))
}

func TestProductInquiry(t *testing.T) {
	p := &entity.Product{Name: "Arepa"}
	assert.Equal(t, `Hola Mi Tienda, estoy interesado/a en el producto: "Arepa". Precio: $N/A. ¿Podrías darme más información?`,
		ProductInquiry(entity.BusinessSettings{}, p))

	s := entity.BusinessSettings{BusinessName: "Ana", WhatsappInquiryTemplate: "{businessName}: info de {productName} a {productPrice}"}
	p.Price = "3000"
	assert.Equal(t, "Ana: info de Arepa a 3000", ProductInquiry(s, p))
}

func TestGeneralInquiry(t *testing.T) {
	assert.Equal(t, "Hola Ana, tengo una consulta general.", GeneralInquiry(entity.BusinessSettings{BusinessName: "Ana"}))

	short := entity.BusinessSettings{BusinessName: "Ana", WhatsappInquiryTemplate: "{productName}?"}
	assert.Equal(t, "Hola Ana, tengo una consulta general sobre tus productos/servicios.", GeneralInquiry(short))

	long := entity.BusinessSettings{BusinessName: "Ana", WhatsappInquiryTemplate: "Buenas {businessName}, quisiera saber horarios"}
	assert.Equal(t, "Buenas Ana, quisiera saber horarios", GeneralInquiry(long))
}

func TestEnabledPaymentMethods(t *testing.T) {
	s := entity.BusinessSettings{EnableNequiPayment: true, NequiPhoneNumber: "300", PaypalEmailMock: "p@x.co"}
	got := EnabledPaymentMethods(s)
	require.Len(t, got, 2)
	assert.Equal(t, PayNequi, got[0].Key)
	assert.Equal(t, "PayPal (Simulado)", PaymentTitle(s, PayPaypalMock))
	assert.Equal(t, "No especificado", PaymentTitle(s, PayQR))
}
