package entity

// BusinessSettings configuración de la tienda (marca, WhatsApp y pagos simulados).
// Se persiste como documento JSONB; los tags JSON son las claves del documento.
type BusinessSettings struct {
	BusinessName            string `json:"businessName,omitempty"`
	BusinessCategory        string `json:"businessCategory,omitempty"`
	PrimaryColor            string `json:"primaryColor,omitempty"`
	LogoPreviewURL          string `json:"logoPreviewUrl,omitempty"`
	ContactInfo             string `json:"contactInfo,omitempty"`
	WhatsappNumber          string `json:"whatsappNumber,omitempty"`
	WhatsappOrderTemplate   string `json:"whatsappOrderTemplate,omitempty"`
	WhatsappInquiryTemplate string `json:"whatsappInquiryTemplate,omitempty"`

	EnableCashOnDelivery       bool   `json:"enableCashOnDelivery,omitempty"`
	CashOnDeliveryInstructions string `json:"cashOnDeliveryInstructions,omitempty"`
	StripeAPIKeyMock           string `json:"stripeApiKeyMock,omitempty"`
	StripeSecretKeyMock        string `json:"stripeSecretKeyMock,omitempty"`
	PaypalEmailMock            string `json:"paypalEmailMock,omitempty"`

	EnableQRPayment          bool   `json:"enableQrPayment,omitempty"`
	QRCodeImageURL           string `json:"qrCodeImageUrl,omitempty"`
	QRPaymentInstructions    string `json:"qrPaymentInstructions,omitempty"`
	EnableNequiPayment       bool   `json:"enableNequiPayment,omitempty"`
	NequiPhoneNumber         string `json:"nequiPhoneNumber,omitempty"`
	NequiPaymentInstructions string `json:"nequiPaymentInstructions,omitempty"`
}

// DefaultPrimaryColor color de marca cuando la tienda no definió uno.
const DefaultPrimaryColor = "#2563eb"
