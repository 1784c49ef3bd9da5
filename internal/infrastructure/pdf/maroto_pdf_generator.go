// Package pdf genera el comprobante de pedido en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  N° Pedido + Fecha + Estado  │
//	│  CONTACTO                                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL / NOTAS DEL CLIENTE                                   │
//	│  FOOTER: QR de confirmación por WhatsApp                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

var _ ports.ReceiptRenderer = (*MarotoReceiptGenerator)(nil)

var (
	defaultPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray      = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa ports.ReceiptRenderer usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// RenderOrderReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) RenderOrderReceipt(_ context.Context, data ports.ReceiptData) ([]byte, error) {
	if data.Order == nil {
		return nil, fmt.Errorf("pdf: pedido nulo")
	}
	primary := parseHexColor(data.PrimaryColor)
	business := nonEmpty(data.BusinessName, "Mi Tienda")

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de pedido", true).
		WithAuthor(business, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Order, business, primary))
	if data.ContactInfo != "" {
		m.AddRows(contactRow(data.ContactInfo))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(primary))
	for _, r := range tableItemRows(data.Order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.3}))
	m.AddRows(totalRow(data.Order.TotalAmount, primary))
	if data.Order.CustomerNotes != "" {
		for _, r := range notesRows(data.Order.CustomerNotes, primary) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data.ConfirmLink, primary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y N° de pedido, fecha y estado (der).
func headerRow(o *entity.Order, business string, primary *props.Color) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(business, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: primary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: primary, Top: 1,
			}),
			text.New("#"+shortID(o.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+o.OrderDate.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Estado: "+string(o.Status), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

func contactRow(contact string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(contact, props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

func tableHeaderRow(primary *props.Color) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: primary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func tableItemRows(items []entity.CartItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(unitPrice(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(money(it.Subtotal()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalRow(total decimal.Decimal, primary *props.Color) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: primary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(money(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: primary, Right: 1, Top: 2,
		})),
	)
}

func notesRows(notes string, primary *props.Color) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(text.New("NOTAS DEL CLIENTE", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: primary, Top: 1,
		}))),
	}
	for _, l := range strings.Split(notes, "\n") {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 7.5, Color: colorGray, Left: 2}),
		)))
	}
	return rows
}

// footerRow: QR con el enlace de confirmación, o solo el agradecimiento si no hay WhatsApp.
func footerRow(confirmLink string, primary *props.Color) core.Row {
	thanks := text.New("¡Gracias por tu compra!", props.Text{
		Style: fontstyle.Bold, Size: 11, Color: primary, Top: 4, Left: 3,
	})
	if confirmLink == "" {
		return row.New(14).Add(col.New(12).Add(thanks))
	}
	return row.New(45).Add(
		col.New(4).Add(code.NewQr(confirmLink, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			thanks,
			text.New("Escanea el código QR para confirmar\ntu pedido por WhatsApp.", props.Text{
				Size: 8, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// shortID primeros 8 caracteres del ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func unitPrice(price string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return nonEmpty(price, "-")
	}
	return money(d)
}

// money formato "$25.000" o "$25.000,50" si hay centavos.
func money(d decimal.Decimal) string {
	neg := d.IsNegative()
	d = d.Abs()
	intPart := d.Truncate(0)
	s := "$" + formatMoney(intPart.StringFixed(0))
	if frac := d.Sub(intPart); !frac.IsZero() {
		s += "," + strings.TrimPrefix(frac.StringFixed(2), "0.")
	}
	if neg {
		s = "-" + s
	}
	return s
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// parseHexColor convierte "#rrggbb" (o "#rgb"); inválido = azul por defecto.
func parseHexColor(hex string) *props.Color {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return defaultPrimary
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return defaultPrimary
	}
	return &props.Color{Red: int(v >> 16 & 0xff), Green: int(v >> 8 & 0xff), Blue: int(v & 0xff)}
}
