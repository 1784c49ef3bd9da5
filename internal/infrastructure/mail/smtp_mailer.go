// Package mail entrega los comunicados del superadmin por SMTP.
package mail

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/pkg/config"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

// SMTPMailer implementa ports.Mailer con gomail. Los destinatarios van en copia oculta.
type SMTPMailer struct {
	from   string
	dialer *gomail.Dialer
}

// NewSMTPMailer construye el mailer; nil si SMTP no está configurado.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	if !cfg.Enabled() {
		return nil
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPMailer{
		from:   from,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// Send entrega el correo. gomail no acepta contexto: solo se revisa antes de conectar.
func (m *SMTPMailer) Send(ctx context.Context, mail ports.Mail) error {
	if len(mail.To) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(buildMessage(m.from, mail)); err != nil {
		return fmt.Errorf("smtp: enviar correo: %w", err)
	}
	return nil
}

func buildMessage(from string, mail ports.Mail) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", from)
	msg.SetHeader("Bcc", mail.To...)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)
	msg.AddAlternative("text/html", "<p>"+strings.ReplaceAll(html.EscapeString(mail.Body), "\n", "<br>")+"</p>")
	return msg
}
