package ports

import "context"

// Mail correo saliente.
type Mail struct {
	To      []string
	Subject string
	Body    string // HTML
}

// Mailer entrega correos. Las implementaciones deben respetar la cancelación del contexto.
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}
