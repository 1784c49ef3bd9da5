package mail

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/pkg/config"
)

func TestNewSMTPMailer_Deshabilitado(t *testing.T) {
	assert.Nil(t, NewSMTPMailer(config.SMTPConfig{}))
}

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("admin@tienda.co", ports.Mail{
		To: []string{"a@t.co", "b@t.co"}, Subject: "Novedades", Body: "Hola <equipo>\nSaludos",
	})
	assert.Equal(t, []string{"a@t.co", "b@t.co"}, msg.GetHeader("Bcc"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Subject: Novedades")
	assert.Contains(t, out, "text/html")
	assert.Contains(t, out, "&lt;equipo&gt;")
}

func TestSend_ContextoCancelado(t *testing.T) {
	m := NewSMTPMailer(config.SMTPConfig{Host: "127.0.0.1", Port: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, ports.Mail{To: []string{"a@t.co"}}), context.Canceled)
}
