package superadmin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
	"github.com/jhoicas/tiendapyme-api/pkg/logger"
)

// MessageUseCase persiste comunicados y, si hay Mailer, los envía por correo.
type MessageUseCase struct {
	messages repository.AdminMessageRepository
	users    repository.UserRepository
	mailer   ports.Mailer
	log      *logger.Logger
	now      func() time.Time
}

// NewMessageUseCase construye el caso de uso. mailer nil = solo persistencia.
func NewMessageUseCase(messages repository.AdminMessageRepository, users repository.UserRepository, mailer ports.Mailer, log *logger.Logger) *MessageUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MessageUseCase{messages: messages, users: users, mailer: mailer, log: log, now: time.Now}
}

// List devuelve los comunicados, más recientes primero.
func (uc *MessageUseCase) List(ctx context.Context) ([]dto.AdminMessageResponse, error) {
	list, err := uc.messages.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminMessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMessageResponse(m))
	}
	return out, nil
}

// Send persiste el comunicado y lo envía por correo a las cuentas destinatarias.
// Un fallo de correo se registra en el log; el comunicado queda guardado igual.
func (uc *MessageUseCase) Send(ctx context.Context, in dto.AdminMessageRequest) (*dto.AdminMessageResponse, error) {
	category := in.Category
	if category == "" {
		category = entity.MessageInfo
	}
	msg := &entity.AdminMessage{
		ID:         uuid.NewString(),
		Subject:    in.Subject,
		Body:       in.Body,
		Recipients: in.Recipients,
		Category:   category,
		SentAt:     uc.now(),
		ReadBy:     []string{},
	}
	if err := uc.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	if uc.mailer != nil {
		uc.deliver(ctx, msg)
	}
	resp := toMessageResponse(msg)
	return &resp, nil
}

// Delete elimina el comunicado.
func (uc *MessageUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.messages.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *MessageUseCase) deliver(ctx context.Context, msg *entity.AdminMessage) {
	to := make([]string, 0, len(msg.Recipients))
	for _, id := range msg.Recipients {
		u, err := uc.users.GetByID(ctx, id)
		if err != nil {
			uc.log.Warn().Err(err).Str("account_id", id).Msg("no se pudo resolver el destinatario")
			continue
		}
		if u != nil && u.Email != "" {
			to = append(to, u.Email)
		}
	}
	if len(to) == 0 {
		return
	}
	if err := uc.mailer.Send(ctx, ports.Mail{To: to, Subject: msg.Subject, Body: msg.Body}); err != nil {
		uc.log.Error().Err(err).Str("message_id", msg.ID).Msg("envío de comunicado por correo fallido")
		return
	}
	uc.log.Info().Str("message_id", msg.ID).Int("recipients", len(to)).Msg("comunicado enviado por correo")
}

func toMessageResponse(m *entity.AdminMessage) dto.AdminMessageResponse {
	readBy := m.ReadBy
	if readBy == nil {
		readBy = []string{}
	}
	return dto.AdminMessageResponse{
		ID:         m.ID,
		Subject:    m.Subject,
		Body:       m.Body,
		Recipients: m.Recipients,
		Category:   m.Category,
		SentAt:     m.SentAt.UnixMilli(),
		ReadBy:     readBy,
	}
}
