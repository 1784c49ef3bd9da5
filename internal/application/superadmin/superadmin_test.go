package superadmin

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
	"github.com/jhoicas/tiendapyme-api/internal/infrastructure/memory"
	"github.com/jhoicas/tiendapyme-api/pkg/logger"
)

type fakeMailer struct {
	sent []ports.Mail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, mail ports.Mail) error {
	m.sent = append(m.sent, mail)
	return m.err
}

func TestAccountUseCase_CreaCuentaConTienda(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	uc := NewAccountUseCase(memory.NewUserRepository(db), memory.NewPlanRepository(db), memory.NewTxRunner(db))

	acc, err := uc.Create(ctx, dto.AccountRequest{Name: "Luis", Email: " Luis@Tienda.CO "})
	require.NoError(t, err)
	assert.Equal(t, "luis@tienda.co", acc.Email)
	assert.Equal(t, entity.UserStatusActive, acc.Status)

	store, err := memory.NewStoreRepository(db).GetByUserID(ctx, acc.ID)
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, "Luis's Store", store.BusinessName)

	_, err = uc.Create(ctx, dto.AccountRequest{Name: "Otro", Email: "luis@tienda.co"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.Create(ctx, dto.AccountRequest{Name: "X", Email: "x@t.co", PlanID: "00000000-0000-0000-0000-000000000000"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAccountUseCase_DeleteSoloSME(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	users := memory.NewUserRepository(db)
	require.NoError(t, users.Create(ctx, &entity.User{ID: "admin", Email: "root@t.co", Role: entity.RoleSuperadmin}))
	uc := NewAccountUseCase(users, memory.NewPlanRepository(db), memory.NewTxRunner(db))

	assert.ErrorIs(t, uc.Delete(ctx, "admin"), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "nadie"), domain.ErrNotFound)
}

func TestPlanUseCase_ToggleArchiveYUpsert(t *testing.T) {
	ctx := context.Background()
	uc := NewPlanUseCase(memory.NewPlanRepository(memory.NewDB()))

	p, err := uc.Create(ctx, dto.PlanRequest{Name: "Básico"})
	require.NoError(t, err)
	assert.False(t, p.IsArchived)
	assert.NotNil(t, p.Features)

	p, err = uc.ToggleArchive(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, p.IsArchived)

	_, err = uc.Create(ctx, dto.PlanRequest{Name: "Básico"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	max := 50
	up, created, err := uc.Upsert(ctx, dto.PlanRequest{Name: "Básico", Limits: entity.PlanLimits{MaxProducts: &max}})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, p.ID, up.ID)
	assert.Equal(t, 50, *up.Limits.MaxProducts)

	_, err = uc.ToggleArchive(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProviderUseCase_UnSoloPorDefecto(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	uc := NewProviderUseCase(memory.NewAIProviderRepository(db), memory.NewTxRunner(db))

	a, err := uc.Create(ctx, dto.AIProviderRequest{ProviderName: "Gemini", APIKey: "AIza-secret-1234", IsDefault: true})
	require.NoError(t, err)
	assert.Equal(t, "************1234", a.APIKey)

	b, err := uc.Create(ctx, dto.AIProviderRequest{ProviderName: "Claude", APIKey: "sk-ant-9999", IsDefault: true})
	require.NoError(t, err)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	defaults := map[string]bool{}
	for _, p := range list {
		defaults[p.ID] = p.IsDefault
	}
	assert.Equal(t, map[string]bool{a.ID: false, b.ID: true}, defaults)

	// Clave vacía en edición conserva la actual.
	_, err = uc.Update(ctx, a.ID, dto.AIProviderRequest{ProviderName: "Gemini Pro", IsDefault: true})
	require.NoError(t, err)
	stored, err := memory.NewAIProviderRepository(db).GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "AIza-secret-1234", stored.APIKey)
	assert.True(t, stored.IsDefault)

	_, err = uc.Create(ctx, dto.AIProviderRequest{ProviderName: "Sin clave"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMessageUseCase_EnviaCorreo(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	users := memory.NewUserRepository(db)
	require.NoError(t, users.Create(ctx, &entity.User{ID: "u1", Email: "ana@t.co", Role: entity.RoleSME}))
	mailer := &fakeMailer{}
	uc := NewMessageUseCase(memory.NewAdminMessageRepository(db), users, mailer, nil)

	msg, err := uc.Send(ctx, dto.AdminMessageRequest{Subject: "Hola", Body: "Bienvenida", Recipients: []string{"u1", "desconocido"}})
	require.NoError(t, err)
	assert.Equal(t, entity.MessageInfo, msg.Category)
	require.Len(t, mailer.sent, 1)
	if diff := cmp.Diff(ports.Mail{To: []string{"ana@t.co"}, Subject: "Hola", Body: "Bienvenida"}, mailer.sent[0]); diff != "" {
		t.Errorf("correo (-want +got):\n%s", diff)
	}
}

func TestMessageUseCase_FalloDeCorreoNoPierdeMensaje(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	users := memory.NewUserRepository(db)
	require.NoError(t, users.Create(ctx, &entity.User{ID: "u1", Email: "ana@t.co"}))
	uc := NewMessageUseCase(memory.NewAdminMessageRepository(db), users, &fakeMailer{err: errors.New("smtp caído")}, nil)

	_, err := uc.Send(ctx, dto.AdminMessageRequest{Subject: "s", Body: "b", Recipients: []string{"u1"}})
	require.NoError(t, err)
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBackupUseCase_CompletaYNoDejaGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	db := memory.NewDB()
	ctx := context.Background()
	require.NoError(t, memory.NewUserRepository(db).Create(ctx, &entity.User{ID: "u1", Email: "ana@t.co", Role: entity.RoleSME}))
	logs := memory.NewBackupLogRepository(db)
	uc := NewBackupUseCase(logs, memory.NewBackupExporter(db), t.TempDir(), nil)

	created, err := uc.Create(ctx, dto.BackupRequest{Type: entity.BackupFullSystem}, "")
	require.NoError(t, err)
	assert.Equal(t, entity.BackupInProgress, created.Status)
	assert.Equal(t, entity.BackupManual, created.TriggeredBy)
	uc.Wait()

	entry, err := logs.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, entity.BackupCompleted, entry.Status, entry.Error)

	path, name, err := uc.Download(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, name, "backup-")

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	var files []string
	for _, f := range zr.File {
		files = append(files, f.Name)
	}
	require.NoError(t, zr.Close())
	assert.Contains(t, files, "users.json")
	assert.Contains(t, files, "manifest.json")

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, _, err = uc.Download(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type brokenSource struct{}

func (brokenSource) Snapshot(context.Context, string) (map[string]json.RawMessage, error) {
	return nil, errors.New("db caída")
}

func TestBackupUseCase_MarcaFallido(t *testing.T) {
	defer goleak.VerifyNone(t)

	db := memory.NewDB()
	ctx := context.Background()
	logs := memory.NewBackupLogRepository(db)
	uc := NewBackupUseCase(logs, brokenSource{}, t.TempDir(), nil)

	created, err := uc.Create(ctx, dto.BackupRequest{Type: entity.BackupAccountSpecific, AccountID: "u1"}, entity.BackupManual)
	require.NoError(t, err)
	uc.Wait()

	entry, err := logs.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BackupFailed, entry.Status)
	assert.Contains(t, entry.Error, "db caída")

	_, _, err = uc.Download(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Create(ctx, dto.BackupRequest{Type: entity.BackupAccountSpecific}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// stalledSource no responde hasta que vence el contexto del respaldo.
type stalledSource struct{}

func (stalledSource) Snapshot(ctx context.Context, _ string) (map[string]json.RawMessage, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// ctxLogs rechaza escrituras con el contexto vencido, como lo haría pgx.
type ctxLogs struct{ repository.BackupLogRepository }

func (l ctxLogs) Update(ctx context.Context, entry *entity.BackupLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return l.BackupLogRepository.Update(ctx, entry)
}

func TestBackupUseCase_VencidoQuedaFallido(t *testing.T) {
	defer goleak.VerifyNone(t)

	db := memory.NewDB()
	ctx := context.Background()
	logs := memory.NewBackupLogRepository(db)
	uc := NewBackupUseCase(ctxLogs{logs}, stalledSource{}, t.TempDir(), nil)
	uc.timeout = 20 * time.Millisecond

	created, err := uc.Create(ctx, dto.BackupRequest{Type: entity.BackupFullSystem}, "")
	require.NoError(t, err)
	uc.Wait()

	entry, err := logs.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BackupFailed, entry.Status)
	assert.Contains(t, entry.Error, context.DeadlineExceeded.Error())
}

func TestBackupUseCase_LogConUnSoloComponente(t *testing.T) {
	var buf bytes.Buffer
	db := memory.NewDB()
	uc := NewBackupUseCase(memory.NewBackupLogRepository(db), memory.NewBackupExporter(db), t.TempDir(), logger.NewFrom(zerolog.New(&buf)))

	_, err := uc.Create(context.Background(), dto.BackupRequest{Type: entity.BackupFullSystem}, "")
	require.NoError(t, err)
	uc.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(line, `"component"`), line)
		assert.Contains(t, line, `"component":"backup"`)
	}
}
