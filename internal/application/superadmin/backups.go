package superadmin

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
	"github.com/jhoicas/tiendapyme-api/pkg/logger"
)

// BackupTimeout tiempo máximo de un respaldo en segundo plano.
const BackupTimeout = 5 * time.Minute

const statusUpdateTimeout = 5 * time.Second

// BackupUseCase registra respaldos y los ejecuta en goroutines propias,
// desacopladas del ciclo HTTP. Wait espera a que terminen los pendientes.
type BackupUseCase struct {
	logs    repository.BackupLogRepository
	source  ports.BackupSource
	dir     string
	log     *logger.Logger
	now     func() time.Time
	timeout time.Duration

	wg sync.WaitGroup
}

// NewBackupUseCase construye el caso de uso. dir es la carpeta de los .zip.
func NewBackupUseCase(logs repository.BackupLogRepository, source ports.BackupSource, dir string, log *logger.Logger) *BackupUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &BackupUseCase{
		logs:    logs,
		source:  source,
		dir:     dir,
		log:     log.Named("backup"),
		now:     time.Now,
		timeout: BackupTimeout,
	}
}

// List devuelve la bitácora de respaldos, más recientes primero.
func (uc *BackupUseCase) List(ctx context.Context) ([]dto.BackupLogResponse, error) {
	list, err := uc.logs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BackupLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toBackupResponse(l))
	}
	return out, nil
}

// Create registra el respaldo en estado in_progress y lo ejecuta en segundo plano.
func (uc *BackupUseCase) Create(ctx context.Context, in dto.BackupRequest, triggeredBy string) (*dto.BackupLogResponse, error) {
	switch in.Type {
	case entity.BackupFullSystem:
		in.AccountID = ""
	case entity.BackupAccountSpecific:
		if in.AccountID == "" {
			return nil, fmt.Errorf("%w: accountId es obligatorio para respaldos por cuenta", domain.ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%w: tipo de respaldo %q", domain.ErrInvalidInput, in.Type)
	}
	if triggeredBy == "" {
		triggeredBy = entity.BackupManual
	}
	entry := &entity.BackupLog{
		ID:          uuid.NewString(),
		Type:        in.Type,
		AccountID:   in.AccountID,
		Timestamp:   uc.now(),
		Status:      entity.BackupInProgress,
		TriggeredBy: triggeredBy,
	}
	if err := uc.logs.Create(ctx, entry); err != nil {
		return nil, err
	}
	resp := toBackupResponse(entry)

	job := *entry
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		uc.run(&job)
	}()
	return &resp, nil
}

// Wait bloquea hasta que terminen los respaldos en curso.
func (uc *BackupUseCase) Wait() {
	uc.wg.Wait()
}

// Download devuelve la ruta del .zip de un respaldo completado y el nombre sugerido.
func (uc *BackupUseCase) Download(ctx context.Context, id string) (string, string, error) {
	entry, err := uc.get(ctx, id)
	if err != nil {
		return "", "", err
	}
	if entry.Status != entity.BackupCompleted || entry.FilePath == "" {
		return "", "", fmt.Errorf("%w: el respaldo no está disponible (%s)", domain.ErrConflict, entry.Status)
	}
	if _, err := os.Stat(entry.FilePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", domain.ErrNotFound
		}
		return "", "", fmt.Errorf("stat backup: %w", err)
	}
	return entry.FilePath, filepath.Base(entry.FilePath), nil
}

// Delete elimina la entrada de la bitácora y su archivo.
func (uc *BackupUseCase) Delete(ctx context.Context, id string) error {
	entry, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if entry.FilePath != "" {
		if err := os.Remove(entry.FilePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("eliminar archivo de respaldo: %w", err)
		}
	}
	ok, err := uc.logs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *BackupUseCase) get(ctx context.Context, id string) (*entity.BackupLog, error) {
	entry, err := uc.logs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

// run siempre termina actualizando el estado de la entrada (completed o failed).
func (uc *BackupUseCase) run(entry *entity.BackupLog) {
	ctx, cancel := context.WithTimeout(context.Background(), uc.timeout)
	defer cancel()

	path, size, err := uc.write(ctx, entry)
	if err != nil {
		entry.Status = entity.BackupFailed
		entry.Error = err.Error()
		uc.log.Error().Err(err).Str("backup_id", entry.ID).Msg("respaldo fallido")
	} else {
		entry.Status = entity.BackupCompleted
		entry.FilePath = path
		entry.SizeMB = float64(size) / (1024 * 1024)
		uc.log.Info().Str("backup_id", entry.ID).Str("file", path).Int64("bytes", size).Msg("respaldo completado")
	}
	// el contexto del trabajo puede haber vencido; el estado final usa uno propio
	saveCtx, cancelSave := context.WithTimeout(context.Background(), statusUpdateTimeout)
	defer cancelSave()
	if err := uc.logs.Update(saveCtx, entry); err != nil {
		uc.log.Error().Err(err).Str("backup_id", entry.ID).Msg("no se pudo actualizar la bitácora de respaldo")
	}
}

type backupManifest struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	AccountID string   `json:"accountId,omitempty"`
	CreatedAt int64    `json:"createdAt"`
	Tables    []string `json:"tables"`
}

// write vuelca cada tabla como <tabla>.json dentro de un zip, más manifest.json.
func (uc *BackupUseCase) write(ctx context.Context, entry *entity.BackupLog) (string, int64, error) {
	tables, err := uc.source.Snapshot(ctx, entry.AccountID)
	if err != nil {
		return "", 0, fmt.Errorf("exportar datos: %w", err)
	}
	if err := os.MkdirAll(uc.dir, 0o750); err != nil {
		return "", 0, fmt.Errorf("crear carpeta de respaldos: %w", err)
	}
	name := fmt.Sprintf("backup-%s-%s.zip", entry.Timestamp.UTC().Format("20060102-150405"), entry.ID[:8])
	path := filepath.Join(uc.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("crear archivo de respaldo: %w", err)
	}
	zw := zip.NewWriter(f)

	names := make([]string, 0, len(tables))
	for t := range tables {
		names = append(names, t)
	}
	slices.Sort(names)

	werr := func() error {
		for _, t := range names {
			w, err := zw.Create(t + ".json")
			if err != nil {
				return err
			}
			if _, err := w.Write(tables[t]); err != nil {
				return err
			}
		}
		w, err := zw.Create("manifest.json")
		if err != nil {
			return err
		}
		return json.NewEncoder(w).Encode(backupManifest{
			ID: entry.ID, Type: entry.Type, AccountID: entry.AccountID,
			CreatedAt: entry.Timestamp.UnixMilli(), Tables: names,
		})
	}()
	if cerr := zw.Close(); werr == nil {
		werr = cerr
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("escribir zip: %w", werr)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("stat backup: %w", err)
	}
	return path, info.Size(), nil
}

func toBackupResponse(l *entity.BackupLog) dto.BackupLogResponse {
	return dto.BackupLogResponse{
		ID:          l.ID,
		Type:        l.Type,
		AccountID:   l.AccountID,
		Timestamp:   l.Timestamp.UnixMilli(),
		Status:      l.Status,
		FilePath:    l.FilePath,
		SizeMB:      l.SizeMB,
		TriggeredBy: l.TriggeredBy,
		Error:       l.Error,
	}
}
