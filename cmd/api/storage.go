package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
	"github.com/jhoicas/tiendapyme-api/internal/infrastructure/memory"
	"github.com/jhoicas/tiendapyme-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tiendapyme-api/pkg/config"
	"github.com/jhoicas/tiendapyme-api/pkg/logger"
)

// storage repositorios del backend elegido por STORAGE.
type storage struct {
	Users      repository.UserRepository
	Stores     repository.StoreRepository
	Products   repository.ProductRepository
	Carts      repository.CartRepository
	Orders     repository.OrderRepository
	Settings   repository.SettingsRepository
	Plans      repository.PlanRepository
	Providers  repository.AIProviderRepository
	Messages   repository.AdminMessageRepository
	BackupLogs repository.BackupLogRepository
	Tx         ports.TxRunner
	Exporter   ports.BackupSource
}

// openStorage conecta PostgreSQL (aplicando migraciones) o arma la base en memoria.
// close libera el pool; es no-op en memoria.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, func(), error) {
	switch cfg.App.Storage {
	case "memory":
		log.Warn().Msg("STORAGE=memory: los datos se pierden al reiniciar")
		db := memory.NewDB()
		return &storage{
			Users:      memory.NewUserRepository(db),
			Stores:     memory.NewStoreRepository(db),
			Products:   memory.NewProductRepository(db),
			Carts:      memory.NewCartRepository(db),
			Orders:     memory.NewOrderRepository(db),
			Settings:   memory.NewSettingsRepository(db),
			Plans:      memory.NewPlanRepository(db),
			Providers:  memory.NewAIProviderRepository(db),
			Messages:   memory.NewAdminMessageRepository(db),
			BackupLogs: memory.NewBackupLogRepository(db),
			Tx:         memory.NewTxRunner(db),
			Exporter:   memory.NewBackupExporter(db),
		}, func() {}, nil
	case "", "postgres":
	default:
		return nil, nil, fmt.Errorf("STORAGE desconocido: %q", cfg.App.Storage)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migraciones: %w", err)
	}
	if len(applied) > 0 {
		log.Info().Strs("migrations", applied).Msg("migraciones aplicadas")
	}
	return &storage{
		Users:      postgres.NewUserRepository(pool),
		Stores:     postgres.NewStoreRepository(pool),
		Products:   postgres.NewProductRepository(pool),
		Carts:      postgres.NewCartRepository(pool),
		Orders:     postgres.NewOrderRepository(pool),
		Settings:   postgres.NewSettingsRepository(pool),
		Plans:      postgres.NewPlanRepository(pool),
		Providers:  postgres.NewAIProviderRepository(pool),
		Messages:   postgres.NewAdminMessageRepository(pool),
		BackupLogs: postgres.NewBackupLogRepository(pool),
		Tx:         postgres.NewTxRunner(pool),
		Exporter:   postgres.NewBackupExporter(pool),
	}, pool.Close, nil
}
