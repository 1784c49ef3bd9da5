// tiendactl tareas de operación: migraciones, cuenta superadmin, semilla de planes
// y utilidades del enlace de carrito compartido.
//
// Uso:
//
//	tiendactl migrate
//	tiendactl superadmin create --email root@tiendapyme.co --password ...
//	tiendactl plans seed --file configs/plans.yaml
//	echo '[{"productId":"p1","name":"Vela","price":"15000","quantity":2}]' | tiendactl cart encode
//	tiendactl cart decode <código>
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/tiendapyme-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tiendapyme-api/pkg/config"
	"github.com/jhoicas/tiendapyme-api/pkg/logger"
)

var timeout time.Duration

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tiendactl",
		Short:         "Herramientas de operación de TiendaPyme",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "tiempo máximo de la operación")

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSuperadminCmd())
	root.AddCommand(newPlansCmd())
	root.AddCommand(newCartCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// env carga configuración, logger y pool con migraciones aplicadas.
type env struct {
	cfg  *config.Config
	log  *logger.Logger
	pool *pgxpool.Pool
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("tiendactl")
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return &env{cfg: cfg, log: log, pool: pool}, nil
}

func (e *env) migrate(ctx context.Context) error {
	applied, err := postgres.Migrate(ctx, e.pool)
	if err != nil {
		return err
	}
	for _, name := range applied {
		e.log.Info().Str("migration", name).Msg("aplicada")
	}
	return nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.pool.Close()
			if err := e.migrate(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migraciones al día")
			return nil
		},
	}
}
