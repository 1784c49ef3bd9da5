package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/tiendapyme-api/internal/application/auth"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/application/superadmin"
	"github.com/jhoicas/tiendapyme-api/internal/application/usecase"
	infraai "github.com/jhoicas/tiendapyme-api/internal/infrastructure/ai"
	inframail "github.com/jhoicas/tiendapyme-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/tiendapyme-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/tiendapyme-api/internal/interfaces/http"
	"github.com/jhoicas/tiendapyme-api/pkg/config"
	"github.com/jhoicas/tiendapyme-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		File:  cfg.App.LogFile,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer closeStorage()

	authUC := auth.NewAuthUseCase(st.Users, st.Stores, st.Tx, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.ExpiresIn,
		Issuer: cfg.JWT.Issuer,
	})
	storeUC := usecase.NewStoreUseCase(st.Stores, st.Settings, st.Tx)
	productUC := usecase.NewProductUseCase(st.Products, st.Stores, st.Users, st.Plans, st.Tx)
	cartUC := usecase.NewCartUseCase(st.Carts, cfg.App.PublicBaseURL)
	orderUC := usecase.NewOrderUseCase(st.Orders, st.Products, storeUC, st.Tx, infrapdf.NewMarotoReceiptGenerator())

	// IA: proveedor por defecto de la DB; las claves de entorno quedan como respaldo.
	envLLM, err := infraai.FromEnv(ctx, cfg.AI)
	if err != nil {
		log.Warn().Err(err).Msg("IA: claves de entorno inválidas, solo proveedores de la DB")
		envLLM = nil
	}
	aiUC := usecase.NewAIUseCase(st.Providers, infraai.NewFactory(cfg.AI), envLLM)

	var mailer ports.Mailer
	if m := inframail.NewSMTPMailer(cfg.SMTP); m != nil {
		mailer = m
	} else {
		log.Info().Msg("SMTP no configurado: los comunicados solo se guardan")
	}

	backupUC := superadmin.NewBackupUseCase(st.BackupLogs, st.Exporter, cfg.Backup.Dir, log)

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:     cfg.App.Name,
		CORSOrigin:  cfg.HTTP.CORSOrigin,
		SwaggerFile: "./docs/swagger.json",
	}, log.Named("http"))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		StoreUC:       storeUC,
		CartUC:        cartUC,
		OrderUC:       orderUC,
		AIUC:          aiUC,
		Accounts:      superadmin.NewAccountUseCase(st.Users, st.Plans, st.Tx),
		Plans:         superadmin.NewPlanUseCase(st.Plans),
		Providers:     superadmin.NewProviderUseCase(st.Providers, st.Tx),
		Messages:      superadmin.NewMessageUseCase(st.Messages, st.Users, mailer, log.Named("messages")),
		Backups:       backupUC,
		Stores:        st.Stores,
		JWTSecret:     cfg.JWT.Secret,
		AuthRateLimit: cfg.HTTP.RateLimitMax,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	// Respaldos en curso terminan antes de cerrar el pool.
	backupUC.Wait()

	log.Info().Msg("aplicación detenida")
}
