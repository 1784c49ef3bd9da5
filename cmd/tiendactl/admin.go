package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/tiendapyme-api/internal/application/auth"
	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/superadmin"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/infrastructure/postgres"
)

func newSuperadminCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "superadmin", Short: "Cuentas de superadministrador"}

	var name, email, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Crea la cuenta superadmin si no existe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv("SUPERADMIN_PASSWORD")
			}
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
			uc := auth.NewAuthUseCase(
				postgres.NewUserRepository(e.pool),
				postgres.NewStoreRepository(e.pool),
				postgres.NewTxRunner(e.pool),
				auth.JWTConfig{Secret: e.cfg.JWT.Secret, TTL: e.cfg.JWT.ExpiresIn, Issuer: e.cfg.JWT.Issuer},
			)
			created, err := uc.EnsureSuperadmin(ctx, name, email, password)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "superadmin %s creado\n", auth.NormalizeEmail(email))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "superadmin %s ya existía\n", auth.NormalizeEmail(email))
			}
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "Superadmin", "nombre visible")
	create.Flags().StringVar(&email, "email", "", "email de acceso")
	create.Flags().StringVar(&password, "password", "", "contraseña (o SUPERADMIN_PASSWORD)")
	_ = create.MarkFlagRequired("email")

	cmd.AddCommand(create)
	return cmd
}

// planFile formato de configs/plans.yaml.
type planFile struct {
	Plans []planSeed `yaml:"plans"`
}

type planSeed struct {
	Name        string               `yaml:"name"`
	Price       string               `yaml:"price"`
	PriceSuffix string               `yaml:"priceSuffix"`
	IsPopular   bool                 `yaml:"isPopular"`
	IsArchived  bool                 `yaml:"isArchived"`
	Limits      entity.PlanLimits    `yaml:"limits"`
	Features    []entity.PlanFeature `yaml:"features"`
}

// loadPlans lee la semilla de planes. El precio va entre comillas para no perder decimales.
func loadPlans(r io.Reader) ([]dto.PlanRequest, error) {
	var f planFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("leer planes: %w", err)
	}
	out := make([]dto.PlanRequest, 0, len(f.Plans))
	for i, p := range f.Plans {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("plan %d: nombre vacío", i+1)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(p.Price))
		if err != nil {
			return nil, fmt.Errorf("plan %s: precio %q inválido", p.Name, p.Price)
		}
		out = append(out, dto.PlanRequest{
			Name:        p.Name,
			Price:       price,
			PriceSuffix: p.PriceSuffix,
			Features:    p.Features,
			Limits:      p.Limits,
			IsPopular:   p.IsPopular,
			IsArchived:  p.IsArchived,
		})
	}
	return out, nil
}

// seedPlans crea o actualiza cada plan por nombre y reporta una línea por plan.
func seedPlans(ctx context.Context, uc *superadmin.PlanUseCase, plans []dto.PlanRequest, w io.Writer) error {
	for _, p := range plans {
		resp, created, err := uc.Upsert(ctx, p)
		if err != nil {
			return fmt.Errorf("plan %s: %w", p.Name, err)
		}
		verb := "actualizado"
		if created {
			verb = "creado"
		}
		fmt.Fprintf(w, "%-12s %s (%s)\n", resp.Name, verb, resp.ID)
	}
	return nil
}

func newPlansCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "plans", Short: "Planes de suscripción"}

	var file string
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Crea o actualiza los planes definidos en el archivo YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fh, err := os.Open(file)
			if err != nil {
				return err
			}
			defer fh.Close()
			plans, err := loadPlans(fh)
			if err != nil {
				return err
			}
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
			return seedPlans(ctx, superadmin.NewPlanUseCase(postgres.NewPlanRepository(e.pool)), plans, cmd.OutOrStdout())
		},
	}
	seed.Flags().StringVarP(&file, "file", "f", "configs/plans.yaml", "archivo YAML de planes")
	cmd.AddCommand(seed)
	return cmd
}

