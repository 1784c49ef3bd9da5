package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia la transacción, ejecuta fn y hace Commit; cualquier error deja la tx en Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAuth transacción con repos de usuarios y tiendas (registro y alta de cuentas).
func (r *TxRunner) RunAuth(ctx context.Context, fn func(
	users repository.UserRepository,
	stores repository.StoreRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewUserRepository(tx), NewStoreRepository(tx))
	})
}

// RunStore transacción con repos de tiendas, configuración y productos.
func (r *TxRunner) RunStore(ctx context.Context, fn func(
	stores repository.StoreRepository,
	settings repository.SettingsRepository,
	products repository.ProductRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewStoreRepository(tx), NewSettingsRepository(tx), NewProductRepository(tx))
	})
}

// RunCatalog transacción con repos de productos, carrito y pedidos.
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	products repository.ProductRepository,
	carts repository.CartRepository,
	orders repository.OrderRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewProductRepository(tx), NewCartRepository(tx), NewOrderRepository(tx))
	})
}

// RunProviders transacción sobre proveedores de IA.
func (r *TxRunner) RunProviders(ctx context.Context, fn func(providers repository.AIProviderRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewAIProviderRepository(tx))
	})
}
