package memory

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones y restaura el estado previo si fn falla.
type TxRunner struct {
	db *DB
}

func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

func (r *TxRunner) run(fn func() error) error {
	r.db.txMu.Lock()
	defer r.db.txMu.Unlock()
	before := r.db.snapshot()
	if err := fn(); err != nil {
		r.db.restore(before)
		return err
	}
	return nil
}

func (r *TxRunner) RunAuth(_ context.Context, fn func(
	users repository.UserRepository,
	stores repository.StoreRepository,
) error) error {
	return r.run(func() error {
		return fn(NewUserRepository(r.db), NewStoreRepository(r.db))
	})
}

func (r *TxRunner) RunStore(_ context.Context, fn func(
	stores repository.StoreRepository,
	settings repository.SettingsRepository,
	products repository.ProductRepository,
) error) error {
	return r.run(func() error {
		return fn(NewStoreRepository(r.db), NewSettingsRepository(r.db), NewProductRepository(r.db))
	})
}

func (r *TxRunner) RunCatalog(_ context.Context, fn func(
	products repository.ProductRepository,
	carts repository.CartRepository,
	orders repository.OrderRepository,
) error) error {
	return r.run(func() error {
		return fn(NewProductRepository(r.db), NewCartRepository(r.db), NewOrderRepository(r.db))
	})
}

func (r *TxRunner) RunProviders(_ context.Context, fn func(providers repository.AIProviderRepository) error) error {
	return r.run(func() error {
		return fn(NewAIProviderRepository(r.db))
	})
}
