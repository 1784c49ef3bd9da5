package ports

import (
	"context"

	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Cada método agrupa los repos que necesita una familia de casos de uso.
type TxRunner interface {
	// RunAuth alta de cuenta: usuario + tienda en una sola transacción.
	RunAuth(ctx context.Context, fn func(
		users repository.UserRepository,
		stores repository.StoreRepository,
	) error) error

	// RunStore configuración, onboarding y alta de productos que avanzan el onboarding.
	RunStore(ctx context.Context, fn func(
		stores repository.StoreRepository,
		settings repository.SettingsRepository,
		products repository.ProductRepository,
	) error) error

	// RunCatalog cambios de producto que tocan el carrito o generan pedidos.
	RunCatalog(ctx context.Context, fn func(
		products repository.ProductRepository,
		carts repository.CartRepository,
		orders repository.OrderRepository,
	) error) error

	// RunProviders cambios de proveedor de IA que mueven la marca de defecto.
	RunProviders(ctx context.Context, fn func(providers repository.AIProviderRepository) error) error
}
