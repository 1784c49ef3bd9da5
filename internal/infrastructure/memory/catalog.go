package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.CartRepository     = (*CartRepo)(nil)
	_ repository.OrderRepository    = (*OrderRepo)(nil)
	_ repository.SettingsRepository = (*SettingsRepo)(nil)
)

// ProductRepo productos en memoria, acotados por tienda.
type ProductRepo struct{ db *DB }

func NewProductRepository(db *DB) *ProductRepo { return &ProductRepo{db: db} }

func cloneProduct(p entity.Product) *entity.Product {
	p.ImageURLs = slices.Clone(p.ImageURLs)
	if p.Stock != nil {
		v := *p.Stock
		p.Stock = &v
	}
	return &p
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.db.products[p.ID] = *cloneProduct(*p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, storeID, id string) (*entity.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.products[id]
	if !ok || p.StoreID != storeID {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	current, ok := r.db.products[p.ID]
	if !ok || current.StoreID != p.StoreID {
		return domain.ErrNotFound
	}
	r.db.products[p.ID] = *cloneProduct(*p)
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, storeID, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.products[id]
	if !ok || p.StoreID != storeID {
		return false, nil
	}
	delete(r.db.products, id)
	return true, nil
}

func (r *ProductRepo) ListByStore(_ context.Context, storeID string) ([]*entity.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.db.products {
		if p.StoreID == storeID {
			list = append(list, cloneProduct(p))
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *ProductRepo) CountByStore(_ context.Context, storeID string) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	n := 0
	for _, p := range r.db.products {
		if p.StoreID == storeID {
			n++
		}
	}
	return n, nil
}

// CartRepo carrito por tienda.
type CartRepo struct{ db *DB }

func NewCartRepository(db *DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) Get(_ context.Context, storeID string) ([]entity.CartItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return cloneItems(r.db.carts[storeID]), nil
}

func (r *CartRepo) Save(_ context.Context, storeID string, items []entity.CartItem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.carts[storeID] = cloneItems(items)
	return nil
}

// OrderRepo pedidos en memoria.
type OrderRepo struct{ db *DB }

func NewOrderRepository(db *DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *o
	cp.Items = cloneItems(o.Items)
	r.db.orders[o.ID] = cp
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, storeID, id string) (*entity.Order, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	o, ok := r.db.orders[id]
	if !ok || o.StoreID != storeID {
		return nil, nil
	}
	o.Items = cloneItems(o.Items)
	return &o, nil
}

func (r *OrderRepo) ListByStore(_ context.Context, storeID string) ([]*entity.Order, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var list []*entity.Order
	for _, o := range r.db.orders {
		if o.StoreID == storeID {
			o.Items = cloneItems(o.Items)
			list = append(list, &o)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].OrderDate.After(list[j].OrderDate) })
	return list, nil
}

func (r *OrderRepo) UpdateStatus(_ context.Context, o *entity.Order) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	current, ok := r.db.orders[o.ID]
	if !ok || current.StoreID != o.StoreID {
		return domain.ErrNotFound
	}
	current.Status = o.Status
	current.UpdatedAt = o.UpdatedAt
	r.db.orders[o.ID] = current
	return nil
}

// SettingsRepo documento de configuración por tienda.
type SettingsRepo struct{ db *DB }

func NewSettingsRepository(db *DB) *SettingsRepo { return &SettingsRepo{db: db} }

func (r *SettingsRepo) Get(_ context.Context, storeID string) (*entity.BusinessSettings, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	s, ok := r.db.settings[storeID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SettingsRepo) Save(_ context.Context, storeID string, s *entity.BusinessSettings) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.settings[storeID] = *s
	return nil
}
