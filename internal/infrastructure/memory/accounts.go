package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

var (
	_ repository.UserRepository  = (*UserRepo)(nil)
	_ repository.StoreRepository = (*StoreRepo)(nil)
)

// UserRepo usuarios en memoria. El email es único.
type UserRepo struct{ db *DB }

func NewUserRepository(db *DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.db.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, u := range r.db.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.db.users {
		if id != u.ID && existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.db.users[u.ID] = *u
	return nil
}

func (r *UserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil
	}
	u.LastLogin = &at
	r.db.users[id] = u
	return nil
}

func (r *UserRepo) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var list []*entity.User
	for _, u := range r.db.users {
		if u.Role == role {
			list = append(list, &u)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// Delete elimina el usuario y, como el ON DELETE CASCADE de PostgreSQL, su tienda y datos.
func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.db.users, id)
	for sid, s := range r.db.stores {
		if s.UserID != id {
			continue
		}
		delete(r.db.stores, sid)
		delete(r.db.carts, sid)
		delete(r.db.settings, sid)
		for pid, p := range r.db.products {
			if p.StoreID == sid {
				delete(r.db.products, pid)
			}
		}
		for oid, o := range r.db.orders {
			if o.StoreID == sid {
				delete(r.db.orders, oid)
			}
		}
	}
	return nil
}

// StoreRepo tiendas en memoria; una por usuario.
type StoreRepo struct{ db *DB }

func NewStoreRepository(db *DB) *StoreRepo { return &StoreRepo{db: db} }

func (r *StoreRepo) Create(_ context.Context, s *entity.Store) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.stores {
		if existing.UserID == s.UserID {
			return domain.ErrDuplicate
		}
	}
	r.db.stores[s.ID] = *s
	return nil
}

func (r *StoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	s, ok := r.db.stores[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *StoreRepo) GetByUserID(_ context.Context, userID string) (*entity.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, s := range r.db.stores {
		if s.UserID == userID {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *StoreRepo) Update(_ context.Context, s *entity.Store) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.stores[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.db.stores[s.ID] = *s
	return nil
}

func (r *StoreRepo) UpdateOnboardingStatus(_ context.Context, storeID string, status entity.OnboardingStatus) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.stores[storeID]
	if !ok {
		return domain.ErrNotFound
	}
	s.OnboardingStatus = status
	s.UpdatedAt = time.Now()
	r.db.stores[storeID] = s
	return nil
}

func cloneItems(items []entity.CartItem) []entity.CartItem {
	if items == nil {
		return []entity.CartItem{}
	}
	return slices.Clone(items)
}
