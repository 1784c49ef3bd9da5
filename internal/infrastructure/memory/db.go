// Package memory implementa los puertos de persistencia en memoria.
// Se usa en pruebas y con STORAGE=memory para desarrollo local sin PostgreSQL.
package memory

import (
	"maps"
	"sync"

	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
)

// DB estado compartido por todos los repositorios en memoria.
// Los valores se guardan por copia; los slices internos se clonan al entrar y al salir.
type DB struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	users     map[string]entity.User
	stores    map[string]entity.Store
	products  map[string]entity.Product
	carts     map[string][]entity.CartItem
	orders    map[string]entity.Order
	settings  map[string]entity.BusinessSettings
	plans     map[string]entity.SubscriptionPlan
	providers map[string]entity.AIProviderConfig
	messages  map[string]entity.AdminMessage
	backups   map[string]entity.BackupLog
}

// NewDB crea una base vacía.
func NewDB() *DB {
	return &DB{
		users:     map[string]entity.User{},
		stores:    map[string]entity.Store{},
		products:  map[string]entity.Product{},
		carts:     map[string][]entity.CartItem{},
		orders:    map[string]entity.Order{},
		settings:  map[string]entity.BusinessSettings{},
		plans:     map[string]entity.SubscriptionPlan{},
		providers: map[string]entity.AIProviderConfig{},
		messages:  map[string]entity.AdminMessage{},
		backups:   map[string]entity.BackupLog{},
	}
}

// snapshot copia superficial de todas las tablas; basta porque nada se muta en sitio.
func (db *DB) snapshot() *DB {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return &DB{
		users:     maps.Clone(db.users),
		stores:    maps.Clone(db.stores),
		products:  maps.Clone(db.products),
		carts:     maps.Clone(db.carts),
		orders:    maps.Clone(db.orders),
		settings:  maps.Clone(db.settings),
		plans:     maps.Clone(db.plans),
		providers: maps.Clone(db.providers),
		messages:  maps.Clone(db.messages),
		backups:   maps.Clone(db.backups),
	}
}

func (db *DB) restore(s *DB) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.users, db.stores, db.products = s.users, s.stores, s.products
	db.carts, db.orders, db.settings = s.carts, s.orders, s.settings
	db.plans, db.providers = s.plans, s.providers
	db.messages, db.backups = s.messages, s.backups
}
