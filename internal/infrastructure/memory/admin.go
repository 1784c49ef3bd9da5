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
	_ repository.PlanRepository         = (*PlanRepo)(nil)
	_ repository.AIProviderRepository   = (*AIProviderRepo)(nil)
	_ repository.AdminMessageRepository = (*AdminMessageRepo)(nil)
	_ repository.BackupLogRepository    = (*BackupLogRepo)(nil)
)

// PlanRepo planes en memoria; el nombre es único.
type PlanRepo struct{ db *DB }

func NewPlanRepository(db *DB) *PlanRepo { return &PlanRepo{db: db} }

func clonePlan(p entity.SubscriptionPlan) *entity.SubscriptionPlan {
	p.Features = slices.Clone(p.Features)
	return &p
}

func (r *PlanRepo) Create(_ context.Context, p *entity.SubscriptionPlan) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.plans {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	r.db.plans[p.ID] = *clonePlan(*p)
	return nil
}

func (r *PlanRepo) GetByID(_ context.Context, id string) (*entity.SubscriptionPlan, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.plans[id]
	if !ok {
		return nil, nil
	}
	return clonePlan(p), nil
}

func (r *PlanRepo) GetByName(_ context.Context, name string) (*entity.SubscriptionPlan, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, p := range r.db.plans {
		if p.Name == name {
			return clonePlan(p), nil
		}
	}
	return nil, nil
}

func (r *PlanRepo) Update(_ context.Context, p *entity.SubscriptionPlan) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.plans[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.db.plans {
		if id != p.ID && existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	r.db.plans[p.ID] = *clonePlan(*p)
	return nil
}

func (r *PlanRepo) List(_ context.Context) ([]*entity.SubscriptionPlan, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var list []*entity.SubscriptionPlan
	for _, p := range r.db.plans {
		list = append(list, clonePlan(p))
	}
	sort.Slice(list, func(i, j int) bool {
		if c := list[i].Price.Cmp(list[j].Price); c != 0 {
			return c < 0
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

// AIProviderRepo proveedores de IA en memoria.
type AIProviderRepo struct{ db *DB }

func NewAIProviderRepository(db *DB) *AIProviderRepo { return &AIProviderRepo{db: db} }

// defaultTaken replica el índice único parcial sobre is_default.
func (r *AIProviderRepo) defaultTaken(p *entity.AIProviderConfig) bool {
	if !p.IsDefault {
		return false
	}
	for id, existing := range r.db.providers {
		if id != p.ID && existing.IsDefault {
			return true
		}
	}
	return false
}

func (r *AIProviderRepo) Create(_ context.Context, p *entity.AIProviderConfig) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.defaultTaken(p) {
		return domain.ErrConflict
	}
	r.db.providers[p.ID] = *p
	return nil
}

func (r *AIProviderRepo) GetByID(_ context.Context, id string) (*entity.AIProviderConfig, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.providers[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *AIProviderRepo) Update(_ context.Context, p *entity.AIProviderConfig) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.providers[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.defaultTaken(p) {
		return domain.ErrConflict
	}
	r.db.providers[p.ID] = *p
	return nil
}

func (r *AIProviderRepo) Delete(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.providers[id]; !ok {
		return false, nil
	}
	delete(r.db.providers, id)
	return true, nil
}

func (r *AIProviderRepo) List(_ context.Context) ([]*entity.AIProviderConfig, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var list []*entity.AIProviderConfig
	for _, p := range r.db.providers {
		list = append(list, &p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].IsDefault != list[j].IsDefault {
			return list[i].IsDefault
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (r *AIProviderRepo) GetDefault(_ context.Context) (*entity.AIProviderConfig, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, p := range r.db.providers {
		if p.IsDefault && p.Status == entity.AIProviderActive {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *AIProviderRepo) ClearDefault(_ context.Context, exceptID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for id, p := range r.db.providers {
		if id != exceptID && p.IsDefault {
			p.IsDefault = false
			p.UpdatedAt = time.Now()
			r.db.providers[id] = p
		}
	}
	return nil
}

// AdminMessageRepo comunicados en memoria.
type AdminMessageRepo struct{ db *DB }

func NewAdminMessageRepository(db *DB) *AdminMessageRepo { return &AdminMessageRepo{db: db} }

func cloneMessage(m entity.AdminMessage) *entity.AdminMessage {
	m.Recipients = slices.Clone(m.Recipients)
	m.ReadBy = slices.Clone(m.ReadBy)
	return &m
}

func (r *AdminMessageRepo) Create(_ context.Context, m *entity.AdminMessage) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.messages[m.ID] = *cloneMessage(*m)
	return nil
}

func (r *AdminMessageRepo) List(_ context.Context) ([]*entity.AdminMessage, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var list []*entity.AdminMessage
	for _, m := range r.db.messages {
		list = append(list, cloneMessage(m))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SentAt.After(list[j].SentAt) })
	return list, nil
}

func (r *AdminMessageRepo) Delete(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.messages[id]; !ok {
		return false, nil
	}
	delete(r.db.messages, id)
	return true, nil
}

// BackupLogRepo bitácora de respaldos en memoria.
type BackupLogRepo struct{ db *DB }

func NewBackupLogRepository(db *DB) *BackupLogRepo { return &BackupLogRepo{db: db} }

func (r *BackupLogRepo) Create(_ context.Context, l *entity.BackupLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.backups[l.ID] = *l
	return nil
}

func (r *BackupLogRepo) GetByID(_ context.Context, id string) (*entity.BackupLog, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	l, ok := r.db.backups[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *BackupLogRepo) Update(_ context.Context, l *entity.BackupLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	current, ok := r.db.backups[l.ID]
	if !ok {
		return domain.ErrNotFound
	}
	current.Status, current.FilePath, current.SizeMB, current.Error = l.Status, l.FilePath, l.SizeMB, l.Error
	r.db.backups[l.ID] = current
	return nil
}

func (r *BackupLogRepo) List(_ context.Context) ([]*entity.BackupLog, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var list []*entity.BackupLog
	for _, l := range r.db.backups {
		list = append(list, &l)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Timestamp.After(list[j].Timestamp) })
	return list, nil
}

func (r *BackupLogRepo) Delete(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.backups[id]; !ok {
		return false, nil
	}
	delete(r.db.backups, id)
	return true, nil
}
