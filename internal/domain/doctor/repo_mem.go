package doctor

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// repoMem is the fixture adapter used in demo mode: the same Repository
// contract served from a seeded in-memory dataset.
type repoMem struct {
	mu      sync.RWMutex
	doctors map[uuid.UUID]*Doctor
}

// NewRepoMem returns an in-memory doctor repository seeded with the given
// fixtures.
func NewRepoMem(seed []*Doctor) Repository {
	m := &repoMem{doctors: make(map[uuid.UUID]*Doctor, len(seed))}
	for _, d := range seed {
		m.doctors[d.ID] = d
	}
	return m
}

func (m *repoMem) Create(_ context.Context, d *Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	for _, existing := range m.doctors {
		if existing.Email == d.Email {
			return fmt.Errorf("doctor with email %s already exists", d.Email)
		}
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	m.doctors[d.ID] = d
	return nil
}

func (m *repoMem) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.doctors[id]
	if !ok {
		return nil, fmt.Errorf("doctor %s not found", id)
	}
	return d, nil
}

func (m *repoMem) GetByEmail(_ context.Context, email string) (*Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, fmt.Errorf("doctor with email %s not found", email)
}

func (m *repoMem) List(_ context.Context, limit, offset int) ([]*Doctor, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		items = append(items, d)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	total := len(items)
	items = page(items, limit, offset)
	return items, total, nil
}

// page applies limit/offset slicing; limit <= 0 means the whole collection.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
