package clinic

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// repoMem is the fixture adapter used in demo mode.
type repoMem struct {
	mu      sync.RWMutex
	clinics map[uuid.UUID]*Clinic
}

// NewRepoMem returns an in-memory clinic repository seeded with fixtures.
func NewRepoMem(seed []*Clinic) Repository {
	m := &repoMem{clinics: make(map[uuid.UUID]*Clinic, len(seed))}
	for _, c := range seed {
		m.clinics[c.ID] = c
	}
	return m
}

func (m *repoMem) Create(_ context.Context, c *Clinic) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	m.clinics[c.ID] = c
	return nil
}

func (m *repoMem) GetByID(_ context.Context, id uuid.UUID) (*Clinic, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.clinics[id]
	if !ok {
		return nil, fmt.Errorf("clinic %s not found", id)
	}
	return c, nil
}

func (m *repoMem) List(_ context.Context, limit, offset int) ([]*Clinic, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*Clinic, 0, len(m.clinics))
	for _, c := range m.clinics {
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	total := len(items)
	if offset >= len(items) {
		return nil, total, nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, total, nil
}

func (m *repoMem) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*Clinic, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []*Clinic
	for _, c := range m.clinics {
		if c.DoctorID == doctorID {
			items = append(items, c)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}
