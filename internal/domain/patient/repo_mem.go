package patient

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
	mu       sync.RWMutex
	patients map[uuid.UUID]*Patient
}

// NewRepoMem returns an in-memory patient repository seeded with fixtures.
func NewRepoMem(seed []*Patient) Repository {
	m := &repoMem{patients: make(map[uuid.UUID]*Patient, len(seed))}
	for _, p := range seed {
		m.patients[p.ID] = p
	}
	return m
}

func (m *repoMem) Create(_ context.Context, p *Patient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	m.patients[p.ID] = p
	return nil
}

func (m *repoMem) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("patient %s not found", id)
	}
	return p, nil
}

func (m *repoMem) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*Patient, 0, len(m.patients))
	for _, p := range m.patients {
		items = append(items, p)
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

func (m *repoMem) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []*Patient
	for _, p := range m.patients {
		if p.DoctorID == doctorID {
			items = append(items, p)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (m *repoMem) CountByClinic(_ context.Context, clinicID uuid.UUID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, p := range m.patients {
		if p.ClinicID != nil && *p.ClinicID == clinicID {
			count++
		}
	}
	return count, nil
}
