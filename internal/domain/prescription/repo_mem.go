package prescription

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
	mu  sync.RWMutex
	rxs map[uuid.UUID]*Prescription
}

// NewRepoMem returns an in-memory prescription repository seeded with
// fixtures.
func NewRepoMem(seed []*Prescription) Repository {
	m := &repoMem{rxs: make(map[uuid.UUID]*Prescription, len(seed))}
	for _, p := range seed {
		m.rxs[p.ID] = p
	}
	return m
}

func (m *repoMem) Create(_ context.Context, p *Prescription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	m.rxs[p.ID] = p
	return nil
}

func (m *repoMem) GetByID(_ context.Context, id uuid.UUID) (*Prescription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.rxs[id]
	if !ok {
		return nil, fmt.Errorf("prescription %s not found", id)
	}
	return p, nil
}

func (m *repoMem) List(_ context.Context, limit, offset int) ([]*Prescription, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*Prescription, 0, len(m.rxs))
	for _, p := range m.rxs {
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

func (m *repoMem) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*Prescription, error) {
	return m.listMatch(func(p *Prescription) bool { return p.DoctorID == doctorID })
}

func (m *repoMem) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Prescription, error) {
	return m.listMatch(func(p *Prescription) bool { return p.PatientID == patientID })
}

func (m *repoMem) listMatch(keep func(*Prescription) bool) ([]*Prescription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []*Prescription
	for _, p := range m.rxs {
		if keep(p) {
			items = append(items, p)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}
