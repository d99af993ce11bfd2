package appointment

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
	mu    sync.RWMutex
	appts map[uuid.UUID]*Appointment
}

// NewRepoMem returns an in-memory appointment repository seeded with
// fixtures.
func NewRepoMem(seed []*Appointment) Repository {
	m := &repoMem{appts: make(map[uuid.UUID]*Appointment, len(seed))}
	for _, a := range seed {
		m.appts[a.ID] = a
	}
	return m
}

func (m *repoMem) Create(_ context.Context, a *Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	m.appts[a.ID] = a
	return nil
}

func (m *repoMem) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.appts[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s not found", id)
	}
	return a, nil
}

func (m *repoMem) List(_ context.Context, limit, offset int) ([]*Appointment, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*Appointment, 0, len(m.appts))
	for _, a := range m.appts {
		items = append(items, a)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].StartTime.After(items[j].StartTime) })

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

func (m *repoMem) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []*Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID {
			items = append(items, a)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].StartTime.After(items[j].StartTime) })
	return items, nil
}

func (m *repoMem) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []*Appointment
	for _, a := range m.appts {
		if a.PatientID == patientID {
			items = append(items, a)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].StartTime.After(items[j].StartTime) })
	return items, nil
}
