package oversight

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// voiceRepoMem is the fixture adapter used in demo mode.
type voiceRepoMem struct {
	mu   sync.RWMutex
	logs []*VoiceAgentLog
}

// NewVoiceRepoMem returns an in-memory voice-log repository seeded with
// fixtures.
func NewVoiceRepoMem(seed []*VoiceAgentLog) VoiceLogRepository {
	logs := make([]*VoiceAgentLog, len(seed))
	copy(logs, seed)
	sort.Slice(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })
	return &voiceRepoMem{logs: logs}
}

func (m *voiceRepoMem) List(_ context.Context, limit, offset int) ([]*VoiceAgentLog, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := len(m.logs)
	if offset >= total {
		return nil, total, nil
	}
	items := m.logs[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, total, nil
}

func (m *voiceRepoMem) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*VoiceAgentLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []*VoiceAgentLog
	for _, v := range m.logs {
		if v.DoctorID == doctorID {
			items = append(items, v)
		}
	}
	return items, nil
}

// complianceRepoMem is the fixture adapter used in demo mode.
type complianceRepoMem struct {
	mu      sync.RWMutex
	reports []*ComplianceReport
}

// NewComplianceRepoMem returns an in-memory compliance-report repository
// seeded with fixtures.
func NewComplianceRepoMem(seed []*ComplianceReport) ComplianceRepository {
	reports := make([]*ComplianceReport, len(seed))
	copy(reports, seed)
	sort.Slice(reports, func(i, j int) bool { return reports[i].CreatedAt.After(reports[j].CreatedAt) })
	return &complianceRepoMem{reports: reports}
}

func (m *complianceRepoMem) List(_ context.Context, limit, offset int) ([]*ComplianceReport, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := len(m.reports)
	if offset >= total {
		return nil, total, nil
	}
	items := m.reports[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, total, nil
}

func (m *complianceRepoMem) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*ComplianceReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []*ComplianceReport
	for _, c := range m.reports {
		if c.DoctorID == doctorID {
			items = append(items, c)
		}
	}
	return items, nil
}
