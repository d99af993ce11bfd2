package oversight

import (
	"context"

	"github.com/google/uuid"
)

// VoiceLogRepository reads voice-agent call logs. A limit <= 0 means no
// limit.
type VoiceLogRepository interface {
	List(ctx context.Context, limit, offset int) ([]*VoiceAgentLog, int, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*VoiceAgentLog, error)
}

// ComplianceRepository reads compliance reports. A limit <= 0 means no
// limit.
type ComplianceRepository interface {
	List(ctx context.Context, limit, offset int) ([]*ComplianceReport, int, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*ComplianceReport, error)
}
