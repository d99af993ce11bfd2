package oversight

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes the read-only oversight collections: voice-agent call
// logs and compliance reports.
type Service struct {
	voice      VoiceLogRepository
	compliance ComplianceRepository
}

func NewService(voice VoiceLogRepository, compliance ComplianceRepository) *Service {
	return &Service{voice: voice, compliance: compliance}
}

func (s *Service) ListVoiceLogs(ctx context.Context, limit, offset int) ([]*VoiceAgentLog, int, error) {
	return s.voice.List(ctx, limit, offset)
}

func (s *Service) VoiceLogsByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*VoiceAgentLog, error) {
	return s.voice.ListByDoctor(ctx, doctorID)
}

func (s *Service) ListReports(ctx context.Context, limit, offset int) ([]*ComplianceReport, int, error) {
	return s.compliance.List(ctx, limit, offset)
}

func (s *Service) ReportsByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*ComplianceReport, error) {
	return s.compliance.ListByDoctor(ctx, doctorID)
}
