package prescription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a prescription. Every medication line must
// carry at least a name and dosage. When SignedBy is set without a
// timestamp, the signature time defaults to now.
func (s *Service) Create(ctx context.Context, p *Prescription) error {
	if p.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if p.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if len(p.Medications) == 0 {
		return fmt.Errorf("at least one medication is required")
	}
	for i, m := range p.Medications {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("medication %d: name is required", i+1)
		}
		if strings.TrimSpace(m.Dosage) == "" {
			return fmt.Errorf("medication %d: dosage is required", i+1)
		}
	}
	if p.SignedBy != "" && p.SignedAt == nil {
		now := time.Now()
		p.SignedAt = &now
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Prescription, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Prescription, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Prescription, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
