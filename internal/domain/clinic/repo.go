package clinic

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the clinic data source. A limit <= 0 means no limit.
type Repository interface {
	Create(ctx context.Context, c *Clinic) error
	GetByID(ctx context.Context, id uuid.UUID) (*Clinic, error)
	List(ctx context.Context, limit, offset int) ([]*Clinic, int, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Clinic, error)
}

// PatientCounter supplies the derived patient count without coupling this
// package to the patient repository.
type PatientCounter interface {
	CountByClinic(ctx context.Context, clinicID uuid.UUID) (int, error)
}
