package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the patient data source. A limit <= 0 means no limit.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Patient, error)
	CountByClinic(ctx context.Context, clinicID uuid.UUID) (int, error)
}
