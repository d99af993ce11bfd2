package doctor

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the doctor data source. Two implementations exist: the
// PostgreSQL adapter and the in-memory fixture adapter used in demo mode.
// A limit <= 0 means no limit (the whole collection).
type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	GetByEmail(ctx context.Context, email string) (*Doctor, error)
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
}
