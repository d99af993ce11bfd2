package clinic

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo     Repository
	patients PatientCounter
}

func NewService(repo Repository, patients PatientCounter) *Service {
	return &Service{repo: repo, patients: patients}
}

// DayInput is one weekday of the clinic-creation form. When Closed is set
// the open/close times are ignored and the day is stored with the closed
// sentinel in both slots.
type DayInput struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// CreateRequest carries the clinic-creation form.
type CreateRequest struct {
	DoctorID uuid.UUID           `json:"doctor_id"`
	Name     string              `json:"name"`
	Address  string              `json:"address"`
	City     string              `json:"city"`
	Phone    string              `json:"phone"`
	Hours    map[string]DayInput `json:"hours"`
}

// NormalizeHours converts form input into the stored weekly schedule: every
// weekday present, closed days collapsed to the sentinel, days absent from
// the input treated as closed.
func NormalizeHours(input map[string]DayInput) WeeklyHours {
	hours := make(WeeklyHours, len(Weekdays))
	for _, day := range Weekdays {
		in, ok := input[day]
		if !ok || in.Closed {
			hours[day] = DayHours{Open: ClosedSentinel, Close: ClosedSentinel}
			continue
		}
		hours[day] = DayHours{Open: in.Open, Close: in.Close}
	}
	return hours
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Clinic, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.DoctorID == uuid.Nil {
		return nil, fmt.Errorf("doctor_id is required")
	}
	for day, in := range req.Hours {
		if !in.Closed && (in.Open == "" || in.Close == "") {
			return nil, fmt.Errorf("open and close times are required for %s (or mark it closed)", day)
		}
	}

	c := &Clinic{
		DoctorID: req.DoctorID,
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		Phone:    req.Phone,
		Hours:    NormalizeHours(req.Hours),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Clinic, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns clinics with their derived patient counts. A count that
// cannot be computed degrades to zero rather than failing the listing.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*WithCount, int, error) {
	items, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return s.withCounts(ctx, items), total, nil
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*WithCount, error) {
	items, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return s.withCounts(ctx, items), nil
}

func (s *Service) withCounts(ctx context.Context, items []*Clinic) []*WithCount {
	out := make([]*WithCount, 0, len(items))
	for _, c := range items {
		count, err := s.patients.CountByClinic(ctx, c.ID)
		if err != nil {
			count = 0
		}
		out = append(out, &WithCount{Clinic: c, PatientCount: count})
	}
	return out
}
