package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/pkg/credentials"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ProvisionRequest carries the doctor-creation form. Exactly one password
// mode is active: GeneratePassword, or a supplied Password of at least
// credentials.MinSuppliedLength characters.
type ProvisionRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Country          string `json:"country"`
	Timezone         string `json:"timezone"`
	Plan             string `json:"plan"`
	GeneratePassword bool   `json:"generate_password"`
	Password         string `json:"password"`
}

// Provision validates the request, resolves the login credential, and
// creates the doctor row. Validation failures happen before any repository
// call. The returned credentials are transient; callers display them once.
func (s *Service) Provision(ctx context.Context, req ProvisionRequest) (*Doctor, *Credentials, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, nil, fmt.Errorf("email is required")
	}
	if req.Plan == "" {
		req.Plan = PlanBasic
	}
	if !ValidPlans[req.Plan] {
		return nil, nil, fmt.Errorf("invalid plan: %s", req.Plan)
	}

	var password string
	if req.GeneratePassword {
		if req.Password != "" {
			return nil, nil, fmt.Errorf("generate_password and password are mutually exclusive")
		}
		var err error
		password, err = credentials.Generate()
		if err != nil {
			return nil, nil, err
		}
	} else {
		if err := credentials.ValidateSupplied(req.Password); err != nil {
			return nil, nil, err
		}
		password = req.Password
	}

	d := &Doctor{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Country:  req.Country,
		Timezone: req.Timezone,
		Plan:     req.Plan,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, nil, err
	}

	return d, &Credentials{Email: d.Email, Password: password}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.repo.List(ctx, limit, offset)
}
