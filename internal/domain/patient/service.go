package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arogya/arogya/internal/platform/validate"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// Create registers a patient profile, normally at account registration.
func (s *Service) Create(ctx context.Context, p *Patient) error {
	in := struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
		Phone string `validate:"required"`
	}{p.Name, p.Email, p.Phone}
	if err := validate.Struct(in); err != nil {
		return err
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) GetByAccount(ctx context.Context, accountID uuid.UUID) (*Patient, error) {
	return s.patients.GetByAccount(ctx, accountID)
}

// UpdateOwn updates the profile belonging to accountID. Identity fields on
// the incoming patch are applied to the stored profile; the account link
// itself never changes.
func (s *Service) UpdateOwn(ctx context.Context, accountID uuid.UUID, patch *Patient) (*Patient, error) {
	current, err := s.patients.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	in := struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
		Phone string `validate:"required"`
	}{patch.Name, patch.Email, patch.Phone}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	current.Name = patch.Name
	current.Email = patch.Email
	current.Phone = patch.Phone
	current.DateOfBirth = patch.DateOfBirth
	current.Gender = patch.Gender
	current.BloodGroup = patch.BloodGroup
	current.Address = patch.Address
	current.MedicalHistory = patch.MedicalHistory
	current.EmergencyContact = patch.EmergencyContact
	current.EmergencyPhone = patch.EmergencyPhone

	if err := s.patients.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return current, nil
}
