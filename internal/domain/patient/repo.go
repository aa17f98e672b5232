package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound reports a missing patient profile.
var ErrNotFound = errors.New("patient not found")

// ErrProfileExists reports an attempt to create a second profile for the
// same account.
var ErrProfileExists = errors.New("account already has a patient profile")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByAccount(ctx context.Context, accountID uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
}
