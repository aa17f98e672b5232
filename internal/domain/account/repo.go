package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound reports a missing account.
var ErrNotFound = errors.New("account not found")

// ErrEmailTaken reports a registration against an email that already has an
// account.
var ErrEmailTaken = errors.New("email is already registered")

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
}
