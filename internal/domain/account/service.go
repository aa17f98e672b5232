package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/arogya/arogya/internal/domain/patient"
	"github.com/arogya/arogya/internal/platform/auth"
	"github.com/arogya/arogya/internal/platform/validate"
)

// ErrBadCredentials is returned for both unknown email and wrong password
// so login failures do not reveal which one it was.
var ErrBadCredentials = errors.New("invalid email or password")

type Service struct {
	accounts Repository
	patients *patient.Service
	tokens   *auth.TokenIssuer
}

func NewService(accounts Repository, patients *patient.Service, tokens *auth.TokenIssuer) *Service {
	return &Service{accounts: accounts, patients: patients, tokens: tokens}
}

// Register creates an account and its patient profile and returns a live
// session.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &Account{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         auth.RolePatient,
	}
	if err := s.accounts.Create(ctx, a); err != nil {
		return nil, err
	}

	p := &patient.Patient{
		AccountID: &a.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create patient profile: %w", err)
	}

	token, err := s.tokens.Issue(a.ID, a.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: token, Account: a}, nil
}

// Login verifies credentials and returns a session.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	a, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(a.PasswordHash, req.Password) {
		return nil, ErrBadCredentials
	}

	token, err := s.tokens.Issue(a.ID, a.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: token, Account: a}, nil
}

// Me returns the account and its patient profile, if one exists.
func (s *Service) Me(ctx context.Context, accountID uuid.UUID) (*Account, *patient.Patient, error) {
	a, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	p, err := s.patients.GetByAccount(ctx, accountID)
	if err != nil && !errors.Is(err, patient.ErrNotFound) {
		return nil, nil, err
	}
	return a, p, nil
}
