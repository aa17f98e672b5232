package account

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const accountCols = `id, email, password_hash, role, created_at`

func (r *repoPG) scanAccount(row pgx.Row) (*Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Account) error {
	a.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO account (id, email, password_hash, role)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at`,
		a.ID, strings.ToLower(a.Email), a.PasswordHash, a.Role).Scan(&a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	a, err := r.scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM account WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*Account, error) {
	a, err := r.scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM account WHERE email = $1`, strings.ToLower(email)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
