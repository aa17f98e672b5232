package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, account_id, name, email, phone, date_of_birth, gender, blood_group,
	address, medical_history, emergency_contact, emergency_phone, registered_at`

func (r *repoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.AccountID, &p.Name, &p.Email, &p.Phone, &p.DateOfBirth,
		&p.Gender, &p.BloodGroup, &p.Address, &p.MedicalHistory, &p.EmergencyContact,
		&p.EmergencyPhone, &p.RegisteredAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patient (id, account_id, name, email, phone, date_of_birth, gender,
			blood_group, address, medical_history, emergency_contact, emergency_phone)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING registered_at`,
		p.ID, p.AccountID, p.Name, p.Email, p.Phone, p.DateOfBirth, p.Gender,
		p.BloodGroup, p.Address, p.MedicalHistory, p.EmergencyContact,
		p.EmergencyPhone).Scan(&p.RegisteredAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrProfileExists
		}
		return err
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := r.scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) GetByAccount(ctx context.Context, accountID uuid.UUID) (*Patient, error) {
	p, err := r.scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE account_id = $1`, accountID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patient SET name=$2, email=$3, phone=$4, date_of_birth=$5, gender=$6,
			blood_group=$7, address=$8, medical_history=$9, emergency_contact=$10,
			emergency_phone=$11
		WHERE id = $1`,
		p.ID, p.Name, p.Email, p.Phone, p.DateOfBirth, p.Gender,
		p.BloodGroup, p.Address, p.MedicalHistory, p.EmergencyContact, p.EmergencyPhone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
