package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type appointmentRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentRepoPG(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepoPG{pool: pool}
}

const apptCols = `id, patient_name, patient_email, patient_phone, doctor_id, department_id,
	appointment_date, appointment_time, reason, status, notes, booked_by, created_at, updated_at`

func (r *appointmentRepoPG) scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientName, &a.PatientEmail, &a.PatientPhone, &a.DoctorID,
		&a.DepartmentID, &a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.Status,
		&a.Notes, &a.BookedBy, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

// Create inserts in a single statement; the partial unique index on
// (doctor_id, appointment_date, appointment_time) over scheduled rows
// arbitrates concurrent bookings of the same slot.
func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO appointment (patient_name, patient_email, patient_phone, doctor_id,
			department_id, appointment_date, appointment_time, reason, status, notes, booked_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, created_at, updated_at`,
		a.PatientName, a.PatientEmail, a.PatientPhone, a.DoctorID,
		a.DepartmentID, a.AppointmentDate, a.AppointmentTime, a.Reason, a.Status,
		a.Notes, a.BookedBy).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	a, err := r.scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Message: fmt.Sprintf("appointment %d not found", id)}
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepoPG) UpdateStatus(ctx context.Context, id int64, status, notes string) (*Appointment, error) {
	a, err := r.scanAppointment(r.pool.QueryRow(ctx, `
		UPDATE appointment SET status=$2, notes=$3, updated_at=NOW()
		WHERE id = $1
		RETURNING `+apptCols, id, status, notes))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Message: fmt.Sprintf("appointment %d not found", id)}
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepoPG) TakenTimes(ctx context.Context, doctorID int64, date time.Time) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT appointment_time FROM appointment
		WHERE doctor_id = $1 AND appointment_date = $2 AND status = $3
		ORDER BY appointment_time`,
		doctorID, date, StatusScheduled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

func (r *appointmentRepoPG) ListByDoctorDate(ctx context.Context, doctorID int64, date time.Time) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment
		WHERE doctor_id = $1 AND appointment_date = $2
		ORDER BY appointment_time`,
		doctorID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := r.scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *appointmentRepoPG) List(ctx context.Context, status string, limit, offset int) ([]*Appointment, int, error) {
	query := `SELECT ` + apptCols + ` FROM appointment WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM appointment WHERE 1=1`
	var args []interface{}
	idx := 1

	if status != "" {
		cond := fmt.Sprintf(` AND status = $%d`, idx)
		query += cond
		countQuery += cond
		args = append(args, status)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY appointment_date DESC, appointment_time DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := r.scanAppointment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *appointmentRepoPG) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment
		WHERE booked_by = $1
		ORDER BY appointment_date DESC, appointment_time DESC`,
		accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := r.scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
