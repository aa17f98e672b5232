package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	// Create inserts the appointment. A unique-index violation on
	// (doctor_id, appointment_date, appointment_time) among scheduled
	// rows is returned as ErrSlotTaken.
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status, notes string) (*Appointment, error)
	// TakenTimes returns the "HH:MM" labels of scheduled appointments for
	// the doctor on the given date.
	TakenTimes(ctx context.Context, doctorID int64, date time.Time) ([]string, error)
	ListByDoctorDate(ctx context.Context, doctorID int64, date time.Time) ([]*Appointment, error)
	List(ctx context.Context, status string, limit, offset int) ([]*Appointment, int, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Appointment, error)
}
