package booking

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses. An appointment starts as scheduled and moves to
// exactly one terminal state; terminal states are final.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

var validStatuses = map[string]bool{
	StatusScheduled: true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusNoShow:    true,
}

// Appointment maps to the appointment table. AppointmentTime is a
// normalized "HH:MM" grid label; together with DoctorID and
// AppointmentDate it is unique.
type Appointment struct {
	ID              int64      `db:"id" json:"id"`
	PatientName     string     `db:"patient_name" json:"patient_name"`
	PatientEmail    string     `db:"patient_email" json:"patient_email"`
	PatientPhone    string     `db:"patient_phone" json:"patient_phone"`
	DoctorID        int64      `db:"doctor_id" json:"doctor_id"`
	DepartmentID    int64      `db:"department_id" json:"department_id"`
	AppointmentDate time.Time  `db:"appointment_date" json:"appointment_date"`
	AppointmentTime string     `db:"appointment_time" json:"appointment_time"`
	Reason          string     `db:"reason" json:"reason"`
	Status          string     `db:"status" json:"status"`
	Notes           string     `db:"notes" json:"notes"`
	BookedBy        *uuid.UUID `db:"booked_by" json:"booked_by,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// BookingRequest carries the raw booking form input. Date and Time are
// strings so format errors surface as validation errors rather than bind
// failures.
type BookingRequest struct {
	PatientName  string `json:"patient_name"`
	PatientEmail string `json:"patient_email"`
	PatientPhone string `json:"patient_phone"`
	DoctorID     int64  `json:"doctor_id"`
	DepartmentID int64  `json:"department_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Reason       string `json:"reason"`
}
