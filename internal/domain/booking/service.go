package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arogya/arogya/internal/domain/catalog"
)

// Window describes the booking policy: how far ahead patients may book and
// the shape of the daily slot grid.
type Window struct {
	HorizonDays   int
	OpenHour      int
	CloseHour     int
	StepMinutes   int
	ClosedWeekday time.Weekday
}

// CatalogReader is the slice of the catalog the workflow needs for
// referential checks.
type CatalogReader interface {
	GetDoctor(ctx context.Context, id int64) (*catalog.Doctor, error)
	GetDepartment(ctx context.Context, id int64) (*catalog.Department, error)
}

type Service struct {
	appointments AppointmentRepository
	catalog      CatalogReader
	window       Window
	now          func() time.Time
}

func NewService(appointments AppointmentRepository, cat CatalogReader, window Window) *Service {
	return &Service{
		appointments: appointments,
		catalog:      cat,
		window:       window,
		now:          time.Now,
	}
}

// BookableDates returns the dates currently open for booking.
func (s *Service) BookableDates() []time.Time {
	return BookableDates(s.now(), s.window.HorizonDays, s.window.ClosedWeekday)
}

// TimeGrid returns the fixed daily slot grid.
func (s *Service) TimeGrid() []string {
	return SlotGrid(s.window.OpenHour, s.window.CloseHour, s.window.StepMinutes)
}

// AvailableSlots returns the grid minus the times already scheduled for the
// doctor on the given date.
func (s *Service) AvailableSlots(ctx context.Context, doctorID int64, date time.Time) ([]string, error) {
	taken, err := s.appointments.TakenTimes(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("load taken times: %w", err)
	}
	return AvailableSlots(s.TimeGrid(), taken), nil
}

// Book runs the booking workflow: presence validation, format validation,
// referential validation, then a single atomic insert. On a slot conflict
// the repository surfaces ErrSlotTaken and no row is written.
func (s *Service) Book(ctx context.Context, req BookingRequest, bookedBy *uuid.UUID) (*Appointment, error) {
	if req.PatientName == "" || req.PatientEmail == "" || req.PatientPhone == "" ||
		req.DoctorID == 0 || req.DepartmentID == 0 || req.Date == "" || req.Time == "" {
		return nil, &ValidationError{Message: "please fill all required fields"}
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, &ValidationError{Message: "invalid date or time format"}
	}
	slot, err := time.Parse("15:04", req.Time)
	if err != nil {
		return nil, &ValidationError{Message: "invalid date or time format"}
	}
	slotLabel := slot.Format("15:04")
	if !s.onGrid(slotLabel) {
		return nil, &ValidationError{Message: "invalid date or time format"}
	}

	doctor, err := s.catalog.GetDoctor(ctx, req.DoctorID)
	if err != nil {
		if catalog.IsNotFound(err) {
			return nil, &NotFoundError{Message: "doctor not found"}
		}
		return nil, fmt.Errorf("load doctor: %w", err)
	}
	if !doctor.IsAvailable {
		return nil, &ValidationError{Message: "doctor is not accepting appointments"}
	}
	if _, err := s.catalog.GetDepartment(ctx, req.DepartmentID); err != nil {
		if catalog.IsNotFound(err) {
			return nil, &NotFoundError{Message: "department not found"}
		}
		return nil, fmt.Errorf("load department: %w", err)
	}

	a := &Appointment{
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		PatientPhone:    req.PatientPhone,
		DoctorID:        req.DoctorID,
		DepartmentID:    req.DepartmentID,
		AppointmentDate: date,
		AppointmentTime: slotLabel,
		Reason:          req.Reason,
		Status:          StatusScheduled,
		BookedBy:        bookedBy,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) onGrid(slot string) bool {
	for _, g := range s.TimeGrid() {
		if g == slot {
			return true
		}
	}
	return false
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) ListByDoctorDate(ctx context.Context, doctorID int64, date time.Time) ([]*Appointment, error) {
	return s.appointments.ListByDoctorDate(ctx, doctorID, date)
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]*Appointment, int, error) {
	if status != "" && !validStatuses[status] {
		return nil, 0, &ValidationError{Message: fmt.Sprintf("invalid status: %s", status)}
	}
	return s.appointments.List(ctx, status, limit, offset)
}

func (s *Service) ListMine(ctx context.Context, accountID uuid.UUID) ([]*Appointment, error) {
	return s.appointments.ListByAccount(ctx, accountID)
}

// UpdateStatus moves an appointment out of scheduled. Terminal states are
// final; appointments are never deleted.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status, notes string) (*Appointment, error) {
	if !validStatuses[status] {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid status: %s", status)}
	}

	current, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != StatusScheduled {
		return nil, &ValidationError{
			Message: fmt.Sprintf("appointment is already %s", current.Status),
		}
	}

	return s.appointments.UpdateStatus(ctx, id, status, notes)
}
