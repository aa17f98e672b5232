package catalog

import (
	"context"
	"fmt"

	"github.com/arogya/arogya/internal/platform/validate"
)

type Svc struct {
	hospital       HospitalRepository
	departments    DepartmentRepository
	doctors        DoctorRepository
	services       ServiceRepository
	infrastructure InfrastructureRepository
	testimonials   TestimonialRepository
}

func NewService(
	hospital HospitalRepository,
	departments DepartmentRepository,
	doctors DoctorRepository,
	services ServiceRepository,
	infrastructure InfrastructureRepository,
	testimonials TestimonialRepository,
) *Svc {
	return &Svc{
		hospital:       hospital,
		departments:    departments,
		doctors:        doctors,
		services:       services,
		infrastructure: infrastructure,
		testimonials:   testimonials,
	}
}

// -- Hospital --

func (s *Svc) GetHospital(ctx context.Context) (*Hospital, error) {
	return s.hospital.Get(ctx)
}

func (s *Svc) SaveHospital(ctx context.Context, h *Hospital) error {
	in := struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}{h.Name, h.Email}
	if err := validate.Struct(in); err != nil {
		return err
	}
	return s.hospital.Upsert(ctx, h)
}

// -- Departments --

func (s *Svc) ListDepartments(ctx context.Context) ([]*Department, error) {
	return s.departments.List(ctx)
}

func (s *Svc) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *Svc) CreateDepartment(ctx context.Context, d *Department) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.departments.Create(ctx, d)
}

func (s *Svc) UpdateDepartment(ctx context.Context, d *Department) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.departments.Update(ctx, d)
}

func (s *Svc) DeleteDepartment(ctx context.Context, id int64) error {
	return s.departments.Delete(ctx, id)
}

// -- Doctors --

func (s *Svc) ListDoctors(ctx context.Context, filter DoctorFilter, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, filter, limit, offset)
}

func (s *Svc) ListDoctorsByDepartment(ctx context.Context, departmentID int64) ([]*Doctor, error) {
	return s.doctors.ListByDepartment(ctx, departmentID)
}

func (s *Svc) GetDoctor(ctx context.Context, id int64) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

// CreateDoctor checks the referenced department exists before inserting so
// the caller sees a not-found error instead of a raw FK violation.
func (s *Svc) CreateDoctor(ctx context.Context, d *Doctor) error {
	in := struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}{d.Name, d.Email}
	if err := validate.Struct(in); err != nil {
		return err
	}
	if _, err := s.departments.GetByID(ctx, d.DepartmentID); err != nil {
		return err
	}
	return s.doctors.Create(ctx, d)
}

func (s *Svc) UpdateDoctor(ctx context.Context, d *Doctor) error {
	if _, err := s.departments.GetByID(ctx, d.DepartmentID); err != nil {
		return err
	}
	return s.doctors.Update(ctx, d)
}

func (s *Svc) DeleteDoctor(ctx context.Context, id int64) error {
	return s.doctors.Delete(ctx, id)
}

// -- Services --

func (s *Svc) ListServices(ctx context.Context, departmentID *int64) ([]*Service, error) {
	return s.services.List(ctx, departmentID)
}

func (s *Svc) GetService(ctx context.Context, id int64) (*Service, error) {
	return s.services.GetByID(ctx, id)
}

func (s *Svc) CreateService(ctx context.Context, svc *Service) error {
	if svc.Name == "" {
		return fmt.Errorf("name is required")
	}
	if svc.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *svc.DepartmentID); err != nil {
			return err
		}
	}
	return s.services.Create(ctx, svc)
}

func (s *Svc) UpdateService(ctx context.Context, svc *Service) error {
	if svc.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *svc.DepartmentID); err != nil {
			return err
		}
	}
	return s.services.Update(ctx, svc)
}

func (s *Svc) DeleteService(ctx context.Context, id int64) error {
	return s.services.Delete(ctx, id)
}

// -- Infrastructure --

func (s *Svc) ListInfrastructure(ctx context.Context) ([]*Infrastructure, error) {
	return s.infrastructure.List(ctx)
}

func (s *Svc) CreateInfrastructure(ctx context.Context, i *Infrastructure) error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.infrastructure.Create(ctx, i)
}

func (s *Svc) UpdateInfrastructure(ctx context.Context, i *Infrastructure) error {
	return s.infrastructure.Update(ctx, i)
}

func (s *Svc) DeleteInfrastructure(ctx context.Context, id int64) error {
	return s.infrastructure.Delete(ctx, id)
}

// -- Testimonials --

func (s *Svc) ListPublishedTestimonials(ctx context.Context, limit int) ([]*Testimonial, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.testimonials.ListPublished(ctx, limit)
}

func (s *Svc) CreateTestimonial(ctx context.Context, t *Testimonial) error {
	in := struct {
		PatientName string `validate:"required"`
		Message     string `validate:"required"`
		Rating      int    `validate:"gte=1,lte=5"`
	}{t.PatientName, t.Message, t.Rating}
	if err := validate.Struct(in); err != nil {
		return err
	}
	if t.DoctorID != nil {
		if _, err := s.doctors.GetByID(ctx, *t.DoctorID); err != nil {
			return err
		}
	}
	return s.testimonials.Create(ctx, t)
}

func (s *Svc) UpdateTestimonial(ctx context.Context, t *Testimonial) error {
	if t.Rating < 1 || t.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return s.testimonials.Update(ctx, t)
}

func (s *Svc) DeleteTestimonial(ctx context.Context, id int64) error {
	return s.testimonials.Delete(ctx, id)
}
