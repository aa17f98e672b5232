package catalog

import "context"

type HospitalRepository interface {
	Get(ctx context.Context) (*Hospital, error)
	Upsert(ctx context.Context, h *Hospital) error
}

type DepartmentRepository interface {
	Create(ctx context.Context, d *Department) error
	GetByID(ctx context.Context, id int64) (*Department, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Department, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter DoctorFilter, limit, offset int) ([]*Doctor, int, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]*Doctor, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id int64) (*Service, error)
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, departmentID *int64) ([]*Service, error)
}

type InfrastructureRepository interface {
	Create(ctx context.Context, i *Infrastructure) error
	GetByID(ctx context.Context, id int64) (*Infrastructure, error)
	Update(ctx context.Context, i *Infrastructure) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Infrastructure, error)
}

type TestimonialRepository interface {
	Create(ctx context.Context, t *Testimonial) error
	GetByID(ctx context.Context, id int64) (*Testimonial, error)
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id int64) error
	ListPublished(ctx context.Context, limit int) ([]*Testimonial, error)
}
