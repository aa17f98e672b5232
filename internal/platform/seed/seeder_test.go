package seed

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arogya/arogya/internal/domain/account"
	"github.com/arogya/arogya/internal/domain/catalog"
)

type memHospitalRepo struct{ h *catalog.Hospital }

func (m *memHospitalRepo) Get(_ context.Context) (*catalog.Hospital, error) {
	if m.h == nil {
		return nil, &catalog.NotFoundError{Entity: "hospital", ID: 0}
	}
	return m.h, nil
}

func (m *memHospitalRepo) Upsert(_ context.Context, h *catalog.Hospital) error {
	if m.h != nil && m.h.Name == h.Name {
		h.ID = m.h.ID
	} else {
		h.ID = 1
	}
	m.h = h
	return nil
}

type memDepartmentRepo struct {
	rows   map[int64]*catalog.Department
	nextID int64
}

func (m *memDepartmentRepo) Create(_ context.Context, d *catalog.Department) error {
	m.nextID++
	d.ID = m.nextID
	m.rows[d.ID] = d
	return nil
}

func (m *memDepartmentRepo) GetByID(_ context.Context, id int64) (*catalog.Department, error) {
	d, ok := m.rows[id]
	if !ok {
		return nil, &catalog.NotFoundError{Entity: "department", ID: id}
	}
	return d, nil
}

func (m *memDepartmentRepo) Update(_ context.Context, d *catalog.Department) error {
	m.rows[d.ID] = d
	return nil
}

func (m *memDepartmentRepo) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

func (m *memDepartmentRepo) List(_ context.Context) ([]*catalog.Department, error) {
	out := make([]*catalog.Department, 0, len(m.rows))
	for _, d := range m.rows {
		out = append(out, d)
	}
	return out, nil
}

type memDoctorRepo struct {
	rows   map[int64]*catalog.Doctor
	nextID int64
}

func (m *memDoctorRepo) Create(_ context.Context, d *catalog.Doctor) error {
	m.nextID++
	d.ID = m.nextID
	m.rows[d.ID] = d
	return nil
}

func (m *memDoctorRepo) GetByID(_ context.Context, id int64) (*catalog.Doctor, error) {
	d, ok := m.rows[id]
	if !ok {
		return nil, &catalog.NotFoundError{Entity: "doctor", ID: id}
	}
	return d, nil
}

func (m *memDoctorRepo) Update(_ context.Context, d *catalog.Doctor) error {
	m.rows[d.ID] = d
	return nil
}

func (m *memDoctorRepo) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

func (m *memDoctorRepo) List(_ context.Context, _ catalog.DoctorFilter, _, _ int) ([]*catalog.Doctor, int, error) {
	out := make([]*catalog.Doctor, 0, len(m.rows))
	for _, d := range m.rows {
		out = append(out, d)
	}
	return out, len(out), nil
}

func (m *memDoctorRepo) ListByDepartment(_ context.Context, departmentID int64) ([]*catalog.Doctor, error) {
	var out []*catalog.Doctor
	for _, d := range m.rows {
		if d.DepartmentID == departmentID {
			out = append(out, d)
		}
	}
	return out, nil
}

type memServiceRepo struct {
	rows   map[int64]*catalog.Service
	nextID int64
}

func (m *memServiceRepo) Create(_ context.Context, s *catalog.Service) error {
	m.nextID++
	s.ID = m.nextID
	m.rows[s.ID] = s
	return nil
}

func (m *memServiceRepo) GetByID(_ context.Context, id int64) (*catalog.Service, error) {
	s, ok := m.rows[id]
	if !ok {
		return nil, &catalog.NotFoundError{Entity: "service", ID: id}
	}
	return s, nil
}

func (m *memServiceRepo) Update(_ context.Context, s *catalog.Service) error {
	m.rows[s.ID] = s
	return nil
}

func (m *memServiceRepo) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

func (m *memServiceRepo) List(_ context.Context, departmentID *int64) ([]*catalog.Service, error) {
	var out []*catalog.Service
	for _, s := range m.rows {
		if departmentID != nil && (s.DepartmentID == nil || *s.DepartmentID != *departmentID) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type memInfraRepo struct {
	rows   map[int64]*catalog.Infrastructure
	nextID int64
}

func (m *memInfraRepo) Create(_ context.Context, i *catalog.Infrastructure) error {
	m.nextID++
	i.ID = m.nextID
	m.rows[i.ID] = i
	return nil
}

func (m *memInfraRepo) GetByID(_ context.Context, id int64) (*catalog.Infrastructure, error) {
	i, ok := m.rows[id]
	if !ok {
		return nil, &catalog.NotFoundError{Entity: "infrastructure", ID: id}
	}
	return i, nil
}

func (m *memInfraRepo) Update(_ context.Context, i *catalog.Infrastructure) error {
	m.rows[i.ID] = i
	return nil
}

func (m *memInfraRepo) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

func (m *memInfraRepo) List(_ context.Context) ([]*catalog.Infrastructure, error) {
	out := make([]*catalog.Infrastructure, 0, len(m.rows))
	for _, i := range m.rows {
		out = append(out, i)
	}
	return out, nil
}

type memTestimonialRepo struct {
	rows   map[int64]*catalog.Testimonial
	nextID int64
}

func (m *memTestimonialRepo) Create(_ context.Context, t *catalog.Testimonial) error {
	m.nextID++
	t.ID = m.nextID
	m.rows[t.ID] = t
	return nil
}

func (m *memTestimonialRepo) GetByID(_ context.Context, id int64) (*catalog.Testimonial, error) {
	t, ok := m.rows[id]
	if !ok {
		return nil, &catalog.NotFoundError{Entity: "testimonial", ID: id}
	}
	return t, nil
}

func (m *memTestimonialRepo) Update(_ context.Context, t *catalog.Testimonial) error {
	m.rows[t.ID] = t
	return nil
}

func (m *memTestimonialRepo) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

func (m *memTestimonialRepo) ListPublished(_ context.Context, _ int) ([]*catalog.Testimonial, error) {
	var out []*catalog.Testimonial
	for _, t := range m.rows {
		if t.IsPublished {
			out = append(out, t)
		}
	}
	return out, nil
}

type memAccountRepo struct {
	rows map[uuid.UUID]*account.Account
}

func (m *memAccountRepo) Create(_ context.Context, a *account.Account) error {
	for _, existing := range m.rows {
		if strings.EqualFold(existing.Email, a.Email) {
			return account.ErrEmailTaken
		}
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	m.rows[a.ID] = a
	return nil
}

func (m *memAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*account.Account, error) {
	a, ok := m.rows[id]
	if !ok {
		return nil, account.ErrNotFound
	}
	return a, nil
}

func (m *memAccountRepo) GetByEmail(_ context.Context, email string) (*account.Account, error) {
	for _, a := range m.rows {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return nil, account.ErrNotFound
}

func newTestSeeder() *Seeder {
	return NewSeeder(
		&memHospitalRepo{},
		&memDepartmentRepo{rows: make(map[int64]*catalog.Department)},
		&memDoctorRepo{rows: make(map[int64]*catalog.Doctor)},
		&memServiceRepo{rows: make(map[int64]*catalog.Service)},
		&memInfraRepo{rows: make(map[int64]*catalog.Infrastructure)},
		&memTestimonialRepo{rows: make(map[int64]*catalog.Testimonial)},
		&memAccountRepo{rows: make(map[uuid.UUID]*account.Account)},
		zerolog.Nop(),
	)
}

func TestRun_SeedsFullDataset(t *testing.T) {
	s := newTestSeeder()

	result, err := s.Run(context.Background(), Options{
		AdminEmail:    "admin@arogyamedical.example",
		AdminPassword: "admin-secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Departments != 10 {
		t.Errorf("expected 10 departments, got %d", result.Departments)
	}
	if result.Doctors != 10 {
		t.Errorf("expected 10 doctors, got %d", result.Doctors)
	}
	if result.Services != 5 {
		t.Errorf("expected 5 services, got %d", result.Services)
	}
	if result.Infrastructure != 3 {
		t.Errorf("expected 3 infrastructure items, got %d", result.Infrastructure)
	}
	if result.Testimonials != 2 {
		t.Errorf("expected 2 testimonials, got %d", result.Testimonials)
	}
	if !result.AdminCreated {
		t.Error("expected admin account to be created")
	}

	h, err := s.hospitals.Get(context.Background())
	if err != nil {
		t.Fatalf("hospital not seeded: %v", err)
	}
	if h.Name != "Arogya Medical Center" {
		t.Errorf("unexpected hospital name %q", h.Name)
	}
}

func TestRun_Idempotent(t *testing.T) {
	s := newTestSeeder()
	opts := Options{AdminEmail: "admin@arogyamedical.example", AdminPassword: "admin-secret"}

	if _, err := s.Run(context.Background(), opts); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	second, err := s.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if second.Departments != 0 || second.Doctors != 0 || second.Services != 0 ||
		second.Infrastructure != 0 || second.Testimonials != 0 {
		t.Errorf("second run created rows: %+v", second)
	}
	if second.AdminCreated {
		t.Error("second run must not recreate the admin account")
	}
}

func TestRun_NoAdminCredentials(t *testing.T) {
	s := newTestSeeder()

	result, err := s.Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AdminCreated {
		t.Error("admin must not be created without credentials")
	}
}
