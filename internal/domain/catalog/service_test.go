package catalog

import (
	"context"
	"testing"
	"time"
)

// -- Mock Repositories --

type mockHospitalRepo struct {
	hospital *Hospital
}

func (m *mockHospitalRepo) Get(_ context.Context) (*Hospital, error) {
	if m.hospital == nil {
		return nil, &NotFoundError{Entity: "hospital", ID: 0}
	}
	return m.hospital, nil
}

func (m *mockHospitalRepo) Upsert(_ context.Context, h *Hospital) error {
	if h.ID == 0 {
		h.ID = 1
		h.CreatedAt = time.Now()
	}
	m.hospital = h
	return nil
}

type mockDepartmentRepo struct {
	depts  map[int64]*Department
	nextID int64
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{depts: make(map[int64]*Department)}
}

func (m *mockDepartmentRepo) Create(_ context.Context, d *Department) error {
	m.nextID++
	d.ID = m.nextID
	d.CreatedAt = time.Now()
	m.depts[d.ID] = d
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id int64) (*Department, error) {
	d, ok := m.depts[id]
	if !ok {
		return nil, &NotFoundError{Entity: "department", ID: id}
	}
	return d, nil
}

func (m *mockDepartmentRepo) Update(_ context.Context, d *Department) error {
	if _, ok := m.depts[d.ID]; !ok {
		return &NotFoundError{Entity: "department", ID: d.ID}
	}
	m.depts[d.ID] = d
	return nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.depts[id]; !ok {
		return &NotFoundError{Entity: "department", ID: id}
	}
	delete(m.depts, id)
	return nil
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]*Department, error) {
	var result []*Department
	for _, d := range m.depts {
		result = append(result, d)
	}
	return result, nil
}

type mockDoctorRepo struct {
	doctors map[int64]*Doctor
	nextID  int64
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[int64]*Doctor)}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *Doctor) error {
	m.nextID++
	d.ID = m.nextID
	d.CreatedAt = time.Now()
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id int64) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, &NotFoundError{Entity: "doctor", ID: id}
	}
	return d, nil
}

func (m *mockDoctorRepo) Update(_ context.Context, d *Doctor) error {
	if _, ok := m.doctors[d.ID]; !ok {
		return &NotFoundError{Entity: "doctor", ID: d.ID}
	}
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.doctors[id]; !ok {
		return &NotFoundError{Entity: "doctor", ID: id}
	}
	delete(m.doctors, id)
	return nil
}

func (m *mockDoctorRepo) List(_ context.Context, filter DoctorFilter, limit, offset int) ([]*Doctor, int, error) {
	var result []*Doctor
	for _, d := range m.doctors {
		if filter.DepartmentID != nil && d.DepartmentID != *filter.DepartmentID {
			continue
		}
		if filter.AvailableOnly && !d.IsAvailable {
			continue
		}
		result = append(result, d)
	}
	return result, len(result), nil
}

func (m *mockDoctorRepo) ListByDepartment(_ context.Context, departmentID int64) ([]*Doctor, error) {
	var result []*Doctor
	for _, d := range m.doctors {
		if d.DepartmentID == departmentID {
			result = append(result, d)
		}
	}
	return result, nil
}

type mockServiceRepo struct {
	services map[int64]*Service
	nextID   int64
}

func newMockServiceRepo() *mockServiceRepo {
	return &mockServiceRepo{services: make(map[int64]*Service)}
}

func (m *mockServiceRepo) Create(_ context.Context, s *Service) error {
	m.nextID++
	s.ID = m.nextID
	m.services[s.ID] = s
	return nil
}

func (m *mockServiceRepo) GetByID(_ context.Context, id int64) (*Service, error) {
	s, ok := m.services[id]
	if !ok {
		return nil, &NotFoundError{Entity: "service", ID: id}
	}
	return s, nil
}

func (m *mockServiceRepo) Update(_ context.Context, s *Service) error {
	if _, ok := m.services[s.ID]; !ok {
		return &NotFoundError{Entity: "service", ID: s.ID}
	}
	m.services[s.ID] = s
	return nil
}

func (m *mockServiceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.services[id]; !ok {
		return &NotFoundError{Entity: "service", ID: id}
	}
	delete(m.services, id)
	return nil
}

func (m *mockServiceRepo) List(_ context.Context, departmentID *int64) ([]*Service, error) {
	var result []*Service
	for _, s := range m.services {
		if departmentID != nil && (s.DepartmentID == nil || *s.DepartmentID != *departmentID) {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

type mockInfrastructureRepo struct {
	items  map[int64]*Infrastructure
	nextID int64
}

func newMockInfrastructureRepo() *mockInfrastructureRepo {
	return &mockInfrastructureRepo{items: make(map[int64]*Infrastructure)}
}

func (m *mockInfrastructureRepo) Create(_ context.Context, i *Infrastructure) error {
	m.nextID++
	i.ID = m.nextID
	m.items[i.ID] = i
	return nil
}

func (m *mockInfrastructureRepo) GetByID(_ context.Context, id int64) (*Infrastructure, error) {
	i, ok := m.items[id]
	if !ok {
		return nil, &NotFoundError{Entity: "infrastructure", ID: id}
	}
	return i, nil
}

func (m *mockInfrastructureRepo) Update(_ context.Context, i *Infrastructure) error {
	if _, ok := m.items[i.ID]; !ok {
		return &NotFoundError{Entity: "infrastructure", ID: i.ID}
	}
	m.items[i.ID] = i
	return nil
}

func (m *mockInfrastructureRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return &NotFoundError{Entity: "infrastructure", ID: id}
	}
	delete(m.items, id)
	return nil
}

func (m *mockInfrastructureRepo) List(_ context.Context) ([]*Infrastructure, error) {
	var result []*Infrastructure
	for _, i := range m.items {
		result = append(result, i)
	}
	return result, nil
}

type mockTestimonialRepo struct {
	items  map[int64]*Testimonial
	nextID int64
}

func newMockTestimonialRepo() *mockTestimonialRepo {
	return &mockTestimonialRepo{items: make(map[int64]*Testimonial)}
}

func (m *mockTestimonialRepo) Create(_ context.Context, t *Testimonial) error {
	m.nextID++
	t.ID = m.nextID
	t.CreatedAt = time.Now()
	m.items[t.ID] = t
	return nil
}

func (m *mockTestimonialRepo) GetByID(_ context.Context, id int64) (*Testimonial, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, &NotFoundError{Entity: "testimonial", ID: id}
	}
	return t, nil
}

func (m *mockTestimonialRepo) Update(_ context.Context, t *Testimonial) error {
	if _, ok := m.items[t.ID]; !ok {
		return &NotFoundError{Entity: "testimonial", ID: t.ID}
	}
	m.items[t.ID] = t
	return nil
}

func (m *mockTestimonialRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return &NotFoundError{Entity: "testimonial", ID: id}
	}
	delete(m.items, id)
	return nil
}

func (m *mockTestimonialRepo) ListPublished(_ context.Context, limit int) ([]*Testimonial, error) {
	var result []*Testimonial
	for _, t := range m.items {
		if t.IsPublished {
			result = append(result, t)
		}
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func newTestService() (*Svc, *mockDepartmentRepo, *mockDoctorRepo) {
	depts := newMockDepartmentRepo()
	doctors := newMockDoctorRepo()
	svc := NewService(&mockHospitalRepo{}, depts, doctors,
		newMockServiceRepo(), newMockInfrastructureRepo(), newMockTestimonialRepo())
	return svc, depts, doctors
}

// -- Tests --

func TestCreateDoctor_RequiresExistingDepartment(t *testing.T) {
	svc, _, _ := newTestService()

	doc := &Doctor{Name: "Dr. Meera Nair", Email: "meera@example.com", DepartmentID: 42}
	err := svc.CreateDoctor(context.Background(), doc)
	if err == nil {
		t.Fatal("expected error for missing department")
	}
	if !IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestCreateDoctor_Valid(t *testing.T) {
	svc, depts, _ := newTestService()

	dept := &Department{Name: "Cardiology"}
	if err := depts.Create(context.Background(), dept); err != nil {
		t.Fatal(err)
	}

	doc := &Doctor{Name: "Dr. Meera Nair", Email: "meera@example.com", DepartmentID: dept.ID, IsAvailable: true}
	if err := svc.CreateDoctor(context.Background(), doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID == 0 {
		t.Error("expected doctor id to be assigned")
	}
}

func TestCreateDoctor_RejectsBadEmail(t *testing.T) {
	svc, depts, _ := newTestService()

	dept := &Department{Name: "Cardiology"}
	depts.Create(context.Background(), dept)

	doc := &Doctor{Name: "Dr. Meera Nair", Email: "not-an-email", DepartmentID: dept.ID}
	if err := svc.CreateDoctor(context.Background(), doc); err == nil {
		t.Error("expected validation error for bad email")
	}
}

func TestGetDoctor_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetDoctor(context.Background(), 9999)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestListDoctors_AvailableOnly(t *testing.T) {
	svc, depts, doctors := newTestService()

	dept := &Department{Name: "Neurology"}
	depts.Create(context.Background(), dept)
	doctors.Create(context.Background(), &Doctor{Name: "Dr. A", DepartmentID: dept.ID, IsAvailable: true})
	doctors.Create(context.Background(), &Doctor{Name: "Dr. B", DepartmentID: dept.ID, IsAvailable: false})

	items, total, err := svc.ListDoctors(context.Background(), DoctorFilter{AvailableOnly: true}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("expected 1 available doctor, got %d", total)
	}
	if !items[0].IsAvailable {
		t.Error("expected the available doctor")
	}
}

func TestCreateTestimonial_RatingBounds(t *testing.T) {
	svc, _, _ := newTestService()

	tm := &Testimonial{PatientName: "Priya", Message: "Great care", Rating: 6}
	if err := svc.CreateTestimonial(context.Background(), tm); err == nil {
		t.Error("expected validation error for rating 6")
	}

	tm.Rating = 5
	if err := svc.CreateTestimonial(context.Background(), tm); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateService_ChecksDepartment(t *testing.T) {
	svc, _, _ := newTestService()

	missing := int64(7)
	in := &Service{Name: "MRI Scan", DepartmentID: &missing}
	err := svc.CreateService(context.Background(), in)
	if !IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}

	in.DepartmentID = nil
	if err := svc.CreateService(context.Background(), in); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSaveHospital_Validates(t *testing.T) {
	svc, _, _ := newTestService()

	h := &Hospital{Name: "", Email: "info@example.com"}
	if err := svc.SaveHospital(context.Background(), h); err == nil {
		t.Error("expected validation error for empty name")
	}

	h = &Hospital{Name: "Arogya Medical Center", Email: "info@arogya.example"}
	if err := svc.SaveHospital(context.Background(), h); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
