// Package seed loads the demo dataset for the Arogya Medical Center
// deployment. Seeding is idempotent: rows are matched by name or email and
// only created when missing, so the command is safe to re-run.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arogya/arogya/internal/domain/account"
	"github.com/arogya/arogya/internal/domain/catalog"
	"github.com/arogya/arogya/internal/platform/auth"
)

// Options controls the seeded admin account.
type Options struct {
	AdminEmail    string
	AdminPassword string
}

// Result summarizes what a seed run created versus skipped.
type Result struct {
	Departments    int           `json:"departments"`
	Doctors        int           `json:"doctors"`
	Services       int           `json:"services"`
	Infrastructure int           `json:"infrastructure"`
	Testimonials   int           `json:"testimonials"`
	AdminCreated   bool          `json:"admin_created"`
	Duration       time.Duration `json:"duration"`
}

type Seeder struct {
	hospitals      catalog.HospitalRepository
	departments    catalog.DepartmentRepository
	doctors        catalog.DoctorRepository
	services       catalog.ServiceRepository
	infrastructure catalog.InfrastructureRepository
	testimonials   catalog.TestimonialRepository
	accounts       account.Repository
	log            zerolog.Logger
}

func NewSeeder(
	hospitals catalog.HospitalRepository,
	departments catalog.DepartmentRepository,
	doctors catalog.DoctorRepository,
	services catalog.ServiceRepository,
	infrastructure catalog.InfrastructureRepository,
	testimonials catalog.TestimonialRepository,
	accounts account.Repository,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{
		hospitals:      hospitals,
		departments:    departments,
		doctors:        doctors,
		services:       services,
		infrastructure: infrastructure,
		testimonials:   testimonials,
		accounts:       accounts,
		log:            log,
	}
}

type departmentSeed struct {
	name, description string
}

var departmentSeeds = []departmentSeed{
	{"Cardiology", "Heart and vascular care"},
	{"Oncology", "Cancer care and treatments"},
	{"Orthopedics", "Bone and joint specialists"},
	{"Gastroenterology", "Digestive system specialists"},
	{"Neurology", "Brain and nervous system care"},
	{"Urology", "Urinary and reproductive health"},
	{"Nephrology", "Kidney care and dialysis"},
	{"Pulmonology", "Lung and respiratory care"},
	{"Gynecology", "Women health and maternity"},
	{"Pediatrics", "Child health and neonatology"},
}

type serviceSeed struct {
	name, description, department string
	cost                          float64
}

var serviceSeeds = []serviceSeed{
	{"Angiography", "Heart imaging procedure", "Cardiology", 15000},
	{"Chemotherapy", "Cancer treatment", "Oncology", 45000},
	{"Joint Replacement", "Orthopedic joint replacement", "Orthopedics", 80000},
	{"Endoscopy", "GI diagnostic procedure", "Gastroenterology", 8000},
	{"EEG", "Neurological diagnostic test", "Neurology", 5000},
}

type infraSeed struct {
	name, description, icon string
}

var infraSeeds = []infraSeed{
	{"MRI Machine", "High-resolution MRI", "brain"},
	{"Robotic Surgery Suite", "Robotic-assisted surgery", "robot"},
	{"Cath Lab", "Cardiac catheterization lab", "heart"},
}

type testimonialSeed struct {
	patientName, message string
	rating               int
}

var testimonialSeeds = []testimonialSeed{
	{"Ravi Patel", "Excellent care and friendly staff.", 5},
	{"Sneha Rao", "Very experienced doctors and smooth process.", 4},
}

// Run seeds the full dataset and reports what was created.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	result := &Result{}

	if err := s.seedHospital(ctx); err != nil {
		return nil, fmt.Errorf("seed hospital: %w", err)
	}

	deptIDs, err := s.seedDepartments(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("seed departments: %w", err)
	}
	if err := s.seedDoctors(ctx, deptIDs, result); err != nil {
		return nil, fmt.Errorf("seed doctors: %w", err)
	}
	if err := s.seedServices(ctx, deptIDs, result); err != nil {
		return nil, fmt.Errorf("seed services: %w", err)
	}
	if err := s.seedInfrastructure(ctx, result); err != nil {
		return nil, fmt.Errorf("seed infrastructure: %w", err)
	}
	if err := s.seedTestimonials(ctx, result); err != nil {
		return nil, fmt.Errorf("seed testimonials: %w", err)
	}
	if err := s.seedAdmin(ctx, opts, result); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	result.Duration = time.Since(start)
	s.log.Info().
		Int("departments", result.Departments).
		Int("doctors", result.Doctors).
		Int("services", result.Services).
		Bool("admin_created", result.AdminCreated).
		Dur("duration", result.Duration).
		Msg("seed completed")
	return result, nil
}

func (s *Seeder) seedHospital(ctx context.Context) error {
	website := "https://www.arogyamedical.example"
	return s.hospitals.Upsert(ctx, &catalog.Hospital{
		Name:            "Arogya Medical Center",
		Location:        "Ahmedabad, Gujarat",
		Phone:           "9876543210",
		Email:           "info@arogyamedical.example",
		Website:         &website,
		About:           "Leading medical facility providing comprehensive healthcare services.",
		EstablishedYear: 2000,
		TotalBeds:       350,
		DoctorsCount:    120,
	})
}

func (s *Seeder) seedDepartments(ctx context.Context, result *Result) (map[string]int64, error) {
	existing, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(departmentSeeds))
	for _, d := range existing {
		ids[d.Name] = d.ID
	}

	for _, seed := range departmentSeeds {
		if _, ok := ids[seed.name]; ok {
			continue
		}
		d := &catalog.Department{
			Name:        seed.name,
			Description: seed.description,
			Icon:        "user-md",
		}
		if err := s.departments.Create(ctx, d); err != nil {
			return nil, err
		}
		ids[d.Name] = d.ID
		result.Departments++
	}
	return ids, nil
}

func (s *Seeder) seedDoctors(ctx context.Context, deptIDs map[string]int64, result *Result) error {
	for i, seed := range departmentSeeds {
		deptID, ok := deptIDs[seed.name]
		if !ok {
			continue
		}
		existing, err := s.doctors.ListByDepartment(ctx, deptID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}

		n := i + 1
		gender := "F"
		if n%2 == 0 {
			gender = "M"
		}
		doc := &catalog.Doctor{
			Name:            fmt.Sprintf("Dr. %s Expert", seed.name),
			Email:           fmt.Sprintf("%s@arogyamedical.example", strings.ToLower(seed.name)),
			Phone:           fmt.Sprintf("90000000%02d", n),
			Qualification:   "MBBS, MD",
			DepartmentID:    deptID,
			ExperienceYears: 10 + n,
			ConsultationFee: float64(500 + n*50),
			Gender:          gender,
			Availability:    "Mon-Fri, 10:00-16:00",
			Bio:             fmt.Sprintf("Experienced specialist in %s.", seed.name),
			IsAvailable:     true,
		}
		if err := s.doctors.Create(ctx, doc); err != nil {
			return err
		}
		result.Doctors++
	}
	return nil
}

func (s *Seeder) seedServices(ctx context.Context, deptIDs map[string]int64, result *Result) error {
	existing, err := s.services.List(ctx, nil)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, svc := range existing {
		have[svc.Name] = true
	}

	for _, seed := range serviceSeeds {
		if have[seed.name] {
			continue
		}
		deptID, ok := deptIDs[seed.department]
		if !ok {
			continue
		}
		cost := seed.cost
		svc := &catalog.Service{
			Name:         seed.name,
			Description:  seed.description,
			DepartmentID: &deptID,
			CostEstimate: &cost,
		}
		if err := s.services.Create(ctx, svc); err != nil {
			return err
		}
		result.Services++
	}
	return nil
}

func (s *Seeder) seedInfrastructure(ctx context.Context, result *Result) error {
	hospital, err := s.hospitals.Get(ctx)
	if err != nil {
		return err
	}

	existing, err := s.infrastructure.List(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, item := range existing {
		have[item.Name] = true
	}

	for _, seed := range infraSeeds {
		if have[seed.name] {
			continue
		}
		item := &catalog.Infrastructure{
			Name:        seed.name,
			Description: seed.description,
			Icon:        seed.icon,
			HospitalID:  hospital.ID,
		}
		if err := s.infrastructure.Create(ctx, item); err != nil {
			return err
		}
		result.Infrastructure++
	}
	return nil
}

func (s *Seeder) seedTestimonials(ctx context.Context, result *Result) error {
	existing, err := s.testimonials.ListPublished(ctx, 100)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, t := range existing {
		have[t.PatientName] = true
	}

	for _, seed := range testimonialSeeds {
		if have[seed.patientName] {
			continue
		}
		t := &catalog.Testimonial{
			PatientName: seed.patientName,
			Message:     seed.message,
			Rating:      seed.rating,
			IsPublished: true,
		}
		if err := s.testimonials.Create(ctx, t); err != nil {
			return err
		}
		result.Testimonials++
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, opts Options, result *Result) error {
	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		s.log.Info().Msg("no admin credentials supplied, skipping admin account")
		return nil
	}

	_, err := s.accounts.GetByEmail(ctx, opts.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, account.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(opts.AdminPassword)
	if err != nil {
		return err
	}
	if err := s.accounts.Create(ctx, &account.Account{
		Email:        opts.AdminEmail,
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
	}); err != nil {
		return err
	}
	result.AdminCreated = true
	return nil
}
