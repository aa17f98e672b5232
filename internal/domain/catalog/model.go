package catalog

import "time"

// Hospital maps to the hospital table. The deployment carries a single row
// describing the facility.
type Hospital struct {
	ID              int64     `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Location        string    `db:"location" json:"location"`
	Phone           string    `db:"phone" json:"phone"`
	Email           string    `db:"email" json:"email"`
	Website         *string   `db:"website" json:"website,omitempty"`
	About           string    `db:"about" json:"about"`
	EstablishedYear int       `db:"established_year" json:"established_year"`
	TotalBeds       int       `db:"total_beds" json:"total_beds"`
	DoctorsCount    int       `db:"doctors_count" json:"doctors_count"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Department maps to the department table.
type Department struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Icon        string    `db:"icon" json:"icon"`
	HeadDoctor  string    `db:"head_doctor" json:"head_doctor"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Doctor maps to the doctor table.
type Doctor struct {
	ID              int64     `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Email           string    `db:"email" json:"email"`
	Phone           string    `db:"phone" json:"phone"`
	Qualification   string    `db:"qualification" json:"qualification"`
	DepartmentID    int64     `db:"department_id" json:"department_id"`
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	ConsultationFee float64   `db:"consultation_fee" json:"consultation_fee"`
	Gender          string    `db:"gender" json:"gender"`
	Availability    string    `db:"availability" json:"availability"`
	Bio             string    `db:"bio" json:"bio"`
	IsAvailable     bool      `db:"is_available" json:"is_available"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Service maps to the service table (a medical service the hospital offers).
type Service struct {
	ID           int64    `db:"id" json:"id"`
	Name         string   `db:"name" json:"name"`
	Description  string   `db:"description" json:"description"`
	DepartmentID *int64   `db:"department_id" json:"department_id,omitempty"`
	CostEstimate *float64 `db:"cost_estimate" json:"cost_estimate,omitempty"`
}

// Infrastructure maps to the infrastructure table (facility features shown
// on the public site).
type Infrastructure struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Icon        string `db:"icon" json:"icon"`
	HospitalID  int64  `db:"hospital_id" json:"hospital_id"`
}

// Testimonial maps to the testimonial table. Only published rows appear on
// the public site.
type Testimonial struct {
	ID          int64     `db:"id" json:"id"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	Message     string    `db:"message" json:"message"`
	Rating      int       `db:"rating" json:"rating"`
	DoctorID    *int64    `db:"doctor_id" json:"doctor_id,omitempty"`
	IsPublished bool      `db:"is_published" json:"is_published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// DoctorFilter narrows doctor listings.
type DoctorFilter struct {
	DepartmentID  *int64
	Search        string
	AvailableOnly bool
}
