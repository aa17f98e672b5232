package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Hospital Repository ===========

type hospitalRepoPG struct{ pool *pgxpool.Pool }

func NewHospitalRepoPG(pool *pgxpool.Pool) HospitalRepository { return &hospitalRepoPG{pool: pool} }

const hospitalCols = `id, name, location, phone, email, website, about,
	established_year, total_beds, doctors_count, created_at`

func (r *hospitalRepoPG) Get(ctx context.Context) (*Hospital, error) {
	var h Hospital
	err := r.pool.QueryRow(ctx, `SELECT `+hospitalCols+` FROM hospital ORDER BY id LIMIT 1`).Scan(
		&h.ID, &h.Name, &h.Location, &h.Phone, &h.Email, &h.Website, &h.About,
		&h.EstablishedYear, &h.TotalBeds, &h.DoctorsCount, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Entity: "hospital", ID: 0}
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *hospitalRepoPG) Upsert(ctx context.Context, h *Hospital) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO hospital (name, location, phone, email, website, about,
			established_year, total_beds, doctors_count)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (name) DO UPDATE SET
			location=EXCLUDED.location, phone=EXCLUDED.phone, email=EXCLUDED.email,
			website=EXCLUDED.website, about=EXCLUDED.about,
			established_year=EXCLUDED.established_year, total_beds=EXCLUDED.total_beds,
			doctors_count=EXCLUDED.doctors_count
		RETURNING id, created_at`,
		h.Name, h.Location, h.Phone, h.Email, h.Website, h.About,
		h.EstablishedYear, h.TotalBeds, h.DoctorsCount).Scan(&h.ID, &h.CreatedAt)
}

// =========== Department Repository ===========

type departmentRepoPG struct{ pool *pgxpool.Pool }

func NewDepartmentRepoPG(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepoPG{pool: pool}
}

const departmentCols = `id, name, description, icon, head_doctor, created_at`

func (r *departmentRepoPG) scanDepartment(row pgx.Row) (*Department, error) {
	var d Department
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Icon, &d.HeadDoctor, &d.CreatedAt)
	return &d, err
}

func (r *departmentRepoPG) Create(ctx context.Context, d *Department) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO department (name, description, icon, head_doctor)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`,
		d.Name, d.Description, d.Icon, d.HeadDoctor).Scan(&d.ID, &d.CreatedAt)
}

func (r *departmentRepoPG) GetByID(ctx context.Context, id int64) (*Department, error) {
	d, err := r.scanDepartment(r.pool.QueryRow(ctx,
		`SELECT `+departmentCols+` FROM department WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Entity: "department", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *departmentRepoPG) Update(ctx context.Context, d *Department) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE department SET name=$2, description=$3, icon=$4, head_doctor=$5
		WHERE id = $1`,
		d.ID, d.Name, d.Description, d.Icon, d.HeadDoctor)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "department", ID: d.ID}
	}
	return nil
}

func (r *departmentRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM department WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "department", ID: id}
	}
	return nil
}

func (r *departmentRepoPG) List(ctx context.Context) ([]*Department, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+departmentCols+` FROM department ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Department
	for rows.Next() {
		d, err := r.scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// =========== Doctor Repository ===========

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository { return &doctorRepoPG{pool: pool} }

const doctorCols = `id, name, email, phone, qualification, department_id,
	experience_years, consultation_fee, gender, availability, bio, is_available, created_at`

func (r *doctorRepoPG) scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.Qualification, &d.DepartmentID,
		&d.ExperienceYears, &d.ConsultationFee, &d.Gender, &d.Availability, &d.Bio,
		&d.IsAvailable, &d.CreatedAt)
	return &d, err
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO doctor (name, email, phone, qualification, department_id,
			experience_years, consultation_fee, gender, availability, bio, is_available)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, created_at`,
		d.Name, d.Email, d.Phone, d.Qualification, d.DepartmentID,
		d.ExperienceYears, d.ConsultationFee, d.Gender, d.Availability, d.Bio,
		d.IsAvailable).Scan(&d.ID, &d.CreatedAt)
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	d, err := r.scanDoctor(r.pool.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctor WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Entity: "doctor", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *doctorRepoPG) Update(ctx context.Context, d *Doctor) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE doctor SET name=$2, email=$3, phone=$4, qualification=$5, department_id=$6,
			experience_years=$7, consultation_fee=$8, gender=$9, availability=$10,
			bio=$11, is_available=$12
		WHERE id = $1`,
		d.ID, d.Name, d.Email, d.Phone, d.Qualification, d.DepartmentID,
		d.ExperienceYears, d.ConsultationFee, d.Gender, d.Availability, d.Bio, d.IsAvailable)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "doctor", ID: d.ID}
	}
	return nil
}

func (r *doctorRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM doctor WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "doctor", ID: id}
	}
	return nil
}

func (r *doctorRepoPG) List(ctx context.Context, filter DoctorFilter, limit, offset int) ([]*Doctor, int, error) {
	query := `SELECT ` + doctorCols + ` FROM doctor WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM doctor WHERE 1=1`
	var args []interface{}
	idx := 1

	if filter.DepartmentID != nil {
		cond := fmt.Sprintf(` AND department_id = $%d`, idx)
		query += cond
		countQuery += cond
		args = append(args, *filter.DepartmentID)
		idx++
	}
	if filter.Search != "" {
		cond := fmt.Sprintf(` AND (name ILIKE $%d OR qualification ILIKE $%d)`, idx, idx)
		query += cond
		countQuery += cond
		args = append(args, "%"+filter.Search+"%")
		idx++
	}
	if filter.AvailableOnly {
		query += ` AND is_available`
		countQuery += ` AND is_available`
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Doctor
	for rows.Next() {
		d, err := r.scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}

func (r *doctorRepoPG) ListByDepartment(ctx context.Context, departmentID int64) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+doctorCols+` FROM doctor WHERE department_id = $1 ORDER BY name`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Doctor
	for rows.Next() {
		d, err := r.scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// =========== Service Repository ===========

type serviceRepoPG struct{ pool *pgxpool.Pool }

func NewServiceRepoPG(pool *pgxpool.Pool) ServiceRepository { return &serviceRepoPG{pool: pool} }

const serviceCols = `id, name, description, department_id, cost_estimate`

func (r *serviceRepoPG) scanService(row pgx.Row) (*Service, error) {
	var s Service
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.DepartmentID, &s.CostEstimate)
	return &s, err
}

func (r *serviceRepoPG) Create(ctx context.Context, s *Service) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO service (name, description, department_id, cost_estimate)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		s.Name, s.Description, s.DepartmentID, s.CostEstimate).Scan(&s.ID)
}

func (r *serviceRepoPG) GetByID(ctx context.Context, id int64) (*Service, error) {
	s, err := r.scanService(r.pool.QueryRow(ctx,
		`SELECT `+serviceCols+` FROM service WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Entity: "service", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *serviceRepoPG) Update(ctx context.Context, s *Service) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE service SET name=$2, description=$3, department_id=$4, cost_estimate=$5
		WHERE id = $1`,
		s.ID, s.Name, s.Description, s.DepartmentID, s.CostEstimate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "service", ID: s.ID}
	}
	return nil
}

func (r *serviceRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM service WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "service", ID: id}
	}
	return nil
}

func (r *serviceRepoPG) List(ctx context.Context, departmentID *int64) ([]*Service, error) {
	query := `SELECT ` + serviceCols + ` FROM service`
	var args []interface{}
	if departmentID != nil {
		query += ` WHERE department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Service
	for rows.Next() {
		s, err := r.scanService(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// =========== Infrastructure Repository ===========

type infrastructureRepoPG struct{ pool *pgxpool.Pool }

func NewInfrastructureRepoPG(pool *pgxpool.Pool) InfrastructureRepository {
	return &infrastructureRepoPG{pool: pool}
}

const infraCols = `id, name, description, icon, hospital_id`

func (r *infrastructureRepoPG) scanInfrastructure(row pgx.Row) (*Infrastructure, error) {
	var i Infrastructure
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Icon, &i.HospitalID)
	return &i, err
}

func (r *infrastructureRepoPG) Create(ctx context.Context, i *Infrastructure) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO infrastructure (name, description, icon, hospital_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		i.Name, i.Description, i.Icon, i.HospitalID).Scan(&i.ID)
}

func (r *infrastructureRepoPG) GetByID(ctx context.Context, id int64) (*Infrastructure, error) {
	i, err := r.scanInfrastructure(r.pool.QueryRow(ctx,
		`SELECT `+infraCols+` FROM infrastructure WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Entity: "infrastructure", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (r *infrastructureRepoPG) Update(ctx context.Context, i *Infrastructure) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE infrastructure SET name=$2, description=$3, icon=$4
		WHERE id = $1`,
		i.ID, i.Name, i.Description, i.Icon)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "infrastructure", ID: i.ID}
	}
	return nil
}

func (r *infrastructureRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM infrastructure WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "infrastructure", ID: id}
	}
	return nil
}

func (r *infrastructureRepoPG) List(ctx context.Context) ([]*Infrastructure, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+infraCols+` FROM infrastructure ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Infrastructure
	for rows.Next() {
		i, err := r.scanInfrastructure(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// =========== Testimonial Repository ===========

type testimonialRepoPG struct{ pool *pgxpool.Pool }

func NewTestimonialRepoPG(pool *pgxpool.Pool) TestimonialRepository {
	return &testimonialRepoPG{pool: pool}
}

const testimonialCols = `id, patient_name, message, rating, doctor_id, is_published, created_at`

func (r *testimonialRepoPG) scanTestimonial(row pgx.Row) (*Testimonial, error) {
	var t Testimonial
	err := row.Scan(&t.ID, &t.PatientName, &t.Message, &t.Rating, &t.DoctorID,
		&t.IsPublished, &t.CreatedAt)
	return &t, err
}

func (r *testimonialRepoPG) Create(ctx context.Context, t *Testimonial) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO testimonial (patient_name, message, rating, doctor_id, is_published)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at`,
		t.PatientName, t.Message, t.Rating, t.DoctorID, t.IsPublished).Scan(&t.ID, &t.CreatedAt)
}

func (r *testimonialRepoPG) GetByID(ctx context.Context, id int64) (*Testimonial, error) {
	t, err := r.scanTestimonial(r.pool.QueryRow(ctx,
		`SELECT `+testimonialCols+` FROM testimonial WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Entity: "testimonial", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *testimonialRepoPG) Update(ctx context.Context, t *Testimonial) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE testimonial SET patient_name=$2, message=$3, rating=$4, doctor_id=$5, is_published=$6
		WHERE id = $1`,
		t.ID, t.PatientName, t.Message, t.Rating, t.DoctorID, t.IsPublished)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "testimonial", ID: t.ID}
	}
	return nil
}

func (r *testimonialRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM testimonial WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "testimonial", ID: id}
	}
	return nil
}

func (r *testimonialRepoPG) ListPublished(ctx context.Context, limit int) ([]*Testimonial, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+testimonialCols+` FROM testimonial WHERE is_published ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Testimonial
	for rows.Next() {
		t, err := r.scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
