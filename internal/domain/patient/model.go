package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. AccountID links the profile to a login;
// at most one profile per account.
type Patient struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	AccountID        *uuid.UUID `db:"account_id" json:"account_id,omitempty"`
	Name             string     `db:"name" json:"name"`
	Email            string     `db:"email" json:"email"`
	Phone            string     `db:"phone" json:"phone"`
	DateOfBirth      *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender           *string    `db:"gender" json:"gender,omitempty"`
	BloodGroup       *string    `db:"blood_group" json:"blood_group,omitempty"`
	Address          string     `db:"address" json:"address"`
	MedicalHistory   string     `db:"medical_history" json:"medical_history"`
	EmergencyContact string     `db:"emergency_contact" json:"emergency_contact"`
	EmergencyPhone   string     `db:"emergency_phone" json:"emergency_phone"`
	RegisteredAt     time.Time  `db:"registered_at" json:"registered_at"`
}
