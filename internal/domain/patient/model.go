package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. Consent flags mirror what the patient
// agreed to on intake; the voice agent refuses outbound calls without
// consent_voice_calls.
type Patient struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	DoctorID          uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	ClinicID          *uuid.UUID `db:"clinic_id" json:"clinic_id,omitempty"`
	Name              string     `db:"name" json:"name"`
	DateOfBirth       *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Sex               string     `db:"sex" json:"sex"`
	Phone             string     `db:"phone" json:"phone"`
	Email             string     `db:"email" json:"email"`
	ConsentMessaging  bool       `db:"consent_messaging" json:"consent_messaging"`
	ConsentMarketing  bool       `db:"consent_marketing" json:"consent_marketing"`
	ConsentVoiceCalls bool       `db:"consent_voice_calls" json:"consent_voice_calls"`
	Tags              []string   `db:"tags" json:"tags"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}

// SearchFields enumerates the fields the free-text filter matches against.
// Tags are searchable so "diabetes" finds tagged patients.
func (p *Patient) SearchFields() []string {
	fields := []string{p.Name, p.Phone, p.Email}
	return append(fields, p.Tags...)
}
