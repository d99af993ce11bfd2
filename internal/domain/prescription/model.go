package prescription

import (
	"time"

	"github.com/google/uuid"
)

// Medication is one line item on a prescription. The list is stored as a
// JSONB column.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
	Notes     string `json:"notes,omitempty"`
}

// Prescription maps to the prescription table.
type Prescription struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	DoctorID     uuid.UUID    `db:"doctor_id" json:"doctor_id"`
	ClinicID     *uuid.UUID   `db:"clinic_id" json:"clinic_id,omitempty"`
	PatientID    uuid.UUID    `db:"patient_id" json:"patient_id"`
	Medications  []Medication `db:"medications" json:"medications"`
	Instructions string       `db:"instructions" json:"instructions"`
	FollowUp     string       `db:"follow_up" json:"follow_up,omitempty"`
	SignedBy     string       `db:"signed_by" json:"signed_by,omitempty"`
	SignedAt     *time.Time   `db:"signed_at" json:"signed_at,omitempty"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// Signed reports whether the prescription has been signed off.
func (p *Prescription) Signed() bool {
	return p.SignedAt != nil
}

// SearchFields lists the values free-text filters match against,
// including each medication name.
func (p *Prescription) SearchFields() []string {
	fields := []string{p.Instructions, p.SignedBy}
	for _, m := range p.Medications {
		fields = append(fields, m.Name)
	}
	return fields
}
