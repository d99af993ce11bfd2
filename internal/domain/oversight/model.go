package oversight

import (
	"time"

	"github.com/google/uuid"
)

// Call directions and outcomes recorded by the voice agent.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"

	OutcomeBooked     = "booked"
	OutcomeEscalated  = "escalated"
	OutcomeNoAction   = "no_action"
	OutcomeVoicemail  = "voicemail"
	OutcomeDisconnect = "disconnect"
)

// VoiceAgentLog is one recorded voice-agent call. Rows are written by the
// agent pipeline; this service only reads them.
type VoiceAgentLog struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	DoctorID        uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	PatientID       *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	DurationSeconds int        `db:"duration_seconds" json:"duration_seconds"`
	Direction       string     `db:"direction" json:"direction"`
	Outcome         string     `db:"outcome" json:"outcome"`
	Transcript      string     `db:"transcript" json:"transcript"`
	Confidence      float64    `db:"confidence" json:"confidence"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// SearchFields lists the values free-text filters match against.
func (v *VoiceAgentLog) SearchFields() []string {
	return []string{v.Direction, v.Outcome, v.Transcript}
}

// Compliance report risk levels.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// ComplianceReport is a generated audit finding for a doctor's account.
// Read-only here; resolution happens through the compliance pipeline.
type ComplianceReport struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Status    string    `db:"status" json:"status"`
	RiskLevel string    `db:"risk_level" json:"risk_level"`
	Resolved  bool      `db:"resolved" json:"resolved"`
	Summary   string    `db:"summary" json:"summary"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SearchFields lists the values free-text filters match against.
func (r *ComplianceReport) SearchFields() []string {
	return []string{r.Status, r.RiskLevel, r.Summary}
}
