package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses.
const (
	StatusBooked    = "booked"
	StatusComplete  = "complete"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

var ValidStatuses = map[string]bool{
	StatusBooked:    true,
	StatusComplete:  true,
	StatusCancelled: true,
	StatusNoShow:    true,
}

// Booking channels: the voice agent, the patient web widget, or manual
// entry by clinic staff.
const (
	ChannelVoice  = "voice"
	ChannelWeb    = "web"
	ChannelManual = "manual"
)

var ValidChannels = map[string]bool{
	ChannelVoice:  true,
	ChannelWeb:    true,
	ChannelManual: true,
}

// Appointment maps to the appointment table.
type Appointment struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	DoctorID  uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	ClinicID  *uuid.UUID `db:"clinic_id" json:"clinic_id,omitempty"`
	PatientID uuid.UUID  `db:"patient_id" json:"patient_id"`
	StartTime time.Time  `db:"start_time" json:"start_time"`
	EndTime   time.Time  `db:"end_time" json:"end_time"`
	Status    string     `db:"status" json:"status"`
	Channel   string     `db:"channel" json:"channel"`
	Notes     string     `db:"notes" json:"notes"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// SearchFields lists the values free-text filters match against.
func (a *Appointment) SearchFields() []string {
	return []string{a.Status, a.Channel, a.Notes}
}

// IsToday reports whether the appointment starts on the given day (in that
// day's location).
func (a *Appointment) IsToday(now time.Time) bool {
	y1, m1, d1 := a.StartTime.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
