package clinic

import (
	"time"

	"github.com/google/uuid"
)

// Weekday keys used in WeeklyHours, in display order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ClosedSentinel marks a day the clinic does not open. A closed day carries
// it in both the open and close slots.
const ClosedSentinel = "closed"

// DayHours is one weekday's opening window, HH:MM strings or the closed
// sentinel in both fields.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Closed reports whether the day is a non-working day.
func (d DayHours) Closed() bool {
	return d.Open == ClosedSentinel && d.Close == ClosedSentinel
}

// WeeklyHours maps weekday name to opening window.
type WeeklyHours map[string]DayHours

// Clinic maps to the clinic table. The patient count shown on dashboards is
// derived at read time, never stored.
type Clinic struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	DoctorID  uuid.UUID   `db:"doctor_id" json:"doctor_id"`
	Name      string      `db:"name" json:"name"`
	Address   string      `db:"address" json:"address"`
	City      string      `db:"city" json:"city"`
	Phone     string      `db:"phone" json:"phone"`
	Hours     WeeklyHours `db:"hours" json:"hours"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// SearchFields enumerates the fields the free-text filter matches against.
func (c *Clinic) SearchFields() []string {
	return []string{c.Name, c.City, c.Address, c.Phone}
}

// WithCount is a clinic plus its derived patient count.
type WithCount struct {
	*Clinic
	PatientCount int `json:"patient_count"`
}
