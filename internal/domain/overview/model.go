package overview

import (
	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/oversight"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/domain/prescription"
)

// Stats are the dashboard counters, computed from one jointly-refreshed
// set of collections so the numbers are never a mixture of fetch rounds.
type Stats struct {
	TotalDoctors       int `json:"total_doctors"`
	TotalClinics       int `json:"total_clinics"`
	TotalPatients      int `json:"total_patients"`
	RecentPatients     int `json:"recent_patients"`
	TodayAppointments  int `json:"today_appointments"`
	TotalPrescriptions int `json:"total_prescriptions"`
}

// AppointmentView is an appointment joined with the display names of its
// references. Join fields are computed at read time, never stored.
type AppointmentView struct {
	*appointment.Appointment
	DoctorName  string `json:"doctor_name,omitempty"`
	ClinicName  string `json:"clinic_name,omitempty"`
	PatientName string `json:"patient_name,omitempty"`
}

// SearchFields adds the joined display names to the appointment's own
// searchable values.
func (v *AppointmentView) SearchFields() []string {
	fields := v.Appointment.SearchFields()
	return append(fields, v.DoctorName, v.ClinicName, v.PatientName)
}

// Snapshot is the full dashboard payload. A collection whose fetch failed
// is present but empty, with the failure noted in Warnings.
type Snapshot struct {
	Doctors       []*doctor.Doctor             `json:"doctors"`
	Clinics       []*clinic.WithCount          `json:"clinics"`
	Patients      []*patient.Patient           `json:"patients"`
	Appointments  []*AppointmentView           `json:"appointments"`
	Prescriptions []*prescription.Prescription `json:"prescriptions"`
	Stats         Stats                        `json:"stats"`
	Warnings      []string                     `json:"warnings,omitempty"`
}

// DoctorDetail is the drill-down payload: every collection scoped to one
// doctor, fetched jointly.
type DoctorDetail struct {
	Doctor        *doctor.Doctor                `json:"doctor"`
	Clinics       []*clinic.WithCount           `json:"clinics"`
	Patients      []*patient.Patient            `json:"patients"`
	Appointments  []*AppointmentView            `json:"appointments"`
	Prescriptions []*prescription.Prescription  `json:"prescriptions"`
	VoiceLogs     []*oversight.VoiceAgentLog    `json:"voice_logs"`
	Compliance    []*oversight.ComplianceReport `json:"compliance_reports"`
	Warnings      []string                      `json:"warnings,omitempty"`
}
