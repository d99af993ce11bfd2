package demo

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/oversight"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/domain/prescription"
)

// Fixed identifiers so demo-mode links stay stable across restarts.
var (
	DoctorReyes     = uuid.MustParse("11111111-0000-0000-0000-000000000001")
	DoctorOkafor    = uuid.MustParse("11111111-0000-0000-0000-000000000002")
	DoctorLindqvist = uuid.MustParse("11111111-0000-0000-0000-000000000003")
	DoctorTanaka    = uuid.MustParse("11111111-0000-0000-0000-000000000004")
	DoctorCosta     = uuid.MustParse("11111111-0000-0000-0000-000000000005")

	ClinicNorthside = uuid.MustParse("22222222-0000-0000-0000-000000000001")
	ClinicRiverside = uuid.MustParse("22222222-0000-0000-0000-000000000002")
)

// Dataset is the fixed demo-mode seed. Counts are deliberate: five
// doctors, six patients of which two registered in the last thirty days,
// four appointments of which one starts today.
type Dataset struct {
	Doctors       []*doctor.Doctor
	Clinics       []*clinic.Clinic
	Patients      []*patient.Patient
	Appointments  []*appointment.Appointment
	Prescriptions []*prescription.Prescription
	VoiceLogs     []*oversight.VoiceAgentLog
	Compliance    []*oversight.ComplianceReport
}

// Load builds the demo dataset with timestamps anchored to now, so
// "recent" and "today" views always have something to show.
func Load(now time.Time) *Dataset {
	weekdayHours := clinic.WeeklyHours{
		"monday":    {Open: "09:00", Close: "17:00"},
		"tuesday":   {Open: "09:00", Close: "17:00"},
		"wednesday": {Open: "09:00", Close: "17:00"},
		"thursday":  {Open: "09:00", Close: "17:00"},
		"friday":    {Open: "09:00", Close: "15:00"},
		"saturday":  {Open: clinic.ClosedSentinel, Close: clinic.ClosedSentinel},
		"sunday":    {Open: clinic.ClosedSentinel, Close: clinic.ClosedSentinel},
	}

	ds := &Dataset{
		Doctors: []*doctor.Doctor{
			{ID: DoctorReyes, Email: "m.reyes@demo.clinicdesk.io", Name: "Dr. Marta Reyes", Phone: "+1 415 555 0101", Country: "US", Timezone: "America/Los_Angeles", Plan: doctor.PlanPro, AIMinutesUsed: 412, MessagesUsed: 1380, CreatedAt: now.Add(-200 * 24 * time.Hour)},
			{ID: DoctorOkafor, Email: "c.okafor@demo.clinicdesk.io", Name: "Dr. Chidi Okafor", Phone: "+44 20 7946 0102", Country: "GB", Timezone: "Europe/London", Plan: doctor.PlanEnterprise, AIMinutesUsed: 918, MessagesUsed: 4102, CreatedAt: now.Add(-160 * 24 * time.Hour)},
			{ID: DoctorLindqvist, Email: "a.lindqvist@demo.clinicdesk.io", Name: "Dr. Astrid Lindqvist", Phone: "+46 8 5550 0103", Country: "SE", Timezone: "Europe/Stockholm", Plan: doctor.PlanBasic, AIMinutesUsed: 37, MessagesUsed: 205, CreatedAt: now.Add(-120 * 24 * time.Hour)},
			{ID: DoctorTanaka, Email: "k.tanaka@demo.clinicdesk.io", Name: "Dr. Kenji Tanaka", Phone: "+81 3 5550 0104", Country: "JP", Timezone: "Asia/Tokyo", Plan: doctor.PlanPro, AIMinutesUsed: 260, MessagesUsed: 990, CreatedAt: now.Add(-80 * 24 * time.Hour)},
			{ID: DoctorCosta, Email: "l.costa@demo.clinicdesk.io", Name: "Dr. Luana Costa", Phone: "+55 11 5550 0105", Country: "BR", Timezone: "America/Sao_Paulo", Plan: doctor.PlanBasic, AIMinutesUsed: 12, MessagesUsed: 88, CreatedAt: now.Add(-40 * 24 * time.Hour)},
		},
		Clinics: []*clinic.Clinic{
			{ID: ClinicNorthside, DoctorID: DoctorReyes, Name: "Northside Family Practice", Address: "120 Pine St", City: "San Francisco", Phone: "+1 415 555 0110", Hours: weekdayHours, CreatedAt: now.Add(-190 * 24 * time.Hour)},
			{ID: ClinicRiverside, DoctorID: DoctorOkafor, Name: "Riverside Health Centre", Address: "4 Embankment Rd", City: "London", Phone: "+44 20 7946 0111", Hours: weekdayHours, CreatedAt: now.Add(-150 * 24 * time.Hour)},
		},
	}

	dob := func(y, m, d int) *time.Time {
		t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	ds.Patients = []*patient.Patient{
		{ID: uuid.MustParse("33333333-0000-0000-0000-000000000001"), DoctorID: DoctorReyes, ClinicID: &ClinicNorthside, Name: "Elena Vargas", DateOfBirth: dob(1978, 4, 12), Sex: "female", Phone: "+1 415 555 0201", Email: "elena.v@example.com", ConsentMessaging: true, ConsentVoiceCalls: true, Tags: []string{"hypertension", "follow-up"}, CreatedAt: now.Add(-120 * 24 * time.Hour)},
		{ID: uuid.MustParse("33333333-0000-0000-0000-000000000002"), DoctorID: DoctorReyes, ClinicID: &ClinicNorthside, Name: "Samuel Burke", DateOfBirth: dob(1965, 11, 3), Sex: "male", Phone: "+1 415 555 0202", Email: "s.burke@example.com", ConsentMessaging: true, ConsentMarketing: true, Tags: []string{"diabetes"}, CreatedAt: now.Add(-90 * 24 * time.Hour)},
		{ID: uuid.MustParse("33333333-0000-0000-0000-000000000003"), DoctorID: DoctorOkafor, ClinicID: &ClinicRiverside, Name: "Priya Nair", DateOfBirth: dob(1990, 7, 21), Sex: "female", Phone: "+44 20 7946 0203", Email: "priya.n@example.com", ConsentMessaging: true, ConsentVoiceCalls: true, Tags: []string{"asthma", "chief-complaint:wheezing"}, CreatedAt: now.Add(-60 * 24 * time.Hour)},
		{ID: uuid.MustParse("33333333-0000-0000-0000-000000000004"), DoctorID: DoctorOkafor, ClinicID: &ClinicRiverside, Name: "Tomas Novak", DateOfBirth: dob(1983, 1, 30), Sex: "male", Phone: "+44 20 7946 0204", Email: "t.novak@example.com", Tags: []string{"annual-checkup"}, CreatedAt: now.Add(-45 * 24 * time.Hour)},
		{ID: uuid.MustParse("33333333-0000-0000-0000-000000000005"), DoctorID: DoctorTanaka, Name: "Aiko Mori", DateOfBirth: dob(1996, 9, 8), Sex: "female", Phone: "+81 3 5550 0205", Email: "aiko.m@example.com", ConsentMessaging: true, Tags: []string{"migraine", "chief-complaint:headache"}, CreatedAt: now.Add(-12 * 24 * time.Hour)},
		{ID: uuid.MustParse("33333333-0000-0000-0000-000000000006"), DoctorID: DoctorCosta, Name: "Rafael Lima", DateOfBirth: dob(2001, 3, 17), Sex: "male", Phone: "+55 11 5550 0206", Email: "r.lima@example.com", ConsentVoiceCalls: true, Tags: []string{"new-patient"}, CreatedAt: now.Add(-3 * 24 * time.Hour)},
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location())
	ds.Appointments = []*appointment.Appointment{
		{ID: uuid.MustParse("44444444-0000-0000-0000-000000000001"), DoctorID: DoctorReyes, ClinicID: &ClinicNorthside, PatientID: ds.Patients[0].ID, StartTime: today, EndTime: today.Add(30 * time.Minute), Status: appointment.StatusBooked, Channel: appointment.ChannelVoice, Notes: "BP follow-up", CreatedAt: now.Add(-2 * 24 * time.Hour)},
		{ID: uuid.MustParse("44444444-0000-0000-0000-000000000002"), DoctorID: DoctorReyes, ClinicID: &ClinicNorthside, PatientID: ds.Patients[1].ID, StartTime: now.Add(-7 * 24 * time.Hour), EndTime: now.Add(-7*24*time.Hour + 30*time.Minute), Status: appointment.StatusComplete, Channel: appointment.ChannelWeb, Notes: "HbA1c review", CreatedAt: now.Add(-10 * 24 * time.Hour)},
		{ID: uuid.MustParse("44444444-0000-0000-0000-000000000003"), DoctorID: DoctorOkafor, ClinicID: &ClinicRiverside, PatientID: ds.Patients[2].ID, StartTime: now.Add(-14 * 24 * time.Hour), EndTime: now.Add(-14*24*time.Hour + 20*time.Minute), Status: appointment.StatusNoShow, Channel: appointment.ChannelManual, CreatedAt: now.Add(-16 * 24 * time.Hour)},
		{ID: uuid.MustParse("44444444-0000-0000-0000-000000000004"), DoctorID: DoctorTanaka, PatientID: ds.Patients[4].ID, StartTime: now.Add(3 * 24 * time.Hour), EndTime: now.Add(3*24*time.Hour + 45*time.Minute), Status: appointment.StatusBooked, Channel: appointment.ChannelWeb, Notes: "initial consult", CreatedAt: now.Add(-1 * 24 * time.Hour)},
	}

	signedAt := now.Add(-7 * 24 * time.Hour)
	ds.Prescriptions = []*prescription.Prescription{
		{ID: uuid.MustParse("55555555-0000-0000-0000-000000000001"), DoctorID: DoctorReyes, ClinicID: &ClinicNorthside, PatientID: ds.Patients[1].ID, Medications: []prescription.Medication{{Name: "Metformin", Dosage: "500mg", Frequency: "2x daily", Duration: "90 days"}}, Instructions: "take with meals", FollowUp: "repeat HbA1c in 3 months", SignedBy: "Dr. Marta Reyes", SignedAt: &signedAt, CreatedAt: signedAt},
		{ID: uuid.MustParse("55555555-0000-0000-0000-000000000002"), DoctorID: DoctorOkafor, ClinicID: &ClinicRiverside, PatientID: ds.Patients[2].ID, Medications: []prescription.Medication{{Name: "Salbutamol", Dosage: "100mcg", Frequency: "as needed", Duration: "30 days", Notes: "inhaler"}, {Name: "Budesonide", Dosage: "200mcg", Frequency: "2x daily", Duration: "30 days"}}, Instructions: "rinse mouth after steroid inhaler", CreatedAt: now.Add(-20 * 24 * time.Hour)},
	}

	ds.VoiceLogs = []*oversight.VoiceAgentLog{
		{ID: uuid.MustParse("66666666-0000-0000-0000-000000000001"), DoctorID: DoctorReyes, PatientID: &ds.Patients[0].ID, DurationSeconds: 143, Direction: oversight.DirectionInbound, Outcome: oversight.OutcomeBooked, Transcript: "Caller asked to move the blood pressure check to this week; agent offered Tuesday 10:00 and confirmed.", Confidence: 0.94, CreatedAt: now.Add(-2 * 24 * time.Hour)},
		{ID: uuid.MustParse("66666666-0000-0000-0000-000000000002"), DoctorID: DoctorOkafor, DurationSeconds: 45, Direction: oversight.DirectionOutbound, Outcome: oversight.OutcomeVoicemail, Transcript: "Reminder left for tomorrow's appointment.", Confidence: 0.88, CreatedAt: now.Add(-5 * 24 * time.Hour)},
	}

	ds.Compliance = []*oversight.ComplianceReport{
		{ID: uuid.MustParse("77777777-0000-0000-0000-000000000001"), DoctorID: DoctorReyes, Status: "open", RiskLevel: oversight.RiskLow, Summary: "Two appointment notes unsigned for more than 72 hours.", CreatedAt: now.Add(-4 * 24 * time.Hour)},
		{ID: uuid.MustParse("77777777-0000-0000-0000-000000000002"), DoctorID: DoctorTanaka, Status: "closed", RiskLevel: oversight.RiskMedium, Resolved: true, Summary: "Outbound call placed to a patient without voice-call consent; consent since recorded.", CreatedAt: now.Add(-30 * 24 * time.Hour)},
	}

	return ds
}
