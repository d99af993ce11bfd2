package overview

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/oversight"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/domain/prescription"
)

func newTestService(
	doctors doctor.Repository,
	clinics clinic.Repository,
	patients patient.Repository,
	appts appointment.Repository,
	rxs prescription.Repository,
) *Service {
	return NewService(doctors, clinics, patients, appts, rxs,
		oversight.NewVoiceRepoMem(nil), oversight.NewComplianceRepoMem(nil), zerolog.Nop())
}

// TestSnapshot_Stats checks the dashboard counters against a known
// dataset: five doctors, six patients of which two registered within the
// last thirty days, four appointments of which one starts today.
func TestSnapshot_Stats(t *testing.T) {
	now := time.Now()
	doctorID := uuid.New()

	var doctors []*doctor.Doctor
	for i := 0; i < 5; i++ {
		doctors = append(doctors, &doctor.Doctor{
			ID:    uuid.New(),
			Name:  fmt.Sprintf("Doctor %d", i+1),
			Email: fmt.Sprintf("d%d@example.com", i+1),
		})
	}
	doctors[0].ID = doctorID

	var patients []*patient.Patient
	for i := 0; i < 6; i++ {
		created := now.Add(-90 * 24 * time.Hour)
		if i < 2 {
			created = now.Add(-5 * 24 * time.Hour)
		}
		patients = append(patients, &patient.Patient{
			ID: uuid.New(), DoctorID: doctorID,
			Name:      fmt.Sprintf("Patient %d", i+1),
			CreatedAt: created,
		})
	}

	var appts []*appointment.Appointment
	for i := 0; i < 4; i++ {
		start := now.Add(-time.Duration(i+2) * 48 * time.Hour)
		if i == 0 {
			start = now
		}
		appts = append(appts, &appointment.Appointment{
			ID: uuid.New(), DoctorID: doctorID, PatientID: patients[i].ID,
			StartTime: start, Status: appointment.StatusBooked, Channel: appointment.ChannelWeb,
		})
	}

	svc := newTestService(
		doctor.NewRepoMem(doctors),
		clinic.NewRepoMem(nil),
		patient.NewRepoMem(patients),
		appointment.NewRepoMem(appts),
		prescription.NewRepoMem(nil),
	)

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Stats.TotalDoctors != 5 {
		t.Errorf("total_doctors = %d, want 5", snap.Stats.TotalDoctors)
	}
	if snap.Stats.RecentPatients != 2 {
		t.Errorf("recent_patients = %d, want 2", snap.Stats.RecentPatients)
	}
	if snap.Stats.TodayAppointments != 1 {
		t.Errorf("today_appointments = %d, want 1", snap.Stats.TodayAppointments)
	}
	if len(snap.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", snap.Warnings)
	}
}

// failingDoctorRepo simulates an unreachable backend for one collection.
type failingDoctorRepo struct{}

func (failingDoctorRepo) Create(context.Context, *doctor.Doctor) error { return fmt.Errorf("down") }
func (failingDoctorRepo) GetByID(context.Context, uuid.UUID) (*doctor.Doctor, error) {
	return nil, fmt.Errorf("down")
}
func (failingDoctorRepo) GetByEmail(context.Context, string) (*doctor.Doctor, error) {
	return nil, fmt.Errorf("down")
}
func (failingDoctorRepo) List(context.Context, int, int) ([]*doctor.Doctor, int, error) {
	return nil, 0, fmt.Errorf("doctor backend down")
}

func TestSnapshot_DegradesFailedFetch(t *testing.T) {
	doctorID := uuid.New()
	patients := []*patient.Patient{
		{ID: uuid.New(), DoctorID: doctorID, Name: "Jane Roe", CreatedAt: time.Now()},
	}

	svc := newTestService(
		failingDoctorRepo{},
		clinic.NewRepoMem(nil),
		patient.NewRepoMem(patients),
		appointment.NewRepoMem(nil),
		prescription.NewRepoMem(nil),
	)

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot errored instead of degrading: %v", err)
	}
	if len(snap.Doctors) != 0 {
		t.Errorf("doctors = %d, want empty on failed fetch", len(snap.Doctors))
	}
	if snap.Stats.TotalDoctors != 0 {
		t.Errorf("total_doctors = %d, want 0", snap.Stats.TotalDoctors)
	}
	if snap.Stats.TotalPatients != 1 {
		t.Errorf("total_patients = %d, want 1 from the healthy fetch", snap.Stats.TotalPatients)
	}
	if len(snap.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", snap.Warnings)
	}
}

func TestSnapshot_JoinsDisplayNames(t *testing.T) {
	d := &doctor.Doctor{ID: uuid.New(), Name: "Dr. Reyes", Email: "reyes@example.com"}
	cl := &clinic.Clinic{ID: uuid.New(), DoctorID: d.ID, Name: "Northside"}
	p := &patient.Patient{ID: uuid.New(), DoctorID: d.ID, ClinicID: &cl.ID, Name: "Jane Roe"}
	a := &appointment.Appointment{
		ID: uuid.New(), DoctorID: d.ID, ClinicID: &cl.ID, PatientID: p.ID,
		StartTime: time.Now(), Status: appointment.StatusBooked, Channel: appointment.ChannelVoice,
	}

	svc := newTestService(
		doctor.NewRepoMem([]*doctor.Doctor{d}),
		clinic.NewRepoMem([]*clinic.Clinic{cl}),
		patient.NewRepoMem([]*patient.Patient{p}),
		appointment.NewRepoMem([]*appointment.Appointment{a}),
		prescription.NewRepoMem(nil),
	)

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Appointments) != 1 {
		t.Fatalf("appointments = %d, want 1", len(snap.Appointments))
	}
	view := snap.Appointments[0]
	if view.DoctorName != "Dr. Reyes" || view.ClinicName != "Northside" || view.PatientName != "Jane Roe" {
		t.Errorf("joined names = %q/%q/%q", view.DoctorName, view.ClinicName, view.PatientName)
	}
	if len(snap.Clinics) != 1 || snap.Clinics[0].PatientCount != 1 {
		t.Errorf("clinic patient_count not derived from fetched patients")
	}
}

func TestDoctorDetail_ScopedToDoctor(t *testing.T) {
	mine := &doctor.Doctor{ID: uuid.New(), Name: "Dr. Mine", Email: "mine@example.com"}
	other := &doctor.Doctor{ID: uuid.New(), Name: "Dr. Other", Email: "other@example.com"}
	patients := []*patient.Patient{
		{ID: uuid.New(), DoctorID: mine.ID, Name: "P1"},
		{ID: uuid.New(), DoctorID: other.ID, Name: "P2"},
	}

	svc := NewService(
		doctor.NewRepoMem([]*doctor.Doctor{mine, other}),
		clinic.NewRepoMem(nil),
		patient.NewRepoMem(patients),
		appointment.NewRepoMem(nil),
		prescription.NewRepoMem(nil),
		oversight.NewVoiceRepoMem([]*oversight.VoiceAgentLog{
			{ID: uuid.New(), DoctorID: mine.ID, Outcome: oversight.OutcomeBooked},
			{ID: uuid.New(), DoctorID: other.ID, Outcome: oversight.OutcomeNoAction},
		}),
		oversight.NewComplianceRepoMem([]*oversight.ComplianceReport{
			{ID: uuid.New(), DoctorID: other.ID, RiskLevel: oversight.RiskHigh},
		}),
		zerolog.Nop(),
	)

	detail, err := svc.DoctorDetail(context.Background(), mine.ID)
	if err != nil {
		t.Fatalf("DoctorDetail: %v", err)
	}
	if detail.Doctor.Name != "Dr. Mine" {
		t.Errorf("doctor = %q", detail.Doctor.Name)
	}
	if len(detail.Patients) != 1 || detail.Patients[0].Name != "P1" {
		t.Errorf("patients not scoped: %v", detail.Patients)
	}
	if len(detail.VoiceLogs) != 1 {
		t.Errorf("voice logs = %d, want 1", len(detail.VoiceLogs))
	}
	if len(detail.Compliance) != 0 {
		t.Errorf("compliance = %d, want 0", len(detail.Compliance))
	}

	if _, err := svc.DoctorDetail(context.Background(), uuid.New()); err == nil {
		t.Error("unknown doctor id accepted")
	}
}
