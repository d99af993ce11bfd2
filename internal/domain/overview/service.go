package overview

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/oversight"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/domain/prescription"
)

// recentWindow is how far back a patient registration still counts as
// recent on the dashboard.
const recentWindow = 30 * 24 * time.Hour

// Service aggregates every collection into the dashboard snapshot and the
// per-doctor drill-down. All fetches in one call run jointly; a failed
// fetch degrades to an empty collection and a warning instead of failing
// the whole payload.
type Service struct {
	doctors       doctor.Repository
	clinics       clinic.Repository
	patients      patient.Repository
	appointments  appointment.Repository
	prescriptions prescription.Repository
	voiceLogs     oversight.VoiceLogRepository
	compliance    oversight.ComplianceRepository
	log           zerolog.Logger

	now func() time.Time
}

func NewService(
	doctors doctor.Repository,
	clinics clinic.Repository,
	patients patient.Repository,
	appointments appointment.Repository,
	prescriptions prescription.Repository,
	voiceLogs oversight.VoiceLogRepository,
	compliance oversight.ComplianceRepository,
	log zerolog.Logger,
) *Service {
	return &Service{
		doctors:       doctors,
		clinics:       clinics,
		patients:      patients,
		appointments:  appointments,
		prescriptions: prescriptions,
		voiceLogs:     voiceLogs,
		compliance:    compliance,
		log:           log,
		now:           time.Now,
	}
}

// warnings collects degraded-fetch messages from concurrent fetches.
type warnings struct {
	mu   sync.Mutex
	msgs []string
}

func (w *warnings) add(s *Service, collection string, err error) {
	s.log.Warn().Err(err).Str("collection", collection).Msg("fetch degraded to empty collection")
	w.mu.Lock()
	w.msgs = append(w.msgs, fmt.Sprintf("%s: %s", collection, err))
	w.mu.Unlock()
}

// Snapshot fetches every collection concurrently, waits for all of them to
// settle, then computes the stats from exactly that set.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	var (
		snap Snapshot
		w    warnings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, _, err := s.doctors.List(gctx, 0, 0)
		if err != nil {
			w.add(s, "doctors", err)
			return nil
		}
		snap.Doctors = items
		return nil
	})
	g.Go(func() error {
		items, _, err := s.clinics.List(gctx, 0, 0)
		if err != nil {
			w.add(s, "clinics", err)
			return nil
		}
		for _, c := range items {
			snap.Clinics = append(snap.Clinics, &clinic.WithCount{Clinic: c})
		}
		return nil
	})
	g.Go(func() error {
		items, _, err := s.patients.List(gctx, 0, 0)
		if err != nil {
			w.add(s, "patients", err)
			return nil
		}
		snap.Patients = items
		return nil
	})
	g.Go(func() error {
		items, _, err := s.appointments.List(gctx, 0, 0)
		if err != nil {
			w.add(s, "appointments", err)
			return nil
		}
		for _, a := range items {
			snap.Appointments = append(snap.Appointments, &AppointmentView{Appointment: a})
		}
		return nil
	})
	g.Go(func() error {
		items, _, err := s.prescriptions.List(gctx, 0, 0)
		if err != nil {
			w.add(s, "prescriptions", err)
			return nil
		}
		snap.Prescriptions = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.joinNames(snap.Doctors, snap.Clinics, snap.Patients, snap.Appointments)
	snap.Clinics = countPatients(snap.Clinics, snap.Patients)
	snap.Stats = s.computeStats(&snap)
	snap.Warnings = w.msgs
	return &snap, nil
}

// computeStats derives the counters from the snapshot's own collections.
func (s *Service) computeStats(snap *Snapshot) Stats {
	now := s.now()
	st := Stats{
		TotalDoctors:       len(snap.Doctors),
		TotalClinics:       len(snap.Clinics),
		TotalPatients:      len(snap.Patients),
		TotalPrescriptions: len(snap.Prescriptions),
	}
	cutoff := now.Add(-recentWindow)
	for _, p := range snap.Patients {
		if p.CreatedAt.After(cutoff) {
			st.RecentPatients++
		}
	}
	for _, a := range snap.Appointments {
		if a.IsToday(now) {
			st.TodayAppointments++
		}
	}
	return st
}

// joinNames fills the derived display-name fields on appointment views by
// matching foreign references against the fetched collections.
func (s *Service) joinNames(doctors []*doctor.Doctor, clinics []*clinic.WithCount, patients []*patient.Patient, appts []*AppointmentView) {
	doctorNames := make(map[uuid.UUID]string, len(doctors))
	for _, d := range doctors {
		doctorNames[d.ID] = d.Name
	}
	clinicNames := make(map[uuid.UUID]string, len(clinics))
	for _, c := range clinics {
		clinicNames[c.ID] = c.Name
	}
	patientNames := make(map[uuid.UUID]string, len(patients))
	for _, p := range patients {
		patientNames[p.ID] = p.Name
	}
	for _, v := range appts {
		v.DoctorName = doctorNames[v.DoctorID]
		v.PatientName = patientNames[v.PatientID]
		if v.ClinicID != nil {
			v.ClinicName = clinicNames[*v.ClinicID]
		}
	}
}

// countPatients derives each clinic's patient count from the fetched
// patient collection.
func countPatients(clinics []*clinic.WithCount, patients []*patient.Patient) []*clinic.WithCount {
	counts := make(map[uuid.UUID]int)
	for _, p := range patients {
		if p.ClinicID != nil {
			counts[*p.ClinicID]++
		}
	}
	for _, c := range clinics {
		c.PatientCount = counts[c.ID]
	}
	return clinics
}

// DoctorDetail fetches every child collection scoped to one doctor in a
// single joint fetch. The doctor row itself is the only fetch that can
// fail the call.
func (s *Service) DoctorDetail(ctx context.Context, id uuid.UUID) (*DoctorDetail, error) {
	d, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("doctor %s: %w", id, err)
	}

	var (
		detail = DoctorDetail{Doctor: d}
		w      warnings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.clinics.ListByDoctor(gctx, id)
		if err != nil {
			w.add(s, "clinics", err)
			return nil
		}
		for _, c := range items {
			detail.Clinics = append(detail.Clinics, &clinic.WithCount{Clinic: c})
		}
		return nil
	})
	g.Go(func() error {
		items, err := s.patients.ListByDoctor(gctx, id)
		if err != nil {
			w.add(s, "patients", err)
			return nil
		}
		detail.Patients = items
		return nil
	})
	g.Go(func() error {
		items, err := s.appointments.ListByDoctor(gctx, id)
		if err != nil {
			w.add(s, "appointments", err)
			return nil
		}
		for _, a := range items {
			detail.Appointments = append(detail.Appointments, &AppointmentView{Appointment: a})
		}
		return nil
	})
	g.Go(func() error {
		items, err := s.prescriptions.ListByDoctor(gctx, id)
		if err != nil {
			w.add(s, "prescriptions", err)
			return nil
		}
		detail.Prescriptions = items
		return nil
	})
	g.Go(func() error {
		items, err := s.voiceLogs.ListByDoctor(gctx, id)
		if err != nil {
			w.add(s, "voice_logs", err)
			return nil
		}
		detail.VoiceLogs = items
		return nil
	})
	g.Go(func() error {
		items, err := s.compliance.ListByDoctor(gctx, id)
		if err != nil {
			w.add(s, "compliance_reports", err)
			return nil
		}
		detail.Compliance = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.joinNames([]*doctor.Doctor{d}, detail.Clinics, detail.Patients, detail.Appointments)
	detail.Clinics = countPatients(detail.Clinics, detail.Patients)
	detail.Warnings = w.msgs
	return &detail, nil
}
