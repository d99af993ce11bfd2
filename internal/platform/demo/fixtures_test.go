package demo

import (
	"testing"
	"time"
)

func TestLoad_DatasetShape(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	ds := Load(now)

	if len(ds.Doctors) != 5 {
		t.Errorf("doctors = %d, want 5", len(ds.Doctors))
	}
	if len(ds.Patients) != 6 {
		t.Errorf("patients = %d, want 6", len(ds.Patients))
	}
	if len(ds.Appointments) != 4 {
		t.Errorf("appointments = %d, want 4", len(ds.Appointments))
	}

	recent := 0
	cutoff := now.Add(-30 * 24 * time.Hour)
	for _, p := range ds.Patients {
		if p.CreatedAt.After(cutoff) {
			recent++
		}
	}
	if recent != 2 {
		t.Errorf("recent patients = %d, want 2", recent)
	}

	today := 0
	for _, a := range ds.Appointments {
		if a.IsToday(now) {
			today++
		}
	}
	if today != 1 {
		t.Errorf("today appointments = %d, want 1", today)
	}
}

func TestLoad_ReferentialIntegrity(t *testing.T) {
	ds := Load(time.Now())

	doctors := make(map[string]bool)
	for _, d := range ds.Doctors {
		doctors[d.ID.String()] = true
	}
	clinics := make(map[string]bool)
	for _, c := range ds.Clinics {
		if !doctors[c.DoctorID.String()] {
			t.Errorf("clinic %s references unknown doctor %s", c.Name, c.DoctorID)
		}
		clinics[c.ID.String()] = true
	}
	for _, p := range ds.Patients {
		if !doctors[p.DoctorID.String()] {
			t.Errorf("patient %s references unknown doctor %s", p.Name, p.DoctorID)
		}
		if p.ClinicID != nil && !clinics[p.ClinicID.String()] {
			t.Errorf("patient %s references unknown clinic %s", p.Name, p.ClinicID)
		}
	}
	for _, a := range ds.Appointments {
		if !doctors[a.DoctorID.String()] {
			t.Errorf("appointment %s references unknown doctor", a.ID)
		}
	}
	for _, rx := range ds.Prescriptions {
		if !doctors[rx.DoctorID.String()] {
			t.Errorf("prescription %s references unknown doctor", rx.ID)
		}
	}
}

func TestLoad_StableIdentifiers(t *testing.T) {
	a := Load(time.Now())
	b := Load(time.Now())
	if a.Doctors[0].ID != b.Doctors[0].ID {
		t.Error("doctor identifiers change between loads")
	}
	if a.Patients[0].ID != b.Patients[0].ID {
		t.Error("patient identifiers change between loads")
	}
}
