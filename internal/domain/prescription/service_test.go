package prescription

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/pkg/search"
)

func TestCreate_Validation(t *testing.T) {
	svc := NewService(NewRepoMem(nil))
	ctx := context.Background()
	med := Medication{Name: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily", Duration: "7 days"}

	if err := svc.Create(ctx, &Prescription{PatientID: uuid.New(), Medications: []Medication{med}}); err == nil {
		t.Error("missing doctor_id accepted")
	}
	if err := svc.Create(ctx, &Prescription{DoctorID: uuid.New(), Medications: []Medication{med}}); err == nil {
		t.Error("missing patient_id accepted")
	}
	if err := svc.Create(ctx, &Prescription{DoctorID: uuid.New(), PatientID: uuid.New()}); err == nil {
		t.Error("empty medication list accepted")
	}
	if err := svc.Create(ctx, &Prescription{
		DoctorID: uuid.New(), PatientID: uuid.New(),
		Medications: []Medication{{Dosage: "500mg"}},
	}); err == nil {
		t.Error("medication without name accepted")
	}
	if err := svc.Create(ctx, &Prescription{
		DoctorID: uuid.New(), PatientID: uuid.New(),
		Medications: []Medication{{Name: "Amoxicillin"}},
	}); err == nil {
		t.Error("medication without dosage accepted")
	}
}

func TestCreate_SignatureTimestamp(t *testing.T) {
	svc := NewService(NewRepoMem(nil))
	ctx := context.Background()
	med := Medication{Name: "Lisinopril", Dosage: "10mg", Frequency: "daily", Duration: "30 days"}

	signed := &Prescription{
		DoctorID: uuid.New(), PatientID: uuid.New(),
		Medications: []Medication{med},
		SignedBy:    "Dr. Reyes",
	}
	if err := svc.Create(ctx, signed); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !signed.Signed() {
		t.Error("signed_by set but no signature timestamp assigned")
	}

	when := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	explicit := &Prescription{
		DoctorID: uuid.New(), PatientID: uuid.New(),
		Medications: []Medication{med},
		SignedBy:    "Dr. Reyes",
		SignedAt:    &when,
	}
	if err := svc.Create(ctx, explicit); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !explicit.SignedAt.Equal(when) {
		t.Errorf("explicit signature time overwritten: %v", explicit.SignedAt)
	}

	unsigned := &Prescription{
		DoctorID: uuid.New(), PatientID: uuid.New(),
		Medications: []Medication{med},
	}
	if err := svc.Create(ctx, unsigned); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if unsigned.Signed() {
		t.Error("unsigned prescription reports as signed")
	}
}

func TestSearchFields_IncludeMedicationNames(t *testing.T) {
	rxs := []*Prescription{
		{Instructions: "take with food", Medications: []Medication{{Name: "Metformin"}}},
		{Instructions: "take with food", Medications: []Medication{{Name: "Atorvastatin"}}},
	}
	got := search.Filter(rxs, "metformin", (*Prescription).SearchFields)
	if len(got) != 1 || got[0].Medications[0].Name != "Metformin" {
		t.Errorf("medication search returned %d results, want the Metformin prescription only", len(got))
	}
}

func TestListByPatient_Scoped(t *testing.T) {
	repo := NewRepoMem(nil)
	ctx := context.Background()
	mine := uuid.New()
	other := uuid.New()
	doctorID := uuid.New()
	med := Medication{Name: "Ibuprofen", Dosage: "200mg"}
	for _, pid := range []uuid.UUID{mine, mine, other} {
		p := &Prescription{DoctorID: doctorID, PatientID: pid, Medications: []Medication{med}}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	items, err := repo.ListByPatient(ctx, mine)
	if err != nil {
		t.Fatalf("ListByPatient: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len = %d, want 2", len(items))
	}
}
