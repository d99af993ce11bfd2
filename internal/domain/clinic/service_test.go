package clinic

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type stubCounter struct {
	counts map[uuid.UUID]int
	err    error
}

func (s *stubCounter) CountByClinic(_ context.Context, clinicID uuid.UUID) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.counts[clinicID], nil
}

func TestNormalizeHours_ClosedSentinel(t *testing.T) {
	hours := NormalizeHours(map[string]DayInput{
		"monday":  {Open: "09:00", Close: "17:00"},
		"tuesday": {Open: "09:00", Close: "17:00", Closed: true},
	})

	if got := hours["monday"]; got != (DayHours{Open: "09:00", Close: "17:00"}) {
		t.Errorf("monday = %+v", got)
	}
	// The closed checkbox suppresses the entered times entirely.
	if got := hours["tuesday"]; got != (DayHours{Open: ClosedSentinel, Close: ClosedSentinel}) {
		t.Errorf("tuesday = %+v, want closed sentinel in both slots", got)
	}
	// Days absent from the form are closed too.
	if got := hours["sunday"]; !got.Closed() {
		t.Errorf("sunday = %+v, want closed", got)
	}
	if len(hours) != 7 {
		t.Errorf("normalized week has %d days, want 7", len(hours))
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(NewRepoMem(nil), &stubCounter{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRequest{DoctorID: uuid.New()}); err == nil {
		t.Error("missing name accepted")
	}
	if _, err := svc.Create(ctx, CreateRequest{Name: "North Clinic"}); err == nil {
		t.Error("missing doctor_id accepted")
	}
	if _, err := svc.Create(ctx, CreateRequest{
		Name:     "North Clinic",
		DoctorID: uuid.New(),
		Hours:    map[string]DayInput{"monday": {Open: "09:00"}},
	}); err == nil {
		t.Error("open day without close time accepted")
	}
}

func TestCreate_NormalizesHours(t *testing.T) {
	svc := NewService(NewRepoMem(nil), &stubCounter{})
	created, err := svc.Create(context.Background(), CreateRequest{
		Name:     "North Clinic",
		DoctorID: uuid.New(),
		Hours: map[string]DayInput{
			"monday":   {Open: "08:30", Close: "16:30"},
			"saturday": {Closed: true},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.Hours["saturday"].Closed() {
		t.Errorf("saturday = %+v, want closed", created.Hours["saturday"])
	}
	if created.Hours["monday"].Open != "08:30" {
		t.Errorf("monday = %+v", created.Hours["monday"])
	}
}

func TestList_DerivedPatientCount(t *testing.T) {
	repo := NewRepoMem(nil)
	ctx := context.Background()

	a := &Clinic{ID: uuid.New(), DoctorID: uuid.New(), Name: "A"}
	b := &Clinic{ID: uuid.New(), DoctorID: a.DoctorID, Name: "B"}
	for _, c := range []*Clinic{a, b} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	counter := &stubCounter{counts: map[uuid.UUID]int{a.ID: 3, b.ID: 0}}
	svc := NewService(repo, counter)

	items, total, err := svc.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	byName := map[string]int{}
	for _, w := range items {
		byName[w.Name] = w.PatientCount
	}
	if byName["A"] != 3 || byName["B"] != 0 {
		t.Errorf("counts = %v, want A:3 B:0", byName)
	}
}

func TestList_CountErrorDegradesToZero(t *testing.T) {
	repo := NewRepoMem(nil)
	ctx := context.Background()
	if err := repo.Create(ctx, &Clinic{ID: uuid.New(), DoctorID: uuid.New(), Name: "A"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := NewService(repo, &stubCounter{err: fmt.Errorf("backend down")})
	items, _, err := svc.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("List should not fail on count errors: %v", err)
	}
	if items[0].PatientCount != 0 {
		t.Errorf("count = %d, want 0", items[0].PatientCount)
	}
}
