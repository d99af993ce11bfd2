package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCreate_Validation(t *testing.T) {
	svc := NewService(NewRepoMem(nil))
	ctx := context.Background()
	start := time.Now().Add(time.Hour)

	if err := svc.Create(ctx, &Appointment{PatientID: uuid.New(), StartTime: start}); err == nil {
		t.Error("missing doctor_id accepted")
	}
	if err := svc.Create(ctx, &Appointment{DoctorID: uuid.New(), StartTime: start}); err == nil {
		t.Error("missing patient_id accepted")
	}
	if err := svc.Create(ctx, &Appointment{DoctorID: uuid.New(), PatientID: uuid.New()}); err == nil {
		t.Error("missing start_time accepted")
	}
	if err := svc.Create(ctx, &Appointment{
		DoctorID: uuid.New(), PatientID: uuid.New(),
		StartTime: start, EndTime: start.Add(-time.Minute),
	}); err == nil {
		t.Error("end before start accepted")
	}
}

func TestCreate_Defaults(t *testing.T) {
	svc := NewService(NewRepoMem(nil))

	a := &Appointment{DoctorID: uuid.New(), PatientID: uuid.New(), StartTime: time.Now()}
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Status != StatusBooked {
		t.Errorf("status = %q, want %q", a.Status, StatusBooked)
	}
	if a.Channel != ChannelManual {
		t.Errorf("channel = %q, want %q", a.Channel, ChannelManual)
	}
}

func TestCreate_RejectsUnknownEnums(t *testing.T) {
	svc := NewService(NewRepoMem(nil))
	ctx := context.Background()
	base := Appointment{DoctorID: uuid.New(), PatientID: uuid.New(), StartTime: time.Now()}

	bad := base
	bad.Status = "pending"
	if err := svc.Create(ctx, &bad); err == nil {
		t.Error("unknown status accepted")
	}

	bad = base
	bad.Channel = "fax"
	if err := svc.Create(ctx, &bad); err == nil {
		t.Error("unknown channel accepted")
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"same day morning", time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC), true},
		{"same day last minute", time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC), true},
		{"previous day", time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC), false},
		{"next day", time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		a := &Appointment{StartTime: tc.start}
		if got := a.IsToday(now); got != tc.want {
			t.Errorf("%s: IsToday = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestListByPatient_Scoped(t *testing.T) {
	repo := NewRepoMem(nil)
	ctx := context.Background()
	mine := uuid.New()
	other := uuid.New()
	doctorID := uuid.New()
	for i, pid := range []uuid.UUID{mine, mine, other} {
		a := &Appointment{
			DoctorID:  doctorID,
			PatientID: pid,
			StartTime: time.Now().Add(time.Duration(i) * time.Hour),
			Status:    StatusBooked,
			Channel:   ChannelWeb,
		}
		if err := repo.Create(ctx, a); err != nil {
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
	if len(items) == 2 && items[0].StartTime.Before(items[1].StartTime) {
		t.Error("items not sorted by start time descending")
	}
}
