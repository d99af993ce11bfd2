package clinic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type fixedCounter int

func (f fixedCounter) CountByClinic(_ context.Context, _ uuid.UUID) (int, error) {
	return int(f), nil
}

func TestHandler_Create(t *testing.T) {
	h := NewHandler(NewService(NewRepoMem(nil), fixedCounter(0)))
	e := echo.New()

	body := `{"doctor_id":"` + uuid.New().String() + `","name":"Northside","hours":{"monday":{"open":"09:00","close":"17:00"},"sunday":{"closed":true}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clinics", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var created Clinic
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.Hours["sunday"].Open != ClosedSentinel {
		t.Errorf("sunday = %+v, want closed sentinel", created.Hours["sunday"])
	}
	if len(created.Hours) != len(Weekdays) {
		t.Errorf("hours has %d days, want %d", len(created.Hours), len(Weekdays))
	}
}

func TestHandler_Create_MissingName(t *testing.T) {
	h := NewHandler(NewService(NewRepoMem(nil), fixedCounter(0)))
	e := echo.New()

	body := `{"doctor_id":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clinics", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("err = %v, want 400", err)
	}
}

func TestHandler_List_IncludesPatientCount(t *testing.T) {
	repo := NewRepoMem([]*Clinic{
		{ID: uuid.New(), DoctorID: uuid.New(), Name: "Northside", City: "San Francisco"},
	})
	h := NewHandler(NewService(repo, fixedCounter(3)))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	var resp struct {
		Data []*WithCount `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].PatientCount != 3 {
		t.Errorf("data = %+v, want one clinic with patient_count 3", resp.Data)
	}
}
