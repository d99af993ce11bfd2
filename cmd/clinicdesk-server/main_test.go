package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/platform/auth"
	"github.com/clinicdesk/clinicdesk/internal/platform/demo"
)

func newDemoServer() *echo.Echo {
	e := echo.New()
	e.Use(auth.DevAuthMiddleware())
	registerRoutes(e, demoRepos(demo.Load(time.Now())), zerolog.Nop())
	return e
}

func TestDemoOverview(t *testing.T) {
	e := newDemoServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var snap struct {
		Stats struct {
			TotalDoctors      int `json:"total_doctors"`
			RecentPatients    int `json:"recent_patients"`
			TodayAppointments int `json:"today_appointments"`
		} `json:"stats"`
		Warnings []string `json:"warnings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
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
		t.Errorf("warnings = %v, want none in demo mode", snap.Warnings)
	}
}

func TestDemoDoctorDetail(t *testing.T) {
	e := newDemoServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/"+demo.DoctorReyes.String()+"/detail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var detail struct {
		Doctor struct {
			Name string `json:"name"`
		} `json:"doctor"`
		Patients     []json.RawMessage `json:"patients"`
		VoiceLogs    []json.RawMessage `json:"voice_logs"`
		Appointments []struct {
			PatientName string `json:"patient_name"`
		} `json:"appointments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.Doctor.Name == "" {
		t.Error("doctor missing from detail payload")
	}
	if len(detail.Patients) == 0 {
		t.Error("no patients in detail payload")
	}
	if len(detail.VoiceLogs) == 0 {
		t.Error("no voice logs in detail payload")
	}
	if len(detail.Appointments) == 0 || detail.Appointments[0].PatientName == "" {
		t.Error("appointment views missing joined patient name")
	}
}

func TestDemoProvisionDoctor(t *testing.T) {
	e := newDemoServer()

	body := `{"name":"Dr. New","email":"new@example.com","generate_password":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"credentials"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Credentials.Email != "new@example.com" {
		t.Errorf("credential email = %q", resp.Credentials.Email)
	}
	if len(resp.Credentials.Password) != 12 {
		t.Errorf("generated password length = %d, want 12", len(resp.Credentials.Password))
	}
}

func TestProvisionRequiresAdmin(t *testing.T) {
	// No auth middleware, so the request carries no roles.
	e := echo.New()
	registerRoutes(e, demoRepos(demo.Load(time.Now())), zerolog.Nop())

	body := `{"name":"Dr. New","email":"new@example.com","generate_password":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 without admin role", rec.Code)
	}
}
