package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

var testCfg = SessionConfig{SigningKey: []byte("test-signing-key"), Issuer: "clinicdesk-test"}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func doRequest(t *testing.T, mw echo.MiddlewareFunc, token string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(okHandler)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestSessionMiddleware_MissingHeader(t *testing.T) {
	rec := doRequest(t, SessionMiddleware(testCfg), "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	token, err := IssueToken(testCfg, "user-1", "acme", []string{"admin"}, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	rec := doRequest(t, SessionMiddleware(testCfg), token)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestSessionMiddleware_WrongKey(t *testing.T) {
	other := SessionConfig{SigningKey: []byte("other-key"), Issuer: testCfg.Issuer}
	token, err := IssueToken(other, "user-1", "acme", nil, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	rec := doRequest(t, SessionMiddleware(testCfg), token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionMiddleware_ExpiredToken(t *testing.T) {
	token, err := IssueToken(testCfg, "user-1", "acme", nil, -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	rec := doRequest(t, SessionMiddleware(testCfg), token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionMiddleware_SetsContext(t *testing.T) {
	token, err := IssueToken(testCfg, "user-7", "acme", []string{"admin", "staff"}, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SessionMiddleware(testCfg)(func(c echo.Context) error {
		ctx := c.Request().Context()
		if got := UserIDFromContext(ctx); got != "user-7" {
			t.Errorf("user id = %q, want user-7", got)
		}
		roles := RolesFromContext(ctx)
		if len(roles) != 2 || roles[0] != "admin" {
			t.Errorf("roles = %v, want [admin staff]", roles)
		}
		if tid, _ := c.Get("jwt_tenant_id").(string); tid != "acme" {
			t.Errorf("tenant = %q, want acme", tid)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	token, err := IssueToken(testCfg, "user-1", "acme", []string{"staff"}, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	chain := SessionMiddleware(testCfg)(RequireRole("admin")(okHandler))
	err = chain(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("err = %v, want 403 HTTPError", err)
	}
}

func TestDevAuthMiddleware_GrantsAdmin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := DevAuthMiddleware()(func(c echo.Context) error {
		roles := RolesFromContext(c.Request().Context())
		if len(roles) != 1 || roles[0] != "admin" {
			t.Errorf("roles = %v, want [admin]", roles)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
}
