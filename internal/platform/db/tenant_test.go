package db

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestExtractTenantID_Precedence(t *testing.T) {
	// JWT claim wins over header and query.
	c := newContext("/?tenant_id=fromquery")
	c.Request().Header.Set("X-Tenant-ID", "fromheader")
	c.Set("jwt_tenant_id", "fromjwt")
	if got := extractTenantID(c, "default"); got != "fromjwt" {
		t.Errorf("tenant = %q, want fromjwt", got)
	}

	c = newContext("/?tenant_id=fromquery")
	c.Request().Header.Set("X-Tenant-ID", "fromheader")
	if got := extractTenantID(c, "default"); got != "fromheader" {
		t.Errorf("tenant = %q, want fromheader", got)
	}

	c = newContext("/?tenant_id=fromquery")
	if got := extractTenantID(c, "default"); got != "fromquery" {
		t.Errorf("tenant = %q, want fromquery", got)
	}

	c = newContext("/")
	if got := extractTenantID(c, "default"); got != "default" {
		t.Errorf("tenant = %q, want default", got)
	}
}

func TestTenantIDPattern(t *testing.T) {
	for _, ok := range []string{"default", "acme_clinic", "Tenant01"} {
		if !tenantIDPattern.MatchString(ok) {
			t.Errorf("%q rejected", ok)
		}
	}
	for _, bad := range []string{"", "a-b", "x; DROP SCHEMA", "tenant name"} {
		if tenantIDPattern.MatchString(bad) {
			t.Errorf("%q accepted", bad)
		}
	}
}
