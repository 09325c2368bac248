package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/member-api/internal/core/domain"
)

func runRBAC(t *testing.T, principal *domain.Principal, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(principalKey, principal)
	}

	handler := RequireRoles(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireRoles_NoPrincipalIsUnauthenticated(t *testing.T) {
	rec := runRBAC(t, nil, domain.RoleUser, domain.RoleAdmin)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRoles_DisjointRolesIsForbidden(t *testing.T) {
	p := &domain.Principal{MemberID: 1, Roles: []string{domain.RoleUser}}
	rec := runRBAC(t, p, domain.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoles_EmptyRoleSetIsForbidden(t *testing.T) {
	p := &domain.Principal{MemberID: 1, Roles: nil}
	rec := runRBAC(t, p, domain.RoleUser, domain.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoles_MatchingRolePasses(t *testing.T) {
	p := &domain.Principal{MemberID: 1, Roles: []string{domain.RoleAdmin}}
	rec := runRBAC(t, p, domain.RoleAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoles_AnyOfSeveral(t *testing.T) {
	p := &domain.Principal{MemberID: 1, Roles: []string{domain.RoleUser}}
	rec := runRBAC(t, p, domain.RoleUser, domain.RoleAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
