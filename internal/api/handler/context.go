package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/member-api/internal/api/middleware"
	"github.com/memberhub/member-api/internal/core/domain"
)

// ctxPrincipal extracts the Principal attached by the Auth middleware and
// fast-fails before any service call. Handlers behind RequireRoles should
// always find one; a missing principal means the middleware chain was
// miswired, which must surface as 401 rather than a nil dereference.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p := middleware.Principal(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return p, nil
}
