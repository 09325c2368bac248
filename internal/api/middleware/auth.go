package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/member-api/internal/api/metrics"
	"github.com/memberhub/member-api/internal/core/domain"
	"github.com/memberhub/member-api/internal/core/ports"
)

// principalKey is the echo context key the authenticated Principal is stored
// under. Handlers read it through Principal(c).
const principalKey = "principal"

// Auth resolves the bearer token on each request into a Principal and
// attaches it to the context. A request without an Authorization header
// passes through unauthenticated; protected routes then reject it in the
// authorization stage. A present but invalid header is a hard 401.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			memberID, err := auth.ParseToken(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			roles, err := auth.Roles(c.Request().Context(), memberID)
			if err != nil {
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()
			c.Set(principalKey, &domain.Principal{MemberID: memberID, Roles: roles})

			return next(c)
		}
	}
}

// Principal returns the Principal attached by Auth, or nil when the request
// is unauthenticated.
func Principal(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}
