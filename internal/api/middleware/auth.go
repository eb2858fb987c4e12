package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/salesmgmt/sales-system/internal/api/metrics"
	"github.com/salesmgmt/sales-system/internal/core/auth"
)

// UserIDKey is the echo context key carrying the verified subject id.
const UserIDKey = "user_id"

// Auth guards a route group with bearer-token authentication. On success
// the verified integer subject id is stored in the request context under
// UserIDKey; every failure is a 401 with a reason and the handler is never
// invoked. Role claims inside the token are not inspected here — per-route
// role policy belongs to the handlers, which re-derive role from the store
// by subject id when they need it.
func Auth(verifier *auth.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
