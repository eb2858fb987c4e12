package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesmgmt/sales-system/internal/api/middleware"
)

// ctxUserID extracts the subject id injected by the Auth middleware. Its
// presence proves the middleware ran; a guarded handler reached without it
// is a wiring bug surfaced as 401 rather than a panic.
func ctxUserID(c echo.Context) (int, error) {
	id, ok := c.Get(middleware.UserIDKey).(int)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication identity")
	}
	return id, nil
}
