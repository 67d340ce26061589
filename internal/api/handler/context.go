package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartscheduler/meeting-system/internal/api/middleware"
)

// callerID extracts the verified user id injected by the Auth middleware.
// A missing id means the route was wired without the middleware; fail closed.
func callerID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.UserIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
