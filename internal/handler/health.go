package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a plain liveness endpoint for load balancers and monitors.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root returns the API banner the frontend probes on startup.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Trine Solutions API"})
}
