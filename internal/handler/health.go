package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "panoptikauth"

// Health is GET /health; always 200.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": ServiceName,
	})
}
