// Package response holds the bridge's JSON response shapes.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessBody is the 200 response shape.
type SuccessBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorBody is the shape of every non-2xx response.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK sends 200 with a success message.
func OK(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, SuccessBody{Success: true, Message: message})
}

// Error sends an error body with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{Error: message})
}

// BadRequest sends 400.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// ServiceUnavailable sends 503.
func ServiceUnavailable(c echo.Context, message string) error {
	return Error(c, http.StatusServiceUnavailable, message)
}

// InternalError sends 500.
func InternalError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
