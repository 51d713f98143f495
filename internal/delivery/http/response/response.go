// Package response holds the fixed wire shapes of the public API.
package response

import "github.com/labstack/echo/v4"

// ErrorBody is the uniform error payload: a single user-facing message,
// never internal detail.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error writes the uniform error payload.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// JSON writes an arbitrary success payload.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}
