// Package response renders the JSON bodies returned by the API.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform shape of every failed request.
type ErrorBody struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// MessageBody is a bare acknowledgement.
type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as the JSON response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a {message} body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// Error writes a {message, details} body. Details are never null.
func Error(c echo.Context, statusCode int, message string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}

	return c.JSON(statusCode, ErrorBody{
		Message: message,
		Details: details,
	})
}
