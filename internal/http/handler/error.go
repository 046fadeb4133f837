package handler

import (
	"github.com/gofiber/fiber/v2"
)

// errorPayload is the error response body. The API has always answered
// with a bare human-readable message; request correlation travels in the
// X-Request-ID response header instead.
type errorPayload struct {
	Message string `json:"message"`
}

// writeError writes a JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Message: message})
}

// ErrorHandler returns a Fiber global error handler that standardizes
// error responses for unhandled errors and unknown routes.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "Bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "Resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		default:
			return writeError(c, status, "Internal server error")
		}
	}
}
