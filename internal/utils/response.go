// Package utils provides HTTP response helpers shared by all handlers.
package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the uniform error envelope returned by every handler.
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Code      string    `json:"code"`
}

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// Error sends the structured error envelope.
func Error(c *fiber.Ctx, status int, code, message string) error {
	return Respond(c, status, ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     message,
		Code:      code,
	})
}

// BadRequest sends a BAD_REQUEST envelope with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, "BAD_REQUEST", message)
}

// ServiceUnavailable sends a SERVICE_EXCEPTION envelope with status 503.
func ServiceUnavailable(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusServiceUnavailable, "SERVICE_EXCEPTION", message)
}

// InternalError sends a SERVICE_EXCEPTION envelope with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, "SERVICE_EXCEPTION", message)
}
