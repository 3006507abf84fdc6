package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// StatusOf maps an error to an HTTP status code.
// Domain errors are *fiber.Error sentinels; anything else is an internal error.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// Respond writes err as a JSON error body with the mapped status code.
func Respond(c *fiber.Ctx, err error) error {
	return c.Status(StatusOf(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
