package snapshot

import "github.com/gofiber/fiber/v2"

var (
	ErrSnapshotNotFound = fiber.NewError(fiber.StatusNotFound, "snapshot not found")
	ErrInvalidName      = fiber.NewError(fiber.StatusBadRequest, "invalid snapshot name")
	ErrInvalidKeep      = fiber.NewError(fiber.StatusBadRequest, "keep must be at least 1")
)
