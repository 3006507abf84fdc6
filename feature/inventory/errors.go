package inventory

import "github.com/gofiber/fiber/v2"

var (
	ErrInventoryFull  = fiber.NewError(fiber.StatusConflict, "inventory full")
	ErrNotEnoughItems = fiber.NewError(fiber.StatusConflict, "not enough items")
	ErrInvalidStack   = fiber.NewError(fiber.StatusBadRequest, "invalid item stack")
	ErrInvalidSlot    = fiber.NewError(fiber.StatusBadRequest, "invalid slot index")
	ErrSlotEmpty      = fiber.NewError(fiber.StatusNotFound, "slot is empty")
)
