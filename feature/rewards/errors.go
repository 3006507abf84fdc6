package rewards

import "github.com/gofiber/fiber/v2"

var (
	ErrRuleNotFound = fiber.NewError(fiber.StatusNotFound, "reward rule not found")
	ErrRuleExists   = fiber.NewError(fiber.StatusConflict, "reward rule already exists")
	ErrInvalidRule  = fiber.NewError(fiber.StatusBadRequest, "invalid reward rule")
	ErrInvalidKind  = fiber.NewError(fiber.StatusBadRequest, "kind must be block or monster")
	ErrInvalidCount = fiber.NewError(fiber.StatusBadRequest, "invalid count")
)
