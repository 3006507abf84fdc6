package economy

import "github.com/gofiber/fiber/v2"

var (
	ErrInvalidAmount     = fiber.NewError(fiber.StatusBadRequest, "amount must be a positive number")
	ErrInvalidCurrency   = fiber.NewError(fiber.StatusBadRequest, "unknown currency")
	ErrInvalidUUID       = fiber.NewError(fiber.StatusBadRequest, "invalid player uuid")
	ErrSelfTransfer      = fiber.NewError(fiber.StatusBadRequest, "cannot transfer to the same account")
	ErrInsufficientFunds = fiber.NewError(fiber.StatusConflict, "insufficient funds")
	ErrBalanceLimit      = fiber.NewError(fiber.StatusConflict, "balance limit exceeded")
	ErrAccountNotFound   = fiber.NewError(fiber.StatusNotFound, "account not found")
)
