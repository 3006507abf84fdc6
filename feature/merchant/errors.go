package merchant

import "github.com/gofiber/fiber/v2"

var (
	ErrMerchantNotFound = fiber.NewError(fiber.StatusNotFound, "merchant not found")
	ErrInvalidMerchant  = fiber.NewError(fiber.StatusBadRequest, "invalid merchant")
	ErrInvalidShop      = fiber.NewError(fiber.StatusBadRequest, "merchants need a shop number above zero")
	ErrShopBound        = fiber.NewError(fiber.StatusConflict, "shop is bound to a merchant")
)
