package playershop

import "github.com/gofiber/fiber/v2"

var (
	ErrShopNotFound    = fiber.NewError(fiber.StatusNotFound, "player shop not found")
	ErrShopExists      = fiber.NewError(fiber.StatusConflict, "player already owns a shop")
	ErrInvalidName     = fiber.NewError(fiber.StatusBadRequest, "invalid shop name")
	ErrShopClosed      = fiber.NewError(fiber.StatusConflict, "shop is closed")
	ErrOwnShop         = fiber.NewError(fiber.StatusBadRequest, "cannot trade with your own shop")
	ErrShopHasListings = fiber.NewError(fiber.StatusConflict, "shop still has listings")
	ErrListingNotFound = fiber.NewError(fiber.StatusNotFound, "listing not found")
	ErrInvalidListing  = fiber.NewError(fiber.StatusBadRequest, "invalid listing")
	ErrNotBuyable      = fiber.NewError(fiber.StatusConflict, "listing cannot be bought")
	ErrNotSellable     = fiber.NewError(fiber.StatusConflict, "listing does not buy items")
	ErrOutOfStock      = fiber.NewError(fiber.StatusConflict, "out of stock")
	ErrItemMismatch    = fiber.NewError(fiber.StatusConflict, "item does not match listing")
)
