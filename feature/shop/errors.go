package shop

import "github.com/gofiber/fiber/v2"

var (
	ErrShopNotFound      = fiber.NewError(fiber.StatusNotFound, "shop not found")
	ErrShopExists        = fiber.NewError(fiber.StatusConflict, "shop already exists")
	ErrInvalidShop       = fiber.NewError(fiber.StatusBadRequest, "invalid shop")
	ErrGlobalShop        = fiber.NewError(fiber.StatusBadRequest, "the global shop cannot be deleted")
	ErrShopNotEmpty      = fiber.NewError(fiber.StatusConflict, "shop still has items")
	ErrInvalidTab        = fiber.NewError(fiber.StatusBadRequest, "invalid tab name")
	ErrTabLimit          = fiber.NewError(fiber.StatusConflict, "tab limit reached")
	ErrTabExists         = fiber.NewError(fiber.StatusConflict, "tab already exists")
	ErrTabNotFound       = fiber.NewError(fiber.StatusNotFound, "tab not found")
	ErrTabNotEmpty       = fiber.NewError(fiber.StatusConflict, "tab is not empty")
	ErrItemNotFound      = fiber.NewError(fiber.StatusNotFound, "item not found")
	ErrInvalidItem       = fiber.NewError(fiber.StatusBadRequest, "invalid item")
	ErrNotBuyable        = fiber.NewError(fiber.StatusConflict, "item cannot be bought")
	ErrNotSellable       = fiber.NewError(fiber.StatusConflict, "item cannot be sold")
	ErrOutOfStock        = fiber.NewError(fiber.StatusConflict, "out of stock")
	ErrInvalidMultiplier = fiber.NewError(fiber.StatusBadRequest, "invalid multiplier")
	ErrDuplicateRequest  = fiber.NewError(fiber.StatusConflict, "duplicate request")
	ErrCommandNotFound   = fiber.NewError(fiber.StatusNotFound, "command not found")
	ErrInvalidCatalog    = fiber.NewError(fiber.StatusBadRequest, "invalid catalog")
)
