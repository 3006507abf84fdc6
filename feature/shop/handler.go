package shop

import (
	"economy-manager/core/logger"
	"economy-manager/core/server"
	"economy-manager/feature/shop/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IdempotencyHeader carries the client's deduplication key on trades.
const IdempotencyHeader = "Idempotency-Key"

// Handler handles HTTP requests for admin shops.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ShopRequest creates or renames a shop.
type ShopRequest struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// TabRequest names a tab.
type TabRequest struct {
	Name string `json:"name"`
}

// ItemRequest creates a listing. A missing stock means unlimited.
type ItemRequest struct {
	Tab           string  `json:"tab"`
	ItemID        string  `json:"item_id"`
	DisplayName   string  `json:"display_name"`
	Quantity      int     `json:"quantity"`
	PriceBuy      float64 `json:"price_buy"`
	PriceSell     float64 `json:"price_sell"`
	Stock         *int    `json:"stock"`
	Durability    float64 `json:"durability"`
	MaxDurability float64 `json:"max_durability"`
	UseCash       bool    `json:"use_cash"`
	Command       string  `json:"command"`
}

func (r ItemRequest) model() models.Item {
	item := models.Item{
		Tab:           r.Tab,
		ItemID:        r.ItemID,
		DisplayName:   r.DisplayName,
		Quantity:      r.Quantity,
		PriceBuy:      r.PriceBuy,
		PriceSell:     r.PriceSell,
		Stock:         models.Unlimited,
		Durability:    r.Durability,
		MaxDurability: r.MaxDurability,
		UseCash:       r.UseCash,
		Command:       r.Command,
		IsCommand:     r.Command != "",
	}
	if r.Stock != nil {
		item.Stock = *r.Stock
	}
	return item
}

// RegisterRoutes registers the shop routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/shops")
	group.Get("/", h.HandleListShops)
	group.Post("/", h.HandleCreateShop)
	group.Get("/:number", h.HandleGetShop)
	group.Patch("/:number", h.HandleRenameShop)
	group.Delete("/:number", h.HandleDeleteShop)

	group.Get("/:number/tabs", h.HandleListTabs)
	group.Post("/:number/tabs", h.HandleAddTab)
	group.Patch("/:number/tabs/:tab", h.HandleRenameTab)
	group.Delete("/:number/tabs/:tab", h.HandleRemoveTab)

	group.Get("/:number/items", h.HandleListItems)
	group.Post("/:number/items", h.HandleAddItem)
	group.Patch("/:number/items/:id", h.HandleUpdateItem)
	group.Delete("/:number/items/:id", h.HandleRemoveItem)
	group.Post("/:number/items/:id/buy", h.HandleBuy)
	group.Post("/:number/items/:id/sell", h.HandleSell)

	commands := app.Group("/commands")
	commands.Get("/", h.HandlePendingCommands)
	commands.Post("/:id/ack", h.HandleAckCommand)

	catalog := app.Group("/catalog")
	catalog.Get("/", h.HandleExportCatalog)
	catalog.Put("/", h.HandleImportCatalog)
}

// HandleListShops lists shops.
// @Summary List Shops
// @Tags shop
// @Produce json
// @Success 200 {array} models.Shop
// @Router /shops [get]
func (h *Handler) HandleListShops(c *fiber.Ctx) error {
	shops, err := h.service.ListShops(c.UserContext())
	if err != nil {
		return h.fail(c, "Shop list failed", err)
	}
	return c.JSON(shops)
}

// HandleCreateShop creates an NPC shop.
// @Summary Create Shop
// @Tags shop
// @Accept json
// @Produce json
// @Param body body ShopRequest true "Shop (number 0 allocates the next free number)"
// @Success 201 {object} models.Shop
// @Router /shops [post]
func (h *Handler) HandleCreateShop(c *fiber.Ctx) error {
	var req ShopRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	shop, err := h.service.CreateShop(c.UserContext(), req.Number, req.Name)
	if err != nil {
		return h.fail(c, "Shop creation failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(shop)
}

// HandleGetShop returns a shop.
// @Summary Get Shop
// @Tags shop
// @Produce json
// @Param number path int true "Shop number"
// @Success 200 {object} models.Shop
// @Router /shops/{number} [get]
func (h *Handler) HandleGetShop(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return badParam(c, "number")
	}
	shop, err := h.service.GetShop(c.UserContext(), number)
	if err != nil {
		return h.fail(c, "Shop lookup failed", err)
	}
	return c.JSON(shop)
}

// HandleRenameShop renames a shop.
// @Summary Rename Shop
// @Tags shop
// @Accept json
// @Produce json
// @Param number path int true "Shop number"
// @Param body body ShopRequest true "New name"
// @Success 200 {object} models.Shop
// @Router /shops/{number} [patch]
func (h *Handler) HandleRenameShop(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return badParam(c, "number")
	}
	var req ShopRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	shop, err := h.service.RenameShop(c.UserContext(), number, req.Name)
	if err != nil {
		return h.fail(c, "Shop rename failed", err)
	}
	return c.JSON(shop)
}

// HandleDeleteShop deletes an empty, unbound NPC shop.
// @Summary Delete Shop
// @Tags shop
// @Param number path int true "Shop number"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /shops/{number} [delete]
func (h *Handler) HandleDeleteShop(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return badParam(c, "number")
	}
	if err := h.service.DeleteShop(c.UserContext(), number); err != nil {
		return h.fail(c, "Shop deletion failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListTabs lists a shop's tabs.
// @Summary List Tabs
// @Tags shop
// @Produce json
// @Param number path int true "Shop number"
// @Success 200 {array} models.Tab
// @Router /shops/{number}/tabs [get]
func (h *Handler) HandleListTabs(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return badParam(c, "number")
	}
	tabs, err := h.service.ListTabs(c.UserContext(), number)
	if err != nil {
		return h.fail(c, "Tab list failed", err)
	}
	return c.JSON(tabs)
}

// HandleAddTab adds a tab.
// @Summary Add Tab
// @Tags shop
// @Accept json
// @Produce json
// @Param number path int true "Shop number"
// @Param body body TabRequest true "Tab"
// @Success 201 {object} models.Tab
// @Router /shops/{number}/tabs [post]
func (h *Handler) HandleAddTab(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return badParam(c, "number")
	}
	var req TabRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	tab, err := h.service.AddTab(c.UserContext(), number, req.Name)
	if err != nil {
		return h.fail(c, "Tab creation failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(tab)
}

// HandleRenameTab renames a tab.
// @Summary Rename Tab
// @Tags shop
// @Accept json
// @Produce json
// @Param number path int true "Shop number"
// @Param tab path string true "Tab name"
// @Param body body TabRequest true "New name"
// @Success 200 {object} models.Tab
// @Router /shops/{number}/tabs/{tab} [patch]
func (h *Handler) HandleRenameTab(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return badParam(c, "number")
	}
	var req TabRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	tab, err := h.service.RenameTab(c.UserContext(), number, c.Params("tab"), req.Name)
	if err != nil {
		return h.fail(c, "Tab rename failed", err)
	}
	return c.JSON(tab)
}

// HandleRemoveTab removes an empty tab.
// @Summary Remove Tab
// @Tags shop
// @Param number path int true "Shop number"
// @Param tab path string true "Tab name"
// @Success 204
// @Router /shops/{number}/tabs/{tab} [delete]
func (h *Handler) HandleRemoveTab(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return badParam(c, "number")
	}
	if err := h.service.RemoveTab(c.UserContext(), number, c.Params("tab")); err != nil {
		return h.fail(c, "Tab removal failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListItems lists a shop's items.
// @Summary List Items
// @Tags shop
// @Produce json
// @Param number path int true "Shop number"
// @Param tab query string false "Only this tab"
// @Success 200 {array} models.Item
// @Router /shops/{number}/items [get]
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return badParam(c, "number")
	}
	items, err := h.service.ListItems(c.UserContext(), number, c.Query("tab"))
	if err != nil {
		return h.fail(c, "Item list failed", err)
	}
	return c.JSON(items)
}

// HandleAddItem adds a listing.
// @Summary Add Item
// @Tags shop
// @Accept json
// @Produce json
// @Param number path int true "Shop number"
// @Param body body ItemRequest true "Item"
// @Success 201 {object} models.Item
// @Router /shops/{number}/items [post]
func (h *Handler) HandleAddItem(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return badParam(c, "number")
	}
	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	item, err := h.service.AddItem(c.UserContext(), number, req.model())
	if err != nil {
		return h.fail(c, "Item creation failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateItem changes a listing.
// @Summary Update Item
// @Tags shop
// @Accept json
// @Produce json
// @Param number path int true "Shop number"
// @Param id path int true "Item ID"
// @Param body body ItemUpdate true "Fields to change"
// @Success 200 {object} models.Item
// @Router /shops/{number}/items/{id} [patch]
func (h *Handler) HandleUpdateItem(c *fiber.Ctx) error {
	number, id, err := itemParams(c)
	if err != nil {
		return server.Respond(c, err)
	}
	var req ItemUpdate
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	item, err := h.service.UpdateItem(c.UserContext(), number, id, req)
	if err != nil {
		return h.fail(c, "Item update failed", err)
	}
	return c.JSON(item)
}

// HandleRemoveItem removes a listing.
// @Summary Remove Item
// @Tags shop
// @Param number path int true "Shop number"
// @Param id path int true "Item ID"
// @Success 204
// @Router /shops/{number}/items/{id} [delete]
func (h *Handler) HandleRemoveItem(c *fiber.Ctx) error {
	number, id, err := itemParams(c)
	if err != nil {
		return server.Respond(c, err)
	}
	if err := h.service.RemoveItem(c.UserContext(), number, id); err != nil {
		return h.fail(c, "Item removal failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleBuy buys a listing.
// @Summary Buy Item
// @Tags shop
// @Accept json
// @Produce json
// @Param number path int true "Shop number"
// @Param id path int true "Item ID"
// @Param Idempotency-Key header string false "Deduplication key"
// @Param body body TradeRequest true "Player and multiplier"
// @Success 200 {object} Receipt
// @Failure 409 {object} map[string]string
// @Router /shops/{number}/items/{id}/buy [post]
func (h *Handler) HandleBuy(c *fiber.Ctx) error {
	req, err := tradeRequest(c)
	if err != nil {
		return server.Respond(c, err)
	}
	receipt, err := h.service.Buy(c.UserContext(), *req)
	if err != nil {
		return h.fail(c, "Purchase failed", err)
	}
	return c.JSON(receipt)
}

// HandleSell sells to a listing.
// @Summary Sell Item
// @Tags shop
// @Accept json
// @Produce json
// @Param number path int true "Shop number"
// @Param id path int true "Item ID"
// @Param Idempotency-Key header string false "Deduplication key"
// @Param body body TradeRequest true "Player and multiplier"
// @Success 200 {object} Receipt
// @Failure 409 {object} map[string]string
// @Router /shops/{number}/items/{id}/sell [post]
func (h *Handler) HandleSell(c *fiber.Ctx) error {
	req, err := tradeRequest(c)
	if err != nil {
		return server.Respond(c, err)
	}
	receipt, err := h.service.Sell(c.UserContext(), *req)
	if err != nil {
		return h.fail(c, "Sale failed", err)
	}
	return c.JSON(receipt)
}

// HandlePendingCommands returns commands waiting for dispatch.
// @Summary Pending Commands
// @Tags commands
// @Produce json
// @Param limit query int false "Max commands"
// @Success 200 {array} models.PendingCommand
// @Router /commands [get]
func (h *Handler) HandlePendingCommands(c *fiber.Ctx) error {
	cmds, err := h.service.PendingCommands(c.UserContext(), c.QueryInt("limit", 100))
	if err != nil {
		return h.fail(c, "Command poll failed", err)
	}
	return c.JSON(cmds)
}

// HandleAckCommand marks a command as dispatched.
// @Summary Acknowledge Command
// @Tags commands
// @Param id path int true "Command ID"
// @Success 204
// @Router /commands/{id}/ack [post]
func (h *Handler) HandleAckCommand(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badParam(c, "id")
	}
	if err := h.service.AckCommand(c.UserContext(), uint(id)); err != nil {
		return h.fail(c, "Command ack failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleExportCatalog returns the catalog as YAML.
// @Summary Export Catalog
// @Tags catalog
// @Produce application/x-yaml
// @Success 200 {string} string
// @Router /catalog [get]
func (h *Handler) HandleExportCatalog(c *fiber.Ctx) error {
	out, err := h.service.ExportCatalog(c.UserContext())
	if err != nil {
		return h.fail(c, "Catalog export failed", err)
	}
	c.Set(fiber.HeaderContentType, "application/x-yaml")
	return c.Send(out)
}

// HandleImportCatalog replaces shops from a YAML catalog.
// @Summary Import Catalog
// @Tags catalog
// @Accept application/x-yaml
// @Produce json
// @Success 200 {object} ImportResult
// @Router /catalog [put]
func (h *Handler) HandleImportCatalog(c *fiber.Ctx) error {
	result, err := h.service.ImportCatalog(c.UserContext(), c.Body())
	if err != nil {
		return h.fail(c, "Catalog import failed", err)
	}
	return c.JSON(result)
}

func tradeRequest(c *fiber.Ctx) (*TradeRequest, error) {
	number, id, err := itemParams(c)
	if err != nil {
		return nil, err
	}
	var req TradeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Multiplier == 0 {
		req.Multiplier = 1
	}
	req.Shop = number
	req.Item = id
	req.IdempotencyKey = c.Get(IdempotencyHeader)
	return &req, nil
}

func itemParams(c *fiber.Ctx) (int, uint, error) {
	number, err := c.ParamsInt("number")
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid number")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return number, uint(id), nil
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	if server.StatusOf(err) >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return server.Respond(c, err)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
}

func badParam(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid " + name})
}
