package inventory

import (
	"economy-manager/core/logger"
	"economy-manager/core/server"
	"economy-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventories.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PutRequest is the host's full inventory copy.
type PutRequest struct {
	Slots []models.Slot `json:"slots"`
}

// TakeRequest removes items by id.
type TakeRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/:uuid", h.HandleGet)
	group.Put("/:uuid", h.HandlePut)
	group.Get("/:uuid/count/:item", h.HandleCount)
	group.Post("/:uuid/give", h.HandleGive)
	group.Post("/:uuid/take", h.HandleTake)
}

// HandleGet returns a player's inventory.
// @Summary Get Inventory
// @Tags inventory
// @Produce json
// @Param uuid path string true "Player UUID"
// @Success 200 {array} models.Slot
// @Router /inventory/{uuid} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	slots, err := h.service.Get(c.UserContext(), c.Params("uuid"))
	if err != nil {
		return h.fail(c, "Inventory lookup failed", err)
	}
	return c.JSON(slots)
}

// HandlePut replaces a player's inventory.
// @Summary Sync Inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param uuid path string true "Player UUID"
// @Param body body PutRequest true "Slots"
// @Success 200 {array} models.Slot
// @Router /inventory/{uuid} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	var req PutRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	slots, err := h.service.Put(c.UserContext(), c.Params("uuid"), req.Slots)
	if err != nil {
		return h.fail(c, "Inventory sync failed", err)
	}
	return c.JSON(slots)
}

// HandleCount returns how many of an item a player holds.
// @Summary Count Item
// @Tags inventory
// @Produce json
// @Param uuid path string true "Player UUID"
// @Param item path string true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Router /inventory/{uuid}/count/{item} [get]
func (h *Handler) HandleCount(c *fiber.Ctx) error {
	n, err := h.service.Count(c.UserContext(), c.Params("uuid"), c.Params("item"))
	if err != nil {
		return h.fail(c, "Inventory count failed", err)
	}
	return c.JSON(fiber.Map{"item_id": c.Params("item"), "quantity": n})
}

// HandleGive adds a stack.
// @Summary Give Items
// @Tags inventory
// @Accept json
// @Produce json
// @Param uuid path string true "Player UUID"
// @Param body body models.Stack true "Stack"
// @Success 200 {array} models.Slot
// @Failure 409 {object} map[string]string "Inventory full"
// @Router /inventory/{uuid}/give [post]
func (h *Handler) HandleGive(c *fiber.Ctx) error {
	var stack models.Stack
	if err := c.BodyParser(&stack); err != nil {
		return badBody(c)
	}
	slots, err := h.service.Give(c.UserContext(), c.Params("uuid"), stack)
	if err != nil {
		return h.fail(c, "Give failed", err)
	}
	return c.JSON(slots)
}

// HandleTake removes items.
// @Summary Take Items
// @Tags inventory
// @Accept json
// @Produce json
// @Param uuid path string true "Player UUID"
// @Param body body TakeRequest true "Item and quantity"
// @Success 200 {array} models.Slot
// @Failure 409 {object} map[string]string "Not enough items"
// @Router /inventory/{uuid}/take [post]
func (h *Handler) HandleTake(c *fiber.Ctx) error {
	var req TakeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	slots, err := h.service.Take(c.UserContext(), c.Params("uuid"), req.ItemID, req.Quantity)
	if err != nil {
		return h.fail(c, "Take failed", err)
	}
	return c.JSON(slots)
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
