package merchant

import (
	"economy-manager/core/logger"
	"economy-manager/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for merchants.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RebindRequest names the new shop.
type RebindRequest struct {
	ShopNumber int `json:"shop_number"`
}

// RegisterRoutes registers the merchant routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/merchants")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id/position", h.HandleMove)
	group.Put("/:id/shop", h.HandleRebind)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList lists merchants.
// @Summary List Merchants
// @Tags merchant
// @Produce json
// @Param world query string false "Only this world"
// @Success 200 {array} models.Merchant
// @Router /merchants [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	merchants, err := h.service.List(c.UserContext(), c.Query("world"))
	if err != nil {
		return h.fail(c, "Merchant list failed", err)
	}
	return c.JSON(merchants)
}

// HandleCreate places a merchant.
// @Summary Create Merchant
// @Tags merchant
// @Accept json
// @Produce json
// @Param body body CreateRequest true "Merchant"
// @Success 201 {object} models.Merchant
// @Router /merchants [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Respond(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}
	m, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, "Merchant creation failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// HandleGet returns a merchant.
// @Summary Get Merchant
// @Tags merchant
// @Produce json
// @Param id path int true "Merchant ID"
// @Success 200 {object} models.Merchant
// @Router /merchants/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := merchantID(c)
	if err != nil {
		return server.Respond(c, err)
	}
	m, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "Merchant lookup failed", err)
	}
	return c.JSON(m)
}

// HandleMove moves a merchant.
// @Summary Move Merchant
// @Tags merchant
// @Accept json
// @Produce json
// @Param id path int true "Merchant ID"
// @Param body body Position true "New position"
// @Success 200 {object} models.Merchant
// @Router /merchants/{id}/position [put]
func (h *Handler) HandleMove(c *fiber.Ctx) error {
	id, err := merchantID(c)
	if err != nil {
		return server.Respond(c, err)
	}
	var pos Position
	if err := c.BodyParser(&pos); err != nil {
		return server.Respond(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}
	m, err := h.service.Move(c.UserContext(), id, pos)
	if err != nil {
		return h.fail(c, "Merchant move failed", err)
	}
	return c.JSON(m)
}

// HandleRebind binds a merchant to another shop.
// @Summary Rebind Merchant
// @Tags merchant
// @Accept json
// @Produce json
// @Param id path int true "Merchant ID"
// @Param body body RebindRequest true "Shop"
// @Success 200 {object} models.Merchant
// @Router /merchants/{id}/shop [put]
func (h *Handler) HandleRebind(c *fiber.Ctx) error {
	id, err := merchantID(c)
	if err != nil {
		return server.Respond(c, err)
	}
	var req RebindRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Respond(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}
	m, err := h.service.Rebind(c.UserContext(), id, req.ShopNumber)
	if err != nil {
		return h.fail(c, "Merchant rebind failed", err)
	}
	return c.JSON(m)
}

// HandleDelete removes a merchant.
// @Summary Delete Merchant
// @Tags merchant
// @Param id path int true "Merchant ID"
// @Success 204
// @Router /merchants/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := merchantID(c)
	if err != nil {
		return server.Respond(c, err)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, "Merchant deletion failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func merchantID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
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
