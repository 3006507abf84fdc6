package rewards

import (
	"economy-manager/core/logger"
	"economy-manager/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for rewards.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reward routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rewards")
	group.Post("/trigger", h.HandleTrigger)
	group.Get("/rules", h.HandleListRules)
	group.Post("/rules", h.HandleCreateRule)
	group.Get("/rules/:id", h.HandleGetRule)
	group.Patch("/rules/:id", h.HandleUpdateRule)
	group.Delete("/rules/:id", h.HandleDeleteRule)
}

// HandleTrigger pays a reward.
// @Summary Trigger Reward
// @Tags rewards
// @Accept json
// @Produce json
// @Param body body TriggerRequest true "Player, kind, target and count"
// @Success 200 {object} Payout
// @Router /rewards/trigger [post]
func (h *Handler) HandleTrigger(c *fiber.Ctx) error {
	var req TriggerRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Respond(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}
	payout, err := h.service.Trigger(c.UserContext(), req)
	if err != nil {
		return h.fail(c, "Reward failed", err)
	}
	return c.JSON(payout)
}

// HandleListRules lists rules.
// @Summary List Reward Rules
// @Tags rewards
// @Produce json
// @Param kind query string false "block or monster"
// @Success 200 {array} models.Rule
// @Router /rewards/rules [get]
func (h *Handler) HandleListRules(c *fiber.Ctx) error {
	rules, err := h.service.ListRules(c.UserContext(), c.Query("kind"))
	if err != nil {
		return h.fail(c, "Reward rule list failed", err)
	}
	return c.JSON(rules)
}

// HandleCreateRule adds a rule.
// @Summary Create Reward Rule
// @Tags rewards
// @Accept json
// @Produce json
// @Param body body RuleRequest true "Rule"
// @Success 201 {object} models.Rule
// @Router /rewards/rules [post]
func (h *Handler) HandleCreateRule(c *fiber.Ctx) error {
	var req RuleRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Respond(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}
	rule, err := h.service.CreateRule(c.UserContext(), req)
	if err != nil {
		return h.fail(c, "Reward rule creation failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(rule)
}

// HandleGetRule returns a rule.
// @Summary Get Reward Rule
// @Tags rewards
// @Produce json
// @Param id path int true "Rule ID"
// @Success 200 {object} models.Rule
// @Router /rewards/rules/{id} [get]
func (h *Handler) HandleGetRule(c *fiber.Ctx) error {
	id, err := ruleID(c)
	if err != nil {
		return server.Respond(c, err)
	}
	rule, err := h.service.GetRule(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "Reward rule lookup failed", err)
	}
	return c.JSON(rule)
}

// HandleUpdateRule changes a rule.
// @Summary Update Reward Rule
// @Tags rewards
// @Accept json
// @Produce json
// @Param id path int true "Rule ID"
// @Param body body RuleRequest true "Fields to change"
// @Success 200 {object} models.Rule
// @Router /rewards/rules/{id} [patch]
func (h *Handler) HandleUpdateRule(c *fiber.Ctx) error {
	id, err := ruleID(c)
	if err != nil {
		return server.Respond(c, err)
	}
	var req RuleRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Respond(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}
	rule, err := h.service.UpdateRule(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, "Reward rule update failed", err)
	}
	return c.JSON(rule)
}

// HandleDeleteRule removes a rule.
// @Summary Delete Reward Rule
// @Tags rewards
// @Param id path int true "Rule ID"
// @Success 204
// @Router /rewards/rules/{id} [delete]
func (h *Handler) HandleDeleteRule(c *fiber.Ctx) error {
	id, err := ruleID(c)
	if err != nil {
		return server.Respond(c, err)
	}
	if err := h.service.DeleteRule(c.UserContext(), id); err != nil {
		return h.fail(c, "Reward rule deletion failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func ruleID(c *fiber.Ctx) (uint, error) {
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
