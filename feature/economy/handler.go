package economy

import (
	"economy-manager/core/logger"
	"economy-manager/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for balances.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AmountRequest is the body of balance mutations.
type AmountRequest struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Reason   string  `json:"reason"`
}

// TransferRequest is the body of a transfer.
type TransferRequest struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// RegisterRoutes registers the economy routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/economy")
	group.Get("/top", h.HandleTop)
	group.Post("/transfers", h.HandleTransfer)
	group.Get("/accounts/:uuid", h.HandleGetAccount)
	group.Get("/accounts/:uuid/summary", h.HandleSummary)
	group.Get("/accounts/:uuid/history", h.HandleHistory)
	group.Post("/accounts/:uuid/add", h.HandleAdd)
	group.Post("/accounts/:uuid/subtract", h.HandleSubtract)
	group.Put("/accounts/:uuid/balance", h.HandleSet)
}

// HandleGetAccount returns a player's balances.
// @Summary Get Account
// @Tags economy
// @Produce json
// @Param uuid path string true "Player UUID"
// @Success 200 {object} models.Account
// @Failure 400 {object} map[string]string
// @Router /economy/accounts/{uuid} [get]
func (h *Handler) HandleGetAccount(c *fiber.Ctx) error {
	acc, err := h.service.Get(c.UserContext(), c.Params("uuid"))
	if err != nil {
		return h.fail(c, "Account lookup failed", err)
	}
	return c.JSON(acc)
}

// HandleSummary returns the HUD balance overview.
// @Summary Get Balance Summary
// @Tags economy
// @Produce json
// @Param uuid path string true "Player UUID"
// @Success 200 {object} Summary
// @Router /economy/accounts/{uuid}/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext(), c.Params("uuid"))
	if err != nil {
		return h.fail(c, "Summary failed", err)
	}
	return c.JSON(summary)
}

// HandleHistory returns ledger entries, newest first.
// @Summary Get Ledger History
// @Tags economy
// @Produce json
// @Param uuid path string true "Player UUID"
// @Param limit query int false "Max entries"
// @Success 200 {array} models.LedgerEntry
// @Router /economy/accounts/{uuid}/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	entries, err := h.service.History(c.UserContext(), c.Params("uuid"), c.QueryInt("limit", 50))
	if err != nil {
		return h.fail(c, "History failed", err)
	}
	return c.JSON(entries)
}

// HandleAdd credits a balance.
// @Summary Add Balance
// @Tags economy
// @Accept json
// @Produce json
// @Param uuid path string true "Player UUID"
// @Param body body AmountRequest true "Amount"
// @Success 200 {object} models.Account
// @Router /economy/accounts/{uuid}/add [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	acc, err := h.service.Add(c.UserContext(), c.Params("uuid"), req.Currency, req.Amount, req.Reason)
	if err != nil {
		return h.fail(c, "Add failed", err)
	}
	return c.JSON(acc)
}

// HandleSubtract debits a balance.
// @Summary Subtract Balance
// @Tags economy
// @Accept json
// @Produce json
// @Param uuid path string true "Player UUID"
// @Param body body AmountRequest true "Amount"
// @Success 200 {object} models.Account
// @Failure 409 {object} map[string]string "Insufficient funds"
// @Router /economy/accounts/{uuid}/subtract [post]
func (h *Handler) HandleSubtract(c *fiber.Ctx) error {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	acc, err := h.service.Subtract(c.UserContext(), c.Params("uuid"), req.Currency, req.Amount, req.Reason)
	if err != nil {
		return h.fail(c, "Subtract failed", err)
	}
	return c.JSON(acc)
}

// HandleSet overwrites a balance.
// @Summary Set Balance
// @Tags economy
// @Accept json
// @Produce json
// @Param uuid path string true "Player UUID"
// @Param body body AmountRequest true "Amount"
// @Success 200 {object} models.Account
// @Router /economy/accounts/{uuid}/balance [put]
func (h *Handler) HandleSet(c *fiber.Ctx) error {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	acc, err := h.service.Set(c.UserContext(), c.Params("uuid"), req.Currency, req.Amount, req.Reason)
	if err != nil {
		return h.fail(c, "Set failed", err)
	}
	return c.JSON(acc)
}

// HandleTransfer moves money between players.
// @Summary Transfer
// @Tags economy
// @Accept json
// @Produce json
// @Param body body TransferRequest true "Transfer"
// @Success 200 {object} map[string]interface{}
// @Router /economy/transfers [post]
func (h *Handler) HandleTransfer(c *fiber.Ctx) error {
	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	from, to, err := h.service.Transfer(c.UserContext(), req.From, req.To, req.Currency, req.Amount)
	if err != nil {
		return h.fail(c, "Transfer failed", err)
	}
	return c.JSON(fiber.Map{"from": from, "to": to})
}

// HandleTop returns the leaderboard.
// @Summary Leaderboard
// @Tags economy
// @Produce json
// @Param currency query string false "coins or cash"
// @Param limit query int false "Max entries"
// @Success 200 {array} models.Account
// @Router /economy/top [get]
func (h *Handler) HandleTop(c *fiber.Ctx) error {
	accounts, err := h.service.Top(c.UserContext(), c.Query("currency", "coins"), c.QueryInt("limit", 10))
	if err != nil {
		return h.fail(c, "Leaderboard failed", err)
	}
	return c.JSON(accounts)
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
