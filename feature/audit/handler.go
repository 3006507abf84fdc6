package audit

import (
	"economy-manager/core/logger"
	"economy-manager/core/reconcile"
	"economy-manager/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for ledger audits.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RepairRequest selects the repairs to run.
type RepairRequest struct {
	Sync     bool `json:"sync"`
	Backfill bool `json:"backfill"`
	DryRun   bool `json:"dry_run"`
	Confirm  bool `json:"confirm"`
}

// RepairResponse is the plan plus how much of it ran.
type RepairResponse struct {
	*reconcile.ReconcilePlan
	Executed int `json:"executed"`
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/", h.HandleReport)
	group.Post("/repair", h.HandleRepair)
	group.Get("/:uuid", h.HandleAccount)
}

// HandleReport audits every account.
// @Summary Audit Ledger
// @Description Compares every balance with its ledger sum and the latest snapshot. Planned repairs are listed, never run.
// @Tags audit
// @Produce json
// @Param sync query boolean false "Plan balance rewrites from the ledger"
// @Param backfill query boolean false "Plan opening entries for balances without ledger rows"
// @Success 200 {object} reconcile.ReconcilePlan
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	opts := reconcile.ReconcileOptions{
		DoSync:     c.QueryBool("sync"),
		DoBackfill: c.QueryBool("backfill"),
	}
	plan, err := h.service.Report(c.UserContext(), opts)
	if err != nil {
		return h.fail(c, "Audit failed", err)
	}
	return c.JSON(plan)
}

// HandleAccount audits one account.
// @Summary Audit Account
// @Tags audit
// @Produce json
// @Param uuid path string true "Player UUID"
// @Success 200 {object} reconcile.ReconcileResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /audit/{uuid} [get]
func (h *Handler) HandleAccount(c *fiber.Ctx) error {
	result, err := h.service.Account(c.UserContext(), c.Params("uuid"))
	if err != nil {
		return h.fail(c, "Account audit failed", err)
	}
	return c.JSON(result)
}

// HandleRepair runs the selected repairs.
// @Summary Repair Ledger Mismatches
// @Description Plans the selected repairs and applies them when confirm is true and dry_run is false.
// @Tags audit
// @Accept json
// @Produce json
// @Param body body RepairRequest true "Repairs"
// @Success 200 {object} RepairResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/repair [post]
func (h *Handler) HandleRepair(c *fiber.Ctx) error {
	var req RepairRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Respond(c, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}

	logger.WithRayID(h.service.logger, c).Info("Audit repair requested",
		zap.Bool("sync", req.Sync),
		zap.Bool("backfill", req.Backfill),
		zap.Bool("confirm", req.Confirm))

	plan, executed, err := h.service.Repair(c.UserContext(), reconcile.ReconcileOptions{
		DoSync:     req.Sync,
		DoBackfill: req.Backfill,
		DryRun:     req.DryRun,
		Confirmed:  req.Confirm,
	})
	if err != nil {
		return h.fail(c, "Audit repair failed", err)
	}
	return c.JSON(RepairResponse{ReconcilePlan: plan, Executed: executed})
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
