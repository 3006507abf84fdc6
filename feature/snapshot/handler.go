package snapshot

import (
	"time"

	"economy-manager/core/logger"
	"economy-manager/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Detail is a loaded snapshot without its rows.
type Detail struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Counts    Counts    `json:"counts"`
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshots")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Post("/prune", h.HandlePrune)
	group.Get("/latest", h.HandleLatest)
	group.Get("/:name", h.HandleGet)
}

// HandleList lists stored snapshots.
// @Summary List Snapshots
// @Description List stored snapshots, newest first.
// @Tags snapshot
// @Produce json
// @Success 200 {array} Info
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext())
	if err != nil {
		return h.fail(c, "Snapshot list failed", err)
	}
	if list == nil {
		list = []Info{}
	}
	return c.JSON(list)
}

// HandleCreate takes a snapshot now.
// @Summary Create Snapshot
// @Tags snapshot
// @Produce json
// @Success 201 {object} Info
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	info, err := h.service.Create(c.UserContext())
	if err != nil {
		return h.fail(c, "Snapshot creation failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandlePrune deletes old snapshots.
// @Summary Prune Snapshots
// @Tags snapshot
// @Produce json
// @Param keep query int false "Snapshots to keep (defaults to snapshot.keep)"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /snapshots/prune [post]
func (h *Handler) HandlePrune(c *fiber.Ctx) error {
	keep := c.QueryInt("keep", h.service.cfg.Keep)
	removed, err := h.service.Prune(c.UserContext(), keep)
	if err != nil {
		return h.fail(c, "Snapshot prune failed", err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}

// HandleLatest describes the newest snapshot.
// @Summary Latest Snapshot
// @Tags snapshot
// @Produce json
// @Success 200 {object} Detail
// @Failure 404 {object} map[string]string "Not Found"
// @Router /snapshots/latest [get]
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	snap, err := h.service.Latest(c.UserContext())
	if err != nil {
		return h.fail(c, "Snapshot load failed", err)
	}
	return c.JSON(detailOf(snap))
}

// HandleGet describes one snapshot.
// @Summary Get Snapshot
// @Tags snapshot
// @Produce json
// @Param name path string true "Snapshot name"
// @Success 200 {object} Detail
// @Failure 404 {object} map[string]string "Not Found"
// @Router /snapshots/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	snap, err := h.service.Load(c.UserContext(), c.Params("name"))
	if err != nil {
		return h.fail(c, "Snapshot load failed", err)
	}
	return c.JSON(detailOf(snap))
}

func detailOf(snap *Snapshot) Detail {
	return Detail{
		Version:   snap.Version,
		CreatedAt: snap.CreatedAt,
		Counts:    snap.Counts(),
	}
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
