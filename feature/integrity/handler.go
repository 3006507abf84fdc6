package integrity

import (
	"economy-manager/core/logger"
	"economy-manager/core/server"
	"economy-manager/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// StructureReport is the result of a bucket structure check.
type StructureReport struct {
	// Status is checked, fixed or error.
	Status  string   `json:"status"`
	Missing []string `json:"missing"`
	Fixed   []string `json:"fixed,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Report combines every check. A failing check is reported, not returned as an error.
type Report struct {
	Structure StructureReport      `json:"structure"`
	Schema    *checks.SchemaReport `json:"schema,omitempty"`
	SchemaErr string               `json:"schema_error,omitempty"`
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck runs the structure and schema checks.
// @Summary Run All Integrity Checks
// @Tags integrity
// @Produce json
// @Success 200 {object} Report
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Running all integrity checks")

	var report Report
	if missing, err := h.service.CheckStructure(c.UserContext()); err != nil {
		report.Structure = StructureReport{Status: "error", Missing: []string{}, Error: err.Error()}
	} else {
		report.Structure = StructureReport{Status: "checked", Missing: orEmpty(missing)}
	}

	if schema, err := h.service.CheckSchema(); err != nil {
		report.SchemaErr = err.Error()
	} else {
		report.Schema = schema
	}
	return c.JSON(report)
}

// HandleStructureCheck checks, and with fix=true repairs, the snapshot folder layout.
// @Summary Check Structure
// @Description Checks that the bucket and the snapshot folder exist. fix=true creates missing folders.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} StructureReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckStructure(c.UserContext())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return server.Respond(c, err)
	}
	report := StructureReport{Status: "checked", Missing: orEmpty(missing)}
	if len(missing) == 0 {
		return c.JSON(report)
	}

	l.Warn("Missing folders detected", zap.Strings("missing", missing))
	if !c.QueryBool("fix") {
		return c.JSON(report)
	}

	if err := h.service.FixStructure(c.UserContext(), missing); err != nil {
		l.Error("Structure fix failed", zap.Error(err))
		return server.Respond(c, err)
	}
	report.Status = "fixed"
	report.Fixed = missing
	return c.JSON(report)
}

// HandleSchemaCheck checks database schema integrity.
// @Summary Check Database Schema
// @Description Checks that every table and column of the service's models exists.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return server.Respond(c, err)
	}
	if !report.Matched {
		l.Warn("Schema drift detected", zap.Int("tables", len(report.Tables)), zap.Int("errors", len(report.Errors)))
	}
	return c.JSON(report)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
