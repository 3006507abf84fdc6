package economy

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Economy feature.
func NewFeature(db *gorm.DB, cfg Config, logger *zap.Logger) *Feature {
	svc := NewService(db, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service returns the feature's service so dependent features can share its ledger.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "economy"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
