package shop

import (
	"context"

	"economy-manager/core/cache"
	"economy-manager/feature/economy"
	"economy-manager/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Shop feature.
func NewFeature(db *gorm.DB, ledger *economy.Ledger, inv *inventory.Inventory, guard cache.Guard, cfg Config, logger *zap.Logger) *Feature {
	svc := NewService(db, ledger, inv, guard, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "shop"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load seeds the global shop and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.EnsureGlobal(context.Background()); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
