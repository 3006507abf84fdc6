package playershop

import (
	"economy-manager/feature/economy"
	"economy-manager/feature/inventory"
	"economy-manager/feature/shop"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new PlayerShop feature.
func NewFeature(db *gorm.DB, ledger *economy.Ledger, inv *inventory.Inventory, tabs *shop.Tabs, cfg Config, logger *zap.Logger) *Feature {
	svc := NewService(db, ledger, inv, tabs, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "playershop"
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
