package inventory

import (
	"context"

	"economy-manager/feature/economy"
	"economy-manager/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes inventories to the host.
type Service struct {
	db        *gorm.DB
	inventory *Inventory
	logger    *zap.Logger
}

// NewService creates a new inventory service.
func NewService(db *gorm.DB, cfg Config, logger *zap.Logger) *Service {
	return &Service{db: db, inventory: New(cfg), logger: logger}
}

// Inventory exposes the transactional inventory to other features.
func (s *Service) Inventory() *Inventory {
	return s.inventory
}

// Get returns the owner's slots.
func (s *Service) Get(ctx context.Context, owner string) ([]models.Slot, error) {
	id, err := economy.NormalizeUUID(owner)
	if err != nil {
		return nil, err
	}
	return s.inventory.Load(s.db.WithContext(ctx), id)
}

// Put replaces the owner's inventory with the host's copy.
func (s *Service) Put(ctx context.Context, owner string, slots []models.Slot) ([]models.Slot, error) {
	id, err := economy.NormalizeUUID(owner)
	if err != nil {
		return nil, err
	}
	var out []models.Slot
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.inventory.Replace(tx, id, slots); err != nil {
			return err
		}
		out, err = s.inventory.Load(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Inventory synced", zap.String("owner", id), zap.Int("slots", len(out)))
	return out, nil
}

// Give adds a whole stack.
func (s *Service) Give(ctx context.Context, owner string, stack models.Stack) ([]models.Slot, error) {
	return s.change(ctx, owner, func(tx *gorm.DB, id string) error {
		return s.inventory.Give(tx, id, stack)
	})
}

// Take removes qty of itemID.
func (s *Service) Take(ctx context.Context, owner, itemID string, qty int) ([]models.Slot, error) {
	return s.change(ctx, owner, func(tx *gorm.DB, id string) error {
		_, err := s.inventory.Take(tx, id, itemID, qty)
		return err
	})
}

// Count returns how many of itemID the owner holds.
func (s *Service) Count(ctx context.Context, owner, itemID string) (int, error) {
	id, err := economy.NormalizeUUID(owner)
	if err != nil {
		return 0, err
	}
	return s.inventory.Count(s.db.WithContext(ctx), id, itemID)
}

func (s *Service) change(ctx context.Context, owner string, fn func(tx *gorm.DB, id string) error) ([]models.Slot, error) {
	id, err := economy.NormalizeUUID(owner)
	if err != nil {
		return nil, err
	}
	var out []models.Slot
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := fn(tx, id); err != nil {
			return err
		}
		out, err = s.inventory.Load(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
