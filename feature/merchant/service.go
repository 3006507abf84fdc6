package merchant

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"economy-manager/feature/merchant/models"
	"economy-manager/feature/shop"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Position places a merchant in a world.
type Position struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float64 `json:"yaw"`
}

func (p Position) valid() bool {
	if strings.TrimSpace(p.World) == "" {
		return false
	}
	for _, v := range []float64{p.X, p.Y, p.Z, p.Yaw} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// CreateRequest places a new merchant. A zero shop number creates a new shop.
type CreateRequest struct {
	Name       string   `json:"name"`
	Position   Position `json:"position"`
	ShopNumber int      `json:"shop_number"`
}

// Service manages NPC merchants.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new merchant service and stops shops from deleting shops that
// a merchant still opens.
func NewService(db *gorm.DB, shops *shop.Service, logger *zap.Logger) *Service {
	s := &Service{db: db, logger: logger}
	shops.RegisterDeleteGuard(s.guardShop)
	return s
}

func (s *Service) guardShop(tx *gorm.DB, number int) error {
	var n int64
	if err := tx.Model(&models.Merchant{}).Where("shop_number = ?", number).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check merchants: %w", err)
	}
	if n > 0 {
		return ErrShopBound
	}
	return nil
}

// Create places a merchant bound to an existing shop, or to a new shop named after it.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.Merchant, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > 64 || !req.Position.valid() {
		return nil, ErrInvalidMerchant
	}
	if req.ShopNumber < 0 {
		return nil, ErrInvalidShop
	}

	m := &models.Merchant{Name: name}
	place(m, req.Position)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number := req.ShopNumber
		if number == 0 {
			var err error
			if number, err = shop.NextNumber(tx); err != nil {
				return err
			}
			if _, err := shop.CreateShopTx(tx, number, name); err != nil {
				return err
			}
		} else if _, err := shop.FindShop(tx, number); err != nil {
			return err
		}
		m.ShopNumber = number
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Merchant created",
		zap.Uint("merchant", m.ID),
		zap.String("name", m.Name),
		zap.String("world", m.World),
		zap.Int("shop", m.ShopNumber))
	return m, nil
}

// Get returns one merchant.
func (s *Service) Get(ctx context.Context, id uint) (*models.Merchant, error) {
	return find(s.db.WithContext(ctx), id)
}

// List returns merchants, optionally only those of one world.
func (s *Service) List(ctx context.Context, world string) ([]models.Merchant, error) {
	q := s.db.WithContext(ctx)
	if world = strings.TrimSpace(world); world != "" {
		q = q.Where("world = ?", world)
	}
	var merchants []models.Merchant
	if err := q.Order("id ASC").Find(&merchants).Error; err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}
	return merchants, nil
}

// Move places a merchant somewhere else.
func (s *Service) Move(ctx context.Context, id uint, pos Position) (*models.Merchant, error) {
	if !pos.valid() {
		return nil, ErrInvalidMerchant
	}
	return s.change(ctx, id, func(tx *gorm.DB, m *models.Merchant) error {
		place(m, pos)
		return nil
	})
}

// Rebind points a merchant at another existing shop.
func (s *Service) Rebind(ctx context.Context, id uint, number int) (*models.Merchant, error) {
	if number <= 0 {
		return nil, ErrInvalidShop
	}
	return s.change(ctx, id, func(tx *gorm.DB, m *models.Merchant) error {
		if _, err := shop.FindShop(tx, number); err != nil {
			return err
		}
		m.ShopNumber = number
		return nil
	})
}

// Delete removes a merchant. Its shop is kept.
func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Merchant{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete merchant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMerchantNotFound
	}
	s.logger.Info("Merchant deleted", zap.Uint("merchant", id))
	return nil
}

func (s *Service) change(ctx context.Context, id uint, fn func(tx *gorm.DB, m *models.Merchant) error) (*models.Merchant, error) {
	var m *models.Merchant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if m, err = find(tx, id); err != nil {
			return err
		}
		if err := fn(tx, m); err != nil {
			return err
		}
		return tx.Save(m).Error
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func find(tx *gorm.DB, id uint) (*models.Merchant, error) {
	var m models.Merchant
	err := tx.First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMerchantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load merchant %d: %w", id, err)
	}
	return &m, nil
}

func place(m *models.Merchant, p Position) {
	m.World = strings.TrimSpace(p.World)
	m.X, m.Y, m.Z, m.Yaw = p.X, p.Y, p.Z, p.Yaw
}
