package playershop

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"economy-manager/feature/economy"
	"economy-manager/feature/inventory"
	"economy-manager/feature/playershop/models"
	"economy-manager/feature/shop"
	shopmodels "economy-manager/feature/shop/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service manages player shops.
type Service struct {
	db         *gorm.DB
	ledger     *economy.Ledger
	inventory  *inventory.Inventory
	tabs       *shop.Tabs
	cfg        Config
	taxAccount string
	logger     *zap.Logger
}

// NewService creates a new player shop service.
func NewService(db *gorm.DB, ledger *economy.Ledger, inv *inventory.Inventory, tabs *shop.Tabs, cfg Config, logger *zap.Logger) *Service {
	if cfg.MaxMultiplier <= 0 {
		cfg.MaxMultiplier = 64
	}
	s := &Service{
		db:        db,
		ledger:    ledger,
		inventory: inv,
		tabs:      tabs,
		cfg:       cfg,
		logger:    logger,
	}
	if cfg.TaxAccount != "" {
		id, err := economy.NormalizeUUID(cfg.TaxAccount)
		if err != nil {
			logger.Warn("Ignoring invalid tax account, tax will be burned", zap.String("tax_account", cfg.TaxAccount))
		} else {
			s.taxAccount = id
		}
	}
	return s
}

// Scope returns the tab scope of a player's shop.
func Scope(owner string) string {
	return "player:" + owner
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 64 {
		return "", ErrInvalidName
	}
	return name, nil
}

func findShop(tx *gorm.DB, owner string) (*models.Shop, error) {
	var s models.Shop
	err := tx.Where("owner_uuid = ?", owner).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load player shop: %w", err)
	}
	return &s, nil
}

// Create opens a shop for owner. It starts closed.
func (s *Service) Create(ctx context.Context, owner, name string) (*models.Shop, error) {
	id, err := economy.NormalizeUUID(owner)
	if err != nil {
		return nil, err
	}
	if name, err = cleanName(name); err != nil {
		return nil, err
	}
	var created *models.Shop
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findShop(tx, id); err == nil {
			return ErrShopExists
		} else if !errors.Is(err, ErrShopNotFound) {
			return err
		}
		created = &models.Shop{OwnerUUID: id, Name: name}
		if err := tx.Create(created).Error; err != nil {
			return fmt.Errorf("failed to create player shop: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Player shop created", zap.String("owner", id), zap.String("name", name))
	return created, nil
}

// Get returns the shop of owner.
func (s *Service) Get(ctx context.Context, owner string) (*models.Shop, error) {
	id, err := economy.NormalizeUUID(owner)
	if err != nil {
		return nil, err
	}
	return findShop(s.db.WithContext(ctx), id)
}

// ListOpen returns every open shop by name.
func (s *Service) ListOpen(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	if err := s.db.WithContext(ctx).Where("is_open = ?", true).Order("name ASC").Order("id ASC").Find(&shops).Error; err != nil {
		return nil, fmt.Errorf("failed to list player shops: %w", err)
	}
	return shops, nil
}

// Rename changes the shop name.
func (s *Service) Rename(ctx context.Context, owner, name string) (*models.Shop, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, owner, map[string]any{"name": name})
}

// SetOpen opens or closes the shop.
func (s *Service) SetOpen(ctx context.Context, owner string, open bool) (*models.Shop, error) {
	return s.update(ctx, owner, map[string]any{"is_open": open})
}

func (s *Service) update(ctx context.Context, owner string, fields map[string]any) (*models.Shop, error) {
	id, err := economy.NormalizeUUID(owner)
	if err != nil {
		return nil, err
	}
	var out *models.Shop
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ps, err := findShop(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(ps).Updates(fields).Error; err != nil {
			return fmt.Errorf("failed to update player shop: %w", err)
		}
		out, err = findShop(tx, id)
		return err
	})
	return out, err
}

// Delete removes a shop without listings.
func (s *Service) Delete(ctx context.Context, owner string) error {
	id, err := economy.NormalizeUUID(owner)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ps, err := findShop(tx, id)
		if err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&models.Listing{}).Where("shop_id = ?", ps.ID).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to count listings: %w", err)
		}
		if n > 0 {
			return ErrShopHasListings
		}
		if err := s.tabs.Clear(tx, Scope(id)); err != nil {
			return err
		}
		return tx.Delete(ps).Error
	})
	if err != nil {
		return err
	}
	s.logger.Info("Player shop deleted", zap.String("owner", id))
	return nil
}

// ListTabs returns the owner's tabs.
func (s *Service) ListTabs(ctx context.Context, owner string) ([]shopmodels.Tab, error) {
	id, err := economy.NormalizeUUID(owner)
	if err != nil {
		return nil, err
	}
	tx := s.db.WithContext(ctx)
	if _, err := findShop(tx, id); err != nil {
		return nil, err
	}
	return s.tabs.List(tx, Scope(id))
}

// AddTab adds a tab to the owner's shop.
func (s *Service) AddTab(ctx context.Context, owner, name string) (*shopmodels.Tab, error) {
	var tab *shopmodels.Tab
	err := s.inShop(ctx, owner, func(tx *gorm.DB, ps *models.Shop) error {
		var err error
		tab, err = s.tabs.Add(tx, Scope(ps.OwnerUUID), name)
		return err
	})
	return tab, err
}

// RenameTab renames a tab and moves its listings along.
func (s *Service) RenameTab(ctx context.Context, owner, from, to string) (*shopmodels.Tab, error) {
	var tab *shopmodels.Tab
	err := s.inShop(ctx, owner, func(tx *gorm.DB, ps *models.Shop) error {
		old, err := s.tabs.Find(tx, Scope(ps.OwnerUUID), from)
		if err != nil {
			return err
		}
		if tab, err = s.tabs.Rename(tx, Scope(ps.OwnerUUID), from, to); err != nil {
			return err
		}
		return tx.Model(&models.Listing{}).
			Where("shop_id = ? AND tab = ?", ps.ID, old.Name).
			Update("tab", tab.Name).Error
	})
	return tab, err
}

// RemoveTab deletes an empty tab.
func (s *Service) RemoveTab(ctx context.Context, owner, name string) error {
	return s.inShop(ctx, owner, func(tx *gorm.DB, ps *models.Shop) error {
		return s.tabs.Remove(tx, Scope(ps.OwnerUUID), name, func(tab string) (int64, error) {
			var n int64
			err := tx.Model(&models.Listing{}).Where("shop_id = ? AND tab = ?", ps.ID, tab).Count(&n).Error
			return n, err
		})
	})
}

// Listings returns the listings of a shop, optionally only one tab.
func (s *Service) Listings(ctx context.Context, owner, tab string) ([]models.Listing, error) {
	id, err := economy.NormalizeUUID(owner)
	if err != nil {
		return nil, err
	}
	tx := s.db.WithContext(ctx)
	ps, err := findShop(tx, id)
	if err != nil {
		return nil, err
	}
	q := tx.Where("shop_id = ?", ps.ID)
	if strings.TrimSpace(tab) != "" {
		name, err := s.tabs.Resolve(tx, Scope(id), tab)
		if err != nil {
			return nil, err
		}
		q = q.Where("tab = ?", name)
	}
	var listings []models.Listing
	if err := q.Order("id ASC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// inShop runs fn in a transaction with the owner's shop loaded.
func (s *Service) inShop(ctx context.Context, owner string, fn func(tx *gorm.DB, ps *models.Shop) error) error {
	id, err := economy.NormalizeUUID(owner)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ps, err := findShop(tx, id)
		if err != nil {
			return err
		}
		return fn(tx, ps)
	})
}

func findListing(tx *gorm.DB, id uint) (*models.Listing, error) {
	var l models.Listing
	err := economy.ForUpdate(tx).Where("id = ?", id).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load listing %d: %w", id, err)
	}
	return &l, nil
}

func reference(l *models.Listing) string {
	return "playershop:" + strconv.FormatUint(uint64(l.ShopID), 10) + ":listing:" + strconv.FormatUint(uint64(l.ID), 10)
}
