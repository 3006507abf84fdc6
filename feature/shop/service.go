package shop

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"economy-manager/core/cache"
	"economy-manager/feature/economy"
	"economy-manager/feature/inventory"
	"economy-manager/feature/shop/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeleteGuard vetoes the deletion of a shop by returning an error.
type DeleteGuard func(tx *gorm.DB, number int) error

// ItemUpdate lists the listing fields to change. Nil fields are kept.
type ItemUpdate struct {
	Tab         *string  `json:"tab,omitempty"`
	DisplayName *string  `json:"display_name,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	PriceBuy    *float64 `json:"price_buy,omitempty"`
	PriceSell   *float64 `json:"price_sell,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	UseCash     *bool    `json:"use_cash,omitempty"`
	Command     *string  `json:"command,omitempty"`
}

// Service manages admin shops and runs their trades.
type Service struct {
	db        *gorm.DB
	ledger    *economy.Ledger
	inventory *inventory.Inventory
	tabs      *Tabs
	guard     cache.Guard
	cfg       Config
	logger    *zap.Logger

	mu           sync.RWMutex
	deleteGuards []DeleteGuard
}

// NewService creates a new shop service. guard may be nil to disable idempotency keys.
func NewService(db *gorm.DB, ledger *economy.Ledger, inv *inventory.Inventory, guard cache.Guard, cfg Config, logger *zap.Logger) *Service {
	if cfg.MaxMultiplier <= 0 {
		cfg.MaxMultiplier = 64
	}
	return &Service{
		db:        db,
		ledger:    ledger,
		inventory: inv,
		tabs:      NewTabs(cfg.MaxTabs),
		guard:     guard,
		cfg:       cfg,
		logger:    logger,
	}
}

// Tabs returns the tab manager shared with player shops.
func (s *Service) Tabs() *Tabs {
	return s.tabs
}

// RegisterDeleteGuard adds a check run before a shop is deleted.
func (s *Service) RegisterDeleteGuard(g DeleteGuard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteGuards = append(s.deleteGuards, g)
}

// EnsureGlobal creates the global shop if it is missing.
func (s *Service) EnsureGlobal(ctx context.Context) error {
	shop := models.Shop{Number: models.GlobalShop, Name: "Shop"}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&shop).Error
	if err != nil {
		return fmt.Errorf("failed to seed global shop: %w", err)
	}
	return nil
}

// ListShops returns every shop ordered by number.
func (s *Service) ListShops(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	if err := s.db.WithContext(ctx).Order("number ASC").Find(&shops).Error; err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return shops, nil
}

// GetShop returns one shop.
func (s *Service) GetShop(ctx context.Context, number int) (*models.Shop, error) {
	return FindShop(s.db.WithContext(ctx), number)
}

// FindShop loads a shop inside tx.
func FindShop(tx *gorm.DB, number int) (*models.Shop, error) {
	var shop models.Shop
	err := tx.Where("number = ?", number).First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load shop %d: %w", number, err)
	}
	return &shop, nil
}

// NextNumber returns the lowest unused shop number above every existing one.
func NextNumber(tx *gorm.DB) (int, error) {
	var highest int
	if err := tx.Model(&models.Shop{}).Select("COALESCE(MAX(number), 0)").Scan(&highest).Error; err != nil {
		return 0, fmt.Errorf("failed to allocate shop number: %w", err)
	}
	return highest + 1, nil
}

// CreateShopTx creates a shop inside tx.
func CreateShopTx(tx *gorm.DB, number int, name string) (*models.Shop, error) {
	name = strings.TrimSpace(name)
	if number <= models.GlobalShop || name == "" || len(name) > 64 {
		return nil, ErrInvalidShop
	}
	if _, err := FindShop(tx, number); err == nil {
		return nil, ErrShopExists
	} else if !errors.Is(err, ErrShopNotFound) {
		return nil, err
	}
	shop := models.Shop{Number: number, Name: name}
	if err := tx.Create(&shop).Error; err != nil {
		return nil, fmt.Errorf("failed to create shop %d: %w", number, err)
	}
	return &shop, nil
}

// CreateShop creates an NPC shop. A zero number allocates the next free one.
func (s *Service) CreateShop(ctx context.Context, number int, name string) (*models.Shop, error) {
	var shop *models.Shop
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if number == 0 {
			if number, err = NextNumber(tx); err != nil {
				return err
			}
		}
		shop, err = CreateShopTx(tx, number, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Shop created", zap.Int("shop", shop.Number), zap.String("name", shop.Name))
	return shop, nil
}

// RenameShop changes a shop's display name.
func (s *Service) RenameShop(ctx context.Context, number int, name string) (*models.Shop, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 64 {
		return nil, ErrInvalidShop
	}
	var shop *models.Shop
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if shop, err = FindShop(tx, number); err != nil {
			return err
		}
		shop.Name = name
		return tx.Model(shop).Update("name", name).Error
	})
	return shop, err
}

// DeleteShop removes an empty NPC shop nobody is bound to.
func (s *Service) DeleteShop(ctx context.Context, number int) error {
	if number == models.GlobalShop {
		return ErrGlobalShop
	}

	s.mu.RLock()
	guards := append([]DeleteGuard(nil), s.deleteGuards...)
	s.mu.RUnlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shop, err := FindShop(tx, number)
		if err != nil {
			return err
		}
		for _, guard := range guards {
			if err := guard(tx, number); err != nil {
				return err
			}
		}
		var items int64
		if err := tx.Model(&models.Item{}).Where("shop_number = ?", number).Count(&items).Error; err != nil {
			return fmt.Errorf("failed to count items: %w", err)
		}
		if items > 0 {
			return ErrShopNotEmpty
		}
		if err := s.tabs.Clear(tx, ShopScope(number)); err != nil {
			return err
		}
		return tx.Delete(shop).Error
	})
	if err != nil {
		return err
	}
	s.logger.Info("Shop deleted", zap.Int("shop", number))
	return nil
}

// ListTabs returns a shop's tabs.
func (s *Service) ListTabs(ctx context.Context, number int) ([]models.Tab, error) {
	tx := s.db.WithContext(ctx)
	if _, err := FindShop(tx, number); err != nil {
		return nil, err
	}
	return s.tabs.List(tx, ShopScope(number))
}

// AddTab adds a tab to a shop.
func (s *Service) AddTab(ctx context.Context, number int, name string) (*models.Tab, error) {
	var tab *models.Tab
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := FindShop(tx, number); err != nil {
			return err
		}
		var err error
		tab, err = s.tabs.Add(tx, ShopScope(number), name)
		return err
	})
	return tab, err
}

// RenameTab renames a tab and moves its listings along.
func (s *Service) RenameTab(ctx context.Context, number int, from, to string) (*models.Tab, error) {
	var tab *models.Tab
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, err := s.tabs.Find(tx, ShopScope(number), from)
		if err != nil {
			return err
		}
		if tab, err = s.tabs.Rename(tx, ShopScope(number), from, to); err != nil {
			return err
		}
		return tx.Model(&models.Item{}).
			Where("shop_number = ? AND tab = ?", number, old.Name).
			Update("tab", tab.Name).Error
	})
	return tab, err
}

// RemoveTab deletes an empty tab.
func (s *Service) RemoveTab(ctx context.Context, number int, name string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.tabs.Remove(tx, ShopScope(number), name, func(tab string) (int64, error) {
			var n int64
			err := tx.Model(&models.Item{}).Where("shop_number = ? AND tab = ?", number, tab).Count(&n).Error
			return n, err
		})
	})
}

// ListItems returns a shop's listings, optionally only those of one tab.
func (s *Service) ListItems(ctx context.Context, number int, tab string) ([]models.Item, error) {
	tx := s.db.WithContext(ctx)
	if _, err := FindShop(tx, number); err != nil {
		return nil, err
	}
	q := tx.Where("shop_number = ?", number)
	if tab = strings.TrimSpace(tab); tab != "" {
		name, err := s.tabs.Resolve(tx, ShopScope(number), tab)
		if err != nil {
			return nil, err
		}
		q = q.Where("tab = ?", name)
	}
	var items []models.Item
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// GetItem returns one listing.
func (s *Service) GetItem(ctx context.Context, number int, id uint) (*models.Item, error) {
	return findItem(s.db.WithContext(ctx), number, id, false)
}

// AddItem adds a listing to a shop.
func (s *Service) AddItem(ctx context.Context, number int, item models.Item) (*models.Item, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := FindShop(tx, number); err != nil {
			return err
		}
		return s.createItem(tx, number, &item)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Shop item added",
		zap.Int("shop", number),
		zap.Uint("item", item.ID),
		zap.String("item_id", item.ItemID))
	return &item, nil
}

func (s *Service) createItem(tx *gorm.DB, number int, item *models.Item) error {
	tab, err := s.tabs.Resolve(tx, ShopScope(number), item.Tab)
	if err != nil {
		return err
	}
	item.ID = 0
	item.ShopNumber = number
	item.Tab = tab
	if err := normalizeItem(item); err != nil {
		return err
	}
	if err := tx.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// UpdateItem changes a listing.
func (s *Service) UpdateItem(ctx context.Context, number int, id uint, upd ItemUpdate) (*models.Item, error) {
	var item *models.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if item, err = findItem(tx, number, id, true); err != nil {
			return err
		}
		if upd.Tab != nil {
			if item.Tab, err = s.tabs.Resolve(tx, ShopScope(number), *upd.Tab); err != nil {
				return err
			}
		}
		if upd.DisplayName != nil {
			item.DisplayName = *upd.DisplayName
		}
		if upd.Quantity != nil {
			item.Quantity = *upd.Quantity
		}
		if upd.PriceBuy != nil {
			item.PriceBuy = *upd.PriceBuy
		}
		if upd.PriceSell != nil {
			item.PriceSell = *upd.PriceSell
		}
		if upd.Stock != nil {
			item.Stock = *upd.Stock
		}
		if upd.UseCash != nil {
			item.UseCash = *upd.UseCash
		}
		if upd.Command != nil && item.IsCommand {
			item.Command = *upd.Command
		}
		if err := normalizeItem(item); err != nil {
			return err
		}
		return tx.Save(item).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes a listing.
func (s *Service) RemoveItem(ctx context.Context, number int, id uint) error {
	res := s.db.WithContext(ctx).Where("shop_number = ? AND id = ?", number, id).Delete(&models.Item{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	s.logger.Info("Shop item removed", zap.Int("shop", number), zap.Uint("item", id))
	return nil
}

func findItem(tx *gorm.DB, number int, id uint, lock bool) (*models.Item, error) {
	q := tx
	if lock {
		q = economy.ForUpdate(tx)
	}
	var item models.Item
	err := q.Where("shop_number = ? AND id = ?", number, id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load item %d: %w", id, err)
	}
	return &item, nil
}

// normalizeItem validates a listing and rounds its prices.
func normalizeItem(item *models.Item) error {
	item.ItemID = strings.TrimSpace(item.ItemID)
	item.Command = strings.TrimSpace(item.Command)
	if item.IsCommand || item.Command != "" {
		item.IsCommand = true
		if item.Command == "" {
			return ErrInvalidItem
		}
	} else if item.ItemID == "" {
		return ErrInvalidItem
	}
	if item.Quantity <= 0 || item.Quantity > MaxQuantity {
		return ErrInvalidItem
	}
	if !validPrice(item.PriceBuy) || !validPrice(item.PriceSell) {
		return ErrInvalidItem
	}
	item.PriceBuy = economy.Round2(item.PriceBuy)
	item.PriceSell = economy.Round2(item.PriceSell)
	if item.PriceBuy == 0 && item.PriceSell == 0 {
		return ErrInvalidItem
	}
	if item.Stock < models.Unlimited {
		return ErrInvalidItem
	}
	if item.Durability < 0 || item.MaxDurability < 0 || (item.MaxDurability > 0 && item.Durability > item.MaxDurability) {
		return ErrInvalidItem
	}
	return nil
}

func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
