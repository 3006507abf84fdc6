package shop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"economy-manager/feature/shop/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Catalog is the file form of the admin shops.
type Catalog struct {
	Shops []CatalogShop `yaml:"shops"`
}

// CatalogShop is one shop with its tabs and listings.
type CatalogShop struct {
	Number int           `yaml:"number"`
	Name   string        `yaml:"name"`
	Tabs   []string      `yaml:"tabs,omitempty"`
	Items  []CatalogItem `yaml:"items,omitempty"`
}

// CatalogItem is one listing. A missing stock means unlimited.
type CatalogItem struct {
	Tab           string  `yaml:"tab,omitempty"`
	ItemID        string  `yaml:"item_id,omitempty"`
	DisplayName   string  `yaml:"display_name,omitempty"`
	Quantity      int     `yaml:"quantity"`
	PriceBuy      float64 `yaml:"price_buy,omitempty"`
	PriceSell     float64 `yaml:"price_sell,omitempty"`
	Stock         *int    `yaml:"stock,omitempty"`
	Durability    float64 `yaml:"durability,omitempty"`
	MaxDurability float64 `yaml:"max_durability,omitempty"`
	UseCash       bool    `yaml:"use_cash,omitempty"`
	Command       string  `yaml:"command,omitempty"`
}

// ImportResult counts what an import wrote.
type ImportResult struct {
	Shops int `json:"shops"`
	Tabs  int `json:"tabs"`
	Items int `json:"items"`
}

// ParseCatalog decodes a YAML catalog, rejecting unknown fields.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	seen := make(map[int]struct{}, len(cat.Shops))
	for _, shop := range cat.Shops {
		if shop.Number < 0 {
			return nil, fmt.Errorf("%w: negative shop number %d", ErrInvalidCatalog, shop.Number)
		}
		if _, dup := seen[shop.Number]; dup {
			return nil, fmt.Errorf("%w: shop %d listed twice", ErrInvalidCatalog, shop.Number)
		}
		seen[shop.Number] = struct{}{}
	}
	return &cat, nil
}

// ImportCatalog replaces the tabs and listings of every shop named in data, creating
// shops that do not exist yet. Shops not named are left alone.
func (s *Service) ImportCatalog(ctx context.Context, data []byte) (*ImportResult, error) {
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, cs := range cat.Shops {
			if err := s.importShop(tx, cs, result); err != nil {
				return fmt.Errorf("shop %d: %w", cs.Number, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Catalog imported",
		zap.Int("shops", result.Shops),
		zap.Int("tabs", result.Tabs),
		zap.Int("items", result.Items))
	return result, nil
}

func (s *Service) importShop(tx *gorm.DB, cs CatalogShop, result *ImportResult) error {
	shop, err := FindShop(tx, cs.Number)
	switch {
	case err == nil:
		if cs.Name != "" && cs.Name != shop.Name {
			if err := tx.Model(shop).Update("name", cs.Name).Error; err != nil {
				return err
			}
		}
	case cs.Number == models.GlobalShop:
		shop = &models.Shop{Number: models.GlobalShop, Name: cs.Name}
		if shop.Name == "" {
			shop.Name = "Shop"
		}
		if err := tx.Create(shop).Error; err != nil {
			return err
		}
	default:
		if _, err := CreateShopTx(tx, cs.Number, cs.Name); err != nil {
			return err
		}
	}
	result.Shops++

	if err := tx.Where("shop_number = ?", cs.Number).Delete(&models.Item{}).Error; err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	scope := ShopScope(cs.Number)
	if err := s.tabs.Clear(tx, scope); err != nil {
		return err
	}
	for _, name := range cs.Tabs {
		if _, err := s.tabs.Add(tx, scope, name); err != nil {
			return fmt.Errorf("tab %q: %w", name, err)
		}
		result.Tabs++
	}

	for i, ci := range cs.Items {
		item := models.Item{
			Tab:           ci.Tab,
			ItemID:        ci.ItemID,
			DisplayName:   ci.DisplayName,
			Quantity:      ci.Quantity,
			PriceBuy:      ci.PriceBuy,
			PriceSell:     ci.PriceSell,
			Stock:         models.Unlimited,
			Durability:    ci.Durability,
			MaxDurability: ci.MaxDurability,
			UseCash:       ci.UseCash,
			Command:       ci.Command,
		}
		if ci.Stock != nil {
			item.Stock = *ci.Stock
		}
		if err := s.createItem(tx, cs.Number, &item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		result.Items++
	}
	return nil
}

// ExportCatalog encodes every shop with its tabs and listings as YAML.
func (s *Service) ExportCatalog(ctx context.Context) ([]byte, error) {
	tx := s.db.WithContext(ctx)
	shops, err := s.ListShops(ctx)
	if err != nil {
		return nil, err
	}

	cat := Catalog{Shops: make([]CatalogShop, 0, len(shops))}
	for _, shop := range shops {
		cs := CatalogShop{Number: shop.Number, Name: shop.Name}

		tabs, err := s.tabs.List(tx, ShopScope(shop.Number))
		if err != nil {
			return nil, err
		}
		for _, tab := range tabs {
			cs.Tabs = append(cs.Tabs, tab.Name)
		}

		var items []models.Item
		if err := tx.Where("shop_number = ?", shop.Number).Order("id ASC").Find(&items).Error; err != nil {
			return nil, fmt.Errorf("failed to load items: %w", err)
		}
		for _, item := range items {
			stock := item.Stock
			ci := CatalogItem{
				Tab:           item.Tab,
				ItemID:        item.ItemID,
				DisplayName:   item.DisplayName,
				Quantity:      item.Quantity,
				PriceBuy:      item.PriceBuy,
				PriceSell:     item.PriceSell,
				Durability:    item.Durability,
				MaxDurability: item.MaxDurability,
				UseCash:       item.UseCash,
				Command:       item.Command,
			}
			if stock != models.Unlimited {
				ci.Stock = &stock
			}
			cs.Items = append(cs.Items, ci)
		}
		cat.Shops = append(cat.Shops, cs)
	}

	out, err := yaml.Marshal(&cat)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return out, nil
}
