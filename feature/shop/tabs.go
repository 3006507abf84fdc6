package shop

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"economy-manager/feature/shop/models"

	"gorm.io/gorm"
)

const maxTabName = 32

// ShopScope returns the tab scope of an admin shop.
func ShopScope(number int) string {
	return "shop:" + strconv.Itoa(number)
}

// Tabs manages named tabs within a scope.
type Tabs struct {
	max int
}

// NewTabs creates a tab manager allowing max tabs per scope.
func NewTabs(max int) *Tabs {
	if max <= 0 {
		max = 7
	}
	return &Tabs{max: max}
}

// CleanTabName trims name and checks its length.
func CleanTabName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxTabName {
		return "", ErrInvalidTab
	}
	return name, nil
}

// List returns the tabs of scope in display order.
func (t *Tabs) List(tx *gorm.DB, scope string) ([]models.Tab, error) {
	var tabs []models.Tab
	if err := tx.Where("scope = ?", scope).Order("position ASC").Find(&tabs).Error; err != nil {
		return nil, fmt.Errorf("failed to list tabs: %w", err)
	}
	return tabs, nil
}

// Find returns the tab called name, ignoring case.
func (t *Tabs) Find(tx *gorm.DB, scope, name string) (*models.Tab, error) {
	var tabs []models.Tab
	err := tx.Where("scope = ? AND LOWER(name) = LOWER(?)", scope, strings.TrimSpace(name)).Limit(1).Find(&tabs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find tab: %w", err)
	}
	if len(tabs) == 0 {
		return nil, ErrTabNotFound
	}
	return &tabs[0], nil
}

// Resolve returns the stored spelling of a tab, or "" for no tab.
func (t *Tabs) Resolve(tx *gorm.DB, scope, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	tab, err := t.Find(tx, scope, name)
	if err != nil {
		return "", err
	}
	return tab.Name, nil
}

// Add appends a tab to scope.
func (t *Tabs) Add(tx *gorm.DB, scope, name string) (*models.Tab, error) {
	name, err := CleanTabName(name)
	if err != nil {
		return nil, err
	}
	tabs, err := t.List(tx, scope)
	if err != nil {
		return nil, err
	}
	if len(tabs) >= t.max {
		return nil, ErrTabLimit
	}
	position := 0
	for _, tab := range tabs {
		if strings.EqualFold(tab.Name, name) {
			return nil, ErrTabExists
		}
		if tab.Position >= position {
			position = tab.Position + 1
		}
	}

	tab := models.Tab{Scope: scope, Name: name, Position: position}
	if err := tx.Create(&tab).Error; err != nil {
		return nil, fmt.Errorf("failed to create tab: %w", err)
	}
	return &tab, nil
}

// Rename changes a tab's name. The caller moves the listings along.
func (t *Tabs) Rename(tx *gorm.DB, scope, from, to string) (*models.Tab, error) {
	to, err := CleanTabName(to)
	if err != nil {
		return nil, err
	}
	tab, err := t.Find(tx, scope, from)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(tab.Name, to) {
		if _, err := t.Find(tx, scope, to); err == nil {
			return nil, ErrTabExists
		} else if !errors.Is(err, ErrTabNotFound) {
			return nil, err
		}
	}
	if err := tx.Model(tab).Update("name", to).Error; err != nil {
		return nil, fmt.Errorf("failed to rename tab: %w", err)
	}
	tab.Name = to
	return tab, nil
}

// Remove deletes an empty tab. used reports how many listings still sit in it.
func (t *Tabs) Remove(tx *gorm.DB, scope, name string, used func(tab string) (int64, error)) error {
	tab, err := t.Find(tx, scope, name)
	if err != nil {
		return err
	}
	n, err := used(tab.Name)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrTabNotEmpty
	}
	if err := tx.Delete(tab).Error; err != nil {
		return fmt.Errorf("failed to remove tab: %w", err)
	}
	return nil
}

// Clear removes every tab of scope.
func (t *Tabs) Clear(tx *gorm.DB, scope string) error {
	if err := tx.Where("scope = ?", scope).Delete(&models.Tab{}).Error; err != nil {
		return fmt.Errorf("failed to clear tabs: %w", err)
	}
	return nil
}
