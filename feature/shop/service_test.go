package shop_test

import (
	"context"
	"errors"
	"testing"

	"economy-manager/core/database/dbtest"
	"economy-manager/feature/economy"
	ecomodels "economy-manager/feature/economy/models"
	"economy-manager/feature/inventory"
	invmodels "economy-manager/feature/inventory/models"
	"economy-manager/feature/shop"
	"economy-manager/feature/shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	alice = "11111111-1111-1111-1111-111111111111"
	bob   = "22222222-2222-2222-2222-222222222222"
)

type fixture struct {
	db  *gorm.DB
	svc *shop.Service
	inv *inventory.Inventory
}

func allModels() []any {
	all := append([]any{}, ecomodels.All()...)
	all = append(all, invmodels.All()...)
	return append(all, models.All()...)
}

func newFixture(t *testing.T, cfg shop.Config) *fixture {
	db := dbtest.New(t, allModels()...)
	inv := inventory.New(inventory.Config{Slots: 2, MaxStack: 64})
	ledger := economy.NewLedger(economy.Config{StartingBalance: 100})
	svc := shop.NewService(db, ledger, inv, nil, cfg, zap.NewNop())
	require.NoError(t, svc.EnsureGlobal(context.Background()))
	return &fixture{db: db, svc: svc, inv: inv}
}

func (f *fixture) balance(t *testing.T, player, currency string) float64 {
	var acc ecomodels.Account
	require.NoError(t, f.db.Where("uuid = ?", player).First(&acc).Error)
	return acc.Balance(currency)
}

func TestShops(t *testing.T) {
	f := newFixture(t, shop.Config{})
	ctx := context.Background()

	shops, err := f.svc.ListShops(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, models.GlobalShop, shops[0].Number)

	// Seeding twice is harmless.
	require.NoError(t, f.svc.EnsureGlobal(ctx))

	created, err := f.svc.CreateShop(ctx, 0, "Blacksmith")
	require.NoError(t, err)
	assert.Equal(t, 1, created.Number)

	_, err = f.svc.CreateShop(ctx, 1, "Again")
	assert.ErrorIs(t, err, shop.ErrShopExists)
	_, err = f.svc.CreateShop(ctx, 5, " ")
	assert.ErrorIs(t, err, shop.ErrInvalidShop)

	renamed, err := f.svc.RenameShop(ctx, 1, "Smith")
	require.NoError(t, err)
	assert.Equal(t, "Smith", renamed.Name)

	_, err = f.svc.GetShop(ctx, 9)
	assert.ErrorIs(t, err, shop.ErrShopNotFound)
}

func TestDeleteShop(t *testing.T) {
	f := newFixture(t, shop.Config{})
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.DeleteShop(ctx, 0), shop.ErrGlobalShop)
	assert.ErrorIs(t, f.svc.DeleteShop(ctx, 3), shop.ErrShopNotFound)

	_, err := f.svc.CreateShop(ctx, 3, "Farm")
	require.NoError(t, err)
	item, err := f.svc.AddItem(ctx, 3, models.Item{ItemID: "wheat", Quantity: 1, PriceBuy: 1, Stock: models.Unlimited})
	require.NoError(t, err)
	assert.ErrorIs(t, f.svc.DeleteShop(ctx, 3), shop.ErrShopNotEmpty)

	require.NoError(t, f.svc.RemoveItem(ctx, 3, item.ID))

	bound := errors.New("bound")
	f.svc.RegisterDeleteGuard(func(tx *gorm.DB, number int) error {
		if number == 3 {
			return bound
		}
		return nil
	})
	assert.ErrorIs(t, f.svc.DeleteShop(ctx, 3), bound)

	_, err = f.svc.CreateShop(ctx, 4, "Mine")
	require.NoError(t, err)
	_, err = f.svc.AddTab(ctx, 4, "Ores")
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteShop(ctx, 4))

	var tabs int64
	require.NoError(t, f.db.Model(&models.Tab{}).Where("scope = ?", shop.ShopScope(4)).Count(&tabs).Error)
	assert.Zero(t, tabs)
}

func TestTabs(t *testing.T) {
	f := newFixture(t, shop.Config{MaxTabs: 2})
	ctx := context.Background()

	_, err := f.svc.AddTab(ctx, 0, "Blocks")
	require.NoError(t, err)
	_, err = f.svc.AddTab(ctx, 0, "blocks")
	assert.ErrorIs(t, err, shop.ErrTabExists)
	_, err = f.svc.AddTab(ctx, 0, "")
	assert.ErrorIs(t, err, shop.ErrInvalidTab)
	_, err = f.svc.AddTab(ctx, 0, "Tools")
	require.NoError(t, err)
	_, err = f.svc.AddTab(ctx, 0, "Food")
	assert.ErrorIs(t, err, shop.ErrTabLimit)
	_, err = f.svc.AddTab(ctx, 7, "Food")
	assert.ErrorIs(t, err, shop.ErrShopNotFound)

	item, err := f.svc.AddItem(ctx, 0, models.Item{Tab: "blocks", ItemID: "stone", Quantity: 1, PriceBuy: 1, Stock: models.Unlimited})
	require.NoError(t, err)
	assert.Equal(t, "Blocks", item.Tab)

	assert.ErrorIs(t, f.svc.RemoveTab(ctx, 0, "Blocks"), shop.ErrTabNotEmpty)

	_, err = f.svc.RenameTab(ctx, 0, "Blocks", "Tools")
	assert.ErrorIs(t, err, shop.ErrTabExists)
	tab, err := f.svc.RenameTab(ctx, 0, "Blocks", "Building")
	require.NoError(t, err)
	assert.Equal(t, "Building", tab.Name)

	items, err := f.svc.ListItems(ctx, 0, "Building")
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = f.svc.ListItems(ctx, 0, "Blocks")
	assert.ErrorIs(t, err, shop.ErrTabNotFound)

	require.NoError(t, f.svc.RemoveTab(ctx, 0, "Tools"))
	tabs, err := f.svc.ListTabs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, tabs, 1)
}

func TestAddItem_Validation(t *testing.T) {
	f := newFixture(t, shop.Config{})
	ctx := context.Background()

	tests := []struct {
		name string
		item models.Item
	}{
		{"no item id", models.Item{Quantity: 1, PriceBuy: 1}},
		{"no quantity", models.Item{ItemID: "stone", PriceBuy: 1}},
		{"no prices", models.Item{ItemID: "stone", Quantity: 1}},
		{"negative price", models.Item{ItemID: "stone", Quantity: 1, PriceBuy: -1}},
		{"bad stock", models.Item{ItemID: "stone", Quantity: 1, PriceBuy: 1, Stock: -2}},
		{"durability above max", models.Item{ItemID: "pick", Quantity: 1, PriceBuy: 1, Durability: 20, MaxDurability: 10}},
		{"empty command", models.Item{IsCommand: true, Quantity: 1, PriceBuy: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.AddItem(ctx, 0, tt.item)
			assert.ErrorIs(t, err, shop.ErrInvalidItem)
		})
	}

	_, err := f.svc.AddItem(ctx, 0, models.Item{Tab: "Missing", ItemID: "stone", Quantity: 1, PriceBuy: 1})
	assert.ErrorIs(t, err, shop.ErrTabNotFound)

	item, err := f.svc.AddItem(ctx, 0, models.Item{Command: "give {player} diamond", Quantity: 1, PriceBuy: 1.005})
	require.NoError(t, err)
	assert.True(t, item.IsCommand)
}

func TestUpdateItem(t *testing.T) {
	f := newFixture(t, shop.Config{})
	ctx := context.Background()

	item, err := f.svc.AddItem(ctx, 0, models.Item{ItemID: "stone", Quantity: 1, PriceBuy: 2, Stock: models.Unlimited})
	require.NoError(t, err)

	price := 3.5
	stock := 10
	updated, err := f.svc.UpdateItem(ctx, 0, item.ID, shop.ItemUpdate{PriceBuy: &price, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 3.5, updated.PriceBuy)
	assert.Equal(t, 10, updated.Stock)

	zero := 0
	_, err = f.svc.UpdateItem(ctx, 0, item.ID, shop.ItemUpdate{Quantity: &zero})
	assert.ErrorIs(t, err, shop.ErrInvalidItem)

	_, err = f.svc.UpdateItem(ctx, 0, 999, shop.ItemUpdate{})
	assert.ErrorIs(t, err, shop.ErrItemNotFound)

	assert.ErrorIs(t, f.svc.RemoveItem(ctx, 0, 999), shop.ErrItemNotFound)
}
