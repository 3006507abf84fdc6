package playershop_test

import (
	"context"
	"testing"

	"economy-manager/feature/economy"
	ecomodels "economy-manager/feature/economy/models"
	"economy-manager/feature/inventory"
	invmodels "economy-manager/feature/inventory/models"
	"economy-manager/feature/playershop"
	"economy-manager/feature/playershop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordTables logs the table of every query run on db from now on.
func recordTables(t *testing.T, db *gorm.DB) *[]string {
	var tables []string
	err := db.Callback().Query().After("gorm:query").Register("test:record_tables", func(d *gorm.DB) {
		tables = append(tables, d.Statement.Table)
	})
	require.NoError(t, err)
	return &tables
}

func firstIndex(tables []string, name string) int {
	for i, table := range tables {
		if table == name {
			return i
		}
	}
	return -1
}

func openShop(t *testing.T, f *fixture, stock invmodels.Stack, req playershop.ListRequest) *models.Listing {
	ctx := context.Background()
	_, err := f.svc.Create(ctx, owner, "Shop")
	require.NoError(t, err)
	_, err = f.svc.SetOpen(ctx, owner, true)
	require.NoError(t, err)
	f.give(t, owner, stock)
	listing, err := f.svc.List(ctx, owner, req)
	require.NoError(t, err)
	return listing
}

func TestBuy_PaysOwnerMinusTax(t *testing.T) {
	f := newFixture(t, playershop.Config{TaxRate: 0.1, TaxAccount: taxer})
	ctx := context.Background()

	listing := openShop(t, f,
		invmodels.Stack{ItemID: "sword", Quantity: 1, Durability: 70, MaxDurability: 100},
		playershop.ListRequest{Slot: 0, Amount: 1, Quantity: 1, PriceBuy: 25})

	receipt, err := f.svc.Buy(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 1})
	require.NoError(t, err)
	assert.Equal(t, 25.0, receipt.Amount)
	assert.Equal(t, 2.5, receipt.Tax)
	assert.Equal(t, 22.5, receipt.Received)
	assert.Equal(t, 75.0, receipt.Balance)
	assert.Equal(t, 0, receipt.Stock)

	assert.Equal(t, 75.0, f.coins(t, buyer))
	assert.Equal(t, 122.5, f.coins(t, owner))
	assert.Equal(t, 102.5, f.coins(t, taxer))

	slots := f.slots(t, buyer)
	require.Len(t, slots, 1)
	assert.Equal(t, 70.0, slots[0].Durability)

	_, err = f.svc.Buy(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 1})
	assert.ErrorIs(t, err, playershop.ErrOutOfStock)
}

func TestBuy_TaxBurnedWithoutAccount(t *testing.T) {
	f := newFixture(t, playershop.Config{TaxRate: 2})
	ctx := context.Background()

	listing := openShop(t, f,
		invmodels.Stack{ItemID: "bread", Quantity: 10},
		playershop.ListRequest{Slot: 0, Amount: 10, Quantity: 5, PriceBuy: 4})

	// A rate above one is clamped: the owner keeps nothing.
	receipt, err := f.svc.Buy(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 2})
	require.NoError(t, err)
	assert.Equal(t, 8.0, receipt.Tax)
	assert.Equal(t, 0.0, receipt.Received)
	assert.Equal(t, 100.0, f.coins(t, owner))
}

func TestBuy_Rejections(t *testing.T) {
	f := newFixture(t, playershop.Config{})
	ctx := context.Background()

	listing := openShop(t, f,
		invmodels.Stack{ItemID: "stone", Quantity: 64},
		playershop.ListRequest{Slot: 0, Amount: 64, Quantity: 64, PriceBuy: 10, PriceSell: 1})

	_, err := f.svc.Buy(ctx, listing.ID, playershop.TradeRequest{Player: owner, Multiplier: 1})
	assert.ErrorIs(t, err, playershop.ErrOwnShop)

	_, err = f.svc.Buy(ctx, 999, playershop.TradeRequest{Player: buyer, Multiplier: 1})
	assert.ErrorIs(t, err, playershop.ErrListingNotFound)

	_, err = f.svc.Buy(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 2})
	assert.ErrorIs(t, err, playershop.ErrOutOfStock)

	// Fill the buyer's inventory: the purchase rolls back entirely.
	f.give(t, buyer, invmodels.Stack{ItemID: "dirt", Quantity: 64 * 3})
	_, err = f.svc.Buy(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 1})
	assert.ErrorIs(t, err, inventory.ErrInventoryFull)
	// Not even the accounts opened during the attempt survive.
	var accounts int64
	require.NoError(t, f.db.Model(&ecomodels.Account{}).Count(&accounts).Error)
	assert.Zero(t, accounts)
	listings, err := f.svc.Listings(ctx, owner, "")
	require.NoError(t, err)
	assert.Equal(t, 64, listings[0].Stock)

	_, err = f.svc.SetOpen(ctx, owner, false)
	require.NoError(t, err)
	_, err = f.svc.Buy(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 1})
	assert.ErrorIs(t, err, playershop.ErrShopClosed)
}

func TestSellTo(t *testing.T) {
	f := newFixture(t, playershop.Config{TaxRate: 0.05})
	ctx := context.Background()

	listing := openShop(t, f,
		invmodels.Stack{ItemID: "bread", Quantity: 1, Durability: 3},
		playershop.ListRequest{Slot: 0, Amount: 1, Quantity: 2, PriceSell: 30})

	// Different durability does not count.
	f.give(t, buyer, invmodels.Stack{ItemID: "bread", Quantity: 4, Durability: 1})
	_, err := f.svc.SellTo(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 1})
	assert.ErrorIs(t, err, inventory.ErrNotEnoughItems)

	f.give(t, buyer, invmodels.Stack{ItemID: "bread", Quantity: 10, Durability: 3})
	receipt, err := f.svc.SellTo(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 2})
	require.NoError(t, err)
	assert.Equal(t, 60.0, receipt.Amount)
	assert.Equal(t, 3.0, receipt.Tax)
	assert.Equal(t, 157.0, receipt.Balance)
	assert.Equal(t, 5, receipt.Stock)
	assert.Equal(t, 40.0, f.coins(t, owner))

	// The owner cannot afford another lot.
	_, err = f.svc.SellTo(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 2})
	assert.ErrorIs(t, err, economy.ErrInsufficientFunds)
	n, err := f.inv.Count(f.db, buyer, "bread")
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	_, err = f.svc.Buy(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 1})
	assert.ErrorIs(t, err, playershop.ErrNotBuyable)
}

func TestTrades_LockAccountsBeforeInventory(t *testing.T) {
	f := newFixture(t, playershop.Config{})
	ctx := context.Background()

	listing := openShop(t, f,
		invmodels.Stack{ItemID: "bread", Quantity: 4},
		playershop.ListRequest{Slot: 0, Amount: 4, Quantity: 1, PriceBuy: 5, PriceSell: 2})
	f.give(t, buyer, invmodels.Stack{ItemID: "bread", Quantity: 2})

	tables := recordTables(t, f.db)
	_, err := f.svc.SellTo(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 1})
	require.NoError(t, err)
	sell := *tables

	*tables = nil
	_, err = f.svc.Buy(ctx, listing.ID, playershop.TradeRequest{Player: buyer, Multiplier: 1})
	require.NoError(t, err)
	buy := *tables

	for name, seen := range map[string][]string{"sell": sell, "buy": buy} {
		accounts, slots := firstIndex(seen, "accounts"), firstIndex(seen, "inventory_slots")
		require.NotEqual(t, -1, accounts, name)
		require.NotEqual(t, -1, slots, name)
		assert.Less(t, accounts, slots, name)
	}
}
