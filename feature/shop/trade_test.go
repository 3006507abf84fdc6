package shop_test

import (
	"context"
	"testing"

	"economy-manager/core/cache/mocks"
	"economy-manager/core/database/dbtest"
	"economy-manager/feature/economy"
	ecomodels "economy-manager/feature/economy/models"
	"economy-manager/feature/inventory"
	invmodels "economy-manager/feature/inventory/models"
	"economy-manager/feature/shop"
	"economy-manager/feature/shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func balanceOf(t *testing.T, db *gorm.DB, player string) float64 {
	var acc ecomodels.Account
	require.NoError(t, db.Where("uuid = ?", player).First(&acc).Error)
	return acc.Coins
}

func TestRenderCommand(t *testing.T) {
	assert.Equal(t, "give abc stone 64", shop.RenderCommand("give {player} stone {quantity}", "abc", 64))
	assert.Equal(t, "say hi", shop.RenderCommand("say hi", "abc", 1))
}

func TestUnits(t *testing.T) {
	n, err := shop.Units(16, 4, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, n)

	_, err = shop.Units(16, 0, 64)
	assert.ErrorIs(t, err, shop.ErrInvalidMultiplier)
	_, err = shop.Units(16, 65, 64)
	assert.ErrorIs(t, err, shop.ErrInvalidMultiplier)

	// Lots that would wrap when multiplied are refused.
	_, err = shop.Units(1<<62+1, 4, 64)
	assert.ErrorIs(t, err, shop.ErrInvalidMultiplier)
	_, err = shop.Units(shop.MaxQuantity+1, 1, 64)
	assert.ErrorIs(t, err, shop.ErrInvalidMultiplier)
	n, err = shop.Units(shop.MaxQuantity, 64, 64)
	require.NoError(t, err)
	assert.Equal(t, shop.MaxQuantity*64, n)
}

func TestAddItem_RejectsHugeLot(t *testing.T) {
	f := newFixture(t, shop.Config{})

	_, err := f.svc.AddItem(context.Background(), 0, models.Item{ItemID: "stone", Quantity: shop.MaxQuantity + 1, PriceBuy: 1, Stock: models.Unlimited})
	assert.ErrorIs(t, err, shop.ErrInvalidItem)
}

func TestBuy(t *testing.T) {
	f := newFixture(t, shop.Config{})
	ctx := context.Background()

	item, err := f.svc.AddItem(ctx, 0, models.Item{ItemID: "pick", Quantity: 1, PriceBuy: 12.5, Stock: 3, Durability: 40, MaxDurability: 50})
	require.NoError(t, err)

	receipt, err := f.svc.Buy(ctx, shop.TradeRequest{Shop: 0, Item: item.ID, Player: alice, Multiplier: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, receipt.Units)
	assert.Equal(t, 25.0, receipt.Amount)
	assert.Equal(t, ecomodels.CurrencyCoins, receipt.Currency)
	assert.Equal(t, 75.0, receipt.Balance)
	assert.Equal(t, 1, receipt.Stock)

	slots, err := f.inv.Load(f.db, alice)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	for _, slot := range slots {
		assert.Equal(t, 40.0, slot.Durability)
		assert.Equal(t, 1, slot.Quantity)
	}

	_, err = f.svc.Buy(ctx, shop.TradeRequest{Shop: 0, Item: item.ID, Player: alice, Multiplier: 2})
	assert.ErrorIs(t, err, shop.ErrOutOfStock)
}

func TestBuy_RollsBackWhenInventoryIsFull(t *testing.T) {
	f := newFixture(t, shop.Config{})
	ctx := context.Background()

	item, err := f.svc.AddItem(ctx, 0, models.Item{ItemID: "stone", Quantity: 64, PriceBuy: 10, Stock: 500})
	require.NoError(t, err)

	// Two slots of 64: the third lot does not fit.
	_, err = f.svc.Buy(ctx, shop.TradeRequest{Item: item.ID, Player: alice, Multiplier: 2})
	require.NoError(t, err)

	_, err = f.svc.Buy(ctx, shop.TradeRequest{Item: item.ID, Player: alice, Multiplier: 1})
	assert.ErrorIs(t, err, inventory.ErrInventoryFull)

	assert.Equal(t, 80.0, f.balance(t, alice, ecomodels.CurrencyCoins))
	got, err := f.svc.GetItem(ctx, 0, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 372, got.Stock)

	var entries int64
	require.NoError(t, f.db.Model(&ecomodels.LedgerEntry{}).Where("account_uuid = ?", alice).Count(&entries).Error)
	assert.Equal(t, int64(2), entries)
}

func TestBuy_InsufficientFundsChangesNothing(t *testing.T) {
	f := newFixture(t, shop.Config{})
	ctx := context.Background()

	item, err := f.svc.AddItem(ctx, 0, models.Item{ItemID: "gem", Quantity: 1, PriceBuy: 5, UseCash: true, Stock: 2})
	require.NoError(t, err)

	_, err = f.svc.Buy(ctx, shop.TradeRequest{Item: item.ID, Player: alice, Multiplier: 1})
	assert.ErrorIs(t, err, economy.ErrInsufficientFunds)

	got, err := f.svc.GetItem(ctx, 0, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)
	slots, err := f.inv.Load(f.db, alice)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestBuy_CommandItem(t *testing.T) {
	f := newFixture(t, shop.Config{})
	ctx := context.Background()

	item, err := f.svc.AddItem(ctx, 0, models.Item{Command: "rank {player} vip {quantity}", Quantity: 3, PriceBuy: 20, Stock: models.Unlimited})
	require.NoError(t, err)

	receipt, err := f.svc.Buy(ctx, shop.TradeRequest{Item: item.ID, Player: alice, Multiplier: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"rank " + alice + " vip 3", "rank " + alice + " vip 3"}, receipt.Commands)
	assert.Equal(t, models.Unlimited, receipt.Stock)

	slots, err := f.inv.Load(f.db, alice)
	require.NoError(t, err)
	assert.Empty(t, slots)

	cmds, err := f.svc.PendingCommands(ctx, 10)
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, alice, cmds[0].PlayerUUID)

	require.NoError(t, f.svc.AckCommand(ctx, cmds[0].ID))
	assert.ErrorIs(t, f.svc.AckCommand(ctx, cmds[0].ID), shop.ErrCommandNotFound)

	cmds, err = f.svc.PendingCommands(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, cmds, 1)

	_, err = f.svc.Sell(ctx, shop.TradeRequest{Item: item.ID, Player: alice, Multiplier: 1})
	assert.ErrorIs(t, err, shop.ErrNotSellable)
}

func TestSell(t *testing.T) {
	f := newFixture(t, shop.Config{})
	ctx := context.Background()

	item, err := f.svc.AddItem(ctx, 0, models.Item{ItemID: "wheat", Quantity: 10, PriceSell: 1.25, Stock: 0})
	require.NoError(t, err)

	_, err = f.svc.Buy(ctx, shop.TradeRequest{Item: item.ID, Player: alice, Multiplier: 1})
	assert.ErrorIs(t, err, shop.ErrNotBuyable)

	_, err = f.svc.Sell(ctx, shop.TradeRequest{Item: item.ID, Player: alice, Multiplier: 1})
	assert.ErrorIs(t, err, inventory.ErrNotEnoughItems)

	require.NoError(t, f.db.Transaction(func(tx *gorm.DB) error {
		return f.inv.Give(tx, alice, invmodels.Stack{ItemID: "wheat", Quantity: 25})
	}))

	receipt, err := f.svc.Sell(ctx, shop.TradeRequest{Item: item.ID, Player: alice, Multiplier: 2})
	require.NoError(t, err)
	assert.Equal(t, 2.5, receipt.Amount)
	assert.Equal(t, 102.5, receipt.Balance)
	assert.Equal(t, 20, receipt.Stock)

	n, err := f.inv.Count(f.db, alice, "wheat")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestTrade_IdempotencyKey(t *testing.T) {
	db := dbtest.New(t, allModels()...)
	guard := &mocks.Guard{}
	svc := shop.NewService(db, economy.NewLedger(economy.Config{StartingBalance: 100}),
		inventory.New(inventory.Config{Slots: 4, MaxStack: 64}), guard, shop.Config{}, zap.NewNop())
	require.NoError(t, svc.EnsureGlobal(context.Background()))
	ctx := context.Background()

	item, err := svc.AddItem(ctx, 0, models.Item{ItemID: "stone", Quantity: 1, PriceBuy: 1, Stock: models.Unlimited})
	require.NoError(t, err)

	guard.On("Acquire", mock.Anything, "shop:k1").Return(true, nil).Once()
	_, err = svc.Buy(ctx, shop.TradeRequest{Item: item.ID, Player: alice, Multiplier: 1, IdempotencyKey: "k1"})
	require.NoError(t, err)

	guard.On("Acquire", mock.Anything, "shop:k1").Return(false, nil).Once()
	_, err = svc.Buy(ctx, shop.TradeRequest{Item: item.ID, Player: alice, Multiplier: 1, IdempotencyKey: "k1"})
	assert.ErrorIs(t, err, shop.ErrDuplicateRequest)

	// A failed trade frees its key.
	guard.On("Acquire", mock.Anything, "shop:k2").Return(true, nil).Once()
	guard.On("Release", mock.Anything, "shop:k2").Return(nil).Once()
	_, err = svc.Buy(ctx, shop.TradeRequest{Item: item.ID, Player: alice, Multiplier: 1000, IdempotencyKey: "k2"})
	assert.ErrorIs(t, err, shop.ErrInvalidMultiplier)

	guard.AssertExpectations(t)
	assert.Equal(t, 99.0, balanceOf(t, db, alice))
}
