package economy_test

import (
	"context"
	"testing"

	"economy-manager/core/database/dbtest"
	"economy-manager/feature/economy"
	"economy-manager/feature/economy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	alice = "11111111-1111-1111-1111-111111111111"
	bob   = "22222222-2222-2222-2222-222222222222"
)

func newService(t *testing.T, cfg economy.Config) (*economy.Service, *gorm.DB) {
	db := dbtest.New(t, models.All()...)
	return economy.NewService(db, cfg, zap.NewNop()), db
}

func ledgerSum(t *testing.T, db *gorm.DB, id, currency string) float64 {
	var sum float64
	err := db.Model(&models.LedgerEntry{}).
		Where("account_uuid = ? AND currency = ?", id, currency).
		Select("COALESCE(SUM(delta), 0)").Scan(&sum).Error
	require.NoError(t, err)
	return sum
}

func TestGet_OpensAccount(t *testing.T) {
	svc, db := newService(t, economy.Config{StartingBalance: 100})
	ctx := context.Background()

	acc, err := svc.Get(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 100.0, acc.Coins)
	assert.Equal(t, 0.0, acc.Cash)
	assert.InDelta(t, 100.0, ledgerSum(t, db, alice, models.CurrencyCoins), 0.001)

	// Second read does not credit again.
	acc, err = svc.Get(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 100.0, acc.Coins)
	assert.InDelta(t, 100.0, ledgerSum(t, db, alice, models.CurrencyCoins), 0.001)

	_, err = svc.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, economy.ErrInvalidUUID)
}

func TestAddSubtractSet(t *testing.T) {
	svc, db := newService(t, economy.Config{StartingBalance: 0})
	ctx := context.Background()

	acc, err := svc.Add(ctx, alice, models.CurrencyCoins, 50.556, "")
	require.NoError(t, err)
	assert.Equal(t, 50.56, acc.Coins)

	acc, err = svc.Subtract(ctx, alice, models.CurrencyCoins, 20, "")
	require.NoError(t, err)
	assert.Equal(t, 30.56, acc.Coins)

	_, err = svc.Subtract(ctx, alice, models.CurrencyCoins, 1000, "")
	assert.ErrorIs(t, err, economy.ErrInsufficientFunds)

	acc, err = svc.Get(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 30.56, acc.Coins, "failed subtract must not change the balance")

	acc, err = svc.Set(ctx, alice, models.CurrencyCash, 7, "")
	require.NoError(t, err)
	assert.Equal(t, 7.0, acc.Cash)

	acc, err = svc.Set(ctx, alice, models.CurrencyCash, 2, "")
	require.NoError(t, err)
	assert.Equal(t, 2.0, acc.Cash)

	_, err = svc.Set(ctx, alice, models.CurrencyCash, -1, "")
	assert.ErrorIs(t, err, economy.ErrInvalidAmount)

	_, err = svc.Add(ctx, alice, "gems", 1, "")
	assert.ErrorIs(t, err, economy.ErrInvalidCurrency)

	_, err = svc.Add(ctx, alice, models.CurrencyCoins, 0, "")
	assert.ErrorIs(t, err, economy.ErrInvalidAmount)

	assert.InDelta(t, 30.56, ledgerSum(t, db, alice, models.CurrencyCoins), 0.001)
	assert.InDelta(t, 2.0, ledgerSum(t, db, alice, models.CurrencyCash), 0.001)
}

func TestMaxBalance(t *testing.T) {
	svc, _ := newService(t, economy.Config{StartingBalance: 0, MaxBalance: 100})
	ctx := context.Background()

	_, err := svc.Add(ctx, alice, models.CurrencyCoins, 100, "")
	require.NoError(t, err)

	_, err = svc.Add(ctx, alice, models.CurrencyCoins, 0.01, "")
	assert.ErrorIs(t, err, economy.ErrBalanceLimit)

	_, err = svc.Set(ctx, alice, models.CurrencyCoins, 150, "")
	assert.ErrorIs(t, err, economy.ErrBalanceLimit)
}

func TestTransfer(t *testing.T) {
	svc, db := newService(t, economy.Config{StartingBalance: 100})
	ctx := context.Background()

	from, to, err := svc.Transfer(ctx, alice, bob, models.CurrencyCoins, 40)
	require.NoError(t, err)
	assert.Equal(t, 60.0, from.Coins)
	assert.Equal(t, 140.0, to.Coins)

	_, _, err = svc.Transfer(ctx, alice, bob, models.CurrencyCoins, 61)
	assert.ErrorIs(t, err, economy.ErrInsufficientFunds)

	_, _, err = svc.Transfer(ctx, alice, alice, models.CurrencyCoins, 1)
	assert.ErrorIs(t, err, economy.ErrSelfTransfer)

	// The failed transfer left both sides untouched.
	a, _ := svc.Get(ctx, alice)
	b, _ := svc.Get(ctx, bob)
	assert.Equal(t, 60.0, a.Coins)
	assert.Equal(t, 140.0, b.Coins)
	assert.InDelta(t, 60.0, ledgerSum(t, db, alice, models.CurrencyCoins), 0.001)
	assert.InDelta(t, 140.0, ledgerSum(t, db, bob, models.CurrencyCoins), 0.001)
}

func TestTopAndHistory(t *testing.T) {
	svc, _ := newService(t, economy.Config{StartingBalance: 10})
	ctx := context.Background()

	_, err := svc.Add(ctx, bob, models.CurrencyCoins, 5, "quest")
	require.NoError(t, err)
	_, err = svc.Get(ctx, alice)
	require.NoError(t, err)

	top, err := svc.Top(ctx, models.CurrencyCoins, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, bob, top[0].UUID)

	_, err = svc.Top(ctx, "gems", 10)
	assert.ErrorIs(t, err, economy.ErrInvalidCurrency)

	history, err := svc.History(ctx, bob, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "quest", history[0].Reason)
	assert.Equal(t, "account_open", history[1].Reason)
}

func TestSummary(t *testing.T) {
	svc, _ := newService(t, economy.Config{StartingBalance: 1234.5, CoinSymbol: "$", CashSymbol: "C"})

	summary, err := svc.Summary(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, "$1,234.50", summary.CoinsText)
	assert.Equal(t, "C0.00", summary.CashText)
}

func TestGet_ZeroOpeningIsLogged(t *testing.T) {
	svc, _ := newService(t, economy.Config{StartingBalance: 0})
	ctx := context.Background()

	_, err := svc.Get(ctx, alice)
	require.NoError(t, err)
	_, err = svc.Get(ctx, alice)
	require.NoError(t, err)

	history, err := svc.History(ctx, alice, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "account_open", history[0].Reason)
	assert.Zero(t, history[0].Delta)
}
