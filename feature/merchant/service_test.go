package merchant_test

import (
	"context"
	"testing"

	"economy-manager/core/database/dbtest"
	"economy-manager/feature/economy"
	ecomodels "economy-manager/feature/economy/models"
	"economy-manager/feature/inventory"
	"economy-manager/feature/merchant"
	"economy-manager/feature/merchant/models"
	"economy-manager/feature/shop"
	shopmodels "economy-manager/feature/shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newServices(t *testing.T) (*merchant.Service, *shop.Service) {
	all := append([]any{}, ecomodels.All()...)
	all = append(all, shopmodels.All()...)
	all = append(all, models.All()...)
	db := dbtest.New(t, all...)

	shops := shop.NewService(db, economy.NewLedger(economy.Config{}), inventory.New(inventory.Config{}), nil, shop.Config{}, zap.NewNop())
	require.NoError(t, shops.EnsureGlobal(context.Background()))
	return merchant.NewService(db, shops, zap.NewNop()), shops
}

var spawn = merchant.Position{World: "overworld", X: 10, Y: 64, Z: -3, Yaw: 90}

func TestCreate(t *testing.T) {
	svc, shops := newServices(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, merchant.CreateRequest{Name: "Smith", Position: spawn})
	require.NoError(t, err)
	assert.Equal(t, 1, m.ShopNumber)
	created, err := shops.GetShop(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Smith", created.Name)

	second, err := svc.Create(ctx, merchant.CreateRequest{Name: "Apprentice", Position: spawn, ShopNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, second.ShopNumber)

	_, err = svc.Create(ctx, merchant.CreateRequest{Name: "Ghost", Position: spawn, ShopNumber: 7})
	assert.ErrorIs(t, err, shop.ErrShopNotFound)
	_, err = svc.Create(ctx, merchant.CreateRequest{Name: "Nowhere"})
	assert.ErrorIs(t, err, merchant.ErrInvalidMerchant)
	_, err = svc.Create(ctx, merchant.CreateRequest{Name: "Neg", Position: spawn, ShopNumber: -1})
	assert.ErrorIs(t, err, merchant.ErrInvalidShop)
}

func TestBoundShopCannotBeDeleted(t *testing.T) {
	svc, shops := newServices(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, merchant.CreateRequest{Name: "Smith", Position: spawn})
	require.NoError(t, err)

	assert.ErrorIs(t, shops.DeleteShop(ctx, m.ShopNumber), merchant.ErrShopBound)

	other, err := shops.CreateShop(ctx, 0, "Other")
	require.NoError(t, err)
	_, err = svc.Rebind(ctx, m.ID, 0)
	assert.ErrorIs(t, err, merchant.ErrInvalidShop)
	_, err = svc.Rebind(ctx, m.ID, 99)
	assert.ErrorIs(t, err, shop.ErrShopNotFound)
	m, err = svc.Rebind(ctx, m.ID, other.Number)
	require.NoError(t, err)
	assert.Equal(t, other.Number, m.ShopNumber)

	require.NoError(t, shops.DeleteShop(ctx, 1))

	require.NoError(t, svc.Delete(ctx, m.ID))
	assert.ErrorIs(t, svc.Delete(ctx, m.ID), merchant.ErrMerchantNotFound)
	require.NoError(t, shops.DeleteShop(ctx, other.Number))
}

func TestMoveAndList(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, merchant.CreateRequest{Name: "A", Position: spawn})
	require.NoError(t, err)
	_, err = svc.Create(ctx, merchant.CreateRequest{Name: "B", Position: merchant.Position{World: "nether"}})
	require.NoError(t, err)

	moved, err := svc.Move(ctx, a.ID, merchant.Position{World: "nether", X: 1, Y: 2, Z: 3})
	require.NoError(t, err)
	assert.Equal(t, "nether", moved.World)
	assert.Equal(t, 2.0, moved.Y)

	_, err = svc.Move(ctx, a.ID, merchant.Position{})
	assert.ErrorIs(t, err, merchant.ErrInvalidMerchant)
	_, err = svc.Move(ctx, 42, spawn)
	assert.ErrorIs(t, err, merchant.ErrMerchantNotFound)

	nether, err := svc.List(ctx, "nether")
	require.NoError(t, err)
	assert.Len(t, nether, 2)
	overworld, err := svc.List(ctx, "overworld")
	require.NoError(t, err)
	assert.Empty(t, overworld)

	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}
