package rewards_test

import (
	"context"
	"testing"

	"economy-manager/core/database/dbtest"
	"economy-manager/feature/economy"
	ecomodels "economy-manager/feature/economy/models"
	"economy-manager/feature/rewards"
	"economy-manager/feature/rewards/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const player = "11111111-1111-1111-1111-111111111111"

func newService(t *testing.T) *rewards.Service {
	all := append([]any{}, ecomodels.All()...)
	db := dbtest.New(t, append(all, models.All()...)...)
	return rewards.NewService(db, economy.NewLedger(economy.Config{}), zap.NewNop())
}

func ptr[T any](v T) *T { return &v }

func TestRules(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	rule, err := svc.CreateRule(ctx, rewards.RuleRequest{Kind: "Block", Target: "diamond_ore", Amount: ptr(2.5)})
	require.NoError(t, err)
	assert.Equal(t, models.KindBlock, rule.Kind)
	assert.Equal(t, ecomodels.CurrencyCoins, rule.Currency)
	assert.True(t, rule.Enabled)

	_, err = svc.CreateRule(ctx, rewards.RuleRequest{Kind: "block", Target: "diamond_ore", Amount: ptr(1.0)})
	assert.ErrorIs(t, err, rewards.ErrRuleExists)
	_, err = svc.CreateRule(ctx, rewards.RuleRequest{Kind: "fish", Target: "cod", Amount: ptr(1.0)})
	assert.ErrorIs(t, err, rewards.ErrInvalidKind)
	_, err = svc.CreateRule(ctx, rewards.RuleRequest{Kind: "block", Target: "dirt"})
	assert.ErrorIs(t, err, rewards.ErrInvalidRule)
	_, err = svc.CreateRule(ctx, rewards.RuleRequest{Kind: "block", Target: "dirt", Amount: ptr(1.0), Currency: ptr("gold")})
	assert.ErrorIs(t, err, economy.ErrInvalidCurrency)

	updated, err := svc.UpdateRule(ctx, rule.ID, rewards.RuleRequest{Currency: ptr("cash"), Enabled: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "cash", updated.Currency)
	assert.False(t, updated.Enabled)
	assert.Equal(t, 2.5, updated.Amount)

	rules, err := svc.ListRules(ctx, "block")
	require.NoError(t, err)
	assert.Len(t, rules, 1)

	require.NoError(t, svc.DeleteRule(ctx, rule.ID))
	assert.ErrorIs(t, svc.DeleteRule(ctx, rule.ID), rewards.ErrRuleNotFound)
	_, err = svc.GetRule(ctx, rule.ID)
	assert.ErrorIs(t, err, rewards.ErrRuleNotFound)
}

func TestTrigger(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.CreateRule(ctx, rewards.RuleRequest{Kind: "monster", Target: "*", Amount: ptr(1.0)})
	require.NoError(t, err)
	_, err = svc.CreateRule(ctx, rewards.RuleRequest{Kind: "monster", Target: "dragon", Amount: ptr(5.0), Currency: ptr("cash")})
	require.NoError(t, err)
	off, err := svc.CreateRule(ctx, rewards.RuleRequest{Kind: "monster", Target: "chicken", Amount: ptr(0.5), Enabled: ptr(false)})
	require.NoError(t, err)

	payout, err := svc.Trigger(ctx, rewards.TriggerRequest{Player: player, Kind: "monster", Target: "zombie", Count: 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, payout.Amount)
	assert.Equal(t, "coins", payout.Currency)
	assert.Equal(t, 3.0, payout.Balance)

	payout, err = svc.Trigger(ctx, rewards.TriggerRequest{Player: player, Kind: "monster", Target: "dragon"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, payout.Amount)
	assert.Equal(t, "cash", payout.Currency)

	// A disabled exact rule does not fall back to the wildcard.
	payout, err = svc.Trigger(ctx, rewards.TriggerRequest{Player: player, Kind: "monster", Target: "chicken"})
	require.NoError(t, err)
	assert.Nil(t, payout.Rule)
	assert.Zero(t, payout.Amount)

	_, err = svc.UpdateRule(ctx, off.ID, rewards.RuleRequest{Enabled: ptr(true)})
	require.NoError(t, err)
	payout, err = svc.Trigger(ctx, rewards.TriggerRequest{Player: player, Kind: "monster", Target: "chicken", Count: 3})
	require.NoError(t, err)
	assert.Equal(t, 1.5, payout.Amount)

	payout, err = svc.Trigger(ctx, rewards.TriggerRequest{Player: player, Kind: "block", Target: "stone"})
	require.NoError(t, err)
	assert.Nil(t, payout.Rule)

	_, err = svc.Trigger(ctx, rewards.TriggerRequest{Player: player, Kind: "monster", Target: "zombie", Count: -1})
	assert.ErrorIs(t, err, rewards.ErrInvalidCount)
	_, err = svc.Trigger(ctx, rewards.TriggerRequest{Player: "nobody", Kind: "monster"})
	assert.ErrorIs(t, err, economy.ErrInvalidUUID)
}
