package reconcile

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAdapter indexes plain float64 balances by key.
type mockAdapter struct {
	name       string
	dbIndex    map[string]DBItem
	ledger     map[string]LedgerItem
	snapshot   map[string]SnapshotItem
	dbErr      error
	ledgerErr  error
	snapErr    error
	loads      atomic.Int32
	queryCalls atomic.Int32
}

func (m *mockAdapter) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *mockAdapter) LoadDBIndex(ctx context.Context) (map[string]DBItem, error) {
	m.loads.Add(1)
	return m.dbIndex, m.dbErr
}

func (m *mockAdapter) LoadLedgerIndex(ctx context.Context) (map[string]LedgerItem, error) {
	return m.ledger, m.ledgerErr
}

func (m *mockAdapter) LoadSnapshotIndex(ctx context.Context) (map[string]SnapshotItem, error) {
	return m.snapshot, m.snapErr
}

func (m *mockAdapter) CompareLedger(dbItem DBItem, ledgerItem LedgerItem) []string {
	if dbItem.(float64) != ledgerItem.(float64) {
		return []string{fmt.Sprintf("coins: ledger=%.2f db=%.2f", ledgerItem, dbItem)}
	}
	return nil
}

func (m *mockAdapter) CompareSnapshot(dbItem DBItem, snapItem SnapshotItem) []string {
	if dbItem.(float64) != snapItem.(float64) {
		return []string{fmt.Sprintf("coins: snapshot=%.2f db=%.2f", snapItem, dbItem)}
	}
	return nil
}

func (m *mockAdapter) QueryDB(ctx context.Context, query Query) (DBItem, error) {
	m.queryCalls.Add(1)
	return m.dbIndex[query.ID], nil
}

func (m *mockAdapter) QueryLedger(ctx context.Context, query Query) (LedgerItem, error) {
	return m.ledger[query.ID], nil
}

func (m *mockAdapter) QuerySnapshot(ctx context.Context, query Query) (SnapshotItem, error) {
	return m.snapshot[query.ID], nil
}

func (m *mockAdapter) GetMetadata(dbItem DBItem, ledgerItem LedgerItem) map[string]string {
	return nil
}

func TestBuildCache_ErrorHandling(t *testing.T) {
	tests := []struct {
		name      string
		adapter   *mockAdapter
		expectErr string
	}{
		{name: "DB load error", adapter: &mockAdapter{dbErr: fmt.Errorf("db error")}, expectErr: "db error"},
		{name: "Ledger load error", adapter: &mockAdapter{ledgerErr: fmt.Errorf("ledger error")}, expectErr: "ledger error"},
		{name: "Snapshot load error", adapter: &mockAdapter{snapErr: fmt.Errorf("snapshot error")}, expectErr: "snapshot error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildCache(context.Background(), &Spec{Adapter: tt.adapter})
			assert.ErrorContains(t, err, tt.expectErr)
		})
	}
}

func TestReconcileAll_PresenceFlags(t *testing.T) {
	adapter := &mockAdapter{
		dbIndex:  map[string]DBItem{"a": 10.0, "b": 5.0},
		ledger:   map[string]LedgerItem{"a": 10.0, "c": 7.0},
		snapshot: map[string]SnapshotItem{"a": 10.0, "b": 5.0, "c": 7.0},
	}

	results, err := ReconcileAll(context.Background(), &Spec{Adapter: adapter})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Sorted by key.
	assert.Equal(t, "a", results[0].ID)
	assert.True(t, results[0].DBPresent && results[0].LedgerPresent && results[0].SnapshotPresent)
	assert.Empty(t, results[0].Mismatch)

	assert.Equal(t, "b", results[1].ID)
	assert.True(t, results[1].DBPresent)
	assert.False(t, results[1].LedgerPresent)

	assert.Equal(t, "c", results[2].ID)
	assert.False(t, results[2].DBPresent)
	assert.True(t, results[2].LedgerPresent)
}

func TestReconcileAll_MismatchAndDrift(t *testing.T) {
	adapter := &mockAdapter{
		dbIndex:  map[string]DBItem{"a": 12.0},
		ledger:   map[string]LedgerItem{"a": 10.0},
		snapshot: map[string]SnapshotItem{"a": 8.0},
	}

	results, err := ReconcileAll(context.Background(), &Spec{Adapter: adapter})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"coins: ledger=10.00 db=12.00"}, results[0].Mismatch)
	assert.Equal(t, []string{"coins: snapshot=8.00 db=12.00"}, results[0].Drift)
}

func TestCache_Hit(t *testing.T) {
	adapter := &mockAdapter{name: "cache-hit", dbIndex: map[string]DBItem{"a": 1.0}}
	spec := &Spec{Adapter: adapter, CacheTTL: time.Minute}
	InvalidateCache(spec)
	t.Cleanup(func() { InvalidateCache(spec) })

	for i := 0; i < 3; i++ {
		_, err := GetOrBuildCache(context.Background(), spec)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), adapter.loads.Load())

	InvalidateCache(spec)
	_, err := GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, int32(2), adapter.loads.Load())
}

func TestCache_Expiration(t *testing.T) {
	adapter := &mockAdapter{name: "cache-expiry"}
	spec := &Spec{Adapter: adapter, CacheTTL: 10 * time.Millisecond}
	InvalidateCache(spec)
	t.Cleanup(func() { InvalidateCache(spec) })

	cache, err := GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)
	assert.False(t, cache.IsExpired())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, cache.IsExpired())

	_, err = GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, int32(2), adapter.loads.Load())
}

func TestCache_DisabledIsNeverStored(t *testing.T) {
	adapter := &mockAdapter{name: "cache-off"}
	spec := &Spec{Adapter: adapter}

	for i := 0; i < 2; i++ {
		_, err := GetOrBuildCache(context.Background(), spec)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), adapter.loads.Load())
}

func TestReconcileOne_WithCache(t *testing.T) {
	adapter := &mockAdapter{
		name:    "one-cached",
		dbIndex: map[string]DBItem{"a": 3.0},
		ledger:  map[string]LedgerItem{"a": 2.0},
	}
	spec := &Spec{Adapter: adapter, CacheTTL: time.Minute}
	InvalidateCache(spec)
	t.Cleanup(func() { InvalidateCache(spec) })

	result, err := ReconcileOne(context.Background(), spec, Query{ID: "a"})
	require.NoError(t, err)
	assert.True(t, result.DBPresent)
	assert.Len(t, result.Mismatch, 1)
	assert.Equal(t, int32(0), adapter.queryCalls.Load())

	missing, err := ReconcileOne(context.Background(), spec, Query{ID: "zzz"})
	require.NoError(t, err)
	assert.False(t, missing.DBPresent || missing.LedgerPresent || missing.SnapshotPresent)
	assert.Equal(t, int32(1), adapter.loads.Load())
}

func TestReconcileOne_TargetedQueries(t *testing.T) {
	adapter := &mockAdapter{
		dbIndex:  map[string]DBItem{"a": 3.0},
		ledger:   map[string]LedgerItem{"a": 3.0},
		snapshot: map[string]SnapshotItem{},
	}

	result, err := ReconcileOne(context.Background(), &Spec{Adapter: adapter}, Query{ID: "a"})
	require.NoError(t, err)
	assert.True(t, result.DBPresent)
	assert.True(t, result.LedgerPresent)
	assert.False(t, result.SnapshotPresent)
	assert.Empty(t, result.Mismatch)
	assert.Equal(t, int32(1), adapter.queryCalls.Load())
	assert.Equal(t, int32(0), adapter.loads.Load())
}
