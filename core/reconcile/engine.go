package reconcile

import (
	"context"
	"sort"
)

// ReconcileAll performs a full reconciliation across all entities.
// It builds indices from all three sources, computes the union of keys,
// and returns a result for each key indicating presence and mismatches.
func ReconcileAll(ctx context.Context, spec *Spec) ([]ReconcileResult, error) {
	cache, err := BuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	return reconcileFromCache(cache, spec.Adapter), nil
}

// ReconcileOne performs a targeted reconciliation for a single entity.
// It uses cached indices if available, or performs targeted queries.
func ReconcileOne(ctx context.Context, spec *Spec, query Query) (*ReconcileResult, error) {
	if spec.CacheTTL > 0 {
		cache, err := GetOrBuildCache(ctx, spec)
		if err != nil {
			return nil, err
		}
		result := buildResult(query.ID, cache.DBIndex, cache.LedgerIndex, cache.SnapshotIndex, spec.Adapter)
		return &result, nil
	}

	// Fast path without cache: use targeted queries
	dbItem, err := spec.Adapter.QueryDB(ctx, query)
	if err != nil {
		return nil, err
	}
	ledgerItem, err := spec.Adapter.QueryLedger(ctx, query)
	if err != nil {
		return nil, err
	}
	snapItem, err := spec.Adapter.QuerySnapshot(ctx, query)
	if err != nil {
		return nil, err
	}

	dbIndex := map[string]DBItem{}
	ledgerIndex := map[string]LedgerItem{}
	snapIndex := map[string]SnapshotItem{}
	if dbItem != nil {
		dbIndex[query.ID] = dbItem
	}
	if ledgerItem != nil {
		ledgerIndex[query.ID] = ledgerItem
	}
	if snapItem != nil {
		snapIndex[query.ID] = snapItem
	}

	result := buildResult(query.ID, dbIndex, ledgerIndex, snapIndex, spec.Adapter)
	return &result, nil
}

// reconcileFromCache builds sorted results for the union of every indexed key.
func reconcileFromCache(cache *ReconcileCache, adapter Adapter) []ReconcileResult {
	unionKeys := buildUnion(cache.DBIndex, cache.LedgerIndex, cache.SnapshotIndex)

	results := make([]ReconcileResult, 0, len(unionKeys))
	for key := range unionKeys {
		results = append(results, buildResult(key, cache.DBIndex, cache.LedgerIndex, cache.SnapshotIndex, adapter))
	}

	// Sort results by key for deterministic output
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

// buildUnion creates a union of all keys from the three sources.
func buildUnion(dbIndex map[string]DBItem, ledgerIndex map[string]LedgerItem, snapIndex map[string]SnapshotItem) map[string]struct{} {
	union := make(map[string]struct{}, len(dbIndex))
	for key := range dbIndex {
		union[key] = struct{}{}
	}
	for key := range ledgerIndex {
		union[key] = struct{}{}
	}
	for key := range snapIndex {
		union[key] = struct{}{}
	}
	return union
}

// buildResult creates a ReconcileResult for a single key.
func buildResult(key string, dbIndex map[string]DBItem, ledgerIndex map[string]LedgerItem, snapIndex map[string]SnapshotItem, adapter Adapter) ReconcileResult {
	dbItem, dbPresent := dbIndex[key]
	ledgerItem, ledgerPresent := ledgerIndex[key]
	snapItem, snapPresent := snapIndex[key]

	result := ReconcileResult{
		ID:              key,
		DBPresent:       dbPresent,
		LedgerPresent:   ledgerPresent,
		SnapshotPresent: snapPresent,
		Mismatch:        []string{},
	}

	if dbPresent || ledgerPresent {
		result.Metadata = adapter.GetMetadata(dbItem, ledgerItem)
	}
	if dbPresent && ledgerPresent {
		result.Mismatch = adapter.CompareLedger(dbItem, ledgerItem)
	}
	if dbPresent && snapPresent {
		result.Drift = adapter.CompareSnapshot(dbItem, snapItem)
	}

	return result
}
