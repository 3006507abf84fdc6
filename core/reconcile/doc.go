// Package reconcile compares three sources of truth for the same entities: the live
// database rows, the append-only ledger, and the latest snapshot.
//
// # Architecture
//
// 1. Engine: builds the union of keys from all sources, detects presence/absence,
//    and asks the adapter for mismatches (live vs ledger) and drift (live vs snapshot).
//
// 2. Adapter: model-specific loading, comparison and targeted queries. Adapters that
//    also implement Mutator can repair what a plan finds.
//
// 3. Cache: TTL-based caching layer with singleflight stampede protection, used by
//    targeted lookups and plans.
//
// # Plans
//
// The ledger is authoritative. A live row that disagrees with its ledger, or a ledger
// with no live row, plans a sync_db action. A live row the ledger never saw plans a
// backfill_ledger action. Drift against the snapshot is reported and never repaired.
// ApplyPlan runs nothing unless the options are confirmed and not a dry run.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Adapter:  audit.NewAdapter(db, ledger, snapshots),
//	    CacheTTL: 5 * time.Minute,
//	}
//
//	results, err := reconcile.ReconcileAll(ctx, spec)
//	result, err := reconcile.ReconcileOne(ctx, spec, reconcile.Query{ID: uuid})
//
//	opts := reconcile.ReconcileOptions{DoSync: true, Confirmed: true}
//	plan, executed, err := reconcile.ReconcileAndApply(ctx, spec, opts)
package reconcile
