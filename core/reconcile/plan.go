package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ReconcileWithPlan performs reconciliation and returns a plan with results and actions.
// It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, spec *Spec, opts ReconcileOptions) (*ReconcilePlan, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}

	results := reconcileFromCache(cache, spec.Adapter)
	summary, actions := buildPlanFromResults(results, cache, opts)

	return &ReconcilePlan{
		Results: results,
		Actions: actions,
		Summary: summary,
	}, nil
}

// ApplyPlan executes the actions in a reconcile plan.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, spec *Spec, plan *ReconcilePlan, opts ReconcileOptions) (executed int, err error) {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}
	if len(plan.Actions) == 0 {
		return 0, nil
	}

	mutator, ok := spec.Adapter.(Mutator)
	if !ok {
		return 0, fmt.Errorf("adapter %s does not implement Mutator interface", spec.Adapter.Name())
	}
	// Whatever ran, the cached indices are stale now.
	defer InvalidateCache(spec)

	var (
		backfills []Action
		syncs     []Action
	)
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionBackfillLedger:
			backfills = append(backfills, action)
		case ActionSyncDB:
			syncs = append(syncs, action)
		}
	}

	// Backfills first so a later sync of the same key sees a complete ledger.
	for _, action := range backfills {
		err := mutator.BackfillLedger(ctx, action.Key, action.DBItem)
		if errors.Is(err, ErrNothingToRepair) {
			continue
		}
		if err != nil {
			return executed, fmt.Errorf("failed to backfill ledger for %s: %w", action.Key, err)
		}
		executed++
	}

	if len(syncs) > 0 {
		// SyncDBBatch reports how many rows it actually rewrote.
		type SyncBatcher interface {
			SyncDBBatch(ctx context.Context, actions []Action) (int, error)
		}
		if batcher, ok := mutator.(SyncBatcher); ok {
			n, err := batcher.SyncDBBatch(ctx, syncs)
			if err != nil {
				return executed, fmt.Errorf("failed to batch sync DB: %w", err)
			}
			executed += n
		} else {
			for _, action := range syncs {
				err := mutator.SyncDB(ctx, action.Key, action.LedgerItem)
				if errors.Is(err, ErrNothingToRepair) {
					continue
				}
				if err != nil {
					return executed, fmt.Errorf("failed to sync key %s: %w", action.Key, err)
				}
				executed++
			}
		}
	}

	return executed, nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies actions.
// It returns the plan, number of actions executed, and any error.
func ReconcileAndApply(ctx context.Context, spec *Spec, opts ReconcileOptions) (*ReconcilePlan, int, error) {
	plan, err := ReconcileWithPlan(ctx, spec, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, spec, plan, opts)
	return plan, executed, err
}

// buildPlanFromResults generates a summary and action plan from reconciliation results.
func buildPlanFromResults(results []ReconcileResult, cache *ReconcileCache, opts ReconcileOptions) (PlanSummary, []Action) {
	var summary PlanSummary
	var actions []Action

	summary.TotalItems = len(results)

	for _, result := range results {
		if result.LedgerPresent && !result.DBPresent {
			summary.MissingDB++
		}
		if result.DBPresent && !result.LedgerPresent {
			summary.MissingLedger++
		}
		if !result.SnapshotPresent {
			summary.MissingSnapshot++
		}
		if len(result.Mismatch) > 0 {
			summary.Mismatches++
		}
		if len(result.Drift) > 0 {
			summary.Drifted++
		}

		switch {
		case result.DBPresent && !result.LedgerPresent:
			if opts.DoBackfill {
				actions = append(actions, Action{
					Type:   ActionBackfillLedger,
					Key:    result.ID,
					Reason: "no ledger entries",
					DBItem: cache.DBIndex[result.ID],
				})
				summary.BackfillActions++
			}
		case result.LedgerPresent && (!result.DBPresent || len(result.Mismatch) > 0):
			if opts.DoSync {
				actions = append(actions, Action{
					Type:       ActionSyncDB,
					Key:        result.ID,
					Reason:     syncReason(result),
					LedgerItem: cache.LedgerIndex[result.ID],
				})
				summary.SyncActions++
			}
		}
	}

	return summary, actions
}

// syncReason builds a reason string for why a live row should be rewritten.
func syncReason(result ReconcileResult) string {
	if !result.DBPresent {
		return "missing in: database"
	}
	return "mismatch: " + strings.Join(result.Mismatch, ", ")
}
