package reconcile

import (
	"context"
	"errors"
)

// ErrNothingToRepair is returned by a Mutator when the live data already agrees
// and nothing was written. ApplyPlan does not count such actions as executed.
var ErrNothingToRepair = errors.New("nothing to repair")

// Adapter defines the interface for model-specific reconciliation logic.
// Each adapter implements how to load, index, and compare data for a specific model.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "accounts").
	Name() string

	// LoadDBIndex loads all live rows and returns them indexed by entity key.
	// Implementations should use batch queries to load minimal columns efficiently.
	LoadDBIndex(ctx context.Context) (map[string]DBItem, error)

	// LoadLedgerIndex aggregates the ledger per entity key.
	LoadLedgerIndex(ctx context.Context) (map[string]LedgerItem, error)

	// LoadSnapshotIndex loads the latest snapshot indexed by entity key.
	// An adapter with no snapshot available returns an empty index.
	LoadSnapshotIndex(ctx context.Context) (map[string]SnapshotItem, error)

	// CompareLedger compares a live row with its ledger aggregate and returns
	// a list of mismatch descriptions. Both items are non-nil.
	CompareLedger(dbItem DBItem, ledgerItem LedgerItem) []string

	// CompareSnapshot compares a live row with its snapshot copy. Both items are non-nil.
	CompareSnapshot(dbItem DBItem, snapItem SnapshotItem) []string

	// QueryDB looks up one live row. Returns nil if no match is found.
	QueryDB(ctx context.Context, query Query) (DBItem, error)

	// QueryLedger aggregates the ledger for one entity. Returns nil if it has no rows.
	QueryLedger(ctx context.Context, query Query) (LedgerItem, error)

	// QuerySnapshot looks up one entity in the latest snapshot. Returns nil if absent.
	// This may still require loading the whole snapshot, so cached indices are
	// preferred for repeated queries.
	QuerySnapshot(ctx context.Context, query Query) (SnapshotItem, error)

	// GetMetadata returns model-specific metadata for the entity.
	GetMetadata(dbItem DBItem, ledgerItem LedgerItem) map[string]string
}

// Mutator is implemented by adapters that can repair what a plan finds.
type Mutator interface {
	// SyncDB rewrites the live row for key from the ledger aggregate.
	// ledgerItem is the planned value; implementations should re-read the ledger
	// under lock since it may have moved since the plan was built.
	SyncDB(ctx context.Context, key string, ledgerItem LedgerItem) error

	// BackfillLedger writes ledger rows so the ledger agrees with the live row.
	BackfillLedger(ctx context.Context, key string, dbItem DBItem) error
}
