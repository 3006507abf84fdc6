package reconcile

import "time"

// ReconcileResult represents the reconciliation output for a single entity.
// It contains presence flags for each source and any detected mismatches.
type ReconcileResult struct {
	// ID is the unique identifier for the entity.
	ID string `json:"id"`

	// DBPresent indicates whether the entity exists in the live tables.
	DBPresent bool `json:"db_present"`

	// LedgerPresent indicates whether the entity has ledger rows.
	LedgerPresent bool `json:"ledger_present"`

	// SnapshotPresent indicates whether the entity exists in the latest snapshot.
	SnapshotPresent bool `json:"snapshot_present"`

	// Mismatch contains descriptions of field mismatches between the DB and the ledger.
	// Each string describes a specific mismatch, e.g., "coins: ledger=10.00 db=12.00".
	Mismatch []string `json:"mismatch"`

	// Drift lists differences between the DB and the latest snapshot.
	// Drift is expected after a snapshot and never triggers actions.
	Drift []string `json:"drift,omitempty"`

	// Metadata contains model-specific arbitrary data.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Query represents a search query for targeted reconciliation.
type Query struct {
	// ID is the entity ID to search for.
	ID string
}

// Spec defines the configuration for a reconciliation operation.
type Spec struct {
	// Adapter provides model-specific reconciliation logic.
	Adapter Adapter

	// CacheTTL is the time-to-live for cached indices.
	// If zero, caching is disabled.
	CacheTTL time.Duration
}

// CacheKey returns a unique key for caching based on spec parameters.
func (s *Spec) CacheKey() string {
	return s.Adapter.Name()
}

// DBItem represents a live database entity.
// Adapters define the concrete type.
type DBItem any

// LedgerItem represents what the ledger says an entity should be.
type LedgerItem any

// SnapshotItem represents an entity as stored in a snapshot.
type SnapshotItem any

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionSyncDB rewrites the live row from the ledger.
	ActionSyncDB ActionType = "sync_db"
	// ActionBackfillLedger writes an opening ledger entry for a row the ledger never saw.
	ActionBackfillLedger ActionType = "backfill_ledger"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the entity identifier.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// LedgerItem stores the ledger source for sync actions.
	LedgerItem LedgerItem `json:"-"`

	// DBItem stores the live row for backfill actions.
	DBItem DBItem `json:"-"`
}

// ReconcilePlan contains reconciliation results and planned actions.
type ReconcilePlan struct {
	// Results contains per-entity reconciliation data.
	Results []ReconcileResult `json:"results"`

	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalItems is the total number of unique entities.
	TotalItems int `json:"total_items"`

	// MissingDB counts entities with ledger rows but no live row.
	MissingDB int `json:"missing_db"`

	// MissingLedger counts live rows with no ledger rows.
	MissingLedger int `json:"missing_ledger"`

	// MissingSnapshot counts entities absent from the latest snapshot.
	MissingSnapshot int `json:"missing_snapshot"`

	// Mismatches counts entities whose live row disagrees with the ledger.
	Mismatches int `json:"mismatches"`

	// Drifted counts entities that changed since the latest snapshot.
	Drifted int `json:"drifted"`

	// SyncActions counts planned sync actions.
	SyncActions int `json:"sync_actions"`

	// BackfillActions counts planned backfill actions.
	BackfillActions int `json:"backfill_actions"`
}

// ReconcileOptions controls which repairs are planned and whether they run.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoSync enables rewriting live rows from the ledger.
	DoSync bool

	// DoBackfill enables opening ledger entries for rows the ledger never saw.
	DoBackfill bool

	// Confirmed indicates the operator has confirmed the repairs.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
