// Package audit checks account balances against the ledger and the latest snapshot.
//
// The ledger is the source of truth. A report lists every account whose balance
// disagrees with the sum of its ledger entries, ledger rows for accounts that no longer
// exist, accounts the ledger never saw, and drift since the last snapshot. Repairs
// rewrite balances from the ledger (sync) or write opening entries for balances that
// predate the ledger (backfill), and only run when confirmed.
package audit
