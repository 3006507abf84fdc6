// Package snapshot backs up the economy to object storage.
//
// A snapshot is one JSON document holding every account, admin shop, tab, shop item,
// player shop and listing, compressed with zstd and stored as
// <prefix>/<unix-nanos>.json.zst. The name of a snapshot is its unix-nanos part, so
// names sort in creation order.
//
// Snapshots are read back by the ledger audit, which compares live balances against
// the latest one.
package snapshot
