package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"economy-manager/core/reconcile"
	"economy-manager/feature/economy"
	"economy-manager/feature/economy/models"
	"economy-manager/feature/snapshot"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Balances is an account's holdings in both currencies.
type Balances struct {
	Coins float64 `json:"coins"`
	Cash  float64 `json:"cash"`
}

// LedgerSums is the ledger's view of an account.
type LedgerSums struct {
	Balances
	Entries int64 `json:"entries"`
}

// SnapshotSource provides the newest snapshot.
type SnapshotSource interface {
	Latest(ctx context.Context) (*snapshot.Snapshot, error)
}

// AccountAdapter reconciles account balances against the ledger and the latest snapshot.
type AccountAdapter struct {
	db        *gorm.DB
	ledger    *economy.Ledger
	snapshots SnapshotSource
}

// NewAdapter creates an account adapter. snapshots may be nil.
func NewAdapter(db *gorm.DB, ledger *economy.Ledger, snapshots SnapshotSource) *AccountAdapter {
	return &AccountAdapter{db: db, ledger: ledger, snapshots: snapshots}
}

// Name returns the unique name of this adapter.
func (a *AccountAdapter) Name() string {
	return "accounts"
}

type accountRow struct {
	UUID  string
	Coins float64
	Cash  float64
}

type sumRow struct {
	AccountUUID string
	Currency    string
	Total       float64
	Entries     int64
}

// LoadDBIndex loads every account balance.
func (a *AccountAdapter) LoadDBIndex(ctx context.Context) (map[string]reconcile.DBItem, error) {
	var rows []accountRow
	if err := a.db.WithContext(ctx).Model(&models.Account{}).Select("uuid, coins, cash").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	index := make(map[string]reconcile.DBItem, len(rows))
	for _, r := range rows {
		index[r.UUID] = Balances{Coins: r.Coins, Cash: r.Cash}
	}
	return index, nil
}

// LoadLedgerIndex sums the ledger per account and currency.
func (a *AccountAdapter) LoadLedgerIndex(ctx context.Context) (map[string]reconcile.LedgerItem, error) {
	rows, err := a.sums(ctx, "")
	if err != nil {
		return nil, err
	}

	sums := make(map[string]*LedgerSums)
	for _, r := range rows {
		s, ok := sums[r.AccountUUID]
		if !ok {
			s = &LedgerSums{}
			sums[r.AccountUUID] = s
		}
		addSum(s, r)
	}

	index := make(map[string]reconcile.LedgerItem, len(sums))
	for id, s := range sums {
		index[id] = *s
	}
	return index, nil
}

// LoadSnapshotIndex indexes the balances of the latest snapshot.
func (a *AccountAdapter) LoadSnapshotIndex(ctx context.Context) (map[string]reconcile.SnapshotItem, error) {
	index := make(map[string]reconcile.SnapshotItem)
	snap, err := a.latest(ctx)
	if err != nil || snap == nil {
		return index, err
	}
	for _, acc := range snap.Accounts {
		index[acc.UUID] = Balances{Coins: acc.Coins, Cash: acc.Cash}
	}
	return index, nil
}

// CompareLedger reports each currency whose balance differs from its ledger sum.
func (a *AccountAdapter) CompareLedger(dbItem reconcile.DBItem, ledgerItem reconcile.LedgerItem) []string {
	return compare("ledger", ledgerItem.(LedgerSums).Balances, dbItem.(Balances))
}

// CompareSnapshot reports each currency that moved since the snapshot.
func (a *AccountAdapter) CompareSnapshot(dbItem reconcile.DBItem, snapItem reconcile.SnapshotItem) []string {
	return compare("snapshot", snapItem.(Balances), dbItem.(Balances))
}

// QueryDB loads one account.
func (a *AccountAdapter) QueryDB(ctx context.Context, query reconcile.Query) (reconcile.DBItem, error) {
	var acc models.Account
	err := a.db.WithContext(ctx).Where("uuid = ?", query.ID).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account %s: %w", query.ID, err)
	}
	return Balances{Coins: acc.Coins, Cash: acc.Cash}, nil
}

// QueryLedger sums the ledger of one account.
func (a *AccountAdapter) QueryLedger(ctx context.Context, query reconcile.Query) (reconcile.LedgerItem, error) {
	rows, err := a.sums(ctx, query.ID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	var s LedgerSums
	for _, r := range rows {
		addSum(&s, r)
	}
	return s, nil
}

// QuerySnapshot finds one account in the latest snapshot.
func (a *AccountAdapter) QuerySnapshot(ctx context.Context, query reconcile.Query) (reconcile.SnapshotItem, error) {
	snap, err := a.latest(ctx)
	if err != nil || snap == nil {
		return nil, err
	}
	for _, acc := range snap.Accounts {
		if acc.UUID == query.ID {
			return Balances{Coins: acc.Coins, Cash: acc.Cash}, nil
		}
	}
	return nil, nil
}

// GetMetadata reports the ledger entry count.
func (a *AccountAdapter) GetMetadata(dbItem reconcile.DBItem, ledgerItem reconcile.LedgerItem) map[string]string {
	sums, ok := ledgerItem.(LedgerSums)
	if !ok {
		return nil
	}
	return map[string]string{"ledger_entries": fmt.Sprintf("%d", sums.Entries)}
}

// SyncDB sets the account balances to the ledger sums, creating the account if needed.
// The planned ledgerItem is ignored; the sums are recomputed under the account lock.
func (a *AccountAdapter) SyncDB(ctx context.Context, key string, ledgerItem reconcile.LedgerItem) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		written, err := syncAccount(tx, key)
		if err == nil && !written {
			return reconcile.ErrNothingToRepair
		}
		return err
	})
}

// SyncDBBatch rewrites every account of actions in one transaction and returns how
// many rows changed.
func (a *AccountAdapter) SyncDBBatch(ctx context.Context, actions []reconcile.Action) (int, error) {
	var n int
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n = 0
		for _, action := range actions {
			written, err := syncAccount(tx, action.Key)
			if err != nil {
				return err
			}
			if written {
				n++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// BackfillLedger writes one entry per non-zero balance so the ledger sums match.
// A zero-balance account gets a single zero entry so it stops reporting as unlogged.
func (a *AccountAdapter) BackfillLedger(ctx context.Context, key string, dbItem reconcile.DBItem) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var acc models.Account
		if err := economy.ForUpdate(tx).Where("uuid = ?", key).First(&acc).Error; err != nil {
			return fmt.Errorf("failed to load account %s: %w", key, err)
		}
		var entries int64
		if err := tx.Model(&models.LedgerEntry{}).Where("account_uuid = ?", key).Count(&entries).Error; err != nil {
			return fmt.Errorf("failed to count ledger entries of %s: %w", key, err)
		}
		if entries > 0 {
			return reconcile.ErrNothingToRepair
		}

		if acc.Coins == 0 && acc.Cash == 0 {
			return a.ledger.Record(tx, key, models.CurrencyCoins, 0, 0, "audit_backfill")
		}
		for _, currency := range []string{models.CurrencyCoins, models.CurrencyCash} {
			if bal := acc.Balance(currency); bal != 0 {
				if err := a.ledger.Record(tx, key, currency, bal, bal, "audit_backfill"); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// syncAccount locks the account, sums its ledger inside tx and writes the sums when
// they differ. It reports whether anything was written.
func syncAccount(tx *gorm.DB, key string) (bool, error) {
	var acc models.Account
	err := economy.ForUpdate(tx).Where("uuid = ?", key).First(&acc).Error
	exists := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to load account %s: %w", key, err)
	}

	rows, err := sumLedger(tx, key)
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}
	var sums LedgerSums
	for _, r := range rows {
		addSum(&sums, r)
	}
	coins, cash := economy.Round2(sums.Coins), economy.Round2(sums.Cash)
	if coins < 0 || cash < 0 {
		return false, fmt.Errorf("ledger of %s sums to a negative balance", key)
	}
	if exists && economy.Round2(acc.Coins) == coins && economy.Round2(acc.Cash) == cash {
		return false, nil
	}

	acc = models.Account{UUID: key, Coins: coins, Cash: cash}
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uuid"}},
		DoUpdates: clause.Assignments(map[string]any{"coins": coins, "cash": cash, "updated_at": time.Now()}),
	}).Create(&acc).Error
	if err != nil {
		return false, fmt.Errorf("failed to sync account %s: %w", key, err)
	}
	return true, nil
}

func (a *AccountAdapter) sums(ctx context.Context, id string) ([]sumRow, error) {
	return sumLedger(a.db.WithContext(ctx), id)
}

// sumLedger totals the ledger per account and currency, for one account when id is set.
func sumLedger(db *gorm.DB, id string) ([]sumRow, error) {
	q := db.Model(&models.LedgerEntry{}).
		Select("account_uuid, currency, SUM(delta) AS total, COUNT(*) AS entries").
		Group("account_uuid, currency")
	if id != "" {
		q = q.Where("account_uuid = ?", id)
	}

	var rows []sumRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to sum ledger: %w", err)
	}
	return rows, nil
}

func (a *AccountAdapter) latest(ctx context.Context) (*snapshot.Snapshot, error) {
	if a.snapshots == nil {
		return nil, nil
	}
	snap, err := a.snapshots.Latest(ctx)
	if errors.Is(err, snapshot.ErrSnapshotNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest snapshot: %w", err)
	}
	return snap, nil
}

func addSum(s *LedgerSums, r sumRow) {
	switch r.Currency {
	case models.CurrencyCash:
		s.Cash = economy.Round2(s.Cash + r.Total)
	default:
		s.Coins = economy.Round2(s.Coins + r.Total)
	}
	s.Entries += r.Entries
}

func compare(source string, want, got Balances) []string {
	var out []string
	if economy.Round2(want.Coins) != economy.Round2(got.Coins) {
		out = append(out, fmt.Sprintf("coins: %s=%.2f db=%.2f", source, want.Coins, got.Coins))
	}
	if economy.Round2(want.Cash) != economy.Round2(got.Cash) {
		out = append(out, fmt.Sprintf("cash: %s=%.2f db=%.2f", source, want.Cash, got.Cash))
	}
	return out
}
