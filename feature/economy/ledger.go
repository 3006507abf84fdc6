package economy

import (
	"errors"
	"fmt"
	"math"
	"time"

	"economy-manager/feature/economy/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger mutates balances inside a caller-owned transaction.
// Every mutation locks the account row and appends a ledger entry, so a rolled back
// transaction leaves neither balance nor ledger changed.
type Ledger struct {
	cfg Config
}

// NewLedger creates a ledger applying the given rules.
func NewLedger(cfg Config) *Ledger {
	return &Ledger{cfg: cfg}
}

// ForUpdate adds a row lock to the next query of tx.
func ForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Account loads and locks the account, opening it with the starting balance if needed.
func (l *Ledger) Account(tx *gorm.DB, id string) (*models.Account, error) {
	var acc models.Account
	err := ForUpdate(tx).Where("uuid = ?", id).First(&acc).Error
	if err == nil {
		return &acc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load account %s: %w", id, err)
	}

	opening := Round2(l.cfg.StartingBalance)
	if opening < 0 {
		opening = 0
	}
	acc = models.Account{UUID: id, Coins: opening}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&acc)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to open account %s: %w", id, res.Error)
	}
	// Zero openings are logged too so every account has ledger history.
	if res.RowsAffected == 1 {
		if err := appendEntry(tx, id, models.CurrencyCoins, opening, opening, "account_open", ""); err != nil {
			return nil, err
		}
	}

	// Re-read so a concurrent opener's row is returned locked.
	if err := ForUpdate(tx).Where("uuid = ?", id).First(&acc).Error; err != nil {
		return nil, fmt.Errorf("failed to load account %s: %w", id, err)
	}
	return &acc, nil
}

// Apply adds delta (which may be negative) to the account's balance in currency.
func (l *Ledger) Apply(tx *gorm.DB, id, currency string, delta float64, reason, reference string) (*models.Account, error) {
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return nil, ErrInvalidAmount
	}
	delta = Round2(delta)

	acc, err := l.Account(tx, id)
	if err != nil {
		return nil, err
	}
	if delta == 0 {
		return acc, nil
	}

	next := Round2(acc.Balance(currency) + delta)
	if next < 0 {
		return nil, ErrInsufficientFunds
	}
	if l.cfg.MaxBalance > 0 && delta > 0 && next > l.cfg.MaxBalance {
		return nil, ErrBalanceLimit
	}

	if err := l.store(tx, acc, currency, next); err != nil {
		return nil, err
	}
	if err := appendEntry(tx, id, currency, delta, next, reason, reference); err != nil {
		return nil, err
	}
	return acc, nil
}

// Credit adds a positive amount.
func (l *Ledger) Credit(tx *gorm.DB, id, currency string, amount float64, reason, reference string) (*models.Account, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	return l.Apply(tx, id, currency, amount, reason, reference)
}

// Debit removes a positive amount, failing with ErrInsufficientFunds.
func (l *Ledger) Debit(tx *gorm.DB, id, currency string, amount float64, reason, reference string) (*models.Account, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	return l.Apply(tx, id, currency, -amount, reason, reference)
}

// Set overwrites the balance, recording the difference in the ledger.
func (l *Ledger) Set(tx *gorm.DB, id, currency string, amount float64, reason string) (*models.Account, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return nil, ErrInvalidAmount
	}
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}
	if l.cfg.MaxBalance > 0 && Round2(amount) > l.cfg.MaxBalance {
		return nil, ErrBalanceLimit
	}
	acc, err := l.Account(tx, id)
	if err != nil {
		return nil, err
	}
	return l.Apply(tx, id, currency, Round2(amount)-acc.Balance(currency), reason, "")
}

// Record appends a ledger entry without touching the balance. The audit uses it to
// write entries for balances that predate the ledger.
func (l *Ledger) Record(tx *gorm.DB, id, currency string, delta, after float64, reason string) error {
	if err := ValidateCurrency(currency); err != nil {
		return err
	}
	return appendEntry(tx, id, currency, Round2(delta), Round2(after), reason, "")
}

func (l *Ledger) store(tx *gorm.DB, acc *models.Account, currency string, next float64) error {
	err := tx.Model(&models.Account{}).
		Where("uuid = ?", acc.UUID).
		Updates(map[string]any{currency: next, "updated_at": time.Now()}).Error
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", acc.UUID, err)
	}
	acc.SetBalance(currency, next)
	return nil
}

func appendEntry(tx *gorm.DB, id, currency string, delta, after float64, reason, reference string) error {
	entry := models.LedgerEntry{
		AccountUUID:  id,
		Currency:     currency,
		Delta:        delta,
		BalanceAfter: after,
		Reason:       reason,
		Reference:    reference,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}
