package models

import "time"

// Currencies an account holds.
const (
	CurrencyCoins = "coins"
	CurrencyCash  = "cash"
)

// Account is a player's balance record. Balances are never negative.
type Account struct {
	UUID      string    `gorm:"column:uuid;primaryKey;type:varchar(36)" json:"uuid"`
	Coins     float64   `gorm:"column:coins;not null;default:0" json:"coins"`
	Cash      float64   `gorm:"column:cash;not null;default:0" json:"cash"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Account) TableName() string {
	return "accounts"
}

// Balance returns the balance held in currency.
func (a *Account) Balance(currency string) float64 {
	if currency == CurrencyCash {
		return a.Cash
	}
	return a.Coins
}

// SetBalance overwrites the balance held in currency.
func (a *Account) SetBalance(currency string, v float64) {
	if currency == CurrencyCash {
		a.Cash = v
		return
	}
	a.Coins = v
}

// LedgerEntry records a single balance mutation.
// Summing Delta per account and currency yields the account balance.
type LedgerEntry struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	AccountUUID  string    `gorm:"column:account_uuid;type:varchar(36);index:idx_ledger_account" json:"account_uuid"`
	Currency     string    `gorm:"column:currency;type:varchar(8)" json:"currency"`
	Delta        float64   `gorm:"column:delta" json:"delta"`
	BalanceAfter float64   `gorm:"column:balance_after" json:"balance_after"`
	Reason       string    `gorm:"column:reason;type:varchar(64)" json:"reason"`
	Reference    string    `gorm:"column:reference;type:varchar(128)" json:"reference,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName overrides the table name.
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// All returns every model owned by the economy feature, for migrations.
func All() []any {
	return []any{&Account{}, &LedgerEntry{}}
}
