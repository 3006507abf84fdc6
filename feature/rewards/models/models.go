package models

import "time"

const (
	KindBlock   = "block"
	KindMonster = "monster"

	// AnyTarget matches every target of a kind without its own rule.
	AnyTarget = "*"
)

// Rule pays a player for breaking a block or killing a monster.
type Rule struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Kind      string    `gorm:"column:kind;type:varchar(16);uniqueIndex:idx_reward_kind_target" json:"kind"`
	Target    string    `gorm:"column:target;type:varchar(128);uniqueIndex:idx_reward_kind_target" json:"target"`
	Amount    float64   `gorm:"column:amount" json:"amount"`
	Currency  string    `gorm:"column:currency;type:varchar(8)" json:"currency"`
	Enabled   bool      `gorm:"column:enabled" json:"enabled"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Rule) TableName() string {
	return "reward_rules"
}

// All returns every model owned by the rewards feature, for migrations.
func All() []any {
	return []any{&Rule{}}
}
