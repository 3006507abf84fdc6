package models

import "time"

// Shop is a player owned shop. Each player owns at most one.
type Shop struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	OwnerUUID string    `gorm:"column:owner_uuid;type:varchar(36);uniqueIndex" json:"owner_uuid"`
	Name      string    `gorm:"column:name;type:varchar(64)" json:"name"`
	Open      bool      `gorm:"column:is_open" json:"open"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Shop) TableName() string {
	return "player_shops"
}

// Listing is one offer of a player shop. Stock is the number of stocked units, all
// sharing the listing's durability.
type Listing struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	ShopID        uint      `gorm:"column:shop_id;index" json:"shop_id"`
	OwnerUUID     string    `gorm:"column:owner_uuid;type:varchar(36);index" json:"owner_uuid"`
	Tab           string    `gorm:"column:tab;type:varchar(32)" json:"tab"`
	ItemID        string    `gorm:"column:item_id;type:varchar(128)" json:"item_id"`
	Quantity      int       `gorm:"column:quantity" json:"quantity"`
	PriceBuy      float64   `gorm:"column:price_buy" json:"price_buy"`
	PriceSell     float64   `gorm:"column:price_sell" json:"price_sell"`
	Stock         int       `gorm:"column:stock" json:"stock"`
	Durability    float64   `gorm:"column:durability" json:"durability"`
	MaxDurability float64   `gorm:"column:max_durability" json:"max_durability"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Listing) TableName() string {
	return "player_shop_items"
}

// All returns every model owned by the player shop feature, for migrations.
func All() []any {
	return []any{&Shop{}, &Listing{}}
}
