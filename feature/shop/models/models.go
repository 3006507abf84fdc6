package models

import "time"

// GlobalShop is the number of the shop opened with /shop.
const GlobalShop = 0

// Unlimited marks a listing whose stock never runs out.
const Unlimited = -1

// Shop is an admin defined catalog.
type Shop struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"-"`
	Number    int       `gorm:"column:number;uniqueIndex" json:"number" yaml:"number"`
	Name      string    `gorm:"column:name;type:varchar(64)" json:"name" yaml:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at" yaml:"-"`
}

// TableName overrides the table name.
func (Shop) TableName() string {
	return "shops"
}

// Tab groups listings of one shop. Scope identifies the owning shop, so admin and
// player shops share the table.
type Tab struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"-"`
	Scope    string `gorm:"column:scope;type:varchar(64);uniqueIndex:idx_tab_scope_name" json:"-"`
	Name     string `gorm:"column:name;type:varchar(32);uniqueIndex:idx_tab_scope_name" json:"name"`
	Position int    `gorm:"column:position" json:"position"`
}

// TableName overrides the table name.
func (Tab) TableName() string {
	return "shop_tabs"
}

// Item is one listing of an admin shop.
type Item struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	ShopNumber    int       `gorm:"column:shop_number;index" json:"shop_number"`
	Tab           string    `gorm:"column:tab;type:varchar(32)" json:"tab"`
	ItemID        string    `gorm:"column:item_id;type:varchar(128)" json:"item_id"`
	DisplayName   string    `gorm:"column:display_name;type:varchar(128)" json:"display_name"`
	Quantity      int       `gorm:"column:quantity" json:"quantity"`
	PriceBuy      float64   `gorm:"column:price_buy" json:"price_buy"`
	PriceSell     float64   `gorm:"column:price_sell" json:"price_sell"`
	Stock         int       `gorm:"column:stock" json:"stock"`
	Durability    float64   `gorm:"column:durability" json:"durability"`
	MaxDurability float64   `gorm:"column:max_durability" json:"max_durability"`
	UseCash       bool      `gorm:"column:use_cash" json:"use_cash"`
	IsCommand     bool      `gorm:"column:is_command" json:"is_command"`
	Command       string    `gorm:"column:command;type:varchar(255)" json:"command"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "shop_items"
}

// PendingCommand is a console command bought from a shop, waiting for the host.
type PendingCommand struct {
	ID           uint       `gorm:"column:id;primaryKey" json:"id"`
	PlayerUUID   string     `gorm:"column:player_uuid;type:varchar(36);index" json:"player_uuid"`
	Command      string     `gorm:"column:command;type:varchar(255)" json:"command"`
	Source       string     `gorm:"column:source;type:varchar(64)" json:"source"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	DispatchedAt *time.Time `gorm:"column:dispatched_at;index" json:"dispatched_at,omitempty"`
}

// TableName overrides the table name.
func (PendingCommand) TableName() string {
	return "pending_commands"
}

// All returns every model owned by the shop feature, for migrations.
func All() []any {
	return []any{&Shop{}, &Tab{}, &Item{}, &PendingCommand{}}
}
