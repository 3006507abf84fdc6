package models

// Slot is one occupied inventory slot of a player.
type Slot struct {
	ID            uint    `gorm:"column:id;primaryKey" json:"-"`
	OwnerUUID     string  `gorm:"column:owner_uuid;type:varchar(36);uniqueIndex:idx_slot_owner_index" json:"-"`
	Index         int     `gorm:"column:slot_index;uniqueIndex:idx_slot_owner_index" json:"index"`
	ItemID        string  `gorm:"column:item_id;type:varchar(128)" json:"item_id"`
	Quantity      int     `gorm:"column:quantity" json:"quantity"`
	Durability    float64 `gorm:"column:durability" json:"durability"`
	MaxDurability float64 `gorm:"column:max_durability" json:"max_durability"`
}

// TableName overrides the table name.
func (Slot) TableName() string {
	return "inventory_slots"
}

// Stack returns the slot content as a stack.
func (s Slot) Stack() Stack {
	return Stack{
		ItemID:        s.ItemID,
		Quantity:      s.Quantity,
		Durability:    s.Durability,
		MaxDurability: s.MaxDurability,
	}
}

// Stack is a quantity of one item at one durability.
type Stack struct {
	ItemID        string  `json:"item_id" yaml:"item_id"`
	Quantity      int     `json:"quantity" yaml:"quantity"`
	Durability    float64 `json:"durability,omitempty" yaml:"durability,omitempty"`
	MaxDurability float64 `json:"max_durability,omitempty" yaml:"max_durability,omitempty"`
}

// SameKind reports whether two stacks hold interchangeable items.
func (s Stack) SameKind(o Stack) bool {
	return s.ItemID == o.ItemID && s.Durability == o.Durability && s.MaxDurability == o.MaxDurability
}

// All returns every model owned by the inventory feature, for migrations.
func All() []any {
	return []any{&Slot{}}
}
