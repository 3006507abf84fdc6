package models

import "time"

// Merchant is an NPC placed in a world that opens an admin shop.
type Merchant struct {
	ID         uint      `gorm:"column:id;primaryKey" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(64)" json:"name"`
	World      string    `gorm:"column:world;type:varchar(64);index" json:"world"`
	X          float64   `gorm:"column:x" json:"x"`
	Y          float64   `gorm:"column:y" json:"y"`
	Z          float64   `gorm:"column:z" json:"z"`
	Yaw        float64   `gorm:"column:yaw" json:"yaw"`
	ShopNumber int       `gorm:"column:shop_number;index" json:"shop_number"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Merchant) TableName() string {
	return "merchants"
}

// All returns every model owned by the merchant feature, for migrations.
func All() []any {
	return []any{&Merchant{}}
}
