package inventory

// Config holds inventory limits.
type Config struct {
	// Slots is the number of slots per player.
	Slots int `mapstructure:"slots" default:"36"`
	// MaxStack is the largest quantity one slot holds. Items with durability hold one.
	MaxStack int `mapstructure:"max_stack" default:"100"`
}
