package shop

// Config holds shop limits.
type Config struct {
	// MaxTabs is the number of tabs a shop may have.
	MaxTabs int `mapstructure:"max_tabs" default:"7"`
	// MaxMultiplier caps how many lots one purchase may take.
	MaxMultiplier int `mapstructure:"max_multiplier" default:"64"`
}
