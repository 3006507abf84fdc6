package snapshot

// Config holds snapshot settings.
type Config struct {
	// Prefix is the folder snapshots are written under.
	Prefix string `mapstructure:"prefix" default:"snapshots"`
	// Level is the zstd compression level (1 fastest, 22 smallest).
	Level int `mapstructure:"level" default:"3"`
	// Keep is how many snapshots a prune leaves behind.
	Keep int `mapstructure:"keep" default:"10"`
}
