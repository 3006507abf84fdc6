package audit

// Config holds audit settings.
type Config struct {
	// CacheTTLSeconds is how long per-account lookups reuse the last full scan.
	// Zero queries every lookup directly.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}
