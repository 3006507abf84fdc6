package cache

// Config holds configuration for the Redis-backed request cache.
type Config struct {
	// Enabled turns the idempotency guard on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Addr is the Redis host:port.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database index.
	DB int `mapstructure:"db" default:"0"`
	// TTLSeconds is how long an idempotency key is remembered.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"86400"`
	// TimeoutSeconds bounds dialing and each command.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}
