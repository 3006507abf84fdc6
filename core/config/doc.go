// Package config provides configuration management for the economy manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, server name)
//   - Database: MySQL or sqlite connection details
//   - Storage: S3/MinIO credentials and the snapshot bucket
//   - Cache: Redis for purchase idempotency keys
//   - Log: Logging level and format
//   - Economy, Inventory, Shop: game rules (starting balance, tax, slots, tab limits)
//   - Snapshot, Audit: backup and ledger audit settings
//
// Environment keys are the upper-cased section and key joined by an underscore,
// e.g. ECONOMY_PLAYER_SHOP_TAX or DATABASE_DRIVER.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
