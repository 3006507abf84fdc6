// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or sqlite (tests, single-node setups)
// connections from the application's configuration.
//
// # Connect
//
// Connect opens the configured dialect, applies pool settings and pings the database
// with the configured timeout. Migrate runs GORM auto-migration for the models owned by
// the feature packages.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The integrity feature
// uses it to verify that the live schema matches the economy models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "accounts")
package database
