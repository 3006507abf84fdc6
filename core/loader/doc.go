// Package loader provides the plugin-like feature loading system.
//
// Each economy area (balances, inventories, shops, player shops, merchants, rewards,
// snapshots, integrity) is a Feature that registers its own routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager keeps registration order, skips disabled features and refuses duplicate
// names, so a feature can be switched off from configuration without touching the
// start command.
package loader
