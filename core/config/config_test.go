package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 100.0, cfg.Economy.StartingBalance)
	assert.Equal(t, 0.05, cfg.Economy.PlayerShopTax)
	assert.Equal(t, 36, cfg.Inventory.Slots)
	assert.Equal(t, 7, cfg.Shop.MaxTabs)
	assert.Equal(t, "snapshots", cfg.Snapshot.Prefix)
	assert.Equal(t, 300, cfg.Audit.CacheTTLSeconds)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ECONOMY_STARTING_BALANCE", "250.5")
	t.Setenv("SHOP_MAX_TABS", "3")
	t.Setenv("CACHE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 250.5, cfg.Economy.StartingBalance)
	assert.Equal(t, 3, cfg.Shop.MaxTabs)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_NAME=survival\nINVENTORY_MAX_STACK=64\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_NAME")
		os.Unsetenv("INVENTORY_MAX_STACK")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "survival", cfg.Server.Name)
	assert.Equal(t, 64, cfg.Inventory.MaxStack)
}
