package config_test

import (
	"testing"

	"inventory-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "inventory.db", cfg.Database.Path)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "inventory.csv", cfg.Catalog.SeedFile)
	assert.Equal(t, "mdy", cfg.Catalog.DateFormat)
	assert.Equal(t, "backup.csv", cfg.Catalog.BackupFile)
	assert.Equal(t, "inventory-backups", cfg.Storage.Bucket)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/var/lib/inventory/catalog.db")
	t.Setenv("CATALOG_DATE_FORMAT", "monthname")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/inventory/catalog.db", cfg.Database.Path)
	assert.Equal(t, "monthname", cfg.Catalog.DateFormat)
	assert.Equal(t, "debug", cfg.Log.Level)
}
