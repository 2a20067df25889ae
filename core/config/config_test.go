package config_test

import (
	"testing"

	"mamoji/core/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.ApiKey)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "mamoji.db", cfg.Database.Path)
	assert.Equal(t, 30, cfg.Federation.TimeoutSeconds)
	assert.Equal(t, "mamoji/1.0", cfg.Federation.UserAgent)
	assert.False(t, cfg.Federation.Insecure)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "mamoji", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("FEDERATION_USER_AGENT", "custom-agent/2.0")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "custom-agent/2.0", cfg.Federation.UserAgent)
	assert.True(t, cfg.Storage.Enabled)
}
