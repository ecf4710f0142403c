package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "reference", cfg.Storage.Bucket)
	assert.Equal(t, "csv", cfg.Storage.Prefix)
	assert.Equal(t, "https://api.github.com", cfg.Remote.BaseURL)
	assert.Equal(t, "main", cfg.Remote.Branch)
	assert.Equal(t, "database", cfg.Roster.Source)
	assert.True(t, cfg.Roster.AllowFallback)
	assert.Equal(t, "data", cfg.Roster.RepoPrefix)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("ROSTER_SOURCE", "static")
	t.Setenv("REMOTE_OWNER", "example")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "static", cfg.Roster.Source)
	assert.Equal(t, "example", cfg.Remote.Owner)
	assert.True(t, cfg.Roster.IsValidSource())
}
