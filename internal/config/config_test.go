package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// An empty directory has no config file; defaults apply.
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Address)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "exercise_tracker", cfg.Database.Name)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8123")
	t.Setenv("DATABASE_NAME", "tracker_test")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8123", cfg.Server.Address)
	assert.Equal(t, "tracker_test", cfg.Database.Name)
}
