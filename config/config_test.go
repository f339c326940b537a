package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWith(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "./puravida.db", cfg.Database.Path)
	assert.Equal(t, "puravida", cfg.Redis.Prefix)
	assert.Equal(t, 2, cfg.Redis.Timeout)
	assert.False(t, cfg.Auth.Enabled)
	assert.InDelta(t, 0.8, cfg.Game.CheckInSuccessRate, 1e-9)
	assert.Equal(t, 4, cfg.Game.NearbyExplorers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:8080"}, cfg.Server.AllowedOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PURAVIDA_STORAGE_DRIVER", "memory")
	t.Setenv("PURAVIDA_SERVER_PORT", "9090")
	t.Setenv("PURAVIDA_GAME_CHECKIN_SUCCESS_RATE", "1.5")

	cfg, err := LoadWith(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.InDelta(t, 1.0, cfg.Game.CheckInSuccessRate, 1e-9, "rate is clamped to [0,1]")
}
