package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.App.Env)
	assert.Equal(t, "Asia/Kolkata", cfg.App.Timezone)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, []string{"2026-02-15", "2026-02-16"}, cfg.Event.Dates)
	assert.Equal(t, 999, cfg.Event.UnitPrice)
	assert.Equal(t, "in", cfg.Places.Country)
	assert.True(t, cfg.IsLocal())
}

func TestEnvNormalization(t *testing.T) {
	t.Setenv("APP_ENV", "PRODUCTION")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Env)
	assert.True(t, cfg.IsNotLocal())
}

func TestEventDatesParsing(t *testing.T) {
	t.Run("whitespace and empty entries are skipped, dates sorted", func(t *testing.T) {
		t.Setenv("EVENT_DATES", " 2026-02-16 ,, 2026-02-15")

		cfg, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-02-15", "2026-02-16"}, cfg.Event.Dates)
	})

	t.Run("malformed date fails fast", func(t *testing.T) {
		t.Setenv("EVENT_DATES", "15-02-2026")

		_, err := NewConfig()
		assert.Error(t, err)
	})
}

func TestRabbitDependsOnCache(t *testing.T) {
	t.Setenv("RABBITMQ_ENABLED", "true")
	t.Setenv("CACHE_ENABLED", "false")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.False(t, cfg.RabbitMQ.Enabled)
}
