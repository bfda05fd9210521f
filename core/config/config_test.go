package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebulohub/mobile/core/config"
)

type serverConfig struct {
	BaseURL string        `env:"TEST_CFG_BASE_URL" envDefault:"http://localhost:5101/api/v2"`
	Timeout time.Duration `env:"TEST_CFG_TIMEOUT" envDefault:"10s"`
}

type requiredConfig struct {
	Secret string `env:"TEST_CFG_REQUIRED_SECRET,required"`
}

type cachedConfig struct {
	Value string `env:"TEST_CFG_CACHED" envDefault:"initial"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "http://localhost:5101/api/v2", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.Error(t, err)
	})

	t.Run("same type is cached across loads", func(t *testing.T) {
		t.Setenv("TEST_CFG_CACHED", "first")

		var cfg1 cachedConfig
		require.NoError(t, config.Load(&cfg1))
		assert.Equal(t, "first", cfg1.Value)

		// The environment changes, but the cached value wins.
		t.Setenv("TEST_CFG_CACHED", "second")

		var cfg2 cachedConfig
		require.NoError(t, config.Load(&cfg2))
		assert.Equal(t, "first", cfg2.Value)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("returns loaded config", func(t *testing.T) {
		var cfg serverConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "http://localhost:5101/api/v2", cfg.BaseURL)
	})
}
