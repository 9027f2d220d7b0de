package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/library-service/cmd/api/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		c, err := config.FromEnv(lookupFrom(nil))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), c)
		assert.Equal(t, 4, c.OverdueDays)
		assert.Equal(t, 5*time.Second, c.RequestTimeout)
	})

	t.Run("reads every variable", func(t *testing.T) {
		c, err := config.FromEnv(lookupFrom(map[string]string{
			config.EnvDatabaseURL:          "postgres://localhost/library",
			config.EnvStorage:              config.StorageMemory,
			config.EnvHTTPPort:             "9090",
			config.EnvRequestTimeout:       "2s",
			config.EnvNotificationsEnabled: "true",
			config.EnvOverdueDays:          "7",
			config.EnvOverdueScanInterval:  "1h",
			config.EnvLogLevel:             "debug",
		}))
		require.NoError(t, err)
		assert.Equal(t, "postgres://localhost/library", c.DatabaseURL)
		assert.Equal(t, config.StorageMemory, c.Storage)
		assert.Equal(t, 9090, c.HTTPPort)
		assert.Equal(t, 2*time.Second, c.RequestTimeout)
		assert.True(t, c.NotificationsEnabled)
		assert.Equal(t, 7, c.OverdueDays)
		assert.Equal(t, time.Hour, c.OverdueScanInterval)

		level, err := c.Level()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
	})

	t.Run("reports every malformed value", func(t *testing.T) {
		_, err := config.FromEnv(lookupFrom(map[string]string{
			config.EnvHTTPPort:       "eighty",
			config.EnvRequestTimeout: "5",
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.EnvHTTPPort)
		assert.Contains(t, err.Error(), config.EnvRequestTimeout)
	})
}

func TestBindFlags(t *testing.T) {
	c := config.Default()
	c.HTTPPort = 9090
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--storage=memory", "--overdue-days=10"}))
	assert.Equal(t, config.StorageMemory, c.Storage)
	assert.Equal(t, 10, c.OverdueDays)
	assert.Equal(t, 9090, c.HTTPPort)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		valid  bool
	}{
		{"memory storage needs no database", func(c *config.Config) { c.Storage = config.StorageMemory }, true},
		{"postgres storage needs a database url", func(c *config.Config) {}, false},
		{"postgres storage with url", func(c *config.Config) { c.DatabaseURL = "postgres://localhost/library" }, true},
		{"unknown storage", func(c *config.Config) { c.Storage = "redis" }, false},
		{"port out of range", func(c *config.Config) { c.Storage = config.StorageMemory; c.HTTPPort = 70000 }, false},
		{"negative overdue days", func(c *config.Config) { c.Storage = config.StorageMemory; c.OverdueDays = -1 }, false},
		{"zero scan interval", func(c *config.Config) { c.Storage = config.StorageMemory; c.OverdueScanInterval = 0 }, false},
		{"unknown log level", func(c *config.Config) { c.Storage = config.StorageMemory; c.LogLevel = "loud" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			tt.modify(&c)
			err := c.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
