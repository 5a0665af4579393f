package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		expected int
	}{
		{"returns default value when env var not set", "", false, 42},
		{"parses valid integer from env var", "100", true, 100},
		{"returns default for invalid integer", "not-a-number", true, 42},
		{"parses negative integers", "-10", true, -10},
		{"parses zero", "0", true, 0},
		{"returns default for float values", "42.5", true, 42},
		{"returns default for empty string", "", true, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			if !tt.set {
				unsetForTest(t, "TEST_INT_VAR")
			}
			assert.Equal(t, tt.expected, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

// TestGetEnvAsDuration tests the getEnvAsDuration helper function
func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"parses minutes", "10m", 10 * time.Minute},
		{"parses seconds", "30s", 30 * time.Second},
		{"parses complex duration", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"parses milliseconds", "600ms", 600 * time.Millisecond},
		{"returns default for invalid duration", "not-a-duration", 5 * time.Minute},
		{"returns default for plain numbers without unit", "100", 5 * time.Minute},
		{"returns default for empty string", "", 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.expected, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}

	t.Run("returns default value when env var not set", func(t *testing.T) {
		unsetForTest(t, "TEST_DURATION_VAR")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LIST_VAR", " 10.0.0.1, ,192.168.0.0/16 ,")
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, getEnvAsList("TEST_LIST_VAR"))

	t.Setenv("TEST_LIST_VAR", "")
	assert.Empty(t, getEnvAsList("TEST_LIST_VAR"))
}

// TestLoad_DatabasePoolConfig tests that database pool configuration is loaded correctly
func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("loads default database pool configuration", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns, "Should use default max connections")
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime, "Should use default idle time")
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime, "Should use default lifetime")
	})

	t.Run("loads custom database pool configuration", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	})

	t.Run("uses defaults for invalid pool config values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "not-a-number")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns, "Should fallback to default for invalid max conns")
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime, "Should fallback to default for invalid idle time")
	})
}
