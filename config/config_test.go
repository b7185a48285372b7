package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "BASE_URL", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW",
		"PAGE_CACHE_ENABLED", "PAGE_CACHE_TTL",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("BASE_URL", "https://example.com")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("PAGE_CACHE_ENABLED", "false")
	t.Setenv("PAGE_CACHE_TTL", "10m")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.False(t, cfg.PageCacheEnabled)
	assert.Equal(t, 10*time.Minute, cfg.PageCacheTTL)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric port", "PORT", "http"},
		{"port out of range", "PORT", "70000"},
		{"bad base url", "BASE_URL", "not a url"},
		{"bad rate limit", "RATE_LIMIT_MAX", "many"},
		{"zero rate limit", "RATE_LIMIT_MAX", "0"},
		{"bad window", "RATE_LIMIT_WINDOW", "soon"},
		{"negative window", "RATE_LIMIT_WINDOW", "-1s"},
		{"bad cache flag", "PAGE_CACHE_ENABLED", "maybe"},
		{"zero cache ttl", "PAGE_CACHE_TTL", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := FromEnv()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
