package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, "./data/portfolio.db", cfg.Database.Path)
	assert.Equal(t, 168*time.Hour, cfg.Session.Expiry)
	assert.Equal(t, 12, cfg.Session.BcryptCost)
	assert.Equal(t, "admin", cfg.Seed.AdminUsername)
	assert.Equal(t, "admin123", cfg.Seed.AdminPassword)
	assert.Equal(t, "Vishal Kumar", cfg.Content.DefaultAuthor)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_GeneratesSecretWhenMissing(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.True(t, first.Session.Generated)
	assert.Len(t, first.Session.Secret, 64)
	assert.NotEqual(t, first.Session.Secret, second.Session.Secret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_EXPIRY_HOURS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.False(t, cfg.Session.Generated)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Session.Expiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":                  "not-a-port",
		"SESSION_EXPIRY_HOURS":  "0",
		"SESSION_COOKIE_SECURE": "maybe",
		"BCRYPT_COST":           "high",
	}

	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
