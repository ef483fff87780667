package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Issuer:             "inkwell-test",
		AccessTokenSecret:  strings.Repeat("a", 32),
		RefreshTokenSecret: strings.Repeat("r", 32),
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("missing access secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.AccessTokenSecret = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ACCESS_TOKEN_SECRET")
	})

	t.Run("missing refresh secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.RefreshTokenSecret = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REFRESH_TOKEN_SECRET")
	})

	t.Run("short access secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.AccessTokenSecret = "too-short"
		require.Error(t, cfg.Validate())
	})

	t.Run("identical secrets", func(t *testing.T) {
		cfg := validConfig()
		cfg.RefreshTokenSecret = cfg.AccessTokenSecret
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must differ")
	})

	t.Run("google requires redirect url", func(t *testing.T) {
		cfg := validConfig()
		cfg.GoogleClientID = "client.apps.googleusercontent.com"
		require.Error(t, cfg.Validate())

		cfg.GoogleRedirectURL = "https://inkwell.example.com/v1/auth/google/callback"
		require.NoError(t, cfg.Validate())
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	// No secrets in the environment: LoadConfig must NOT invent them.
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("REFRESH_TOKEN_SECRET", "")

	cfg := LoadConfig()
	assert.Empty(t, cfg.AccessTokenSecret)
	assert.Empty(t, cfg.RefreshTokenSecret)
	assert.Error(t, cfg.Validate())

	assert.Equal(t, "inkwell", cfg.Issuer)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "inkwell.db", cfg.DatabaseFile)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", strings.Repeat("a", 32))
	t.Setenv("REFRESH_TOKEN_SECRET", strings.Repeat("r", 32))
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("PORT", "9090")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 9090, cfg.Port)
}
