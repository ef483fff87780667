package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/inkwell-edu/inkwell/pkg/jwtx"
)

type Config struct {
	Issuer         string // Required: issuer claim for tokens
	BootstrapToken string // Optional: token required to perform bootstrap

	// Token signing secrets. Both are REQUIRED, must differ from each
	// other, and must be at least 32 bytes. There are deliberately no
	// defaults: a missing secret fails startup rather than silently
	// signing with a known value.
	AccessTokenSecret  string
	RefreshTokenSecret string

	AccessTokenTTL  time.Duration // Optional: access token lifetime (default: 15m)
	RefreshTokenTTL time.Duration // Optional: refresh token lifetime (default: 168h)

	GoogleClientID     string // Optional: enables Google sign-in when set
	GoogleClientSecret string
	GoogleRedirectURL  string

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./inkwell.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:             getEnvOrDefault("INKWELL_ISSUER", "inkwell"),
		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		AccessTokenTTL:     getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL:    getEnvDurationOrDefault("REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTokenTTL),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		DatabaseFile:       getEnvOrDefault("INKWELL_DATABASE_FILE", "inkwell.db"),
		PepperFile:         getEnvOrDefault("INKWELL_PEPPER_FILE", "pepper"),
		BootstrapToken: os.Getenv(
			"BOOTSTRAP_TOKEN",
		), // Optional: if set, required to perform bootstrap
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

// Validate enforces the invariants startup depends on. Called before any
// service is constructed; a failure here aborts the process.
func (cfg Config) Validate() error {
	if cfg.AccessTokenSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.RefreshTokenSecret == "" {
		return errors.New("REFRESH_TOKEN_SECRET is required")
	}
	if len(cfg.AccessTokenSecret) < jwtx.MinSecretLength {
		return fmt.Errorf("ACCESS_TOKEN_SECRET must be at least %d bytes", jwtx.MinSecretLength)
	}
	if len(cfg.RefreshTokenSecret) < jwtx.MinSecretLength {
		return fmt.Errorf("REFRESH_TOKEN_SECRET must be at least %d bytes", jwtx.MinSecretLength)
	}
	// Distinct secrets keep access tokens from ever verifying as refresh
	// tokens and vice versa.
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
	}

	if cfg.GoogleClientID != "" && cfg.GoogleRedirectURL == "" {
		return errors.New("GOOGLE_REDIRECT_URL is required when GOOGLE_CLIENT_ID is set")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
