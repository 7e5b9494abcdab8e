package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	TokenSecret      string        // Required: shared secret for token signing/verification. Never logged.
	Issuer           string        // Optional: issuer claim for tokens (default: authd)
	TokenTTL         time.Duration // Optional: token lifetime (default: 1h)
	TokenNonExpiring bool          // Optional: mint tokens without an expiry claim (default: false)

	Profile    string // Optional: response profile (minimal, rich) (default: rich)
	BcryptCost int    // Optional: bcrypt work factor (default: 10)

	PasswordMin int // Optional: minimum password length (default: 6)
	PasswordMax int // Optional: maximum password length (default: 72, bcrypt's limit)

	DatabaseFile string // Optional: path to SQLite database file (default: ./identity.db)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		TokenSecret:      os.Getenv("AUTH_TOKEN_SECRET"),
		Issuer:           getEnvOrDefault("AUTH_ISSUER", "authd"),
		TokenTTL:         getEnvDurationOrDefault("AUTH_TOKEN_TTL", time.Hour),
		TokenNonExpiring: getEnvBoolOrDefault("AUTH_TOKEN_NON_EXPIRING", false),

		Profile:    getEnvOrDefault("AUTH_PROFILE", "rich"),
		BcryptCost: getEnvIntOrDefault("AUTH_BCRYPT_COST", 10),

		PasswordMin: getEnvIntOrDefault("AUTH_PASSWORD_MIN", 6),
		PasswordMax: getEnvIntOrDefault("AUTH_PASSWORD_MAX", 72),

		DatabaseFile: getEnvOrDefault("AUTH_DATABASE_FILE", "identity.db"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept duration strings ("1h", "30m") first.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Fall back to integer seconds; the deployment this replaces
	// configured TTLs as raw seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
