package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultSessionTTL is how long an issued session token stays valid.
	DefaultSessionTTL = 24 * time.Hour

	// DefaultTokenBytes is the entropy of generated session tokens.
	// 32 bytes = 256 bits.
	DefaultTokenBytes = 32
)

type Config struct {
	AppPort string

	RedisAddr     string
	RedisPassword string

	DatabaseDSN string

	// SessionBackend selects the session store: "redis" (default) or "memory".
	SessionBackend string

	SessionTTL        time.Duration
	SessionTokenBytes int
}

func Load() Config {

	cfg := Config{

		AppPort: getenv("APP_PORT", "8080"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		SessionBackend: getenv("SESSION_BACKEND", "redis"),

		SessionTTL:        durationEnv("SESSION_TTL", DefaultSessionTTL),
		SessionTokenBytes: intEnv("SESSION_TOKEN_BYTES", DefaultTokenBytes),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
