package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	PostgresURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StoreTimeout  time.Duration
	TopK          int
	CacheTTL      time.Duration
}

// Load reads configuration from the environment, with a best-effort .env file
// for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          envOr("PORT", "8080"),
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),
		StoreTimeout:  time.Duration(envInt("STORE_TIMEOUT_MS", 3000)) * time.Millisecond,
		TopK:          envInt("AGGREGATOR_TOP_K", 5),
		CacheTTL:      time.Duration(envInt("CACHE_TTL_SECONDS", 60)) * time.Second,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
