package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every setting read from the environment (.env is loaded by main).
type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	// StoreDriver is one of memory, sqlite or mysql.
	StoreDriver  string
	DatabaseDSN  string
	SeedMockData bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	AMQPURL   string
	AMQPQueue string

	// RateLimit requests per RateInterval seconds per client IP
	RateLimit    int
	RateInterval int
	CORSOrigin   string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", "memory")),
		DatabaseDSN:   getEnv("DATABASE_DSN", "floorplan.db"),
		SeedMockData:  getBool("SEED_MOCK_DATA", true),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),
		CacheTTL:      getDuration("CACHE_TTL", 5*time.Second),
		AMQPURL:       os.Getenv("AMQP_URL"),
		AMQPQueue:     getEnv("AMQP_QUEUE", "floor.events"),
		RateLimit:     getInt("RATE_LIMIT", 50),
		RateInterval:  getInt("RATE_INTERVAL", 1),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://127.0.0.1:5500"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

// getDuration accepts Go durations ("750ms") or plain seconds ("30").
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
