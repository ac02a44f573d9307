// Package config loads service configuration from the environment so main
// stays lean.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything the API server needs to start.
type Config struct {
	Addr string

	// SearchURL is the base URL of the search backend; IndexPrefix is
	// prepended to every entity index name.
	SearchURL   string
	IndexPrefix string

	DatabaseURL string

	Redis       RedisConfig
	ZipCacheTTL time.Duration

	KafkaBrokers   []string
	AnalyticsTopic string

	JWTSigningKey string
}

// RedisConfig captures Redis connection settings. An empty URL disables
// Redis entirely.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Addr:        envOr("CIVIC_API_ADDR", ":5000"),
		SearchURL:   envOr("SEARCH_URL", "http://localhost:9200"),
		IndexPrefix: envOr("SEARCH_INDEX_PREFIX", "civil_services"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		ZipCacheTTL:    envDuration("ZIPCODE_CACHE_TTL", 24*time.Hour),
		KafkaBrokers:   envList("KAFKA_BROKERS"),
		AnalyticsTopic: envOr("ANALYTICS_TOPIC", "civicapi.usage"),
		JWTSigningKey:  os.Getenv("JWT_SIGNING_KEY"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
