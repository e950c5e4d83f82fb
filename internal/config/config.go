package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	AppPort string

	// RedisAddr empty means the in-memory cache is used instead.
	RedisAddr string

	// FeedsConfig optionally points at a YAML file overriding the built-in
	// queries and feed lists.
	FeedsConfig string

	// GitHubToken is optional; unauthenticated search works within rate limits.
	GitHubToken string

	CronSpec     string
	FetchTimeout time.Duration
	CacheTTL     time.Duration
}

func Load() *Config {
	cfg := &Config{
		AppPort:      getEnv("APP_PORT", "9000"),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		FeedsConfig:  getEnv("FEEDS_CONFIG", ""),
		GitHubToken:  getEnv("GITHUB_TOKEN", ""),
		CronSpec:     getEnv("CRON_SPEC", "*/5 * * * *"),
		FetchTimeout: getDuration("FETCH_TIMEOUT", 8*time.Second),
		CacheTTL:     getDuration("CACHE_TTL", 5*time.Minute),
	}

	log.Printf("config loaded: port=%s cron=%s timeout=%s", cfg.AppPort, cfg.CronSpec, cfg.FetchTimeout)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("warn: invalid duration %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
