// Package config reads runtime settings from the environment, after loading
// an optional .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr              = ":8080"
	defaultRedisTTL          = 24 * time.Hour
	defaultRateLimitCapacity = 5
	defaultRateLimitWindow   = time.Minute
)

type Config struct {
	Addr              string
	RedisAddr         string
	RedisTTL          time.Duration
	RateLimitCapacity int
	RateLimitWindow   time.Duration
	OpenAIKey         string
	OpenAIURL         string
	OpenAIModel       string
}

// Load reads .env files (missing files are ignored) and the environment.
// Values that do not parse fall back to their defaults with a warning.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load env file: %v", err)
	}

	return Config{
		Addr:              getString("LOANSTRAT_ADDR", defaultAddr),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisTTL:          getDuration("REDIS_TTL", defaultRedisTTL),
		RateLimitCapacity: getInt("RATE_LIMIT_CAPACITY", defaultRateLimitCapacity),
		RateLimitWindow:   getDuration("RATE_LIMIT_WINDOW", defaultRateLimitWindow),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIURL:         os.Getenv("OPENAI_API_URL"),
		OpenAIModel:       os.Getenv("OPENAI_MODEL"),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("Warning: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
