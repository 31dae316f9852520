package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LOANSTRAT_ADDR", "REDIS_ADDR", "REDIS_TTL", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_WINDOW", "OPENAI_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("expected no redis addr, got %q", cfg.RedisAddr)
	}
	if cfg.RedisTTL != 24*time.Hour {
		t.Errorf("expected 24h ttl, got %s", cfg.RedisTTL)
	}
	if cfg.RateLimitCapacity != 5 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("unexpected rate limit settings %d/%s", cfg.RateLimitCapacity, cfg.RateLimitWindow)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LOANSTRAT_ADDR", ":9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TTL", "1h")
	t.Setenv("RATE_LIMIT_CAPACITY", "20")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Addr != ":9090" || cfg.RedisAddr != "localhost:6379" {
		t.Errorf("unexpected addresses %+v", cfg)
	}
	if cfg.RedisTTL != time.Hour || cfg.RateLimitCapacity != 20 || cfg.RateLimitWindow != 30*time.Second {
		t.Errorf("unexpected values %+v", cfg)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "lots")
	t.Setenv("RATE_LIMIT_WINDOW", "soon")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.RateLimitCapacity != 5 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("expected defaults, got %d/%s", cfg.RateLimitCapacity, cfg.RateLimitWindow)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	os.Unsetenv("REDIS_ADDR")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("REDIS_ADDR=cache:6379\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg := Load(path)
	if cfg.RedisAddr != "cache:6379" {
		t.Errorf("expected redis addr from file, got %q", cfg.RedisAddr)
	}
}
