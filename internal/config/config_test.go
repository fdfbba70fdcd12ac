package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func baseEnv() map[string]string {
	return map[string]string{
		"APP_NAME":  "internhub",
		"APP_ENV":   "test",
		"HTTP_PORT": "8080",
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(baseEnv()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Database.DBPort != "5432" || cfg.Database.DBSSLMode != "disable" {
		t.Fatalf("unexpected db defaults: %+v", cfg.Database)
	}
	if cfg.Cache.Enabled {
		t.Fatalf("cache must be disabled by default")
	}
	if cfg.Cache.TTL != 60*time.Second {
		t.Fatalf("unexpected ttl: %s", cfg.Cache.TTL)
	}
	if cfg.MigrationsDir != "migrations" {
		t.Fatalf("unexpected migrations dir: %s", cfg.MigrationsDir)
	}
}

func TestFromLookup_MissingRequired(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{"APP_NAME": "x"}))
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "APP_ENV") || !strings.Contains(err.Error(), "HTTP_PORT") {
		t.Fatalf("expected both missing keys listed, got %v", err)
	}
}

func TestFromLookup_PoolAndDurations(t *testing.T) {
	env := baseEnv()
	env["DB_MAX_CONNS"] = "20"
	env["DB_MIN_CONNS"] = "2"
	env["DB_MAX_CONN_LIFETIME"] = "30m"
	env["REDIS_TTL"] = "120"
	env["CACHE_ENABLED"] = "true"

	cfg, err := FromLookup(lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Database.PoolMaxConns != 20 || cfg.Database.PoolMinConns != 2 {
		t.Fatalf("unexpected pool sizes: %+v", cfg.Database)
	}
	if cfg.Database.PoolMaxConnLifetime != 30*time.Minute {
		t.Fatalf("unexpected lifetime: %s", cfg.Database.PoolMaxConnLifetime)
	}
	if cfg.Cache.TTL != 120*time.Second || !cfg.Cache.Enabled {
		t.Fatalf("unexpected cache cfg: %+v", cfg.Cache)
	}
}

func TestFromLookup_Invalid(t *testing.T) {
	env := baseEnv()
	env["DB_MAX_CONNS"] = "lots"
	if _, err := FromLookup(lookupFrom(env)); !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}

	env = baseEnv()
	env["DB_MAX_CONNS"] = "2"
	env["DB_MIN_CONNS"] = "5"
	if _, err := FromLookup(lookupFrom(env)); !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv for min>max, got %v", err)
	}
}
