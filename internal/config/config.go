package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App           AppConfig
	Database      DatabaseConfig
	Cache         CacheConfig
	MigrationsDir string
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type CacheConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	TTL           time.Duration
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads the process environment. A .env file in the working directory,
// when present, fills keys that are not already set.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary key lookup.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}
	req := func(key string) string {
		v := get(key)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		if v := get(key); v != "" {
			return v
		}
		return def
	}
	optInt32 := func(key string) int32 {
		v := get(key)
		if v == "" {
			return 0
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			invalid = append(invalid, key)
			return 0
		}
		return int32(n)
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		v := get(key)
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			// bare integers are seconds
			n, nerr := strconv.Atoi(v)
			if nerr != nil || n < 0 {
				invalid = append(invalid, key)
				return def
			}
			return time.Duration(n) * time.Second
		}
		if d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	optBool := func(key string) bool {
		v := get(key)
		if v == "" {
			return false
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			invalid = append(invalid, key)
			return false
		}
		return b
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", "localhost"),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     get("DB_NAME"),
		DBUser:     get("DB_USER"),
		DBPassword: get("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          optInt32("DB_MAX_CONNS"),
		PoolMinConns:          optInt32("DB_MIN_CONNS"),
		PoolMaxConnLifetime:   optDuration("DB_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.Cache = CacheConfig{
		Enabled:       optBool("CACHE_ENABLED"),
		RedisHost:     opt("REDIS_HOST", "localhost"),
		RedisPort:     opt("REDIS_PORT", "6379"),
		RedisPassword: get("REDIS_PASSWORD"),
		TTL:           optDuration("REDIS_TTL", 60*time.Second),
	}

	cfg.MigrationsDir = opt("MIGRATIONS_DIR", "migrations")

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}
	if cfg.Database.PoolMinConns > 0 && cfg.Database.PoolMaxConns > 0 && cfg.Database.PoolMinConns > cfg.Database.PoolMaxConns {
		return Config{}, fmt.Errorf("%w: DB_MIN_CONNS exceeds DB_MAX_CONNS", errInvalidEnv)
	}

	return cfg, nil
}
