package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Log backends.
const (
	LogBackendSlog    = "slog"
	LogBackendZerolog = "zerolog"
)

// Config stores service settings.
type Config struct {
	Port             int
	OperationTimeout time.Duration
	MigrateOnStart   bool
	DB               DB
	Log              Log
	Pagination       Pagination
	RateLimit        RateLimit
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host    string
	Port    string
	User    string
	Pass    string
	Name    string
	SSLMode string
}

// DSN returns a postgres:// connection URL.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Log stores logger settings.
type Log struct {
	Level   string
	Backend string
}

// Pagination stores listing limits.
type Pagination struct {
	DefaultPageSize int
	MaxPageSize     int
}

// RateLimit stores per-client rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64 // requests per second
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:             defaultPort,
		OperationTimeout: defaultOperationTimeout,
		DB:               defaultDB,
		Log:              defaultLog,
		Pagination:       defaultPagination,
		RateLimit:        defaultRateLimit,
	}
	if err := fromEnv(cfg); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.BoolVar(&cfg.MigrateOnStart, "migrate", cfg.MigrateOnStart, "apply database migrations on start")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv(cfg *Config) error {
	if err := envInt("PORT", &cfg.Port); err != nil {
		return err
	}
	envString("POSTGRES_HOST", &cfg.DB.Host)
	envString("POSTGRES_PORT", &cfg.DB.Port)
	envString("POSTGRES_USER", &cfg.DB.User)
	envString("POSTGRES_PASSWORD", &cfg.DB.Pass)
	envString("POSTGRES_DB", &cfg.DB.Name)
	envString("POSTGRES_SSLMODE", &cfg.DB.SSLMode)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}

	envString("LOG_LEVEL", &cfg.Log.Level)
	envString("LOG_BACKEND", &cfg.Log.Backend)

	if err := envDuration("OPERATION_TIMEOUT", &cfg.OperationTimeout); err != nil {
		return err
	}
	if err := envBool("MIGRATE_ON_START", &cfg.MigrateOnStart); err != nil {
		return err
	}
	if err := envInt("PAGINATION_DEFAULT_SIZE", &cfg.Pagination.DefaultPageSize); err != nil {
		return err
	}
	if err := envInt("PAGINATION_MAX_SIZE", &cfg.Pagination.MaxPageSize); err != nil {
		return err
	}

	if err := envBool("RATE_LIMIT_ENABLED", &cfg.RateLimit.Enabled); err != nil {
		return err
	}
	if err := envFloat("RATE_LIMIT_RPS", &cfg.RateLimit.Rate); err != nil {
		return err
	}
	if err := envInt("RATE_LIMIT_BURST", &cfg.RateLimit.Burst); err != nil {
		return err
	}
	if err := envDuration("RATE_LIMIT_TTL", &cfg.RateLimit.TTL); err != nil {
		return err
	}
	return envInt("RATE_LIMIT_MAX_BUCKETS", &cfg.RateLimit.MaxBuckets)
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("invalid operation timeout: %s", c.OperationTimeout)
	}
	if c.Pagination.MaxPageSize <= 0 {
		return fmt.Errorf("invalid max page size: %d", c.Pagination.MaxPageSize)
	}
	if c.Pagination.DefaultPageSize <= 0 || c.Pagination.DefaultPageSize > c.Pagination.MaxPageSize {
		return fmt.Errorf("default page size %d must be in [1, %d]",
			c.Pagination.DefaultPageSize, c.Pagination.MaxPageSize)
	}
	switch c.Log.Backend {
	case LogBackendSlog, LogBackendZerolog:
	default:
		return fmt.Errorf("unknown log backend %q", c.Log.Backend)
	}
	return nil
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = f
	return nil
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = b
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}
