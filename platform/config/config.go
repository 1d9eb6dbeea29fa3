// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
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

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// MigrationConfig controls whether services apply schema migrations at startup.
type MigrationConfig interface {
	ShouldRunMigrations() bool
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// CacheConfig provides settings for the sales tip result cache.
type CacheConfig interface {
	GetRedisURL() string
	GetSalesTipsCacheTTL() time.Duration
	IsCacheEnabled() bool
}

// RateLimitConfig provides per-IP limits for the sales tip endpoints.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// PhoneConfig provides the region used when a stored phone number has no country code.
type PhoneConfig interface {
	GetPhoneDefaultRegion() string
}

// WarmupConfig provides settings for the cache warmup job.
type WarmupConfig interface {
	GetWarmupBatchSize() int
	GetWarmupConcurrency() int
	GetWarmupLookback() time.Duration
}

// SchedulerConfig provides settings for the asynq warmup scheduler and worker.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
	GetWarmupCron() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration.
// It implements all module-specific config interfaces.
type Config struct {
	Env               string
	HTTPAddr          string
	DatabaseURL       string
	RunMigrations     bool
	JWTAccessSecret   string
	CORSAllowAll      bool
	CORSOrigins       []string
	CORSAllowCreds    bool
	RedisURL          string
	SalesTipsCacheTTL time.Duration
	RateLimitRPS      float64
	RateLimitBurst    int
	PhoneRegion       string
	WarmupBatchSize   int
	WarmupConcurrency int
	WarmupLookback    time.Duration
	WarmupCron        string
	RedisTLSInsecure  bool
	AsynqQueueName    string
	AsynqConcurrency  int
}

// DatabaseConfig
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// MigrationConfig
func (c *Config) ShouldRunMigrations() bool { return c.RunMigrations }

// JWTConfig
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HTTPConfig
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// CacheConfig
func (c *Config) GetRedisURL() string                 { return c.RedisURL }
func (c *Config) GetSalesTipsCacheTTL() time.Duration { return c.SalesTipsCacheTTL }
func (c *Config) IsCacheEnabled() bool {
	return c.RedisURL != "" && c.SalesTipsCacheTTL > 0
}

// RateLimitConfig
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int    { return c.RateLimitBurst }

// PhoneConfig
func (c *Config) GetPhoneDefaultRegion() string { return c.PhoneRegion }

// WarmupConfig
func (c *Config) GetWarmupBatchSize() int          { return c.WarmupBatchSize }
func (c *Config) GetWarmupConcurrency() int        { return c.WarmupConcurrency }
func (c *Config) GetWarmupLookback() time.Duration { return c.WarmupLookback }

// SchedulerConfig
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }
func (c *Config) GetWarmupCron() string     { return c.WarmupCron }

// Load reads configuration from the environment, after loading a .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	var env envParser
	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		RunMigrations:     strings.EqualFold(getEnv("DB_RUN_MIGRATIONS", "true"), "true"),
		JWTAccessSecret:   getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		CORSAllowCreds:    strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RedisURL:          getEnv("REDIS_URL", ""),
		SalesTipsCacheTTL: env.parseDuration("SALES_TIPS_CACHE_TTL", "15m"),
		RateLimitRPS:      env.parseFloat("SALES_TIPS_RATE_LIMIT_RPS", "5"),
		RateLimitBurst:    env.parseInt("SALES_TIPS_RATE_LIMIT_BURST", "20"),
		PhoneRegion:       strings.ToUpper(getEnv("PHONE_DEFAULT_REGION", "US")),
		WarmupBatchSize:   env.parseInt("WARMUP_BATCH_SIZE", "100"),
		WarmupConcurrency: env.parseInt("WARMUP_CONCURRENCY", "4"),
		WarmupLookback:    env.parseDuration("WARMUP_LOOKBACK", "72h"),
		WarmupCron:        getEnv("WARMUP_CRON", "*/15 * * * *"),
		RedisTLSInsecure:  strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:    getEnv("ASYNQ_QUEUE_NAME", "salestips"),
		AsynqConcurrency:  env.parseInt("ASYNQ_CONCURRENCY", "2"),
	}

	if err := errors.Join(env.errs...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWTAccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("SALES_TIPS_RATE_LIMIT_RPS and SALES_TIPS_RATE_LIMIT_BURST must be positive")
	}
	if c.WarmupBatchSize <= 0 {
		c.WarmupBatchSize = 100
	}
	if c.WarmupConcurrency <= 0 {
		c.WarmupConcurrency = 1
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// envParser reads typed values from the environment and records every value
// that fails to parse, so a typo is reported instead of becoming zero.
type envParser struct {
	errs []error
}

func (p *envParser) parseDuration(key, fallback string) time.Duration {
	value := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid duration %q", key, value))
		return 0
	}
	return d
}

func (p *envParser) parseInt(key, fallback string) int {
	value := getEnv(key, fallback)
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid integer %q", key, value))
		return 0
	}
	return result
}

func (p *envParser) parseFloat(key, fallback string) float64 {
	value := getEnv(key, fallback)
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid number %q", key, value))
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
