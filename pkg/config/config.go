package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Session  SessionConfig
	Redis    RedisConfig
	OpenAI   OpenAIConfig
	Describe DescribeConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Catalog.PerCategory < 0 {
		return nil, fmt.Errorf("%s must not be negative", EnvCatalogPerCategory)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"SWIFTMARKET_APP_ENV" required:"true"`
	Port         string   `envconfig:"SWIFTMARKET_APP_PORT" default:"8080"`
	LogLevel     string   `envconfig:"SWIFTMARKET_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"SWIFTMARKET_LOG_WARN_STACK" default:"false"`
	LogFormat    string   `envconfig:"SWIFTMARKET_LOG_FORMAT" default:"json"`
	CORSOrigins  []string `envconfig:"SWIFTMARKET_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev) || strings.EqualFold(a.Env, "development")
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "production")
}

// CatalogConfig controls how the mock catalog is seeded for every new session.
type CatalogConfig struct {
	Seed        uint64 `envconfig:"SWIFTMARKET_CATALOG_SEED" default:"42"`
	PerCategory int    `envconfig:"SWIFTMARKET_CATALOG_PER_CATEGORY" default:"20"`
	File        string `envconfig:"SWIFTMARKET_CATALOG_FILE"`
	VendorID    string `envconfig:"SWIFTMARKET_VENDOR_ID" default:"v1"`
}

type SessionConfig struct {
	IdleTTL       time.Duration `envconfig:"SWIFTMARKET_SESSION_IDLE_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"SWIFTMARKET_SESSION_SWEEP_INTERVAL" default:"5m"`
}

// RedisConfig is optional; leaving URL and Address empty disables caching and rate limiting.
type RedisConfig struct {
	URL          string        `envconfig:"SWIFTMARKET_REDIS_URL"`
	Address      string        `envconfig:"SWIFTMARKET_REDIS_ADDR"`
	Password     string        `envconfig:"SWIFTMARKET_REDIS_PASSWORD"`
	DB           int           `envconfig:"SWIFTMARKET_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SWIFTMARKET_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SWIFTMARKET_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SWIFTMARKET_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SWIFTMARKET_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SWIFTMARKET_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type OpenAIConfig struct {
	APIKey  string        `envconfig:"SWIFTMARKET_OPENAI_API_KEY"`
	BaseURL string        `envconfig:"SWIFTMARKET_OPENAI_BASE_URL"`
	Model   string        `envconfig:"SWIFTMARKET_OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout time.Duration `envconfig:"SWIFTMARKET_OPENAI_TIMEOUT" default:"15s"`
}

// Enabled reports whether an API key was configured.
func (o OpenAIConfig) Enabled() bool {
	return strings.TrimSpace(o.APIKey) != ""
}

type DescribeConfig struct {
	CacheTTL        time.Duration `envconfig:"SWIFTMARKET_DESCRIBE_CACHE_TTL" default:"24h"`
	RateLimit       int           `envconfig:"SWIFTMARKET_DESCRIBE_RATE_LIMIT" default:"10"`
	RateLimitWindow time.Duration `envconfig:"SWIFTMARKET_DESCRIBE_RATE_LIMIT_WINDOW" default:"1m"`
}
