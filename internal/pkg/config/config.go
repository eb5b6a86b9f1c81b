package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Quote QuoteConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=delivery_quote"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// QuoteConfig tunes the quoting engine. The default hub sits in central Makurdi.
type QuoteConfig struct {
	Timezone      string        `env:"QUOTE_TIMEZONE,        default=Africa/Lagos"`
	SettingsTTL   time.Duration `env:"QUOTE_SETTINGS_TTL,    default=60s"`
	CatalogTTL    time.Duration `env:"QUOTE_CATALOG_TTL,     default=5m"`
	RiderTimeout  time.Duration `env:"QUOTE_RIDER_TIMEOUT,   default=150ms"`
	AuditWorkers  int           `env:"QUOTE_AUDIT_WORKERS,   default=4"`
	DefaultHubLat float64       `env:"QUOTE_DEFAULT_HUB_LAT, default=7.7322"`
	DefaultHubLng float64       `env:"QUOTE_DEFAULT_HUB_LNG, default=8.5391"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through an explicit lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if cfg.Quote.AuditWorkers < 1 {
		return nil, fmt.Errorf("config: QUOTE_AUDIT_WORKERS must be at least 1, got %d", cfg.Quote.AuditWorkers)
	}
	if _, err := time.LoadLocation(cfg.Quote.Timezone); err != nil {
		return nil, fmt.Errorf("config: QUOTE_TIMEZONE: %w", err)
	}
	return &cfg, nil
}
