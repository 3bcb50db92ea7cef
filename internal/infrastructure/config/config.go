package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Storage   StorageConfig
	Catalog   CatalogConfig
	Events    EventsConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// AuthConfig holds session and credential policy.
type AuthConfig struct {
	// Secret signs session tokens; override in any real deployment.
	Secret string `envconfig:"AUTH_SECRET" default:"launchpad-dev-secret"`
	// SessionTTLHours bounds session lifetime.
	SessionTTLHours int `envconfig:"AUTH_SESSION_TTL_HOURS" default:"24"`
	// AllowDemoFallback accepts any well-formed email with a password of
	// at least MinPasswordLen as an ephemeral regular user. Demo
	// affordance only; off means the seeded credential table is the sole
	// authority.
	AllowDemoFallback bool `envconfig:"AUTH_ALLOW_DEMO_FALLBACK" default:"true"`
	MinPasswordLen    int  `envconfig:"AUTH_MIN_PASSWORD_LEN" default:"4"`
	// DemoOTP issues the fixed recovery code instead of a random one.
	DemoOTP bool `envconfig:"AUTH_DEMO_OTP" default:"true"`
	// ProviderDelayMS simulates external identity provider latency.
	ProviderDelayMS int `envconfig:"AUTH_PROVIDER_DELAY_MS" default:"1000"`
}

// StorageConfig holds the persistence backend configuration.
type StorageConfig struct {
	DataDir string `envconfig:"DATA_DIR" default:"/var/lib/launchpad"`
}

// CatalogConfig holds manifest loading configuration.
type CatalogConfig struct {
	// ExtraManifestDir is scanned for operator-supplied manifests on top
	// of the embedded set.
	ExtraManifestDir string `envconfig:"CATALOG_EXTRA_DIR" default:""`
}

// EventsConfig holds the notification simulator configuration.
type EventsConfig struct {
	SimulateEvents bool   `envconfig:"EVENTS_SIMULATE" default:"false"`
	Schedule       string `envconfig:"EVENTS_SCHEDULE" default:"*/10 * * * *"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Auth: AuthConfig{
			Secret:            "launchpad-dev-secret",
			SessionTTLHours:   24,
			AllowDemoFallback: true,
			MinPasswordLen:    4,
			DemoOTP:           true,
			ProviderDelayMS:   1000,
		},
		Storage: StorageConfig{
			DataDir: "/var/lib/launchpad",
		},
		Events: EventsConfig{
			SimulateEvents: false,
			Schedule:       "*/10 * * * *",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
