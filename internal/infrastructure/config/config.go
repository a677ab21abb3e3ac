package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port         string `env:"PORT,          default=8080"`
	Env          string `env:"ENV,           default=development"`
	JWTSecret    string `env:"JWT_SECRET"`
	LogLevel     string `env:"LOG_LEVEL,     default=info"`
	TrackingMode string `env:"TRACKING_MODE, default=strict"` // strict | demo

	// AdminEmails is the bootstrap admin allow-list. Defaults to the
	// operator addresses when unset.
	AdminEmails []string `env:"ADMIN_EMAILS"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Carrier   CarrierConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=courier_tracking"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type CarrierConfig struct {
	// APIKey is the AfterShip credential. Absence is not a crash: the
	// tracking service reports a configuration error on the carrier path.
	APIKey  string        `env:"AFTERSHIP_API_KEY"`
	BaseURL string        `env:"AFTERSHIP_BASE_URL, default=https://api.aftership.com/v4"`
	Timeout time.Duration `env:"AFTERSHIP_TIMEOUT,  default=8s"`
}

type RateLimitConfig struct {
	// Requests per window per client IP on the public tracking endpoint.
	Requests int           `env:"RATE_LIMIT_REQUESTS, default=30"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW,   default=1m"`
}

// defaultAdminEmails are the operator bootstrap addresses, applied when
// ADMIN_EMAILS is unset.
var defaultAdminEmails = []string{
	"doublequickexpresscourierservicesser@gmail.com",
	"support@dqexpress.com",
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(cfg.AdminEmails) == 0 {
		cfg.AdminEmails = defaultAdminEmails
	}
	return &cfg, nil
}
