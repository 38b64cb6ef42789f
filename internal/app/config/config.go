package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the gateway configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Tequila  Tequila    `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Location Location   `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// Tequila holds the upstream API settings. An empty BaseURL uses the
// production host.
type Tequila struct {
	APIKey    string        `mapstructure:"TEQUILA_API_KEY"`
	BaseURL   string        `mapstructure:"TEQUILA_BASE_URL"`
	AuthToken string        `mapstructure:"TEQUILA_AUTH_TOKEN"`
	Timeout   time.Duration `mapstructure:"TEQUILA_TIMEOUT"`
	// RateLimit is the number of upstream calls allowed per second, 0 disables it.
	RateLimit int `mapstructure:"TEQUILA_RATE_LIMIT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Location configures the cache of location lookups.
type Location struct {
	CacheExpiration time.Duration `mapstructure:"LOCATION_CACHE_EXPIRATION"`
	LockTimeout     time.Duration `mapstructure:"LOCATION_LOCK_TIMEOUT"`
}
