package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

var ErrMissingAPIKey = errors.New("TEQUILA_API_KEY is required")

// MustInitConfig loads the configuration and panics when it cannot be used.
func MustInitConfig(configFile string) Config {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		slog.Error("cannot load config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// LoadConfig reads configFile when it exists and falls back to environment
// variables otherwise. Environment variables are bound from the mapstructure
// tags of Config, so every key can be overridden from the environment.
func LoadConfig(configFile string) (Config, error) {
	var (
		vpr = viper.New()
		cfg Config
	)

	vpr.SetDefault("LOG_LEVEL", "info")
	vpr.SetDefault("HTTP_PORT", 8080)
	vpr.SetDefault("HTTP_TIMEOUT", "30s")
	vpr.SetDefault("TEQUILA_TIMEOUT", "30s")
	vpr.SetDefault("LOCATION_CACHE_EXPIRATION", "24h")
	vpr.SetDefault("LOCATION_LOCK_TIMEOUT", "5s")

	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Info("config file loaded successfully", slog.String("file", configFile))
	}

	bindEnvFromStruct(vpr)

	if err := vpr.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings the gateway cannot start without.
func (c Config) Validate() error {
	if c.Tequila.APIKey == "" {
		return ErrMissingAPIKey
	}

	if c.Tequila.RateLimit < 0 {
		return fmt.Errorf("TEQUILA_RATE_LIMIT must not be negative, got %d", c.Tequila.RateLimit)
	}

	return nil
}

// LogValue hides the credentials when the config is logged.
func (t Tequila) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", t.BaseURL),
		slog.Bool("api_key_set", t.APIKey != ""),
		slog.Bool("auth_token_set", t.AuthToken != ""),
		slog.Duration("timeout", t.Timeout),
		slog.Int("rate_limit", t.RateLimit),
	)
}

// LogValue hides the password when the config is logged.
func (r Redis) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", r.Addr),
		slog.Int("db", r.DB),
		slog.Duration("timeout", r.Timeout),
	)
}

func bindEnvFromStruct(vpr *viper.Viper) {
	bindEnvFromType(vpr, reflect.TypeOf(Config{}))
}

func bindEnvFromType(vpr *viper.Viper, t reflect.Type) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				bindEnvFromType(vpr, field.Type)
			}
			continue
		}

		envVar, opts, _ := strings.Cut(tag, ",")
		if strings.Contains(opts, "squash") && field.Type.Kind() == reflect.Struct {
			bindEnvFromType(vpr, field.Type)
			continue
		}

		if envVar == "" {
			continue
		}

		_ = vpr.BindEnv(envVar)

		// struct values may be given as JSON strings
		if field.Type.Kind() == reflect.Struct ||
			(field.Type.Kind() == reflect.Slice && field.Type.Elem().Kind() == reflect.Struct) {
			if s, ok := vpr.Get(envVar).(string); ok && s != "" {
				var jsonVal interface{}
				if err := json.Unmarshal([]byte(s), &jsonVal); err == nil {
					vpr.Set(envVar, jsonVal)
				}
			}
		}
	}
}
