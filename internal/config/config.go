// Package config loads the client configuration from defaults, an
// optional YAML file, and GASPEEK_-prefixed environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/gaspeek/gaspeek/internal/geocode"
	"github.com/gaspeek/gaspeek/pkg/gasprices"
)

// Config holds runtime configuration for the gaspeek client.
type Config struct {
	BaseURL         string        `mapstructure:"base_url" validate:"required,url"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	LogLevel        string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	NominatimServer string        `mapstructure:"nominatim_server" validate:"required,url"`
}

// Load reads configuration, applying defaults, the optional config file
// at path, and GASPEEK_ environment variables, then validates the
// result.
func Load(path string) (*Config, error) {
	// A missing .env is fine; values may come from the real env.
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetDefault("base_url", gasprices.DefaultBaseURL)
	v.SetDefault("request_timeout", gasprices.DefaultTimeout)
	v.SetDefault("log_level", "info")
	v.SetDefault("nominatim_server", geocode.DefaultServer)

	v.SetEnvPrefix("GASPEEK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
