// Package config loads and validates the bot configuration from an optional
// YAML file, environment variables, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrConfiguration wraps every error returned by LoadConfig. It is fatal at startup.
var ErrConfiguration = errors.New("configuration error")

// Environment variables read directly, without the BOT_ prefix.
const (
	EnvAirQualityKey = "AIR_API_KEY"
	EnvTelegramToken = "TELEGRAM_BOT_TOKEN"
)

// Config is the complete application configuration.
type Config struct {
	Logger     LoggerConfig     `mapstructure:"logger"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	AirQuality AirQualityConfig `mapstructure:"air_quality"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// LoggerConfig controls log level and output format.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the Bot API credential.
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`
}

// AirQualityConfig configures the AirVisual client. A zero Timeout leaves
// the HTTP transport defaults in place.
type AirQualityConfig struct {
	APIKey  string        `mapstructure:"api_key"  validate:"required"`
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout"  validate:"min=0s,max=5m"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a scheduled task with a cron expression (seconds field optional).
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address" validate:"required_if=Enabled true"`
}

// LoadConfig reads configPath if it exists, applies BOT_* environment
// overrides plus AIR_API_KEY and TELEGRAM_BOT_TOKEN, fills defaults, and
// validates the result. A missing AIR_API_KEY is reported explicitly.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("air_quality.api_key", EnvAirQualityKey, "BOT_AIR_QUALITY_API_KEY"); err != nil {
		return nil, fmt.Errorf("%w: bind %s: %v", ErrConfiguration, EnvAirQualityKey, err)
	}
	if err := v.BindEnv("telegram.token", EnvTelegramToken, "BOT_TELEGRAM_TOKEN"); err != nil {
		return nil, fmt.Errorf("%w: bind %s: %v", ErrConfiguration, EnvTelegramToken, err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: failed to read config file %s: %v", ErrConfiguration, configPath, err)
			}
			// Config file not found is okay, env and defaults still apply
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if strings.TrimSpace(cfg.AirQuality.APIKey) == "" {
		return nil, fmt.Errorf("%w: %s environment variable is not set", ErrConfiguration, EnvAirQualityKey)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return cfg, nil
}
