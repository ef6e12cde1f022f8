package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the config reads,
// e.g. MOCKSY_SERVER_PORT.
const EnvPrefix = "MOCKSY"

// keys lists every config key so that environment variables are honored even
// when neither a default nor a config file mentions the key.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.shutdown_timeout_seconds",
	"flash.secret",
	"flash.ttl_seconds",
	"flash.cookie_secure",
	"auth.stand_in_delay_ms",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom works like Load but looks for config.yaml in dir.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("flash.ttl_seconds", 60)
	v.SetDefault("flash.cookie_secure", false)
	v.SetDefault("auth.stand_in_delay_ms", 0)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
