package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults supplies the per-service default values applied before
// environment variables are read.
type Defaults struct {
	ServiceName string
	Port        int
}

// Load reads configuration from environment variables with the given prefix
// (e.g. prefix "API" makes API_SERVER_PORT override server.port) on top of
// the supplied defaults, then validates the result.
func Load(envPrefix string, defaults Defaults) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.service_name", defaults.ServiceName)
	v.SetDefault("server.port", defaults.Port)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.otlp_endpoint", "localhost:4317")
	v.SetDefault("telemetry.insecure", true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
