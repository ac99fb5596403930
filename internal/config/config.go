// Package config defines the application configuration and its loading
// from environment variables.
package config

// Config holds all settings for one service instance. Both services share
// this shape; they differ only in defaults and environment prefix.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig contains the HTTP server and logging settings.
type ServerConfig struct {
	ServiceName string `mapstructure:"service_name" validate:"required"`
	Port        int    `mapstructure:"port"         validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"    validate:"required,oneof=debug info warn error"`
}

// TelemetryConfig contains the distributed tracing exporter settings.
// Tracing is disabled by default; when enabled, spans are exported over
// OTLP gRPC to the configured endpoint.
type TelemetryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint" validate:"required_if=Enabled true"`
	Insecure     bool   `mapstructure:"insecure"`
}
