package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB

	// CORS defaults
	DefaultCORSEnabled = true
	DefaultCORSMaxAge  = 3600 // 1 hour

	// Analysis defaults
	DefaultMaxValueBytes = int64(1048576) // 1MB

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultMetricsEnabled   = true
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "string_analyzer"
)

// Default CORS header lists.
var (
	DefaultCORSAllowedOrigins = []string{"*"}
	DefaultCORSAllowedMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	DefaultCORSAllowedHeaders = []string{"Content-Type", "X-Request-ID"}
	DefaultCORSExposedHeaders = []string{"X-Request-ID"}
)

// ApplyDefaults applies default values to any zero-valued fields.
// It is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}

	// CORS defaults
	if cfg.Server.CORS.Enabled == nil {
		enabled := DefaultCORSEnabled
		cfg.Server.CORS.Enabled = &enabled
	}
	if cfg.Server.CORS.AllowedOrigins == nil {
		cfg.Server.CORS.AllowedOrigins = DefaultCORSAllowedOrigins
	}
	if cfg.Server.CORS.AllowedMethods == nil {
		cfg.Server.CORS.AllowedMethods = DefaultCORSAllowedMethods
	}
	if cfg.Server.CORS.AllowedHeaders == nil {
		cfg.Server.CORS.AllowedHeaders = DefaultCORSAllowedHeaders
	}
	if cfg.Server.CORS.ExposedHeaders == nil {
		cfg.Server.CORS.ExposedHeaders = DefaultCORSExposedHeaders
	}
	if cfg.Server.CORS.MaxAge == 0 {
		cfg.Server.CORS.MaxAge = DefaultCORSMaxAge
	}

	// Analysis defaults
	if cfg.Analysis.MaxValueBytes == 0 {
		cfg.Analysis.MaxValueBytes = DefaultMaxValueBytes
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Enabled == nil {
		enabled := DefaultMetricsEnabled
		cfg.Telemetry.Metrics.Enabled = &enabled
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// Default returns a fully defaulted configuration, equivalent to loading
// an empty config file.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
