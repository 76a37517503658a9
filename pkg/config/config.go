package config

import "time"

// Config is the root configuration structure for the string analyzer
// service. It contains the HTTP server settings, analysis limits,
// telemetry settings, and the config-watch settings.
type Config struct {
	// Server contains HTTP server configuration including listen
	// address, timeouts, and CORS.
	Server ServerConfig `yaml:"server"`

	// Analysis contains limits applied to analyzed input.
	Analysis AnalysisConfig `yaml:"analysis"`

	// Telemetry contains logging, metrics, and reporting configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Watch contains configuration for live config reloading.
	Watch WatchConfig `yaml:"watch"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port". Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire
	// request, including the body. Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of
	// the response. Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum time to wait for the next request when
	// keep-alives are enabled. Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful
	// shutdown before in-flight requests are abandoned. Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits the bytes read while parsing request
	// headers. Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains CORS configuration.
type CORSConfig struct {
	// Enabled controls whether CORS headers are emitted. A pointer so
	// an absent key can default to true while an explicit false sticks.
	// Default: true
	Enabled *bool `yaml:"enabled"`

	// AllowedOrigins lists allowed origins. ["*"] allows all.
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods lists allowed HTTP methods for CORS requests.
	// Default: ["GET", "POST", "DELETE", "OPTIONS"]
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders lists allowed HTTP headers for CORS requests.
	// Default: ["Content-Type", "X-Request-ID"]
	AllowedHeaders []string `yaml:"allowed_headers"`

	// ExposedHeaders lists headers exposed to the client.
	// Default: ["X-Request-ID"]
	ExposedHeaders []string `yaml:"exposed_headers"`

	// MaxAge is the preflight cache age in seconds. Default: 3600
	MaxAge int `yaml:"max_age"`

	// AllowCredentials controls whether credentials are allowed.
	// Default: false
	AllowCredentials bool `yaml:"allow_credentials"`
}

// AnalysisConfig contains limits applied to analyzed input.
type AnalysisConfig struct {
	// MaxValueBytes caps the POST /strings request body size in bytes.
	// Default: 1048576 (1MB)
	MaxValueBytes int64 `yaml:"max_value_bytes"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// ReportSchedule is a cron expression for the periodic store usage
	// report. Empty disables the report. Default: ""
	ReportSchedule string `yaml:"report_schedule"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: json or text. Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file:line in log records. Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether the metrics endpoint is served. A
	// pointer so an absent key can default to true.
	// Default: true
	Enabled *bool `yaml:"enabled"`

	// Path is the metrics endpoint path. Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the Prometheus metric namespace.
	// Default: "string_analyzer"
	Namespace string `yaml:"namespace"`
}

// WatchConfig contains configuration for live config reloading.
type WatchConfig struct {
	// Enabled controls whether the config file is watched for changes.
	// Only the logging level is applied live; everything else requires
	// a restart. Default: false
	Enabled bool `yaml:"enabled"`
}
