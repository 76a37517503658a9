package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file, applies defaults, and
// validates the result. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Variables follow the naming
// convention ANALYZER_SECTION_FIELD (e.g. ANALYZER_SERVER_LISTEN_ADDRESS)
// and always take precedence over file values.
//
// The loading sequence is:
//  1. Load YAML from file
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate the final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies ANALYZER_* environment variable overrides.
// Values that fail to parse are ignored; validation afterwards catches
// anything that ends up inconsistent.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("ANALYZER_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("ANALYZER_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("ANALYZER_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv("ANALYZER_SERVER_IDLE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.IdleTimeout = d
		}
	}
	if val := os.Getenv("ANALYZER_SERVER_SHUTDOWN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}
	if val := os.Getenv("ANALYZER_SERVER_MAX_HEADER_BYTES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Server.MaxHeaderBytes = i
		}
	}

	if val := os.Getenv("ANALYZER_ANALYSIS_MAX_VALUE_BYTES"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Analysis.MaxValueBytes = i
		}
	}

	if val := os.Getenv("ANALYZER_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("ANALYZER_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("ANALYZER_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = &b
		}
	}
	if val := os.Getenv("ANALYZER_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
	if val := os.Getenv("ANALYZER_REPORT_SCHEDULE"); val != "" {
		cfg.Telemetry.ReportSchedule = val
	}
	if val := os.Getenv("ANALYZER_WATCH_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Watch.Enabled = b
		}
	}
}
