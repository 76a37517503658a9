package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the field (e.g. "server.listen_address").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration. All field errors are collected and reported together.
type ValidationError struct {
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:\n", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "  - %s\n", err.Error())
	}
	return sb.String()
}

// Validate validates the entire configuration, returning a
// ValidationError listing every failed rule, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateAnalysis(&cfg.Analysis)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if _, _, err := net.SplitHostPort(cfg.ListenAddress); err != nil {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: fmt.Sprintf("invalid address %q: must be host:port", cfg.ListenAddress),
		})
	}

	timeouts := []struct {
		field string
		value time.Duration
	}{
		{"server.read_timeout", cfg.ReadTimeout},
		{"server.write_timeout", cfg.WriteTimeout},
		{"server.idle_timeout", cfg.IdleTimeout},
		{"server.shutdown_timeout", cfg.ShutdownTimeout},
	}
	for _, t := range timeouts {
		if t.value < 0 {
			errs = append(errs, FieldError{Field: t.field, Message: "must not be negative"})
		}
	}

	if cfg.MaxHeaderBytes < 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "must not be negative",
		})
	}

	if cfg.CORS.MaxAge < 0 {
		errs = append(errs, FieldError{
			Field:   "server.cors.max_age",
			Message: "must not be negative",
		})
	}

	return errs
}

func validateAnalysis(cfg *AnalysisConfig) []FieldError {
	if cfg.MaxValueBytes < 0 {
		return []FieldError{{
			Field:   "analysis.max_value_bytes",
			Message: "must not be negative",
		}}
	}
	return nil
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid level %q: must be debug, info, warn, or error", cfg.Logging.Level),
		})
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid format %q: must be json or text", cfg.Logging.Format),
		})
	}

	if !strings.HasPrefix(cfg.Metrics.Path, "/") {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.path",
			Message: fmt.Sprintf("invalid path %q: must start with /", cfg.Metrics.Path),
		})
	}

	if cfg.ReportSchedule != "" {
		if _, err := cron.ParseStandard(cfg.ReportSchedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "telemetry.report_schedule",
				Message: fmt.Sprintf("invalid cron expression %q: %v", cfg.ReportSchedule, err),
			})
		}
	}

	return errs
}
