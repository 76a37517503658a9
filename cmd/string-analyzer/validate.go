package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Toluwaa-o/string-analyzer/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Load a configuration file, apply defaults and environment overrides,
and report every validation error found.

Examples:
  # Validate the default config file
  string-analyzer validate

  # Validate a specific file
  string-analyzer validate --config /etc/string-analyzer/config.yaml`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	fmt.Printf("✓ Configuration valid: %s\n", cfgFile)
	fmt.Printf("  listen address: %s\n", cfg.Server.ListenAddress)
	fmt.Printf("  log level:      %s\n", cfg.Telemetry.Logging.Level)
	fmt.Printf("  log format:     %s\n", cfg.Telemetry.Logging.Format)
	if cfg.Telemetry.Metrics.Enabled != nil && *cfg.Telemetry.Metrics.Enabled {
		fmt.Printf("  metrics path:   %s\n", cfg.Telemetry.Metrics.Path)
	} else {
		fmt.Println("  metrics:        disabled")
	}
	if cfg.Telemetry.ReportSchedule != "" {
		fmt.Printf("  usage report:   %s\n", cfg.Telemetry.ReportSchedule)
	}
	return nil
}
