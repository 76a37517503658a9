package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Toluwaa-o/string-analyzer/pkg/config"
	"github.com/Toluwaa-o/string-analyzer/pkg/server"
	"github.com/Toluwaa-o/string-analyzer/pkg/store"
	"github.com/Toluwaa-o/string-analyzer/pkg/telemetry/logging"
	"github.com/Toluwaa-o/string-analyzer/pkg/telemetry/metrics"
	"github.com/Toluwaa-o/string-analyzer/pkg/telemetry/report"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the string analyzer server",
	Long: `Start the string analyzer HTTP server with the specified configuration.

If the config file does not exist, built-in defaults are used. Environment
variables of the form ANALYZER_SECTION_FIELD override file values.

Examples:
  # Start with default config
  string-analyzer run

  # Start with custom config
  string-analyzer run --config /etc/string-analyzer/config.yaml

  # Override listen address
  string-analyzer run --listen 0.0.0.0:8080

  # Validate config without starting the server
  string-analyzer run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting the server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	levelVar, err := logging.Setup(cfg.Telemetry.Logging)
	if err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	printBanner(cfg)

	st := store.New()

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled != nil && *cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Telemetry.Metrics, nil)
		collector.Analysis().SetRecordCountFunc(st.Len)
		collector.Analysis().SetValueBytesFunc(st.ValueBytes)
	}

	reporter := report.NewReporter(cfg.Telemetry.ReportSchedule, st)
	if err := reporter.Start(); err != nil {
		slog.Warn("failed to start usage reporter", "error", err)
	} else {
		defer reporter.Stop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Watch.Enabled {
		watcher, err := config.NewWatcher(cfgFile, slog.Default())
		if err != nil {
			slog.Warn("failed to start config watcher", "error", err)
		} else {
			go func() {
				err := watcher.Watch(ctx, func(reloaded *config.Config) {
					applyReloadedConfig(levelVar, reloaded)
				})
				if err != nil {
					slog.Warn("config watcher stopped", "error", err)
				}
			}()
			defer watcher.Stop()
			fmt.Printf("✓ Watching %s for changes\n", cfgFile)
		}
	}

	srv := server.NewServer(cfg, st, collector)

	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/health\n", cfg.Server.ListenAddress)
	if collector != nil {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n",
			cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	// Start blocks until a shutdown signal or server error.
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}

// loadRunConfig loads the config file, falling back to built-in defaults
// when the file does not exist.
func loadRunConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		return config.Default(), nil
	}

	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// applyReloadedConfig applies the live-reloadable subset of a reloaded
// configuration. Only the log level is applied; everything else requires
// a restart.
func applyReloadedConfig(levelVar *slog.LevelVar, cfg *config.Config) {
	level, err := logging.ParseLevel(cfg.Telemetry.Logging.Level)
	if err != nil {
		slog.Warn("reloaded config has invalid log level",
			"level", cfg.Telemetry.Logging.Level, "error", err)
		return
	}

	if levelVar.Level() != level {
		slog.Info("log level updated", "level", cfg.Telemetry.Logging.Level)
		levelVar.Set(level)
	}
}

func printBanner(cfg *config.Config) {
	fmt.Printf("String Analyzer v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	if cfg.Telemetry.ReportSchedule != "" {
		slog.Debug("usage report scheduled", "schedule", cfg.Telemetry.ReportSchedule)
	}
}
