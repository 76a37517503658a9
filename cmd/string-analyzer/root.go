package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "string-analyzer",
	Short: "String Analyzer - HTTP string analysis service",
	Long: `String Analyzer is an HTTP service that stores strings and computes
derived properties over them.

Each stored string is analyzed once at insertion time:
  - Length and word count
  - Palindrome detection (alphanumeric characters only)
  - Unique character count and character frequency map
  - SHA-256 content hash (also the record identifier)

Stored strings can be listed through structured filter parameters or
through a small set of natural language query heuristics.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
