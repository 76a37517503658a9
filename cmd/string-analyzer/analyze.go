package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Toluwaa-o/string-analyzer/pkg/analyzer"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <string>",
	Short: "Analyze a string offline",
	Long: `Compute the derived properties of a string without starting the server.

The output is the same properties object the HTTP API stores: length,
palindrome flag, unique character count, word count, SHA-256 hash, and
the character frequency map in first-appearance order.

Examples:
  string-analyzer analyze "racecar"
  string-analyzer analyze "A man a plan a canal Panama"`,
	Args: cobra.ExactArgs(1),
	RunE: analyzeString,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeString(cmd *cobra.Command, args []string) error {
	props := analyzer.Analyze(args[0])

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(props); err != nil {
		return fmt.Errorf("failed to encode properties: %w", err)
	}
	return nil
}
