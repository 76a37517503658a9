// String Analyzer is an HTTP service that stores strings and computes
// derived properties over them.
//
// Every stored string is analyzed once at insertion time: length,
// palindrome detection, unique character count, word count, SHA-256
// content hash, and a character frequency map. Stored strings can then
// be listed through structured filters or through a small set of
// natural language query heuristics.
//
// Usage:
//
//	# Start the server with default configuration
//	string-analyzer run
//
//	# Start with a custom configuration file
//	string-analyzer run --config /path/to/config.yaml
//
//	# Validate a configuration file
//	string-analyzer validate --config /path/to/config.yaml
//
//	# Analyze a string offline without starting the server
//	string-analyzer analyze "racecar"
//
//	# Show version information
//	string-analyzer version
package main

func main() {
	Execute()
}
