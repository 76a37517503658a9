// Package config handles configuration for the string analyzer service.
//
// Configuration is loaded from a YAML file, defaulted field-by-field,
// overridden from ANALYZER_* environment variables, and validated as a
// whole with every failed rule reported together. The loaded Config is
// passed explicitly to the components that need it; there is no global
// configuration state.
//
// Watcher optionally watches the config file with fsnotify and reapplies
// the logging level on change; every other setting requires a restart.
package config
