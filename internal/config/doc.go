// Package config loads the till's runtime settings: built-in defaults,
// then an optional JSON file named by -c/-config, then command-line flags.
// Each later source overrides the earlier ones.
package config
