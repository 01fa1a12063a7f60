// Package config loads, normalizes, and validates the gavel TOML
// configuration file.
package config
