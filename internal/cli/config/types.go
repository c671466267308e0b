// Package config provides configuration management for the leapjc CLI.
//
// It layers CLI-only settings (output mode, verbosity, recording) over the
// shared ProjectConfig from internal/config.
package config

import (
	sharedcfg "github.com/leapstack-labs/leapjc/internal/config"
)

// ProjectConfig is an alias for the shared project configuration.
type ProjectConfig = sharedcfg.ProjectConfig

// Config holds all CLI configuration options.
type Config struct {
	ProjectConfig `koanf:",squash"`
	Verbose       bool   `koanf:"verbose"`
	OutputFormat  string `koanf:"output"`
	// Record stores every lex run in the state database.
	Record bool `koanf:"record"`
	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
