// Package config provides the configuration types shared by the leapjc
// tools. It is decoupled from CLI concerns: the CLI layers environment
// variables and flags on top in internal/cli/config.
package config

import (
	"fmt"
	"time"

	"github.com/leapstack-labs/leapjc/pkg/diag"
	"github.com/leapstack-labs/leapjc/pkg/source"
)

// NameTableConfig sizes the name tables handed out by the pool.
type NameTableConfig struct {
	HashSize  int `koanf:"hash_size"`
	ArenaSize int `koanf:"arena_size"`
	PoolSize  int `koanf:"pool_size"`
}

// WatchConfig controls `lex --watch`.
type WatchConfig struct {
	Debounce time.Duration `koanf:"debounce"`
}

// REPLConfig controls the interactive lexer.
type REPLConfig struct {
	HistoryFile string `koanf:"history_file"`
	Prompt      string `koanf:"prompt"`
}

// DiagnosticsConfig remaps or silences diagnostics by key.
type DiagnosticsConfig struct {
	// Disabled contains diagnostic keys to drop
	Disabled []string `koanf:"disabled"`

	// Severity maps a diagnostic key to error, warning or note
	Severity map[string]string `koanf:"severity"`
}

// LexConfig holds the settings that change how source is read and lexed.
type LexConfig struct {
	Charset      string   `koanf:"charset"`
	TabSize      int      `koanf:"tab_size"`
	KeepComments bool     `koanf:"keep_comments"`
	Workers      int      `koanf:"workers"`
	Extensions   []string `koanf:"extensions"`
}

// ProjectConfig is the content of a leapjc.yaml file.
type ProjectConfig struct {
	LexConfig   `koanf:",squash"`
	StatePath   string            `koanf:"state_path"`
	NameTable   NameTableConfig   `koanf:"name_table"`
	Watch       WatchConfig       `koanf:"watch"`
	REPL        REPLConfig        `koanf:"repl"`
	Diagnostics DiagnosticsConfig `koanf:"diagnostics"`
}

// Validate checks values that defaults cannot repair.
func (c *ProjectConfig) Validate() error {
	if _, err := source.Encoding(c.Charset); err != nil {
		return fmt.Errorf("charset: %w", err)
	}
	if c.TabSize < 1 {
		return fmt.Errorf("tab_size must be positive, got %d", c.TabSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.NameTable.HashSize < 0 || c.NameTable.ArenaSize < 0 || c.NameTable.PoolSize < 0 {
		return fmt.Errorf("name_table sizes must not be negative")
	}
	for key, sev := range c.Diagnostics.Severity {
		if _, ok := diag.ParseSeverity(sev); !ok {
			return fmt.Errorf("diagnostics.severity.%s: unknown severity %q", key, sev)
		}
	}
	return nil
}

// Reporter wraps next with the configured key overrides.
func (c *ProjectConfig) Reporter(next diag.Reporter) (diag.Reporter, error) {
	if len(c.Diagnostics.Disabled) == 0 && len(c.Diagnostics.Severity) == 0 {
		return next, nil
	}
	return diag.NewOverride(next, c.Diagnostics.Disabled, c.Diagnostics.Severity)
}
