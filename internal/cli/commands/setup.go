// Package commands implements the leapjc subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapjc/internal/cli/config"
	"github.com/leapstack-labs/leapjc/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/leapjc/internal/config"
	"github.com/leapstack-labs/leapjc/internal/engine"
	"github.com/leapstack-labs/leapjc/internal/state"
	"github.com/leapstack-labs/leapjc/pkg/name"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Pool     *name.Pool
}

// NewCommandContext builds the context from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	mode, err := output.ParseMode(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
		Pool:     cfg.NameTable.NewPool(),
	}, nil
}

// getConfig returns the current configuration, or defaults when the
// command runs without the root pre-run hook (as in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	cfg := &config.Config{OutputFormat: config.DefaultOutput}
	sharedcfg.ApplyDefaults(&cfg.ProjectConfig)
	return cfg
}

// NewEngine creates an engine from the configuration. record receives
// every run; history only answers change detection. Either may be nil.
func (cc *CommandContext) NewEngine(record, history state.Store) (*engine.Engine, error) {
	cfg := cc.Cfg
	return engine.New(engine.Config{
		Charset:      cfg.Charset,
		TabSize:      cfg.TabSize,
		KeepComments: cfg.KeepComments,
		Workers:      cfg.Workers,
		Pool:         cc.Pool,
		Store:        record,
		History:      history,
		Disabled:     cfg.Diagnostics.Disabled,
		Severity:     cfg.Diagnostics.Severity,
		Logger:       cc.Logger,
	})
}

// OpenStore opens the state database, creating its directory and
// applying migrations.
func (cc *CommandContext) OpenStore() (*state.SQLiteStore, error) {
	path := cc.Cfg.StatePath
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}
	store := state.NewSQLiteStore(cc.Logger)
	if err := state.OpenAndMigrate(path, store); err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	return store, nil
}

// OpenExistingStore opens the state database only if it already exists.
func (cc *CommandContext) OpenExistingStore() (*state.SQLiteStore, error) {
	if _, err := os.Stat(cc.Cfg.StatePath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no state database at %s (run `leapjc lex --record` first)", cc.Cfg.StatePath)
		}
		return nil, fmt.Errorf("failed to stat state database: %w", err)
	}
	return cc.OpenStore()
}
