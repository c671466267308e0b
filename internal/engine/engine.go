// Package engine lexes batches of source files concurrently and, when a
// state store is configured, records every run.
package engine

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/leapstack-labs/leapjc/internal/state"
	"github.com/leapstack-labs/leapjc/pkg/diag"
	"github.com/leapstack-labs/leapjc/pkg/lexer"
	"github.com/leapstack-labs/leapjc/pkg/name"
	"github.com/leapstack-labs/leapjc/pkg/source"
)

// Config holds engine configuration.
type Config struct {
	// Charset names the encoding of every input file.
	Charset string
	// TabSize is the tab stop width used for column numbers.
	TabSize int
	// KeepComments attaches comments to the tokens that follow them.
	KeepComments bool
	// Workers bounds the number of files lexed at once.
	Workers int
	// Pool supplies one name table per file. Defaults to name.DefaultPool.
	Pool *name.Pool
	// Store records runs when non-nil.
	Store state.Store
	// History answers Changed. Defaults to Store; set it alone to detect
	// changes without recording.
	History state.Store
	// Disabled lists diagnostic keys that are dropped.
	Disabled []string
	// Severity remaps diagnostic keys to another severity name.
	Severity map[string]string
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Engine lexes files. It is safe for concurrent use.
type Engine struct {
	charset      string
	tabSize      int
	keepComments bool
	workers      int
	pool         *name.Pool
	store        state.Store
	history      state.Store
	override     *diag.Override
	logger       *slog.Logger
}

// New validates cfg and returns an engine.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	charset := cfg.Charset
	if charset == "" {
		charset = source.DefaultCharset
	}
	if _, err := source.Encoding(charset); err != nil {
		return nil, err
	}

	override, err := diag.NewOverride(nil, cfg.Disabled, cfg.Severity)
	if err != nil {
		return nil, fmt.Errorf("invalid diagnostics configuration: %w", err)
	}

	e := &Engine{
		charset:      charset,
		tabSize:      cfg.TabSize,
		keepComments: cfg.KeepComments,
		workers:      cfg.Workers,
		pool:         cfg.Pool,
		store:        cfg.Store,
		history:      cfg.History,
		override:     override,
		logger:       logger,
	}
	if e.history == nil {
		e.history = cfg.Store
	}
	if e.tabSize <= 0 {
		e.tabSize = lexer.DefaultTabSize
	}
	if e.workers <= 0 {
		e.workers = runtime.NumCPU()
	}
	if e.pool == nil {
		e.pool = name.DefaultPool
	}
	return e, nil
}

// Store returns the configured store, or nil.
func (e *Engine) Store() state.Store {
	return e.store
}

// Workers returns the concurrency limit.
func (e *Engine) Workers() int {
	return e.workers
}

// reporter returns a per-file reporter feeding bag through the
// configured overrides.
func (e *Engine) reporter(bag *diag.Bag) diag.Reporter {
	return &diag.Override{
		Next:     bag,
		Disabled: e.override.Disabled,
		Severity: e.override.Severity,
	}
}
