package lexer

import (
	"log/slog"

	"github.com/leapstack-labs/leapjc/pkg/diag"
	"github.com/leapstack-labs/leapjc/pkg/name"
	"github.com/leapstack-labs/leapjc/pkg/token"
)

// Config configures a Factory. Zero values select defaults.
type Config struct {
	// Names is the table identifiers are interned into. When nil a table
	// is taken from Pool.
	Names *name.Table
	// Pool supplies the table when Names is nil. Defaults to name.DefaultPool.
	Pool     *name.Pool
	Reporter diag.Reporter
	Logger   *slog.Logger
	Hooks    Hooks
	Options  Options
}

// Factory creates tokenizers and scanners that share one name table and
// one keyword registry.
type Factory struct {
	names    *name.Table
	pooled   bool
	registry *token.Registry
	reporter diag.Reporter
	logger   *slog.Logger
	hooks    Hooks
	opts     Options
}

// NewFactory builds the registry for the configured table.
func NewFactory(cfg Config) *Factory {
	f := &Factory{
		names:    cfg.Names,
		reporter: cfg.Reporter,
		logger:   cfg.Logger,
		hooks:    cfg.Hooks,
		opts:     cfg.Options,
	}
	if f.names == nil {
		pool := cfg.Pool
		if pool == nil {
			pool = name.DefaultPool
		}
		f.names = pool.Get()
		f.pooled = true
	}
	if f.reporter == nil {
		f.reporter = diag.Discard
	}
	if f.logger == nil {
		f.logger = slog.New(slog.DiscardHandler)
	}
	if f.opts.TabSize <= 0 {
		f.opts.TabSize = DefaultTabSize
	}
	f.registry = token.NewRegistry(f.names)
	f.logger.Debug("scanner factory ready",
		slog.Int("names", f.names.Len()),
		slog.Bool("pooled", f.pooled))
	return f
}

// Names returns the shared name table.
func (f *Factory) Names() *name.Table { return f.names }

// Registry returns the keyword registry built on Names.
func (f *Factory) Registry() *token.Registry { return f.registry }

// NewTokenizer returns a tokenizer over input.
func (f *Factory) NewTokenizer(input []rune) *Tokenizer {
	return newTokenizer(f, input)
}

// NewScanner returns a scanner positioned on the first token of input.
func (f *Factory) NewScanner(input []rune) *Scanner {
	return newScanner(newTokenizer(f, input))
}

// NewScannerString is NewScanner for a string.
func (f *Factory) NewScannerString(input string) *Scanner {
	return f.NewScanner([]rune(input))
}

// Close returns a pooled name table to its pool. Names and tokens produced
// by this factory must not be used afterwards.
func (f *Factory) Close() {
	if f.pooled {
		f.names.Dispose()
		f.pooled = false
	}
}

// Tokenize scans input to the end and returns every token including the
// final EOF.
func Tokenize(f *Factory, input []rune) []token.Token {
	t := f.NewTokenizer(input)
	var out []token.Token
	for {
		tok := t.ReadToken()
		out = append(out, tok)
		if tok.Kind() == token.EOF {
			return out
		}
	}
}
