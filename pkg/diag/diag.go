// Package diag is the boundary between the front end and whoever renders
// its problems. Producers hand a Reporter a (position, key, arguments)
// triple; formatting beyond Message is left to the consumer.
package diag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Diagnostic is one reported problem.
type Diagnostic struct {
	Severity Severity
	Pos      int // character offset
	EndPos   int // optional; equal to Pos when unknown
	Key      string
	Args     []any
}

// Errorf builds an error diagnostic at pos.
func Errorf(pos int, key string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityError, Pos: pos, EndPos: pos, Key: key, Args: args}
}

// Message renders d as "key" or "key: arg, arg".
func Message(d Diagnostic) string {
	if len(d.Args) == 0 {
		return d.Key
	}
	parts := make([]string, len(d.Args))
	for i, a := range d.Args {
		parts[i] = fmt.Sprint(a)
	}
	return d.Key + ": " + strings.Join(parts, ", ")
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %s: %s", d.Pos, d.Severity, Message(d))
}

// Reporter receives diagnostics synchronously, in the order they occur.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// Bag collects diagnostics in report order. It is safe for concurrent use.
type Bag struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Report appends d.
func (b *Bag) Report(d Diagnostic) {
	b.mu.Lock()
	b.diags = append(b.diags, d)
	b.mu.Unlock()
}

// All returns a copy of the collected diagnostics.
func (b *Bag) All() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Diagnostic, len(b.diags))
	copy(out, b.diags)
	return out
}

// Len returns the number of collected diagnostics.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.diags)
}

// HasErrors reports whether any error-severity diagnostic was collected.
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, d := range b.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Keys returns the keys of the collected diagnostics in order.
func (b *Bag) Keys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]string, len(b.diags))
	for i, d := range b.diags {
		keys[i] = d.Key
	}
	return keys
}

// Reset drops everything collected so far.
func (b *Bag) Reset() {
	b.mu.Lock()
	b.diags = nil
	b.mu.Unlock()
}

type multi []Reporter

func (m multi) Report(d Diagnostic) {
	for _, r := range m {
		r.Report(d)
	}
}

// Multi fans each diagnostic out to every non-nil reporter in order.
func Multi(rs ...Reporter) Reporter {
	out := make(multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// LogReporter writes one structured record per diagnostic.
type LogReporter struct {
	Logger *slog.Logger
	File   string
}

// NewLogReporter returns a reporter logging to logger. A nil logger discards.
func NewLogReporter(logger *slog.Logger, file string) *LogReporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogReporter{Logger: logger, File: file}
}

// Report logs d at a level matching its severity.
func (r *LogReporter) Report(d Diagnostic) {
	level := slog.LevelError
	switch d.Severity {
	case SeverityWarning:
		level = slog.LevelWarn
	case SeverityNote:
		level = slog.LevelInfo
	}
	attrs := []slog.Attr{
		slog.Int("pos", d.Pos),
		slog.String("key", d.Key),
	}
	if r.File != "" {
		attrs = append(attrs, slog.String("file", r.File))
	}
	if len(d.Args) > 0 {
		attrs = append(attrs, slog.Any("args", d.Args))
	}
	r.Logger.LogAttrs(context.Background(), level, Message(d), attrs...)
}
