package engine

import (
	"time"

	"github.com/leapstack-labs/leapjc/pkg/name"
)

// Token is a lexed token detached from the name table it was interned
// in, so it stays valid after the table goes back to its pool.
type Token struct {
	Kind       string `json:"kind" yaml:"kind"`
	Text       string `json:"text" yaml:"text"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty"`
	Radix      int    `json:"radix,omitempty" yaml:"radix,omitempty"`
	Pos        int    `json:"pos" yaml:"pos"`
	End        int    `json:"end" yaml:"end"`
	Line       int    `json:"line" yaml:"line"`
	Column     int    `json:"column" yaml:"column"`
	Comments   int    `json:"comments,omitempty" yaml:"comments,omitempty"`
	Deprecated bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// Diagnostic is a reported problem resolved to a line and column.
type Diagnostic struct {
	Severity string `json:"severity" yaml:"severity"`
	Key      string `json:"key" yaml:"key"`
	Message  string `json:"message" yaml:"message"`
	Pos      int    `json:"pos" yaml:"pos"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
}

// FileResult is the outcome of lexing one file.
type FileResult struct {
	Path        string        `json:"path" yaml:"path"`
	Hash        string        `json:"hash" yaml:"hash"`
	Lines       int           `json:"lines" yaml:"lines"`
	Tokens      []Token       `json:"tokens" yaml:"tokens"`
	Diagnostics []Diagnostic  `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Names       name.Stats    `json:"names" yaml:"names"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
}

// Errors returns the number of error diagnostics.
func (r *FileResult) Errors() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == "error" {
			n++
		}
	}
	return n
}

// Report is the outcome of one LexFiles call. Files appear in the order
// their paths were given.
type Report struct {
	RunID    string        `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Files    []*FileResult `json:"files" yaml:"files"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// TokenCount sums tokens over all files.
func (r *Report) TokenCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Tokens)
	}
	return n
}

// ErrorCount sums error diagnostics over all files.
func (r *Report) ErrorCount() int {
	n := 0
	for _, f := range r.Files {
		n += f.Errors()
	}
	return n
}

// HasErrors reports whether any file had an error diagnostic.
func (r *Report) HasErrors() bool {
	return r.ErrorCount() > 0
}
