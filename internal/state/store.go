// Package state records lexing runs in a local SQLite database so that
// later invocations can report history and skip unchanged files.
package state

import (
	"context"
	"errors"
	"time"
)

// ErrNotOpen is returned by every Store method called before Open.
var ErrNotOpen = errors.New("database not opened")

// ErrRunNotFound is wrapped when a run id is unknown.
var ErrRunNotFound = errors.New("run not found")

// RunStatus is the lifecycle state of a run.
type RunStatus string

// Run statuses.
const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// Run is one invocation of the lexer over a set of files.
type Run struct {
	ID          string     `json:"id" yaml:"id"`
	Status      RunStatus  `json:"status" yaml:"status"`
	StartedAt   time.Time  `json:"started_at" yaml:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	Files       int        `json:"files" yaml:"files"`
	Tokens      int        `json:"tokens" yaml:"tokens"`
	Errors      int        `json:"errors" yaml:"errors"`
	Error       string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary is what a finished run reports back.
type Summary struct {
	Files  int
	Tokens int
	Errors int
}

// FileResult is the outcome of lexing one file within a run.
type FileResult struct {
	RunID    string        `json:"run_id" yaml:"run_id"`
	Path     string        `json:"path" yaml:"path"`
	Hash     string        `json:"hash" yaml:"hash"`
	Tokens   int           `json:"tokens" yaml:"tokens"`
	Errors   int           `json:"errors" yaml:"errors"`
	Names    int           `json:"names" yaml:"names"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Diagnostic is a persisted lexical diagnostic.
type Diagnostic struct {
	Path     string `json:"path" yaml:"path"`
	Pos      int    `json:"pos" yaml:"pos"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
	Key      string `json:"key" yaml:"key"`
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
}

// Store is the persistence surface the engine depends on.
type Store interface {
	CreateRun(ctx context.Context) (*Run, error)
	CompleteRun(ctx context.Context, id string, status RunStatus, sum Summary, errMsg string) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)
	RecordFile(ctx context.Context, res FileResult, diags []Diagnostic) error
	FileResults(ctx context.Context, runID string) ([]FileResult, error)
	Diagnostics(ctx context.Context, runID string) ([]Diagnostic, error)
	LastHash(ctx context.Context, path string) (string, error)
	Close() error
}
