package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// RecordFile stores res and its diagnostics in a single transaction.
func (s *SQLiteStore) RecordFile(ctx context.Context, res FileResult, diags []Diagnostic) error {
	if s.db == nil {
		return ErrNotOpen
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO file_results (run_id, path, hash, tokens, errors, names, duration_us)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.RunID, res.Path, res.Hash, res.Tokens, res.Errors, res.Names, res.Duration.Microseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to record file %s: %w", res.Path, err)
	}

	for _, d := range diags {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO diagnostics (run_id, path, pos, line, col, key, severity, message)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			res.RunID, res.Path, d.Pos, d.Line, d.Column, d.Key, d.Severity, d.Message,
		)
		if err != nil {
			return fmt.Errorf("failed to record diagnostic for %s: %w", res.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit file %s: %w", res.Path, err)
	}
	s.logger.Debug("recorded file",
		slog.String("run_id", res.RunID),
		slog.String("path", res.Path),
		slog.Int("diagnostics", len(diags)))
	return nil
}

// FileResults returns the files of a run in the order they were recorded.
func (s *SQLiteStore) FileResults(ctx context.Context, runID string) ([]FileResult, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, path, hash, tokens, errors, names, duration_us
		 FROM file_results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get file results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []FileResult
	for rows.Next() {
		var r FileResult
		var us int64
		if err := rows.Scan(&r.RunID, &r.Path, &r.Hash, &r.Tokens, &r.Errors, &r.Names, &us); err != nil {
			return nil, fmt.Errorf("failed to scan file result: %w", err)
		}
		r.Duration = time.Duration(us) * time.Microsecond
		out = append(out, r)
	}
	return out, rows.Err()
}

// Diagnostics returns the diagnostics of a run ordered by file and position.
func (s *SQLiteStore) Diagnostics(ctx context.Context, runID string) ([]Diagnostic, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT path, pos, line, col, key, severity, message
		 FROM diagnostics WHERE run_id = ? ORDER BY path, pos, id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get diagnostics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Diagnostic
	for rows.Next() {
		var d Diagnostic
		if err := rows.Scan(&d.Path, &d.Pos, &d.Line, &d.Column, &d.Key, &d.Severity, &d.Message); err != nil {
			return nil, fmt.Errorf("failed to scan diagnostic: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// LastHash returns the content hash of the most recent error-free record
// of path, or "" if there is none.
func (s *SQLiteStore) LastHash(ctx context.Context, path string) (string, error) {
	if s.db == nil {
		return "", ErrNotOpen
	}

	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT hash FROM file_results WHERE path = ? AND errors = 0 ORDER BY id DESC LIMIT 1`,
		path).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get content hash: %w", err)
	}
	return hash, nil
}
