package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapjc/internal/state"
	"github.com/leapstack-labs/leapjc/pkg/diag"
	"github.com/leapstack-labs/leapjc/pkg/lexer"
	"github.com/leapstack-labs/leapjc/pkg/source"
	"github.com/leapstack-labs/leapjc/pkg/token"
)

// LexFiles lexes every path and returns the results in input order.
// Unreadable or undecodable files fail the whole call; lexical errors
// are reported as diagnostics on the file.
func (e *Engine) LexFiles(ctx context.Context, paths []string) (*Report, error) {
	start := time.Now()
	report := &Report{Files: make([]*FileResult, len(paths))}

	var run *state.Run
	if e.store != nil {
		var err error
		run, err = e.store.CreateRun(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create run: %w", err)
		}
		report.RunID = run.ID
	}

	e.logger.Debug("lexing files",
		slog.Int("files", len(paths)),
		slog.Int("workers", e.workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := e.lexFile(path)
			if err != nil {
				return err
			}
			report.Files[i] = res
			return nil
		})
	}
	err := g.Wait()
	report.Duration = time.Since(start)

	if run != nil {
		if recErr := e.record(ctx, run.ID, report, err); recErr != nil && err == nil {
			err = recErr
		}
	}
	if err != nil {
		return nil, err
	}

	e.logger.Debug("lexing complete",
		slog.Int("files", len(report.Files)),
		slog.Int("tokens", report.TokenCount()),
		slog.Int("errors", report.ErrorCount()),
		slog.Duration("duration", report.Duration))
	return report, nil
}

// LexFile lexes a single file.
func (e *Engine) LexFile(path string) (*FileResult, error) {
	return e.lexFile(path)
}

func (e *Engine) lexFile(path string) (*FileResult, error) {
	start := time.Now()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	text, err := source.Decode(raw, e.charset, false)
	if err != nil {
		var de *source.DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	res := e.lexText(text)
	res.Path = path
	res.Hash = hashContent(raw)
	res.Duration = time.Since(start)
	e.logger.Debug("lexed file",
		slog.String("path", path),
		slog.Int("tokens", len(res.Tokens)),
		slog.Int("diagnostics", len(res.Diagnostics)))
	return res, nil
}

// LexString lexes text that did not come from a file.
func (e *Engine) LexString(text string) *FileResult {
	start := time.Now()
	res := e.lexText([]rune(text))
	res.Hash = hashContent([]byte(text))
	res.Duration = time.Since(start)
	return res
}

// lexText runs a fresh factory over text. The factory's table goes back
// to the pool before returning, so nothing in the result may hold a
// name.Name.
func (e *Engine) lexText(text []rune) *FileResult {
	bag := &diag.Bag{}
	f := lexer.NewFactory(lexer.Config{
		Pool:     e.pool,
		Reporter: e.reporter(bag),
		Logger:   e.logger,
		Options: lexer.Options{
			KeepComments: e.keepComments,
			TabSize:      e.tabSize,
		},
	})
	defer f.Close()

	tz := f.NewTokenizer(text)
	var toks []token.Token
	for {
		tok := tz.ReadToken()
		toks = append(toks, tok)
		if tok.Kind() == token.EOF {
			break
		}
	}

	lines := tz.LineMap()
	res := &FileResult{
		Lines:  lines.Lines(),
		Tokens: make([]Token, len(toks)),
		Names:  f.Names().Stats(),
	}
	for i, tok := range toks {
		res.Tokens[i] = detach(tok, text, lines)
	}
	for _, d := range bag.All() {
		p := lines.Position(d.Pos)
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Severity: d.Severity.String(),
			Key:      d.Key,
			Message:  diag.Message(d),
			Pos:      d.Pos,
			Line:     p.Line,
			Column:   p.Column,
		})
	}
	return res
}

func detach(tok token.Token, text []rune, lines *lexer.LineMap) Token {
	p := lines.Position(tok.Pos())
	out := Token{
		Kind:       tok.Kind().Name(),
		Pos:        tok.Pos(),
		End:        tok.EndPos(),
		Line:       p.Line,
		Column:     p.Column,
		Comments:   len(tok.Comments()),
		Deprecated: tok.DeprecatedFlag(),
	}
	if s, end := tok.Pos(), tok.EndPos(); s >= 0 && s <= end && end <= len(text) {
		out.Text = string(text[s:end])
	}
	switch tok.Kind().Tag() {
	case token.Named:
		out.Value = tok.Name().String()
	case token.String:
		out.Value = tok.StringVal()
	case token.Numeric:
		out.Value = tok.StringVal()
		out.Radix = tok.Radix()
	}
	return out
}

func hashContent(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// record writes the report to the store and closes the run. Files are
// written one at a time since SQLite allows a single writer.
func (e *Engine) record(ctx context.Context, runID string, report *Report, runErr error) error {
	// Record even if ctx was cancelled mid-run.
	ctx = context.WithoutCancel(ctx)

	var sum state.Summary
	for _, res := range report.Files {
		if res == nil {
			continue
		}
		diags := make([]state.Diagnostic, len(res.Diagnostics))
		for i, d := range res.Diagnostics {
			diags[i] = state.Diagnostic{
				Path:     res.Path,
				Pos:      d.Pos,
				Line:     d.Line,
				Column:   d.Column,
				Key:      d.Key,
				Severity: d.Severity,
				Message:  d.Message,
			}
		}
		err := e.store.RecordFile(ctx, state.FileResult{
			RunID:    runID,
			Path:     res.Path,
			Hash:     res.Hash,
			Tokens:   len(res.Tokens),
			Errors:   res.Errors(),
			Names:    res.Names.Names,
			Duration: res.Duration,
		}, diags)
		if err != nil {
			return err
		}
		sum.Files++
		sum.Tokens += len(res.Tokens)
		sum.Errors += res.Errors()
	}

	status := state.RunStatusCompleted
	var msg string
	switch {
	case errors.Is(runErr, context.Canceled):
		status = state.RunStatusCancelled
		msg = runErr.Error()
	case runErr != nil:
		status = state.RunStatusFailed
		msg = runErr.Error()
	}
	if err := e.store.CompleteRun(ctx, runID, status, sum, msg); err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	e.logger.Debug("run recorded", slog.String("run_id", runID), slog.String("status", string(status)))
	return nil
}

// Changed returns the paths whose content differs from the last
// error-free recorded lex. Without a history store every path is returned.
func (e *Engine) Changed(ctx context.Context, paths []string) ([]string, error) {
	if e.history == nil {
		return paths, nil
	}
	var out []string
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		last, err := e.history.LastHash(ctx, path)
		if err != nil {
			return nil, err
		}
		if last != hashContent(raw) {
			out = append(out, path)
		}
	}
	e.logger.Debug("change detection",
		slog.Int("files", len(paths)),
		slog.Int("changed", len(out)))
	return out, nil
}
