package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapjc/internal/cli/output"
	"github.com/leapstack-labs/leapjc/internal/engine"
	"github.com/leapstack-labs/leapjc/internal/state"
)

// ErrLexErrors is returned when lexing succeeded but reported errors.
var ErrLexErrors = errors.New("lexical errors reported")

// LexOptions holds the lex command's own flags.
type LexOptions struct {
	Watch    bool
	Changed  bool
	Summary  bool
	Debounce time.Duration
}

// NewLexCommand creates the lex command.
func NewLexCommand() *cobra.Command {
	opts := &LexOptions{}

	cmd := &cobra.Command{
		Use:   "lex <file|dir>...",
		Short: "Tokenize source files",
		Long: `Tokenize source files and print their tokens and diagnostics.

Directories are searched recursively for files with one of the configured
extensions. Files are lexed concurrently, each on its own name table.`,
		Example: `  # Dump the tokens of one file
  leapjc lex src/demo/Point.java

  # Summarize a tree, recording the run in the state database
  leapjc lex --summary --record src

  # Re-lex on every save
  leapjc lex --watch src`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLex(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lex files when they change")
	cmd.Flags().BoolVar(&opts.Changed, "changed", false, "Only lex files changed since their last clean recorded run")
	cmd.Flags().BoolVarP(&opts.Summary, "summary", "s", false, "Print per-file totals instead of tokens")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", 0, "Quiet period before re-lexing in watch mode")

	return cmd
}

func runLex(cmd *cobra.Command, args []string, opts *LexOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cc.Cfg
	r := cc.Renderer

	files, err := engine.CollectFiles(args, cfg.Extensions)
	if err != nil {
		return err
	}

	var store *state.SQLiteStore
	if cfg.Record || opts.Changed {
		store, err = cc.OpenStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	var record, history state.Store
	if store != nil {
		history = store
		if cfg.Record {
			record = store
		}
	}
	eng, err := cc.NewEngine(record, history)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pending := files
	if opts.Changed {
		pending, err = eng.Changed(ctx, files)
		if err != nil {
			return err
		}
		cc.Logger.Debug("skipping unchanged files", "skipped", len(files)-len(pending))
	}

	report, err := eng.LexFiles(ctx, pending)
	if err != nil {
		return err
	}
	if err := renderReport(r, report, opts.Summary); err != nil {
		return err
	}

	if opts.Watch {
		debounce := cfg.Watch.Debounce
		if cmd.Flags().Changed("debounce") {
			debounce = opts.Debounce
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		r.Success(fmt.Sprintf("watching %d files (Ctrl+C to stop)", len(files)))
		return eng.Watch(ctx, files, debounce, func(report *engine.Report, err error) {
			if err != nil {
				r.Error(err.Error())
				return
			}
			if err := renderReport(r, report, opts.Summary); err != nil {
				r.Error(err.Error())
			}
		})
	}

	if n := report.ErrorCount(); n > 0 {
		return fmt.Errorf("%w: %d", ErrLexErrors, n)
	}
	return nil
}

// fileSummary is the structured form of --summary output.
type fileSummary struct {
	Path     string `json:"path" yaml:"path"`
	Tokens   int    `json:"tokens" yaml:"tokens"`
	Errors   int    `json:"errors" yaml:"errors"`
	Names    int    `json:"names" yaml:"names"`
	Duration string `json:"duration" yaml:"duration"`
}

func summarize(report *engine.Report) []fileSummary {
	out := make([]fileSummary, len(report.Files))
	for i, f := range report.Files {
		out[i] = fileSummary{
			Path:     f.Path,
			Tokens:   len(f.Tokens),
			Errors:   f.Errors(),
			Names:    f.Names.Names,
			Duration: f.Duration.Round(time.Microsecond).String(),
		}
	}
	return out
}

func renderReport(r *output.Renderer, report *engine.Report, summary bool) error {
	mode := r.EffectiveMode()
	if mode.IsStructured() {
		if summary {
			return r.Encode(summarize(report))
		}
		return r.Encode(report)
	}

	if !summary {
		for _, f := range report.Files {
			renderFile(r, f)
		}
	}

	rows := make([][]any, 0, len(report.Files))
	for _, s := range summarize(report) {
		rows = append(rows, []any{s.Path, s.Tokens, s.Errors, s.Names, s.Duration})
	}
	r.Header(2, "summary")
	r.Table([]string{"File", "Tokens", "Errors", "Names", "Duration"}, rows)

	total := fmt.Sprintf("%d files, %d tokens, %d errors in %s",
		len(report.Files), report.TokenCount(), report.ErrorCount(),
		report.Duration.Round(time.Millisecond))
	if report.RunID != "" {
		total += ", run " + report.RunID
	}
	r.Muted(total)
	return nil
}

func renderFile(r *output.Renderer, f *engine.FileResult) {
	styles := r.Styles()
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Printf("## `%s`\n\n", f.Path)
	} else {
		r.Println(styles.Path.Render(f.Path))
	}

	rows := make([][]any, 0, len(f.Tokens))
	for _, tok := range f.Tokens {
		rows = append(rows, []any{fmt.Sprintf("%d:%d", tok.Line, tok.Column), tok.Kind, tok.Text, tok.Value})
	}
	r.Table([]string{"Pos", "Kind", "Text", "Value"}, rows)

	for _, d := range f.Diagnostics {
		line := fmt.Sprintf("%s:%d:%d: %s: %s", f.Path, d.Line, d.Column, d.Severity, d.Message)
		switch d.Severity {
		case "error":
			line = styles.Error.Render(line)
		case "warning":
			line = styles.Warning.Render(line)
		default:
			line = styles.Info.Render(line)
		}
		r.Println(line)
	}
	r.Println("")
}
