package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapjc/internal/state"
)

// RunDetail is the structured output of `history <run-id>`.
type RunDetail struct {
	Run         *state.Run         `json:"run" yaml:"run"`
	Files       []state.FileResult `json:"files" yaml:"files"`
	Diagnostics []state.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded lex runs",
		Long: `List the runs recorded by 'leapjc lex --record', newest first, or show
the files and diagnostics of one run.`,
		Example: `  leapjc history
  leapjc history --limit 5 -o json
  leapjc history 2f1c...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			store, err := cc.OpenExistingStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(args) == 1 {
				return showRun(cmd, cc, store, args[0])
			}
			return listRuns(cmd, cc, store, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	return cmd
}

func listRuns(cmd *cobra.Command, cc *CommandContext, store state.Store, limit int) error {
	r := cc.Renderer
	runs, err := store.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if r.EffectiveMode().IsStructured() {
		if runs == nil {
			runs = []*state.Run{}
		}
		return r.Encode(runs)
	}
	if len(runs) == 0 {
		r.Muted("no runs recorded")
		return nil
	}

	r.Header(1, "lex runs")
	rows := make([][]any, len(runs))
	for i, run := range runs {
		rows[i] = []any{run.ID, statusLabel(cc, run.Status), run.StartedAt.Local().Format(time.DateTime),
			runDuration(run), run.Files, run.Tokens, run.Errors}
	}
	r.Table([]string{"Run", "Status", "Started", "Duration", "Files", "Tokens", "Errors"}, rows)
	return nil
}

func showRun(cmd *cobra.Command, cc *CommandContext, store state.Store, id string) error {
	r := cc.Renderer
	ctx := cmd.Context()

	run, err := store.GetRun(ctx, id)
	if err != nil {
		return err
	}
	files, err := store.FileResults(ctx, id)
	if err != nil {
		return err
	}
	diags, err := store.Diagnostics(ctx, id)
	if err != nil {
		return err
	}

	if r.EffectiveMode().IsStructured() {
		return r.Encode(RunDetail{Run: run, Files: files, Diagnostics: diags})
	}

	r.Header(1, "run")
	r.Println(fmtKV("ID", run.ID))
	r.Println(fmtKV("Status", statusLabel(cc, run.Status)))
	r.Println(fmtKV("Started", run.StartedAt.Local().Format(time.DateTime)))
	r.Println(fmtKV("Duration", runDuration(run)))
	if run.Error != "" {
		r.Println(fmtKV("Error", run.Error))
	}
	r.Println("")

	rows := make([][]any, len(files))
	for i, f := range files {
		rows[i] = []any{f.Path, f.Tokens, f.Errors, f.Names, f.Duration.String(), shortHash(f.Hash)}
	}
	r.Table([]string{"File", "Tokens", "Errors", "Names", "Duration", "Hash"}, rows)

	if len(diags) > 0 {
		r.Println("")
		r.Header(2, "diagnostics")
		for _, d := range diags {
			r.Printf("%s:%d:%d: %s: %s\n", d.Path, d.Line, d.Column, d.Severity, d.Message)
		}
	}
	return nil
}

func fmtKV(key, value string) string {
	return fmt.Sprintf("%-9s %s", key+":", value)
}

func statusLabel(cc *CommandContext, s state.RunStatus) string {
	styles := cc.Renderer.Styles()
	switch s {
	case state.RunStatusCompleted:
		return styles.StatusSuccess.String() + " " + string(s)
	case state.RunStatusFailed, state.RunStatusCancelled:
		return styles.StatusFailed.String() + " " + string(s)
	}
	return styles.StatusRunning.String() + " " + string(s)
}

func runDuration(run *state.Run) string {
	if run.CompletedAt == nil {
		return "-"
	}
	return run.CompletedAt.Sub(run.StartedAt).Round(time.Millisecond).String()
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
