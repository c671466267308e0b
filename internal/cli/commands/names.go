package commands

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapjc/internal/engine"
	"github.com/leapstack-labs/leapjc/pkg/name"
)

// NamesOutput is the structured output of the names command.
type NamesOutput struct {
	Files []FileNames  `json:"files" yaml:"files"`
	Top   []NameCount  `json:"top,omitempty" yaml:"top,omitempty"`
	Pool  PoolCounters `json:"pool" yaml:"pool"`
}

// FileNames holds the name table statistics of one file.
type FileNames struct {
	Path  string     `json:"path" yaml:"path"`
	Stats name.Stats `json:"stats" yaml:"stats"`
}

// NameCount is how often an identifier occurs.
type NameCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// PoolCounters reports name table reuse.
type PoolCounters struct {
	Hits   int `json:"hits" yaml:"hits"`
	Misses int `json:"misses" yaml:"misses"`
	Idle   int `json:"idle" yaml:"idle"`
}

// NewNamesCommand creates the names command.
func NewNamesCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "names <file|dir>...",
		Short: "Show name table statistics",
		Long: `Lex files and report how their identifiers filled the name table:
interned names, arena bytes, hash bucket usage and the longest chain.`,
		Example: `  leapjc names src
  leapjc names --top 20 -o json src`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			files, err := engine.CollectFiles(args, cc.Cfg.Extensions)
			if err != nil {
				return err
			}
			eng, err := cc.NewEngine(nil, nil)
			if err != nil {
				return err
			}
			report, err := eng.LexFiles(cmd.Context(), files)
			if err != nil {
				return err
			}

			out := NamesOutput{Top: topIdentifiers(report, top)}
			for _, f := range report.Files {
				out.Files = append(out.Files, FileNames{Path: f.Path, Stats: f.Names})
			}
			out.Pool.Hits, out.Pool.Misses = cc.Pool.Counters()
			out.Pool.Idle = cc.Pool.Idle()

			return renderNames(cc, out)
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "Number of most frequent identifiers to list (0 to skip)")
	return cmd
}

func topIdentifiers(report *engine.Report, n int) []NameCount {
	if n <= 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, f := range report.Files {
		for _, tok := range f.Tokens {
			if tok.Kind == "IDENTIFIER" {
				counts[tok.Value]++
			}
		}
	}
	out := make([]NameCount, 0, len(counts))
	for s, c := range counts {
		out = append(out, NameCount{Name: s, Count: c})
	}
	slices.SortFunc(out, func(a, b NameCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func renderNames(cc *CommandContext, out NamesOutput) error {
	r := cc.Renderer
	if r.EffectiveMode().IsStructured() {
		return r.Encode(out)
	}

	r.Header(1, "name tables")
	rows := make([][]any, 0, len(out.Files))
	for _, f := range out.Files {
		s := f.Stats
		rows = append(rows, []any{f.Path, s.Names, s.Bytes, s.ArenaCap, fmt.Sprintf("%d/%d", s.UsedBuckets, s.Buckets), s.MaxChain})
	}
	r.Table([]string{"File", "Names", "Bytes", "Arena", "Buckets", "Max Chain"}, rows)

	if len(out.Top) > 0 {
		r.Println("")
		r.Header(2, "most frequent identifiers")
		rows = rows[:0]
		for _, nc := range out.Top {
			rows = append(rows, []any{nc.Name, nc.Count})
		}
		r.Table([]string{"Identifier", "Count"}, rows)
	}

	r.Muted(fmt.Sprintf("pool: %d reused, %d allocated, %d idle", out.Pool.Hits, out.Pool.Misses, out.Pool.Idle))
	return nil
}
