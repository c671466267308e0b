package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapjc/internal/cli/output"
	"github.com/leapstack-labs/leapjc/internal/engine"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Tokenize input interactively",
		Long: `Start an interactive session that tokenizes each line typed.

A line ending in a backslash continues on the next line. Type .help for
the dot-commands.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	sess, err := newREPLSession(cc)
	if err != nil {
		return err
	}

	historyFile := cc.Cfg.REPL.HistoryFile
	if historyFile != "" {
		if err := os.MkdirAll(filepath.Dir(historyFile), 0o750); err != nil {
			cc.Logger.Warn("history disabled", "error", err)
			historyFile = ""
		}
	}

	prompt := cc.Cfg.REPL.Prompt
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		AutoComplete:    replCompleter,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	cc.Renderer.Println("leapjc lexer REPL")
	cc.Renderer.Println("Type .help for commands, .quit to exit")
	cc.Renderer.Println("")

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if rest, ok := strings.CutSuffix(line, `\`); ok {
			buf.WriteString(rest)
			buf.WriteByte('\n')
			rl.SetPrompt(strings.Repeat(" ", max(0, len(prompt)-5)) + "...> ")
			continue
		}
		buf.WriteString(line)
		input := buf.String()
		buf.Reset()
		rl.SetPrompt(prompt)

		if sess.eval(input) {
			return nil
		}
	}
}

var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem(".help"),
	readline.PcItem(".quit"),
	readline.PcItem(".exit"),
	readline.PcItem(".comments", readline.PcItem("on"), readline.PcItem("off")),
	readline.PcItem(".stats"),
)

// replSession evaluates REPL input against an engine.
type replSession struct {
	cc   *CommandContext
	eng  *engine.Engine
	last *engine.FileResult
}

func newREPLSession(cc *CommandContext) (*replSession, error) {
	eng, err := cc.NewEngine(nil, nil)
	if err != nil {
		return nil, err
	}
	return &replSession{cc: cc, eng: eng}, nil
}

// eval handles one complete input and reports whether the session should
// end.
func (s *replSession) eval(input string) bool {
	r := s.cc.Renderer
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, ".") {
		return s.dotCommand(trimmed)
	}

	s.last = s.eng.LexString(input)
	if r.EffectiveMode().IsStructured() {
		if err := r.Encode(s.last); err != nil {
			r.Error(err.Error())
		}
		return false
	}
	renderTokens(r, s.last)
	return false
}

func (s *replSession) dotCommand(line string) bool {
	r := s.cc.Renderer
	parts := strings.Fields(line)

	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true

	case ".help":
		r.Println("Commands:")
		r.Println("  .help             Show this help")
		r.Println("  .comments on|off  Attach comments to the tokens that follow them")
		r.Println("  .stats            Show name table statistics of the last input")
		r.Println("  .quit, .exit      Leave the REPL")

	case ".comments":
		if len(parts) != 2 || (parts[1] != "on" && parts[1] != "off") {
			r.Warning("usage: .comments on|off")
			return false
		}
		s.cc.Cfg.KeepComments = parts[1] == "on"
		eng, err := s.cc.NewEngine(nil, nil)
		if err != nil {
			r.Error(err.Error())
			return false
		}
		s.eng = eng
		r.Success("comments " + parts[1])

	case ".stats":
		if s.last == nil {
			r.Warning("nothing lexed yet")
			return false
		}
		st := s.last.Names
		r.Table([]string{"Names", "Bytes", "Arena", "Buckets", "Max Chain"},
			[][]any{{st.Names, st.Bytes, st.ArenaCap, fmt.Sprintf("%d/%d", st.UsedBuckets, st.Buckets), st.MaxChain}})

	default:
		r.Warning(fmt.Sprintf("unknown command %s (try .help)", parts[0]))
	}
	return false
}

func renderTokens(r *output.Renderer, res *engine.FileResult) {
	styles := r.Styles()
	var b strings.Builder
	for i, tok := range res.Tokens {
		if tok.Kind == "EOF" {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(styles.Kind.Render(tok.Kind))
		if tok.Kind == "IDENTIFIER" || strings.HasSuffix(tok.Kind, "LITERAL") {
			b.WriteString("(" + styles.Literal.Render(tok.Value) + ")")
		}
	}
	r.Println(b.String())
	for _, d := range res.Diagnostics {
		r.Println(styles.Error.Render(fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Severity, d.Message)))
	}
}
