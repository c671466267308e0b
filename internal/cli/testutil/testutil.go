// Package testutil provides helpers for CLI command tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapjc/internal/cli/output"
)

// Sources is the file set SetupTestProject writes under src/.
var Sources = map[string]string{
	"src/demo/Point.java": `package demo;

/** @deprecated use Vector */
public class Point {
    private int x = 0x10;
    private String label = "origin";
}
`,
	"src/demo/Broken.java": `package demo;

class Broken {
    char c = '';
}
`,
	"src/notes.txt": "not a source file\n",
}

// SetupTestProject creates a project directory holding a leapjc.yaml
// that keeps state inside the project, plus Sources. It returns the
// project root.
func SetupTestProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	cfg := "state_path: .leapjc/state.db\nextensions: [.java]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leapjc.yaml"), []byte(cfg), 0o644))

	for rel, content := range Sources {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// TestRenderer wraps a Renderer with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a test renderer with the given mode and
// simulated terminal state.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, mode, isTTY),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns what was written to stdout.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns what was written to stderr.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// Reset clears both buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI fails if s contains ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	assert.False(t, ansiPattern.MatchString(s), "string contains ANSI escape codes: %q", s)
}

// StripANSI removes ANSI escape codes from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
