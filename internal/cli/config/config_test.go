package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedcfg "github.com/leapstack-labs/leapjc/internal/config"
	"github.com/leapstack-labs/leapjc/internal/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, sharedcfg.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("charset", "", "")
	flags.Int("tab-size", 0, "")
	flags.Bool("keep-comments", false, "")
	flags.String("state", "", "")
	flags.Duration("debounce", 0, "")
	flags.StringSlice("extensions", nil, "")
	flags.String("output", "", "")
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, sharedcfg.DefaultCharset, cfg.Charset)
	assert.Equal(t, sharedcfg.DefaultTabSize, cfg.TabSize)
	assert.Equal(t, sharedcfg.DefaultDebounce, cfg.Watch.Debounce)
	assert.Equal(t, []string{".java"}, cfg.Extensions)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.True(t, filepath.IsAbs(cfg.StatePath), "state path resolved against the project root")
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, `
tab_size: 4
keep_comments: true
state_path: db/state.db
watch:
  debounce: 1s
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.TabSize)
	assert.True(t, cfg.KeepComments)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "db", "state.db"), cfg.StatePath)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigFindsFileUpward(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "tab_size: 2\n")
	nested := filepath.Join(filepath.Dir(path), "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.TabSize)
	assert.Equal(t, filepath.Dir(path), cfg.ProjectRoot)
}

func TestLoadConfigEnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "charset: utf-8\nname_table:\n  pool_size: 1\n")
	t.Setenv("LEAPJC_CHARSET", "windows-1252")
	t.Setenv("LEAPJC_NAME_TABLE__POOL_SIZE", "7")
	t.Setenv("LEAPJC_EXTENSIONS", ".java,.jav")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "windows-1252", cfg.Charset, "env var should override config file")
	assert.Equal(t, 7, cfg.NameTable.PoolSize)
	assert.Equal(t, []string{".java", ".jav"}, cfg.Extensions)
}

func TestLoadConfigFlagPrecedence(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "tab_size: 4\n")
	t.Setenv("LEAPJC_TAB_SIZE", "6")

	flags := testFlags()
	require.NoError(t, flags.Set("tab-size", "2"))
	require.NoError(t, flags.Set("debounce", "50ms"))
	require.NoError(t, flags.Set("state", "custom.db"))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.TabSize, "flag value should override config file and env var")
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
	abs, _ := filepath.Abs("custom.db")
	assert.Equal(t, abs, cfg.StatePath, "flag paths are relative to the working directory")
}

func TestLoadConfigFlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "tab_size: 4\n")
	t.Setenv("LEAPJC_TAB_SIZE", "6")

	cfg, err := LoadConfig(path, testFlags())
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.TabSize, "env var should be used when flag is not set")
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad charset", "charset: nonsense-1\n", "charset"},
		{"bad output", "output: html\n", "unknown output format"},
		{"bad severity", "diagnostics:\n  severity:\n    illegal.char: loud\n", "illegal.char"},
		{"bad yaml", "tab_size: [\n", "error reading config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFlagAndEnvKeys(t *testing.T) {
	assert.Equal(t, "keep_comments", flagKey("keep-comments"))
	assert.Equal(t, "state_path", flagKey("state"))
	assert.Equal(t, "watch.debounce", flagKey("debounce"))
	assert.Equal(t, "name_table.hash_size", envKey("LEAPJC_NAME_TABLE__HASH_SIZE"))
	assert.Equal(t, "tab_size", envKey("LEAPJC_TAB_SIZE"))
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "falls back to a discard logger")

	logger := testutil.NewTestLogger(t)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
