package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	sharedcfg "github.com/leapstack-labs/leapjc/internal/config"
)

// EnvPrefix prefixes every environment variable the loader reads.
// A double underscore separates nested keys: LEAPJC_NAME_TABLE__POOL_SIZE.
const EnvPrefix = "LEAPJC_"

// loggerKey keys the *slog.Logger in a command context.
type loggerKey struct{}

// maxSearchDepth bounds the upward walk for leapjc.yaml.
const maxSearchDepth = 10

// State of the last LoadConfig call.
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// flagKeys maps flags whose names differ from their config keys.
var flagKeys = map[string]string{
	"state":        "state_path",
	"debounce":     "watch.debounce",
	"history-file": "repl.history_file",
	"pool-size":    "name_table.pool_size",
}

// searchUpward searches upward from startDir for a leapjc config file.
// Returns empty string if not found within maxSearchDepth.
func searchUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxSearchDepth; i++ {
		if sharedcfg.FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// resolvePathRelativeTo joins relative paths onto baseDir.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ResetConfig forgets the last load. Tests call it between cases.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// envKey turns LEAPJC_NAME_TABLE__POOL_SIZE into name_table.pool_size.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// flagKey turns --keep-comments into keep_comments, honoring flagKeys.
func flagKey(flagName string) string {
	if key, ok := flagKeys[flagName]; ok {
		return key
	}
	return strings.ReplaceAll(flagName, "-", "_")
}

// LoadConfig loads configuration from defaults, the config file,
// environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"charset":           sharedcfg.DefaultCharset,
		"tab_size":          sharedcfg.DefaultTabSize,
		"keep_comments":     false,
		"workers":           sharedcfg.DefaultWorkers(),
		"extensions":        []string{sharedcfg.DefaultExtensions},
		"state_path":        sharedcfg.DefaultStatePath,
		"watch.debounce":    sharedcfg.DefaultDebounce.String(),
		"repl.prompt":       sharedcfg.DefaultPrompt,
		"repl.history_file": sharedcfg.DefaultHistory,
		"verbose":           false,
		"record":            false,
		"output":            DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file: explicit path, else search upward from CWD
	projectRoot := ""
	if cfgFile != "" {
		if abs, err := filepath.Abs(cfgFile); err == nil {
			projectRoot = filepath.Dir(abs)
		}
	} else if cwd, err := os.Getwd(); err == nil {
		if root := searchUpward(cwd); root != "" {
			projectRoot = root
			cfgFile = sharedcfg.FindConfigFile(root)
		}
	}
	if projectRoot == "" {
		projectRoot, _ = os.Getwd()
		if projectRoot == "" {
			projectRoot = "."
		}
	}
	configFileUsed = cfgFile
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables (LEAPJC_ prefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority), only those explicitly set
	var flagStatePath string
	if flags != nil {
		if flags.Changed("state") {
			if v, _ := flags.GetString("state"); v != "" {
				flagStatePath, _ = filepath.Abs(v)
			}
		}
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal, then fill anything the layers left empty
	var cfg Config
	if err := sharedcfg.Unmarshal(k, &cfg); err != nil {
		return nil, err
	}
	sharedcfg.ApplyDefaults(&cfg.ProjectConfig)

	// 6. Resolve paths against the project root; flag paths are already
	// relative to the CWD.
	cfg.ProjectRoot = projectRoot
	if flagStatePath != "" {
		cfg.StatePath = flagStatePath
	} else {
		cfg.StatePath = resolvePathRelativeTo(cfg.StatePath, projectRoot)
	}
	cfg.REPL.HistoryFile = resolvePathRelativeTo(cfg.REPL.HistoryFile, projectRoot)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	currentConfig = &cfg
	return &cfg, nil
}

// GetConfigFileUsed returns the config file the last load read, or "".
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// Koanf returns the merged key/value view of the last load.
func Koanf() *koanf.Koanf {
	return k
}

// LoggerKey is the context key root.go stores the logger under.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger returns the logger stored in ctx, or one that discards.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// Validate checks the CLI-level settings on top of the project ones.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q (auto|text|markdown|json|yaml)", c.OutputFormat)
	}
	return c.ProjectConfig.Validate()
}
