package config

import (
	"runtime"
	"strings"
	"time"

	"github.com/leapstack-labs/leapjc/pkg/lexer"
	"github.com/leapstack-labs/leapjc/pkg/name"
	"github.com/leapstack-labs/leapjc/pkg/source"
)

// Default configuration values.
const (
	DefaultCharset    = source.DefaultCharset
	DefaultTabSize    = lexer.DefaultTabSize
	DefaultStatePath  = ".leapjc/state.db"
	DefaultDebounce   = 100 * time.Millisecond
	DefaultPrompt     = "leapjc> "
	DefaultHistory    = ".leapjc/repl_history"
	DefaultExtensions = ".java"
)

// DefaultWorkers is the number of files lexed concurrently.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// ApplyDefaults fills zero values of c.
func ApplyDefaults(c *ProjectConfig) {
	if c == nil {
		return
	}
	if c.Charset == "" {
		c.Charset = DefaultCharset
	}
	if c.TabSize == 0 {
		c.TabSize = DefaultTabSize
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers()
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{DefaultExtensions}
	}
	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			c.Extensions[i] = "." + ext
		}
	}
	if c.StatePath == "" {
		c.StatePath = DefaultStatePath
	}
	ApplyNameTableDefaults(&c.NameTable)
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = DefaultDebounce
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = DefaultPrompt
	}
	if c.REPL.HistoryFile == "" {
		c.REPL.HistoryFile = DefaultHistory
	}
}

// ApplyNameTableDefaults fills zero name table sizes.
func ApplyNameTableDefaults(c *NameTableConfig) {
	if c.HashSize == 0 {
		c.HashSize = name.DefaultHashSize
	}
	if c.ArenaSize == 0 {
		c.ArenaSize = name.DefaultArenaSize
	}
	if c.PoolSize == 0 {
		c.PoolSize = name.DefaultPoolCapacity
	}
}

// NewPool builds the name table pool c describes.
func (c NameTableConfig) NewPool() *name.Pool {
	return name.NewPool(c.PoolSize, c.HashSize, c.ArenaSize)
}
