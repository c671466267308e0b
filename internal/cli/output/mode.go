// Package output renders command results for terminals, pipes and
// machine consumers.
package output

import (
	"fmt"
	"strings"
)

// Mode selects how results are rendered.
type Mode string

// Output modes.
const (
	// ModeAuto renders styled text on a terminal and markdown otherwise.
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
)

// Modes lists the accepted modes.
func Modes() []Mode {
	return []Mode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeYAML}
}

// ParseMode accepts a mode name case-insensitively. "md" and "yml" are
// accepted as aliases and the empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case "md":
		return ModeMarkdown, nil
	case "yml":
		return ModeYAML, nil
	case ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeYAML:
		return m, nil
	}
	return "", fmt.Errorf("invalid output format %q (valid: auto, text, markdown, json, yaml)", s)
}

// IsStructured reports whether m emits machine-readable data.
func (m Mode) IsStructured() bool {
	return m == ModeJSON || m == ModeYAML
}
