package lexer

import (
	"fmt"

	"github.com/leapstack-labs/leapjc/pkg/diag"
	"github.com/leapstack-labs/leapjc/pkg/token"
)

// Error represents a lexical error.
type Error struct {
	Pos     token.Position
	Key     string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Diagnostic keys
const (
	ErrIllegalChar       = "illegal.char"
	ErrIllegalUnderscore = "illegal.underscore"
	ErrInvalidHexNumber  = "invalid.hex.number"
	ErrInvalidBinary     = "invalid.binary.number"
	ErrMalformedFloat    = "malformed.fp.lit"
	ErrIllegalEscape     = "illegal.esc.char"
	ErrIllegalUnicodeEsc = "illegal.unicode.esc"
	ErrEOLInString       = "illegal.line.end.in.str.lit"
	ErrEOLInChar         = "illegal.line.end.in.char.lit"
	ErrUnclosedString    = "unclosed.str.lit"
	ErrUnclosedChar      = "unclosed.char.lit"
	ErrEmptyChar         = "empty.char.lit"
	ErrUnclosedComment   = "unclosed.comment"
)

func newError(pos token.Position, d diag.Diagnostic) *Error {
	return &Error{Pos: pos, Key: d.Key, Message: diag.Message(d)}
}
