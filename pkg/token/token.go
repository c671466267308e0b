package token

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/leapjc/pkg/name"
)

// Token is an immutable lexical unit: a kind, a half-open span and a payload
// whose shape is fixed by the kind's Tag.
type Token struct {
	kind     Kind
	pos      int
	endPos   int
	comments []Comment

	name  name.Name
	text  string
	radix int
}

// New returns a payload-free token. It panics unless kind has tag Default.
func New(kind Kind, pos, endPos int) Token {
	checkTag(kind, Default)
	return Token{kind: kind, pos: pos, endPos: endPos}
}

// NewNamed returns a token carrying an interned name.
func NewNamed(kind Kind, pos, endPos int, n name.Name) Token {
	checkTag(kind, Named)
	return Token{kind: kind, pos: pos, endPos: endPos, name: n}
}

// NewString returns a token carrying literal text.
func NewString(kind Kind, pos, endPos int, text string) Token {
	checkTag(kind, String)
	return Token{kind: kind, pos: pos, endPos: endPos, text: text}
}

// NewNumeric returns a token carrying literal text and its radix.
func NewNumeric(kind Kind, pos, endPos int, text string, radix int) Token {
	checkTag(kind, Numeric)
	return Token{kind: kind, pos: pos, endPos: endPos, text: text, radix: radix}
}

func checkTag(kind Kind, want Tag) {
	if got := kind.Tag(); got != want {
		panic(fmt.Sprintf("token: %s has tag %s, not %s", kind.Name(), got, want))
	}
}

// WithComments returns a copy of t with the given leading comments.
func (t Token) WithComments(cs []Comment) Token {
	t.comments = cs
	return t
}

// Kind returns the token's kind.
func (t Token) Kind() Kind { return t.kind }

// Pos returns the offset of the first character.
func (t Token) Pos() int { return t.pos }

// EndPos returns the offset one past the last character.
func (t Token) EndPos() int { return t.endPos }

// Span returns [Pos, EndPos).
func (t Token) Span() Span { return Span{Start: t.pos, End: t.endPos} }

// Len returns the number of characters covered.
func (t Token) Len() int { return t.endPos - t.pos }

// Comments returns the comments that preceded the token.
func (t Token) Comments() []Comment { return t.comments }

// Is reports whether t has kind k.
func (t Token) Is(k Kind) bool { return t.kind == k }

// Name returns the interned payload of a Named token.
func (t Token) Name() name.Name {
	checkTag(t.kind, Named)
	return t.name
}

// StringVal returns the literal text of a String or Numeric token.
func (t Token) StringVal() string {
	if tag := t.kind.Tag(); tag != String && tag != Numeric {
		panic(fmt.Sprintf("token: %s has tag %s, no string value", t.kind.Name(), tag))
	}
	return t.text
}

// Radix returns the radix of a Numeric token.
func (t Token) Radix() int {
	checkTag(t.kind, Numeric)
	return t.radix
}

// DeprecatedFlag reports whether a preceding doc comment carries @deprecated.
func (t Token) DeprecatedFlag() bool {
	for i := range t.comments {
		if t.comments[i].IsDeprecated() {
			return true
		}
	}
	return false
}

// DocComment returns the last doc comment before the token, if any.
func (t Token) DocComment() (Comment, bool) {
	for i := len(t.comments) - 1; i >= 0; i-- {
		if t.comments[i].Style == DocComment {
			return t.comments[i], true
		}
	}
	return Comment{}, false
}

// Split decomposes a compound operator into its first character and the
// rest, e.g. >>= into > and >=. Both halves must be known kinds of r, the
// token must have tag Default and a spelling of at least two characters.
// Violations panic.
func (t Token) Split(r *Registry) (Token, Token) {
	s := t.kind.Spelling()
	if len(s) < 2 || t.kind.Tag() != Default {
		panic(fmt.Sprintf("token: cannot split %s", t.kind.Name()))
	}
	if t.Len() != len(s) {
		panic(fmt.Sprintf("token: %s span %d does not match its spelling", t.kind.Name(), t.Len()))
	}
	k1, ok1 := r.LookupSpelling(s[:1])
	k2, ok2 := r.LookupSpelling(s[1:])
	if !ok1 || !ok2 {
		panic(fmt.Sprintf("token: %q does not split into two known kinds", s))
	}
	mid := t.pos + 1
	first := Token{kind: k1, pos: t.pos, endPos: mid, comments: t.comments}
	second := Token{kind: k2, pos: mid, endPos: t.endPos}
	return first, second
}

// String returns a debugging form such as IDENTIFIER(foo)[0,3).
func (t Token) String() string {
	var payload string
	switch t.kind.Tag() {
	case Named:
		payload = "(" + t.name.String() + ")"
	case String:
		payload = "(" + strconv.Quote(t.text) + ")"
	case Numeric:
		payload = "(" + t.text + ", radix " + strconv.Itoa(t.radix) + ")"
	}
	return fmt.Sprintf("%s%s[%d,%d)", t.kind.Name(), payload, t.pos, t.endPos)
}
