package token

import "strings"

// CommentStyle distinguishes the three comment forms.
type CommentStyle int

// Comment styles.
const (
	LineComment  CommentStyle = iota // // comment
	BlockComment                     // /* comment */
	DocComment                       // /** comment */
)

func (s CommentStyle) String() string {
	switch s {
	case LineComment:
		return "line"
	case BlockComment:
		return "block"
	case DocComment:
		return "doc"
	default:
		return "unknown"
	}
}

// Comment is a comment with its source span.
type Comment struct {
	Style CommentStyle
	Text  string // includes delimiters
	Span  Span
}

// IsLineComment reports whether c is a // comment.
func (c *Comment) IsLineComment() bool {
	return c.Style == LineComment
}

// IsBlockComment reports whether c is a /* */ or /** */ comment.
func (c *Comment) IsBlockComment() bool {
	return c.Style != LineComment
}

// IsDeprecated reports whether c is a doc comment carrying @deprecated.
func (c *Comment) IsDeprecated() bool {
	return c.Style == DocComment && strings.Contains(c.Text, "@deprecated")
}

// Body returns the comment text without its delimiters.
func (c *Comment) Body() string {
	switch c.Style {
	case LineComment:
		return strings.TrimPrefix(c.Text, "//")
	case DocComment:
		return strings.TrimSuffix(strings.TrimPrefix(c.Text, "/**"), "*/")
	default:
		return strings.TrimSuffix(strings.TrimPrefix(c.Text, "/*"), "*/")
	}
}
