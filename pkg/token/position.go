package token

// Position is a resolved source location.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, tabs expanded
	Offset int // 0-based character offset
}

// IsValid reports whether p was resolved against a line map.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span is a half-open character range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters covered.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset lies within s.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Adjacent reports whether o starts exactly where s ends.
func (s Span) Adjacent(o Span) bool {
	return s.End == o.Start
}

// IsValid reports whether 0 <= Start <= End.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.Start <= s.End
}
