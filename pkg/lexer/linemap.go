package lexer

import (
	"sort"

	"github.com/leapstack-labs/leapjc/pkg/token"
)

// DefaultTabSize is the tab stop width used when resolving columns.
const DefaultTabSize = 8

// LineMap converts character offsets into line and column numbers. It is
// filled from the line terminators the tokenizer has passed, so it covers
// the input scanned so far.
type LineMap struct {
	buf     []rune
	starts  []int
	tabSize int
}

func newLineMap(buf []rune, tabSize int) *LineMap {
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}
	return &LineMap{buf: buf, starts: []int{0}, tabSize: tabSize}
}

// addLine records that a new line starts at offset.
func (m *LineMap) addLine(offset int) {
	if offset > m.starts[len(m.starts)-1] {
		m.starts = append(m.starts, offset)
	}
}

// Lines returns the number of lines seen so far.
func (m *LineMap) Lines() int {
	return len(m.starts)
}

// LineStart returns the offset where the given 1-based line begins.
func (m *LineMap) LineStart(line int) int {
	if line < 1 {
		return 0
	}
	if line > len(m.starts) {
		return m.starts[len(m.starts)-1]
	}
	return m.starts[line-1]
}

// Line returns the 1-based line containing offset.
func (m *LineMap) Line(offset int) int {
	return sort.Search(len(m.starts), func(i int) bool { return m.starts[i] > offset })
}

// Column returns the 1-based column of offset, with tabs expanded.
func (m *LineMap) Column(offset int) int {
	start := m.starts[m.Line(offset)-1]
	col := 0
	for i := start; i < offset && i < len(m.buf); i++ {
		if m.buf[i] == '\t' {
			col = (col/m.tabSize + 1) * m.tabSize
		} else {
			col++
		}
	}
	return col + 1
}

// Position resolves offset.
func (m *LineMap) Position(offset int) token.Position {
	if offset < 0 {
		return token.Position{}
	}
	return token.Position{Line: m.Line(offset), Column: m.Column(offset), Offset: offset}
}
