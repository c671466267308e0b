package lexer_test

import (
	"testing"

	"github.com/leapstack-labs/leapjc/internal/testutil"
	"github.com/leapstack-labs/leapjc/pkg/diag"
	"github.com/leapstack-labs/leapjc/pkg/lexer"
	"github.com/leapstack-labs/leapjc/pkg/name"
	"github.com/leapstack-labs/leapjc/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T, bag *diag.Bag, opts lexer.Options) *lexer.Factory {
	t.Helper()
	var r diag.Reporter = diag.Discard
	if bag != nil {
		r = bag
	}
	return lexer.NewFactory(lexer.Config{
		Names:    name.New(),
		Reporter: r,
		Logger:   testutil.NewTestLogger(t),
		Options:  opts,
	})
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind()
	}
	return out
}

func lex(t *testing.T, input string) ([]token.Token, *diag.Bag) {
	t.Helper()
	bag := &diag.Bag{}
	f := newFactory(t, bag, lexer.Options{})
	return lexer.Tokenize(f, []rune(input)), bag
}

// ---------- Numeric Literal Tests ----------

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		radix int
	}{
		{"123", token.INTLITERAL, 10},
		{"0", token.INTLITERAL, 10},
		{"12.5", token.DOUBLELITERAL, 10},
		{"12.5e10", token.DOUBLELITERAL, 10},
		{"1e-3", token.DOUBLELITERAL, 10},
		{".5", token.DOUBLELITERAL, 10},
		{"1.", token.DOUBLELITERAL, 10},
		{"2.5f", token.FLOATLITERAL, 10},
		{"3d", token.DOUBLELITERAL, 10},
		{"42L", token.LONGLITERAL, 10},
		{"0x1F", token.INTLITERAL, 16},
		{"0xCAFEL", token.LONGLITERAL, 16},
		{"0b1010", token.INTLITERAL, 2},
		{"017", token.INTLITERAL, 8},
		{"09.5", token.DOUBLELITERAL, 10},
		{"1_000_000", token.INTLITERAL, 10},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, bag := lex(t, tt.input)

			require.Len(t, toks, 2)
			assert.Equal(t, 0, bag.Len(), "unexpected diagnostics: %v", bag.Keys())
			tok := toks[0]
			assert.Equal(t, tt.kind, tok.Kind())
			assert.Equal(t, 0, tok.Pos())
			assert.Equal(t, len(tt.input), tok.EndPos(), "literal must span the whole input")
			assert.Equal(t, tt.input, tok.StringVal(), "payload is the exact source spelling")
			assert.Equal(t, tt.radix, tok.Radix())
			assert.Equal(t, token.EOF, toks[1].Kind())
		})
	}
}

func TestMalformedExponentClosesLiteral(t *testing.T) {
	bag := &diag.Bag{}
	f := newFactory(t, bag, lexer.Options{})
	tz := f.NewTokenizer([]rune("12.5e"))

	tok := tz.ReadToken()
	assert.Equal(t, token.ERROR, tok.Kind())
	assert.Equal(t, 0, tok.Pos())
	assert.Equal(t, 5, tok.EndPos())

	require.Equal(t, 1, bag.Len())
	d := bag.All()[0]
	assert.Equal(t, lexer.ErrMalformedFloat, d.Key)
	assert.Equal(t, 4, d.Pos, "error is reported at the exponent marker")
	assert.Equal(t, 4, tz.ErrPos())

	assert.Equal(t, token.EOF, tz.ReadToken().Kind())
	require.Error(t, tz.Err())
}

func TestMalformedNumbers(t *testing.T) {
	tests := []struct {
		input string
		key   string
	}{
		{"0x", lexer.ErrInvalidHexNumber},
		{"0b", lexer.ErrInvalidBinary},
		{"1_", lexer.ErrIllegalUnderscore},
		{"0x1.8p1", lexer.ErrMalformedFloat},
		{"1e+", lexer.ErrMalformedFloat},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, bag := lex(t, tt.input)

			assert.Equal(t, []token.Kind{token.ERROR, token.EOF}, kinds(toks))
			assert.Equal(t, []string{tt.key}, bag.Keys())
			assert.Equal(t, len(tt.input), toks[0].EndPos())
		})
	}
}

// ---------- Operator Tests ----------

func TestOperatorLongestMatch(t *testing.T) {
	toks, bag := lex(t, ">>>=")

	require.Len(t, toks, 2)
	assert.Equal(t, token.GTGTGTEQ, toks[0].Kind())
	assert.Equal(t, 0, toks[0].Pos())
	assert.Equal(t, 4, toks[0].EndPos())
	assert.Equal(t, 0, bag.Len())
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{"a->b", []token.Kind{token.IDENTIFIER, token.ARROW, token.IDENTIFIER}},
		{"x::y", []token.Kind{token.IDENTIFIER, token.COLCOL, token.IDENTIFIER}},
		{"i++<=j", []token.Kind{token.IDENTIFIER, token.PLUSPLUS, token.LTEQ, token.IDENTIFIER}},
		{"a<-b", []token.Kind{token.IDENTIFIER, token.LT, token.SUB, token.IDENTIFIER}},
		{"x>>=1", []token.Kind{token.IDENTIFIER, token.GTGTEQ, token.INTLITERAL}},
		{"a&&!b", []token.Kind{token.IDENTIFIER, token.AMPAMP, token.BANG, token.IDENTIFIER}},
		{"@Override", []token.Kind{token.MONKEYS_AT, token.IDENTIFIER}},
		{"f(a, b...)", []token.Kind{
			token.IDENTIFIER, token.LPAREN, token.IDENTIFIER, token.COMMA,
			token.IDENTIFIER, token.ELLIPSIS, token.RPAREN,
		}},
		{"a.b", []token.Kind{token.IDENTIFIER, token.DOT, token.IDENTIFIER}},
		{"x/=2", []token.Kind{token.IDENTIFIER, token.SLASHEQ, token.INTLITERAL}},
		{"c?1:2", []token.Kind{token.IDENTIFIER, token.QUES, token.INTLITERAL, token.COLON, token.INTLITERAL}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, bag := lex(t, tt.input)

			assert.Equal(t, append(tt.want, token.EOF), kinds(toks))
			assert.Equal(t, 0, bag.Len())
		})
	}
}

func TestOperatorScanDoesNotInternPrefixes(t *testing.T) {
	tab := name.New()
	f := lexer.NewFactory(lexer.Config{Names: tab})
	before := tab.Len()

	lexer.Tokenize(f, []rune("a <- b"))

	_, ok := tab.LookupString("<-")
	assert.False(t, ok)
	assert.Equal(t, before+2, tab.Len(), "only the identifiers a and b are new")
}

// ---------- Identifier and Keyword Tests ----------

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks, _ := lex(t, "public publicx int _ $x größe")

	require.Equal(t, []token.Kind{
		token.PUBLIC, token.IDENTIFIER, token.INT, token.UNDERSCORE,
		token.IDENTIFIER, token.IDENTIFIER, token.EOF,
	}, kinds(toks))

	assert.Equal(t, "publicx", toks[1].Name().String())
	assert.Equal(t, "int", toks[2].Name().String(), "type keywords carry their name")
	assert.Panics(t, func() { toks[0].Name() }, "modifier keywords carry no payload")
	assert.Equal(t, "größe", toks[5].Name().String())
}

func TestIdentifiersAreInterned(t *testing.T) {
	toks, _ := lex(t, "foo bar foo")

	assert.Equal(t, toks[0].Name(), toks[2].Name())
	assert.NotEqual(t, toks[0].Name(), toks[1].Name())
}

// ---------- String and Char Literal Tests ----------

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"abc"`, "abc"},
		{`""`, ""},
		{`"a\tb\n"`, "a\tb\n"},
		{`"\"q\""`, `"q"`},
		{`"\101\7"`, "A\a"},
		{`"A\uu0042"`, "AB"},
		{`"\s"`, " "},
		{`"\uD83D\uDE00!"`, "\U0001F600!"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, bag := lex(t, tt.input)

			require.Equal(t, []token.Kind{token.STRINGLITERAL, token.EOF}, kinds(toks))
			assert.Equal(t, tt.want, toks[0].StringVal())
			assert.Equal(t, len([]rune(tt.input)), toks[0].EndPos())
			assert.Equal(t, 0, bag.Len())
		})
	}
}

func TestUnterminatedStringStopsAtBufferEnd(t *testing.T) {
	bag := &diag.Bag{}
	f := newFactory(t, bag, lexer.Options{})
	tz := f.NewTokenizer([]rune(`"abc`))

	tok := tz.ReadToken()
	assert.Equal(t, token.ERROR, tok.Kind())
	assert.Equal(t, 4, tok.EndPos())
	assert.Equal(t, []string{lexer.ErrUnclosedString}, bag.Keys())

	for i := 0; i < 3; i++ {
		assert.Equal(t, token.EOF, tz.ReadToken().Kind())
	}
}

func TestStringWithLineEnd(t *testing.T) {
	toks, bag := lex(t, "\"ab\nc")

	assert.Equal(t, []token.Kind{token.ERROR, token.IDENTIFIER, token.EOF}, kinds(toks))
	assert.Equal(t, []string{lexer.ErrEOLInString}, bag.Keys())
}

func TestCharLiterals(t *testing.T) {
	toks, bag := lex(t, `'a' '\n' '\''`)

	require.Equal(t, []token.Kind{token.CHARLITERAL, token.CHARLITERAL, token.CHARLITERAL, token.EOF}, kinds(toks))
	assert.Equal(t, "a", toks[0].StringVal())
	assert.Equal(t, 0, toks[0].Radix())
	assert.Equal(t, "\n", toks[1].StringVal())
	assert.Equal(t, "'", toks[2].StringVal())
	assert.Equal(t, 0, bag.Len())
}

func TestCharLiteralSurrogatePair(t *testing.T) {
	toks, bag := lex(t, `'\uD83D\uDE00'`)

	require.Equal(t, []token.Kind{token.CHARLITERAL, token.EOF}, kinds(toks))
	assert.Equal(t, "\U0001F600", toks[0].StringVal())
	assert.Equal(t, 14, toks[0].EndPos())
	assert.Equal(t, 0, bag.Len())
}

func TestLoneSurrogateEscapes(t *testing.T) {
	tests := []string{
		`"\uD83D"`,
		`"\uDE00"`,
		`"\uD83Dx"`,
		`"\uD83D\u0041"`,
		`'\uDE00'`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			toks, bag := lex(t, input)

			assert.Equal(t, token.ERROR, toks[0].Kind())
			assert.Equal(t, []string{lexer.ErrIllegalUnicodeEsc}, bag.Keys())
			assert.Equal(t, token.EOF, toks[len(toks)-1].Kind())
		})
	}
}

func TestCharLiteralErrors(t *testing.T) {
	tests := []struct {
		input string
		key   string
	}{
		{"''", lexer.ErrEmptyChar},
		{"'ab'", lexer.ErrUnclosedChar},
		{"'", lexer.ErrUnclosedChar},
		{"'\n'", lexer.ErrEOLInChar},
		{`'\q'`, lexer.ErrIllegalEscape},
		{`'\u00G1'`, lexer.ErrIllegalUnicodeEsc},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, bag := lex(t, tt.input)

			assert.Equal(t, token.ERROR, toks[0].Kind())
			require.NotEmpty(t, bag.Keys())
			assert.Equal(t, tt.key, bag.Keys()[0])
			assert.Equal(t, token.EOF, toks[len(toks)-1].Kind())
		})
	}
}

// ---------- Comment and Whitespace Tests ----------

func TestCommentsNeverBecomeTokens(t *testing.T) {
	toks, bag := lex(t, "a // line\n/* block */ b /** doc */ c")

	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER, token.EOF}, kinds(toks))
	assert.Equal(t, 0, bag.Len())
}

func TestKeepComments(t *testing.T) {
	var seen []token.Comment
	f := lexer.NewFactory(lexer.Config{
		Names:   name.New(),
		Options: lexer.Options{KeepComments: true},
		Hooks:   lexer.Hooks{Comment: func(c token.Comment) { seen = append(seen, c) }},
	})

	toks := lexer.Tokenize(f, []rune("/** @deprecated */\n// note\nclass A"))

	require.Len(t, seen, 2)
	assert.Equal(t, token.DocComment, seen[0].Style)
	assert.Equal(t, token.LineComment, seen[1].Style)

	require.Equal(t, token.CLASS, toks[0].Kind())
	assert.Len(t, toks[0].Comments(), 2)
	assert.True(t, toks[0].DeprecatedFlag())
	assert.Empty(t, toks[1].Comments())
}

func TestUnclosedComment(t *testing.T) {
	toks, bag := lex(t, "a /* never")

	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.ERROR, token.EOF}, kinds(toks))
	assert.Equal(t, []string{lexer.ErrUnclosedComment}, bag.Keys())
	assert.Equal(t, 2, toks[1].Pos())
}

func TestHooksSeeWhitespaceAndLines(t *testing.T) {
	var spaces, lines [][2]int
	f := lexer.NewFactory(lexer.Config{
		Names: name.New(),
		Hooks: lexer.Hooks{
			WhiteSpace:     func(pos, end int) { spaces = append(spaces, [2]int{pos, end}) },
			LineTerminator: func(pos, end int) { lines = append(lines, [2]int{pos, end}) },
		},
	})

	lexer.Tokenize(f, []rune("a  b\r\nc\n"))

	assert.Equal(t, [][2]int{{1, 3}}, spaces)
	assert.Equal(t, [][2]int{{4, 6}, {7, 8}}, lines)
}

// ---------- Error Recovery Tests ----------

func TestIllegalCharacterRecovers(t *testing.T) {
	toks, bag := lex(t, "a # b")

	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.ERROR, token.IDENTIFIER, token.EOF}, kinds(toks))
	require.Equal(t, 1, bag.Len())
	d := bag.All()[0]
	assert.Equal(t, lexer.ErrIllegalChar, d.Key)
	assert.Equal(t, 2, d.Pos)
	assert.Equal(t, []any{"#"}, d.Args)
}

func TestBackslashOutsideLiteralIsIllegal(t *testing.T) {
	toks, bag := lex(t, `\u0041`)

	assert.Equal(t, []token.Kind{token.ERROR, token.IDENTIFIER, token.EOF}, kinds(toks))
	assert.Equal(t, []string{lexer.ErrIllegalChar}, bag.Keys())
}

func TestEOFIsRepeatable(t *testing.T) {
	f := newFactory(t, nil, lexer.Options{})
	tz := f.NewTokenizer([]rune("x "))

	assert.Equal(t, token.IDENTIFIER, tz.ReadToken().Kind())
	for i := 0; i < 5; i++ {
		tok := tz.ReadToken()
		assert.Equal(t, token.EOF, tok.Kind())
		assert.Equal(t, 2, tok.Pos())
		assert.Equal(t, 2, tok.EndPos())
	}
}

func TestEmptyInput(t *testing.T) {
	toks, _ := lex(t, "")
	assert.Equal(t, []token.Kind{token.EOF}, kinds(toks))
}

func TestTokensAreInSourceOrder(t *testing.T) {
	toks, _ := lex(t, "class A { int x = 1 + 2; }")

	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1], toks[i]
		assert.LessOrEqual(t, prev.EndPos(), cur.Pos())
		assert.LessOrEqual(t, cur.Pos(), cur.EndPos())
	}
}
