// Package lexer turns a decoded character buffer into a stream of tokens.
package lexer

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode"
	"unicode/utf16"

	"github.com/leapstack-labs/leapjc/pkg/diag"
	"github.com/leapstack-labs/leapjc/pkg/name"
	"github.com/leapstack-labs/leapjc/pkg/token"
)

// Hooks observe the parts of the input that never become tokens. Any of
// them may be nil.
type Hooks struct {
	WhiteSpace     func(pos, end int)
	LineTerminator func(pos, end int)
	Comment        func(c token.Comment)
}

// Options control tokenizer behavior.
type Options struct {
	// KeepComments attaches the comments preceding a token to it.
	KeepComments bool
	// TabSize is the tab stop width for column numbers.
	TabSize int
}

// Tokenizer produces one token per ReadToken call, in source order. Once
// the input is exhausted it returns the same EOF token forever.
//
// A Tokenizer interns into a shared name table and is not safe for
// concurrent use.
type Tokenizer struct {
	reader

	names    *name.Table
	registry *token.Registry
	reporter diag.Reporter
	logger   *slog.Logger
	hooks    Hooks
	opts     Options
	lines    *LineMap

	// state of the token being scanned
	kind     token.Kind
	ident    name.Name
	radix    int
	errored  bool
	comments []token.Comment

	errPos int
	errs   []error
}

func newTokenizer(f *Factory, input []rune) *Tokenizer {
	t := &Tokenizer{
		names:    f.names,
		registry: f.registry,
		reporter: f.reporter,
		logger:   f.logger,
		hooks:    f.hooks,
		opts:     f.opts,
		errPos:   -1,
	}
	t.init(input)
	t.lines = newLineMap(input, f.opts.TabSize)
	return t
}

// ErrPos returns the offset of the last lexical error, or -1.
func (t *Tokenizer) ErrPos() int { return t.errPos }

// SetErrPos overrides the recorded error offset.
func (t *Tokenizer) SetErrPos(pos int) { t.errPos = pos }

// LineMap returns the line map built so far.
func (t *Tokenizer) LineMap() *LineMap { return t.lines }

// Err returns every lexical error seen so far joined together, or nil.
func (t *Tokenizer) Err() error { return errors.Join(t.errs...) }

// ReadToken scans and returns the next token.
func (t *Tokenizer) ReadToken() token.Token {
	t.resetScratch()
	t.kind = token.ERROR
	t.ident = name.Name{}
	t.radix = 0
	t.errored = false
	t.comments = nil

	pos := t.bp
loop:
	for {
		pos = t.bp
		switch c := t.ch; {
		case c == ' ' || c == '\t' || c == '\f':
			for t.ch == ' ' || t.ch == '\t' || t.ch == '\f' {
				t.scanChar()
			}
			if t.hooks.WhiteSpace != nil {
				t.hooks.WhiteSpace(pos, t.bp)
			}
		case c == '\n':
			t.scanChar()
			t.lineTerminator(pos)
		case c == '\r':
			t.scanChar()
			if t.ch == '\n' {
				t.scanChar()
			}
			t.lineTerminator(pos)
		case isIdentStart(c):
			t.scanIdent(pos)
			break loop
		case c == '0':
			t.scanZero(pos)
			break loop
		case c >= '1' && c <= '9':
			t.scanNumber(pos, 10)
			break loop
		case c == '.':
			t.scanDot(pos)
			break loop
		case isSeparator(c):
			t.scanSeparator()
			break loop
		case c == '/' && (t.peek() == '/' || t.peek() == '*'):
			if !t.scanComment(pos) {
				break loop
			}
		case c == '\'':
			t.scanCharLiteral(pos)
			break loop
		case c == '"':
			t.scanStringLiteral(pos)
			break loop
		case t.atEOI():
			t.kind = token.EOF
			pos = len(t.buf)
			break loop
		case isSpecial(c):
			t.scanOperator(pos)
			break loop
		default:
			t.lexError(pos, ErrIllegalChar, charArg(c))
			t.scanChar()
			break loop
		}
	}
	return t.makeToken(pos, t.bp)
}

func (t *Tokenizer) makeToken(pos, end int) token.Token {
	var tok token.Token
	switch kind := t.kind; {
	case t.errored || kind == token.ERROR:
		tok = token.New(token.ERROR, pos, end)
	case kind.Tag() == token.Named:
		tok = token.NewNamed(kind, pos, end, t.ident)
	case kind.Tag() == token.String:
		tok = token.NewString(kind, pos, end, string(t.sbuf))
	case kind == token.CHARLITERAL:
		tok = token.NewNumeric(kind, pos, end, string(t.sbuf), 0)
	case kind.Tag() == token.Numeric:
		tok = token.NewNumeric(kind, pos, end, t.text(pos, end), t.radix)
	default:
		tok = token.New(kind, pos, end)
	}
	if len(t.comments) > 0 {
		tok = tok.WithComments(t.comments)
	}
	return tok
}

func (t *Tokenizer) lineTerminator(pos int) {
	t.lines.addLine(t.bp)
	if t.hooks.LineTerminator != nil {
		t.hooks.LineTerminator(pos, t.bp)
	}
}

// lexError records a recoverable error; the current token becomes ERROR.
func (t *Tokenizer) lexError(pos int, key string, args ...any) {
	d := diag.Errorf(pos, key, args...)
	t.errored = true
	t.kind = token.ERROR
	t.errPos = pos
	t.errs = append(t.errs, newError(t.lines.Position(pos), d))
	t.logger.Debug("lexical error", slog.Int("pos", pos), slog.String("key", key))
	t.reporter.Report(d)
}

func charArg(c rune) string {
	if unicode.IsPrint(c) {
		return string(c)
	}
	return fmt.Sprintf("\\u%04x", c)
}

func (t *Tokenizer) scanIdent(pos int) {
	for isIdentPart(t.ch) {
		t.scanChar()
	}
	t.ident = t.names.FromChars(t.buf, pos, t.bp-pos)
	t.kind = t.registry.LookupKind(t.ident)
}

func (t *Tokenizer) scanSeparator() {
	k, _ := t.registry.LookupSpelling(string(t.ch))
	t.kind = k
	t.scanChar()
}

// scanOperator extends the candidate spelling one special character at a
// time and stops at the longest spelling the registry knows.
func (t *Tokenizer) scanOperator(pos int) {
	for {
		t.putChar(t.ch)
		k, ok := t.registry.LookupSpelling(string(t.sbuf))
		if !ok {
			t.sbuf = t.sbuf[:len(t.sbuf)-1]
			break
		}
		t.kind = k
		t.scanChar()
		if !isSpecial(t.ch) {
			break
		}
	}
	if len(t.sbuf) == 0 {
		t.lexError(pos, ErrIllegalChar, charArg(t.ch))
		t.scanChar()
	}
	t.resetScratch()
}

func (t *Tokenizer) scanDot(pos int) {
	switch {
	case digit(t.peek(), 10) >= 0:
		t.scanChar()
		t.scanFractionAndSuffix(pos)
	case t.peek() == '.' && t.peekAt(2) == '.':
		t.scanChar()
		t.scanChar()
		t.scanChar()
		t.kind = token.ELLIPSIS
	default:
		t.scanChar()
		t.kind = token.DOT
	}
}

// scanComment consumes a comment starting at pos and reports whether
// scanning should continue with the next token.
func (t *Tokenizer) scanComment(pos int) bool {
	style := token.LineComment
	t.scanChar() // '/'
	if t.ch == '/' {
		for !isEOL(t.ch) && !t.atEOI() {
			t.scanChar()
		}
	} else {
		t.scanChar() // '*'
		style = token.BlockComment
		if t.ch == '*' && t.peek() != '/' {
			style = token.DocComment
		}
		closed := false
		for !t.atEOI() {
			if t.ch == '*' && t.peek() == '/' {
				t.scanChar()
				t.scanChar()
				closed = true
				break
			}
			t.scanCommentChar()
		}
		if !closed {
			t.lexError(pos, ErrUnclosedComment)
			return false
		}
	}
	c := token.Comment{Style: style, Text: t.text(pos, t.bp), Span: token.Span{Start: pos, End: t.bp}}
	if t.hooks.Comment != nil {
		t.hooks.Comment(c)
	}
	if t.opts.KeepComments {
		t.comments = append(t.comments, c)
	}
	return true
}

func (t *Tokenizer) scanCommentChar() {
	start := t.bp
	switch t.ch {
	case '\n':
		t.scanChar()
		t.lineTerminator(start)
	case '\r':
		t.scanChar()
		if t.ch == '\n' {
			t.scanChar()
		}
		t.lineTerminator(start)
	default:
		t.scanChar()
	}
}

func (t *Tokenizer) scanCharLiteral(pos int) {
	t.scanChar()
	switch {
	case t.ch == '\'':
		t.lexError(pos, ErrEmptyChar)
		t.scanChar()
		return
	case isEOL(t.ch):
		t.lexError(pos, ErrEOLInChar)
		return
	case t.atEOI():
		t.lexError(pos, ErrUnclosedChar)
		return
	}
	t.scanLitChar()
	if t.ch == '\'' {
		t.scanChar()
		t.kind = token.CHARLITERAL
		return
	}
	t.lexError(pos, ErrUnclosedChar)
}

func (t *Tokenizer) scanStringLiteral(pos int) {
	t.scanChar()
	for t.ch != '"' && !isEOL(t.ch) && !t.atEOI() {
		t.scanLitChar()
	}
	switch {
	case t.ch == '"':
		t.scanChar()
		t.kind = token.STRINGLITERAL
	case isEOL(t.ch):
		t.lexError(pos, ErrEOLInString)
	default:
		t.lexError(pos, ErrUnclosedString)
	}
}

// scanLitChar reads one possibly escaped character of a char or string
// literal into the scratch buffer.
func (t *Tokenizer) scanLitChar() {
	if t.ch != '\\' {
		t.putAndScan()
		return
	}
	escPos := t.bp
	t.scanChar()
	switch c := t.ch; c {
	case '0', '1', '2', '3', '4', '5', '6', '7':
		lead := c
		oct := digit(c, 8)
		t.scanChar()
		if isOctal(t.ch) {
			oct = oct*8 + digit(t.ch, 8)
			t.scanChar()
			if lead <= '3' && isOctal(t.ch) {
				oct = oct*8 + digit(t.ch, 8)
				t.scanChar()
			}
		}
		t.putChar(rune(oct))
	case 'b':
		t.putChar('\b')
		t.scanChar()
	case 't':
		t.putChar('\t')
		t.scanChar()
	case 'n':
		t.putChar('\n')
		t.scanChar()
	case 'f':
		t.putChar('\f')
		t.scanChar()
	case 'r':
		t.putChar('\r')
		t.scanChar()
	case 's':
		t.putChar(' ')
		t.scanChar()
	case '\'', '"', '\\':
		t.putAndScan()
	case 'u':
		t.scanUnicodeEscape(escPos)
	default:
		t.lexError(escPos, ErrIllegalEscape)
	}
}

// scanUnicodeEscape reads \uXXXX. An escaped surrogate pair decodes to one
// character; a lone surrogate is an error.
func (t *Tokenizer) scanUnicodeEscape(escPos int) {
	hi, ok := t.scanHex4(escPos)
	if !ok {
		return
	}
	if !utf16.IsSurrogate(hi) {
		t.putChar(hi)
		return
	}
	if hi >= 0xDC00 || t.ch != '\\' || t.peek() != 'u' {
		t.lexError(escPos, ErrIllegalUnicodeEsc)
		return
	}
	loPos := t.bp
	t.scanChar()
	lo, ok := t.scanHex4(loPos)
	if !ok {
		return
	}
	c := utf16.DecodeRune(hi, lo)
	if c == unicode.ReplacementChar {
		t.lexError(escPos, ErrIllegalUnicodeEsc)
		return
	}
	t.putChar(c)
}

// scanHex4 consumes the u's and four hex digits of one unicode escape.
func (t *Tokenizer) scanHex4(escPos int) (rune, bool) {
	for t.ch == 'u' {
		t.scanChar()
	}
	var v rune
	for i := 0; i < 4; i++ {
		d := digit(t.ch, 16)
		if d < 0 {
			t.lexError(escPos, ErrIllegalUnicodeEsc)
			return 0, false
		}
		v = v<<4 | rune(d)
		t.scanChar()
	}
	return v, true
}

// scanDigits consumes digits of digitRadix and underscores between them.
func (t *Tokenizer) scanDigits(digitRadix int) {
	lastUnderscore := -1
	for {
		if t.ch == '_' {
			lastUnderscore = t.bp
		} else if digit(t.ch, digitRadix) < 0 {
			break
		} else {
			lastUnderscore = -1
		}
		t.scanChar()
	}
	if lastUnderscore >= 0 {
		t.lexError(lastUnderscore, ErrIllegalUnderscore)
	}
}

func (t *Tokenizer) skipIllegalUnderscores() {
	if t.ch == '_' {
		t.lexError(t.bp, ErrIllegalUnderscore)
		for t.ch == '_' {
			t.scanChar()
		}
	}
}

func (t *Tokenizer) scanZero(pos int) {
	switch t.peek() {
	case 'x', 'X':
		t.scanChar()
		t.scanChar()
		t.skipIllegalUnderscores()
		t.scanNumber(pos, 16)
	case 'b', 'B':
		t.scanChar()
		t.scanChar()
		t.skipIllegalUnderscores()
		t.scanNumber(pos, 2)
	default:
		t.scanChar()
		if t.ch == '_' || digit(t.ch, 10) >= 0 {
			t.scanNumber(pos, 8)
			return
		}
		// A lone zero, possibly followed by a fraction or suffix.
		t.finishNumber(pos, 10, true)
	}
}

func (t *Tokenizer) scanNumber(pos, radix int) {
	// Octal literals are scanned with decimal digits so that 09 can still
	// become a floating literal such as 09.5.
	digitRadix := radix
	if radix == 8 {
		digitRadix = 10
	}
	seen := digit(t.ch, digitRadix) >= 0 || (radix == 8 && t.ch == '_')
	if seen {
		t.scanDigits(digitRadix)
	}
	if radix == 8 {
		seen = true
	}
	t.finishNumber(pos, radix, seen)
}

func (t *Tokenizer) finishNumber(pos, radix int, seen bool) {
	switch {
	case radix == 16 && (t.ch == '.' || (seen && (t.ch == 'p' || t.ch == 'P'))):
		t.scanHexFloat(pos)
	case radix != 16 && radix != 2 && t.ch == '.':
		t.scanChar()
		t.scanFractionAndSuffix(pos)
	case radix != 16 && radix != 2 && (t.ch == 'e' || t.ch == 'E' ||
		t.ch == 'f' || t.ch == 'F' || t.ch == 'd' || t.ch == 'D'):
		t.scanFractionAndSuffix(pos)
	default:
		if !seen {
			if radix == 16 {
				t.lexError(pos, ErrInvalidHexNumber)
			} else {
				t.lexError(pos, ErrInvalidBinary)
			}
		}
		t.radix = radix
		if t.ch == 'l' || t.ch == 'L' {
			t.scanChar()
			t.kind = token.LONGLITERAL
		} else {
			t.kind = token.INTLITERAL
		}
	}
}

// scanFractionAndSuffix scans the part of a floating literal after the
// decimal point, or the exponent and suffix after an integer part.
func (t *Tokenizer) scanFractionAndSuffix(pos int) {
	t.radix = 10
	t.skipIllegalUnderscores()
	if digit(t.ch, 10) >= 0 {
		t.scanDigits(10)
	}
	if t.ch == 'e' || t.ch == 'E' {
		ePos := t.bp
		t.scanChar()
		t.skipIllegalUnderscores()
		if t.ch == '+' || t.ch == '-' {
			t.scanChar()
		}
		t.skipIllegalUnderscores()
		if digit(t.ch, 10) < 0 {
			t.lexError(ePos, ErrMalformedFloat)
			return
		}
		t.scanDigits(10)
	}
	t.kind = token.DOUBLELITERAL
	switch t.ch {
	case 'f', 'F':
		t.scanChar()
		t.kind = token.FLOATLITERAL
	case 'd', 'D':
		t.scanChar()
	}
}

// scanHexFloat consumes a hexadecimal floating literal, which is not
// supported, and reports it.
func (t *Tokenizer) scanHexFloat(pos int) {
	if t.ch == '.' {
		t.scanChar()
		t.scanDigits(16)
	}
	if t.ch == 'p' || t.ch == 'P' {
		t.scanChar()
		if t.ch == '+' || t.ch == '-' {
			t.scanChar()
		}
		t.scanDigits(10)
	}
	switch t.ch {
	case 'f', 'F', 'd', 'D':
		t.scanChar()
	}
	t.lexError(pos, ErrMalformedFloat)
}
