package lexer

import "github.com/leapstack-labs/leapjc/pkg/token"

// Scanner is the pull-based view of a Tokenizer that a parser consumes: a
// current token, arbitrary lookahead, the previous token and splitting of
// compound operators.
type Scanner struct {
	tokenizer *Tokenizer
	registry  *token.Registry

	tok   token.Token
	prev  token.Token
	ahead []token.Token
}

func newScanner(t *Tokenizer) *Scanner {
	s := &Scanner{tokenizer: t, registry: t.registry}
	s.NextToken()
	return s
}

// NextToken advances to the next token.
func (s *Scanner) NextToken() {
	s.prev = s.tok
	if len(s.ahead) > 0 {
		s.tok = s.ahead[0]
		s.ahead = s.ahead[1:]
		return
	}
	s.tok = s.tokenizer.ReadToken()
}

// Token returns the current token.
func (s *Scanner) Token() token.Token {
	return s.tok
}

// TokenAt returns the token lookahead positions after the current one.
// TokenAt(0) is the current token.
func (s *Scanner) TokenAt(lookahead int) token.Token {
	if lookahead <= 0 {
		return s.tok
	}
	for len(s.ahead) < lookahead {
		s.ahead = append(s.ahead, s.tokenizer.ReadToken())
	}
	return s.ahead[lookahead-1]
}

// PrevToken returns the token before the current one.
func (s *Scanner) PrevToken() token.Token {
	return s.prev
}

// Split breaks the current token in two, e.g. >> into > and >. The first
// half becomes the previous token and is returned; the second half becomes
// the current token. Splitting a token that does not decompose panics.
func (s *Scanner) Split() token.Token {
	first, rest := s.tok.Split(s.registry)
	s.prev = first
	s.tok = rest
	return first
}

// ErrPos returns the offset of the last lexical error, or -1.
func (s *Scanner) ErrPos() int {
	return s.tokenizer.ErrPos()
}

// SetErrPos overrides the recorded error offset.
func (s *Scanner) SetErrPos(pos int) {
	s.tokenizer.SetErrPos(pos)
}

// LineMap returns the line map of the input scanned so far.
func (s *Scanner) LineMap() *LineMap {
	return s.tokenizer.LineMap()
}

// Err returns the lexical errors seen so far, or nil.
func (s *Scanner) Err() error {
	return s.tokenizer.Err()
}
