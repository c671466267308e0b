// Package token defines the lexical vocabulary of the language: the closed
// catalog of token kinds, the registry that maps interned spellings back to
// kinds, and the immutable Token value produced by the lexer.
package token

import "fmt"

// Tag says which payload a token of a given kind carries.
type Tag uint8

// Payload tags.
const (
	Default Tag = iota // no payload
	Named              // an interned name
	String             // literal text
	Numeric            // literal text plus radix
)

func (t Tag) String() string {
	switch t {
	case Default:
		return "DEFAULT"
	case Named:
		return "NAMED"
	case String:
		return "STRING"
	case Numeric:
		return "NUMERIC"
	default:
		return fmt.Sprintf("Tag(%d)", t)
	}
}

// Kind is a lexical category.
//
//nolint:revive // ALL_CAPS kind names mirror the spellings they stand for
type Kind uint8

//nolint:revive // ALL_CAPS kind names mirror the spellings they stand for
const (
	// Operators and punctuators
	ARROW      Kind = iota // ->
	COLCOL                 // ::
	LPAREN                 // (
	RPAREN                 // )
	LBRACE                 // {
	RBRACE                 // }
	LBRACKET               // [
	RBRACKET               // ]
	SEMI                   // ;
	COMMA                  // ,
	DOT                    // .
	ELLIPSIS               // ...
	EQ                     // =
	GT                     // >
	LT                     // <
	BANG                   // !
	TILDE                  // ~
	QUES                   // ?
	COLON                  // :
	EQEQ                   // ==
	LTEQ                   // <=
	GTEQ                   // >=
	BANGEQ                 // !=
	AMPAMP                 // &&
	BARBAR                 // ||
	PLUSPLUS               // ++
	SUBSUB                 // --
	PLUS                   // +
	SUB                    // -
	STAR                   // *
	SLASH                  // /
	AMP                    // &
	BAR                    // |
	CARET                  // ^
	PERCENT                // %
	LTLT                   // <<
	GTGT                   // >>
	GTGTGT                 // >>>
	PLUSEQ                 // +=
	SUBEQ                  // -=
	STAREQ                 // *=
	SLASHEQ                // /=
	AMPEQ                  // &=
	BAREQ                  // |=
	CARETEQ                // ^=
	PERCENTEQ              // %=
	LTLTEQ                 // <<=
	GTGTEQ                 // >>=
	GTGTGTEQ               // >>>=
	MONKEYS_AT             // @

	// Special
	EOF
	ERROR

	// Control flow keywords
	BREAK
	CONTINUE
	FOR
	IF
	CASE
	CATCH
	DEFAULT
	DO
	ELSE
	RETURN
	SWITCH
	THROW
	THROWS
	TRY
	WHILE

	// Modifiers
	ABSTRACT
	NATIVE
	PRIVATE
	PROTECTED
	PUBLIC
	STATIC
	STRICTFP
	SYNCHRONIZED
	TRANSIENT
	VOLATILE

	// Reserved, never legal
	CONST
	GOTO

	IDENTIFIER

	// Declaration and type keywords
	ASSERT
	BOOLEAN
	BYTE
	CHAR
	CLASS
	DOUBLE
	ENUM
	EXTENDS
	FINAL
	FINALLY
	FLOAT
	IMPLEMENTS
	IMPORT
	INSTANCEOF
	INT
	INTERFACE
	LONG
	NEW
	PACKAGE
	SHORT
	SUPER
	THIS
	VOID

	// Literals
	INTLITERAL
	LONGLITERAL
	FLOATLITERAL
	DOUBLELITERAL
	CHARLITERAL
	STRINGLITERAL
	TRUE
	FALSE
	NULL
	UNDERSCORE

	CUSTOM

	numKinds
)

type kindInfo struct {
	name     string
	spelling string
	tag      Tag
}

// kinds is indexed by Kind.
var kinds = [numKinds]kindInfo{
	ARROW:      {"ARROW", "->", Default},
	COLCOL:     {"COLCOL", "::", Default},
	LPAREN:     {"LPAREN", "(", Default},
	RPAREN:     {"RPAREN", ")", Default},
	LBRACE:     {"LBRACE", "{", Default},
	RBRACE:     {"RBRACE", "}", Default},
	LBRACKET:   {"LBRACKET", "[", Default},
	RBRACKET:   {"RBRACKET", "]", Default},
	SEMI:       {"SEMI", ";", Default},
	COMMA:      {"COMMA", ",", Default},
	DOT:        {"DOT", ".", Default},
	ELLIPSIS:   {"ELLIPSIS", "...", Default},
	EQ:         {"EQ", "=", Default},
	GT:         {"GT", ">", Default},
	LT:         {"LT", "<", Default},
	BANG:       {"BANG", "!", Default},
	TILDE:      {"TILDE", "~", Default},
	QUES:       {"QUES", "?", Default},
	COLON:      {"COLON", ":", Default},
	EQEQ:       {"EQEQ", "==", Default},
	LTEQ:       {"LTEQ", "<=", Default},
	GTEQ:       {"GTEQ", ">=", Default},
	BANGEQ:     {"BANGEQ", "!=", Default},
	AMPAMP:     {"AMPAMP", "&&", Default},
	BARBAR:     {"BARBAR", "||", Default},
	PLUSPLUS:   {"PLUSPLUS", "++", Default},
	SUBSUB:     {"SUBSUB", "--", Default},
	PLUS:       {"PLUS", "+", Default},
	SUB:        {"SUB", "-", Default},
	STAR:       {"STAR", "*", Default},
	SLASH:      {"SLASH", "/", Default},
	AMP:        {"AMP", "&", Default},
	BAR:        {"BAR", "|", Default},
	CARET:      {"CARET", "^", Default},
	PERCENT:    {"PERCENT", "%", Default},
	LTLT:       {"LTLT", "<<", Default},
	GTGT:       {"GTGT", ">>", Default},
	GTGTGT:     {"GTGTGT", ">>>", Default},
	PLUSEQ:     {"PLUSEQ", "+=", Default},
	SUBEQ:      {"SUBEQ", "-=", Default},
	STAREQ:     {"STAREQ", "*=", Default},
	SLASHEQ:    {"SLASHEQ", "/=", Default},
	AMPEQ:      {"AMPEQ", "&=", Default},
	BAREQ:      {"BAREQ", "|=", Default},
	CARETEQ:    {"CARETEQ", "^=", Default},
	PERCENTEQ:  {"PERCENTEQ", "%=", Default},
	LTLTEQ:     {"LTLTEQ", "<<=", Default},
	GTGTEQ:     {"GTGTEQ", ">>=", Default},
	GTGTGTEQ:   {"GTGTGTEQ", ">>>=", Default},
	MONKEYS_AT: {"MONKEYS_AT", "@", Default},

	EOF:   {"EOF", "", Default},
	ERROR: {"ERROR", "", Default},

	BREAK:    {"BREAK", "break", Default},
	CONTINUE: {"CONTINUE", "continue", Default},
	FOR:      {"FOR", "for", Default},
	IF:       {"IF", "if", Default},
	CASE:     {"CASE", "case", Default},
	CATCH:    {"CATCH", "catch", Default},
	DEFAULT:  {"DEFAULT", "default", Default},
	DO:       {"DO", "do", Default},
	ELSE:     {"ELSE", "else", Default},
	RETURN:   {"RETURN", "return", Default},
	SWITCH:   {"SWITCH", "switch", Default},
	THROW:    {"THROW", "throw", Default},
	THROWS:   {"THROWS", "throws", Default},
	TRY:      {"TRY", "try", Default},
	WHILE:    {"WHILE", "while", Default},

	ABSTRACT:     {"ABSTRACT", "abstract", Default},
	NATIVE:       {"NATIVE", "native", Default},
	PRIVATE:      {"PRIVATE", "private", Default},
	PROTECTED:    {"PROTECTED", "protected", Default},
	PUBLIC:       {"PUBLIC", "public", Default},
	STATIC:       {"STATIC", "static", Default},
	STRICTFP:     {"STRICTFP", "strictfp", Default},
	SYNCHRONIZED: {"SYNCHRONIZED", "synchronized", Default},
	TRANSIENT:    {"TRANSIENT", "transient", Default},
	VOLATILE:     {"VOLATILE", "volatile", Default},

	CONST: {"CONST", "const", Default},
	GOTO:  {"GOTO", "goto", Default},

	IDENTIFIER: {"IDENTIFIER", "", Named},

	ASSERT:     {"ASSERT", "assert", Named},
	BOOLEAN:    {"BOOLEAN", "boolean", Named},
	BYTE:       {"BYTE", "byte", Named},
	CHAR:       {"CHAR", "char", Named},
	CLASS:      {"CLASS", "class", Default},
	DOUBLE:     {"DOUBLE", "double", Named},
	ENUM:       {"ENUM", "enum", Named},
	EXTENDS:    {"EXTENDS", "extends", Default},
	FINAL:      {"FINAL", "final", Default},
	FINALLY:    {"FINALLY", "finally", Default},
	FLOAT:      {"FLOAT", "float", Named},
	IMPLEMENTS: {"IMPLEMENTS", "implements", Default},
	IMPORT:     {"IMPORT", "import", Default},
	INSTANCEOF: {"INSTANCEOF", "instanceof", Default},
	INT:        {"INT", "int", Named},
	INTERFACE:  {"INTERFACE", "interface", Default},
	LONG:       {"LONG", "long", Named},
	NEW:        {"NEW", "new", Default},
	PACKAGE:    {"PACKAGE", "package", Default},
	SHORT:      {"SHORT", "short", Named},
	SUPER:      {"SUPER", "super", Named},
	THIS:       {"THIS", "this", Named},
	VOID:       {"VOID", "void", Named},

	INTLITERAL:    {"INTLITERAL", "", Numeric},
	LONGLITERAL:   {"LONGLITERAL", "", Numeric},
	FLOATLITERAL:  {"FLOATLITERAL", "", Numeric},
	DOUBLELITERAL: {"DOUBLELITERAL", "", Numeric},
	CHARLITERAL:   {"CHARLITERAL", "", Numeric},
	STRINGLITERAL: {"STRINGLITERAL", "", String},
	TRUE:          {"TRUE", "true", Named},
	FALSE:         {"FALSE", "false", Named},
	NULL:          {"NULL", "null", Named},
	UNDERSCORE:    {"UNDERSCORE", "_", Named},

	CUSTOM: {"CUSTOM", "", Default},
}

// NumKinds is the size of the catalog.
const NumKinds = int(numKinds)

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Spelling returns the fixed spelling of k, or "" for payload-bearing kinds.
func (k Kind) Spelling() string {
	if k >= numKinds {
		return ""
	}
	return kinds[k].spelling
}

// Tag returns the payload tag of k.
func (k Kind) Tag() Tag {
	if k >= numKinds {
		return Default
	}
	return kinds[k].tag
}

// Name returns the constant name of k, e.g. "GTGTGTEQ".
func (k Kind) Name() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kinds[k].name
}

// HasSpelling reports whether k is a fixed-spelling kind.
func (k Kind) HasSpelling() bool {
	return k.Spelling() != ""
}

// String returns the form used in diagnostics: a message key for payload
// kinds, the quoted spelling for separators and the plain spelling otherwise.
func (k Kind) String() string {
	switch k {
	case IDENTIFIER:
		return "token.identifier"
	case CHARLITERAL:
		return "token.character"
	case STRINGLITERAL:
		return "token.string"
	case INTLITERAL:
		return "token.integer"
	case LONGLITERAL:
		return "token.long-integer"
	case FLOATLITERAL:
		return "token.float"
	case DOUBLELITERAL:
		return "token.double"
	case ERROR:
		return "token.bad-symbol"
	case EOF:
		return "token.end-of-input"
	case DOT, COMMA, SEMI, LPAREN, RPAREN, LBRACKET, RBRACKET, LBRACE, RBRACE:
		return "'" + k.Spelling() + "'"
	}
	if s := k.Spelling(); s != "" {
		return s
	}
	return k.Name()
}

// IsOperator reports whether k is an operator or punctuator.
func (k Kind) IsOperator() bool {
	return k <= MONKEYS_AT
}

// IsKeyword reports whether k is spelled like an identifier.
func (k Kind) IsKeyword() bool {
	return k > ERROR && k < numKinds && k != IDENTIFIER && k.HasSpelling()
}

// IsLiteral reports whether k is a literal kind, including true, false and
// null.
func (k Kind) IsLiteral() bool {
	return k >= INTLITERAL && k <= NULL
}
