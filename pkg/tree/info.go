package tree

import (
	"github.com/leapstack-labs/leapjc/pkg/name"
	"github.com/leapstack-labs/leapjc/pkg/token"
)

var binaryOps = map[token.Kind]Tag{
	token.BARBAR:  Or,
	token.AMPAMP:  And,
	token.BAR:     BitOr,
	token.CARET:   BitXor,
	token.AMP:     BitAnd,
	token.EQEQ:    Eq,
	token.BANGEQ:  Ne,
	token.LT:      Lt,
	token.GT:      Gt,
	token.LTEQ:    Le,
	token.GTEQ:    Ge,
	token.LTLT:    Sl,
	token.GTGT:    Sr,
	token.GTGTGT:  Usr,
	token.PLUS:    Plus,
	token.SUB:     Minus,
	token.STAR:    Mul,
	token.SLASH:   Div,
	token.PERCENT: Mod,
}

var assignOps = map[token.Kind]Tag{
	token.BAREQ:     BitOrAsg,
	token.CARETEQ:   BitXorAsg,
	token.AMPEQ:     BitAndAsg,
	token.LTLTEQ:    SlAsg,
	token.GTGTEQ:    SrAsg,
	token.GTGTGTEQ:  UsrAsg,
	token.PLUSEQ:    PlusAsg,
	token.SUBEQ:     MinusAsg,
	token.STAREQ:    MulAsg,
	token.SLASHEQ:   DivAsg,
	token.PERCENTEQ: ModAsg,
}

var prefixOps = map[token.Kind]Tag{
	token.PLUS:     Pos,
	token.SUB:      Neg,
	token.BANG:     Not,
	token.TILDE:    Compl,
	token.PLUSPLUS: PreInc,
	token.SUBSUB:   PreDec,
}

var opKinds = func() map[Tag]token.Kind {
	m := make(map[Tag]token.Kind)
	for _, ops := range []map[token.Kind]Tag{binaryOps, assignOps, prefixOps} {
		for k, t := range ops {
			m[t] = k
		}
	}
	m[PostInc] = token.PLUSPLUS
	m[PostDec] = token.SUBSUB
	return m
}()

// BinaryTag maps an infix operator token to its tag, NoTag otherwise.
func BinaryTag(k token.Kind) Tag {
	return binaryOps[k]
}

// AssignOpTag maps a compound assignment token to its tag, NoTag otherwise.
func AssignOpTag(k token.Kind) Tag {
	return assignOps[k]
}

// UnaryTag maps a prefix operator token to its tag, NoTag otherwise.
func UnaryTag(k token.Kind) Tag {
	return prefixOps[k]
}

// PostfixTag maps ++ and -- to their postfix tags, NoTag otherwise.
func PostfixTag(k token.Kind) Tag {
	switch k {
	case token.PLUSPLUS:
		return PostInc
	case token.SUBSUB:
		return PostDec
	}
	return NoTag
}

// OperatorKind returns the token spelling an operator tag. The second
// result is false for tags that have none, NullChk included.
func OperatorKind(t Tag) (token.Kind, bool) {
	k, ok := opKinds[t]
	return k, ok
}

var modifierFlags = map[token.Kind]Flags{
	token.PUBLIC:       FlagPublic,
	token.PRIVATE:      FlagPrivate,
	token.PROTECTED:    FlagProtected,
	token.STATIC:       FlagStatic,
	token.FINAL:        FlagFinal,
	token.ABSTRACT:     FlagAbstract,
	token.NATIVE:       FlagNative,
	token.SYNCHRONIZED: FlagSynchronized,
	token.TRANSIENT:    FlagTransient,
	token.VOLATILE:     FlagVolatile,
	token.STRICTFP:     FlagStrictFP,
	token.DEFAULT:      FlagDefault,
}

// ModifierFlag returns the flag a modifier keyword sets, 0 for other kinds.
func ModifierFlag(k token.Kind) Flags {
	return modifierFlags[k]
}

// LiteralTypeTag returns the type tag of a literal token kind.
func LiteralTypeTag(k token.Kind) (TypeTag, bool) {
	switch k {
	case token.INTLITERAL:
		return TypeTagInt, true
	case token.LONGLITERAL:
		return TypeTagLong, true
	case token.FLOATLITERAL:
		return TypeTagFloat, true
	case token.DOUBLELITERAL:
		return TypeTagDouble, true
	case token.CHARLITERAL:
		return TypeTagChar, true
	case token.STRINGLITERAL:
		return TypeTagClass, true
	case token.TRUE, token.FALSE:
		return TypeTagBoolean, true
	case token.NULL:
		return TypeTagBot, true
	}
	return TypeTagNone, false
}

// SkipParens strips any number of enclosing parentheses.
func SkipParens(e Expression) Expression {
	for {
		p, ok := e.(*Parens)
		if !ok || p == nil {
			return e
		}
		e = p.Expr
	}
}

// Name returns the simple name a node declares or refers to, and false
// when it has none.
func Name(n Node) (name.Name, bool) {
	switch n := n.(type) {
	case *Ident:
		return n.Name, true
	case *FieldAccess:
		return n.Name, true
	case *MemberReference:
		return n.Name, true
	case *ClassDecl:
		return n.Name, true
	case *MethodDecl:
		return n.Name, true
	case *VariableDecl:
		return n.Name, true
	case *TypeParameter:
		return n.Name, true
	case *LabeledStatement:
		return n.Label, true
	}
	return name.Name{}, false
}

// IsExpression reports whether n is an expression node.
func IsExpression(n Node) bool {
	_, ok := n.(Expression)
	return ok
}

// IsStatement reports whether n is a statement node.
func IsStatement(n Node) bool {
	_, ok := n.(Statement)
	return ok
}
