package tree

import "fmt"

// Tag identifies the variant of a node. Unary, binary and compound
// assignment nodes carry their operator as tag.
type Tag uint8

// Node tags.
const (
	NoTag Tag = iota
	TopLevel
	ImportTag
	ClassDef
	MethodDef
	VarDef
	SkipTag
	BlockTag
	DoLoop
	WhileLoopTag
	ForLoopTag
	ForeachLoop
	Labelled
	SwitchTag
	CaseTag
	SynchronizedTag
	TryTag
	CatchTag
	CondExpr
	IfTag
	Exec
	BreakTag
	ContinueTag
	ReturnTag
	ThrowTag
	AssertTag
	ApplyTag
	NewClassTag
	NewArrayTag
	LambdaTag
	ParensTag
	AssignTag
	TypeCastTag
	TypeTest
	Indexed
	Select
	Reference
	IdentTag
	LiteralTag
	TypeIdent
	TypeArray
	TypeApplyTag
	TypeUnionTag
	TypeIntersectionTag
	TypeParameterTag
	WildcardTag
	TypeBoundKindTag
	AnnotationTag
	TypeAnnotation
	ModifiersTag
	AnnotatedTypeTag
	ErroneousTag

	// Unary operators
	Pos     // +
	Neg     // -
	Not     // !
	Compl   // ~
	PreInc  // ++ _
	PreDec  // -- _
	PostInc // _ ++
	PostDec // _ --
	NullChk

	// Binary operators
	Or     // ||
	And    // &&
	BitOr  // |
	BitXor // ^
	BitAnd // &
	Eq     // ==
	Ne     // !=
	Lt     // <
	Gt     // >
	Le     // <=
	Ge     // >=
	Sl     // <<
	Sr     // >>
	Usr    // >>>
	Plus   // +
	Minus  // -
	Mul    // *
	Div    // /
	Mod    // %

	// Compound assignment operators
	BitOrAsg  // |=
	BitXorAsg // ^=
	BitAndAsg // &=
	SlAsg     // <<=
	SrAsg     // >>=
	UsrAsg    // >>>=
	PlusAsg   // +=
	MinusAsg  // -=
	MulAsg    // *=
	DivAsg    // /=
	ModAsg    // %=

	LetExprTag

	numTags
)

var tagNames = [numTags]string{
	NoTag: "NO_TAG", TopLevel: "TOPLEVEL", ImportTag: "IMPORT", ClassDef: "CLASSDEF",
	MethodDef: "METHODDEF", VarDef: "VARDEF", SkipTag: "SKIP", BlockTag: "BLOCK",
	DoLoop: "DOLOOP", WhileLoopTag: "WHILELOOP", ForLoopTag: "FORLOOP", ForeachLoop: "FOREACHLOOP",
	Labelled: "LABELLED", SwitchTag: "SWITCH", CaseTag: "CASE", SynchronizedTag: "SYNCHRONIZED",
	TryTag: "TRY", CatchTag: "CATCH", CondExpr: "CONDEXPR", IfTag: "IF", Exec: "EXEC",
	BreakTag: "BREAK", ContinueTag: "CONTINUE", ReturnTag: "RETURN", ThrowTag: "THROW",
	AssertTag: "ASSERT", ApplyTag: "APPLY", NewClassTag: "NEWCLASS", NewArrayTag: "NEWARRAY",
	LambdaTag: "LAMBDA", ParensTag: "PARENS", AssignTag: "ASSIGN", TypeCastTag: "TYPECAST",
	TypeTest: "TYPETEST", Indexed: "INDEXED", Select: "SELECT", Reference: "REFERENCE",
	IdentTag: "IDENT", LiteralTag: "LITERAL", TypeIdent: "TYPEIDENT", TypeArray: "TYPEARRAY",
	TypeApplyTag: "TYPEAPPLY", TypeUnionTag: "TYPEUNION", TypeIntersectionTag: "TYPEINTERSECTION",
	TypeParameterTag: "TYPEPARAMETER", WildcardTag: "WILDCARD", TypeBoundKindTag: "TYPEBOUNDKIND",
	AnnotationTag: "ANNOTATION", TypeAnnotation: "TYPE_ANNOTATION", ModifiersTag: "MODIFIERS",
	AnnotatedTypeTag: "ANNOTATED_TYPE", ErroneousTag: "ERRONEOUS",
	Pos: "POS", Neg: "NEG", Not: "NOT", Compl: "COMPL", PreInc: "PREINC", PreDec: "PREDEC",
	PostInc: "POSTINC", PostDec: "POSTDEC", NullChk: "NULLCHK",
	Or: "OR", And: "AND", BitOr: "BITOR", BitXor: "BITXOR", BitAnd: "BITAND", Eq: "EQ", Ne: "NE",
	Lt: "LT", Gt: "GT", Le: "LE", Ge: "GE", Sl: "SL", Sr: "SR", Usr: "USR", Plus: "PLUS",
	Minus: "MINUS", Mul: "MUL", Div: "DIV", Mod: "MOD",
	BitOrAsg: "BITOR_ASG", BitXorAsg: "BITXOR_ASG", BitAndAsg: "BITAND_ASG", SlAsg: "SL_ASG",
	SrAsg: "SR_ASG", UsrAsg: "USR_ASG", PlusAsg: "PLUS_ASG", MinusAsg: "MINUS_ASG",
	MulAsg: "MUL_ASG", DivAsg: "DIV_ASG", ModAsg: "MOD_ASG",
	LetExprTag: "LETEXPR",
}

// NumTags is the number of defined tags.
const NumTags = int(numTags)

func (t Tag) String() string {
	if t < numTags {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", t)
}

// NumberOfOperators returns the number of unary and binary operator tags.
func NumberOfOperators() int {
	return int(Mod-Pos) + 1
}

// OperatorIndex returns the position of t among the operator tags.
func (t Tag) OperatorIndex() int {
	return int(t) - int(Pos)
}

// IsUnary reports whether t is a unary operator.
func (t Tag) IsUnary() bool {
	return t >= Pos && t <= NullChk
}

// IsBinary reports whether t is a binary operator.
func (t Tag) IsBinary() bool {
	return t >= Or && t <= Mod
}

// IsAssignOp reports whether t is a compound assignment operator.
func (t Tag) IsAssignOp() bool {
	return t >= BitOrAsg && t <= ModAsg
}

// IsPostUnaryOp reports whether t is a postfix increment or decrement.
func (t Tag) IsPostUnaryOp() bool {
	return t == PostInc || t == PostDec
}

// IsIncOrDecUnaryOp reports whether t increments or decrements.
func (t Tag) IsIncOrDecUnaryOp() bool {
	return t >= PreInc && t <= PostDec
}

// NoAssignOp returns the binary operator underlying a compound
// assignment, e.g. Plus for PlusAsg. It panics for any other tag.
func (t Tag) NoAssignOp() Tag {
	switch t {
	case BitOrAsg:
		return BitOr
	case BitXorAsg:
		return BitXor
	case BitAndAsg:
		return BitAnd
	case SlAsg:
		return Sl
	case SrAsg:
		return Sr
	case UsrAsg:
		return Usr
	case PlusAsg:
		return Plus
	case MinusAsg:
		return Minus
	case MulAsg:
		return Mul
	case DivAsg:
		return Div
	case ModAsg:
		return Mod
	}
	panic(fmt.Sprintf("tree: NoAssignOp called on non-assignment tag %s", t))
}
