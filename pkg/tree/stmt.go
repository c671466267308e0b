package tree

import "github.com/leapstack-labs/leapjc/pkg/name"

// Skip is the empty statement.
type Skip struct{ stmtBase }

func (*Skip) Tag() Tag { return SkipTag }

// Block is a braced statement list, optionally static.
type Block struct {
	stmtBase
	Flags  Flags
	Stats  []Statement
	EndPos int // offset of the closing brace
}

func (*Block) Tag() Tag { return BlockTag }

// DoWhileLoop is do Body while (Cond);
type DoWhileLoop struct {
	stmtBase
	Body Statement
	Cond Expression
}

func (*DoWhileLoop) Tag() Tag { return DoLoop }

// WhileLoop is while (Cond) Body.
type WhileLoop struct {
	stmtBase
	Cond Expression
	Body Statement
}

func (*WhileLoop) Tag() Tag { return WhileLoopTag }

// ForLoop is for (Init; Cond; Step) Body.
type ForLoop struct {
	stmtBase
	Init []Statement
	Cond Expression // nil when omitted
	Step []*ExpressionStatement
	Body Statement
}

func (*ForLoop) Tag() Tag { return ForLoopTag }

// EnhancedForLoop is for (Var : Expr) Body.
type EnhancedForLoop struct {
	stmtBase
	Var  *VariableDecl
	Expr Expression
	Body Statement
}

func (*EnhancedForLoop) Tag() Tag { return ForeachLoop }

// LabeledStatement is Label: Body.
type LabeledStatement struct {
	stmtBase
	Label name.Name
	Body  Statement
}

func (*LabeledStatement) Tag() Tag { return Labelled }

// Switch is a switch statement.
type Switch struct {
	stmtBase
	Selector Expression
	Cases    []*Case
}

func (*Switch) Tag() Tag { return SwitchTag }

// Case is one case of a switch. Pat is nil for the default case.
type Case struct {
	stmtBase
	Pat   Expression
	Stats []Statement
}

func (*Case) Tag() Tag { return CaseTag }

// IsDefault reports whether c is the default case.
func (c *Case) IsDefault() bool { return c.Pat == nil }

// Synchronized is synchronized (Lock) Body.
type Synchronized struct {
	stmtBase
	Lock Expression
	Body *Block
}

func (*Synchronized) Tag() Tag { return SynchronizedTag }

// Try is a try statement, with resources when Resources is non-empty.
type Try struct {
	stmtBase
	Resources                  []Node
	Body                       *Block
	Catchers                   []*Catch
	Finalizer                  *Block // nil without a finally clause
	FinallyCanCompleteNormally bool
}

func (*Try) Tag() Tag { return TryTag }

// If is if (Cond) ThenPart else ElsePart.
type If struct {
	stmtBase
	Cond     Expression
	ThenPart Statement
	ElsePart Statement // nil without else
}

func (*If) Tag() Tag { return IfTag }

// ExpressionStatement is an expression evaluated for its effect.
type ExpressionStatement struct {
	stmtBase
	Expr Expression
}

func (*ExpressionStatement) Tag() Tag { return Exec }

// Break is break [Label]. Target is filled in by attribution.
type Break struct {
	stmtBase
	Label  name.Name
	Target Node
}

func (*Break) Tag() Tag { return BreakTag }

// Continue is continue [Label]. Target is filled in by attribution.
type Continue struct {
	stmtBase
	Label  name.Name
	Target Node
}

func (*Continue) Tag() Tag { return ContinueTag }

// Return is return [Expr].
type Return struct {
	stmtBase
	Expr Expression
}

func (*Return) Tag() Tag { return ReturnTag }

// Throw is throw Expr.
type Throw struct {
	stmtBase
	Expr Expression
}

func (*Throw) Tag() Tag { return ThrowTag }

// Assert is assert Cond [: Detail].
type Assert struct {
	stmtBase
	Cond   Expression
	Detail Expression
}

func (*Assert) Tag() Tag { return AssertTag }
