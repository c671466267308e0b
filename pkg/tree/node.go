// Package tree is the abstract syntax tree of the language: one sealed sum
// type over every node variant, a Factory that is the only sanctioned way
// to build nodes, and two dispatch styles over them (Accept for
// side-effecting visitors, Apply for value-returning ones).
package tree

import "fmt"

// Node is implemented by every tree variant. Tag always identifies the
// concrete variant.
type Node interface {
	Tag() Tag
	// Pos returns the source offset the node was built at.
	Pos() int
	SetPos(pos int)
	// Type returns the semantic type, nil before attribution.
	Type() Type
	SetType(t Type)

	node()
}

// Statement is a marker interface for statement nodes.
type Statement interface {
	Node
	stmtNode()
}

// Expression is a marker interface for expression nodes.
type Expression interface {
	Node
	exprNode()
}

// PolyExpression is an expression whose type may depend on its target:
// method invocations, instance creations, conditionals, lambdas and member
// references.
type PolyExpression interface {
	Expression
	PolyKind() PolyKind
	// SetPolyKind may be called at most once per node.
	SetPolyKind(k PolyKind)
}

// FunctionalExpression is a lambda or a member reference. It is always a
// true poly expression.
type FunctionalExpression interface {
	PolyExpression
	Targets() []Type
	SetTargets(ts []Type)
}

type base struct {
	pos int
	typ Type
}

func (b *base) Pos() int         { return b.pos }
func (b *base) SetPos(pos int)   { b.pos = pos }
func (b *base) Type() Type       { return b.typ }
func (b *base) SetType(typ Type) { b.typ = typ }
func (*base) node()              {}

type stmtBase struct{ base }

func (*stmtBase) stmtNode() {}

type exprBase struct{ base }

func (*exprBase) exprNode() {}

type polyBase struct {
	exprBase
	polyKind PolyKind
	polySet  bool
}

func (p *polyBase) PolyKind() PolyKind { return p.polyKind }

func (p *polyBase) SetPolyKind(k PolyKind) {
	if p.polySet {
		panic(fmt.Sprintf("tree: poly kind already set to %s", p.polyKind))
	}
	p.polyKind = k
	p.polySet = true
}

type functionalBase struct {
	polyBase
	targets []Type
}

func (f *functionalBase) Targets() []Type      { return f.targets }
func (f *functionalBase) SetTargets(ts []Type) { f.targets = ts }
