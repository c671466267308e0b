package tree

import (
	"fmt"

	"github.com/leapstack-labs/leapjc/pkg/name"
)

// Factory is the construction surface for trees. Every list parameter may
// be nil; the resulting node always holds a non-nil, possibly empty, slice.
type Factory interface {
	TopLevel(packageAnnotations []*Annotation, pid Expression, defs []Node) *CompilationUnit
	Import(qualid Node, static bool) *Import
	ClassDef(mods *Modifiers, n name.Name, typarams []*TypeParameter, extending Expression,
		implementing []Expression, defs []Node) *ClassDecl
	MethodDef(mods *Modifiers, n name.Name, restype Expression, typarams []*TypeParameter,
		recvparam *VariableDecl, params []*VariableDecl, thrown []Expression, body *Block,
		defaultValue Expression) *MethodDecl
	VarDef(mods *Modifiers, n name.Name, vartype Expression, init Expression) *VariableDecl
	Skip() *Skip
	Block(flags Flags, stats []Statement) *Block
	DoLoop(body Statement, cond Expression) *DoWhileLoop
	WhileLoop(cond Expression, body Statement) *WhileLoop
	ForLoop(init []Statement, cond Expression, step []*ExpressionStatement, body Statement) *ForLoop
	ForeachLoop(v *VariableDecl, expr Expression, body Statement) *EnhancedForLoop
	Labelled(label name.Name, body Statement) *LabeledStatement
	Switch(selector Expression, cases []*Case) *Switch
	Case(pat Expression, stats []Statement) *Case
	Synchronized(lock Expression, body *Block) *Synchronized
	Try(resources []Node, body *Block, catchers []*Catch, finalizer *Block) *Try
	Catch(param *VariableDecl, body *Block) *Catch
	Conditional(cond, thenpart, elsepart Expression) *Conditional
	If(cond Expression, thenpart, elsepart Statement) *If
	Exec(expr Expression) *ExpressionStatement
	Break(label name.Name) *Break
	Continue(label name.Name) *Continue
	Return(expr Expression) *Return
	Throw(expr Expression) *Throw
	Assert(cond, detail Expression) *Assert
	Apply(typeargs []Expression, fn Expression, args []Expression) *MethodInvocation
	NewClass(encl Expression, typeargs []Expression, clazz Expression, args []Expression,
		def *ClassDecl) *NewClass
	NewArray(elemtype Expression, dims []Expression, elems []Expression) *NewArray
	Lambda(params []*VariableDecl, body Node) *Lambda
	Parens(expr Expression) *Parens
	Assign(lhs, rhs Expression) *Assign
	AssignOp(op Tag, lhs, rhs Expression) *AssignOp
	Unary(op Tag, arg Expression) *Unary
	Binary(op Tag, lhs, rhs Expression) *Binary
	TypeCast(clazz Node, expr Expression) *TypeCast
	TypeTest(expr Expression, clazz Node) *InstanceOf
	Indexed(indexed, index Expression) *ArrayAccess
	Select(selected Expression, selector name.Name) *FieldAccess
	Reference(mode ReferenceMode, n name.Name, expr Expression, typeargs []Expression) *MemberReference
	Ident(n name.Name) *Ident
	Literal(tag TypeTag, value any) *Literal
	TypeIdent(tag TypeTag) *PrimitiveType
	TypeArray(elemtype Expression) *ArrayType
	TypeApply(clazz Expression, arguments []Expression) *TypeApply
	TypeUnion(alternatives []Expression) *TypeUnion
	TypeIntersection(bounds []Expression) *TypeIntersection
	TypeParameter(n name.Name, bounds []Expression, annos []*Annotation) *TypeParameter
	Wildcard(kind *TypeBoundKind, inner Node) *Wildcard
	TypeBoundKind(kind BoundKind) *TypeBoundKind
	Annotation(annotationType Node, args []Expression) *Annotation
	TypeAnnotation(annotationType Node, args []Expression) *Annotation
	Modifiers(flags Flags, annotations []*Annotation) *Modifiers
	AnnotatedType(annotations []*Annotation, underlying Expression) *AnnotatedType
	Erroneous(errs ...Node) *Erroneous
	LetExpr(defs []*VariableDecl, expr Node) *LetExpr
}

// Maker is the standard Factory. Nodes it builds are positioned at the
// offset last passed to At.
type Maker struct {
	pos int
}

var _ Factory = (*Maker)(nil)

// NewMaker returns a Maker positioned at offset 0.
func NewMaker() *Maker {
	return &Maker{}
}

// At sets the position of subsequently built nodes and returns m.
func (m *Maker) At(pos int) *Maker {
	m.pos = pos
	return m
}

// Pos returns the current position.
func (m *Maker) Pos() int {
	return m.pos
}

func list[T any](xs []T) []T {
	if xs == nil {
		return []T{}
	}
	return xs
}

func (m *Maker) TopLevel(packageAnnotations []*Annotation, pid Expression, defs []Node) *CompilationUnit {
	t := &CompilationUnit{PackageAnnotations: list(packageAnnotations), PID: pid, Defs: list(defs)}
	t.pos = m.pos
	return t
}

func (m *Maker) Import(qualid Node, static bool) *Import {
	t := &Import{Qualid: qualid, Static: static}
	t.pos = m.pos
	return t
}

func (m *Maker) ClassDef(mods *Modifiers, n name.Name, typarams []*TypeParameter, extending Expression,
	implementing []Expression, defs []Node) *ClassDecl {
	t := &ClassDecl{
		Mods:         mods,
		Name:         n,
		TypeParams:   list(typarams),
		Extending:    extending,
		Implementing: list(implementing),
		Defs:         list(defs),
	}
	t.pos = m.pos
	return t
}

func (m *Maker) MethodDef(mods *Modifiers, n name.Name, restype Expression, typarams []*TypeParameter,
	recvparam *VariableDecl, params []*VariableDecl, thrown []Expression, body *Block,
	defaultValue Expression) *MethodDecl {
	t := &MethodDecl{
		Mods:         mods,
		Name:         n,
		ResType:      restype,
		TypeParams:   list(typarams),
		RecvParam:    recvparam,
		Params:       list(params),
		Thrown:       list(thrown),
		Body:         body,
		DefaultValue: defaultValue,
	}
	t.pos = m.pos
	return t
}

func (m *Maker) VarDef(mods *Modifiers, n name.Name, vartype Expression, init Expression) *VariableDecl {
	t := &VariableDecl{Mods: mods, Name: n, VarType: vartype, Init: init}
	t.pos = m.pos
	return t
}

func (m *Maker) Skip() *Skip {
	t := &Skip{}
	t.pos = m.pos
	return t
}

func (m *Maker) Block(flags Flags, stats []Statement) *Block {
	t := &Block{Flags: flags, Stats: list(stats), EndPos: -1}
	t.pos = m.pos
	return t
}

func (m *Maker) DoLoop(body Statement, cond Expression) *DoWhileLoop {
	t := &DoWhileLoop{Body: body, Cond: cond}
	t.pos = m.pos
	return t
}

func (m *Maker) WhileLoop(cond Expression, body Statement) *WhileLoop {
	t := &WhileLoop{Cond: cond, Body: body}
	t.pos = m.pos
	return t
}

func (m *Maker) ForLoop(init []Statement, cond Expression, step []*ExpressionStatement, body Statement) *ForLoop {
	t := &ForLoop{Init: list(init), Cond: cond, Step: list(step), Body: body}
	t.pos = m.pos
	return t
}

func (m *Maker) ForeachLoop(v *VariableDecl, expr Expression, body Statement) *EnhancedForLoop {
	t := &EnhancedForLoop{Var: v, Expr: expr, Body: body}
	t.pos = m.pos
	return t
}

func (m *Maker) Labelled(label name.Name, body Statement) *LabeledStatement {
	t := &LabeledStatement{Label: label, Body: body}
	t.pos = m.pos
	return t
}

func (m *Maker) Switch(selector Expression, cases []*Case) *Switch {
	t := &Switch{Selector: selector, Cases: list(cases)}
	t.pos = m.pos
	return t
}

func (m *Maker) Case(pat Expression, stats []Statement) *Case {
	t := &Case{Pat: pat, Stats: list(stats)}
	t.pos = m.pos
	return t
}

func (m *Maker) Synchronized(lock Expression, body *Block) *Synchronized {
	t := &Synchronized{Lock: lock, Body: body}
	t.pos = m.pos
	return t
}

func (m *Maker) Try(resources []Node, body *Block, catchers []*Catch, finalizer *Block) *Try {
	t := &Try{Resources: list(resources), Body: body, Catchers: list(catchers), Finalizer: finalizer}
	t.pos = m.pos
	return t
}

func (m *Maker) Catch(param *VariableDecl, body *Block) *Catch {
	t := &Catch{Param: param, Body: body}
	t.pos = m.pos
	return t
}

func (m *Maker) Conditional(cond, thenpart, elsepart Expression) *Conditional {
	t := &Conditional{Cond: cond, TruePart: thenpart, FalsePart: elsepart}
	t.pos = m.pos
	return t
}

func (m *Maker) If(cond Expression, thenpart, elsepart Statement) *If {
	t := &If{Cond: cond, ThenPart: thenpart, ElsePart: elsepart}
	t.pos = m.pos
	return t
}

func (m *Maker) Exec(expr Expression) *ExpressionStatement {
	t := &ExpressionStatement{Expr: expr}
	t.pos = m.pos
	return t
}

func (m *Maker) Break(label name.Name) *Break {
	t := &Break{Label: label}
	t.pos = m.pos
	return t
}

func (m *Maker) Continue(label name.Name) *Continue {
	t := &Continue{Label: label}
	t.pos = m.pos
	return t
}

func (m *Maker) Return(expr Expression) *Return {
	t := &Return{Expr: expr}
	t.pos = m.pos
	return t
}

func (m *Maker) Throw(expr Expression) *Throw {
	t := &Throw{Expr: expr}
	t.pos = m.pos
	return t
}

func (m *Maker) Assert(cond, detail Expression) *Assert {
	t := &Assert{Cond: cond, Detail: detail}
	t.pos = m.pos
	return t
}

func (m *Maker) Apply(typeargs []Expression, fn Expression, args []Expression) *MethodInvocation {
	t := &MethodInvocation{TypeArgs: list(typeargs), Meth: fn, Args: list(args)}
	t.pos = m.pos
	return t
}

func (m *Maker) NewClass(encl Expression, typeargs []Expression, clazz Expression, args []Expression,
	def *ClassDecl) *NewClass {
	t := &NewClass{Encl: encl, TypeArgs: list(typeargs), Clazz: clazz, Args: list(args), Def: def}
	t.pos = m.pos
	return t
}

// NewArray builds an array creation. A nil elems means no initializer; a
// non-nil one, even empty, is recorded as an initializer.
func (m *Maker) NewArray(elemtype Expression, dims []Expression, elems []Expression) *NewArray {
	t := &NewArray{
		ElemType:       elemtype,
		Dims:           list(dims),
		Annotations:    []*Annotation{},
		DimAnnotations: [][]*Annotation{},
		Elems:          list(elems),
		Initializer:    elems != nil,
	}
	t.pos = m.pos
	return t
}

// Lambda builds a lambda. Its parameters are explicit when there are none
// or the first one declares a type.
func (m *Maker) Lambda(params []*VariableDecl, body Node) *Lambda {
	t := &Lambda{Params: list(params), Body: body, CanCompleteNormally: true}
	t.ParamKind = Implicit
	if len(t.Params) == 0 || t.Params[0].VarType != nil {
		t.ParamKind = Explicit
	}
	t.polyKind = Poly
	t.targets = []Type{}
	t.pos = m.pos
	return t
}

func (m *Maker) Parens(expr Expression) *Parens {
	t := &Parens{Expr: expr}
	t.pos = m.pos
	return t
}

func (m *Maker) Assign(lhs, rhs Expression) *Assign {
	t := &Assign{Lhs: lhs, Rhs: rhs}
	t.pos = m.pos
	return t
}

// AssignOp panics unless op is a compound assignment tag.
func (m *Maker) AssignOp(op Tag, lhs, rhs Expression) *AssignOp {
	if !op.IsAssignOp() {
		panic(fmt.Sprintf("tree: %s is not a compound assignment operator", op))
	}
	t := &AssignOp{op: op, Lhs: lhs, Rhs: rhs}
	t.pos = m.pos
	return t
}

// Unary panics unless op is a unary operator tag.
func (m *Maker) Unary(op Tag, arg Expression) *Unary {
	if !op.IsUnary() {
		panic(fmt.Sprintf("tree: %s is not a unary operator", op))
	}
	t := &Unary{op: op, Arg: arg}
	t.pos = m.pos
	return t
}

// Binary panics unless op is a binary operator tag.
func (m *Maker) Binary(op Tag, lhs, rhs Expression) *Binary {
	if !op.IsBinary() {
		panic(fmt.Sprintf("tree: %s is not a binary operator", op))
	}
	t := &Binary{op: op, Lhs: lhs, Rhs: rhs}
	t.pos = m.pos
	return t
}

func (m *Maker) TypeCast(clazz Node, expr Expression) *TypeCast {
	t := &TypeCast{Clazz: clazz, Expr: expr}
	t.pos = m.pos
	return t
}

func (m *Maker) TypeTest(expr Expression, clazz Node) *InstanceOf {
	t := &InstanceOf{Expr: expr, Clazz: clazz}
	t.pos = m.pos
	return t
}

func (m *Maker) Indexed(indexed, index Expression) *ArrayAccess {
	t := &ArrayAccess{Indexed: indexed, Index: index}
	t.pos = m.pos
	return t
}

func (m *Maker) Select(selected Expression, selector name.Name) *FieldAccess {
	t := &FieldAccess{Selected: selected, Name: selector}
	t.pos = m.pos
	return t
}

func (m *Maker) Reference(mode ReferenceMode, n name.Name, expr Expression, typeargs []Expression) *MemberReference {
	t := &MemberReference{Mode: mode, Name: n, Expr: expr, TypeArgs: list(typeargs)}
	t.polyKind = Poly
	t.targets = []Type{}
	t.pos = m.pos
	return t
}

func (m *Maker) Ident(n name.Name) *Ident {
	t := &Ident{Name: n}
	t.pos = m.pos
	return t
}

func (m *Maker) Literal(tag TypeTag, value any) *Literal {
	t := &Literal{TypeTag: tag, Value: value}
	t.pos = m.pos
	return t
}

func (m *Maker) TypeIdent(tag TypeTag) *PrimitiveType {
	t := &PrimitiveType{TypeTag: tag}
	t.pos = m.pos
	return t
}

func (m *Maker) TypeArray(elemtype Expression) *ArrayType {
	t := &ArrayType{ElemType: elemtype}
	t.pos = m.pos
	return t
}

func (m *Maker) TypeApply(clazz Expression, arguments []Expression) *TypeApply {
	t := &TypeApply{Clazz: clazz, Arguments: list(arguments)}
	t.pos = m.pos
	return t
}

func (m *Maker) TypeUnion(alternatives []Expression) *TypeUnion {
	t := &TypeUnion{Alternatives: list(alternatives)}
	t.pos = m.pos
	return t
}

func (m *Maker) TypeIntersection(bounds []Expression) *TypeIntersection {
	t := &TypeIntersection{Bounds: list(bounds)}
	t.pos = m.pos
	return t
}

func (m *Maker) TypeParameter(n name.Name, bounds []Expression, annos []*Annotation) *TypeParameter {
	t := &TypeParameter{Name: n, Bounds: list(bounds), Annotations: list(annos)}
	t.pos = m.pos
	return t
}

func (m *Maker) Wildcard(kind *TypeBoundKind, inner Node) *Wildcard {
	t := &Wildcard{Kind: kind, Inner: inner}
	t.pos = m.pos
	return t
}

func (m *Maker) TypeBoundKind(kind BoundKind) *TypeBoundKind {
	t := &TypeBoundKind{Kind: kind}
	t.pos = m.pos
	return t
}

func (m *Maker) Annotation(annotationType Node, args []Expression) *Annotation {
	t := &Annotation{tag: AnnotationTag, AnnotationType: annotationType, Args: list(args)}
	t.pos = m.pos
	return t
}

func (m *Maker) TypeAnnotation(annotationType Node, args []Expression) *Annotation {
	t := &Annotation{tag: TypeAnnotation, AnnotationType: annotationType, Args: list(args)}
	t.pos = m.pos
	return t
}

func (m *Maker) Modifiers(flags Flags, annotations []*Annotation) *Modifiers {
	t := &Modifiers{Flags: flags, Annotations: list(annotations)}
	t.pos = m.pos
	return t
}

func (m *Maker) AnnotatedType(annotations []*Annotation, underlying Expression) *AnnotatedType {
	t := &AnnotatedType{Annotations: list(annotations), UnderlyingType: underlying}
	t.pos = m.pos
	return t
}

// Erroneous wraps the subtrees salvaged from a failed construction.
func (m *Maker) Erroneous(errs ...Node) *Erroneous {
	t := &Erroneous{Errs: list(errs)}
	t.pos = m.pos
	return t
}

func (m *Maker) LetExpr(defs []*VariableDecl, expr Node) *LetExpr {
	t := &LetExpr{Defs: list(defs), Expr: expr}
	t.pos = m.pos
	return t
}

// QualIdent builds a.b.c from its parts. It panics on an empty list.
func (m *Maker) QualIdent(parts ...name.Name) Expression {
	if len(parts) == 0 {
		panic("tree: QualIdent needs at least one name")
	}
	var e Expression = m.Ident(parts[0])
	for _, p := range parts[1:] {
		e = m.Select(e, p)
	}
	return e
}
