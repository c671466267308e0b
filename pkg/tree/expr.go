package tree

import "github.com/leapstack-labs/leapjc/pkg/name"

// Conditional is Cond ? TruePart : FalsePart.
type Conditional struct {
	polyBase
	Cond      Expression
	TruePart  Expression
	FalsePart Expression
}

func (*Conditional) Tag() Tag { return CondExpr }

// MethodInvocation is [TypeArgs] Meth(Args).
type MethodInvocation struct {
	polyBase
	TypeArgs       []Expression
	Meth           Expression
	Args           []Expression
	VarargsElement Type
}

func (*MethodInvocation) Tag() Tag { return ApplyTag }

// NewClass is [Encl.] new [TypeArgs] Clazz(Args) [Def].
type NewClass struct {
	polyBase
	Encl            Expression
	TypeArgs        []Expression
	Clazz           Expression
	Args            []Expression
	Def             *ClassDecl // anonymous class body
	ConstructorType Type
	VarargsElement  Type
}

func (*NewClass) Tag() Tag { return NewClassTag }

// NewArray is new ElemType[Dims] or an array initializer.
type NewArray struct {
	exprBase
	ElemType       Expression // nil for a bare initializer
	Dims           []Expression
	Annotations    []*Annotation
	DimAnnotations [][]*Annotation
	Elems          []Expression
	// Initializer reports whether Elems came from a {...} initializer, which
	// may be empty.
	Initializer bool
}

func (*NewArray) Tag() Tag { return NewArrayTag }

// Lambda is (Params) -> Body.
type Lambda struct {
	functionalBase
	Params              []*VariableDecl
	Body                Node // an Expression or a *Block
	ParamKind           ParameterKind
	CanCompleteNormally bool
}

func (*Lambda) Tag() Tag { return LambdaTag }

// BodyKind reports whether the body is a block or an expression.
func (l *Lambda) BodyKind() BodyKind {
	if l.Body != nil && l.Body.Tag() == BlockTag {
		return BodyStatement
	}
	return BodyExpression
}

// Parens is (Expr).
type Parens struct {
	exprBase
	Expr Expression
}

func (*Parens) Tag() Tag { return ParensTag }

// Assign is Lhs = Rhs.
type Assign struct {
	exprBase
	Lhs Expression
	Rhs Expression
}

func (*Assign) Tag() Tag { return AssignTag }

// AssignOp is a compound assignment such as Lhs += Rhs. Its tag is the
// operator.
type AssignOp struct {
	exprBase
	op  Tag
	Lhs Expression
	Rhs Expression
}

func (a *AssignOp) Tag() Tag { return a.op }

// Unary is a prefix or postfix operator applied to Arg. Its tag is the
// operator.
type Unary struct {
	exprBase
	op  Tag
	Arg Expression
}

func (u *Unary) Tag() Tag { return u.op }

// Binary is Lhs op Rhs. Its tag is the operator.
type Binary struct {
	exprBase
	op  Tag
	Lhs Expression
	Rhs Expression
}

func (b *Binary) Tag() Tag { return b.op }

// TypeCast is (Clazz) Expr.
type TypeCast struct {
	exprBase
	Clazz Node
	Expr  Expression
}

func (*TypeCast) Tag() Tag { return TypeCastTag }

// InstanceOf is Expr instanceof Clazz.
type InstanceOf struct {
	exprBase
	Expr  Expression
	Clazz Node
}

func (*InstanceOf) Tag() Tag { return TypeTest }

// ArrayAccess is Indexed[Index].
type ArrayAccess struct {
	exprBase
	Indexed Expression
	Index   Expression
}

func (*ArrayAccess) Tag() Tag { return Indexed }

// FieldAccess is Selected.Name.
type FieldAccess struct {
	exprBase
	Selected Expression
	Name     name.Name
}

func (*FieldAccess) Tag() Tag { return Select }

// MemberReference is Expr::Name or Expr::new.
type MemberReference struct {
	functionalBase
	Mode         ReferenceMode
	Kind         ReferenceKind // set by attribution
	Name         name.Name
	Expr         Expression
	TypeArgs     []Expression
	RefPolyKind  PolyKind
	OverloadKind OverloadKind
}

func (*MemberReference) Tag() Tag { return Reference }

// HasKind reports whether the resolved reference kind is k.
func (m *MemberReference) HasKind(k ReferenceKind) bool { return m.Kind == k }

// Ident is a simple name.
type Ident struct {
	exprBase
	Name name.Name
}

func (*Ident) Tag() Tag { return IdentTag }

// Literal is a constant. Value holds the literal text, a bool, or nil for
// null.
type Literal struct {
	exprBase
	TypeTag TypeTag
	Value   any
}

func (*Literal) Tag() Tag { return LiteralTag }

// PrimitiveType is a primitive type name such as int or void.
type PrimitiveType struct {
	exprBase
	TypeTag TypeTag
}

func (*PrimitiveType) Tag() Tag { return TypeIdent }

// ArrayType is ElemType[].
type ArrayType struct {
	exprBase
	ElemType Expression
}

func (*ArrayType) Tag() Tag { return TypeArray }

// TypeApply is a parameterized type Clazz<Arguments>.
type TypeApply struct {
	exprBase
	Clazz     Expression
	Arguments []Expression
}

func (*TypeApply) Tag() Tag { return TypeApplyTag }

// TypeUnion is the A | B type of a multi-catch parameter.
type TypeUnion struct {
	exprBase
	Alternatives []Expression
}

func (*TypeUnion) Tag() Tag { return TypeUnionTag }

// TypeIntersection is the A & B type of a cast or bound.
type TypeIntersection struct {
	exprBase
	Bounds []Expression
}

func (*TypeIntersection) Tag() Tag { return TypeIntersectionTag }

// Wildcard is ?, ? extends Inner or ? super Inner.
type Wildcard struct {
	exprBase
	Kind  *TypeBoundKind
	Inner Node
}

func (*Wildcard) Tag() Tag { return WildcardTag }

// Annotation is @AnnotationType(Args), either on a declaration or on a
// type use.
type Annotation struct {
	exprBase
	tag            Tag
	AnnotationType Node
	Args           []Expression
}

func (a *Annotation) Tag() Tag { return a.tag }

// AnnotatedType is a type use carrying annotations.
type AnnotatedType struct {
	exprBase
	Annotations    []*Annotation
	UnderlyingType Expression
}

func (*AnnotatedType) Tag() Tag { return AnnotatedTypeTag }

// Erroneous holds whatever subtrees were salvaged from a construct that
// could not be built.
type Erroneous struct {
	exprBase
	Errs []Node
}

func (*Erroneous) Tag() Tag { return ErroneousTag }

// LetExpr evaluates Defs then Expr. It only appears in synthesized trees.
type LetExpr struct {
	exprBase
	Defs []*VariableDecl
	Expr Node
}

func (*LetExpr) Tag() Tag { return LetExprTag }
