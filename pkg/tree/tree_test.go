package tree_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapjc/pkg/name"
	"github.com/leapstack-labs/leapjc/pkg/token"
	"github.com/leapstack-labs/leapjc/pkg/tree"
)

// sample is one node of a variant and the tag it must report.
type sample struct {
	node tree.Node
	tag  tree.Tag
}

// samples builds one node of every variant, empty lists everywhere.
func samples(t *testing.T) []sample {
	t.Helper()
	names := name.New()
	x := names.FromString("x")
	m := tree.NewMaker()
	id := m.Ident(x)
	blk := m.Block(0, nil)
	v := m.VarDef(nil, x, nil, nil)
	return []sample{
		{m.TopLevel(nil, nil, nil), tree.TopLevel},
		{m.Import(id, false), tree.ImportTag},
		{m.ClassDef(nil, x, nil, nil, nil, nil), tree.ClassDef},
		{m.MethodDef(nil, x, nil, nil, nil, nil, nil, nil, nil), tree.MethodDef},
		{v, tree.VarDef},
		{m.Skip(), tree.SkipTag},
		{blk, tree.BlockTag},
		{m.DoLoop(blk, id), tree.DoLoop},
		{m.WhileLoop(id, blk), tree.WhileLoopTag},
		{m.ForLoop(nil, nil, nil, blk), tree.ForLoopTag},
		{m.ForeachLoop(v, id, blk), tree.ForeachLoop},
		{m.Labelled(x, blk), tree.Labelled},
		{m.Switch(id, nil), tree.SwitchTag},
		{m.Case(nil, nil), tree.CaseTag},
		{m.Synchronized(id, blk), tree.SynchronizedTag},
		{m.Try(nil, blk, nil, nil), tree.TryTag},
		{m.Catch(v, blk), tree.CatchTag},
		{m.Conditional(id, id, id), tree.CondExpr},
		{m.If(id, blk, nil), tree.IfTag},
		{m.Exec(id), tree.Exec},
		{m.Break(x), tree.BreakTag},
		{m.Continue(x), tree.ContinueTag},
		{m.Return(nil), tree.ReturnTag},
		{m.Throw(id), tree.ThrowTag},
		{m.Assert(id, nil), tree.AssertTag},
		{m.Apply(nil, id, nil), tree.ApplyTag},
		{m.NewClass(nil, nil, id, nil, nil), tree.NewClassTag},
		{m.NewArray(id, nil, nil), tree.NewArrayTag},
		{m.Lambda(nil, id), tree.LambdaTag},
		{m.Parens(id), tree.ParensTag},
		{m.Assign(id, id), tree.AssignTag},
		{m.AssignOp(tree.PlusAsg, id, id), tree.PlusAsg},
		{m.Unary(tree.Neg, id), tree.Neg},
		{m.Binary(tree.Plus, id, id), tree.Plus},
		{m.TypeCast(id, id), tree.TypeCastTag},
		{m.TypeTest(id, id), tree.TypeTest},
		{m.Indexed(id, id), tree.Indexed},
		{m.Select(id, x), tree.Select},
		{m.Reference(tree.Invoke, x, id, nil), tree.Reference},
		{id, tree.IdentTag},
		{m.Literal(tree.TypeTagInt, 1), tree.LiteralTag},
		{m.TypeIdent(tree.TypeTagInt), tree.TypeIdent},
		{m.TypeArray(id), tree.TypeArray},
		{m.TypeApply(id, nil), tree.TypeApplyTag},
		{m.TypeUnion(nil), tree.TypeUnionTag},
		{m.TypeIntersection(nil), tree.TypeIntersectionTag},
		{m.TypeParameter(x, nil, nil), tree.TypeParameterTag},
		{m.Wildcard(m.TypeBoundKind(tree.BoundUnbound), nil), tree.WildcardTag},
		{m.TypeBoundKind(tree.BoundExtends), tree.TypeBoundKindTag},
		{m.Annotation(id, nil), tree.AnnotationTag},
		{m.Modifiers(0, nil), tree.ModifiersTag},
		{m.AnnotatedType(nil, id), tree.AnnotatedTypeTag},
		{m.Erroneous(), tree.ErroneousTag},
		{m.LetExpr(nil, id), tree.LetExprTag},
	}
}

func variantName(n tree.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*tree.")
}

// ---------- Dispatch Tests ----------

func TestSamplesCoverEveryVariant(t *testing.T) {
	seen := make(map[string]bool)
	tags := make(map[tree.Tag]bool)
	for _, sm := range samples(t) {
		seen[variantName(sm.node)] = true
		tags[sm.tag] = true
	}
	assert.Len(t, seen, 54)
	assert.Len(t, tags, 54, "every variant has its own tag")
}

func TestAcceptAndApplyAgree(t *testing.T) {
	for _, sm := range samples(t) {
		n := sm.node
		want := variantName(n)
		t.Run(want, func(t *testing.T) {
			assert.Equal(t, sm.tag, n.Tag())

			r := &recorder{}
			tree.Accept(n, r)
			require.Len(t, r.calls, 1, "exactly one visitor method per Accept")
			assert.Equal(t, want, r.calls[0])
			assert.Equal(t, sm.tag, r.tags[0])

			calls := 0
			got := tree.Apply[string, *int](n, namer{}, &calls)
			assert.Equal(t, 1, calls)
			assert.Equal(t, want, got)
		})
	}
}

func TestAcceptNilIsIgnored(t *testing.T) {
	r := &recorder{}
	tree.Accept(nil, r)
	assert.Empty(t, r.calls)

	calls := 0
	assert.Equal(t, "", tree.Apply[string, *int](nil, namer{}, &calls))
	assert.Zero(t, calls)
}

type identCounter struct {
	tree.BaseVisitor
	idents int
}

func (c *identCounter) VisitIdent(*tree.Ident) { c.idents++ }

func TestBaseVisitorFallsBackToDefault(t *testing.T) {
	var fallback []tree.Tag
	c := &identCounter{}
	c.Default = func(n tree.Node) { fallback = append(fallback, n.Tag()) }

	m := tree.NewMaker()
	x := name.New().FromString("x")
	tree.Accept(m.Ident(x), c)
	tree.Accept(m.Skip(), c)
	tree.Accept(m.Binary(tree.Mul, m.Ident(x), m.Ident(x)), c)

	assert.Equal(t, 1, c.idents)
	assert.Equal(t, []tree.Tag{tree.SkipTag, tree.Mul}, fallback)
}

func TestBaseVisitorWithoutDefaultIsNoop(t *testing.T) {
	c := &identCounter{}
	assert.NotPanics(t, func() { tree.Accept(tree.NewMaker().Skip(), c) })
}

func TestBaseTreeVisitorDefault(t *testing.T) {
	v := &tree.BaseTreeVisitor[tree.Tag, struct{}]{
		Default: func(n tree.Node, _ struct{}) tree.Tag { return n.Tag() },
	}
	m := tree.NewMaker()
	assert.Equal(t, tree.ReturnTag, tree.Apply[tree.Tag](m.Return(nil), v, struct{}{}))

	var zero tree.BaseTreeVisitor[int, struct{}]
	assert.Equal(t, 0, tree.Apply[int](m.Skip(), &zero, struct{}{}))
}

// ---------- Factory Tests ----------

func TestFactoryNormalizesNilLists(t *testing.T) {
	for _, sm := range samples(t) {
		v := reflect.ValueOf(sm.node).Elem()
		typ := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := typ.Field(i)
			if !f.IsExported() || f.Type.Kind() != reflect.Slice {
				continue
			}
			assert.False(t, v.Field(i).IsNil(), "%s.%s", typ.Name(), f.Name)
		}
	}

	m := tree.NewMaker()
	assert.NotNil(t, m.Block(0, nil).Stats)
	assert.NotNil(t, m.Erroneous().Errs)
}

func TestFactoryPositions(t *testing.T) {
	m := tree.NewMaker()
	x := name.New().FromString("x")

	a := m.At(7).Ident(x)
	b := m.Ident(x)
	c := m.At(12).Skip()

	assert.Equal(t, 7, a.Pos())
	assert.Equal(t, 7, b.Pos())
	assert.Equal(t, 12, c.Pos())
	assert.Equal(t, 12, m.Pos())
}

func TestFactoryOperatorTags(t *testing.T) {
	m := tree.NewMaker()
	id := m.Ident(name.New().FromString("x"))

	assert.Equal(t, tree.UsrAsg, m.AssignOp(tree.UsrAsg, id, id).Tag())
	assert.Equal(t, tree.PostInc, m.Unary(tree.PostInc, id).Tag())
	assert.Equal(t, tree.Ge, m.Binary(tree.Ge, id, id).Tag())
	assert.Equal(t, tree.AnnotationTag, m.Annotation(id, nil).Tag())
	assert.Equal(t, tree.TypeAnnotation, m.TypeAnnotation(id, nil).Tag())

	assert.Panics(t, func() { m.Unary(tree.Plus, id) })
	assert.Panics(t, func() { m.Binary(tree.Neg, id, id) })
	assert.Panics(t, func() { m.AssignOp(tree.Plus, id, id) })
	assert.Panics(t, func() { m.Binary(tree.IdentTag, id, id) })
}

func TestNewArrayInitializer(t *testing.T) {
	m := tree.NewMaker()
	id := m.Ident(name.New().FromString("x"))

	sized := m.NewArray(id, []tree.Expression{id}, nil)
	assert.False(t, sized.Initializer)
	assert.NotNil(t, sized.Elems)
	assert.Empty(t, sized.Elems)

	empty := m.NewArray(id, nil, []tree.Expression{})
	assert.True(t, empty.Initializer)
}

func TestLambdaParameterKind(t *testing.T) {
	m := tree.NewMaker()
	names := name.New()
	x := names.FromString("x")
	intType := m.TypeIdent(tree.TypeTagInt)

	tests := []struct {
		name   string
		params []*tree.VariableDecl
		want   tree.ParameterKind
	}{
		{"no params", nil, tree.Explicit},
		{"typed", []*tree.VariableDecl{m.VarDef(nil, x, intType, nil)}, tree.Explicit},
		{"untyped", []*tree.VariableDecl{m.VarDef(nil, x, nil, nil)}, tree.Implicit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := m.Lambda(tt.params, m.Ident(x))
			assert.Equal(t, tt.want, l.ParamKind)
			assert.Equal(t, tree.Poly, l.PolyKind())
			assert.Equal(t, tree.BodyExpression, l.BodyKind())
		})
	}

	assert.Equal(t, tree.BodyStatement, m.Lambda(nil, m.Block(0, nil)).BodyKind())
}

func TestSetPolyKindOnce(t *testing.T) {
	m := tree.NewMaker()
	id := m.Ident(name.New().FromString("f"))
	call := m.Apply(nil, id, nil)

	call.SetPolyKind(tree.Standalone)
	assert.Equal(t, tree.Standalone, call.PolyKind())
	assert.Panics(t, func() { call.SetPolyKind(tree.Poly) })
}

func TestFunctionalTargets(t *testing.T) {
	m := tree.NewMaker()
	ref := m.Reference(tree.New, name.New().FromString("init"), m.Ident(name.New().FromString("A")), nil)

	var fe tree.FunctionalExpression = ref
	assert.Empty(t, fe.Targets())
	fe.SetTargets([]tree.Type{"Supplier"})
	assert.Equal(t, []tree.Type{"Supplier"}, ref.Targets())
}

func TestQualIdent(t *testing.T) {
	names := name.New()
	m := tree.NewMaker()

	e := m.QualIdent(names.FromString("java"), names.FromString("util"), names.FromString("List"))
	sel, ok := e.(*tree.FieldAccess)
	require.True(t, ok)
	assert.Equal(t, "List", sel.Name.String())
	inner, ok := sel.Selected.(*tree.FieldAccess)
	require.True(t, ok)
	assert.Equal(t, "util", inner.Name.String())
	assert.Panics(t, func() { m.QualIdent() })
}

// ---------- Tag Tests ----------

func TestOperatorRanges(t *testing.T) {
	assert.True(t, tree.Neg.IsUnary())
	assert.True(t, tree.NullChk.IsUnary())
	assert.False(t, tree.Or.IsUnary())
	assert.True(t, tree.Mod.IsBinary())
	assert.True(t, tree.ModAsg.IsAssignOp())
	assert.True(t, tree.PostDec.IsPostUnaryOp())
	assert.False(t, tree.PreDec.IsPostUnaryOp())
	assert.True(t, tree.PreInc.IsIncOrDecUnaryOp())
	assert.Equal(t, 0, tree.Pos.OperatorIndex())
	assert.Equal(t, tree.NumberOfOperators()-1, tree.Mod.OperatorIndex())
}

func TestNoAssignOp(t *testing.T) {
	assert.Equal(t, tree.Plus, tree.PlusAsg.NoAssignOp())
	assert.Equal(t, tree.Usr, tree.UsrAsg.NoAssignOp())
	assert.Panics(t, func() { tree.Plus.NoAssignOp() })
}

func TestOperatorTokens(t *testing.T) {
	assert.Equal(t, tree.Plus, tree.BinaryTag(token.PLUS))
	assert.Equal(t, tree.Pos, tree.UnaryTag(token.PLUS))
	assert.Equal(t, tree.PostInc, tree.PostfixTag(token.PLUSPLUS))
	assert.Equal(t, tree.UsrAsg, tree.AssignOpTag(token.GTGTGTEQ))
	assert.Equal(t, tree.NoTag, tree.BinaryTag(token.SEMI))

	for _, op := range []tree.Tag{tree.Plus, tree.Pos, tree.PostDec, tree.SlAsg} {
		k, ok := tree.OperatorKind(op)
		require.True(t, ok, op.String())
		assert.True(t, k.IsOperator())
	}
	_, ok := tree.OperatorKind(tree.NullChk)
	assert.False(t, ok)
}

func TestModifierFlags(t *testing.T) {
	var f tree.Flags
	for _, k := range []token.Kind{token.PUBLIC, token.STATIC, token.FINAL} {
		f |= tree.ModifierFlag(k)
	}
	assert.True(t, f.Has(tree.FlagStatic))
	assert.False(t, f.Has(tree.FlagPrivate))
	assert.Equal(t, tree.Flags(0), tree.ModifierFlag(token.CLASS))
}

// ---------- Walk Tests ----------

func TestWalkSourceOrder(t *testing.T) {
	names := name.New()
	m := tree.NewMaker()
	a, b, c := names.FromString("a"), names.FromString("b"), names.FromString("c")

	// a = b + c;
	stmt := m.Exec(m.Assign(m.Ident(a), m.Binary(tree.Plus, m.Ident(b), m.Ident(c))))

	var seen []string
	tree.Walk(stmt, func(n tree.Node) bool {
		if id, ok := n.(*tree.Ident); ok {
			seen = append(seen, id.Name.String())
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestWalkPrunes(t *testing.T) {
	names := name.New()
	m := tree.NewMaker()
	x := names.FromString("x")

	body := m.Block(0, []tree.Statement{m.Exec(m.Ident(x))})
	loop := m.WhileLoop(m.Ident(x), body)

	count := 0
	tree.Walk(loop, func(n tree.Node) bool {
		count++
		return n.Tag() != tree.BlockTag
	})
	// loop, cond ident, block
	assert.Equal(t, 3, count)
}

func TestChildrenSkipsAbsentParts(t *testing.T) {
	names := name.New()
	m := tree.NewMaker()
	x := names.FromString("x")

	v := m.VarDef(nil, x, nil, nil)
	assert.Empty(t, tree.Children(v))

	iff := m.If(m.Ident(x), m.Skip(), nil)
	assert.Len(t, tree.Children(iff), 2)

	meth := m.MethodDef(m.Modifiers(tree.FlagPublic, nil), x, nil, nil, nil, nil, nil, m.Block(0, nil), nil)
	kids := tree.Children(meth)
	require.Len(t, kids, 2)
	assert.Equal(t, tree.ModifiersTag, kids[0].Tag())
	assert.Equal(t, tree.BlockTag, kids[1].Tag())
}

func TestChildrenSkipsTypedNil(t *testing.T) {
	names := name.New()
	m := tree.NewMaker()
	x := names.FromString("x")

	var noExpr *tree.Ident
	var noStmt *tree.Block

	ret := m.Return(noExpr)
	assert.Empty(t, tree.Children(ret))

	iff := m.If(m.Ident(x), m.Skip(), noStmt)
	assert.Len(t, tree.Children(iff), 2)

	var visited []tree.Tag
	tree.Walk(m.Exec(m.Binary(tree.Plus, m.Ident(x), noExpr)), func(n tree.Node) bool {
		visited = append(visited, n.Tag())
		return true
	})
	assert.Equal(t, []tree.Tag{tree.Exec, tree.Plus, tree.IdentTag}, visited)
}

func TestSkipParensAndName(t *testing.T) {
	names := name.New()
	m := tree.NewMaker()
	x := names.FromString("x")

	inner := m.Ident(x)
	e := m.Parens(m.Parens(inner))
	assert.Same(t, inner, tree.SkipParens(e))

	n, ok := tree.Name(m.Select(inner, names.FromString("y")))
	require.True(t, ok)
	assert.Equal(t, "y", n.String())
	_, ok = tree.Name(m.Skip())
	assert.False(t, ok)
}

func TestCompilationUnitAccessors(t *testing.T) {
	names := name.New()
	m := tree.NewMaker()
	x := names.FromString("x")

	imp := m.Import(m.QualIdent(names.FromString("a"), names.FromString("B")), false)
	cls := m.ClassDef(nil, x, nil, nil, nil, nil)
	cu := m.TopLevel(nil, nil, []tree.Node{imp, cls})

	assert.Equal(t, []*tree.Import{imp}, cu.Imports())
	assert.Equal(t, []*tree.ClassDecl{cls}, cu.TypeDecls())
}
