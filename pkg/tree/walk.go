package tree

import "reflect"

// Walk traverses the tree rooted at node in depth-first source order,
// calling fn on each node. If fn returns false the children of that node
// are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, c := range Children(node) {
		Walk(c, fn)
	}
}

// Children returns the direct subtrees of n in source order. Absent
// optional parts are omitted.
func Children(n Node) []Node {
	var out []Node
	switch n := n.(type) {
	case *CompilationUnit:
		out = add(out, n.PackageAnnotations...)
		out = add(out, n.PID)
		out = add(out, n.Defs...)
	case *Import:
		out = add(out, n.Qualid)
	case *ClassDecl:
		out = add(out, n.Mods)
		out = add(out, n.TypeParams...)
		out = add(out, n.Extending)
		out = add(out, n.Implementing...)
		out = add(out, n.Defs...)
	case *MethodDecl:
		out = add(out, n.Mods)
		out = add(out, n.TypeParams...)
		out = add(out, n.ResType)
		out = add(out, n.RecvParam)
		out = add(out, n.Params...)
		out = add(out, n.Thrown...)
		out = add(out, n.Body)
		out = add(out, n.DefaultValue)
	case *VariableDecl:
		out = add(out, n.Mods)
		out = add(out, n.NameExpr)
		out = add(out, n.VarType)
		out = add(out, n.Init)
	case *Skip:
	case *Block:
		out = add(out, n.Stats...)
	case *DoWhileLoop:
		out = add(out, n.Body)
		out = add(out, n.Cond)
	case *WhileLoop:
		out = add(out, n.Cond)
		out = add(out, n.Body)
	case *ForLoop:
		out = add(out, n.Init...)
		out = add(out, n.Cond)
		out = add(out, n.Step...)
		out = add(out, n.Body)
	case *EnhancedForLoop:
		out = add(out, n.Var)
		out = add(out, n.Expr)
		out = add(out, n.Body)
	case *LabeledStatement:
		out = add(out, n.Body)
	case *Switch:
		out = add(out, n.Selector)
		out = add(out, n.Cases...)
	case *Case:
		out = add(out, n.Pat)
		out = add(out, n.Stats...)
	case *Synchronized:
		out = add(out, n.Lock)
		out = add(out, n.Body)
	case *Try:
		out = add(out, n.Resources...)
		out = add(out, n.Body)
		out = add(out, n.Catchers...)
		out = add(out, n.Finalizer)
	case *Catch:
		out = add(out, n.Param)
		out = add(out, n.Body)
	case *Conditional:
		out = add(out, n.Cond, n.TruePart, n.FalsePart)
	case *If:
		out = add(out, n.Cond)
		out = add(out, n.ThenPart, n.ElsePart)
	case *ExpressionStatement:
		out = add(out, n.Expr)
	case *Break, *Continue:
	case *Return:
		out = add(out, n.Expr)
	case *Throw:
		out = add(out, n.Expr)
	case *Assert:
		out = add(out, n.Cond, n.Detail)
	case *MethodInvocation:
		out = add(out, n.TypeArgs...)
		out = add(out, n.Meth)
		out = add(out, n.Args...)
	case *NewClass:
		out = add(out, n.Encl)
		out = add(out, n.TypeArgs...)
		out = add(out, n.Clazz)
		out = add(out, n.Args...)
		out = add(out, n.Def)
	case *NewArray:
		out = add(out, n.Annotations...)
		out = add(out, n.ElemType)
		for _, annos := range n.DimAnnotations {
			out = add(out, annos...)
		}
		out = add(out, n.Dims...)
		out = add(out, n.Elems...)
	case *Lambda:
		out = add(out, n.Params...)
		out = add(out, n.Body)
	case *Parens:
		out = add(out, n.Expr)
	case *Assign:
		out = add(out, n.Lhs, n.Rhs)
	case *AssignOp:
		out = add(out, n.Lhs, n.Rhs)
	case *Unary:
		out = add(out, n.Arg)
	case *Binary:
		out = add(out, n.Lhs, n.Rhs)
	case *TypeCast:
		out = add(out, n.Clazz)
		out = add(out, n.Expr)
	case *InstanceOf:
		out = add(out, n.Expr)
		out = add(out, n.Clazz)
	case *ArrayAccess:
		out = add(out, n.Indexed, n.Index)
	case *FieldAccess:
		out = add(out, n.Selected)
	case *MemberReference:
		out = add(out, n.Expr)
		out = add(out, n.TypeArgs...)
	case *Ident, *Literal, *PrimitiveType, *TypeBoundKind:
	case *ArrayType:
		out = add(out, n.ElemType)
	case *TypeApply:
		out = add(out, n.Clazz)
		out = add(out, n.Arguments...)
	case *TypeUnion:
		out = add(out, n.Alternatives...)
	case *TypeIntersection:
		out = add(out, n.Bounds...)
	case *TypeParameter:
		out = add(out, n.Annotations...)
		out = add(out, n.Bounds...)
	case *Wildcard:
		out = add(out, n.Kind)
		out = add(out, n.Inner)
	case *Annotation:
		out = add(out, n.AnnotationType)
		out = add(out, n.Args...)
	case *Modifiers:
		out = add(out, n.Annotations...)
	case *AnnotatedType:
		out = add(out, n.Annotations...)
		out = add(out, n.UnderlyingType)
	case *Erroneous:
		out = add(out, n.Errs...)
	case *LetExpr:
		out = add(out, n.Defs...)
		out = add(out, n.Expr)
	}
	return out
}

// add appends the non-nil elements of xs. A nil pointer counts as absent
// whether it sits in a pointer field or inside an interface field.
func add[T Node](out []Node, xs ...T) []Node {
	for _, x := range xs {
		if absent(x) {
			continue
		}
		out = append(out, x)
	}
	return out
}

func absent(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
