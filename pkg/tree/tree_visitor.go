package tree

// TreeVisitor is the value-returning visitor. Apply calls exactly one
// method, chosen by the node's variant, threading data through and
// returning its result.
type TreeVisitor[R, D any] interface {
	VisitCompilationUnit(n *CompilationUnit, data D) R
	VisitImport(n *Import, data D) R
	VisitClass(n *ClassDecl, data D) R
	VisitMethod(n *MethodDecl, data D) R
	VisitVariable(n *VariableDecl, data D) R
	VisitEmptyStatement(n *Skip, data D) R
	VisitBlock(n *Block, data D) R
	VisitDoWhileLoop(n *DoWhileLoop, data D) R
	VisitWhileLoop(n *WhileLoop, data D) R
	VisitForLoop(n *ForLoop, data D) R
	VisitEnhancedForLoop(n *EnhancedForLoop, data D) R
	VisitLabeledStatement(n *LabeledStatement, data D) R
	VisitSwitch(n *Switch, data D) R
	VisitCase(n *Case, data D) R
	VisitSynchronized(n *Synchronized, data D) R
	VisitTry(n *Try, data D) R
	VisitCatch(n *Catch, data D) R
	VisitConditionalExpression(n *Conditional, data D) R
	VisitIf(n *If, data D) R
	VisitExpressionStatement(n *ExpressionStatement, data D) R
	VisitBreak(n *Break, data D) R
	VisitContinue(n *Continue, data D) R
	VisitReturn(n *Return, data D) R
	VisitThrow(n *Throw, data D) R
	VisitAssert(n *Assert, data D) R
	VisitMethodInvocation(n *MethodInvocation, data D) R
	VisitNewClass(n *NewClass, data D) R
	VisitNewArray(n *NewArray, data D) R
	VisitLambdaExpression(n *Lambda, data D) R
	VisitParenthesized(n *Parens, data D) R
	VisitAssignment(n *Assign, data D) R
	VisitCompoundAssignment(n *AssignOp, data D) R
	VisitUnary(n *Unary, data D) R
	VisitBinary(n *Binary, data D) R
	VisitTypeCast(n *TypeCast, data D) R
	VisitInstanceOf(n *InstanceOf, data D) R
	VisitArrayAccess(n *ArrayAccess, data D) R
	VisitMemberSelect(n *FieldAccess, data D) R
	VisitMemberReference(n *MemberReference, data D) R
	VisitIdentifier(n *Ident, data D) R
	VisitLiteral(n *Literal, data D) R
	VisitPrimitiveType(n *PrimitiveType, data D) R
	VisitArrayType(n *ArrayType, data D) R
	VisitParameterizedType(n *TypeApply, data D) R
	VisitUnionType(n *TypeUnion, data D) R
	VisitIntersectionType(n *TypeIntersection, data D) R
	VisitTypeParameter(n *TypeParameter, data D) R
	VisitWildcard(n *Wildcard, data D) R
	VisitTypeBoundKind(n *TypeBoundKind, data D) R
	VisitAnnotation(n *Annotation, data D) R
	VisitModifiers(n *Modifiers, data D) R
	VisitAnnotatedType(n *AnnotatedType, data D) R
	VisitErroneous(n *Erroneous, data D) R
	VisitLetExpr(n *LetExpr, data D) R
}

// BaseTreeVisitor answers every variant with Default, or the zero R when
// Default is nil. Embed it to implement only some methods.
type BaseTreeVisitor[R, D any] struct {
	Default func(n Node, data D) R
}

func (v *BaseTreeVisitor[R, D]) defaultAction(n Node, data D) R {
	if v.Default != nil {
		return v.Default(n, data)
	}
	var zero R
	return zero
}

func (v *BaseTreeVisitor[R, D]) VisitCompilationUnit(n *CompilationUnit, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitImport(n *Import, data D) R     { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitClass(n *ClassDecl, data D) R   { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitMethod(n *MethodDecl, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitVariable(n *VariableDecl, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitEmptyStatement(n *Skip, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitBlock(n *Block, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitDoWhileLoop(n *DoWhileLoop, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitWhileLoop(n *WhileLoop, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitForLoop(n *ForLoop, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitEnhancedForLoop(n *EnhancedForLoop, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitLabeledStatement(n *LabeledStatement, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitSwitch(n *Switch, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitCase(n *Case, data D) R     { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitSynchronized(n *Synchronized, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitTry(n *Try, data D) R     { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitCatch(n *Catch, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitConditionalExpression(n *Conditional, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitIf(n *If, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitExpressionStatement(n *ExpressionStatement, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitBreak(n *Break, data D) R       { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitContinue(n *Continue, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitReturn(n *Return, data D) R     { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitThrow(n *Throw, data D) R       { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitAssert(n *Assert, data D) R     { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitMethodInvocation(n *MethodInvocation, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitNewClass(n *NewClass, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitNewArray(n *NewArray, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitLambdaExpression(n *Lambda, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitParenthesized(n *Parens, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitAssignment(n *Assign, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitCompoundAssignment(n *AssignOp, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitUnary(n *Unary, data D) R       { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitBinary(n *Binary, data D) R     { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitTypeCast(n *TypeCast, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitInstanceOf(n *InstanceOf, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitArrayAccess(n *ArrayAccess, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitMemberSelect(n *FieldAccess, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitMemberReference(n *MemberReference, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitIdentifier(n *Ident, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitLiteral(n *Literal, data D) R  { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitPrimitiveType(n *PrimitiveType, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitArrayType(n *ArrayType, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitParameterizedType(n *TypeApply, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitUnionType(n *TypeUnion, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitIntersectionType(n *TypeIntersection, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitTypeParameter(n *TypeParameter, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitWildcard(n *Wildcard, data D) R { return v.defaultAction(n, data) }
func (v *BaseTreeVisitor[R, D]) VisitTypeBoundKind(n *TypeBoundKind, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitAnnotation(n *Annotation, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitModifiers(n *Modifiers, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitAnnotatedType(n *AnnotatedType, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitErroneous(n *Erroneous, data D) R {
	return v.defaultAction(n, data)
}
func (v *BaseTreeVisitor[R, D]) VisitLetExpr(n *LetExpr, data D) R { return v.defaultAction(n, data) }

// Apply dispatches n to the method of v matching its variant and returns
// the result. A nil node yields the zero R.
func Apply[R, D any](n Node, v TreeVisitor[R, D], data D) R {
	switch n := n.(type) {
	case *CompilationUnit:
		return v.VisitCompilationUnit(n, data)
	case *Import:
		return v.VisitImport(n, data)
	case *ClassDecl:
		return v.VisitClass(n, data)
	case *MethodDecl:
		return v.VisitMethod(n, data)
	case *VariableDecl:
		return v.VisitVariable(n, data)
	case *Skip:
		return v.VisitEmptyStatement(n, data)
	case *Block:
		return v.VisitBlock(n, data)
	case *DoWhileLoop:
		return v.VisitDoWhileLoop(n, data)
	case *WhileLoop:
		return v.VisitWhileLoop(n, data)
	case *ForLoop:
		return v.VisitForLoop(n, data)
	case *EnhancedForLoop:
		return v.VisitEnhancedForLoop(n, data)
	case *LabeledStatement:
		return v.VisitLabeledStatement(n, data)
	case *Switch:
		return v.VisitSwitch(n, data)
	case *Case:
		return v.VisitCase(n, data)
	case *Synchronized:
		return v.VisitSynchronized(n, data)
	case *Try:
		return v.VisitTry(n, data)
	case *Catch:
		return v.VisitCatch(n, data)
	case *Conditional:
		return v.VisitConditionalExpression(n, data)
	case *If:
		return v.VisitIf(n, data)
	case *ExpressionStatement:
		return v.VisitExpressionStatement(n, data)
	case *Break:
		return v.VisitBreak(n, data)
	case *Continue:
		return v.VisitContinue(n, data)
	case *Return:
		return v.VisitReturn(n, data)
	case *Throw:
		return v.VisitThrow(n, data)
	case *Assert:
		return v.VisitAssert(n, data)
	case *MethodInvocation:
		return v.VisitMethodInvocation(n, data)
	case *NewClass:
		return v.VisitNewClass(n, data)
	case *NewArray:
		return v.VisitNewArray(n, data)
	case *Lambda:
		return v.VisitLambdaExpression(n, data)
	case *Parens:
		return v.VisitParenthesized(n, data)
	case *Assign:
		return v.VisitAssignment(n, data)
	case *AssignOp:
		return v.VisitCompoundAssignment(n, data)
	case *Unary:
		return v.VisitUnary(n, data)
	case *Binary:
		return v.VisitBinary(n, data)
	case *TypeCast:
		return v.VisitTypeCast(n, data)
	case *InstanceOf:
		return v.VisitInstanceOf(n, data)
	case *ArrayAccess:
		return v.VisitArrayAccess(n, data)
	case *FieldAccess:
		return v.VisitMemberSelect(n, data)
	case *MemberReference:
		return v.VisitMemberReference(n, data)
	case *Ident:
		return v.VisitIdentifier(n, data)
	case *Literal:
		return v.VisitLiteral(n, data)
	case *PrimitiveType:
		return v.VisitPrimitiveType(n, data)
	case *ArrayType:
		return v.VisitArrayType(n, data)
	case *TypeApply:
		return v.VisitParameterizedType(n, data)
	case *TypeUnion:
		return v.VisitUnionType(n, data)
	case *TypeIntersection:
		return v.VisitIntersectionType(n, data)
	case *TypeParameter:
		return v.VisitTypeParameter(n, data)
	case *Wildcard:
		return v.VisitWildcard(n, data)
	case *TypeBoundKind:
		return v.VisitTypeBoundKind(n, data)
	case *Annotation:
		return v.VisitAnnotation(n, data)
	case *Modifiers:
		return v.VisitModifiers(n, data)
	case *AnnotatedType:
		return v.VisitAnnotatedType(n, data)
	case *Erroneous:
		return v.VisitErroneous(n, data)
	case *LetExpr:
		return v.VisitLetExpr(n, data)
	}
	var zero R
	return zero
}
