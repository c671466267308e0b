package tree

// Visitor is the side-effecting visitor. Accept calls exactly one method,
// chosen by the node's variant.
type Visitor interface {
	VisitTopLevel(n *CompilationUnit)
	VisitImport(n *Import)
	VisitClassDef(n *ClassDecl)
	VisitMethodDef(n *MethodDecl)
	VisitVarDef(n *VariableDecl)
	VisitSkip(n *Skip)
	VisitBlock(n *Block)
	VisitDoLoop(n *DoWhileLoop)
	VisitWhileLoop(n *WhileLoop)
	VisitForLoop(n *ForLoop)
	VisitForeachLoop(n *EnhancedForLoop)
	VisitLabelled(n *LabeledStatement)
	VisitSwitch(n *Switch)
	VisitCase(n *Case)
	VisitSynchronized(n *Synchronized)
	VisitTry(n *Try)
	VisitCatch(n *Catch)
	VisitConditional(n *Conditional)
	VisitIf(n *If)
	VisitExec(n *ExpressionStatement)
	VisitBreak(n *Break)
	VisitContinue(n *Continue)
	VisitReturn(n *Return)
	VisitThrow(n *Throw)
	VisitAssert(n *Assert)
	VisitApply(n *MethodInvocation)
	VisitNewClass(n *NewClass)
	VisitNewArray(n *NewArray)
	VisitLambda(n *Lambda)
	VisitParens(n *Parens)
	VisitAssign(n *Assign)
	VisitAssignOp(n *AssignOp)
	VisitUnary(n *Unary)
	VisitBinary(n *Binary)
	VisitTypeCast(n *TypeCast)
	VisitTypeTest(n *InstanceOf)
	VisitIndexed(n *ArrayAccess)
	VisitSelect(n *FieldAccess)
	VisitReference(n *MemberReference)
	VisitIdent(n *Ident)
	VisitLiteral(n *Literal)
	VisitTypeIdent(n *PrimitiveType)
	VisitTypeArray(n *ArrayType)
	VisitTypeApply(n *TypeApply)
	VisitTypeUnion(n *TypeUnion)
	VisitTypeIntersection(n *TypeIntersection)
	VisitTypeParameter(n *TypeParameter)
	VisitWildcard(n *Wildcard)
	VisitTypeBoundKind(n *TypeBoundKind)
	VisitAnnotation(n *Annotation)
	VisitModifiers(n *Modifiers)
	VisitAnnotatedType(n *AnnotatedType)
	VisitErroneous(n *Erroneous)
	VisitLetExpr(n *LetExpr)
	// VisitTree is the fallback for variants a visitor does not handle.
	VisitTree(n Node)
}

// BaseVisitor routes every variant to VisitTree, which calls Default when
// set. Embed it and override the methods of interest for a partial
// visitor.
type BaseVisitor struct {
	Default func(n Node)
}

// VisitTree calls v.Default if it is set.
func (v *BaseVisitor) VisitTree(n Node) {
	if v.Default != nil {
		v.Default(n)
	}
}

func (v *BaseVisitor) VisitTopLevel(n *CompilationUnit)          { v.VisitTree(n) }
func (v *BaseVisitor) VisitImport(n *Import)                     { v.VisitTree(n) }
func (v *BaseVisitor) VisitClassDef(n *ClassDecl)                { v.VisitTree(n) }
func (v *BaseVisitor) VisitMethodDef(n *MethodDecl)              { v.VisitTree(n) }
func (v *BaseVisitor) VisitVarDef(n *VariableDecl)               { v.VisitTree(n) }
func (v *BaseVisitor) VisitSkip(n *Skip)                         { v.VisitTree(n) }
func (v *BaseVisitor) VisitBlock(n *Block)                       { v.VisitTree(n) }
func (v *BaseVisitor) VisitDoLoop(n *DoWhileLoop)                { v.VisitTree(n) }
func (v *BaseVisitor) VisitWhileLoop(n *WhileLoop)               { v.VisitTree(n) }
func (v *BaseVisitor) VisitForLoop(n *ForLoop)                   { v.VisitTree(n) }
func (v *BaseVisitor) VisitForeachLoop(n *EnhancedForLoop)       { v.VisitTree(n) }
func (v *BaseVisitor) VisitLabelled(n *LabeledStatement)         { v.VisitTree(n) }
func (v *BaseVisitor) VisitSwitch(n *Switch)                     { v.VisitTree(n) }
func (v *BaseVisitor) VisitCase(n *Case)                         { v.VisitTree(n) }
func (v *BaseVisitor) VisitSynchronized(n *Synchronized)         { v.VisitTree(n) }
func (v *BaseVisitor) VisitTry(n *Try)                           { v.VisitTree(n) }
func (v *BaseVisitor) VisitCatch(n *Catch)                       { v.VisitTree(n) }
func (v *BaseVisitor) VisitConditional(n *Conditional)           { v.VisitTree(n) }
func (v *BaseVisitor) VisitIf(n *If)                             { v.VisitTree(n) }
func (v *BaseVisitor) VisitExec(n *ExpressionStatement)          { v.VisitTree(n) }
func (v *BaseVisitor) VisitBreak(n *Break)                       { v.VisitTree(n) }
func (v *BaseVisitor) VisitContinue(n *Continue)                 { v.VisitTree(n) }
func (v *BaseVisitor) VisitReturn(n *Return)                     { v.VisitTree(n) }
func (v *BaseVisitor) VisitThrow(n *Throw)                       { v.VisitTree(n) }
func (v *BaseVisitor) VisitAssert(n *Assert)                     { v.VisitTree(n) }
func (v *BaseVisitor) VisitApply(n *MethodInvocation)            { v.VisitTree(n) }
func (v *BaseVisitor) VisitNewClass(n *NewClass)                 { v.VisitTree(n) }
func (v *BaseVisitor) VisitNewArray(n *NewArray)                 { v.VisitTree(n) }
func (v *BaseVisitor) VisitLambda(n *Lambda)                     { v.VisitTree(n) }
func (v *BaseVisitor) VisitParens(n *Parens)                     { v.VisitTree(n) }
func (v *BaseVisitor) VisitAssign(n *Assign)                     { v.VisitTree(n) }
func (v *BaseVisitor) VisitAssignOp(n *AssignOp)                 { v.VisitTree(n) }
func (v *BaseVisitor) VisitUnary(n *Unary)                       { v.VisitTree(n) }
func (v *BaseVisitor) VisitBinary(n *Binary)                     { v.VisitTree(n) }
func (v *BaseVisitor) VisitTypeCast(n *TypeCast)                 { v.VisitTree(n) }
func (v *BaseVisitor) VisitTypeTest(n *InstanceOf)               { v.VisitTree(n) }
func (v *BaseVisitor) VisitIndexed(n *ArrayAccess)               { v.VisitTree(n) }
func (v *BaseVisitor) VisitSelect(n *FieldAccess)                { v.VisitTree(n) }
func (v *BaseVisitor) VisitReference(n *MemberReference)         { v.VisitTree(n) }
func (v *BaseVisitor) VisitIdent(n *Ident)                       { v.VisitTree(n) }
func (v *BaseVisitor) VisitLiteral(n *Literal)                   { v.VisitTree(n) }
func (v *BaseVisitor) VisitTypeIdent(n *PrimitiveType)           { v.VisitTree(n) }
func (v *BaseVisitor) VisitTypeArray(n *ArrayType)               { v.VisitTree(n) }
func (v *BaseVisitor) VisitTypeApply(n *TypeApply)               { v.VisitTree(n) }
func (v *BaseVisitor) VisitTypeUnion(n *TypeUnion)               { v.VisitTree(n) }
func (v *BaseVisitor) VisitTypeIntersection(n *TypeIntersection) { v.VisitTree(n) }
func (v *BaseVisitor) VisitTypeParameter(n *TypeParameter)       { v.VisitTree(n) }
func (v *BaseVisitor) VisitWildcard(n *Wildcard)                 { v.VisitTree(n) }
func (v *BaseVisitor) VisitTypeBoundKind(n *TypeBoundKind)       { v.VisitTree(n) }
func (v *BaseVisitor) VisitAnnotation(n *Annotation)             { v.VisitTree(n) }
func (v *BaseVisitor) VisitModifiers(n *Modifiers)               { v.VisitTree(n) }
func (v *BaseVisitor) VisitAnnotatedType(n *AnnotatedType)       { v.VisitTree(n) }
func (v *BaseVisitor) VisitErroneous(n *Erroneous)               { v.VisitTree(n) }
func (v *BaseVisitor) VisitLetExpr(n *LetExpr)                   { v.VisitTree(n) }

// Accept dispatches n to the method of v matching its variant. A nil node
// is ignored.
func Accept(n Node, v Visitor) {
	switch n := n.(type) {
	case *CompilationUnit:
		v.VisitTopLevel(n)
	case *Import:
		v.VisitImport(n)
	case *ClassDecl:
		v.VisitClassDef(n)
	case *MethodDecl:
		v.VisitMethodDef(n)
	case *VariableDecl:
		v.VisitVarDef(n)
	case *Skip:
		v.VisitSkip(n)
	case *Block:
		v.VisitBlock(n)
	case *DoWhileLoop:
		v.VisitDoLoop(n)
	case *WhileLoop:
		v.VisitWhileLoop(n)
	case *ForLoop:
		v.VisitForLoop(n)
	case *EnhancedForLoop:
		v.VisitForeachLoop(n)
	case *LabeledStatement:
		v.VisitLabelled(n)
	case *Switch:
		v.VisitSwitch(n)
	case *Case:
		v.VisitCase(n)
	case *Synchronized:
		v.VisitSynchronized(n)
	case *Try:
		v.VisitTry(n)
	case *Catch:
		v.VisitCatch(n)
	case *Conditional:
		v.VisitConditional(n)
	case *If:
		v.VisitIf(n)
	case *ExpressionStatement:
		v.VisitExec(n)
	case *Break:
		v.VisitBreak(n)
	case *Continue:
		v.VisitContinue(n)
	case *Return:
		v.VisitReturn(n)
	case *Throw:
		v.VisitThrow(n)
	case *Assert:
		v.VisitAssert(n)
	case *MethodInvocation:
		v.VisitApply(n)
	case *NewClass:
		v.VisitNewClass(n)
	case *NewArray:
		v.VisitNewArray(n)
	case *Lambda:
		v.VisitLambda(n)
	case *Parens:
		v.VisitParens(n)
	case *Assign:
		v.VisitAssign(n)
	case *AssignOp:
		v.VisitAssignOp(n)
	case *Unary:
		v.VisitUnary(n)
	case *Binary:
		v.VisitBinary(n)
	case *TypeCast:
		v.VisitTypeCast(n)
	case *InstanceOf:
		v.VisitTypeTest(n)
	case *ArrayAccess:
		v.VisitIndexed(n)
	case *FieldAccess:
		v.VisitSelect(n)
	case *MemberReference:
		v.VisitReference(n)
	case *Ident:
		v.VisitIdent(n)
	case *Literal:
		v.VisitLiteral(n)
	case *PrimitiveType:
		v.VisitTypeIdent(n)
	case *ArrayType:
		v.VisitTypeArray(n)
	case *TypeApply:
		v.VisitTypeApply(n)
	case *TypeUnion:
		v.VisitTypeUnion(n)
	case *TypeIntersection:
		v.VisitTypeIntersection(n)
	case *TypeParameter:
		v.VisitTypeParameter(n)
	case *Wildcard:
		v.VisitWildcard(n)
	case *TypeBoundKind:
		v.VisitTypeBoundKind(n)
	case *Annotation:
		v.VisitAnnotation(n)
	case *Modifiers:
		v.VisitModifiers(n)
	case *AnnotatedType:
		v.VisitAnnotatedType(n)
	case *Erroneous:
		v.VisitErroneous(n)
	case *LetExpr:
		v.VisitLetExpr(n)
	case nil:
	default:
		v.VisitTree(n)
	}
}
