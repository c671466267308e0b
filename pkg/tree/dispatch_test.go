package tree_test

import "github.com/leapstack-labs/leapjc/pkg/tree"

// recorder implements every Visitor method and records the variant each
// call was routed for along with the tag of the node it received.
type recorder struct {
	calls []string
	tags  []tree.Tag
}

func (r *recorder) see(variant string, n tree.Node) {
	r.calls = append(r.calls, variant)
	r.tags = append(r.tags, n.Tag())
}

func (r *recorder) VisitTree(n tree.Node) { r.see("tree", n) }

func (r *recorder) VisitTopLevel(n *tree.CompilationUnit)          { r.see("CompilationUnit", n) }
func (r *recorder) VisitImport(n *tree.Import)                     { r.see("Import", n) }
func (r *recorder) VisitClassDef(n *tree.ClassDecl)                { r.see("ClassDecl", n) }
func (r *recorder) VisitMethodDef(n *tree.MethodDecl)              { r.see("MethodDecl", n) }
func (r *recorder) VisitVarDef(n *tree.VariableDecl)               { r.see("VariableDecl", n) }
func (r *recorder) VisitSkip(n *tree.Skip)                         { r.see("Skip", n) }
func (r *recorder) VisitBlock(n *tree.Block)                       { r.see("Block", n) }
func (r *recorder) VisitDoLoop(n *tree.DoWhileLoop)                { r.see("DoWhileLoop", n) }
func (r *recorder) VisitWhileLoop(n *tree.WhileLoop)               { r.see("WhileLoop", n) }
func (r *recorder) VisitForLoop(n *tree.ForLoop)                   { r.see("ForLoop", n) }
func (r *recorder) VisitForeachLoop(n *tree.EnhancedForLoop)       { r.see("EnhancedForLoop", n) }
func (r *recorder) VisitLabelled(n *tree.LabeledStatement)         { r.see("LabeledStatement", n) }
func (r *recorder) VisitSwitch(n *tree.Switch)                     { r.see("Switch", n) }
func (r *recorder) VisitCase(n *tree.Case)                         { r.see("Case", n) }
func (r *recorder) VisitSynchronized(n *tree.Synchronized)         { r.see("Synchronized", n) }
func (r *recorder) VisitTry(n *tree.Try)                           { r.see("Try", n) }
func (r *recorder) VisitCatch(n *tree.Catch)                       { r.see("Catch", n) }
func (r *recorder) VisitConditional(n *tree.Conditional)           { r.see("Conditional", n) }
func (r *recorder) VisitIf(n *tree.If)                             { r.see("If", n) }
func (r *recorder) VisitExec(n *tree.ExpressionStatement)          { r.see("ExpressionStatement", n) }
func (r *recorder) VisitBreak(n *tree.Break)                       { r.see("Break", n) }
func (r *recorder) VisitContinue(n *tree.Continue)                 { r.see("Continue", n) }
func (r *recorder) VisitReturn(n *tree.Return)                     { r.see("Return", n) }
func (r *recorder) VisitThrow(n *tree.Throw)                       { r.see("Throw", n) }
func (r *recorder) VisitAssert(n *tree.Assert)                     { r.see("Assert", n) }
func (r *recorder) VisitApply(n *tree.MethodInvocation)            { r.see("MethodInvocation", n) }
func (r *recorder) VisitNewClass(n *tree.NewClass)                 { r.see("NewClass", n) }
func (r *recorder) VisitNewArray(n *tree.NewArray)                 { r.see("NewArray", n) }
func (r *recorder) VisitLambda(n *tree.Lambda)                     { r.see("Lambda", n) }
func (r *recorder) VisitParens(n *tree.Parens)                     { r.see("Parens", n) }
func (r *recorder) VisitAssign(n *tree.Assign)                     { r.see("Assign", n) }
func (r *recorder) VisitAssignOp(n *tree.AssignOp)                 { r.see("AssignOp", n) }
func (r *recorder) VisitUnary(n *tree.Unary)                       { r.see("Unary", n) }
func (r *recorder) VisitBinary(n *tree.Binary)                     { r.see("Binary", n) }
func (r *recorder) VisitTypeCast(n *tree.TypeCast)                 { r.see("TypeCast", n) }
func (r *recorder) VisitTypeTest(n *tree.InstanceOf)               { r.see("InstanceOf", n) }
func (r *recorder) VisitIndexed(n *tree.ArrayAccess)               { r.see("ArrayAccess", n) }
func (r *recorder) VisitSelect(n *tree.FieldAccess)                { r.see("FieldAccess", n) }
func (r *recorder) VisitReference(n *tree.MemberReference)         { r.see("MemberReference", n) }
func (r *recorder) VisitIdent(n *tree.Ident)                       { r.see("Ident", n) }
func (r *recorder) VisitLiteral(n *tree.Literal)                   { r.see("Literal", n) }
func (r *recorder) VisitTypeIdent(n *tree.PrimitiveType)           { r.see("PrimitiveType", n) }
func (r *recorder) VisitTypeArray(n *tree.ArrayType)               { r.see("ArrayType", n) }
func (r *recorder) VisitTypeApply(n *tree.TypeApply)               { r.see("TypeApply", n) }
func (r *recorder) VisitTypeUnion(n *tree.TypeUnion)               { r.see("TypeUnion", n) }
func (r *recorder) VisitTypeIntersection(n *tree.TypeIntersection) { r.see("TypeIntersection", n) }
func (r *recorder) VisitTypeParameter(n *tree.TypeParameter)       { r.see("TypeParameter", n) }
func (r *recorder) VisitWildcard(n *tree.Wildcard)                 { r.see("Wildcard", n) }
func (r *recorder) VisitTypeBoundKind(n *tree.TypeBoundKind)       { r.see("TypeBoundKind", n) }
func (r *recorder) VisitAnnotation(n *tree.Annotation)             { r.see("Annotation", n) }
func (r *recorder) VisitModifiers(n *tree.Modifiers)               { r.see("Modifiers", n) }
func (r *recorder) VisitAnnotatedType(n *tree.AnnotatedType)       { r.see("AnnotatedType", n) }
func (r *recorder) VisitErroneous(n *tree.Erroneous)               { r.see("Erroneous", n) }
func (r *recorder) VisitLetExpr(n *tree.LetExpr)                   { r.see("LetExpr", n) }

// namer implements every TreeVisitor method, returning the variant name
// and counting calls through data.
type namer struct{}

func (namer) VisitCompilationUnit(_ *tree.CompilationUnit, calls *int) string {
	*calls++
	return "CompilationUnit"
}
func (namer) VisitImport(_ *tree.Import, calls *int) string           { *calls++; return "Import" }
func (namer) VisitClass(_ *tree.ClassDecl, calls *int) string         { *calls++; return "ClassDecl" }
func (namer) VisitMethod(_ *tree.MethodDecl, calls *int) string       { *calls++; return "MethodDecl" }
func (namer) VisitVariable(_ *tree.VariableDecl, calls *int) string   { *calls++; return "VariableDecl" }
func (namer) VisitEmptyStatement(_ *tree.Skip, calls *int) string     { *calls++; return "Skip" }
func (namer) VisitBlock(_ *tree.Block, calls *int) string             { *calls++; return "Block" }
func (namer) VisitDoWhileLoop(_ *tree.DoWhileLoop, calls *int) string { *calls++; return "DoWhileLoop" }
func (namer) VisitWhileLoop(_ *tree.WhileLoop, calls *int) string     { *calls++; return "WhileLoop" }
func (namer) VisitForLoop(_ *tree.ForLoop, calls *int) string         { *calls++; return "ForLoop" }
func (namer) VisitEnhancedForLoop(_ *tree.EnhancedForLoop, calls *int) string {
	*calls++
	return "EnhancedForLoop"
}
func (namer) VisitLabeledStatement(_ *tree.LabeledStatement, calls *int) string {
	*calls++
	return "LabeledStatement"
}
func (namer) VisitSwitch(_ *tree.Switch, calls *int) string { *calls++; return "Switch" }
func (namer) VisitCase(_ *tree.Case, calls *int) string     { *calls++; return "Case" }
func (namer) VisitSynchronized(_ *tree.Synchronized, calls *int) string {
	*calls++
	return "Synchronized"
}
func (namer) VisitTry(_ *tree.Try, calls *int) string     { *calls++; return "Try" }
func (namer) VisitCatch(_ *tree.Catch, calls *int) string { *calls++; return "Catch" }
func (namer) VisitConditionalExpression(_ *tree.Conditional, calls *int) string {
	*calls++
	return "Conditional"
}
func (namer) VisitIf(_ *tree.If, calls *int) string { *calls++; return "If" }
func (namer) VisitExpressionStatement(_ *tree.ExpressionStatement, calls *int) string {
	*calls++
	return "ExpressionStatement"
}
func (namer) VisitBreak(_ *tree.Break, calls *int) string       { *calls++; return "Break" }
func (namer) VisitContinue(_ *tree.Continue, calls *int) string { *calls++; return "Continue" }
func (namer) VisitReturn(_ *tree.Return, calls *int) string     { *calls++; return "Return" }
func (namer) VisitThrow(_ *tree.Throw, calls *int) string       { *calls++; return "Throw" }
func (namer) VisitAssert(_ *tree.Assert, calls *int) string     { *calls++; return "Assert" }
func (namer) VisitMethodInvocation(_ *tree.MethodInvocation, calls *int) string {
	*calls++
	return "MethodInvocation"
}
func (namer) VisitNewClass(_ *tree.NewClass, calls *int) string       { *calls++; return "NewClass" }
func (namer) VisitNewArray(_ *tree.NewArray, calls *int) string       { *calls++; return "NewArray" }
func (namer) VisitLambdaExpression(_ *tree.Lambda, calls *int) string { *calls++; return "Lambda" }
func (namer) VisitParenthesized(_ *tree.Parens, calls *int) string    { *calls++; return "Parens" }
func (namer) VisitAssignment(_ *tree.Assign, calls *int) string       { *calls++; return "Assign" }
func (namer) VisitCompoundAssignment(_ *tree.AssignOp, calls *int) string {
	*calls++
	return "AssignOp"
}
func (namer) VisitUnary(_ *tree.Unary, calls *int) string             { *calls++; return "Unary" }
func (namer) VisitBinary(_ *tree.Binary, calls *int) string           { *calls++; return "Binary" }
func (namer) VisitTypeCast(_ *tree.TypeCast, calls *int) string       { *calls++; return "TypeCast" }
func (namer) VisitInstanceOf(_ *tree.InstanceOf, calls *int) string   { *calls++; return "InstanceOf" }
func (namer) VisitArrayAccess(_ *tree.ArrayAccess, calls *int) string { *calls++; return "ArrayAccess" }
func (namer) VisitMemberSelect(_ *tree.FieldAccess, calls *int) string {
	*calls++
	return "FieldAccess"
}
func (namer) VisitMemberReference(_ *tree.MemberReference, calls *int) string {
	*calls++
	return "MemberReference"
}
func (namer) VisitIdentifier(_ *tree.Ident, calls *int) string { *calls++; return "Ident" }
func (namer) VisitLiteral(_ *tree.Literal, calls *int) string  { *calls++; return "Literal" }
func (namer) VisitPrimitiveType(_ *tree.PrimitiveType, calls *int) string {
	*calls++
	return "PrimitiveType"
}
func (namer) VisitArrayType(_ *tree.ArrayType, calls *int) string { *calls++; return "ArrayType" }
func (namer) VisitParameterizedType(_ *tree.TypeApply, calls *int) string {
	*calls++
	return "TypeApply"
}
func (namer) VisitUnionType(_ *tree.TypeUnion, calls *int) string { *calls++; return "TypeUnion" }
func (namer) VisitIntersectionType(_ *tree.TypeIntersection, calls *int) string {
	*calls++
	return "TypeIntersection"
}
func (namer) VisitTypeParameter(_ *tree.TypeParameter, calls *int) string {
	*calls++
	return "TypeParameter"
}
func (namer) VisitWildcard(_ *tree.Wildcard, calls *int) string { *calls++; return "Wildcard" }
func (namer) VisitTypeBoundKind(_ *tree.TypeBoundKind, calls *int) string {
	*calls++
	return "TypeBoundKind"
}
func (namer) VisitAnnotation(_ *tree.Annotation, calls *int) string { *calls++; return "Annotation" }
func (namer) VisitModifiers(_ *tree.Modifiers, calls *int) string   { *calls++; return "Modifiers" }
func (namer) VisitAnnotatedType(_ *tree.AnnotatedType, calls *int) string {
	*calls++
	return "AnnotatedType"
}
func (namer) VisitErroneous(_ *tree.Erroneous, calls *int) string { *calls++; return "Erroneous" }
func (namer) VisitLetExpr(_ *tree.LetExpr, calls *int) string     { *calls++; return "LetExpr" }
