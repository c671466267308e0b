package tree

import "github.com/leapstack-labs/leapjc/pkg/name"

// CompilationUnit is a whole source file.
type CompilationUnit struct {
	base
	PackageAnnotations []*Annotation
	PID                Expression // package name, nil for the unnamed package
	Defs               []Node
	SourceFile         string
}

func (*CompilationUnit) Tag() Tag { return TopLevel }

// Imports returns the import declarations, which precede all other
// definitions.
func (c *CompilationUnit) Imports() []*Import {
	var out []*Import
	for _, d := range c.Defs {
		imp, ok := d.(*Import)
		if !ok {
			break
		}
		out = append(out, imp)
	}
	return out
}

// TypeDecls returns the class declarations of the unit.
func (c *CompilationUnit) TypeDecls() []*ClassDecl {
	var out []*ClassDecl
	for _, d := range c.Defs {
		if cd, ok := d.(*ClassDecl); ok {
			out = append(out, cd)
		}
	}
	return out
}

// Import is an import declaration.
type Import struct {
	base
	Qualid Node
	Static bool
}

func (*Import) Tag() Tag { return ImportTag }

// ClassDecl declares a class, interface, enum or annotation type.
type ClassDecl struct {
	stmtBase
	Mods         *Modifiers
	Name         name.Name
	TypeParams   []*TypeParameter
	Extending    Expression
	Implementing []Expression
	Defs         []Node
}

func (*ClassDecl) Tag() Tag { return ClassDef }

// MethodDecl declares a method or constructor.
type MethodDecl struct {
	base
	Mods         *Modifiers
	Name         name.Name
	ResType      Expression // nil for constructors
	TypeParams   []*TypeParameter
	RecvParam    *VariableDecl
	Params       []*VariableDecl
	Thrown       []Expression
	Body         *Block
	DefaultValue Expression
}

func (*MethodDecl) Tag() Tag { return MethodDef }

// VariableDecl declares a field, local variable or parameter.
type VariableDecl struct {
	stmtBase
	Mods     *Modifiers
	Name     name.Name
	NameExpr Expression // receiver parameters only
	VarType  Expression // nil for implicitly typed lambda parameters
	Init     Expression
}

func (*VariableDecl) Tag() Tag { return VarDef }

// TypeParameter is a formal type parameter with its bounds.
type TypeParameter struct {
	base
	Name        name.Name
	Bounds      []Expression
	Annotations []*Annotation
}

func (*TypeParameter) Tag() Tag { return TypeParameterTag }

// Modifiers holds modifier flags and declaration annotations.
type Modifiers struct {
	base
	Flags       Flags
	Annotations []*Annotation
}

func (*Modifiers) Tag() Tag { return ModifiersTag }

// Catch is one catch clause of a try statement.
type Catch struct {
	base
	Param *VariableDecl
	Body  *Block
}

func (*Catch) Tag() Tag { return CatchTag }

// TypeBoundKind is the bound kind of a wildcard.
type TypeBoundKind struct {
	base
	Kind BoundKind
}

func (*TypeBoundKind) Tag() Tag { return TypeBoundKindTag }
