package tree

import (
	"fmt"
	"strings"
)

// Type is the semantic type attached by attribution. The tree package
// never inspects it.
type Type = any

// Flags is a modifier bitset.
type Flags uint64

// Modifier and declaration flags.
const (
	FlagPublic       Flags = 1 << 0
	FlagPrivate      Flags = 1 << 1
	FlagProtected    Flags = 1 << 2
	FlagStatic       Flags = 1 << 3
	FlagFinal        Flags = 1 << 4
	FlagSynchronized Flags = 1 << 5
	FlagVolatile     Flags = 1 << 6
	FlagTransient    Flags = 1 << 7
	FlagNative       Flags = 1 << 8
	FlagInterface    Flags = 1 << 9
	FlagAbstract     Flags = 1 << 10
	FlagStrictFP     Flags = 1 << 11
	FlagSynthetic    Flags = 1 << 12
	FlagAnnotation   Flags = 1 << 13
	FlagEnum         Flags = 1 << 14
	FlagMandated     Flags = 1 << 15
	FlagDeprecated   Flags = 1 << 17
	FlagVarargs      Flags = 1 << 34
	FlagDefault      Flags = 1 << 43
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagPublic, "public"},
	{FlagPrivate, "private"},
	{FlagProtected, "protected"},
	{FlagAbstract, "abstract"},
	{FlagStatic, "static"},
	{FlagFinal, "final"},
	{FlagTransient, "transient"},
	{FlagVolatile, "volatile"},
	{FlagSynchronized, "synchronized"},
	{FlagNative, "native"},
	{FlagStrictFP, "strictfp"},
	{FlagDefault, "default"},
	{FlagInterface, "interface"},
	{FlagAnnotation, "annotation"},
	{FlagEnum, "enum"},
	{FlagSynthetic, "synthetic"},
	{FlagMandated, "mandated"},
	{FlagDeprecated, "deprecated"},
	{FlagVarargs, "varargs"},
}

// Has reports whether every bit of o is set in f.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// String lists the set flags in source modifier order.
func (f Flags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, " ")
}

// TypeTag classifies primitive types and literal values.
type TypeTag uint8

// Type tags.
const (
	TypeTagNone TypeTag = iota
	TypeTagByte
	TypeTagChar
	TypeTagShort
	TypeTagLong
	TypeTagFloat
	TypeTagInt
	TypeTagDouble
	TypeTagBoolean
	TypeTagVoid
	TypeTagClass
	TypeTagArray
	TypeTagBot // the type of null
	TypeTagError
)

var typeTagNames = [...]string{
	TypeTagNone: "none", TypeTagByte: "byte", TypeTagChar: "char", TypeTagShort: "short",
	TypeTagLong: "long", TypeTagFloat: "float", TypeTagInt: "int", TypeTagDouble: "double",
	TypeTagBoolean: "boolean", TypeTagVoid: "void", TypeTagClass: "class", TypeTagArray: "array",
	TypeTagBot: "null", TypeTagError: "error",
}

func (t TypeTag) String() string {
	if int(t) < len(typeTagNames) {
		return typeTagNames[t]
	}
	return fmt.Sprintf("TypeTag(%d)", t)
}

// IsPrimitive reports whether t names a primitive type other than void.
func (t TypeTag) IsPrimitive() bool {
	return t >= TypeTagByte && t <= TypeTagBoolean
}

// BoundKind is the kind of a wildcard bound.
type BoundKind uint8

// Wildcard bound kinds.
const (
	BoundExtends BoundKind = iota
	BoundSuper
	BoundUnbound
)

func (k BoundKind) String() string {
	switch k {
	case BoundExtends:
		return "? extends "
	case BoundSuper:
		return "? super "
	default:
		return "?"
	}
}

// PolyKind says whether a poly expression is treated as standalone or as a
// true poly expression.
type PolyKind uint8

// Poly kinds.
const (
	Standalone PolyKind = iota
	Poly
)

func (k PolyKind) String() string {
	if k == Poly {
		return "POLY"
	}
	return "STANDALONE"
}

// ParameterKind says whether lambda parameters declare their types.
type ParameterKind uint8

// Lambda parameter kinds.
const (
	Implicit ParameterKind = iota
	Explicit
)

func (k ParameterKind) String() string {
	if k == Explicit {
		return "EXPLICIT"
	}
	return "IMPLICIT"
}

// BodyKind says whether a lambda body is an expression or a block.
type BodyKind uint8

// Lambda body kinds.
const (
	BodyExpression BodyKind = iota
	BodyStatement
)

// ReferenceMode distinguishes method references from constructor
// references.
type ReferenceMode uint8

// Reference modes.
const (
	Invoke ReferenceMode = iota
	New
)

func (m ReferenceMode) String() string {
	if m == New {
		return "NEW"
	}
	return "INVOKE"
}

// ReferenceKind is the resolved shape of a member reference.
type ReferenceKind uint8

// Reference kinds.
const (
	RefUnresolved ReferenceKind = iota
	RefSuper
	RefUnbound
	RefStatic
	RefBound
	RefImplicitInner
	RefTopLevel
	RefArrayCtor
)

// Mode returns the reference mode implied by k.
func (k ReferenceKind) Mode() ReferenceMode {
	switch k {
	case RefImplicitInner, RefTopLevel, RefArrayCtor:
		return New
	}
	return Invoke
}

// IsUnbound reports whether the receiver is the first argument.
func (k ReferenceKind) IsUnbound() bool {
	return k == RefUnbound
}

// OverloadKind records whether a member reference target is overloaded.
type OverloadKind uint8

// Overload kinds.
const (
	OverloadUnknown OverloadKind = iota
	Overloaded
	Unoverloaded
)
