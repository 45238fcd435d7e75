package compiler

import (
	"fmt"
	"strings"
)

// TypeKind is the structural category of a Type.
type TypeKind int

const (
	TypeNone TypeKind = iota
	TypeInt
	TypeChar
	TypeArr
	TypeClass
)

func (k TypeKind) String() string {
	switch k {
	case TypeInt:
		return "int"
	case TypeChar:
		return "char"
	case TypeArr:
		return "array"
	case TypeClass:
		return "class"
	default:
		return "none"
	}
}

// Type describes the type of an Object or Operand.
type Type struct {
	Kind    TypeKind
	Elem    *Type     // TypeArr only
	Fields  []*Object // TypeClass only, in declaration order
	NFields int
}

// Predeclared types. They live for the whole process and are shared by every
// Table.
var (
	IntType  = &Type{Kind: TypeInt}
	CharType = &Type{Kind: TypeChar}
	NullType = &Type{Kind: TypeClass}
	NoType   = &Type{Kind: TypeNone}
)

// NewArrayType returns a fresh array type with the given element type.
func NewArrayType(elem *Type) *Type {
	return &Type{Kind: TypeArr, Elem: elem}
}

// NewClassType returns a fresh class type without fields.
func NewClassType() *Type {
	return &Type{Kind: TypeClass}
}

// IsRef reports whether values of t are references (arrays and classes).
func (t *Type) IsRef() bool {
	return t.Kind == TypeArr || t.Kind == TypeClass
}

// IsArith reports whether t may appear in arithmetic. NoType is accepted so
// an earlier error is not reported again.
func (t *Type) IsArith() bool {
	return t.Kind == TypeInt || t.Kind == TypeChar || t.Kind == TypeNone
}

// Equals reports structural identity: the same descriptor, or two arrays
// whose element types are equal.
func (t *Type) Equals(other *Type) bool {
	if t == other {
		return true
	}
	if t.Kind == TypeArr && other.Kind == TypeArr {
		return t.Elem.Equals(other.Elem) || t.Elem == NoType || other.Elem == NoType
	}
	return false
}

// Compatible reports whether values of t and other may be compared or
// assigned to each other. NoType is compatible with everything.
func (t *Type) Compatible(other *Type) bool {
	switch {
	case t == NoType || other == NoType:
		return true
	case t.Equals(other):
		return true
	case t == NullType && other.IsRef(), other == NullType && t.IsRef():
		return true
	}
	return false
}

// AssignableTo reports whether a value of type t may be stored in a location
// of type dst.
func (t *Type) AssignableTo(dst *Type) bool {
	return t.Compatible(dst)
}

func (t *Type) String() string {
	switch t.Kind {
	case TypeArr:
		return t.Elem.String() + "[]"
	case TypeClass:
		if t == NullType {
			return "null"
		}
		names := make([]string, 0, len(t.Fields))
		for _, f := range t.Fields {
			names = append(names, f.Name)
		}
		return fmt.Sprintf("class{%s}", strings.Join(names, ","))
	}
	return t.Kind.String()
}
