// Package cxxtypes is the public data model: the closed tagged variants
// for types, template parameters, and declarations that make up the
// parser's AST, per the design note that replaces node polymorphism with
// a sealed interface and exhaustive type-switch dispatch rather than a
// Clone/Equals/GetChildren-style node hierarchy.
package cxxtypes

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/position"
)

// Attribute is one entry of a "[[...]]", "__attribute__((...))", or
// "__declspec(...)" sequence, captured positionally on whatever it
// qualifies.
type Attribute struct {
	// Vendor is "" for [[...]] attributes, "gnu" for __attribute__, or
	// "msvc" for __declspec/calling-convention keywords.
	Vendor string
	Name   string
	Args   []cxxtoken.Token
	Span   position.Span
}

// CV bundles the two standalone qualifiers that can attach to a type.
type CV struct {
	Const    bool
	Volatile bool
}

// RefQualifier distinguishes a member function's "&"/"&&" qualifier (or
// its absence) from the type's own reference derivation.
type RefQualifier int

const (
	RefNone RefQualifier = iota
	RefLvalue
	RefRvalue
)

func (r RefQualifier) String() string {
	switch r {
	case RefLvalue:
		return "&"
	case RefRvalue:
		return "&&"
	default:
		return ""
	}
}

// NoexceptSpec records a "noexcept" or "noexcept(condition)" suffix.
// Present distinguishes "no noexcept-specifier at all" from an explicit
// "noexcept" with no condition, which parses to Present=true and a nil
// Condition.
type NoexceptSpec struct {
	Present   bool
	Condition []cxxtoken.Token
}
