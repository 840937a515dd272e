package cxxtypes

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/position"
)

// QualifiedNameSegment is one "::"-separated component of a
// QualifiedName. It is a closed variant: PlainSegment, TemplateIDSegment,
// DestructorSegment, OperatorSegment, and ConversionOperatorSegment are
// the only implementations.
type QualifiedNameSegment interface {
	isQualifiedNameSegment()
	Span() position.Span
}

// PlainSegment is a bare identifier, "Name" in "a::Name::b".
type PlainSegment struct {
	Name string
	Sp   position.Span
}

func (PlainSegment) isQualifiedNameSegment() {}
func (s PlainSegment) Span() position.Span   { return s.Sp }

// TemplateIDSegment is an identifier immediately followed by a balanced
// "<...>" argument list, e.g. "vector<int>" in "std::vector<int>::iterator".
type TemplateIDSegment struct {
	Name string
	Args []TemplateArgument
	Sp   position.Span
}

func (TemplateIDSegment) isQualifiedNameSegment() {}
func (s TemplateIDSegment) Span() position.Span   { return s.Sp }

// DestructorSegment is "~Name" or "~Type", the last segment of a
// destructor's declarator-id.
type DestructorSegment struct {
	Name string // identifier spelling, set when the operand is a bare name
	Type Type   // set instead of Name when the operand is a type-id, e.g. "~Base<T>"
	Sp   position.Span
}

func (DestructorSegment) isQualifiedNameSegment() {}
func (s DestructorSegment) Span() position.Span   { return s.Sp }

// OperatorSegment is "operator<spelling>" for an overloaded operator or
// a user-defined-literal suffix, e.g. "operator+=", `operator""_km`.
type OperatorSegment struct {
	Spelling string // "+", "+=", "()", "[]", "new", "\"\"_km", ...
	Sp       position.Span
}

func (OperatorSegment) isQualifiedNameSegment() {}
func (s OperatorSegment) Span() position.Span   { return s.Sp }

// ConversionOperatorSegment is "operator T" for a user-defined conversion
// function.
type ConversionOperatorSegment struct {
	Target Type
	Sp     position.Span
}

func (ConversionOperatorSegment) isQualifiedNameSegment() {}
func (s ConversionOperatorSegment) Span() position.Span   { return s.Sp }

// AnonymousName is a QualifiedName segment standing in for an unnamed
// class/struct/union/enum's identity: ID is unique per parse, so two
// references to the same anonymous type (e.g. a typedef naming it
// alongside its definition) can be correlated downstream.
type AnonymousName struct {
	ID int
	Sp position.Span
}

func (AnonymousName) isQualifiedNameSegment() {}
func (s AnonymousName) Span() position.Span   { return s.Sp }

// QualifiedName is an ordered sequence of segments, "::"-joined.
// LeadingGlobal records whether the name began with "::" (global-scope
// qualification), which a zero-length leading segment would otherwise
// model ambiguously.
type QualifiedName struct {
	LeadingGlobal bool
	Segments      []QualifiedNameSegment
	Sp            position.Span
}

func (q QualifiedName) Span() position.Span { return q.Sp }

// String renders a QualifiedName's plain-identifier segments joined by
// "::", for diagnostics; it does not attempt to re-spell template
// arguments or operator segments precisely.
func (q QualifiedName) String() string {
	s := ""
	if q.LeadingGlobal {
		s = "::"
	}

	for i, seg := range q.Segments {
		if i > 0 {
			s += "::"
		}

		switch v := seg.(type) {
		case PlainSegment:
			s += v.Name
		case TemplateIDSegment:
			s += v.Name + "<...>"
		case DestructorSegment:
			s += "~" + v.Name
		case OperatorSegment:
			s += "operator" + v.Spelling
		case ConversionOperatorSegment:
			s += "operator <conversion>"
		case AnonymousName:
			s += "(anonymous)"
		}
	}

	return s
}

// TemplateArgument is one element of a template-id's argument list: a
// type argument, a non-type (expression) argument captured as opaque
// tokens, or a template-name argument passed where a template template
// parameter is expected. Exactly one of TypeArg/Tokens/Template is set.
type TemplateArgument struct {
	TypeArg  Type
	Tokens   []cxxtoken.Token
	Template *QualifiedName
	IsPack   bool
	Sp       position.Span
}
