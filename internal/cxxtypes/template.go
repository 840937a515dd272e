package cxxtypes

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/position"
)

// TemplateParameter is a closed variant over the three kinds of template
// parameter: TypeTemplateParameter, TemplateTemplateParameter, and
// NonTypeTemplateParameter.
type TemplateParameter interface {
	isTemplateParameter()
	Span() position.Span
	Pack() bool
}

// TypeTemplateParameter is "typename T" or "class T", optionally
// "= Default".
type TypeTemplateParameter struct {
	Name     string
	IsPack   bool
	Default  Type
	UsesClassKeyword bool // true for "class T", false for "typename T"
	Sp       position.Span
}

func (TypeTemplateParameter) isTemplateParameter() {}
func (t TypeTemplateParameter) Span() position.Span { return t.Sp }
func (t TypeTemplateParameter) Pack() bool          { return t.IsPack }

// TemplateTemplateParameter is "template<...> class Name", optionally
// "= Default".
type TemplateTemplateParameter struct {
	Name    string
	IsPack  bool
	Params  TemplateParameterList
	Default *QualifiedName
	Sp      position.Span
}

func (TemplateTemplateParameter) isTemplateParameter() {}
func (t TemplateTemplateParameter) Span() position.Span { return t.Sp }
func (t TemplateTemplateParameter) Pack() bool          { return t.IsPack }

// NonTypeTemplateParameter is "Type Name = Default", e.g. "int N = 4".
type NonTypeTemplateParameter struct {
	Name    string
	Type    Type
	IsPack  bool
	Default []cxxtoken.Token
	Sp      position.Span
}

func (NonTypeTemplateParameter) isTemplateParameter() {}
func (t NonTypeTemplateParameter) Span() position.Span { return t.Sp }
func (t NonTypeTemplateParameter) Pack() bool          { return t.IsPack }

// TemplateParameterList is the full "template<...>" parameter list
// attached to a template declaration, plus an optional trailing
// "requires" clause captured as opaque tokens.
type TemplateParameterList struct {
	Params   []TemplateParameter
	Requires []cxxtoken.Token
	Sp       position.Span
}
