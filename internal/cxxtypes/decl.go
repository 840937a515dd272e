package cxxtypes

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/position"
)

// Access is a class member's access level.
type Access int

const (
	Public Access = iota
	Protected
	Private
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Protected:
		return "protected"
	default:
		return "private"
	}
}

// Declaration is a closed variant over every top-level or member
// declaration kind the parser recognizes. Every variant embeds Common,
// which carries the fields every declaration shares: its source span,
// the scope it was found in, its attributes, and its associated Doxygen
// comment text (empty when none was present; the parser fills it in
// whether or not Options.RetainDoxygenComments is set).
type Declaration interface {
	isDeclaration()
	Span() position.Span
}

// Common is embedded by every Declaration variant.
type Common struct {
	Sp       position.Span
	Scope    *Scope
	Attrs    []Attribute
	Doxygen  string
	Template *TemplateParameterList // nil unless this declaration is templated
}

func (c Common) Span() position.Span { return c.Sp }

// NamespaceDecl is "namespace Name { Body }", "namespace { Body }"
// (Name == nil), "inline namespace Name { ... }", or the C++17 nested
// form "namespace A::B::C { ... }" (IsNestedName true, Name holding the
// full qualified path).
type NamespaceDecl struct {
	Common
	Name         *QualifiedName
	IsInline     bool
	IsNestedName bool
	Body         []Declaration
}

func (NamespaceDecl) isDeclaration() {}

// NamespaceAliasDecl is "namespace Name = Target;".
type NamespaceAliasDecl struct {
	Common
	Name   string
	Target QualifiedName
}

func (NamespaceAliasDecl) isDeclaration() {}

// Base is one entry of a class's base-clause.
type Base struct {
	Access    Access
	IsVirtual bool
	Type      Type
	IsPack    bool
	Sp        position.Span
}

// ClassDecl is a class/struct/union definition or forward declaration.
type ClassDecl struct {
	Common
	Key       string // "class", "struct", or "union"
	Name      *QualifiedName
	Bases     []Base
	IsFinal   bool
	Body      []Declaration
	IsForward bool
}

func (ClassDecl) isDeclaration() {}

// Enumerator is one member of an enum's enumerator-list.
type Enumerator struct {
	Name         string
	Attrs        []Attribute
	ValueTokens  []cxxtoken.Token
	Sp           position.Span
}

// EnumDecl is an enum/enum class/enum struct definition or forward
// declaration.
type EnumDecl struct {
	Common
	Name           *QualifiedName
	IsScoped       bool
	UnderlyingType Type // nil when not specified
	Enumerators    []Enumerator
	IsForward      bool
}

func (EnumDecl) isDeclaration() {}

// FunctionKind distinguishes the special forms of member function that
// need dedicated handling downstream (pretty-printing, documentation
// generation) from an ordinary named function.
type FunctionKind int

const (
	FunctionNormal FunctionKind = iota
	FunctionConstructor
	FunctionDestructor
	FunctionConversion
	FunctionOperator
	FunctionUserDefinedLiteral
)

// FunctionDecl is a function declaration or definition, at namespace,
// class, or block scope (only namespace and class scope are ever
// reachable from this parser's entry point).
type FunctionDecl struct {
	Common
	Kind       FunctionKind
	Name       QualifiedName
	ReturnType Type // nil for constructors/destructors
	Signature  FunctionType

	IsVirtual, IsExplicit               bool
	IsConstexpr, IsConsteval, IsConstinit bool
	IsStatic, IsFriend, IsInline         bool
	IsPure, IsDefault, IsDeleted         bool
	IsOverride, IsFinal                  bool

	// MemberInitializers holds a constructor's ": base(args), field{...}"
	// list, each entry's token run captured opaquely between its name and
	// the comma/opening-brace that follows it.
	MemberInitializers []MemberInitializer

	// BodyTokens is nil unless Options.MethodBody == RetainTokens and the
	// declaration had a body.
	BodyTokens []cxxtoken.Token
	HasBody    bool

	Requires []cxxtoken.Token
}

func (FunctionDecl) isDeclaration() {}

// MemberInitializer is one entry of a constructor's initializer list.
type MemberInitializer struct {
	Target Name // a QualifiedName segment's worth of target, base or member
	Args   []cxxtoken.Token
	Sp     position.Span
}

// Name is a small alias kept distinct from QualifiedName so a member
// initializer's target (which is never itself qualified beyond a
// possible template-id, e.g. "Base<int>(...)") reads clearly at call
// sites.
type Name = QualifiedName

// VariableDecl is a variable or data-member declaration.
type VariableDecl struct {
	Common
	Type             Type
	Name             string
	InitializerTokens []cxxtoken.Token
	IsStatic, IsExtern, IsConstexpr bool
	IsInline, IsThreadLocal         bool
	BitfieldWidth    []cxxtoken.Token // nil unless this is a bit-field
	Access           Access
}

func (VariableDecl) isDeclaration() {}

// TypedefDecl is "typedef Type Name;".
type TypedefDecl struct {
	Common
	Name string
	Type Type
}

func (TypedefDecl) isDeclaration() {}

// UsingAliasDecl is "using Name = Type;", possibly templated (an alias
// template when Common.Template is set).
type UsingAliasDecl struct {
	Common
	Name string
	Type Type
}

func (UsingAliasDecl) isDeclaration() {}

// UsingDeclarationDecl is "using ns::name;".
type UsingDeclarationDecl struct {
	Common
	Name QualifiedName
}

func (UsingDeclarationDecl) isDeclaration() {}

// UsingDirectiveDecl is "using namespace ns;".
type UsingDirectiveDecl struct {
	Common
	Name QualifiedName
}

func (UsingDirectiveDecl) isDeclaration() {}

// UsingEnumDecl is the C++20 "using enum ns::E;".
type UsingEnumDecl struct {
	Common
	Name QualifiedName
}

func (UsingEnumDecl) isDeclaration() {}

// FriendTargetKind distinguishes what a FriendDecl grants friendship to.
type FriendTargetKind int

const (
	FriendClass FriendTargetKind = iota
	FriendFunction
	FriendType
)

// FriendDecl is "friend class X;", "friend void f();", or
// "friend T;" (a friend type-alias-style declaration).
type FriendDecl struct {
	Common
	TargetKind FriendTargetKind
	Class      *ClassDecl
	Function   *FunctionDecl
	Type       Type
}

func (FriendDecl) isDeclaration() {}

// StaticAssertDecl is "static_assert(expr, message);".
type StaticAssertDecl struct {
	Common
	Expression []cxxtoken.Token
	Message    []cxxtoken.Token // nil when no message string was given
}

func (StaticAssertDecl) isDeclaration() {}

// ExternBlockDecl is 'extern "C" { Body }' or 'extern "C" decl;'.
type ExternBlockDecl struct {
	Common
	Linkage string
	Body    []Declaration
}

func (ExternBlockDecl) isDeclaration() {}

// PragmaOrIncludeLineDecl surfaces a '#'-prefixed line encountered at a
// declaration boundary, unparsed beyond the leading directive name.
type PragmaOrIncludeLineDecl struct {
	Common
	Raw string
}

func (PragmaOrIncludeLineDecl) isDeclaration() {}

// DefineDecl is a "#define ..." line, surfaced verbatim without macro
// expansion (macro evaluation is out of scope for a declaration parser).
type DefineDecl struct {
	PragmaOrIncludeLineDecl
}

// IncludeDecl is a "#include <...>" or "#include \"...\"" line, with
// Filename holding the text between the delimiters.
type IncludeDecl struct {
	PragmaOrIncludeLineDecl
	Filename string
}

// PragmaDecl is a "#pragma ..." line.
type PragmaDecl struct {
	PragmaOrIncludeLineDecl
}

// ConceptDecl is a C++20 "concept Name = constraint-expression;",
// recorded as an opaque declaration per 4.3's "template" dispatch note.
type ConceptDecl struct {
	Common
	Name       string
	Constraint []cxxtoken.Token
}

func (ConceptDecl) isDeclaration() {}
