package cxxtypes

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/position"
)

// Type is a tagged type node. It is a closed variant: the only
// implementations are the ones declared in this file. Consumers use a
// type switch for exhaustive dispatch instead of a virtual-visitor call.
type Type interface {
	isType()
	Span() position.Span
	Qualifiers() CV
}

// base carries the fields every Type variant shares, embedded by value
// so each variant still satisfies Type directly.
type base struct {
	Sp    position.Span
	CVQ   CV
	Attrs []Attribute
}

func (b base) Span() position.Span { return b.Sp }
func (b base) Qualifiers() CV      { return b.CVQ }

// WithExtraCV folds extra CV qualifiers into a copy of t (east-const:
// "int const" applies its qualifiers after the type specifier already
// built the node). Types that don't carry their own qualifiers, such as
// PointerType (whose CVQ belongs to the pointer, not its Inner), are
// returned unchanged.
func WithExtraCV(t Type, extra CV) Type {
	if !extra.Const && !extra.Volatile {
		return t
	}

	switch v := t.(type) {
	case FundamentalType:
		v.CVQ.Const = v.CVQ.Const || extra.Const
		v.CVQ.Volatile = v.CVQ.Volatile || extra.Volatile

		return v
	case NamedType:
		v.CVQ.Const = v.CVQ.Const || extra.Const
		v.CVQ.Volatile = v.CVQ.Volatile || extra.Volatile

		return v
	default:
		return t
	}
}

// NewFundamentalType builds a FundamentalType node.
func NewFundamentalType(sp position.Span, spelling string) FundamentalType {
	return FundamentalType{base: base{Sp: sp}, Spelling: spelling}
}

// NewNamedType builds a NamedType node.
func NewNamedType(sp position.Span, name QualifiedName, isTypename bool, elaboratedKey string) NamedType {
	return NamedType{base: base{Sp: sp}, Name: name, IsTypename: isTypename, ElaboratedKey: elaboratedKey}
}

// NewAutoType builds an AutoType node.
func NewAutoType(sp position.Span) AutoType { return AutoType{base{Sp: sp}} }

// NewDecltypeAutoType builds a DecltypeAutoType node.
func NewDecltypeAutoType(sp position.Span) DecltypeAutoType { return DecltypeAutoType{base{Sp: sp}} }

// NewDecltypeType builds a DecltypeType node.
func NewDecltypeType(sp position.Span, expr []cxxtoken.Token) DecltypeType {
	return DecltypeType{base: base{Sp: sp}, Expr: expr}
}

// NewPointerType builds a PointerType node wrapping inner, with cv
// qualifying the pointer itself.
func NewPointerType(sp position.Span, cv CV, inner Type) PointerType {
	return PointerType{base: base{Sp: sp, CVQ: cv}, Inner: inner}
}

// NewReferenceType builds a ReferenceType node.
func NewReferenceType(sp position.Span, inner Type, kind RefQualifier) ReferenceType {
	return ReferenceType{base: base{Sp: sp}, Inner: inner, Kind: kind}
}

// NewArrayType builds an ArrayType node; size is nil for an
// unbounded/incomplete array.
func NewArrayType(sp position.Span, inner Type, size []cxxtoken.Token) ArrayType {
	return ArrayType{base: base{Sp: sp}, Inner: inner, SizeTokens: size}
}

// NewFunctionType builds a FunctionType node.
func NewFunctionType(sp position.Span, cv CV, ret Type, params []Parameter, variadic bool, refQual RefQualifier, noexcept NoexceptSpec, trailingReturn Type) FunctionType {
	return FunctionType{
		base: base{Sp: sp, CVQ: cv}, Return: ret, Params: params, IsVariadic: variadic,
		RefQual: refQual, Noexcept: noexcept, TrailingReturn: trailingReturn,
	}
}

// WithDynamicThrowSpec returns a copy of ft carrying a pre-C++17
// "throw(...)" dynamic exception specification's token run.
func (ft FunctionType) WithDynamicThrowSpec(toks []cxxtoken.Token) FunctionType {
	ft.DynamicThrowSpec = toks

	return ft
}

// WithMSVCConvention returns a copy of ft carrying an explicit calling
// convention keyword's spelling.
func (ft FunctionType) WithMSVCConvention(spelling string) FunctionType {
	ft.MSVCConvention = spelling

	return ft
}

// NewMemberPointerType builds a MemberPointerType node.
func NewMemberPointerType(sp position.Span, cv CV, class, inner Type) MemberPointerType {
	return MemberPointerType{base: base{Sp: sp, CVQ: cv}, Class: class, Inner: inner}
}

// NewPackType builds a PackType node.
func NewPackType(sp position.Span, inner Type) PackType {
	return PackType{base: base{Sp: sp}, Inner: inner}
}

// FundamentalType is a run of fundamental-type keywords, canonicalized
// into a single space-separated spelling ("unsigned long long", "signed
// char", "bool").
type FundamentalType struct {
	base
	Spelling string
}

func (FundamentalType) isType() {}

// NamedType references a (possibly qualified, possibly template-id)
// name, optionally "typename"-prefixed or given an elaborated class-key.
type NamedType struct {
	base
	Name       QualifiedName
	IsTypename bool
	// ElaboratedKey is "class", "struct", "union", or "enum" when the
	// type was written with an explicit elaborated-type-specifier
	// keyword, and "" otherwise.
	ElaboratedKey string
}

func (NamedType) isType() {}

// AutoType is the placeholder type "auto".
type AutoType struct{ base }

func (AutoType) isType() {}

// DecltypeAutoType is "decltype(auto)".
type DecltypeAutoType struct{ base }

func (DecltypeAutoType) isType() {}

// DecltypeType is "decltype(expr)"; Expr is the opaque token run inside
// the parentheses.
type DecltypeType struct {
	base
	Expr []cxxtoken.Token
}

func (DecltypeType) isType() {}

// PointerType is "Inner *", with its own CV qualifiers on the pointer
// itself (base.CVQ), distinct from Inner's.
type PointerType struct {
	base
	Inner Type
}

func (PointerType) isType() {}

// ReferenceType is "Inner &" or "Inner &&".
type ReferenceType struct {
	base
	Inner Type
	Kind  RefQualifier
}

func (ReferenceType) isType() {}

// ArrayType is "Inner[SizeTokens]"; SizeTokens is nil for an
// unbounded/incomplete array ("Inner[]").
type ArrayType struct {
	base
	Inner      Type
	SizeTokens []cxxtoken.Token
}

func (ArrayType) isType() {}

// FunctionType models a function's type independent of any declarator-id:
// used for function pointers/references and for a Declaration's own
// signature.
type FunctionType struct {
	base
	Return         Type
	Params         []Parameter
	IsVariadic     bool
	RefQual        RefQualifier
	Noexcept       NoexceptSpec
	TrailingReturn Type // set when the declarator used "-> T"; Return is then "auto"

	// DynamicThrowSpec is a pre-C++17 "throw(A, B)" exception
	// specification's token run, opaque beyond its outer parens; nil
	// when the declarator had none, including the unrestricted "throw()".
	DynamicThrowSpec []cxxtoken.Token

	// MSVCConvention is "__cdecl", "__stdcall", "__fastcall",
	// "__thiscall", "__vectorcall", or "__clrcall" when the declarator
	// carried one immediately before its parameter list, gated by
	// Options.MSVCAttributes; "" otherwise.
	MSVCConvention string
}

func (FunctionType) isType() {}

// MemberPointerType is "Class::* Inner", a pointer-to-member.
type MemberPointerType struct {
	base
	Class Type
	Inner Type
}

func (MemberPointerType) isType() {}

// PackType is "Inner..." in a template parameter or function parameter
// position, a parameter-pack expansion of Inner.
type PackType struct {
	base
	Inner Type
}

func (PackType) isType() {}

// Parameter is one element of a function's parameter-declaration-clause.
type Parameter struct {
	Type          Type
	Name          string
	DefaultTokens []cxxtoken.Token
	Attrs         []Attribute
	IsPack        bool
	Sp            position.Span
}
