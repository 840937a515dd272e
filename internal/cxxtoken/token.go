// Package cxxtoken defines the token vocabulary produced by the lexer
// and consumed by the token stream and parser.
package cxxtoken

import (
	"fmt"

	"github.com/cppdecl/cxxheaderparser/internal/position"
)

// Kind identifies the lexical category of a Token.
type Kind int

const (
	Invalid Kind = iota
	Eof

	Identifier // also covers keywords; Spelling distinguishes them
	Number
	CharLiteral
	StringLiteral
	PPLine // a whole '#...' preprocessor line, unparsed

	// Punctuators are all represented with this kind; Spelling is the
	// exact punctuator text ("::", ">>", "...", etc. included; "[[" is
	// two "[" tokens).
	Punct
)

func (k Kind) String() string {
	switch k {
	case Eof:
		return "EOF"
	case Identifier:
		return "IDENTIFIER"
	case Number:
		return "NUMBER"
	case CharLiteral:
		return "CHAR_LITERAL"
	case StringLiteral:
		return "STRING_LITERAL"
	case PPLine:
		return "PP_LINE"
	case Punct:
		return "PUNCT"
	default:
		return "INVALID"
	}
}

// Token is a single lexical unit: its kind, its exact spelling, and the
// source span it occupies. Keywords are identifiers whose spelling is a
// member of the Keywords set; the parser tests Spelling, not a separate
// keyword Kind, mirroring how the reference lexer folds keyword
// recognition into its NAME rule.
type Token struct {
	Kind     Kind
	Spelling string
	Span     position.Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Spelling, t.Span.Start)
}

// Loc is a convenience accessor for the token's starting location.
func (t Token) Loc() position.Position { return t.Span.Start }

// Is reports whether the token is a Punct/Identifier/keyword whose
// spelling matches one of vals.
func (t Token) Is(vals ...string) bool {
	for _, v := range vals {
		if t.Spelling == v {
			return true
		}
	}

	return false
}

// IsKind reports whether the token's Kind matches one of kinds.
func (t Token) IsKind(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}

	return false
}

// Keywords is the C++ keyword table, including the vendor pseudo-keywords
// the lexer folds in so the parser can dispatch on them uniformly
// (__attribute__, __declspec, and the MSVC calling conventions).
var Keywords = map[string]bool{
	"__attribute__": true, "__declspec": true,
	"__cdecl": true, "__clrcall": true, "__stdcall": true,
	"__fastcall": true, "__thiscall": true, "__vectorcall": true,

	"alignas": true, "alignof": true, "asm": true, "auto": true,
	"bool": true, "break": true, "case": true, "catch": true,
	"char": true, "char8_t": true, "char16_t": true, "char32_t": true,
	"class": true, "concept": true, "const": true, "consteval": true,
	"constexpr": true, "constinit": true, "const_cast": true,
	"continue": true, "co_await": true, "co_return": true, "co_yield": true,
	"decltype": true, "default": true, "delete": true, "do": true,
	"double": true, "dynamic_cast": true, "else": true, "enum": true,
	"explicit": true, "export": true, "extern": true, "false": true,
	"final": true, "float": true, "for": true, "friend": true,
	"goto": true, "if": true, "inline": true, "int": true, "long": true,
	"mutable": true, "namespace": true, "new": true, "noexcept": true,
	"nullptr": true, "operator": true, "override": true,
	"private": true, "protected": true, "public": true,
	"register": true, "reinterpret_cast": true, "requires": true,
	"return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "static_assert": true, "static_cast": true,
	"struct": true, "switch": true, "template": true, "this": true,
	"thread_local": true, "throw": true, "true": true, "try": true,
	"typedef": true, "typeid": true, "typename": true, "union": true,
	"unsigned": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "wchar_t": true, "while": true,
}

// FundamentalKeywords are the keywords that may combine to form a
// fundamental type specifier ("unsigned long long", "signed char", ...).
var FundamentalKeywords = map[string]bool{
	"unsigned": true, "signed": true, "short": true, "int": true,
	"long": true, "float": true, "double": true, "char": true,
}

// Fundamentals also includes the keywords that denote a complete
// fundamental type on their own.
var Fundamentals = func() map[string]bool {
	m := map[string]bool{
		"bool": true, "char16_t": true, "char32_t": true, "char8_t": true,
		"wchar_t": true, "void": true,
	}
	for k := range FundamentalKeywords {
		m[k] = true
	}

	return m
}()

// ClassKeys are the keywords that introduce an elaborated class-key.
var ClassKeys = map[string]bool{"class": true, "struct": true, "union": true, "enum": true}
