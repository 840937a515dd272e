package main

import (
	"strings"

	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
)

// renderTokens re-joins an opaque token run with single spaces, the same
// "good enough for a dump, not a pretty-printer" fidelity the rest of the
// CLI's rendering aims for.
func renderTokens(toks []cxxtoken.Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Spelling
	}

	return strings.Join(parts, " ")
}

// renderType renders a Type node as a C++ declaration would spell it,
// minus a declarator name (callers that have one append it after the
// rendered type).
func renderType(t cxxtypes.Type) string {
	if t == nil {
		return ""
	}

	cv := renderCV(t.Qualifiers())

	switch v := t.(type) {
	case cxxtypes.FundamentalType:
		return joinCV(cv, v.Spelling)
	case cxxtypes.NamedType:
		name := v.Name.String()
		if v.ElaboratedKey != "" {
			name = v.ElaboratedKey + " " + name
		}
		if v.IsTypename {
			name = "typename " + name
		}

		return joinCV(cv, name)
	case cxxtypes.AutoType:
		return joinCV(cv, "auto")
	case cxxtypes.DecltypeAutoType:
		return "decltype(auto)"
	case cxxtypes.DecltypeType:
		return "decltype(" + renderTokens(v.Expr) + ")"
	case cxxtypes.PointerType:
		return joinCV(cv, renderType(v.Inner)+" *")
	case cxxtypes.ReferenceType:
		return renderType(v.Inner) + " " + v.Kind.String()
	case cxxtypes.ArrayType:
		size := renderTokens(v.SizeTokens)

		return renderType(v.Inner) + "[" + size + "]"
	case cxxtypes.FunctionType:
		return renderFunctionType(v)
	case cxxtypes.MemberPointerType:
		return renderType(v.Inner) + " " + renderType(v.Class) + "::*"
	case cxxtypes.PackType:
		return renderType(v.Inner) + "..."
	default:
		return "<?>"
	}
}

func renderFunctionType(ft cxxtypes.FunctionType) string {
	var b strings.Builder

	if ft.MSVCConvention != "" {
		b.WriteString(ft.MSVCConvention)
		b.WriteString(" ")
	}

	b.WriteString(renderType(ft.Return))
	b.WriteString(" (")
	b.WriteString(renderParams(ft.Params, ft.IsVariadic))
	b.WriteString(")")
	b.WriteString(renderCV(ft.Qualifiers()))

	if ft.RefQual != cxxtypes.RefNone {
		b.WriteString(" ")
		b.WriteString(ft.RefQual.String())
	}

	if ft.Noexcept.Present {
		b.WriteString(" noexcept")
		if len(ft.Noexcept.Condition) > 0 {
			b.WriteString("(")
			b.WriteString(renderTokens(ft.Noexcept.Condition))
			b.WriteString(")")
		}
	}

	if ft.DynamicThrowSpec != nil {
		b.WriteString(" throw(")
		b.WriteString(renderTokens(ft.DynamicThrowSpec))
		b.WriteString(")")
	}

	if ft.TrailingReturn != nil {
		b.WriteString(" -> ")
		b.WriteString(renderType(ft.TrailingReturn))
	}

	return b.String()
}

func renderParams(params []cxxtypes.Parameter, variadic bool) string {
	parts := make([]string, 0, len(params)+1)

	for _, p := range params {
		s := renderType(p.Type)
		if p.Name != "" {
			s += " " + p.Name
		}

		if p.IsPack {
			s += "..."
		}

		if len(p.DefaultTokens) > 0 {
			s += " = " + renderTokens(p.DefaultTokens)
		}

		parts = append(parts, s)
	}

	if variadic {
		parts = append(parts, "...")
	}

	return strings.Join(parts, ", ")
}

func renderCV(cv cxxtypes.CV) string {
	s := ""
	if cv.Const {
		s += " const"
	}

	if cv.Volatile {
		s += " volatile"
	}

	return s
}

func joinCV(cv, s string) string {
	if cv == "" {
		return s
	}

	return s + cv
}

func kindLabel(k cxxtypes.FunctionKind) string {
	switch k {
	case cxxtypes.FunctionConstructor:
		return "ctor"
	case cxxtypes.FunctionDestructor:
		return "dtor"
	case cxxtypes.FunctionConversion:
		return "conversion"
	case cxxtypes.FunctionOperator:
		return "operator"
	case cxxtypes.FunctionUserDefinedLiteral:
		return "udl"
	default:
		return "func"
	}
}
