package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
)

// dumper writes a colorized, indented, width-wrapped rendering of a
// declaration tree. Build one with newDumper; a width of 0 or less
// disables wrapping.
type dumper struct {
	w       io.Writer
	out     *termenv.Output
	width   int
	keyword func(...string) termenv.Style
	name    func(...string) termenv.Style
	comment func(...string) termenv.Style
}

func newDumper(w io.Writer, out *termenv.Output, width int) *dumper {
	return &dumper{
		w:       w,
		out:     out,
		width:   width,
		keyword: out.String,
		name:    out.String,
		comment: out.String,
	}
}

func (d *dumper) dumpAll(decls []cxxtypes.Declaration) {
	for _, decl := range decls {
		d.dump(decl, 0)
	}
}

func (d *dumper) dump(decl cxxtypes.Declaration, depth int) {
	indent := strings.Repeat("  ", depth)

	switch v := decl.(type) {
	case *cxxtypes.NamespaceDecl:
		kw := "namespace"
		if v.IsInline {
			kw = "inline namespace"
		}

		name := "<anonymous>"
		if v.Name != nil {
			name = v.Name.String()
		}

		d.line(indent, d.kw(kw)+" "+d.nm(name)+" {")

		for _, c := range v.Body {
			d.dump(c, depth+1)
		}

		d.line(indent, "}")

	case *cxxtypes.ClassDecl:
		name := "<anonymous>"
		if v.Name != nil {
			name = v.Name.String()
		}

		suffix := ""
		if v.IsForward {
			suffix = ";"
		}

		d.line(indent, d.kw(v.Key)+" "+d.nm(name)+d.bases(v.Bases)+suffix)

		if !v.IsForward {
			d.line(indent, "{")

			for _, m := range v.Body {
				d.dump(m, depth+1)
			}

			d.line(indent, "};")
		}

	case *cxxtypes.ExternBlockDecl:
		d.line(indent, d.kw("extern")+" \""+v.Linkage+"\" {")

		for _, c := range v.Body {
			d.dump(c, depth+1)
		}

		d.line(indent, "}")

	case *cxxtypes.FunctionDecl:
		d.line(indent, d.renderFunction(v))

	case *cxxtypes.VariableDecl:
		d.line(indent, renderType(v.Type)+" "+d.nm(v.Name)+";")

	case *cxxtypes.TypedefDecl:
		d.line(indent, d.kw("typedef")+" "+renderType(v.Type)+" "+d.nm(v.Name)+";")

	case *cxxtypes.UsingAliasDecl:
		d.line(indent, d.kw("using")+" "+d.nm(v.Name)+" = "+renderType(v.Type)+";")

	case *cxxtypes.UsingDeclarationDecl:
		d.line(indent, d.kw("using")+" "+v.Name.String()+";")

	case *cxxtypes.UsingDirectiveDecl:
		d.line(indent, d.kw("using namespace")+" "+v.Name.String()+";")

	case *cxxtypes.UsingEnumDecl:
		d.line(indent, d.kw("using enum")+" "+v.Name.String()+";")

	case *cxxtypes.EnumDecl:
		d.dumpEnum(v, indent)

	case *cxxtypes.FriendDecl:
		d.line(indent, d.kw("friend")+" "+d.renderFriend(v))

	case *cxxtypes.StaticAssertDecl:
		d.line(indent, d.kw("static_assert")+"("+renderTokens(v.Expression)+");")

	case *cxxtypes.NamespaceAliasDecl:
		d.line(indent, d.kw("namespace")+" "+v.Name+" = "+v.Target.String()+";")

	case *cxxtypes.ConceptDecl:
		d.line(indent, d.kw("concept")+" "+d.nm(v.Name)+" = "+renderTokens(v.Constraint)+";")

	case *cxxtypes.DefineDecl:
		d.line(indent, d.comment(v.Raw).String())

	case *cxxtypes.IncludeDecl:
		d.line(indent, d.comment(v.Raw).String())

	case *cxxtypes.PragmaDecl:
		d.line(indent, d.comment(v.Raw).String())

	case *cxxtypes.PragmaOrIncludeLineDecl:
		d.line(indent, d.comment(v.Raw).String())

	default:
		d.line(indent, fmt.Sprintf("<%T>", v))
	}
}

func (d *dumper) dumpEnum(v *cxxtypes.EnumDecl, indent string) {
	kw := "enum"
	if v.IsScoped {
		kw = "enum class"
	}

	name := "<anonymous>"
	if v.Name != nil {
		name = v.Name.String()
	}

	underlying := ""
	if v.UnderlyingType != nil {
		underlying = " : " + renderType(v.UnderlyingType)
	}

	if v.IsForward {
		d.line(indent, d.kw(kw)+" "+d.nm(name)+underlying+";")

		return
	}

	d.line(indent, d.kw(kw)+" "+d.nm(name)+underlying+" {")

	for _, e := range v.Enumerators {
		val := ""
		if len(e.ValueTokens) > 0 {
			val = " = " + renderTokens(e.ValueTokens)
		}

		d.line(indent+"  ", e.Name+val+",")
	}

	d.line(indent, "};")
}

func (d *dumper) renderFunction(v *cxxtypes.FunctionDecl) string {
	var b strings.Builder

	if v.IsStatic {
		b.WriteString(d.kw("static") + " ")
	}

	if v.IsVirtual {
		b.WriteString(d.kw("virtual") + " ")
	}

	if v.IsExplicit {
		b.WriteString(d.kw("explicit") + " ")
	}

	if v.IsConstexpr {
		b.WriteString(d.kw("constexpr") + " ")
	}

	if v.IsConsteval {
		b.WriteString(d.kw("consteval") + " ")
	}

	if v.ReturnType != nil {
		b.WriteString(renderType(v.ReturnType))
		b.WriteString(" ")
	}

	b.WriteString(d.nm(v.Name.String()))
	b.WriteString("(")
	b.WriteString(renderParams(v.Signature.Params, v.Signature.IsVariadic))
	b.WriteString(")")
	b.WriteString(renderCV(v.Signature.Qualifiers()))

	if v.IsOverride {
		b.WriteString(" " + d.kw("override"))
	}

	if v.IsFinal {
		b.WriteString(" " + d.kw("final"))
	}

	if v.IsPure {
		b.WriteString(" = 0")
	} else if v.IsDefault {
		b.WriteString(" = default")
	} else if v.IsDeleted {
		b.WriteString(" = delete")
	}

	b.WriteString(";")

	if v.Kind != cxxtypes.FunctionNormal {
		b.WriteString("  " + d.comment("// "+kindLabel(v.Kind)).String())
	}

	return b.String()
}

func (d *dumper) renderFriend(v *cxxtypes.FriendDecl) string {
	switch v.TargetKind {
	case cxxtypes.FriendClass:
		name := "<anonymous>"
		if v.Class != nil && v.Class.Name != nil {
			name = v.Class.Name.String()
		}

		return d.kw("class") + " " + name + ";"
	case cxxtypes.FriendFunction:
		if v.Function != nil {
			return d.renderFunction(v.Function)
		}

		return ";"
	default:
		return renderType(v.Type) + ";"
	}
}

func (d *dumper) bases(bases []cxxtypes.Base) string {
	if len(bases) == 0 {
		return ""
	}

	parts := make([]string, len(bases))

	for i, b := range bases {
		s := b.Access.String() + " " + renderType(b.Type)
		if b.IsVirtual {
			s = "virtual " + s
		}

		if b.IsPack {
			s += "..."
		}

		parts[i] = s
	}

	return " : " + strings.Join(parts, ", ")
}

func (d *dumper) kw(s string) string { return d.keyword(s).Bold().String() }
func (d *dumper) nm(s string) string { return d.name(s).Foreground(termenv.ANSICyan).String() }

// line writes one declaration line, wrapping it to d.width if it would
// overflow and d.width is positive.
func (d *dumper) line(indent, text string) {
	fmt.Fprintln(d.w, wrap(indent, text, d.width))
}
