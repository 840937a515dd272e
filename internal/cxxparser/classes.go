package cxxparser

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
)

// parseClassOrElaborated parses a class/struct/union-specifier: either a
// forward declaration ("class X;"), an elaborated-type-specifier
// appearing where a declaration was expected (handled the same way,
// since the caller distinguishes that case via friendOnly/
// looksLikeElaboratedMember before ever reaching here), or a full
// definition with a base-clause and member-specification. It calls
// parseClass with a nil template parameter list; parseClass's tmpl is
// non-nil when reached via "template<...> class ...".
func (p *Parser) parseClassOrElaborated(attrs []cxxtypes.Attribute, friendOnly bool) (cxxtypes.Declaration, error) {
	return p.parseClass(attrs, nil, friendOnly)
}

func (p *Parser) parseClass(attrs []cxxtypes.Attribute, tmpl *cxxtypes.TemplateParameterList, friendOnly bool) (cxxtypes.Declaration, error) {
	start := p.stream.Next() // class/struct/union
	key := start.Spelling

	attrs = append(attrs, p.parseAttributeSeqMaybe()...)

	var name *cxxtypes.QualifiedName

	if p.stream.Peek(0).Kind == cxxtoken.Identifier {
		qn, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}

		name = &qn
	}

	if name == nil {
		name = p.nextAnonymousName(start.Span)
	}

	cd := &cxxtypes.ClassDecl{
		Common: cxxtypes.Common{Sp: start.Span, Scope: p.scope.Current(), Attrs: attrs, Doxygen: p.stream.Doxygen(0), Template: tmpl},
		Key:    key,
		Name:   name,
	}

	if p.stream.Peek(0).Is("final") {
		cd.IsFinal = true
		p.stream.Next()
	}

	if last := lastPlainOrTemplateName(*name); last != "" {
		p.scope.DeclareType(last)
	}

	if friendOnly || p.stream.Peek(0).Is(";") {
		end, err := p.expectPunct("class", ";")
		if err != nil {
			return nil, err
		}

		cd.IsForward = true
		cd.Sp = start.Span.Union(end.Span)

		return cd, nil
	}

	defaultAccess := cxxtypes.Public
	if key == "class" {
		defaultAccess = cxxtypes.Private
	}

	if p.stream.Peek(0).Is(":") {
		p.stream.Next()

		bases, err := p.parseBaseClause(defaultAccess)
		if err != nil {
			return nil, err
		}

		cd.Bases = bases
	}

	if _, err := p.expectPunct("class", "{"); err != nil {
		return nil, err
	}

	scopeName := ""
	if name != nil {
		scopeName = name.String()
	}

	p.scope.Push(cxxtypes.ClassScope, scopeName, defaultAccess)

	p.visitor.EnterClass(cd)

	body, err := p.parseDeclarationSeq(false)

	p.scope.Pop()

	if err != nil {
		return nil, err
	}

	cd.Body = body

	if _, err := p.expectPunct("class", "}"); err != nil {
		return nil, err
	}

	end, err := p.expectPunct("class", ";")
	if err != nil {
		return nil, err
	}

	cd.Sp = start.Span.Union(end.Span)

	p.visitor.ExitClass(cd)

	return cd, nil
}

// parseBaseClause parses "base-specifier-list" after a class-head's ':',
// up to (not including) the member-specification's opening '{'.
// defaultAccess is what an unqualified base-specifier gets when it
// carries no "public"/"protected"/"private" keyword of its own: private
// for a "class" head, public for "struct"/"union", same as the
// enclosing class-key's default for its members.
func (p *Parser) parseBaseClause(defaultAccess cxxtypes.Access) ([]cxxtypes.Base, error) {
	var bases []cxxtypes.Base

	for {
		start := p.stream.Peek(0)

		access := defaultAccess
		isVirtual := false

		for {
			switch {
			case p.stream.Peek(0).Is("virtual"):
				isVirtual = true
				p.stream.Next()
			case p.stream.Peek(0).Is("public"):
				access = cxxtypes.Public
				p.stream.Next()
			case p.stream.Peek(0).Is("protected"):
				access = cxxtypes.Protected
				p.stream.Next()
			case p.stream.Peek(0).Is("private"):
				access = cxxtypes.Private
				p.stream.Next()
			default:
				goto doneSpecifiers
			}
		}

	doneSpecifiers:
		t, err := p.parseTypeSpecifier()
		if err != nil {
			return nil, err
		}

		isPack := false
		if p.stream.Peek(0).Is("...") {
			p.stream.Next()

			isPack = true
		}

		bases = append(bases, cxxtypes.Base{
			Access: access, IsVirtual: isVirtual, Type: t, IsPack: isPack,
			Sp: start.Span.Union(t.Span()),
		})

		if p.stream.Peek(0).Is(",") {
			p.stream.Next()

			continue
		}

		return bases, nil
	}
}
