package cxxparser

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
	"github.com/cppdecl/cxxheaderparser/internal/diagnostic"
)

// parseUsing dispatches among the four "using"-led productions:
// "using ns::name;" (using-declaration), "using namespace ns;"
// (using-directive), "using enum ns::E;" (C++20 using-enum-declaration),
// and "using Name = Type;" (alias-declaration).
func (p *Parser) parseUsing(attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	start := p.stream.Next() // 'using'

	switch {
	case p.stream.Peek(0).Is("namespace"):
		return p.parseUsingDirective(start, attrs)
	case p.stream.Peek(0).Is("enum"):
		return p.parseUsingEnum(start, attrs)
	case p.stream.Peek(0).Kind == cxxtoken.Identifier && p.stream.Peek(1).Is("="):
		return p.parseUsingAlias(start, nil, attrs)
	default:
		return p.parseUsingDeclaration(start, attrs)
	}
}

func (p *Parser) parseUsingDirective(start cxxtoken.Token, attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	p.stream.Next() // 'namespace'

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	end, err := p.expectPunct("using-directive", ";")
	if err != nil {
		return nil, err
	}

	decl := &cxxtypes.UsingDirectiveDecl{
		Common: cxxtypes.Common{Sp: start.Span.Union(end.Span), Scope: p.scope.Current(), Attrs: attrs, Doxygen: p.stream.Doxygen(0)},
		Name:   name,
	}

	p.visitor.OnUsingDirective(decl)

	return decl, nil
}

func (p *Parser) parseUsingEnum(start cxxtoken.Token, attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	p.stream.Next() // 'enum'

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	end, err := p.expectPunct("using-enum-declaration", ";")
	if err != nil {
		return nil, err
	}

	decl := &cxxtypes.UsingEnumDecl{
		Common: cxxtypes.Common{Sp: start.Span.Union(end.Span), Scope: p.scope.Current(), Attrs: attrs, Doxygen: p.stream.Doxygen(0)},
		Name:   name,
	}

	p.visitor.OnUsingEnum(decl)

	return decl, nil
}

func (p *Parser) parseUsingDeclaration(start cxxtoken.Token, attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	end, err := p.expectPunct("using-declaration", ";")
	if err != nil {
		return nil, err
	}

	if last := lastPlainOrTemplateName(name); last != "" {
		p.scope.DeclareType(last)
	}

	decl := &cxxtypes.UsingDeclarationDecl{
		Common: cxxtypes.Common{Sp: start.Span.Union(end.Span), Scope: p.scope.Current(), Attrs: attrs, Doxygen: p.stream.Doxygen(0)},
		Name:   name,
	}

	p.visitor.OnUsingDeclaration(decl)

	return decl, nil
}

// parseUsingAlias parses "using Name = Type;", possibly carrying a
// template parameter list (alias template) supplied by the caller when
// this was reached via "template<...> using ...;".
func (p *Parser) parseUsingAlias(start cxxtoken.Token, tmpl *cxxtypes.TemplateParameterList, attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	nameTok, err := p.expectIdentifier("alias-declaration")
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunct("alias-declaration", "="); err != nil {
		return nil, err
	}

	attrs = append(attrs, p.parseAttributeSeqMaybe()...)

	ds, err := p.parseDeclSpecifierSeq()
	if err != nil {
		return nil, err
	}

	if ds.Type == nil {
		return nil, p.fail(diagnostic.UnexpectedToken, "alias-declaration", "expected a type after '='")
	}

	t, _, ok := p.parseAbstractDeclarator(ds.Type)
	if ok {
		ds.Type = t
	}

	end, err := p.expectPunct("alias-declaration", ";")
	if err != nil {
		return nil, err
	}

	p.scope.DeclareType(nameTok.Spelling)

	decl := &cxxtypes.UsingAliasDecl{
		Common: cxxtypes.Common{Sp: start.Span.Union(end.Span), Scope: p.scope.Current(), Attrs: attrs, Doxygen: p.stream.Doxygen(0), Template: tmpl},
		Name:   nameTok.Spelling,
		Type:   ds.Type,
	}

	p.visitor.OnUsingAlias(decl)

	return decl, nil
}

func lastPlainOrTemplateName(qn cxxtypes.QualifiedName) string {
	if len(qn.Segments) == 0 {
		return ""
	}

	switch v := qn.Segments[len(qn.Segments)-1].(type) {
	case cxxtypes.PlainSegment:
		return v.Name
	case cxxtypes.TemplateIDSegment:
		return v.Name
	default:
		return ""
	}
}
