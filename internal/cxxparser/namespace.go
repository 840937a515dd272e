package cxxparser

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
)

// parseNamespace parses "namespace Name { Body }", "namespace { Body }",
// "inline namespace Name { Body }", the C++17 nested form
// "namespace A::B::C { Body }", and "namespace Name = Target;" (a
// namespace alias, dispatched here since both forms share the leading
// "namespace" keyword).
func (p *Parser) parseNamespace(attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	start := p.stream.Next() // 'namespace'

	isInline := false
	if p.stream.Peek(0).Is("inline") {
		isInline = true
		p.stream.Next()
	}

	if p.stream.Peek(0).Kind == cxxtoken.Identifier && p.stream.Peek(1).Is("=") {
		return p.parseNamespaceAlias(start, attrs)
	}

	var name *cxxtypes.QualifiedName

	isNested := false

	if p.stream.Peek(0).Kind == cxxtoken.Identifier {
		qn, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}

		name = &qn
		isNested = len(qn.Segments) > 1
	}

	if _, err := p.expectPunct("namespace", "{"); err != nil {
		return nil, err
	}

	scopeName := ""
	if name != nil {
		scopeName = name.String()
	}

	p.scope.Push(cxxtypes.NamespaceScope, scopeName, cxxtypes.Public)

	ns := &cxxtypes.NamespaceDecl{
		Common:       cxxtypes.Common{Sp: start.Span, Scope: p.scope.Current(), Attrs: attrs, Doxygen: p.stream.Doxygen(0)},
		Name:         name,
		IsInline:     isInline,
		IsNestedName: isNested,
	}

	p.visitor.EnterNamespace(ns)

	body, err := p.parseDeclarationSeq(false)

	p.scope.Pop()

	if err != nil {
		return nil, err
	}

	ns.Body = body

	end, err := p.expectPunct("namespace", "}")
	if err != nil {
		return nil, err
	}

	ns.Sp = start.Span.Union(end.Span)

	p.visitor.ExitNamespace(ns)

	return ns, nil
}

func (p *Parser) parseNamespaceAlias(start cxxtoken.Token, attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	nameTok, err := p.expectIdentifier("namespace alias")
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunct("namespace alias", "="); err != nil {
		return nil, err
	}

	target, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	end, err := p.expectPunct("namespace alias", ";")
	if err != nil {
		return nil, err
	}

	p.scope.DeclareNamespaceAlias(nameTok.Spelling)

	decl := &cxxtypes.NamespaceAliasDecl{
		Common: cxxtypes.Common{Sp: start.Span.Union(end.Span), Scope: p.scope.Current(), Attrs: attrs, Doxygen: p.stream.Doxygen(0)},
		Name:   nameTok.Spelling,
		Target: target,
	}

	p.visitor.OnNamespaceAlias(decl)

	return decl, nil
}

// parseExternBlock parses 'extern "C" { Body }' or 'extern "C" decl;'.
func (p *Parser) parseExternBlock(attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	start := p.stream.Next() // 'extern'
	linkTok := p.stream.Next()

	eb := &cxxtypes.ExternBlockDecl{
		Common:  cxxtypes.Common{Sp: start.Span, Scope: p.scope.Current(), Attrs: attrs},
		Linkage: trimQuotes(linkTok.Spelling),
	}

	if p.stream.Peek(0).Is("{") {
		p.stream.Next()

		p.visitor.EnterExternBlock(eb)

		body, err := p.parseDeclarationSeq(false)
		if err != nil {
			return nil, err
		}

		eb.Body = body

		end, err := p.expectPunct("extern block", "}")
		if err != nil {
			return nil, err
		}

		eb.Sp = start.Span.Union(end.Span)
		p.visitor.ExitExternBlock(eb)

		return eb, nil
	}

	p.visitor.EnterExternBlock(eb)

	d, err := p.parseOneDeclaration()
	if err != nil {
		return nil, err
	}

	if d != nil {
		eb.Body = []cxxtypes.Declaration{d}
		eb.Sp = start.Span.Union(d.Span())
	}

	p.visitor.ExitExternBlock(eb)

	return eb, nil
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}

func (p *Parser) parseConcept(attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	start := p.stream.Next() // 'concept'

	nameTok, err := p.expectIdentifier("concept")
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunct("concept", "="); err != nil {
		return nil, err
	}

	constraint := captureUntil(p, terminatorSet(";"))

	end, err := p.expectPunct("concept", ";")
	if err != nil {
		return nil, err
	}

	p.scope.DeclareType(nameTok.Spelling)

	cd := &cxxtypes.ConceptDecl{
		Common:     cxxtypes.Common{Sp: start.Span.Union(end.Span), Scope: p.scope.Current(), Attrs: attrs, Doxygen: p.stream.Doxygen(0)},
		Name:       nameTok.Spelling,
		Constraint: constraint,
	}

	p.visitor.OnConcept(cd)

	return cd, nil
}
