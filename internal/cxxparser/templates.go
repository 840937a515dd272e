package cxxparser

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
	"github.com/cppdecl/cxxheaderparser/internal/diagnostic"
)

// parseTemplate parses "template < template-parameter-list > decl",
// where decl is a class, function, variable, alias-declaration, or
// (rarely) a nested template. "template<...> concept Name = ...;" is
// also accepted, per Options.Concepts. An explicit specialization
// ("template<> ...") goes through the same parameter-list parser, which
// accepts an empty list; an explicit instantiation ("template class
// Foo<int>;", no angle-bracket list) goes to parseExplicitInstantiation.
func (p *Parser) parseTemplate(attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	start := p.stream.Next() // 'template'

	if p.stream.Peek(0).Kind == cxxtoken.StringLiteral || !p.stream.Peek(0).Is("<") {
		return p.parseExplicitInstantiation(start, attrs)
	}

	tmpl, err := p.parseTemplateParameterList()
	if err != nil {
		return nil, err
	}

	tmpl.Sp = start.Span.Union(tmpl.Sp)

	p.scope.Push(cxxtypes.TemplateScope, "", cxxtypes.Public)
	defer p.scope.Pop()

	for _, param := range tmpl.Params {
		switch v := param.(type) {
		case cxxtypes.TypeTemplateParameter:
			if v.Name != "" {
				p.scope.DeclareType(v.Name)
			}
		case cxxtypes.TemplateTemplateParameter:
			if v.Name != "" {
				p.scope.DeclareType(v.Name)
			}
		}
	}

	tok := p.stream.Peek(0)

	switch {
	case tok.Is("class", "struct", "union"):
		return p.parseClass(attrs, tmpl, false)
	case tok.Is("using"):
		p.stream.Next()

		return p.parseUsingAlias(start, tmpl, attrs)
	case tok.Is("template"):
		return p.parseTemplate(attrs)
	case tok.Is("concept") && p.opts.Concepts:
		cd, err := p.parseConcept(attrs)
		if err != nil {
			return nil, err
		}

		if c, ok := cd.(*cxxtypes.ConceptDecl); ok {
			c.Template = tmpl
		}

		return cd, nil
	default:
		return p.parseGeneralDeclaration(attrs, tmpl)
	}
}

// parseExplicitInstantiation handles "template class Foo<int>;" and
// "template void f<int>(int);" (no angle-bracket parameter list at all),
// recording it as an Unsupported diagnostic and skipping to the next
// recovery point: an explicit instantiation has no parameters of its
// own to model and isn't a declaration in the ordinary sense.
func (p *Parser) parseExplicitInstantiation(start cxxtoken.Token, attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	p.recoverUnsupported("template", "explicit instantiation/specialization is not modeled")
	p.skipToRecoveryPoint()

	_ = start
	_ = attrs

	return nil, nil
}

// parseTemplateParameterList parses "< template-parameter-list >"
// (cursor on '<'), plus a trailing "requires" clause if present.
func (p *Parser) parseTemplateParameterList() (*cxxtypes.TemplateParameterList, error) {
	start := p.stream.Next() // '<'

	list := &cxxtypes.TemplateParameterList{}

	if p.stream.Peek(0).Is(">") {
		end := p.stream.Next()
		list.Sp = start.Span.Union(end.Span)

		return list, p.parseTrailingRequires(list)
	}

	for {
		param, err := p.parseTemplateParameter()
		if err != nil {
			return nil, err
		}

		list.Params = append(list.Params, param)

		if p.stream.Peek(0).Is(",") {
			p.stream.Next()

			continue
		}

		break
	}

	closeOk := p.stream.Peek(0).Is(">")
	if !closeOk && p.stream.Peek(0).Is(">>") {
		p.stream.SplitShr()

		closeOk = true
	}

	if !closeOk {
		return nil, p.fail(diagnostic.UnexpectedToken, "template parameter list", "expected '>', found %q", p.stream.Peek(0).Spelling)
	}

	end := p.stream.Next()
	list.Sp = start.Span.Union(end.Span)

	return list, p.parseTrailingRequires(list)
}

func (p *Parser) parseTrailingRequires(list *cxxtypes.TemplateParameterList) error {
	if !p.stream.Peek(0).Is("requires") {
		return nil
	}

	p.stream.Next()

	list.Requires = captureUntil(p, terminatorSet("{", ";", ">"))

	return nil
}

func (p *Parser) parseTemplateParameter() (cxxtypes.TemplateParameter, error) {
	start := p.stream.Peek(0)

	switch {
	case start.Is("typename", "class"):
		return p.parseTypeTemplateParameter(start)
	case start.Is("template"):
		return p.parseTemplateTemplateParameter(start)
	default:
		return p.parseNonTypeTemplateParameter(start)
	}
}

func (p *Parser) parseTypeTemplateParameter(start cxxtoken.Token) (cxxtypes.TemplateParameter, error) {
	usesClass := start.Spelling == "class"
	p.stream.Next()

	isPack := false
	if p.stream.Peek(0).Is("...") {
		p.stream.Next()

		isPack = true
	}

	name := ""
	if p.stream.Peek(0).Kind == cxxtoken.Identifier {
		name = p.stream.Next().Spelling
	}

	var def cxxtypes.Type

	end := start

	if p.stream.Peek(0).Is("=") {
		p.stream.Next()

		t, err := p.parseTypeSpecifier()
		if err != nil {
			return nil, err
		}

		if full, _, ok := p.parseAbstractDeclarator(t); ok {
			t = full
		}

		def = t
		end = cxxtoken.Token{Span: t.Span()}
	}

	return cxxtypes.TypeTemplateParameter{
		Name: name, IsPack: isPack, Default: def, UsesClassKeyword: usesClass,
		Sp: start.Span.Union(end.Span),
	}, nil
}

func (p *Parser) parseTemplateTemplateParameter(start cxxtoken.Token) (cxxtypes.TemplateParameter, error) {
	p.stream.Next() // 'template'

	inner, err := p.parseTemplateParameterList()
	if err != nil {
		return nil, err
	}

	if p.stream.Peek(0).Is("typename", "class") {
		p.stream.Next()
	}

	isPack := false
	if p.stream.Peek(0).Is("...") {
		p.stream.Next()

		isPack = true
	}

	name := ""
	if p.stream.Peek(0).Kind == cxxtoken.Identifier {
		name = p.stream.Next().Spelling
	}

	var def *cxxtypes.QualifiedName

	end := inner.Sp

	if p.stream.Peek(0).Is("=") {
		p.stream.Next()

		qn, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}

		def = &qn
		end = qn.Sp
	}

	return cxxtypes.TemplateTemplateParameter{
		Name: name, IsPack: isPack, Params: *inner, Default: def,
		Sp: start.Span.Union(end),
	}, nil
}

func (p *Parser) parseNonTypeTemplateParameter(start cxxtoken.Token) (cxxtypes.TemplateParameter, error) {
	ds, err := p.parseDeclSpecifierSeq()
	if err != nil {
		return nil, err
	}

	if ds.Type == nil {
		return nil, p.fail(diagnostic.UnexpectedToken, "template parameter", "expected a type, found %q", p.stream.Peek(0).Spelling)
	}

	isPack := false
	if p.stream.Peek(0).Is("...") {
		p.stream.Next()

		isPack = true
	}

	t, name, err := p.parseDeclarator(ds.Type)
	if err != nil {
		return nil, err
	}

	var def []cxxtoken.Token

	end := t.Span()

	if p.stream.Peek(0).Is("=") {
		p.stream.Next()

		def = captureUntil(p, terminatorSet(",", ">"))

		if len(def) > 0 {
			end = def[len(def)-1].Span
		}
	}

	return cxxtypes.NonTypeTemplateParameter{
		Name: firstPlainName(name), Type: t, IsPack: isPack, Default: def,
		Sp: start.Span.Union(end),
	}, nil
}
