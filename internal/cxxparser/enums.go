package cxxparser

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
)

// parseEnum parses an enum-specifier at declaration scope: "enum Name
// [: UnderlyingType] { Enumerators };", the scoped forms "enum class"
// and "enum struct", and a forward declaration "enum Name : Type;" with
// no enumerator-list. tmpl is always nil: the only caller,
// parseOneDeclaration, passes nil, and parseTemplate does not dispatch
// here.
func (p *Parser) parseEnum(attrs []cxxtypes.Attribute, tmpl *cxxtypes.TemplateParameterList) (cxxtypes.Declaration, error) {
	start := p.stream.Next() // 'enum'

	isScoped := false
	if p.stream.Peek(0).Is("class", "struct") {
		isScoped = true
		p.stream.Next()
	}

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

	var underlying cxxtypes.Type

	if p.stream.Peek(0).Is(":") {
		p.stream.Next()

		t, err := p.parseTypeSpecifier()
		if err != nil {
			return nil, err
		}

		underlying = t
	}

	ed := &cxxtypes.EnumDecl{
		Common:         cxxtypes.Common{Sp: start.Span, Scope: p.scope.Current(), Attrs: attrs, Doxygen: p.stream.Doxygen(0), Template: tmpl},
		Name:           name,
		IsScoped:       isScoped,
		UnderlyingType: underlying,
	}

	if !p.stream.Peek(0).Is("{") {
		end, err := p.expectPunct("enum", ";")
		if err != nil {
			return nil, err
		}

		ed.IsForward = true
		ed.Sp = start.Span.Union(end.Span)

		p.declareEnumName(name)

		p.visitor.OnEnum(ed)

		return ed, nil
	}

	p.stream.Next() // '{'

	enumerators, err := p.parseEnumeratorList()
	if err != nil {
		return nil, err
	}

	ed.Enumerators = enumerators

	if _, err := p.expectPunct("enum", "}"); err != nil {
		return nil, err
	}

	end, err := p.expectPunct("enum", ";")
	if err != nil {
		return nil, err
	}

	ed.Sp = start.Span.Union(end.Span)

	p.declareEnumName(name)

	p.visitor.OnEnum(ed)

	return ed, nil
}

func (p *Parser) declareEnumName(name *cxxtypes.QualifiedName) {
	if last := lastPlainOrTemplateName(*name); last != "" {
		p.scope.DeclareType(last)
	}
}

func (p *Parser) parseEnumeratorList() ([]cxxtypes.Enumerator, error) {
	var enumerators []cxxtypes.Enumerator

	for {
		if p.stream.Peek(0).Is("}") {
			return enumerators, nil
		}

		nameTok, err := p.expectIdentifier("enumerator")
		if err != nil {
			return nil, err
		}

		attrs := p.parseAttributeSeqMaybe()

		var value []cxxtoken.Token

		if p.stream.Peek(0).Is("=") {
			p.stream.Next()

			value = captureUntil(p, terminatorSet(",", "}"))
		}

		enumerators = append(enumerators, cxxtypes.Enumerator{
			Name: nameTok.Spelling, Attrs: attrs, ValueTokens: value,
			Sp: nameTok.Span,
		})

		if p.stream.Peek(0).Is(",") {
			p.stream.Next()

			continue
		}

		return enumerators, nil
	}
}
