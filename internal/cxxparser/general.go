package cxxparser

import (
	"strings"

	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
	"github.com/cppdecl/cxxheaderparser/internal/diagnostic"
	"github.com/cppdecl/cxxheaderparser/internal/position"
)

// parseGeneralDeclaration is the fallback production: a decl-specifier-
// seq followed by one or more comma-separated declarators, finalized as
// variables, typedefs, or functions (including constructors, destructors,
// conversion operators, and overloaded operators, all of which a
// declarator-id alone can't distinguish from an ordinary name until the
// decl-specifier-seq and declarator are considered together). tmpl is
// non-nil when reached via "template<...> ...".
func (p *Parser) parseGeneralDeclaration(attrs []cxxtypes.Attribute, tmpl *cxxtypes.TemplateParameterList) (cxxtypes.Declaration, error) {
	start := p.stream.Peek(0)
	doxy := p.stream.Doxygen(0)

	ds, err := p.parseDeclSpecifierSeq()
	if err != nil {
		return nil, err
	}

	ds.Attrs = append(attrs, ds.Attrs...)

	if ds.Type == nil {
		if !p.stream.Peek(0).Is("~", "operator") {
			return nil, p.fail(diagnostic.UnexpectedToken, "declaration", "expected a declaration, found %q", p.stream.Peek(0).Spelling)
		}

		// An in-class short-form destructor ("~Widget();") or conversion
		// operator ("operator int() const;") carries no separate return
		// type; the declarator-id itself is "~Name"/"operator T", so a
		// placeholder base is only there to give the declarator's suffix
		// builder something to call Span() on before Kind-specific fields
		// overwrite it.
		ds.Type = cxxtypes.NewAutoType(start.Span)
	}

	var first cxxtypes.Declaration

	for i := 0; ; i++ {
		t, name, err := p.parseDeclarator(ds.Type)
		if err != nil {
			return nil, err
		}

		d, hadBody, err := p.finishOneDeclarator(start, ds, tmpl, doxy, t, name)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			first = d
		} else if d != nil {
			p.extraDecls = append(p.extraDecls, d)
		}

		if hadBody {
			return first, nil
		}

		if p.stream.Peek(0).Is(",") {
			p.stream.Next()

			continue
		}

		break
	}

	if _, err := p.expectPunct("declaration", ";"); err != nil {
		return nil, err
	}

	return first, nil
}

// finishOneDeclarator routes a parsed (type, declarator-id) pair to the
// function or variable/typedef finalizer depending on whether the
// declarator built a function type. hadBody is true only when a function
// definition's body was consumed, in which case the caller must not also
// look for a statement-terminating ';'.
func (p *Parser) finishOneDeclarator(start cxxtoken.Token, ds *declSpecifiers, tmpl *cxxtypes.TemplateParameterList, doxy string, t cxxtypes.Type, name cxxtypes.QualifiedName) (cxxtypes.Declaration, bool, error) {
	if ft, ok := t.(cxxtypes.FunctionType); ok {
		return p.finishFunctionDeclarator(start, ds, tmpl, doxy, ft, name)
	}

	return p.finishVariableDeclarator(start, ds, doxy, t, name)
}

// resolveFunctionIdentity decides a function declarator's Kind, its name,
// and its effective return type. A declarator that carried its own
// declarator-id (the common case) is classified by that id's last
// segment. A declarator with an empty id means the whole identity was
// folded into declType while parsing the decl-specifier-seq: that only
// happens for "ClassName(...)" (constructor) and, when written with an
// explicit scope qualifier, "Class::~Class(...)" and
// "Class::operator T()" (destructor/conversion, which otherwise reach the
// first branch directly via their own "~"/"operator" declarator-id).
func resolveFunctionIdentity(declType cxxtypes.Type, declName cxxtypes.QualifiedName, ft cxxtypes.FunctionType) (cxxtypes.FunctionKind, cxxtypes.QualifiedName, cxxtypes.Type) {
	if len(declName.Segments) > 0 {
		switch v := declName.Segments[len(declName.Segments)-1].(type) {
		case cxxtypes.DestructorSegment:
			return cxxtypes.FunctionDestructor, declName, nil
		case cxxtypes.ConversionOperatorSegment:
			return cxxtypes.FunctionConversion, declName, v.Target
		case cxxtypes.OperatorSegment:
			if strings.HasPrefix(v.Spelling, `""`) {
				return cxxtypes.FunctionUserDefinedLiteral, declName, ft.Return
			}

			return cxxtypes.FunctionOperator, declName, ft.Return
		default:
			return cxxtypes.FunctionNormal, declName, ft.Return
		}
	}

	if nt, ok := declType.(cxxtypes.NamedType); ok && len(nt.Name.Segments) > 0 {
		switch v := nt.Name.Segments[len(nt.Name.Segments)-1].(type) {
		case cxxtypes.DestructorSegment:
			return cxxtypes.FunctionDestructor, nt.Name, nil
		case cxxtypes.ConversionOperatorSegment:
			return cxxtypes.FunctionConversion, nt.Name, v.Target
		default:
			return cxxtypes.FunctionConstructor, nt.Name, nil
		}
	}

	return cxxtypes.FunctionNormal, declName, ft.Return
}

func (p *Parser) finishFunctionDeclarator(start cxxtoken.Token, ds *declSpecifiers, tmpl *cxxtypes.TemplateParameterList, doxy string, ft cxxtypes.FunctionType, name cxxtypes.QualifiedName) (cxxtypes.Declaration, bool, error) {
	fd := &cxxtypes.FunctionDecl{
		Common:      cxxtypes.Common{Sp: start.Span.Union(ft.Span()), Scope: p.scope.Current(), Attrs: ds.Attrs, Doxygen: doxy, Template: tmpl},
		Signature:   ft,
		IsVirtual:   ds.IsVirtual,
		IsExplicit:  ds.IsExplicit,
		IsConstexpr: ds.ConstexprKind == "constexpr",
		IsConsteval: ds.ConstexprKind == "consteval",
		IsConstinit: ds.ConstexprKind == "constinit",
		IsStatic:    ds.Storage == "static",
		IsInline:    ds.IsInline,
	}

	fd.Kind, fd.Name, fd.ReturnType = resolveFunctionIdentity(ds.Type, name, ft)
	fd.Signature.Return = fd.ReturnType

	if ds.CallingConvention != "" {
		fd.Signature = fd.Signature.WithMSVCConvention(ds.CallingConvention)
	}

	for {
		switch {
		case p.stream.Peek(0).Is("override"):
			fd.IsOverride = true
			p.stream.Next()
		case p.stream.Peek(0).Is("final"):
			fd.IsFinal = true
			p.stream.Next()
		default:
			goto specifiersDone
		}
	}

specifiersDone:

	if p.stream.Peek(0).Is("=") {
		p.stream.Next()

		switch {
		case p.stream.Peek(0).Is("default"):
			p.stream.Next()

			fd.IsDefault = true
		case p.stream.Peek(0).Is("delete"):
			p.stream.Next()

			fd.IsDeleted = true
		default:
			// "= 0", the pure-virtual specifier; the expression is always
			// the literal 0, so nothing further needs capturing.
			captureUntil(p, terminatorSet(";", "{"))

			fd.IsPure = true
		}
	}

	if p.stream.Peek(0).Is(":") && fd.Kind == cxxtypes.FunctionConstructor {
		p.stream.Next()

		inits, err := p.parseMemberInitializerList()
		if err != nil {
			return nil, false, err
		}

		fd.MemberInitializers = inits
	}

	if p.stream.Peek(0).Is("{") {
		toks, sp, err := p.consumeBraced()
		if err != nil {
			return nil, false, err
		}

		fd.HasBody = true
		fd.Sp = fd.Sp.Union(sp)

		if p.opts.MethodBody == RetainMethodBodyTokens {
			fd.BodyTokens = toks
		}

		p.visitor.OnFunction(fd)

		return fd, true, nil
	}

	p.visitor.OnFunction(fd)

	return fd, false, nil
}

func (p *Parser) finishVariableDeclarator(start cxxtoken.Token, ds *declSpecifiers, doxy string, t cxxtypes.Type, name cxxtypes.QualifiedName) (cxxtypes.Declaration, bool, error) {
	if ds.IsTypedef {
		td := &cxxtypes.TypedefDecl{
			Common: cxxtypes.Common{Sp: start.Span.Union(t.Span()), Scope: p.scope.Current(), Attrs: ds.Attrs, Doxygen: doxy},
			Name:   firstPlainName(name),
			Type:   t,
		}

		p.scope.DeclareType(td.Name)
		p.visitor.OnTypedef(td)

		return td, false, nil
	}

	vd := &cxxtypes.VariableDecl{
		Common:        cxxtypes.Common{Sp: start.Span.Union(t.Span()), Scope: p.scope.Current(), Attrs: ds.Attrs, Doxygen: doxy},
		Type:          t,
		Name:          firstPlainName(name),
		IsStatic:      ds.Storage == "static",
		IsExtern:      ds.Storage == "extern",
		IsConstexpr:   ds.ConstexprKind == "constexpr",
		IsInline:      ds.IsInline,
		IsThreadLocal: ds.IsThreadLocal,
		Access:        p.scope.Access(),
	}

	if p.stream.Peek(0).Is(":") {
		p.stream.Next()

		vd.BitfieldWidth = captureUntil(p, terminatorSet(",", ";"))

		if len(vd.BitfieldWidth) > 0 {
			vd.Sp = vd.Sp.Union(vd.BitfieldWidth[len(vd.BitfieldWidth)-1].Span)
		}
	}

	switch {
	case p.stream.Peek(0).Is("="):
		p.stream.Next()

		vd.InitializerTokens = captureUntil(p, terminatorSet(",", ";"))
	case p.stream.Peek(0).Is("{"):
		vd.InitializerTokens = captureUntil(p, terminatorSet(",", ";"))
	}

	if len(vd.InitializerTokens) > 0 {
		vd.Sp = vd.Sp.Union(vd.InitializerTokens[len(vd.InitializerTokens)-1].Span)
	}

	p.visitor.OnVariable(vd)

	return vd, false, nil
}

// parseMemberInitializerList parses a constructor's ": base(args),
// field{...}, other(args)" list, cursor just past the ':'.
func (p *Parser) parseMemberInitializerList() ([]cxxtypes.MemberInitializer, error) {
	var inits []cxxtypes.MemberInitializer

	for {
		target, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}

		var (
			args []cxxtoken.Token
			end  = target.Sp
		)

		switch {
		case p.stream.Peek(0).Is("("):
			toks, ok := p.stream.CollectBalanced()
			if !ok {
				return nil, p.fail(diagnostic.UnbalancedDelimiter, "member initializer", "unterminated initializer")
			}

			args = toks
		case p.stream.Peek(0).Is("{"):
			toks, sp, err := p.consumeBraced()
			if err != nil {
				return nil, err
			}

			args = toks
			end = sp
		}

		inits = append(inits, cxxtypes.MemberInitializer{Target: target, Args: args, Sp: target.Sp.Union(end)})

		if p.stream.Peek(0).Is(",") {
			p.stream.Next()

			continue
		}

		return inits, nil
	}
}

// consumeBraced consumes a balanced "{...}" run, cursor on the opening
// '{', returning the tokens strictly between the braces and the span
// covering both delimiters. Used for function bodies and brace-init
// member initializers alike.
func (p *Parser) consumeBraced() ([]cxxtoken.Token, position.Span, error) {
	open := p.stream.Next() // '{'

	depth := 1

	var toks []cxxtoken.Token

	for {
		tok := p.stream.Peek(0)

		if tok.Kind == cxxtoken.Eof {
			return nil, position.Span{}, p.fail(diagnostic.UnbalancedDelimiter, "braced block", "unterminated '{'")
		}

		switch tok.Spelling {
		case "{":
			depth++
		case "}":
			depth--

			if depth == 0 {
				p.stream.Next()

				return toks, open.Span.Union(tok.Span), nil
			}
		}

		toks = append(toks, tok)
		p.stream.Next()
	}
}
