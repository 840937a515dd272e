package cxxparser

import (
	"strings"

	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
	"github.com/cppdecl/cxxheaderparser/internal/diagnostic"
)

// ptrOp is one leading pointer-operator in a ptr-declarator: "*", "&",
// "&&", or a pointer-to-member "Class::*", each with its own trailing CV.
type ptrOp struct {
	kind  string // "*", "&", "&&", "memptr"
	cv    cxxtypes.CV
	class cxxtypes.QualifiedName
}

// suffixOp is one element of a noptr-declarator's trailing suffix chain:
// an array bound or a function's parameter list plus its tail
// (cv/ref-qualifier/noexcept/attributes/trailing-return).
type suffixOp struct {
	isFunction bool
	// array
	sizeTokens []cxxtoken.Token
	// function
	params           []cxxtypes.Parameter
	variadic         bool
	cv               cxxtypes.CV
	refQual          cxxtypes.RefQualifier
	noexceptSpec     cxxtypes.NoexceptSpec
	trailingReturn   cxxtypes.Type
	dynamicThrowSpec []cxxtoken.Token
}

// declCont is a deferred declarator: given the eventual base type, it
// produces the final Type. Building declarators as continuations rather
// than concrete Types is what lets a parenthesized group's leading
// pointer-operators end up outermost in the final type while being
// lexically innermost (the "declaration mimics use" ambiguity that
// "void (*fp)(int)" exercises): the group's own continuation is composed
// around whatever suffix appears after its closing ')', not around the
// base type directly.
type declCont func(cxxtypes.Type) cxxtypes.Type

func identityCont(t cxxtypes.Type) cxxtypes.Type { return t }

// parseDeclarator parses a full ptr-declarator (with an optional name)
// and applies it to base, returning the resulting Type and the name.
func (p *Parser) parseDeclarator(base cxxtypes.Type) (cxxtypes.Type, cxxtypes.QualifiedName, error) {
	cont, name, err := p.parseDeclaratorRec()
	if err != nil {
		return nil, name, err
	}

	return cont(base), name, nil
}

// parseAbstractDeclarator is parseDeclarator's speculative form: it
// checkpoints the stream and reports ok=false, rewinding, instead of
// propagating an error.
func (p *Parser) parseAbstractDeclarator(base cxxtypes.Type) (cxxtypes.Type, cxxtypes.QualifiedName, bool) {
	mark := p.stream.Checkpoint()

	t, name, err := p.parseDeclarator(base)
	if err != nil {
		p.stream.Rewind(mark)

		return nil, cxxtypes.QualifiedName{}, false
	}

	return t, name, true
}

func (p *Parser) parseDeclaratorRec() (declCont, cxxtypes.QualifiedName, error) {
	ptrOps, err := p.collectPointerOps()
	if err != nil {
		return nil, cxxtypes.QualifiedName{}, err
	}

	var (
		innerCont declCont = identityCont
		name      cxxtypes.QualifiedName
	)

	if p.stream.Peek(0).Is("(") && p.looksLikeNestedDeclaratorParen() {
		p.stream.Next() // '('

		innerCont, name, err = p.parseDeclaratorRec()
		if err != nil {
			return nil, name, err
		}

		if _, err := p.expectPunct("declarator", ")"); err != nil {
			return nil, name, err
		}
	} else {
		name, err = p.parseDeclaratorID()
		if err != nil {
			return nil, name, err
		}
	}

	suffixes, err := p.collectSuffixes()
	if err != nil {
		return nil, name, err
	}

	suffixCont := buildSuffixCont(suffixes)
	ptrCont := buildPtrCont(ptrOps)

	return func(trueBase cxxtypes.Type) cxxtypes.Type {
		return ptrCont(innerCont(suffixCont(trueBase)))
	}, name, nil
}

// looksLikeNestedDeclaratorParen reports whether the '(' at the cursor
// opens a grouping around a nested ptr-declarator (as in "(*fp)") rather
// than a function parameter list belonging to the declarator built so
// far. The heuristic: a parameter-declaration-clause can never start
// with a bare pointer/reference operator, another '(', or a
// pointer-to-member prefix, so seeing one of those right after the '('
// means it must be a grouping paren.
func (p *Parser) looksLikeNestedDeclaratorParen() bool {
	next1 := p.stream.Peek(1)

	switch {
	case next1.Is("*", "&", "&&", "("):
		return true
	case next1.Kind == cxxtoken.Identifier && p.stream.Peek(2).Is("::"):
		return true
	default:
		return false
	}
}

func (p *Parser) parseDeclaratorID() (cxxtypes.QualifiedName, error) {
	tok := p.stream.Peek(0)
	if tok.Kind == cxxtoken.Identifier || tok.Is("~", "operator", "::") {
		return p.parseQualifiedName()
	}

	return cxxtypes.QualifiedName{}, nil
}

func (p *Parser) consumeCV() cxxtypes.CV {
	var cv cxxtypes.CV

	for {
		switch {
		case p.stream.Peek(0).Is("const"):
			cv.Const = true
			p.stream.Next()
		case p.stream.Peek(0).Is("volatile"):
			cv.Volatile = true
			p.stream.Next()
		default:
			return cv
		}
	}
}

func (p *Parser) collectPointerOps() ([]ptrOp, error) {
	var ops []ptrOp

	for {
		tok := p.stream.Peek(0)

		switch {
		case tok.Is("*"):
			p.stream.Next()
			ops = append(ops, ptrOp{kind: "*", cv: p.consumeCV()})
		case tok.Is("&"):
			p.stream.Next()
			ops = append(ops, ptrOp{kind: "&"})
		case tok.Is("&&"):
			p.stream.Next()
			ops = append(ops, ptrOp{kind: "&&"})
		case tok.Kind == cxxtoken.Identifier || tok.Is("::"):
			mark := p.stream.Checkpoint()

			qn, err := p.parseQualifiedName()
			if err == nil && p.stream.Peek(0).Is("*") {
				p.stream.Next()
				ops = append(ops, ptrOp{kind: "memptr", class: qn, cv: p.consumeCV()})

				continue
			}

			p.stream.Rewind(mark)

			return ops, nil
		default:
			return ops, nil
		}
	}
}

func buildPtrCont(ops []ptrOp) declCont {
	return func(t cxxtypes.Type) cxxtypes.Type {
		for i := len(ops) - 1; i >= 0; i-- {
			op := ops[i]

			switch op.kind {
			case "*":
				t = cxxtypes.NewPointerType(t.Span(), op.cv, t)
			case "&":
				t = cxxtypes.NewReferenceType(t.Span(), t, cxxtypes.RefLvalue)
			case "&&":
				t = cxxtypes.NewReferenceType(t.Span(), t, cxxtypes.RefRvalue)
			case "memptr":
				classType := cxxtypes.NewNamedType(op.class.Sp, op.class, false, "")
				t = cxxtypes.NewMemberPointerType(t.Span(), op.cv, classType, t)
			}
		}

		return t
	}
}

func buildSuffixCont(suffixes []suffixOp) declCont {
	return func(t cxxtypes.Type) cxxtypes.Type {
		for i := len(suffixes) - 1; i >= 0; i-- {
			s := suffixes[i]

			if !s.isFunction {
				t = cxxtypes.NewArrayType(t.Span(), t, s.sizeTokens)

				continue
			}

			ret := t
			if s.trailingReturn != nil {
				ret = s.trailingReturn
			}

			ft := cxxtypes.NewFunctionType(t.Span(), s.cv, ret, s.params, s.variadic, s.refQual, s.noexceptSpec, s.trailingReturn)
			t = ft.WithDynamicThrowSpec(s.dynamicThrowSpec)
		}

		return t
	}
}

func (p *Parser) collectSuffixes() ([]suffixOp, error) {
	var ops []suffixOp

	for {
		tok := p.stream.Peek(0)

		switch {
		case tok.Is("["):
			p.stream.Next()

			var size []cxxtoken.Token
			if !p.stream.Peek(0).Is("]") {
				size = captureUntil(p, terminatorSet("]"))
			}

			if _, err := p.expectPunct("array declarator", "]"); err != nil {
				return nil, err
			}

			ops = append(ops, suffixOp{sizeTokens: size})
		case tok.Is("("):
			suf, err := p.parseFunctionSuffix()
			if err != nil {
				return nil, err
			}

			ops = append(ops, suf)
		default:
			return ops, nil
		}
	}
}

func (p *Parser) parseFunctionSuffix() (suffixOp, error) {
	params, variadic, err := p.parseParameterList()
	if err != nil {
		return suffixOp{}, err
	}

	suf := suffixOp{isFunction: true, params: params, variadic: variadic}
	suf.cv = p.consumeCV()

	switch {
	case p.stream.Peek(0).Is("&"):
		p.stream.Next()

		suf.refQual = cxxtypes.RefLvalue
	case p.stream.Peek(0).Is("&&"):
		p.stream.Next()

		suf.refQual = cxxtypes.RefRvalue
	}

	if p.stream.Peek(0).Is("noexcept") {
		p.stream.Next()

		suf.noexceptSpec.Present = true

		if p.stream.Peek(0).Is("(") {
			toks, _ := p.stream.CollectBalanced()
			suf.noexceptSpec.Condition = toks
		}
	} else if p.stream.Peek(0).Is("throw") {
		// pre-C++17 dynamic exception-specification; kept as an opaque
		// token run rather than a discarded one, since legacy headers
		// still distinguish "throw()" from "throw(std::bad_alloc)".
		p.stream.Next()

		if p.stream.Peek(0).Is("(") {
			toks, _ := p.stream.CollectBalanced()
			suf.dynamicThrowSpec = toks
		}
	}

	p.parseAttributeSeqMaybe()

	if p.stream.Peek(0).Is("->") {
		p.stream.Next()

		t, err := p.parseTypeSpecifier()
		if err != nil {
			return suffixOp{}, err
		}

		if full, _, ok := p.parseAbstractDeclarator(t); ok {
			t = full
		}

		suf.trailingReturn = t
	}

	return suf, nil
}

// parseParameterList parses "( parameter-declaration-clause )", already
// positioned at the opening '('. A single "void" parameter means an
// explicitly empty list and is discarded rather than kept as a
// Parameter, matching how an empty C++ parameter list is normally
// modeled.
func (p *Parser) parseParameterList() ([]cxxtypes.Parameter, bool, error) {
	if _, err := p.expectPunct("parameter list", "("); err != nil {
		return nil, false, err
	}

	if p.stream.Peek(0).Is(")") {
		p.stream.Next()

		return nil, false, nil
	}

	if p.stream.Peek(0).Is("void") && p.stream.Peek(1).Is(")") && p.opts.ConvertVoidToZeroParams {
		p.stream.Next()
		p.stream.Next()

		return nil, false, nil
	}

	var params []cxxtypes.Parameter

	variadic := false

	for {
		if p.stream.Peek(0).Is("...") {
			p.stream.Next()
			variadic = true

			break
		}

		param, err := p.parseParameter()
		if err != nil {
			return nil, false, err
		}

		params = append(params, param)

		if p.stream.Peek(0).Is(",") {
			p.stream.Next()

			continue
		}

		break
	}

	if _, err := p.expectPunct("parameter list", ")"); err != nil {
		return nil, false, err
	}

	return params, variadic, nil
}

func (p *Parser) parseParameter() (cxxtypes.Parameter, error) {
	start := p.stream.Peek(0)
	attrs := p.parseAttributeSeqMaybe()

	ds, err := p.parseDeclSpecifierSeq()
	if err != nil {
		return cxxtypes.Parameter{}, err
	}

	if ds.Type == nil {
		return cxxtypes.Parameter{}, p.fail(diagnostic.UnexpectedToken, "parameter", "expected a type, found %q", p.stream.Peek(0).Spelling)
	}

	isPack := false
	if p.stream.Peek(0).Is("...") {
		p.stream.Next()

		isPack = true
	}

	t, name, err := p.parseDeclarator(ds.Type)
	if err != nil {
		return cxxtypes.Parameter{}, err
	}

	var def []cxxtoken.Token
	if p.stream.Peek(0).Is("=") {
		p.stream.Next()

		def = captureUntil(p, terminatorSet(",", ")"))
	}

	if isPack {
		t = cxxtypes.NewPackType(t.Span(), t)
	}

	return cxxtypes.Parameter{
		Type: t, Name: firstPlainName(name), DefaultTokens: def,
		Attrs: attrs, IsPack: isPack, Sp: start.Span.Union(t.Span()),
	}, nil
}

// firstPlainName renders a parameter's declarator-id as a bare string;
// parameters are never qualified or operator names, so the first plain
// segment (if any) is always what's wanted.
func firstPlainName(qn cxxtypes.QualifiedName) string {
	for _, seg := range qn.Segments {
		if ps, ok := seg.(cxxtypes.PlainSegment); ok {
			return ps.Name
		}
	}

	return ""
}

// parseOperatorSegment parses "operator" followed by an overloadable
// operator token sequence, a type (conversion operator), or a
// user-defined-literal suffix ("" _id).
func (p *Parser) parseOperatorSegment() (cxxtypes.QualifiedNameSegment, error) {
	start := p.stream.Next() // 'operator'

	if p.stream.Peek(0).Kind == cxxtoken.StringLiteral && strings.HasPrefix(p.stream.Peek(0).Spelling, `""`) {
		lit := p.stream.Next()

		return cxxtypes.OperatorSegment{Spelling: lit.Spelling, Sp: start.Span.Union(lit.Span)}, nil
	}

	if spelling, end, ok := tryReadOverloadableOperator(p); ok {
		return cxxtypes.OperatorSegment{Spelling: spelling, Sp: start.Span.Union(end.Span)}, nil
	}

	t, err := p.parseTypeSpecifier()
	if err != nil {
		return nil, err
	}

	if full, _, ok := p.parseAbstractDeclarator(t); ok {
		t = full
	}

	return cxxtypes.ConversionOperatorSegment{Target: t, Sp: start.Span.Union(t.Span())}, nil
}

var simpleOverloadableOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "^": true,
	"&": true, "|": true, "~": true, "!": true, "=": true, "<": true,
	">": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"^=": true, "&=": true, "|=": true, "<<": true, ">>": true,
	"<<=": true, ">>=": true, "==": true, "!=": true, "<=": true,
	">=": true, "<=>": true, "&&": true, "||": true, "++": true,
	"--": true, ",": true, "->*": true, "->": true,
}

// tryReadOverloadableOperator consumes one of the fixed overloadable
// operator spellings, including the two-token forms ("()", "[]", "new[]",
// "delete[]"), returning the canonical spelling and the last token
// consumed (for span purposes).
func tryReadOverloadableOperator(p *Parser) (string, cxxtoken.Token, bool) {
	tok := p.stream.Peek(0)

	if simpleOverloadableOperators[tok.Spelling] {
		p.stream.Next()

		return tok.Spelling, tok, true
	}

	if tok.Is("(") && p.stream.Peek(1).Is(")") {
		p.stream.Next()
		end := p.stream.Next()

		return "()", end, true
	}

	if tok.Is("[") && p.stream.Peek(1).Is("]") {
		p.stream.Next()
		end := p.stream.Next()

		return "[]", end, true
	}

	if tok.Is("new", "delete") {
		kw := p.stream.Next()
		spelling := kw.Spelling
		end := kw

		if p.stream.Peek(0).Is("[") && p.stream.Peek(1).Is("]") {
			p.stream.Next()
			end = p.stream.Next()
			spelling += "[]"
		}

		return spelling, end, true
	}

	return "", cxxtoken.Token{}, false
}
