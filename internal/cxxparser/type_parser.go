package cxxparser

import (
	"strings"

	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
	"github.com/cppdecl/cxxheaderparser/internal/diagnostic"
)

// declSpecifiers is the accumulated result of parsing a
// decl-specifier-seq: the storage/function specifiers plus the single
// type specifier they qualify.
type declSpecifiers struct {
	Storage          string // "", "static", "extern", "register"
	IsTypedef        bool
	IsThreadLocal     bool
	IsMutable         bool
	IsVirtual         bool
	IsExplicit        bool
	IsInline          bool
	ConstexprKind     string // "", "constexpr", "consteval", "constinit"
	Type              cxxtypes.Type
	Attrs             []cxxtypes.Attribute
	SawTypeSpecifier  bool
	CallingConvention string // "__cdecl", "__stdcall", ...; "" if none
}

// parseDeclSpecifierSeq consumes the decl-specifier-seq at the current
// position: an interleaving of storage/function-specifier keywords, CV
// qualifiers (accepted on either side of the type specifier, so both
// "const int" and "int const" parse), attribute sequences, and exactly
// one type specifier.
func (p *Parser) parseDeclSpecifierSeq() (*declSpecifiers, error) {
	ds := &declSpecifiers{}

	var cv cxxtypes.CV

	for {
		tok := p.stream.Peek(0)

		switch {
		case tok.Is("[") && p.stream.Peek(1).Is("["), tok.Is("__attribute__"), tok.Is("__declspec"):
			ds.Attrs = append(ds.Attrs, p.parseAttributeSeqMaybe()...)
		case isCallingConvention(tok.Spelling) && p.opts.MSVCAttributes:
			p.stream.Next()
			ds.CallingConvention = tok.Spelling
		case tok.Is("static", "extern", "register"):
			ds.Storage = tok.Spelling
			p.stream.Next()
		case tok.Is("typedef"):
			ds.IsTypedef = true
			p.stream.Next()
		case tok.Is("thread_local"):
			ds.IsThreadLocal = true
			p.stream.Next()
		case tok.Is("mutable"):
			ds.IsMutable = true
			p.stream.Next()
		case tok.Is("virtual"):
			ds.IsVirtual = true
			p.stream.Next()
		case tok.Is("explicit"):
			p.parseExplicitSpecifier()
			ds.IsExplicit = true
		case tok.Is("inline"):
			ds.IsInline = true
			p.stream.Next()
		case tok.Is("constexpr", "consteval", "constinit"):
			ds.ConstexprKind = tok.Spelling
			p.stream.Next()
		case tok.Is("const"):
			cv.Const = true
			p.stream.Next()
		case tok.Is("volatile"):
			cv.Volatile = true
			p.stream.Next()
		case !ds.SawTypeSpecifier && p.startsTypeSpecifier():
			t, err := p.parseTypeSpecifier()
			if err != nil {
				return nil, err
			}

			ds.Type = t
			ds.SawTypeSpecifier = true
		default:
			if ds.Type != nil {
				ds.Type = cxxtypes.WithExtraCV(ds.Type, cv)
			}

			return ds, nil
		}
	}
}

// parseExplicitSpecifier consumes "explicit" and an optional
// "(condition)", discarding the condition tokens: the parser records
// only that the declaration is explicit, not under what condition.
func (p *Parser) parseExplicitSpecifier() {
	p.stream.Next() // 'explicit'

	if p.stream.Peek(0).Is("(") {
		p.stream.CollectBalanced()
	}
}

// startsTypeSpecifier reports whether the current token can begin a
// type-specifier, used to decide when parseDeclSpecifierSeq's loop
// should stop accumulating flags and parse the type.
func (p *Parser) startsTypeSpecifier() bool {
	tok := p.stream.Peek(0)

	switch {
	case cxxtoken.Fundamentals[tok.Spelling]:
		return true
	case cxxtoken.ClassKeys[tok.Spelling]:
		return true
	case tok.Is("typename", "auto", "decltype"):
		return true
	case tok.Is("::"):
		return true
	case tok.Kind == cxxtoken.Identifier && !cxxtoken.Keywords[tok.Spelling]:
		return true
	default:
		return false
	}
}

// parseTypeSpecifier parses exactly one type-specifier: a fundamental
// keyword run, an elaborated-type-specifier, "typename"-qualified name,
// auto, decltype(...), or a plain/qualified/template-id name.
func (p *Parser) parseTypeSpecifier() (cxxtypes.Type, error) {
	tok := p.stream.Peek(0)

	switch {
	case cxxtoken.Fundamentals[tok.Spelling]:
		return p.parseFundamentalRun()
	case cxxtoken.ClassKeys[tok.Spelling]:
		return p.parseElaboratedTypeSpecifier()
	case tok.Is("typename"):
		p.stream.Next()

		qn, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}

		return cxxtypes.NewNamedType(qn.Sp, qn, true, ""), nil
	case tok.Is("auto"):
		p.stream.Next()

		return cxxtypes.NewAutoType(tok.Span), nil
	case tok.Is("decltype"):
		return p.parseDecltype()
	default:
		qn, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}

		return cxxtypes.NewNamedType(qn.Sp, qn, false, ""), nil
	}
}

func (p *Parser) parseFundamentalRun() (cxxtypes.Type, error) {
	start := p.stream.Peek(0)

	var parts []string

	end := start.Span

	for cxxtoken.Fundamentals[p.stream.Peek(0).Spelling] {
		tok := p.stream.Next()
		parts = append(parts, tok.Spelling)
		end = tok.Span

		if !cxxtoken.FundamentalKeywords[tok.Spelling] {
			break // "bool"/"void"/etc. never combine with anything further
		}
	}

	return cxxtypes.NewFundamentalType(start.Span.Union(end), strings.Join(parts, " ")), nil
}

func (p *Parser) parseElaboratedTypeSpecifier() (cxxtypes.Type, error) {
	keyTok := p.stream.Next()
	key := keyTok.Spelling

	if key == "enum" && p.stream.Peek(0).Is("class", "struct") {
		p.stream.Next()
	}

	qn, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	return cxxtypes.NewNamedType(keyTok.Span.Union(qn.Sp), qn, false, key), nil
}

func (p *Parser) parseDecltype() (cxxtypes.Type, error) {
	start := p.stream.Next() // 'decltype'

	if _, err := p.expectPunct("decltype", "("); err != nil {
		return nil, err
	}

	if p.stream.Peek(0).Is("auto") && p.stream.Peek(1).Is(")") {
		p.stream.Next()
		end := p.stream.Next()

		return cxxtypes.NewDecltypeAutoType(start.Span.Union(end.Span)), nil
	}

	expr := captureUntil(p, terminatorSet(")"))

	end, err := p.expectPunct("decltype", ")")
	if err != nil {
		return nil, err
	}

	return cxxtypes.NewDecltypeType(start.Span.Union(end.Span), expr), nil
}

// parseQualifiedName parses a (possibly "::"-leading, possibly
// template-id-bearing) qualified-id.
func (p *Parser) parseQualifiedName() (cxxtypes.QualifiedName, error) {
	qn := cxxtypes.QualifiedName{}

	start := p.stream.Peek(0)
	end := start.Span

	if p.stream.Peek(0).Is("::") {
		qn.LeadingGlobal = true
		tok := p.stream.Next()
		end = tok.Span
	}

	for {
		tok := p.stream.Peek(0)

		switch {
		case tok.Is("~"):
			p.stream.Next()

			nameTok, err := p.expectIdentifier("destructor name")
			if err != nil {
				return qn, err
			}

			end = nameTok.Span
			qn.Segments = append(qn.Segments, cxxtypes.DestructorSegment{Name: nameTok.Spelling, Sp: tok.Span.Union(nameTok.Span)})
		case tok.Is("operator"):
			seg, err := p.parseOperatorSegment()
			if err != nil {
				return qn, err
			}

			end = seg.Span()
			qn.Segments = append(qn.Segments, seg)
		case tok.Kind == cxxtoken.Identifier:
			p.stream.Next()
			end = tok.Span

			if p.stream.Peek(0).Is("<") {
				mark := p.stream.Checkpoint()

				args, ok := p.tryParseTemplateArgumentList()
				if ok {
					qn.Segments = append(qn.Segments, cxxtypes.TemplateIDSegment{Name: tok.Spelling, Args: args, Sp: tok.Span})
				} else {
					p.stream.Rewind(mark)
					qn.Segments = append(qn.Segments, cxxtypes.PlainSegment{Name: tok.Spelling, Sp: tok.Span})
				}
			} else {
				qn.Segments = append(qn.Segments, cxxtypes.PlainSegment{Name: tok.Spelling, Sp: tok.Span})
			}
		default:
			return qn, p.fail(diagnostic.UnexpectedToken, "qualified name", "expected an identifier, found %q", tok.Spelling)
		}

		if p.stream.Peek(0).Is("::") {
			tok := p.stream.Next()
			end = tok.Span

			continue
		}

		break
	}

	qn.Sp = start.Span.Union(end)

	return qn, nil
}

// tryParseTemplateArgumentList attempts to parse "<arg, arg, ...>" at
// the current position (cursor on "<"), where each argument is a type,
// a constant-expression captured opaquely, or a bare template-name. It
// reports false (leaving the cursor untouched by the caller's own
// checkpoint/rewind) if the content could not be parsed as arguments at
// all before running out of input.
func (p *Parser) tryParseTemplateArgumentList() ([]cxxtypes.TemplateArgument, bool) {
	toks, ok := p.stream.CollectBalanced()
	if !ok {
		return nil, false
	}

	return splitTemplateArguments(p, toks), true
}

// splitTemplateArguments divides a flat token run already collected from
// inside "<...>" into individual arguments at top-level commas, then
// classifies each as a type or an opaque expression by a cheap
// heuristic: it looks like a type if it starts with a fundamental
// keyword, a class-key, or an identifier known in the current scope as a
// type name.
func splitTemplateArguments(p *Parser, toks []cxxtoken.Token) []cxxtypes.TemplateArgument {
	var args []cxxtypes.TemplateArgument

	groups := splitAtTopLevelCommas(toks)

	for _, g := range groups {
		if len(g) == 0 {
			continue
		}

		sp := g[0].Span.Union(g[len(g)-1].Span)

		if looksLikeTypeTokens(p, g) {
			sub := p.subParserOverTokens(g)

			t, err := sub.parseTypeSpecifier()
			if err == nil {
				t = applyDeclaratorChainForTemplateArg(sub, t)

				args = append(args, cxxtypes.TemplateArgument{TypeArg: t, Sp: sp})

				continue
			}
		}

		args = append(args, cxxtypes.TemplateArgument{Tokens: g, Sp: sp})
	}

	return args
}

// applyDeclaratorChainForTemplateArg consumes any trailing pointer/array
// derivation after a template argument's base type (e.g. the "*" in
// "vector<int*>"), falling back to the bare base type if none is
// present or the remainder doesn't parse as a declarator.
func applyDeclaratorChainForTemplateArg(sub *Parser, base cxxtypes.Type) cxxtypes.Type {
	if sub.stream.Peek(0).Kind == cxxtoken.Eof {
		return base
	}

	t, _, ok := sub.parseAbstractDeclarator(base)
	if ok {
		return t
	}

	return base
}

func looksLikeTypeTokens(p *Parser, toks []cxxtoken.Token) bool {
	if len(toks) == 0 {
		return false
	}

	first := toks[0]

	switch {
	case cxxtoken.Fundamentals[first.Spelling]:
		return true
	case cxxtoken.ClassKeys[first.Spelling]:
		return true
	case first.Is("typename", "decltype"):
		return true
	case first.Kind == cxxtoken.Identifier && p.scope.IsTypeName(first.Spelling):
		return true
	default:
		return false
	}
}

func splitAtTopLevelCommas(toks []cxxtoken.Token) [][]cxxtoken.Token {
	var groups [][]cxxtoken.Token

	depth := 0

	var cur []cxxtoken.Token

	for _, t := range toks {
		switch t.Spelling {
		case "(", "[", "{", "<":
			depth++
		case ")", "]", "}", ">":
			depth--
		}

		if t.Spelling == "," && depth == 0 {
			groups = append(groups, cur)
			cur = nil

			continue
		}

		cur = append(cur, t)
	}

	groups = append(groups, cur)

	return groups
}
