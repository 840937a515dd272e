package cxxparser

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
)

// parseAttributeSeqMaybe consumes zero or more leading attribute
// specifiers: "[[...]]", "__attribute__((...))" (when GNUAttributes),
// "__declspec(...)" (when MSVCAttributes), and the bare MSVC calling
// convention keywords, recording each positionally.
func (p *Parser) parseAttributeSeqMaybe() []cxxtypes.Attribute {
	var attrs []cxxtypes.Attribute

	for {
		tok := p.stream.Peek(0)

		switch {
		case tok.Is("[") && p.stream.Peek(1).Is("["):
			attrs = append(attrs, p.parseStandardAttribute())
		case tok.Is("__attribute__") && p.opts.GNUAttributes:
			attrs = append(attrs, p.parseGNUAttribute())
		case tok.Is("__declspec") && p.opts.MSVCAttributes:
			attrs = append(attrs, p.parseMSVCDeclspec())
		case isCallingConvention(tok.Spelling) && p.opts.MSVCAttributes:
			p.stream.Next()

			attrs = append(attrs, cxxtypes.Attribute{Vendor: "msvc", Name: tok.Spelling, Span: tok.Span})
		default:
			return attrs
		}
	}
}

func isCallingConvention(s string) bool {
	switch s {
	case "__cdecl", "__clrcall", "__stdcall", "__fastcall", "__thiscall", "__vectorcall":
		return true
	default:
		return false
	}
}

// parseStandardAttribute reads "[ [ attribute-list ] ]", where each
// "attribute" may itself be "name", "name(args)", or "namespace::name".
// Individual attributes within the list are not separated out; the raw
// token run between the two bracket pairs is kept as Args, and Name is
// left blank, since an attribute-list can name several attributes at
// once and downstream consumers are expected to re-scan Args if they
// need the individual names.
func (p *Parser) parseStandardAttribute() cxxtypes.Attribute {
	start := p.stream.Next() // first '['
	p.stream.Next()          // second '['

	var args []cxxtoken.Token

	depth := 0

	for {
		tok := p.stream.Peek(0)
		if tok.Kind == cxxtoken.Eof {
			break
		}

		if tok.Is("]") && p.stream.Peek(1).Is("]") && depth == 0 {
			end := p.stream.Peek(1)
			p.stream.Next()
			p.stream.Next()

			return cxxtypes.Attribute{Args: args, Span: start.Span.Union(end.Span)}
		}

		switch tok.Spelling {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		}

		args = append(args, tok)
		p.stream.Next()
	}

	return cxxtypes.Attribute{Args: args, Span: start.Span}
}

func (p *Parser) parseGNUAttribute() cxxtypes.Attribute {
	start := p.stream.Next() // '__attribute__'

	toks, _ := p.stream.CollectBalanced() // "(( ... ))", one level of the outer parens

	return cxxtypes.Attribute{Vendor: "gnu", Args: toks, Span: start.Span}
}

func (p *Parser) parseMSVCDeclspec() cxxtypes.Attribute {
	start := p.stream.Next() // '__declspec'

	toks, _ := p.stream.CollectBalanced()

	return cxxtypes.Attribute{Vendor: "msvc", Args: toks, Span: start.Span}
}
