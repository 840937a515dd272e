package cxxparser

import "github.com/cppdecl/cxxheaderparser/internal/cxxtoken"

// captureUntil reads and returns tokens up to (not including) the next
// token whose spelling is in terminators at paren/bracket/brace depth 0.
// It deliberately does not track '<'/'>' depth: this is the generic
// opaque-expression capture used for default arguments, initializers,
// array sizes, bit-field widths, and enumerator values, none of which
// need template-argument-list awareness per the design note that scopes
// that heuristic to contexts that actually expect a template.
func captureUntil(p *Parser, terminators map[string]bool) []cxxtoken.Token {
	depth := 0

	var out []cxxtoken.Token

	for {
		tok := p.stream.Peek(0)
		if tok.Kind == cxxtoken.Eof {
			return out
		}

		if depth == 0 && terminators[tok.Spelling] {
			return out
		}

		switch tok.Spelling {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		}

		out = append(out, tok)
		p.stream.Next()
	}
}

func terminatorSet(vals ...string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}

	return m
}
