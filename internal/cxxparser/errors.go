package cxxparser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
	"github.com/cppdecl/cxxheaderparser/internal/diagnostic"
	"github.com/cppdecl/cxxheaderparser/internal/position"
)

// ParseError is returned from Parser.Parse when a fatal diagnostic (one
// of LexicalError, UnexpectedToken, UnbalancedDelimiter,
// AmbiguousDeclaration, or InternalInvariantBroken) aborted the parse. It
// carries the partial AST collected up to the enclosing top-level
// declaration, per the error-handling design's "fails with a structured
// error, but the partial AST up to that point is retained" policy.
type ParseError struct {
	Diagnostic diagnostic.Diagnostic
	Partial    []cxxtypes.Declaration // the top-level declarations parsed before the failure
}

func (e *ParseError) Error() string { return e.Diagnostic.String() }

func (p *Parser) fail(kind diagnostic.Kind, context, format string, args ...interface{}) error {
	loc := p.currentLoc()
	d := diagnostic.New(kind, loc, context, fmt.Sprintf(format, args...))
	p.diagnostics = append(p.diagnostics, d)

	return errors.WithStack(&ParseError{Diagnostic: d, Partial: p.partial})
}

// recoverUnsupported records an Unsupported diagnostic without aborting,
// per the "Unsupported is recoverable" policy, and returns it so callers
// can decide whether to also skip tokens.
func (p *Parser) recoverUnsupported(context, format string, args ...interface{}) diagnostic.Diagnostic {
	loc := p.currentLoc()
	d := diagnostic.New(diagnostic.Unsupported, loc, context, fmt.Sprintf(format, args...))
	p.diagnostics = append(p.diagnostics, d)

	return d
}

func (p *Parser) currentLoc() position.Position {
	return p.stream.Peek(0).Loc()
}

// expectPunct consumes the current token if it is a Punct matching one
// of vals, or fails with UnexpectedToken.
func (p *Parser) expectPunct(context string, vals ...string) (cxxtoken.Token, error) {
	tok := p.stream.Peek(0)
	if tok.Kind == cxxtoken.Punct && tok.Is(vals...) {
		p.stream.Next()

		return tok, nil
	}

	return cxxtoken.Token{}, p.fail(diagnostic.UnexpectedToken, context,
		"expected one of %v, found %q", vals, tok.Spelling)
}

// expectIdentifier consumes the current token if it is a non-keyword
// identifier, or fails with UnexpectedToken.
func (p *Parser) expectIdentifier(context string) (cxxtoken.Token, error) {
	tok := p.stream.Peek(0)
	if tok.Kind == cxxtoken.Identifier && !cxxtoken.Keywords[tok.Spelling] {
		p.stream.Next()

		return tok, nil
	}

	return cxxtoken.Token{}, p.fail(diagnostic.UnexpectedToken, context,
		"expected an identifier, found %q", tok.Spelling)
}

// skipToRecoveryPoint advances the token stream to the next top-level
// ';' or matching '}' at the outer depth, implementing the "Unsupported"
// recovery policy.
func (p *Parser) skipToRecoveryPoint() {
	depth := 0

	for {
		tok := p.stream.Peek(0)

		if tok.Kind == cxxtoken.Eof {
			return
		}

		switch tok.Spelling {
		case "{", "(", "[":
			depth++
		case "}", ")", "]":
			if depth == 0 {
				if tok.Spelling == "}" {
					p.stream.Next()
				}

				return
			}

			depth--
		case ";":
			if depth == 0 {
				p.stream.Next()

				return
			}
		}

		p.stream.Next()
	}
}
