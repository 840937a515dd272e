// Package tokenstream buffers a cxxlexer.Lexer into a stream the parser
// can peek into, rewind, and split, which is the amount of lookahead
// C++ declaration parsing actually needs: disambiguating declarations
// from expressions and closing nested template-argument lists requires
// looking arbitrarily far ahead and sometimes giving tokens back.
package tokenstream

import (
	"github.com/cppdecl/cxxheaderparser/internal/cxxlexer"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/position"
)

// Stream is a pull-based, infinitely-rewindable view over a Lexer. Every
// token the lexer has ever produced stays in buf, so Mark/Rewind is a
// plain index swap and never re-touches the lexer.
type Stream struct {
	lexer *cxxlexer.Lexer
	buf   []cxxtoken.Token
	// doxy[i] is the leading Doxygen text associated with buf[i].
	doxy []string
	pos  int
	err  error
}

// New wraps lx in a Stream.
func New(lx *cxxlexer.Lexer) *Stream {
	return &Stream{lexer: lx}
}

// FromTokens builds a Stream over an already-lexed, fixed token slice
// (no underlying Lexer), terminated with a synthetic Eof token. This is
// how the parser re-parses an already-collected balanced token run (for
// example, to classify one template argument) without re-lexing text.
func FromTokens(toks []cxxtoken.Token) *Stream {
	s := &Stream{buf: append([]cxxtoken.Token{}, toks...)}
	s.doxy = make([]string, len(s.buf))

	end := position.Position{}
	if len(toks) > 0 {
		end = toks[len(toks)-1].Span.End
	}

	s.buf = append(s.buf, cxxtoken.Token{Kind: cxxtoken.Eof, Span: position.Span{Start: end, End: end}})
	s.doxy = append(s.doxy, "")

	return s
}

// fill ensures at least n tokens beyond pos are buffered (n=0 means at
// least one token is available at pos), pulling from the lexer as
// needed. Once the lexer reports EOF, further fills keep returning the
// buffered EOF token rather than calling the lexer again.
func (s *Stream) fill(n int) error {
	for len(s.buf) <= s.pos+n {
		if s.err != nil {
			return s.err
		}

		if len(s.buf) > 0 && s.buf[len(s.buf)-1].Kind == cxxtoken.Eof {
			return nil
		}

		if s.lexer == nil {
			return nil
		}

		tok, err := s.lexer.Next()
		if err != nil {
			s.err = err

			return err
		}

		s.buf = append(s.buf, tok)
		s.doxy = append(s.doxy, s.lexer.TakeDoxygen())
	}

	return nil
}

// Peek returns the token n positions ahead of the cursor without
// consuming it (n=0 is the next token to be returned by Next).
func (s *Stream) Peek(n int) cxxtoken.Token {
	if err := s.fill(n); err != nil {
		return cxxtoken.Token{Kind: cxxtoken.Eof}
	}

	idx := s.pos + n
	if idx >= len(s.buf) {
		return s.buf[len(s.buf)-1]
	}

	return s.buf[idx]
}

// Doxygen returns the comment text directly associated with the token at
// Peek(n), without consuming it.
func (s *Stream) Doxygen(n int) string {
	if err := s.fill(n); err != nil {
		return ""
	}

	idx := s.pos + n
	if idx >= len(s.doxy) {
		return ""
	}

	return s.doxy[idx]
}

// Next consumes and returns the next token.
func (s *Stream) Next() cxxtoken.Token {
	tok := s.Peek(0)
	if tok.Kind != cxxtoken.Eof || s.pos < len(s.buf) {
		s.pos++
	}

	return tok
}

// Err returns the first lexical error the stream encountered, if any.
func (s *Stream) Err() error { return s.err }

// Mark is an opaque cursor position, cheap to take and restore as often
// as the parser's speculative parsing needs.
type Mark int

// Checkpoint returns the current cursor position.
func (s *Stream) Checkpoint() Mark { return Mark(s.pos) }

// Rewind restores the cursor to a previously taken Mark.
func (s *Stream) Rewind(m Mark) { s.pos = int(m) }

// SplitShr splits a ">>" Punct token sitting at the cursor into two ">"
// tokens and consumes the first, leaving the second as the new current
// token. It is how the parser closes a nested template-argument list
// like "vector<vector<int>>" without the lexer ever having to guess
// whether ">>" is a shift operator or two closing angle brackets.
func (s *Stream) SplitShr() bool {
	if err := s.fill(0); err != nil {
		return false
	}

	tok := s.buf[s.pos]
	if tok.Kind != cxxtoken.Punct || tok.Spelling != ">>" {
		return false
	}

	mid := position.Position{
		Filename: tok.Span.Start.Filename,
		Line:     tok.Span.Start.Line,
		Column:   tok.Span.Start.Column + 1,
		Offset:   tok.Span.Start.Offset + 1,
	}

	first := cxxtoken.Token{Kind: cxxtoken.Punct, Spelling: ">", Span: position.Span{Start: tok.Span.Start, End: mid}}
	second := cxxtoken.Token{Kind: cxxtoken.Punct, Spelling: ">", Span: position.Span{Start: mid, End: tok.Span.End}}

	newBuf := make([]cxxtoken.Token, 0, len(s.buf)+1)
	newBuf = append(newBuf, s.buf[:s.pos]...)
	newBuf = append(newBuf, first, second)
	newBuf = append(newBuf, s.buf[s.pos+1:]...)
	s.buf = newBuf

	newDoxy := make([]string, 0, len(s.doxy)+1)
	newDoxy = append(newDoxy, s.doxy[:s.pos]...)
	newDoxy = append(newDoxy, "", s.doxy[s.pos])
	newDoxy = append(newDoxy, s.doxy[s.pos+1:]...)
	s.doxy = newDoxy

	s.pos++ // consume the first '>'; second becomes current

	return true
}

// SplitShrEq does the same split for ">>=" when it closes a nested
// template-argument list immediately followed by "=" (e.g. the right
// shift-assign operator token appearing where ">>" then "=" was meant).
func (s *Stream) SplitShrEq() bool {
	if err := s.fill(0); err != nil {
		return false
	}

	tok := s.buf[s.pos]
	if tok.Kind != cxxtoken.Punct || tok.Spelling != ">>=" {
		return false
	}

	c1 := tok.Span.Start.Column + 1
	c2 := tok.Span.Start.Column + 2

	p1 := tok.Span.Start
	p2 := position.Position{Filename: p1.Filename, Line: p1.Line, Column: c1, Offset: p1.Offset + 1}
	p3 := position.Position{Filename: p1.Filename, Line: p1.Line, Column: c2, Offset: p1.Offset + 2}

	first := cxxtoken.Token{Kind: cxxtoken.Punct, Spelling: ">", Span: position.Span{Start: p1, End: p2}}
	second := cxxtoken.Token{Kind: cxxtoken.Punct, Spelling: ">", Span: position.Span{Start: p2, End: p3}}
	third := cxxtoken.Token{Kind: cxxtoken.Punct, Spelling: "=", Span: position.Span{Start: p3, End: tok.Span.End}}

	newBuf := make([]cxxtoken.Token, 0, len(s.buf)+2)
	newBuf = append(newBuf, s.buf[:s.pos]...)
	newBuf = append(newBuf, first, second, third)
	newBuf = append(newBuf, s.buf[s.pos+1:]...)
	s.buf = newBuf

	newDoxy := make([]string, 0, len(s.doxy)+2)
	newDoxy = append(newDoxy, s.doxy[:s.pos]...)
	newDoxy = append(newDoxy, "", "", s.doxy[s.pos])
	newDoxy = append(newDoxy, s.doxy[s.pos+1:]...)
	s.doxy = newDoxy

	s.pos++

	return true
}

// CollectBalanced consumes tokens from the cursor, which must sit on an
// opening delimiter (one of "(", "[", "{", or "<"), through its matching
// closing delimiter, returning the tokens strictly between them. Nested
// occurrences of any of the four delimiter kinds are tracked so an inner
// "(" doesn't close the outer "<". When the opener is "<", a ">>" or
// ">>=" token that would close two levels at once is split via SplitShr
// / SplitShrEq first, exactly as real compilers do inside template
// argument lists.
func (s *Stream) CollectBalanced() ([]cxxtoken.Token, bool) {
	opener := s.Peek(0)

	closer, ok := matchingCloser(opener.Spelling)
	if !ok {
		return nil, false
	}

	s.Next() // consume opener

	depth := map[string]int{"(": 0, "[": 0, "{": 0, "<": 0}
	depth[opener.Spelling] = 1

	var collected []cxxtoken.Token

	for {
		tok := s.Peek(0)
		if tok.Kind == cxxtoken.Eof {
			return collected, false
		}

		if opener.Spelling == "<" && tok.Spelling == ">>" && depth["<"] >= 2 {
			s.SplitShr()

			// SplitShr replaced ">>" with two ">" tokens and advanced past
			// the first, closing one nested level; the second ">" is now
			// current and falls through to the normal "case \">\"" handling
			// below on the next iteration.
			depth["<"]--
			collected = append(collected, s.buf[s.pos-1])

			continue
		}

		if opener.Spelling == "<" && tok.Spelling == ">>=" && depth["<"] >= 2 {
			s.SplitShrEq()

			depth["<"]--
			collected = append(collected, s.buf[s.pos-1])

			continue
		}

		switch tok.Spelling {
		case "(", "[", "{", "<":
			depth[tok.Spelling]++
		case ")", "]", "}", ">":
			open := matchingOpener(tok.Spelling)
			if depth[open] > 0 {
				depth[open]--
			}
		}

		if tok.Spelling == closer && depth[opener.Spelling] == 0 {
			s.Next() // consume closer

			return collected, true
		}

		collected = append(collected, tok)
		s.Next()
	}
}

func matchingCloser(opener string) (string, bool) {
	switch opener {
	case "(":
		return ")", true
	case "[":
		return "]", true
	case "{":
		return "}", true
	case "<":
		return ">", true
	default:
		return "", false
	}
}

func matchingOpener(closer string) string {
	switch closer {
	case ")":
		return "("
	case "]":
		return "["
	case "}":
		return "{"
	case ">":
		return "<"
	default:
		return ""
	}
}
