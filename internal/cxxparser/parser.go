// Package cxxparser is the recursive-descent declaration parser: the
// main engine that dispatches on leading tokens to namespace, class,
// enum, template, function, variable, and using productions, invoking
// the type parser wherever a type expression needs recognizing.
package cxxparser

import (
	"strings"

	"github.com/cppdecl/cxxheaderparser/internal/cxxlexer"
	"github.com/cppdecl/cxxheaderparser/internal/cxxscope"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
	"github.com/cppdecl/cxxheaderparser/internal/diagnostic"
	"github.com/cppdecl/cxxheaderparser/internal/position"
	"github.com/cppdecl/cxxheaderparser/internal/tokenstream"
)

// Parser is the top-level recursive-descent engine. Construct one with
// New per parse; a Parser is not reusable across inputs.
type Parser struct {
	stream   *tokenstream.Stream
	scope    *cxxscope.Stack
	opts     Options
	visitor  Visitor
	filename string

	diagnostics []diagnostic.Diagnostic
	partial     []cxxtypes.Declaration

	// extraDecls accumulates declarations beyond the first one produced by
	// a single comma-separated declaration statement ("int a, b, *c;" or
	// "void f(), g();"); parseDeclarationSeq drains it after every
	// top-level parseOneDeclaration call so callers still only need to
	// return one Declaration each.
	extraDecls []cxxtypes.Declaration

	// anonCounter assigns each anonymous class/struct/union/enum a small
	// id unique within this parse, so two references to the same
	// anonymous type can be correlated downstream.
	anonCounter int
}

// nextAnonymousName builds a one-segment QualifiedName standing in for
// an unnamed class/struct/union/enum's identity.
func (p *Parser) nextAnonymousName(sp position.Span) *cxxtypes.QualifiedName {
	p.anonCounter++

	return &cxxtypes.QualifiedName{
		Segments: []cxxtypes.QualifiedNameSegment{cxxtypes.AnonymousName{ID: p.anonCounter, Sp: sp}},
		Sp:       sp,
	}
}

// New creates a Parser over already decoded source text.
func New(filename, src string, opts Options, visitor Visitor) *Parser {
	if visitor == nil {
		visitor = NullVisitor{}
	}

	lx := cxxlexer.New(filename, src)
	p := &Parser{
		stream:   tokenstream.New(lx),
		scope:    cxxscope.New(),
		opts:     opts,
		visitor:  visitor,
		filename: filename,
	}
	p.scope.Seed(opts.KnownTypeNames)

	return p
}

// Parse runs the parser to completion, returning every top-level
// declaration, the diagnostics collected along the way, and a non-nil
// error only when a fatal diagnostic aborted the parse early.
func (p *Parser) Parse() ([]cxxtypes.Declaration, []diagnostic.Diagnostic, error) {
	decls, err := p.parseDeclarationSeq(true)
	p.partial = decls

	return decls, p.diagnostics, err
}

// parseDeclarationSeq parses declarations until Eof (topLevel) or a
// closing '}' it leaves unconsumed for the caller to match.
func (p *Parser) parseDeclarationSeq(topLevel bool) ([]cxxtypes.Declaration, error) {
	var decls []cxxtypes.Declaration

	for {
		tok := p.stream.Peek(0)
		if tok.Kind == cxxtoken.Eof {
			if !topLevel {
				return decls, p.fail(diagnostic.UnbalancedDelimiter, "declaration sequence",
					"unexpected end of file, expected '}'")
			}

			return decls, nil
		}

		if !topLevel && tok.Kind == cxxtoken.Punct && tok.Spelling == "}" {
			return decls, nil
		}

		d, err := p.parseOneDeclaration()
		if err != nil {
			return decls, err
		}

		if d != nil {
			decls = append(decls, d)
		}

		if len(p.extraDecls) > 0 {
			decls = append(decls, p.extraDecls...)
			p.extraDecls = nil
		}
	}
}

// parseOneDeclaration parses a single declaration (which for namespace
// and class/extern-block forms may itself contain many nested
// declarations) starting at the current token.
func (p *Parser) parseOneDeclaration() (cxxtypes.Declaration, error) {
	attrs := p.parseAttributeSeqMaybe()

	tok := p.stream.Peek(0)

	switch {
	case tok.Kind == cxxtoken.PPLine:
		return p.parsePragmaLine()
	case tok.Is("namespace"):
		return p.parseNamespace(attrs)
	case tok.Is("using"):
		return p.parseUsing(attrs)
	case tok.Is("template"):
		return p.parseTemplate(attrs)
	case tok.Is("class", "struct", "union"):
		return p.parseClassOrElaborated(attrs, false)
	case tok.Is("enum"):
		return p.parseEnum(attrs, nil)
	case tok.Is("extern") && p.stream.Peek(1).Kind == cxxtoken.StringLiteral:
		return p.parseExternBlock(attrs)
	case tok.Is("extern") && p.stream.Peek(1).Is("template"):
		p.stream.Next() // 'extern'

		if p.opts.ExternTemplate == SkipExternTemplate {
			p.skipToRecoveryPoint()

			return nil, nil
		}

		return p.parseTemplate(attrs)
	case tok.Is("static_assert"):
		return p.parseStaticAssert(attrs)
	case tok.Is("friend"):
		return p.parseFriend(attrs)
	case tok.Is("public", "private", "protected") && p.stream.Peek(1).Is(":"):
		p.applyAccessLabel()

		return nil, nil
	case tok.Is("concept") && p.opts.Concepts:
		return p.parseConcept(attrs)
	case tok.Is(";"):
		p.stream.Next()

		return nil, nil
	default:
		return p.parseGeneralDeclaration(attrs, nil)
	}
}

func (p *Parser) applyAccessLabel() {
	tok := p.stream.Next() // public/private/protected
	p.stream.Next()        // ':'

	switch tok.Spelling {
	case "public":
		p.scope.SetAccess(cxxtypes.Public)
	case "protected":
		p.scope.SetAccess(cxxtypes.Protected)
	default:
		p.scope.SetAccess(cxxtypes.Private)
	}
}

// parsePragmaLine classifies a '#'-prefixed line at a declaration
// boundary into a Define, Include, or plain Pragma record by its
// leading directive word, per the reference implementation's
// preprocessor-token handling; anything else ("#if", "#ifdef", "#endif",
// "#error", ...) stays the generic PragmaOrIncludeLineDecl and is still
// routed to OnPragma.
func (p *Parser) parsePragmaLine() (cxxtypes.Declaration, error) {
	tok := p.stream.Next()

	if p.opts.PreprocessorLines == IgnorePPLines {
		return nil, nil
	}

	base := cxxtypes.PragmaOrIncludeLineDecl{
		Common: cxxtypes.Common{Sp: tok.Span, Scope: p.scope.Current()},
		Raw:    tok.Spelling,
	}

	directive, rest := splitPreprocessorDirective(tok.Spelling)

	// "#line N "file"" and the GCC linemarker form "# N "file" flags..."
	// already took effect on the lexer's Location tracking when this
	// line's trailing newline was consumed; neither is surfaced as a
	// declaration.
	if directive == "line" || isAllDigits(directive) {
		return nil, nil
	}

	switch directive {
	case "define":
		decl := &cxxtypes.DefineDecl{PragmaOrIncludeLineDecl: base}
		p.visitor.OnDefine(decl)

		return decl, nil
	case "include", "include_next":
		decl := &cxxtypes.IncludeDecl{PragmaOrIncludeLineDecl: base, Filename: includeFilename(rest)}
		p.visitor.OnInclude(decl)

		return decl, nil
	case "pragma":
		decl := &cxxtypes.PragmaDecl{PragmaOrIncludeLineDecl: base}
		p.visitor.OnPragma(&decl.PragmaOrIncludeLineDecl)

		return decl, nil
	default:
		p.visitor.OnPragma(&base)

		return &base, nil
	}
}

// splitPreprocessorDirective splits a raw "#word rest" preprocessor
// line into its directive word and the remainder, both trimmed of
// surrounding whitespace; the leading '#' (and any whitespace before
// the word) is discarded.
func splitPreprocessorDirective(raw string) (directive, rest string) {
	s := strings.TrimLeft(raw[1:], " \t")

	i := 0
	for i < len(s) && !isPPSpace(s[i]) {
		i++
	}

	directive = s[:i]
	rest = strings.TrimLeft(s[i:], " \t")

	return directive, rest
}

func isPPSpace(c byte) bool { return c == ' ' || c == '\t' }

// isAllDigits reports whether s is non-empty and consists only of ASCII
// digits, identifying a GCC linemarker's leading line number where a
// "#line"/"#define"/... directive word would otherwise be.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// includeFilename extracts the text between "<...>" or "\"...\"" from
// a "#include" line's remainder, or returns it unchanged if neither
// delimiter form is recognized (a macro-expanded include, e.g.).
func includeFilename(rest string) string {
	if len(rest) >= 2 && rest[0] == '"' {
		if end := strings.IndexByte(rest[1:], '"'); end >= 0 {
			return rest[1 : end+1]
		}
	}

	if len(rest) >= 2 && rest[0] == '<' {
		if end := strings.IndexByte(rest, '>'); end >= 0 {
			return rest[1:end]
		}
	}

	return rest
}

func (p *Parser) parseStaticAssert(attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	start := p.stream.Next() // 'static_assert'

	if _, err := p.expectPunct("static_assert", "("); err != nil {
		return nil, err
	}

	exprTokens, message, err := p.collectStaticAssertArgs()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunct("static_assert", ";"); err != nil {
		return nil, err
	}

	decl := &cxxtypes.StaticAssertDecl{
		Common:     cxxtypes.Common{Sp: start.Span, Scope: p.scope.Current(), Attrs: attrs},
		Expression: exprTokens,
		Message:    message,
	}

	p.visitor.OnStaticAssert(decl)

	return decl, nil
}

// collectStaticAssertArgs reads the contents of "static_assert(" up to
// its matching ')', already having consumed the '(', splitting the
// condition from an optional trailing string-literal message.
func (p *Parser) collectStaticAssertArgs() (cond, message []cxxtoken.Token, err error) {
	depth := 0

	var all []cxxtoken.Token

	for {
		tok := p.stream.Peek(0)
		if tok.Kind == cxxtoken.Eof {
			return nil, nil, p.fail(diagnostic.UnbalancedDelimiter, "static_assert", "unterminated argument list")
		}

		if tok.Spelling == ")" && depth == 0 {
			break
		}

		switch tok.Spelling {
		case "(", "[", "{", "<":
			depth++
		case ")", "]", "}", ">":
			depth--
		}

		all = append(all, tok)
		p.stream.Next()
	}

	p.stream.Next() // ')'

	// split off a trailing top-level ", "message"" if present
	splitDepth := 0
	for i, t := range all {
		switch t.Spelling {
		case "(", "[", "{", "<":
			splitDepth++
		case ")", "]", "}", ">":
			splitDepth--
		}

		if t.Spelling == "," && i > 0 && splitDepth == 0 {
			return all[:i], all[i+1:], nil
		}
	}

	return all, nil, nil
}

func (p *Parser) parseFriend(attrs []cxxtypes.Attribute) (cxxtypes.Declaration, error) {
	start := p.stream.Next() // 'friend'

	tok := p.stream.Peek(0)
	if tok.Is("class", "struct", "union") && !p.looksLikeElaboratedMember() {
		cls, err := p.parseClassOrElaborated(attrs, true)
		if err != nil {
			return nil, err
		}

		cd, _ := cls.(*cxxtypes.ClassDecl)

		return &cxxtypes.FriendDecl{
			Common:     cxxtypes.Common{Sp: start.Span, Scope: p.scope.Current(), Attrs: attrs},
			TargetKind: cxxtypes.FriendClass,
			Class:      cd,
		}, nil
	}

	d, err := p.parseGeneralDeclaration(attrs, nil)
	if err != nil {
		return nil, err
	}

	fd := &cxxtypes.FriendDecl{
		Common: cxxtypes.Common{Sp: start.Span, Scope: p.scope.Current(), Attrs: attrs},
	}

	switch v := d.(type) {
	case *cxxtypes.FunctionDecl:
		v.IsFriend = true
		fd.TargetKind = cxxtypes.FriendFunction
		fd.Function = v
	case *cxxtypes.VariableDecl:
		fd.TargetKind = cxxtypes.FriendType
		fd.Type = v.Type
	default:
		fd.TargetKind = cxxtypes.FriendType
	}

	p.visitor.OnFriend(fd)

	return fd, nil
}

// subParserOverTokens builds a Parser over an already-collected token
// run (no underlying lexer), sharing this parser's scope stack and
// options, so a nested construct like one template argument can be
// speculatively parsed with the full declaration grammar and discarded
// on failure without disturbing the outer token stream.
func (p *Parser) subParserOverTokens(toks []cxxtoken.Token) *Parser {
	return &Parser{
		stream:   tokenstream.FromTokens(toks),
		scope:    p.scope,
		opts:     p.opts,
		visitor:  NullVisitor{},
		filename: p.filename,
	}
}

// looksLikeElaboratedMember distinguishes "friend class X;" (a friend
// declaration naming a whole class) from "friend struct X *p;" (an
// elaborated-type-specifier inside an ordinary member declaration); the
// latter is rare but legal, so a declarator continuing after the name
// is checked for with a checkpoint.
func (p *Parser) looksLikeElaboratedMember() bool {
	mark := p.stream.Checkpoint()
	defer p.stream.Rewind(mark)

	p.stream.Next() // class/struct/union

	if p.stream.Peek(0).Kind != cxxtoken.Identifier {
		return false
	}

	p.stream.Next()

	return !p.stream.Peek(0).Is(";", "{", ":")
}
