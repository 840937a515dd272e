// Package cxxlexer turns normalized C++ header source into a stream of
// cxxtoken.Token values: identifiers/keywords, numbers, string and
// character literals, punctuators, and whole preprocessor lines, with
// comments discarded except for their Doxygen-relevant text.
package cxxlexer

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/diagnostic"
	"github.com/cppdecl/cxxheaderparser/internal/position"
)

// alternativeTokens maps the word-spelled alternative operator tokens
// ([lex.digraph]) onto their punctuator spelling, so the parser never
// needs to know "bitand" and "&" are the same token.
var alternativeTokens = map[string]string{
	"and": "&&", "or": "||", "not": "!", "xor": "^",
	"bitand": "&", "bitor": "|", "compl": "~",
	"not_eq": "!=", "and_eq": "&=", "or_eq": "|=", "xor_eq": "^=",
}

// digraphs maps the punctuation digraphs onto the primary spelling they
// stand in for.
var digraphs = map[string]string{
	"<%": "{", "%>": "}", "<:": "[", ":>": "]", "%:": "#",
}

// multiCharPuncts is tried longest-first against the input at the current
// position; it covers the C++ operator/punctuator tokens longer than one
// byte except the digraphs (see digraphs) and ".*", which lexes as "."
// followed by "*" (raw string "R\"" is handled before this table is
// consulted).
var multiCharPuncts = []string{
	"%:%:",
	"<<=", ">>=", "...", "->*", "::*",
	"<=>",
	"<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
	"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"->", "::", "##",
}

// Error is a lexical error, carrying enough context for the caller to
// build a diagnostic.Diagnostic without the lexer importing the parser's
// recovery policy.
type Error struct {
	Pos     position.Position
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Message) }

// Kind alias avoids callers needing a second import just to spell
// diagnostic.Kind in code that only talks about lexer failures.
const lexicalErrorKind = diagnostic.LexicalError

// Lexer scans one source buffer from left to right, producing tokens on
// demand. It never backtracks; any lookahead or pushback needed by the
// parser is the token stream's job, layered on top.
type Lexer struct {
	filename string
	src      string
	offset   int // byte offset of the next unread byte
	line     int
	column   int // in grapheme clusters

	// pendingDoxygen holds the text of a /** ... */, /*! ... */, ///, or
	// //! comment block seen since the last token, as long as no blank
	// line broke the association with whatever comes next.
	pendingDoxygen string

	// atLineStart tracks whether only whitespace has been seen since the
	// last newline (or the start of file), so an indented "#define" is
	// still recognized as a preprocessor line.
	atLineStart bool

	// pendingLineDirective holds a "#line N \"file\"" (or GCC linemarker
	// "# N \"file\"") directive's target line/file until the newline
	// ending that directive's own physical line is consumed, at which
	// point it takes effect for every Location reported afterward.
	pendingLineDirective *lineDirective
}

// lineDirective is the parsed form of a "#line" / linemarker directive.
type lineDirective struct {
	line int
	file string // "" means keep the current filename
}

// New creates a Lexer over already-decoded, continuation-joined source
// text (see ReadSource).
func New(filename, src string) *Lexer {
	return &Lexer{filename: filename, src: src, line: 1, column: 1, atLineStart: true}
}

func (l *Lexer) pos() position.Position {
	return position.Position{Filename: l.filename, Line: l.line, Column: l.column, Offset: l.offset}
}

func (l *Lexer) eof() bool { return l.offset >= len(l.src) }

func (l *Lexer) peekByte() byte {
	if l.eof() {
		return 0
	}

	return l.src[l.offset]
}

func (l *Lexer) peekByteAt(ahead int) byte {
	if l.offset+ahead >= len(l.src) {
		return 0
	}

	return l.src[l.offset+ahead]
}

// advance consumes one grapheme cluster, correctly stepping line/column
// whether it is a plain ASCII byte or a multi-byte, possibly multi-rune
// cluster (combining marks in identifiers, UTF-8 in string literals).
func (l *Lexer) advance() {
	if l.eof() {
		return
	}

	if l.src[l.offset] == '\n' {
		l.offset++
		l.column = 1

		if d := l.pendingLineDirective; d != nil {
			l.pendingLineDirective = nil
			l.line = d.line

			if d.file != "" {
				l.filename = d.file
			}
		} else {
			l.line++
		}

		return
	}

	if l.src[l.offset] < 0x80 {
		l.offset++
		l.column++

		return
	}

	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(l.src[l.offset:], -1)
	if cluster == "" {
		l.offset++
	} else {
		l.offset += len(cluster)
	}

	l.column++
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// Next scans and returns the next token, skipping whitespace and comments
// and accumulating Doxygen comment text along the way. It returns an
// *Error for malformed literals and unrecognized characters.
func (l *Lexer) Next() (cxxtoken.Token, error) {
	if err := l.skipTrivia(); err != nil {
		return cxxtoken.Token{}, err
	}

	start := l.pos()
	atStart := l.atLineStart
	l.atLineStart = false

	if l.eof() {
		return cxxtoken.Token{Kind: cxxtoken.Eof, Span: position.Span{Start: start, End: start}}, nil
	}

	c := l.peekByte()

	switch {
	case c == '#' && atStart:
		return l.lexPreprocessorLine(start)
	case isIdentStart(c) || c >= 0x80:
		return l.lexIdentOrLiteralPrefixed(start)
	case isDigit(c) || (c == '.' && isDigit(l.peekByteAt(1))):
		return l.lexNumber(start)
	case c == '"':
		return l.lexString(start, "")
	case c == '\'':
		return l.lexChar(start, "")
	default:
		return l.lexPunct(start)
	}
}

// skipTrivia advances past whitespace and comments, recording Doxygen
// text it encounters. A blank line (two or more consecutive newlines)
// breaks any association between a pending Doxygen comment and whatever
// token follows, mirroring the reference lexer's newline-reset behavior.
func (l *Lexer) skipTrivia() error {
	newlinesInARow := 0

	for !l.eof() {
		c := l.peekByte()

		switch {
		case c == '\n':
			newlinesInARow++
			if newlinesInARow >= 2 {
				l.pendingDoxygen = ""
			}

			l.atLineStart = true
			l.advance()
		case c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r':
			l.advance()
		case c == '/' && l.peekByteAt(1) == '/':
			newlinesInARow = 0
			l.lexLineComment()
		case c == '/' && l.peekByteAt(1) == '*':
			newlinesInARow = 0
			if err := l.lexBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}

		if c != '\n' {
			newlinesInARow = 0
		}
	}

	return nil
}

func (l *Lexer) lexLineComment() {
	doxy := l.peekByteAt(2) == '/' || l.peekByteAt(2) == '!'

	var text strings.Builder

	l.advanceN(2) // "//"

	for !l.eof() && l.peekByte() != '\n' {
		text.WriteByte(l.peekByte())
		l.advance()
	}

	if doxy {
		l.pendingDoxygen = strings.TrimSpace(text.String()[1:])
	}
}

func (l *Lexer) lexBlockComment() error {
	start := l.pos()
	doxy := l.peekByteAt(2) == '*' && l.peekByteAt(3) != '/' || l.peekByteAt(2) == '!'

	var text strings.Builder

	l.advanceN(2) // "/*"

	for {
		if l.eof() {
			return &Error{Pos: start, Message: "unterminated block comment"}
		}

		if l.peekByte() == '*' && l.peekByteAt(1) == '/' {
			l.advanceN(2)

			break
		}

		text.WriteByte(l.peekByte())
		l.advance()
	}

	if doxy {
		body := text.String()
		if len(body) > 0 {
			body = body[1:] // drop the leading '*' or '!'
		}

		l.pendingDoxygen = cleanBlockDoxygen(body)
	}

	return nil
}

// cleanBlockDoxygen strips a leading "*" from each continuation line, the
// common convention for "/** ... */" blocks.
func cleanBlockDoxygen(body string) string {
	lines := strings.Split(body, "\n")
	for i, ln := range lines {
		ln = strings.TrimSpace(ln)
		lines[i] = strings.TrimPrefix(ln, "*")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// TakeDoxygen returns and clears any comment text accumulated immediately
// before the token most recently returned by Next. The token stream calls
// this right after receiving a token to associate leading documentation
// with it.
func (l *Lexer) TakeDoxygen() string {
	text := l.pendingDoxygen
	l.pendingDoxygen = ""

	return text
}

// PeekDoxygen reports the pending comment text without clearing it. The
// token stream does not call it; only TakeDoxygen feeds association.
func (l *Lexer) PeekDoxygen() string { return l.pendingDoxygen }

func (l *Lexer) lexPreprocessorLine(start position.Position) (cxxtoken.Token, error) {
	var text strings.Builder

	for !l.eof() && l.peekByte() != '\n' {
		text.WriteByte(l.peekByte())
		l.advance()
	}

	raw := text.String()

	if d, ok := parseLineDirective(raw); ok {
		l.pendingLineDirective = d
	}

	return cxxtoken.Token{Kind: cxxtoken.PPLine, Spelling: raw, Span: position.Span{Start: start, End: l.pos()}}, nil
}

// parseLineDirective recognizes "#line N" / "#line N \"file\"" and the
// GCC linemarker form "# N \"file\" flags...", reporting the line/file
// the NEXT physical line should be reported as (N itself names the line
// the directive's own successor begins, per [cpp.line]).
func parseLineDirective(raw string) (*lineDirective, bool) {
	s := strings.TrimLeft(raw[1:], " \t")

	if rest, ok := cutPrefixWord(s, "line"); ok {
		s = strings.TrimLeft(rest, " \t")
	} else if s == "" || !isDigit(s[0]) {
		return nil, false
	}

	n, rest := scanDigits(s)
	if n < 0 {
		return nil, false
	}

	rest = strings.TrimLeft(rest, " \t")

	d := &lineDirective{line: n}

	if len(rest) >= 2 && rest[0] == '"' {
		if end := strings.IndexByte(rest[1:], '"'); end >= 0 {
			d.file = rest[1 : end+1]
		}
	}

	return d, true
}

func cutPrefixWord(s, word string) (string, bool) {
	if !strings.HasPrefix(s, word) {
		return s, false
	}

	rest := s[len(word):]
	if rest != "" && !isPPSpace(rest[0]) {
		return s, false
	}

	return rest, true
}

func isPPSpace(c byte) bool { return c == ' ' || c == '\t' }

func scanDigits(s string) (int, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}

	if i == 0 {
		return -1, s
	}

	n := 0
	for _, c := range s[:i] {
		n = n*10 + int(c-'0')
	}

	return n, s[i:]
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// lexIdentOrLiteralPrefixed handles plain identifiers/keywords as well as
// the encoding-prefixed and raw string/char literal forms, whose prefix
// ("u8", "u", "U", "L", "R", or a combination like "u8R") is itself
// lexically an identifier until the lexer sees the quote that follows it.
func (l *Lexer) lexIdentOrLiteralPrefixed(start position.Position) (cxxtoken.Token, error) {
	var name strings.Builder

	for !l.eof() && (isIdentContinue(l.peekByte()) || l.peekByte() >= 0x80) {
		b := l.peekByte()
		if b >= 0x80 {
			cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(l.src[l.offset:], -1)
			name.WriteString(cluster)
		} else {
			name.WriteByte(b)
		}

		l.advance()
	}

	ident := name.String()

	if isLiteralPrefix(ident) && !l.eof() && (l.peekByte() == '"' || l.peekByte() == '\'') {
		if l.peekByte() == '"' {
			return l.lexString(start, ident)
		}

		return l.lexChar(start, ident)
	}

	if alt, ok := alternativeTokens[ident]; ok {
		return cxxtoken.Token{Kind: cxxtoken.Punct, Spelling: alt, Span: position.Span{Start: start, End: l.pos()}}, nil
	}

	return cxxtoken.Token{Kind: cxxtoken.Identifier, Spelling: ident, Span: position.Span{Start: start, End: l.pos()}}, nil
}

func isLiteralPrefix(s string) bool {
	switch s {
	case "u8", "u", "U", "L", "R", "u8R", "uR", "UR", "LR":
		return true
	default:
		return false
	}
}

// lexNumber scans an integer or floating-point literal, accepting hex,
// octal, binary, decimal-with-separators ('), exponents, and a trailing
// user-defined literal suffix (spec 4.1's ud-suffix), all folded into a
// single Number token; the parser does not need the subdivision because
// it never evaluates literal values.
func (l *Lexer) lexNumber(start position.Position) (cxxtoken.Token, error) {
	var text strings.Builder

	writeByte := func() {
		text.WriteByte(l.peekByte())
		l.advance()
	}

	isHex := l.peekByte() == '0' && (l.peekByteAt(1) == 'x' || l.peekByteAt(1) == 'X')
	isBin := l.peekByte() == '0' && (l.peekByteAt(1) == 'b' || l.peekByteAt(1) == 'B')

	if isHex || isBin {
		writeByte()
		writeByte()
	}

	digitOK := func(c byte) bool {
		switch {
		case isHex:
			return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') || c == '\''
		case isBin:
			return c == '0' || c == '1' || c == '\''
		default:
			return isDigit(c) || c == '\''
		}
	}

	for !l.eof() && digitOK(l.peekByte()) {
		writeByte()
	}

	if !isHex && !isBin {
		if l.peekByte() == '.' {
			writeByte()

			for !l.eof() && (isDigit(l.peekByte()) || l.peekByte() == '\'') {
				writeByte()
			}
		}

		if l.peekByte() == 'e' || l.peekByte() == 'E' {
			writeByte()

			if l.peekByte() == '+' || l.peekByte() == '-' {
				writeByte()
			}

			for !l.eof() && isDigit(l.peekByte()) {
				writeByte()
			}
		}
	} else if isHex && l.peekByte() == '.' {
		// hexadecimal floating-point significand
		writeByte()

		for !l.eof() && digitOK(l.peekByte()) {
			writeByte()
		}

		if l.peekByte() == 'p' || l.peekByte() == 'P' {
			writeByte()

			if l.peekByte() == '+' || l.peekByte() == '-' {
				writeByte()
			}

			for !l.eof() && isDigit(l.peekByte()) {
				writeByte()
			}
		}
	}

	// integer-suffix / floating-suffix / user-defined-literal suffix, all
	// folded together since we never interpret the literal's value.
	for !l.eof() && (isIdentContinue(l.peekByte())) {
		writeByte()
	}

	return cxxtoken.Token{Kind: cxxtoken.Number, Spelling: text.String(), Span: position.Span{Start: start, End: l.pos()}}, nil
}

// lexString scans a regular or raw string literal. prefix is the already
// consumed encoding/raw prefix ("", "u8", "u", "U", "L", "R", "u8R", ...).
func (l *Lexer) lexString(start position.Position, prefix string) (cxxtoken.Token, error) {
	if strings.HasSuffix(prefix, "R") {
		return l.lexRawString(start, prefix)
	}

	var text strings.Builder

	text.WriteString(prefix)
	text.WriteByte('"')
	l.advance() // opening quote

	for {
		if l.eof() {
			return cxxtoken.Token{}, &Error{Pos: start, Message: "unterminated string literal"}
		}

		c := l.peekByte()
		if c == '"' {
			text.WriteByte('"')
			l.advance()

			break
		}

		if c == '\\' && !l.eof() {
			text.WriteByte(c)
			l.advance()

			if !l.eof() {
				text.WriteByte(l.peekByte())
				l.advance()
			}

			continue
		}

		if c == '\n' {
			return cxxtoken.Token{}, &Error{Pos: start, Message: "unterminated string literal"}
		}

		text.WriteByte(c)
		l.advance()
	}

	// possible ud-suffix, and possible adjacent string concatenation,
	// which the parser handles by seeing two consecutive StringLiteral
	// tokens; here we only consume a trailing identifier suffix.
	for !l.eof() && isIdentContinue(l.peekByte()) {
		text.WriteByte(l.peekByte())
		l.advance()
	}

	return cxxtoken.Token{Kind: cxxtoken.StringLiteral, Spelling: text.String(), Span: position.Span{Start: start, End: l.pos()}}, nil
}

// lexRawString scans R"delim(...)delim" per [lex.string], where delim is
// at most 16 characters from a restricted set.
func (l *Lexer) lexRawString(start position.Position, prefix string) (cxxtoken.Token, error) {
	var text strings.Builder

	text.WriteString(prefix)
	l.advance() // opening quote

	var delim strings.Builder

	for !l.eof() && l.peekByte() != '(' {
		delim.WriteByte(l.peekByte())
		l.advance()
	}

	if l.eof() {
		return cxxtoken.Token{}, &Error{Pos: start, Message: "malformed raw string delimiter"}
	}

	text.WriteByte('"')
	text.WriteString(delim.String())
	text.WriteByte('(')
	l.advance() // '('

	terminator := ")" + delim.String() + "\""

	for {
		if l.eof() {
			return cxxtoken.Token{}, &Error{Pos: start, Message: "unterminated raw string literal"}
		}

		if l.peekByte() == ')' && strings.HasPrefix(l.src[l.offset:], terminator) {
			text.WriteString(terminator)
			l.advanceN(len(terminator))

			break
		}

		text.WriteByte(l.peekByte())
		l.advance()
	}

	return cxxtoken.Token{Kind: cxxtoken.StringLiteral, Spelling: text.String(), Span: position.Span{Start: start, End: l.pos()}}, nil
}

func (l *Lexer) lexChar(start position.Position, prefix string) (cxxtoken.Token, error) {
	var text strings.Builder

	text.WriteString(prefix)
	text.WriteByte('\'')
	l.advance() // opening quote

	for {
		if l.eof() {
			return cxxtoken.Token{}, &Error{Pos: start, Message: "unterminated character literal"}
		}

		c := l.peekByte()
		if c == '\'' {
			text.WriteByte('\'')
			l.advance()

			break
		}

		if c == '\\' {
			text.WriteByte(c)
			l.advance()

			if !l.eof() {
				text.WriteByte(l.peekByte())
				l.advance()
			}

			continue
		}

		if c == '\n' {
			return cxxtoken.Token{}, &Error{Pos: start, Message: "unterminated character literal"}
		}

		text.WriteByte(c)
		l.advance()
	}

	for !l.eof() && isIdentContinue(l.peekByte()) {
		text.WriteByte(l.peekByte())
		l.advance()
	}

	return cxxtoken.Token{Kind: cxxtoken.CharLiteral, Spelling: text.String(), Span: position.Span{Start: start, End: l.pos()}}, nil
}

func (l *Lexer) lexPunct(start position.Position) (cxxtoken.Token, error) {
	rest := l.src[l.offset:]

	// Longest match wins: "%:%:" must be tried before the "%:" digraph.
	for _, op := range multiCharPuncts {
		if strings.HasPrefix(rest, op) {
			l.advanceN(len(op))

			return cxxtoken.Token{Kind: cxxtoken.Punct, Spelling: op, Span: position.Span{Start: start, End: l.pos()}}, nil
		}
	}

	for dg, canon := range digraphs {
		if strings.HasPrefix(rest, dg) {
			l.advanceN(len(dg))

			return cxxtoken.Token{Kind: cxxtoken.Punct, Spelling: canon, Span: position.Span{Start: start, End: l.pos()}}, nil
		}
	}

	c := l.peekByte()
	if !isPunctByte(c) {
		return cxxtoken.Token{}, &Error{Pos: start, Message: fmt.Sprintf("unexpected character %q", c)}
	}

	l.advance()

	return cxxtoken.Token{Kind: cxxtoken.Punct, Spelling: string(c), Span: position.Span{Start: start, End: l.pos()}}, nil
}

func isPunctByte(c byte) bool {
	switch c {
	case '{', '}', '[', ']', '(', ')', ';', ':', '?', '.', '~', '!',
		'+', '-', '*', '/', '%', '^', '&', '|', '=', '<', '>', ',', '#', '@', '$':
		return true
	default:
		return false
	}
}
