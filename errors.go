package cxxheaderparser

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/cppdecl/cxxheaderparser/internal/cxxparser"
	"github.com/cppdecl/cxxheaderparser/internal/diagnostic"
)

// ErrorKind is the closed set of reasons a parse can fail.
type ErrorKind = diagnostic.Kind

const (
	// ErrLexical covers unterminated strings/chars/comments, invalid
	// characters, and malformed numbers.
	ErrLexical = diagnostic.LexicalError
	// ErrUnexpectedToken covers "expected one of {...}, found T".
	ErrUnexpectedToken = diagnostic.UnexpectedToken
	// ErrUnbalancedDelimiter covers mismatched brackets/parens/braces.
	ErrUnbalancedDelimiter = diagnostic.UnbalancedDelimiter
	// ErrAmbiguousDeclaration covers a declaration-vs-expression
	// resolution that reached no conclusion.
	ErrAmbiguousDeclaration = diagnostic.AmbiguousDeclaration
	// ErrUnsupported covers a construct recognized as valid C++ but
	// intentionally unmodeled; Parse never returns this as a top-level
	// error, since Unsupported is recoverable, but it can appear in a
	// Diagnostic slice.
	ErrUnsupported = diagnostic.Unsupported
	// ErrInternalInvariantBroken is a bug guard; always fatal.
	ErrInternalInvariantBroken = diagnostic.InternalInvariantBroken
)

// ParseError is returned from Parse/ParseFile/ParseFiles when a fatal
// diagnostic aborted the parse. Partial holds the top-level declarations
// collected before the failure, so a caller that wants "best effort"
// results can use them instead of discarding the whole file.
type ParseError struct {
	Kind     ErrorKind
	Message  string
	Filename string
	Line     int
	Column   int
	Partial  []Declaration
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("%d:%d", e.Line, e.Column)
	if e.Filename != "" {
		loc = fmt.Sprintf("%s:%s", e.Filename, loc)
	}

	return fmt.Sprintf("%s: %s: %s", loc, e.Kind, e.Message)
}

// wrapParseError translates the internal parser's *cxxparser.ParseError
// into the public *ParseError, preserving github.com/pkg/errors' stack
// trace so callers chaining errors.Unwrap/errors.As still reach it.
func wrapParseError(err error) error {
	var pe *cxxparser.ParseError
	if !errors.As(err, &pe) {
		return pkgerrors.WithStack(err)
	}

	return pkgerrors.WithStack(&ParseError{
		Kind:     pe.Diagnostic.Kind,
		Message:  pe.Diagnostic.Message,
		Filename: pe.Diagnostic.Location.Filename,
		Line:     pe.Diagnostic.Location.Line,
		Column:   pe.Diagnostic.Location.Column,
		Partial:  pe.Partial,
	})
}

// wrapIOError wraps a failure reading or decoding a source file, keeping
// it distinguishable from a *ParseError via errors.As.
func wrapIOError(err error) error {
	return pkgerrors.WithStack(err)
}
