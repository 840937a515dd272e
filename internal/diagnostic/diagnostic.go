// Package diagnostic implements the error taxonomy of the parser's
// error-handling design: a small, closed set of diagnostic kinds, each
// carrying the source span and a message that names the construct being
// parsed.
package diagnostic

import (
	"fmt"

	"github.com/cppdecl/cxxheaderparser/internal/position"
)

// Kind is the closed set of error kinds a parse can produce.
type Kind int

const (
	// LexicalError covers unterminated strings/chars/comments, invalid
	// characters, and malformed numbers.
	LexicalError Kind = iota
	// UnexpectedToken covers "expected one of {...}, found T".
	UnexpectedToken
	// UnbalancedDelimiter covers mismatched brackets/parens/braces.
	UnbalancedDelimiter
	// AmbiguousDeclaration covers a declaration-vs-expression resolution
	// that reached no conclusion.
	AmbiguousDeclaration
	// Unsupported covers a construct recognized as valid C++ but
	// intentionally unmodeled.
	Unsupported
	// InternalInvariantBroken is a bug guard; always fatal.
	InternalInvariantBroken
)

// String names the kind the way a message prefix would.
func (k Kind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case UnexpectedToken:
		return "unexpected token"
	case UnbalancedDelimiter:
		return "unbalanced delimiter"
	case AmbiguousDeclaration:
		return "ambiguous declaration"
	case Unsupported:
		return "unsupported construct"
	case InternalInvariantBroken:
		return "internal invariant broken"
	default:
		return "unknown error"
	}
}

// Fatal reports whether a diagnostic of this kind aborts the parse.
// LexicalError, UnexpectedToken, UnbalancedDelimiter, AmbiguousDeclaration,
// and InternalInvariantBroken are fatal; Unsupported is recoverable.
func (k Kind) Fatal() bool {
	return k != Unsupported
}

// Diagnostic is a single {kind, message, location} record, the
// user-visible form required by the error-handling design.
type Diagnostic struct {
	Kind     Kind
	Message  string
	Location position.Position
	// While naming the construct being parsed, e.g. "template argument
	// list starting at".
	Context string
}

func (d Diagnostic) String() string {
	if d.Context != "" {
		return fmt.Sprintf("%s: %s (%s): %s", d.Location, d.Kind, d.Context, d.Message)
	}

	return fmt.Sprintf("%s: %s: %s", d.Location, d.Kind, d.Message)
}

// New builds a Diagnostic.
func New(kind Kind, loc position.Position, context, message string) Diagnostic {
	return Diagnostic{Kind: kind, Message: message, Location: loc, Context: context}
}
