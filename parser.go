// Package cxxheaderparser parses C++ header declarations into a
// structured, source-order AST: namespaces, classes, templates,
// functions, variables, typedefs, using-declarations, enums, and the
// other constructs a header-only front end needs to recognize, without
// evaluating macros, expressions, or template instantiations.
//
// The zero-effort path is Parse/ParseFile for a single source; ParseFiles
// fans a batch of independent headers out across goroutines. A caller
// that wants the flat event stream implements Visitor directly; one that
// wants a "give me this class's methods" view uses SimpleVisitor's
// ParsedData instead.
package cxxheaderparser

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/cppdecl/cxxheaderparser/internal/cxxlexer"
	"github.com/cppdecl/cxxheaderparser/internal/cxxparser"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
	"github.com/cppdecl/cxxheaderparser/internal/diagnostic"
)

// Options are the caller-supplied knobs for one parse. See DefaultOptions.
type Options = cxxparser.Options

// Declaration is a closed variant over every declaration kind the
// parser recognizes; see the cxxtypes package for the full list.
type Declaration = cxxtypes.Declaration

// Visitor receives parse events in source order. NullVisitor implements
// every method as a no-op, for embedding.
type Visitor = cxxparser.Visitor

// NullVisitor is a Visitor whose methods all do nothing.
type NullVisitor = cxxparser.NullVisitor

// SimpleVisitor is the default Visitor: besides whatever events a
// caller handles directly, it builds a ParsedData aggregate of nested
// namespace/class scopes.
type SimpleVisitor = cxxparser.SimpleVisitor

// ParsedData, NamespaceScope, and ClassScope are SimpleVisitor's
// aggregate result types.
type (
	ParsedData     = cxxparser.ParsedData
	NamespaceScope = cxxparser.NamespaceScope
	ClassScope     = cxxparser.ClassScope
)

// Diagnostic is one structured parse diagnostic: kind, message, and
// source location.
type Diagnostic = diagnostic.Diagnostic

// DefaultOptions returns the default Options: preprocessor lines and
// Doxygen comments retained, method bodies skipped, vendor attributes
// and concepts accepted, void-to-zero-params normalization on, strict
// mode off.
func DefaultOptions() Options { return cxxparser.DefaultOptions() }

// NewSimpleVisitor creates a ready-to-use SimpleVisitor.
func NewSimpleVisitor() *SimpleVisitor { return cxxparser.NewSimpleVisitor() }

// Parse parses already-decoded source text. filename is used only for
// diagnostics and Location values; it need not be a real path. A nil
// visitor is equivalent to NullVisitor{}.
func Parse(filename, src string, opts Options, visitor Visitor) ([]Declaration, []Diagnostic, error) {
	p := cxxparser.New(filename, src, opts, visitor)

	decls, diags, err := p.Parse()
	if err != nil {
		return decls, diags, wrapParseError(err)
	}

	return decls, diags, nil
}

// ParseFile reads filename, decodes it via ReadSource (stripping a
// leading UTF-8 BOM and normalizing line endings), and parses it.
func ParseFile(filename string, opts Options, visitor Visitor) ([]Declaration, []Diagnostic, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, wrapIOError(err)
	}

	src, err := ReadSource(raw)
	if err != nil {
		return nil, nil, wrapIOError(err)
	}

	return Parse(filename, src, opts, visitor)
}

// ReadSource decodes raw header bytes per the Source Reader component:
// BOM stripped, CRLF/CR normalized to LF, backslash line-continuations
// joined.
func ReadSource(raw []byte) (string, error) { return cxxlexer.ReadSource(raw) }

// FileResult is one file's outcome from ParseFiles.
type FileResult struct {
	Filename     string
	Declarations []Declaration
	Diagnostics  []Diagnostic
	Err          error
}

// ParseFiles parses a batch of independent headers concurrently, one
// goroutine per file via golang.org/x/sync/errgroup. newVisitor, if
// non-nil, is called once per filename to build that file's Visitor;
// pass nil to parse with NullVisitor. A per-file failure is reported in
// that file's FileResult.Err rather than aborting the rest of the batch,
// since the files are independent by construction.
func ParseFiles(filenames []string, opts Options, newVisitor func(filename string) Visitor) []FileResult {
	results := make([]FileResult, len(filenames))

	g, _ := errgroup.WithContext(context.Background())

	for i, fn := range filenames {
		i, fn := i, fn

		g.Go(func() error {
			var v Visitor
			if newVisitor != nil {
				v = newVisitor(fn)
			}

			decls, diags, err := ParseFile(fn, opts, v)
			results[i] = FileResult{Filename: fn, Declarations: decls, Diagnostics: diags, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results
}
