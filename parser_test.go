package cxxheaderparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseSimpleVariable(t *testing.T) {
	decls, diags, err := Parse("<test>", "int x = 3;", DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}

	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
}

func TestParseUnbalancedDelimiterReturnsParseError(t *testing.T) {
	_, _, err := Parse("<test>", "class C {", DefaultOptions(), nil)
	if err == nil {
		t.Fatalf("expected an error for an unterminated class body")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected errors.As to find a *ParseError, got %v (%T)", err, err)
	}

	if pe.Kind != ErrUnbalancedDelimiter {
		t.Fatalf("expected ErrUnbalancedDelimiter, got %v", pe.Kind)
	}

	if pe.Filename != "<test>" {
		t.Fatalf("expected filename <test>, got %q", pe.Filename)
	}
}

func TestParseFileReadsAndParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "header.h")

	if err := os.WriteFile(path, []byte("int x = 3;\n"), 0o644); err != nil {
		t.Fatalf("write temp header: %v", err)
	}

	decls, _, err := ParseFile(path, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
}

func TestParseFileMissingFileReturnsWrappedError(t *testing.T) {
	_, _, err := ParseFile(filepath.Join(t.TempDir(), "missing.h"), DefaultOptions(), nil)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		t.Fatalf("missing-file error should not unwrap to a *ParseError, got %#v", pe)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected the wrapped error to satisfy os.ErrNotExist, got %v", err)
	}
}

func TestParseFilesIsolatesPerFileErrors(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.h")
	bad := filepath.Join(dir, "bad.h")

	if err := os.WriteFile(good, []byte("int x = 3;\n"), 0o644); err != nil {
		t.Fatalf("write good.h: %v", err)
	}

	if err := os.WriteFile(bad, []byte("class C {\n"), 0o644); err != nil {
		t.Fatalf("write bad.h: %v", err)
	}

	results := ParseFiles([]string{good, bad}, DefaultOptions(), nil)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	byName := map[string]FileResult{}
	for _, r := range results {
		byName[r.Filename] = r
	}

	if byName[good].Err != nil {
		t.Fatalf("expected good.h to parse cleanly, got %v", byName[good].Err)
	}

	if len(byName[good].Declarations) != 1 {
		t.Fatalf("expected 1 declaration from good.h, got %d", len(byName[good].Declarations))
	}

	if byName[bad].Err == nil {
		t.Fatalf("expected bad.h to fail")
	}

	var pe *ParseError
	if !errors.As(byName[bad].Err, &pe) {
		t.Fatalf("expected bad.h's error to unwrap to *ParseError, got %v", byName[bad].Err)
	}
}

func TestParseFilesUsesPerFileVisitor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "header.h")

	if err := os.WriteFile(path, []byte("int x = 3;\n"), 0o644); err != nil {
		t.Fatalf("write temp header: %v", err)
	}

	var gotFilename string

	results := ParseFiles([]string{path}, DefaultOptions(), func(filename string) Visitor {
		gotFilename = filename
		return NewSimpleVisitor()
	})

	if gotFilename != path {
		t.Fatalf("expected newVisitor to be called with %q, got %q", path, gotFilename)
	}

	if results[0].Err != nil {
		t.Fatalf("ParseFiles: %v", results[0].Err)
	}
}

func TestNewSimpleVisitorCollectsTopLevelVariable(t *testing.T) {
	sv := NewSimpleVisitor()

	_, _, err := Parse("<test>", "int x = 3;", DefaultOptions(), sv)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(sv.Data.Global.Variables) != 1 || sv.Data.Global.Variables[0].Name != "x" {
		t.Fatalf("expected top-level variable x, got %#v", sv.Data.Global.Variables)
	}
}
