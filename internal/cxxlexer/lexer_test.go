package cxxlexer

import (
	"testing"

	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
)

func scanAll(t *testing.T, src string) []cxxtoken.Token {
	t.Helper()

	lx := New("<test>", src)

	var toks []cxxtoken.Token

	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("lex %q: %v", src, err)
		}

		toks = append(toks, tok)

		if tok.Kind == cxxtoken.Eof {
			return toks
		}
	}
}

// Property 1: source_text[token.span] == token.spelling for ordinary
// tokens (excludes PPLine, whose Spelling already strips the newline).
func TestTokenSpanMatchesSpelling(t *testing.T) {
	src := "int x = foo_bar(42, \"hi\");"

	for _, tok := range scanAll(t, src) {
		if tok.Kind == cxxtoken.Eof {
			continue
		}

		got := src[tok.Span.Start.Offset:tok.Span.End.Offset]
		if got != tok.Spelling {
			t.Errorf("token %v: span text %q != spelling %q", tok.Kind, got, tok.Spelling)
		}
	}
}

func TestLineDirectiveUpdatesLocation(t *testing.T) {
	src := "int a;\n#line 100 \"other.h\"\nint b;\n"

	toks := scanAll(t, src)

	var bTok cxxtoken.Token

	for _, tok := range toks {
		if tok.Kind == cxxtoken.Identifier && tok.Spelling == "b" {
			bTok = tok
		}
	}

	if bTok.Spelling != "b" {
		t.Fatalf("did not find identifier b in %v", toks)
	}

	if bTok.Span.Start.Line != 100 {
		t.Errorf("expected line 100 after #line directive, got %d", bTok.Span.Start.Line)
	}

	if bTok.Span.Start.Filename != "other.h" {
		t.Errorf("expected filename other.h after #line directive, got %q", bTok.Span.Start.Filename)
	}
}

func TestGCCLinemarkerUpdatesLocation(t *testing.T) {
	src := "int a;\n# 5 \"included.h\" 1\nint b;\n"

	toks := scanAll(t, src)

	for _, tok := range toks {
		if tok.Kind == cxxtoken.Identifier && tok.Spelling == "b" {
			if tok.Span.Start.Line != 5 {
				t.Errorf("expected line 5 after linemarker, got %d", tok.Span.Start.Line)
			}

			if tok.Span.Start.Filename != "included.h" {
				t.Errorf("expected filename included.h after linemarker, got %q", tok.Span.Start.Filename)
			}

			return
		}
	}

	t.Fatalf("did not find identifier b in %v", toks)
}

func TestDoxygenLeadingAssociation(t *testing.T) {
	src := "/// does a thing\nint f();\n"

	lx := New("<test>", src)

	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("lex: %v", err)
		}

		if tok.Kind == cxxtoken.Eof {
			t.Fatalf("ran off end without finding f")
		}

		if tok.Spelling == "f" {
			if lx.TakeDoxygen() != "does a thing" {
				t.Errorf("expected doxygen comment attached, got %q", lx.PeekDoxygen())
			}

			return
		}
	}
}

func TestReadSourceStripsBOMAndNormalizesLineEndings(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("int a;\r\nint b;\r")...)

	got, err := ReadSource(raw)
	if err != nil {
		t.Fatalf("ReadSource: %v", err)
	}

	want := "int a;\nint b;\n"
	if got != want {
		t.Errorf("ReadSource(%q) = %q, want %q", raw, got, want)
	}
}

func TestReadSourceJoinsLineContinuations(t *testing.T) {
	got, err := ReadSource([]byte("int a = 1 + \\\n2;\n"))
	if err != nil {
		t.Fatalf("ReadSource: %v", err)
	}

	want := "int a = 1 + 2;\n"
	if got != want {
		t.Errorf("ReadSource = %q, want %q", got, want)
	}
}
