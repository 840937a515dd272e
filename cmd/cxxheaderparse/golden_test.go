package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"golang.org/x/tools/txtar"

	cxxheaderparser "github.com/cppdecl/cxxheaderparser"
)

// Each testdata/*.txtar fixture bundles a header source and its expected
// dump output in one file, so a new case is one file instead of a
// matching pair.
func TestDumpGoldenFixtures(t *testing.T) {
	matches, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("glob testdata: %v", err)
	}

	if len(matches) == 0 {
		t.Fatalf("no golden fixtures found under testdata/")
	}

	for _, path := range matches {
		path := path

		t.Run(filepath.Base(path), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}

			input := string(txtarFile(ar, "input.h"))
			want := string(txtarFile(ar, "dump.txt"))

			decls, _, err := cxxheaderparser.Parse(path, input, cxxheaderparser.DefaultOptions(), nil)
			if err != nil {
				t.Fatalf("parse fixture input: %v", err)
			}

			var buf bytes.Buffer

			out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
			d := newDumper(&buf, out, 0)
			d.dumpAll(decls)

			if buf.String() != want {
				t.Errorf("dump mismatch for %s:\ngot:\n%s\nwant:\n%s", path, buf.String(), want)
			}
		})
	}
}

func txtarFile(ar *txtar.Archive, name string) []byte {
	for _, f := range ar.Files {
		if f.Name == name {
			return f.Data
		}
	}

	return nil
}
