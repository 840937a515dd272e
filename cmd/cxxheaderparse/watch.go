package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"golang.org/x/crypto/blake2b"

	cxxheaderparser "github.com/cppdecl/cxxheaderparser"
)

// watchFiles re-parses each of filenames whenever fsnotify reports a
// write, printing a fresh dump each time. A content hash of each file
// is kept so an editor's touch-then-write, or a filesystem-event storm
// that leaves the bytes unchanged, doesn't trigger a redundant reparse.
func watchFiles(w io.Writer, filenames []string, opts cxxheaderparser.Options, out *termenv.Output, width int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	hashes := make(map[string][32]byte, len(filenames))

	for _, fn := range filenames {
		if err := watcher.Add(fn); err != nil {
			return fmt.Errorf("watch %s: %w", fn, err)
		}

		if h, ok := hashFile(fn); ok {
			hashes[fn] = h
		}

		runOne(w, fn, opts, out, width)
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			h, ok := hashFile(ev.Name)
			if !ok {
				continue
			}

			if prev, seen := hashes[ev.Name]; seen && prev == h {
				continue
			}

			hashes[ev.Name] = h
			runOne(w, ev.Name, opts, out, width)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func hashFile(filename string) ([32]byte, bool) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return [32]byte{}, false
	}

	return blake2b.Sum256(raw), true
}

func runOne(w io.Writer, filename string, opts cxxheaderparser.Options, out *termenv.Output, width int) {
	fmt.Fprintf(w, "--- %s ---\n", filename)

	decls, diags, err := cxxheaderparser.ParseFile(filename, opts, nil)
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s\n", d)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)

		return
	}

	d := newDumper(w, out, width)
	d.dumpAll(decls)
}
