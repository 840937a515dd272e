// Command cxxheaderparse parses one or more C++ header files and dumps
// their declarations, colorized when stdout is a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	cxxheaderparser "github.com/cppdecl/cxxheaderparser"
	"github.com/cppdecl/cxxheaderparser/internal/cxxparser"
	"github.com/cppdecl/cxxheaderparser/internal/termwidth"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath      string
		requireVersion  string
		watch           bool
		noColor         bool
		strict          bool
		methodBody      bool
		skipExternTempl bool
	)

	cmd := &cobra.Command{
		Use:     "cxxheaderparse [flags] header...",
		Short:   "Parse C++ headers and dump their declarations",
		Version: Version,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRequiredVersion(requireVersion); err != nil {
				return err
			}

			opts := cxxheaderparser.DefaultOptions()
			opts.Strict = strict

			if methodBody {
				opts.MethodBody = cxxparser.RetainMethodBodyTokens
			}

			if skipExternTempl {
				opts.ExternTemplate = cxxparser.SkipExternTemplate
			}

			opts, fcNoColor, err := loadConfig(configPath, opts)
			if err != nil {
				return fmt.Errorf("load config %s: %w", configPath, err)
			}

			if fcNoColor != nil {
				noColor = noColor || *fcNoColor
			}

			out := termOutput(noColor)
			width := termwidth.Width(os.Stdout.Fd())

			if watch {
				return watchFiles(os.Stdout, args, opts, out, width)
			}

			return dumpFiles(os.Stdout, args, opts, out, width)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML file overlaying Options defaults")
	cmd.Flags().StringVar(&requireVersion, "require-version", "", "refuse to run unless this build satisfies the given semver constraint")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-parse and re-dump whenever a given file's content changes")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized output even on a terminal")
	cmd.Flags().BoolVar(&strict, "strict", false, "set Options.Strict (the parser does not read it; parsing is unchanged)")
	cmd.Flags().BoolVar(&methodBody, "retain-method-bodies", false, "keep method bodies as opaque token runs instead of discarding them")
	cmd.Flags().BoolVar(&skipExternTempl, "skip-extern-template", false, "drop explicit-instantiation declarations instead of recording them")

	return cmd
}

// termOutput builds the termenv.Output that colorizes dump output,
// degrading to termenv.Ascii (no escape codes) when stdout isn't a
// terminal or --no-color was given.
func termOutput(noColor bool) *termenv.Output {
	if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		return termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	}

	return termenv.NewOutput(os.Stdout)
}

func dumpFiles(w *os.File, filenames []string, opts cxxheaderparser.Options, out *termenv.Output, width int) error {
	var firstErr error

	for _, fn := range filenames {
		fmt.Fprintf(w, "--- %s ---\n", fn)

		decls, diags, err := cxxheaderparser.ParseFile(fn, opts, nil)
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d)
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", fn, err)

			if firstErr == nil {
				firstErr = err
			}

			continue
		}

		d := newDumper(w, out, width)
		d.dumpAll(decls)
	}

	return firstErr
}
