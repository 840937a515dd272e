// Package termwidth detects the output terminal's column width, used by
// the CLI to wrap its colorized declaration dump.
package termwidth

import (
	"os"
	"strconv"
)

const defaultWidth = 80

// Width returns fd's terminal width in columns. It falls back to
// $COLUMNS, then to defaultWidth, when the platform probe fails --
// fd isn't a terminal, or width detection isn't implemented for this OS.
func Width(fd uintptr) int {
	if w, ok := detectWidth(fd); ok && w > 0 {
		return w
	}

	if v := os.Getenv("COLUMNS"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			return w
		}
	}

	return defaultWidth
}
