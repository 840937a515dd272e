package main

import (
	"strings"

	"github.com/rivo/uniseg"
)

// wrap breaks text into width-bounded lines, each one prefixed with
// indent (continuation lines get two extra spaces), counting columns by
// grapheme cluster rather than byte or rune so multi-byte identifiers
// don't wrap early. width <= 0 disables wrapping.
func wrap(indent, text string, width int) string {
	avail := width - len(indent)
	if width <= 0 || avail <= 0 || uniseg.GraphemeClusterCount(text) <= avail {
		return indent + text
	}

	var b strings.Builder

	b.WriteString(indent)

	cont := indent + "  "
	contAvail := width - len(cont)

	col := 0
	first := true

	g := uniseg.NewGraphemes(text)

	for g.Next() {
		cluster := g.Str()

		limit := avail
		if !first {
			limit = contAvail
		}

		if col >= limit {
			b.WriteString("\n")
			b.WriteString(cont)

			col = 0
			first = false
		}

		b.WriteString(cluster)
		col++
	}

	return b.String()
}
