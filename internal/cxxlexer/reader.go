package cxxlexer

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadSource decodes raw header bytes into normalized UTF-8 text: any
// leading UTF-8 BOM is stripped (golang.org/x/text/encoding/unicode,
// mirroring the reference implementation's "utf-8-sig" file encoding),
// Windows/old-Mac line endings are normalized to "\n", and backslash
// line-continuations are removed by joining the continued lines.
func ReadSource(raw []byte) (string, error) {
	decoder := unicode.UTF8BOM.NewDecoder()

	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", err
	}

	decoded = bytes.ReplaceAll(decoded, []byte("\r\n"), []byte("\n"))
	decoded = bytes.ReplaceAll(decoded, []byte("\r"), []byte("\n"))
	decoded = stripLineContinuations(decoded)

	return string(decoded), nil
}

// stripLineContinuations removes a trailing "\\\n" (optionally followed
// by trailing whitespace before the newline) by joining the physical
// line with the one that follows it, so token scanning never observes
// the continuation itself.
func stripLineContinuations(src []byte) []byte {
	out := make([]byte, 0, len(src))

	for i := 0; i < len(src); i++ {
		if src[i] == '\\' {
			j := i + 1
			for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
				j++
			}

			if j < len(src) && src[j] == '\n' {
				i = j // skip the backslash, trailing blanks, and the newline

				continue
			}
		}

		out = append(out, src[i])
	}

	return out
}
