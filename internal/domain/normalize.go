// Package domain implements the grading workflow behind the drill CLI.
package domain

import (
	"strings"
	"unicode"
)

// normalizeOutput canonicalizes program output before comparison. Trailing
// whitespace is stripped from every line, line endings collapse to "\n" and
// surrounding blank space of the whole text is dropped. A missing final
// newline therefore never fails a vector.
func normalizeOutput(raw string) string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	lines := strings.Split(normalized, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
