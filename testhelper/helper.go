// Package testhelper holds assertions shared by the engine and example tests.
package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var leadingTabs = regexp.MustCompile(`^(\t+)`)

// TrimIndent removes the first line and the indentation of the second line
// from every line, so multi-line sources can be written inline in tests.
// Remaining leading tabs become four spaces each.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}

	indent := lines[1][:len(lines[1])-len(strings.TrimLeft(lines[1], " \t"))]

	for i, line := range lines {
		line = strings.TrimPrefix(line, indent)
		lines[i] = leadingTabs.ReplaceAllStringFunc(line, func(match string) string {
			return strings.Repeat("    ", len(match))
		})
	}

	return strings.Join(lines[1:], "\n")
}
