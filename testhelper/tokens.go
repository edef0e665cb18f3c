package testhelper

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/syntactix/token"
)

// AssertReconstructs checks the two structural properties of a scan result:
// offsets strictly increase without overlapping, and joining every lexeme with
// the skipped text between tokens gives back source exactly.
func AssertReconstructs[T comparable, Tok token.Like[T]](t *testing.T, source string, tokens []Tok) {
	t.Helper()

	src := []rune(source)

	var sb strings.Builder

	cursor := 0
	for i, tok := range tokens {
		start := tok.Pos().Offset
		if start < cursor || start > len(src) {
			t.Fatalf("token %d (%q) at %d overlaps the previous token or leaves the source (cursor %d)", i, tok.Lexeme(), start, cursor)
		}

		if i > 0 {
			assert.True(t, tokens[i-1].Pos().Before(tok.Pos()), "token %d offset does not increase", i)
		}

		sb.WriteString(string(src[cursor:start]))
		sb.WriteString(tok.Lexeme())
		cursor = token.End[T](tok)
	}

	if cursor <= len(src) {
		sb.WriteString(string(src[cursor:]))
	}

	assert.Equal(t, source, sb.String())
}
