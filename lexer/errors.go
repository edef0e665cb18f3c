package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shibukawa/syntactix"
	"github.com/shibukawa/syntactix/token"
)

// Error is a scan-time failure. It unwraps to the sentinel of its Kind.
type Error struct {
	Kind syntactix.ErrorKind
	Pos  token.Position

	// Count is the number of chars that could not be consumed (ConsumptionFailed).
	Count int
	// Candidates lists the strings that were required, in the order given (RequirementFailed).
	Candidates []string
	// Char is the rejected character (UnexpectedItem).
	Char rune
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case syntactix.ConsumptionFailed:
		return fmt.Sprintf("tried to consume %d chars, but found too few or EOF at %s", e.Count, e.Pos)
	case syntactix.RequirementFailed:
		return fmt.Sprintf("expected %s, but did not find it at %s", describeCandidates(e.Candidates), e.Pos)
	case syntactix.UnexpectedItem:
		return fmt.Sprintf("unexpected char %s at %s", quoteChar(e.Char), e.Pos)
	default:
		return fmt.Sprintf("lexer failed at %s", e.Pos)
	}
}

// Unwrap returns the sentinel error of the kind.
func (e *Error) Unwrap() error {
	return e.Kind.Err()
}

// Position returns where the failure was detected.
func (e *Error) Position() token.Position {
	return e.Pos
}

// describeCandidates renders a single candidate as 'x' and several as one of ['x', 'y'].
func describeCandidates(candidates []string) string {
	if len(candidates) == 1 {
		return "'" + candidates[0] + "'"
	}

	quoted := make([]string, len(candidates))
	for i, c := range candidates {
		quoted[i] = "'" + c + "'"
	}

	return "one of [" + strings.Join(quoted, ", ") + "]"
}

func quoteChar(ch rune) string {
	if ch == EOF {
		return "EOF"
	}

	if !unicode.IsPrint(ch) {
		return strconv.QuoteRune(ch)
	}

	return "'" + string(ch) + "'"
}
