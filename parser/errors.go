package parser

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/shibukawa/syntactix"
	"github.com/shibukawa/syntactix/token"
)

// Error is a parse-time failure. It unwraps to the sentinel of its Kind.
type Error[T comparable] struct {
	Kind syntactix.ErrorKind
	Pos  token.Position

	// Count is the number of tokens that could not be consumed (ConsumptionFailed).
	Count int
	// Candidates are the candidates passed to Require, unmodified (RequirementFailed).
	Candidates []Candidate[T]
	// Token is the rejected token (UnexpectedItem).
	Token token.Like[T]
}

// Error implements the error interface.
func (e *Error[T]) Error() string {
	switch e.Kind {
	case syntactix.ConsumptionFailed:
		return fmt.Sprintf("tried to consume %d tokens, but found too few or EOF at %s", e.Count, e.Pos)
	case syntactix.RequirementFailed:
		return fmt.Sprintf("expected %s, but did not find it at %s", describe(e.Candidates), e.Pos)
	case syntactix.UnexpectedItem:
		if isNil(e.Token) {
			return fmt.Sprintf("unexpected token at %s", e.Pos)
		}

		return fmt.Sprintf("unexpected token '%s' at %s", e.Token.Lexeme(), e.Pos)
	default:
		return fmt.Sprintf("parser failed at %s", e.Pos)
	}
}

// Unwrap returns the sentinel error of the kind.
func (e *Error[T]) Unwrap() error {
	return e.Kind.Err()
}

// Position returns where the failure was detected.
func (e *Error[T]) Position() token.Position {
	return e.Pos
}

// InvariantError reports a grammar rule that assumed a lookahead slot was
// filled when it was not. It is a bug in the rule, never a property of the
// input, and is raised with panic so that error recovery cannot swallow it.
type InvariantError struct {
	Op    string
	Index int
	Len   int
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s found no token at index %d of %d", syntactix.ErrInvariantViolation, e.Op, e.Index, e.Len)
}

// Unwrap returns ErrInvariantViolation.
func (e *InvariantError) Unwrap() error {
	return syntactix.ErrInvariantViolation
}

// isNil also catches a nil pointer token stored in the interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// describe renders one candidate as-is and several as one of [a, b].
func describe[T comparable](candidates []Candidate[T]) string {
	if len(candidates) == 1 {
		return candidates[0].String()
	}

	parts := make([]string, len(candidates))
	for i, c := range candidates {
		parts[i] = c.String()
	}

	return "one of [" + strings.Join(parts, ", ") + "]"
}
