package parser

import "fmt"

// Matcher is one element of a structural pattern. Candidate matches one
// literal or type tag; AnyOf matches any of several candidates.
type Matcher[T comparable] interface {
	matches(typ T, lexeme string) bool
	String() string
}

// Candidate matches a token either by exact lexeme or by type tag.
type Candidate[T comparable] struct {
	lexeme string
	typ    T
	byType bool
}

// Lit returns a candidate matching tokens whose lexeme equals lexeme.
func Lit[T comparable](lexeme string) Candidate[T] {
	return Candidate[T]{lexeme: lexeme}
}

// Typ returns a candidate matching tokens of type typ.
func Typ[T comparable](typ T) Candidate[T] {
	return Candidate[T]{typ: typ, byType: true}
}

// IsType reports whether the candidate matches by type tag.
func (c Candidate[T]) IsType() bool {
	return c.byType
}

// Lexeme returns the literal a lexeme candidate matches.
func (c Candidate[T]) Lexeme() string {
	return c.lexeme
}

// Type returns the tag a type candidate matches.
func (c Candidate[T]) Type() T {
	return c.typ
}

func (c Candidate[T]) matches(typ T, lexeme string) bool {
	if c.byType {
		return c.typ == typ
	}

	return c.lexeme == lexeme
}

// String renders literals quoted and type tags with %v.
func (c Candidate[T]) String() string {
	if c.byType {
		return fmt.Sprintf("%v", c.typ)
	}

	return "'" + c.lexeme + "'"
}

// AnyOf is a pattern element that matches when any of its candidates does.
type AnyOf[T comparable] []Candidate[T]

// Any builds an AnyOf element.
func Any[T comparable](candidates ...Candidate[T]) AnyOf[T] {
	return AnyOf[T](candidates)
}

func (a AnyOf[T]) matches(typ T, lexeme string) bool {
	for _, c := range a {
		if c.matches(typ, lexeme) {
			return true
		}
	}

	return false
}

func (a AnyOf[T]) String() string {
	return describe([]Candidate[T](a))
}
