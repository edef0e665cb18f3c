package token

import (
	"fmt"
	"unicode/utf8"
)

// Like is the contract every token type handed to the engines must satisfy.
// T is the type tag namespace; the engines only compare tags for equality.
type Like[T comparable] interface {
	Type() T
	Lexeme() string
	Value() any
	Pos() Position
}

// Constructor builds a token from its four parts. The scanning engine calls it
// from AddToken, so it is the only place a concrete token type gets created.
type Constructor[T comparable, Tok Like[T]] func(typ T, lexeme string, value any, pos Position) Tok

// Token is a ready-made implementation of Like.
type Token[T comparable] struct {
	typ    T
	lexeme string
	value  any
	pos    Position
}

// New creates a Token. It satisfies Constructor[T, Token[T]].
func New[T comparable](typ T, lexeme string, value any, pos Position) Token[T] {
	return Token[T]{typ: typ, lexeme: lexeme, value: value, pos: pos}
}

func (t Token[T]) Type() T        { return t.typ }
func (t Token[T]) Lexeme() string { return t.lexeme }
func (t Token[T]) Value() any     { return t.value }
func (t Token[T]) Pos() Position  { return t.pos }

// String returns the string representation of Token
func (t Token[T]) String() string {
	return fmt.Sprintf("%v %q", t.typ, t.lexeme)
}

// End returns the offset just past the token's lexeme.
func End[T comparable](tok Like[T]) int {
	return tok.Pos().Offset + utf8.RuneCountInString(tok.Lexeme())
}
