// Package parser is the LL parsing engine. Grammar rules are plain functions
// that receive the *Parser and compose its primitives (lookahead, Match,
// Require, PatternAhead, MatchPattern) into whatever tree they build; the
// engine imposes no node type.
package parser

import (
	"slices"

	"github.com/shibukawa/syntactix"
	"github.com/shibukawa/syntactix/token"
)

// Rule is a grammar entry point producing a node of type N.
type Rule[T comparable, Tok token.Like[T], N any] func(p *Parser[T, Tok]) (N, error)

// Options are options for the parser
type Options struct {
	// Logger, when non-nil, receives a trace of consumed tokens and failures.
	Logger func(format string, args ...any)
}

// Parser is a cursor over a complete token sequence. It is not safe for
// concurrent use.
type Parser[T comparable, Tok token.Like[T]] struct {
	tokens  []Tok
	i       int
	options Options
}

// New creates a Parser over tokens.
func New[T comparable, Tok token.Like[T]](tokens []Tok, options ...Options) *Parser[T, Tok] {
	var opts Options
	if len(options) > 0 {
		opts = options[0]
	}

	return &Parser[T, Tok]{tokens: tokens, options: opts}
}

// Run parses tokens with the entry rule.
func Run[T comparable, Tok token.Like[T], N any](tokens []Tok, rule Rule[T, Tok, N], options ...Options) (N, error) {
	p := New[T, Tok](tokens, options...)

	node, err := rule(p)
	if err != nil {
		p.logf("parse failed: %v", err)
	}

	return node, err
}

// Tokens returns the sequence being parsed.
func (p *Parser[T, Tok]) Tokens() []Tok {
	return p.tokens
}

// Index returns the cursor index.
func (p *Parser[T, Tok]) Index() int {
	return p.i
}

// AtEnd reports whether every token has been consumed.
func (p *Parser[T, Tok]) AtEnd() bool {
	return p.i >= len(p.tokens)
}

// Pos returns the position of the token at the cursor, or of the last token
// once the cursor is past the end. An empty sequence yields the zero Position.
func (p *Parser[T, Tok]) Pos() token.Position {
	if tok, ok := p.Peek(); ok {
		return tok.Pos()
	}

	if len(p.tokens) == 0 {
		return token.Position{}
	}

	return p.tokens[len(p.tokens)-1].Pos()
}

// Lookahead returns the token delta places from the cursor without moving it.
func (p *Parser[T, Tok]) Lookahead(delta int) (Tok, bool) {
	at := p.i + delta
	if at < 0 || at >= len(p.tokens) {
		var zero Tok
		return zero, false
	}

	return p.tokens[at], true
}

// Peek returns the token at the cursor.
func (p *Parser[T, Tok]) Peek() (Tok, bool) {
	return p.Lookahead(0)
}

// Previous returns the token before the cursor.
func (p *Parser[T, Tok]) Previous() (Tok, bool) {
	return p.Lookahead(-1)
}

// Next returns the token after the cursor.
func (p *Parser[T, Tok]) Next() (Tok, bool) {
	return p.Lookahead(1)
}

// MustPeek is Peek for rules that already know a token is there.
// It panics with *InvariantError otherwise.
func (p *Parser[T, Tok]) MustPeek() Tok {
	return p.must("MustPeek", 0)
}

// MustPrevious is Previous for rules that already know a token is there.
func (p *Parser[T, Tok]) MustPrevious() Tok {
	return p.must("MustPrevious", -1)
}

// MustNext is Next for rules that already know a token is there.
func (p *Parser[T, Tok]) MustNext() Tok {
	return p.must("MustNext", 1)
}

func (p *Parser[T, Tok]) must(op string, delta int) Tok {
	tok, ok := p.Lookahead(delta)
	if !ok {
		panic(&InvariantError{Op: op, Index: p.i + delta, Len: len(p.tokens)})
	}

	return tok
}

// Consume returns the token at the cursor and advances past it.
func (p *Parser[T, Tok]) Consume() (Tok, bool) {
	tok, ok := p.Peek()
	if !ok {
		return tok, false
	}

	p.i++
	p.logf("consume %v %q at %s", tok.Type(), tok.Lexeme(), tok.Pos())

	return tok, true
}

// ConsumeOrFail is Consume that reports the end of the sequence as ConsumptionFailed.
func (p *Parser[T, Tok]) ConsumeOrFail() (Tok, error) {
	tok, ok := p.Consume()
	if !ok {
		return tok, p.fail(&Error[T]{Kind: syntactix.ConsumptionFailed, Count: 1})
	}

	return tok, nil
}

// Check reports whether the token at the cursor matches any candidate.
func (p *Parser[T, Tok]) Check(candidates ...Candidate[T]) bool {
	tok, ok := p.Peek()
	if !ok {
		return false
	}

	for _, c := range candidates {
		if c.matches(tok.Type(), tok.Lexeme()) {
			return true
		}
	}

	return false
}

// Match consumes and returns the token at the cursor if it matches any candidate.
func (p *Parser[T, Tok]) Match(candidates ...Candidate[T]) (Tok, bool) {
	if !p.Check(candidates...) {
		var zero Tok
		return zero, false
	}

	return p.Consume()
}

// Require is Match that fails with RequirementFailed. The error carries the
// candidates exactly as passed.
func (p *Parser[T, Tok]) Require(candidates ...Candidate[T]) (Tok, error) {
	if tok, ok := p.Match(candidates...); ok {
		return tok, nil
	}

	var zero Tok

	return zero, p.fail(&Error[T]{Kind: syntactix.RequirementFailed, Candidates: slices.Clone(candidates)})
}

// PatternAhead reports whether the next len(pattern) tokens match pattern
// element by element. It never moves the cursor and returns false when fewer
// tokens remain than the pattern is long.
func (p *Parser[T, Tok]) PatternAhead(pattern ...Matcher[T]) bool {
	if p.i+len(pattern) > len(p.tokens) {
		return false
	}

	for k, m := range pattern {
		tok := p.tokens[p.i+k]
		if !m.matches(tok.Type(), tok.Lexeme()) {
			return false
		}
	}

	return true
}

// MatchPattern consumes and returns the matched tokens only when PatternAhead succeeds.
func (p *Parser[T, Tok]) MatchPattern(pattern ...Matcher[T]) ([]Tok, bool) {
	if len(pattern) == 0 || !p.PatternAhead(pattern...) {
		return nil, false
	}

	matched := p.tokens[p.i : p.i+len(pattern) : p.i+len(pattern)]
	p.i += len(pattern)
	p.logf("match pattern of %d tokens at %s", len(pattern), matched[0].Pos())

	return matched, true
}

// Unexpected returns an UnexpectedItem error for tok at the cursor position.
// A nil pointer token is recorded as no token.
func (p *Parser[T, Tok]) Unexpected(tok Tok) error {
	err := &Error[T]{Kind: syntactix.UnexpectedItem}
	if !isNil(tok) {
		err.Token = tok
	}

	return p.fail(err)
}

func (p *Parser[T, Tok]) fail(err *Error[T]) error {
	err.Pos = p.Pos()
	return err
}

func (p *Parser[T, Tok]) logf(format string, args ...any) {
	if p.options.Logger == nil {
		return
	}

	p.options.Logger(format, args...)
}
