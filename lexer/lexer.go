// Package lexer is the scanning engine: it turns a source string into a token
// sequence by calling a grammar-specific step function until input runs out.
//
// The step function gets the *Lexer and drives it through primitives such as
// Peek, Consume, Match and AddToken. Offsets advance automatically on every
// consumed character, but lines do not: the step must call MarkNewline after
// it consumes a line terminator.
package lexer

import (
	"fmt"
	"iter"

	"github.com/shibukawa/syntactix"
	"github.com/shibukawa/syntactix/textnorm"
	"github.com/shibukawa/syntactix/token"
)

// EOF is returned by Peek and Previous when there is no character to report.
const EOF rune = -1

// StepFunc scans from the cursor and emits zero or one token, or fails.
// Scan calls it repeatedly while input remains.
type StepFunc[T comparable, Tok token.Like[T]] func(l *Lexer[T, Tok]) error

// Options are options for the lexer
type Options struct {
	// KeepLineEndings skips the CRLF/CR to LF normalization of the source.
	KeepLineEndings bool
	// Logger, when non-nil, receives a trace of emitted tokens and failures.
	Logger func(format string, args ...any)
}

// Lexer holds the cursor over one source string. It is not safe for
// concurrent use; create one Lexer per source.
type Lexer[T comparable, Tok token.Like[T]] struct {
	text string
	src  []rune

	i      int
	line   int
	column int

	// start of the pending token and the line/column at that point
	start       int
	startLine   int
	startColumn int

	tokens   []Tok
	newToken token.Constructor[T, Tok]
	step     StepFunc[T, Tok]
	options  Options
}

// New creates a Lexer over source. newToken builds every emitted token and
// step is the grammar-specific scanning step.
func New[T comparable, Tok token.Like[T]](source string, newToken token.Constructor[T, Tok], step StepFunc[T, Tok], options ...Options) *Lexer[T, Tok] {
	var opts Options
	if len(options) > 0 {
		opts = options[0]
	}

	if !opts.KeepLineEndings {
		source = textnorm.String(source)
	}

	return &Lexer[T, Tok]{
		text:     source,
		src:      []rune(source),
		newToken: newToken,
		step:     step,
		options:  opts,
	}
}

// Scan runs the step function until input is exhausted and returns the tokens.
// On failure the tokens emitted before the error are returned with it.
func (l *Lexer[T, Tok]) Scan() ([]Tok, error) {
	for !l.AtEnd() {
		if err := l.stepOnce(); err != nil {
			return l.tokens, err
		}
	}

	return l.tokens, nil
}

// Iter returns an iterator that scans lazily, yielding tokens as the step
// function emits them. A failure is yielded once, with a zero token, and ends
// the iteration.
func (l *Lexer[T, Tok]) Iter() iter.Seq2[Tok, error] {
	return func(yield func(Tok, error) bool) {
		var err error

		for emitted := 0; ; {
			for ; emitted < len(l.tokens); emitted++ {
				if !yield(l.tokens[emitted], nil) {
					return
				}
			}

			if err != nil {
				var zero Tok
				yield(zero, err)

				return
			}

			if l.AtEnd() {
				return
			}

			err = l.stepOnce()
		}
	}
}

func (l *Lexer[T, Tok]) stepOnce() error {
	before := l.i

	if err := l.step(l); err != nil {
		l.logf("scan failed: %v", err)
		return err
	}

	if l.i == before {
		return fmt.Errorf("%w at %s", syntactix.ErrStalledStep, l.Pos())
	}

	return nil
}

// Tokens returns the tokens emitted so far.
func (l *Lexer[T, Tok]) Tokens() []Tok {
	return l.tokens
}

// Source returns the text being scanned, after line ending normalization.
func (l *Lexer[T, Tok]) Source() string {
	return l.text
}

// AtEnd reports whether all input has been consumed.
func (l *Lexer[T, Tok]) AtEnd() bool {
	return l.i >= len(l.src)
}

// Pos returns the cursor position.
func (l *Lexer[T, Tok]) Pos() token.Position {
	return token.Position{Offset: l.i, Line: l.line, Column: l.column}
}

// Start returns the position of the pending token, i.e. the position the
// next emitted token will carry.
func (l *Lexer[T, Tok]) Start() token.Position {
	return token.Position{Offset: l.start, Line: l.startLine, Column: l.startColumn}
}

// Lexeme returns the text between the pending token start and the cursor.
func (l *Lexer[T, Tok]) Lexeme() string {
	return string(l.src[l.start:l.i])
}

// AddToken emits a token whose value is its lexeme.
func (l *Lexer[T, Tok]) AddToken(typ T) Tok {
	lexeme := l.Lexeme()
	return l.emit(typ, lexeme, lexeme)
}

// AddTokenValue emits a token carrying an explicitly decoded value.
func (l *Lexer[T, Tok]) AddTokenValue(typ T, value any) Tok {
	return l.emit(typ, l.Lexeme(), value)
}

func (l *Lexer[T, Tok]) emit(typ T, lexeme string, value any) Tok {
	tok := l.newToken(typ, lexeme, value, l.Start())
	l.tokens = append(l.tokens, tok)
	l.logf("emit %v %q at %s", typ, lexeme, tok.Pos())
	l.ResetStart()

	return tok
}

// ResetStart drops the pending text (whitespace, comments) without emitting it.
func (l *Lexer[T, Tok]) ResetStart() {
	l.start = l.i
	l.startLine = l.line
	l.startColumn = l.column
}

// MarkNewline records that a line terminator was just consumed.
func (l *Lexer[T, Tok]) MarkNewline() {
	l.line++
	l.column = 0
}

// Unexpected returns an UnexpectedItem error for ch at the cursor.
func (l *Lexer[T, Tok]) Unexpected(ch rune) error {
	return l.fail(&Error{Kind: syntactix.UnexpectedItem, Char: ch})
}

func (l *Lexer[T, Tok]) fail(err *Error) error {
	err.Pos = l.Pos()
	return err
}

func (l *Lexer[T, Tok]) advance(n int) {
	l.i += n
	l.column += n
}

func (l *Lexer[T, Tok]) logf(format string, args ...any) {
	if l.options.Logger == nil {
		return
	}

	l.options.Logger(format, args...)
}
