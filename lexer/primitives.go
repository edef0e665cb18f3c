package lexer

import (
	"slices"

	"github.com/shibukawa/syntactix"
)

// WhilePolicy decides how ConsumeWhile treats the end of input.
type WhilePolicy int

const (
	// StopAtEOF loops while input remains and the predicate holds. The
	// predicate is never called at end of input, and running out of input is
	// an acceptable way to stop.
	StopAtEOF WhilePolicy = iota
	// PredicateOnly lets the predicate alone decide. It is called at end of
	// input too (Peek returns EOF there); if it still holds, the run needed
	// more input than exists and ConsumeWhile fails with ConsumptionFailed.
	// Running out of input is deliberately an error here, not a soft stop;
	// use StopAtEOF when end of input may end the run.
	PredicateOnly
)

// Peek returns the current character without consuming it, or EOF.
func (l *Lexer[T, Tok]) Peek() rune {
	if l.AtEnd() {
		return EOF
	}

	return l.src[l.i]
}

// Previous returns the last consumed character, or EOF before the first one.
func (l *Lexer[T, Tok]) Previous() rune {
	if l.i == 0 {
		return EOF
	}

	return l.src[l.i-1]
}

// Consume returns the current character and advances past it.
// At end of input nothing is consumed and ok is false.
func (l *Lexer[T, Tok]) Consume() (ch rune, ok bool) {
	if l.AtEnd() {
		return EOF, false
	}

	l.advance(1)

	return l.src[l.i-1], true
}

// ConsumeOrFail is Consume that reports end of input as ConsumptionFailed.
func (l *Lexer[T, Tok]) ConsumeOrFail() (rune, error) {
	ch, ok := l.Consume()
	if !ok {
		return EOF, l.fail(&Error{Kind: syntactix.ConsumptionFailed, Count: 1})
	}

	return ch, nil
}

// ConsumeMany consumes count characters. It only does so when strictly more
// than count characters remain, so it never takes the last count characters
// of the input in one go.
func (l *Lexer[T, Tok]) ConsumeMany(count int) (string, bool) {
	if count < 0 || l.i+count >= len(l.src) {
		return "", false
	}

	s := string(l.src[l.i : l.i+count])
	l.advance(count)

	return s, true
}

// ConsumeManyOrFail consumes count characters, failing with
// ConsumptionFailed when fewer than count remain.
func (l *Lexer[T, Tok]) ConsumeManyOrFail(count int) (string, error) {
	if count < 0 || l.i+count > len(l.src) {
		return "", l.fail(&Error{Kind: syntactix.ConsumptionFailed, Count: count})
	}

	s := string(l.src[l.i : l.i+count])
	l.advance(count)

	return s, nil
}

// StringAhead reports whether s occurs offset characters after the cursor.
// Probes outside the input never match.
func (l *Lexer[T, Tok]) StringAhead(s string, offset int) bool {
	at := l.i + offset
	if at < 0 || at > len(l.src) {
		return false
	}

	for _, r := range s {
		if at >= len(l.src) || l.src[at] != r {
			return false
		}

		at++
	}

	return true
}

// CharAhead reports whether ch is offset characters after the cursor.
func (l *Lexer[T, Tok]) CharAhead(ch rune, offset int) bool {
	at := l.i + offset
	if at < 0 || at >= len(l.src) {
		return false
	}

	return l.src[at] == ch
}

// Match consumes and returns the first candidate found at the cursor.
// Empty candidates never match.
func (l *Lexer[T, Tok]) Match(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if c == "" || !l.StringAhead(c, 0) {
			continue
		}

		l.advance(len([]rune(c)))

		return c, true
	}

	return "", false
}

// Require is Match that fails with RequirementFailed. The error carries the
// candidates in the order given.
func (l *Lexer[T, Tok]) Require(candidates ...string) (string, error) {
	if s, ok := l.Match(candidates...); ok {
		return s, nil
	}

	return "", l.fail(&Error{Kind: syntactix.RequirementFailed, Candidates: slices.Clone(candidates)})
}

// ConsumeWhile advances one character at a time while pred holds and returns
// the consumed text. See WhilePolicy for how end of input is handled.
func (l *Lexer[T, Tok]) ConsumeWhile(pred func() bool, policy WhilePolicy) (string, error) {
	from := l.i

	switch policy {
	case PredicateOnly:
		for pred() {
			if l.AtEnd() {
				return string(l.src[from:l.i]), l.fail(&Error{Kind: syntactix.ConsumptionFailed, Count: 1})
			}

			l.advance(1)
		}
	default:
		for !l.AtEnd() && pred() {
			l.advance(1)
		}
	}

	return string(l.src[from:l.i]), nil
}
