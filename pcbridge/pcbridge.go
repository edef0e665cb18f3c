// Package pcbridge hands engine tokens to github.com/shibukawa/parsercombinator,
// so a grammar can mix hand-written rules with combinator fragments.
package pcbridge

import (
	"slices"

	pc "github.com/shibukawa/parsercombinator"
	"github.com/shibukawa/syntactix/token"
)

// ToParserTokens wraps tokens for the combinator library. Pos is 1-based
// (Line+1, Column+1) with Index holding the rune offset, and Raw holds the lexeme.
func ToParserTokens[T comparable, Tok token.Like[T]](tokens []Tok) []pc.Token[Tok] {
	results := make([]pc.Token[Tok], len(tokens))
	for i, t := range tokens {
		pos := t.Pos()
		results[i] = pc.Token[Tok]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  pos.Line + 1,
				Col:   pos.Column + 1,
				Index: pos.Offset,
			},
			Val: t,
			Raw: t.Lexeme(),
		}
	}

	return results
}

// ToTokens unwraps combinator tokens.
func ToTokens[Tok any](entities []pc.Token[Tok]) []Tok {
	results := make([]Tok, 0, len(entities))
	for _, entity := range entities {
		results = append(results, entity.Val)
	}

	return results
}

// ToSrc joins the raw text of entities.
func ToSrc[Tok any](entities []pc.Token[Tok]) string {
	src := make([]byte, 0, 256)
	for _, entity := range entities {
		src = append(src, entity.Raw...)
	}

	return string(src)
}

// OfType matches one token whose type is any of types.
func OfType[T comparable, Tok token.Like[T]](types ...T) pc.Parser[Tok] {
	return func(pctx *pc.ParseContext[Tok], tokens []pc.Token[Tok]) (int, []pc.Token[Tok], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Type()) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// Lexeme matches one token whose text is any of lexemes.
func Lexeme[T comparable, Tok token.Like[T]](lexemes ...string) pc.Parser[Tok] {
	return func(pctx *pc.ParseContext[Tok], tokens []pc.Token[Tok]) (int, []pc.Token[Tok], error) {
		if len(tokens) > 0 && slices.Contains(lexemes, tokens[0].Val.Lexeme()) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// Tag runs p in sequence and labels the first matched token with typeStr.
func Tag[Tok any](typeStr string, p ...pc.Parser[Tok]) pc.Parser[Tok] {
	return pc.Trans(pc.Seq(p...), func(pctx *pc.ParseContext[Tok], src []pc.Token[Tok]) ([]pc.Token[Tok], error) {
		if len(src) > 0 {
			src[0].Type = typeStr
		}

		return src, nil
	})
}

// Split cuts tokens at every match of separator and returns the pieces in
// between, including empty ones.
func Split[T comparable, Tok token.Like[T]](separator pc.Parser[Tok], tokens []Tok) [][]Tok {
	var parts [][]Tok

	for _, part := range pc.FindIter(pc.NewParseContext[Tok](), separator, ToParserTokens[T](tokens)) {
		parts = append(parts, ToTokens(part.Skipped))
		if part.Last {
			break
		}
	}

	return parts
}
