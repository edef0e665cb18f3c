// Package syntactix is a toolkit for hand-written lexers and LL parsers.
//
// The scanning engine lives in package lexer and the parsing engine in package
// parser. Both are generic over a token type that satisfies token.Like. This
// package holds what the two engines share: the error kinds, the sentinel
// errors they unwrap to, and the configuration used by the command line tool.
//
//	src -> lexer.Lexer -> []Tok -> parser.Parser -> tree
package syntactix
