// Package diag renders engine errors as a two-line source excerpt with a caret
// under the failing position.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/shibukawa/syntactix/textnorm"
	"github.com/shibukawa/syntactix/token"
	"golang.org/x/text/width"
)

// Positioned is implemented by errors that know where they happened, such as
// *lexer.Error and *parser.Error.
type Positioned interface {
	error
	Position() token.Position
}

// Options control rendering.
type Options struct {
	// Header is the first word(s) of the report. Format defaults to
	// "Error occurred" and FormatError to "Syntax error".
	Header string
	// Color forces coloring on or off. When nil, fatih/color decides from the terminal.
	Color *bool
}

// Format renders message at pos in source:
//
//	Error occurred (at main.calc)
//	1  |  2 + * 3
//	          ^
//	unexpected token '*' at line 0, char 4 (gpos 4)
func Format(source string, pos token.Position, message, filename string, options ...Options) string {
	opts := pick(options, "Error occurred")

	header := paint(color.New(color.FgRed, color.Bold), opts)
	gutter := paint(color.New(color.FgBlue), opts)
	caret := paint(color.New(color.FgGreen, color.Bold), opts)

	lines := strings.Split(textnorm.String(source), "\n")

	line := ""
	if pos.Line >= 0 && pos.Line < len(lines) {
		line = lines[pos.Line]
	}

	prefix := fmt.Sprintf("%d  |  ", pos.Line+1)

	var sb strings.Builder
	sb.WriteString(header(fmt.Sprintf("%s (at %s)", opts.Header, filename)))
	sb.WriteString("\n")
	sb.WriteString(gutter(prefix))
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(prefix)))
	sb.WriteString(padding(line, pos.Column))
	sb.WriteString(caret("^"))
	sb.WriteString("\n")
	sb.WriteString(message)

	return sb.String()
}

// FormatError renders err with Format when it carries a position, and as a
// header plus message otherwise.
func FormatError(err error, source, filename string, options ...Options) string {
	var positioned Positioned
	if errors.As(err, &positioned) {
		opts := pick(options, "Syntax error")
		return Format(source, positioned.Position(), err.Error(), filename, opts)
	}

	opts := pick(options, "Error occurred")
	header := paint(color.New(color.FgRed, color.Bold), opts)

	return header(fmt.Sprintf("%s (at %s)", opts.Header, filename)) + "\n" + err.Error()
}

// padding returns the whitespace that lines a caret up under column of line.
// Tabs are kept as tabs and wide runes take two cells.
func padding(line string, column int) string {
	var sb strings.Builder

	for i, r := range []rune(line) {
		if i >= column {
			break
		}

		switch {
		case r == '\t':
			sb.WriteRune('\t')
		case isWide(r):
			sb.WriteString("  ")
		default:
			sb.WriteRune(' ')
		}
	}

	return sb.String()
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	default:
		return false
	}
}

func pick(options []Options, header string) Options {
	var opts Options
	if len(options) > 0 {
		opts = options[0]
	}

	if opts.Header == "" {
		opts.Header = header
	}

	return opts
}

func paint(c *color.Color, opts Options) func(a ...any) string {
	if opts.Color != nil {
		if *opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return c.SprintFunc()
}
