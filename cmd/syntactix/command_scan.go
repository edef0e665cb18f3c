package main

import (
	"fmt"

	"github.com/shibukawa/syntactix"
	"github.com/shibukawa/syntactix/examples/arith"
)

// ScanCmd represents the scan command
type ScanCmd struct {
	File   string `arg:"" optional:"" help:"Source file to scan"`
	Expr   string `help:"Scan this text instead of a file" short:"e"`
	Format string `help:"Output format (text, yaml, json); defaults to output.format" enum:"text,yaml,json," default:""`
}

// Run executes the scan command
func (cmd *ScanCmd) Run(ctx *Context) error {
	s, err := openSession(ctx, cmd.File, cmd.Expr)
	if err != nil {
		return err
	}

	tokens, err := arith.Scan(s.source, s.lexerOptions())
	if err != nil {
		return s.report(err)
	}

	s.verbosef("Scanned %d tokens from %s", len(tokens), s.filename)

	if ctx.Quiet {
		return nil
	}

	format := s.format(cmd.Format)
	if format != syntactix.FormatText {
		return writeStructured(ctx.Stdout, format, tokenRecords(tokens))
	}

	for _, tok := range tokens {
		fmt.Fprintf(ctx.Stdout, "%-7s %-6q %s\n", tok.Type(), tok.Lexeme(), tok.Pos())
	}

	return nil
}
