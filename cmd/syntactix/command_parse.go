package main

import (
	"fmt"

	"github.com/shibukawa/syntactix"
	"github.com/shibukawa/syntactix/examples/arith"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	File   string `arg:"" optional:"" help:"Source file to parse"`
	Expr   string `help:"Parse this text instead of a file" short:"e"`
	Format string `help:"Output format (text, yaml, json); defaults to output.format" enum:"text,yaml,json," default:""`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	s, err := openSession(ctx, cmd.File, cmd.Expr)
	if err != nil {
		return err
	}

	tokens, err := arith.Scan(s.source, s.lexerOptions())
	if err != nil {
		return s.report(err)
	}

	node, err := arith.Parse(tokens, s.parserOptions())
	if err != nil {
		return s.report(err)
	}

	if ctx.Quiet {
		return nil
	}

	format := s.format(cmd.Format)
	if format != syntactix.FormatText {
		return writeStructured(ctx.Stdout, format, treeRecord(node))
	}

	fmt.Fprintln(ctx.Stdout, node.String())

	return nil
}
