package main

import (
	"fmt"

	"github.com/shibukawa/syntactix/examples/arith"
)

// EvalCmd represents the eval command
type EvalCmd struct {
	File string `arg:"" optional:"" help:"Source file to evaluate"`
	Expr string `help:"Evaluate this text instead of a file" short:"e"`
}

// Run executes the eval command
func (cmd *EvalCmd) Run(ctx *Context) error {
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

	result, err := arith.Eval(node)
	if err != nil {
		return s.report(err)
	}

	s.verbosef("Evaluated %s", node)

	if !ctx.Quiet {
		fmt.Fprintln(ctx.Stdout, result.String())
	}

	return nil
}
