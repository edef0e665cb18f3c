package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/shibukawa/syntactix"
	"github.com/shibukawa/syntactix/diag"
	"github.com/shibukawa/syntactix/lexer"
	"github.com/shibukawa/syntactix/parser"
)

// session bundles what every command needs after loading configuration.
type session struct {
	ctx      *Context
	config   *syntactix.Config
	source   string
	filename string
}

func openSession(ctx *Context, file, expr string) (*session, error) {
	config, err := syntactix.LoadConfig(ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	s := &session{ctx: ctx, config: config}

	switch {
	case file != "" && expr != "":
		return nil, ErrInputAndExpr
	case expr != "":
		s.source = expr
		s.filename = config.Diagnostics.Filename
	case file != "":
		data, err := os.ReadFile(file)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputFileMissing, file)
		} else if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}

		s.source = string(data)
		s.filename = file
	default:
		return nil, ErrNoInput
	}

	s.verbosef("Loaded configuration from %s", ctx.Config)

	return s, nil
}

// colorEnabled maps the configured mode onto diag/color overrides.
// A nil result leaves terminal detection to fatih/color.
func (s *session) colorEnabled() *bool {
	var enabled bool

	switch s.config.Diagnostics.Color {
	case syntactix.ColorAlways:
		enabled = true
	case syntactix.ColorNever:
		enabled = false
	default:
		return nil
	}

	return &enabled
}

func (s *session) painter(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)

	if enabled := s.colorEnabled(); enabled != nil {
		if *enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return c
}

func (s *session) verbosef(format string, args ...any) {
	if !s.ctx.Verbose || s.ctx.Quiet {
		return
	}

	s.painter(color.FgCyan).Fprintf(s.ctx.Stderr, format+"\n", args...)
}

// trace is the Logger hook handed to the engines in verbose mode.
func (s *session) trace() func(format string, args ...any) {
	if !s.ctx.Verbose || s.ctx.Quiet {
		return nil
	}

	c := s.painter(color.FgHiBlack)

	return func(format string, args ...any) {
		c.Fprintf(s.ctx.Stderr, format+"\n", args...)
	}
}

func (s *session) lexerOptions() lexer.Options {
	return lexer.Options{
		KeepLineEndings: s.config.Lexer.KeepLineEndings,
		Logger:          s.trace(),
	}
}

func (s *session) parserOptions() parser.Options {
	return parser.Options{Logger: s.trace()}
}

// report prints err as a caret diagram. Positioned failures come back as
// ErrSyntax, anything else is returned as is.
func (s *session) report(err error) error {
	if !s.ctx.Quiet {
		fmt.Fprintln(s.ctx.Stderr, diag.FormatError(err, s.source, s.filename, diag.Options{
			Header: s.config.Diagnostics.Header,
			Color:  s.colorEnabled(),
		}))
	}

	var positioned diag.Positioned
	if !errors.As(err, &positioned) {
		return err
	}

	return fmt.Errorf("%w in %s", ErrSyntax, s.filename)
}

func (s *session) format(override string) syntactix.OutputFormat {
	if override != "" {
		return syntactix.OutputFormat(override)
	}

	return s.config.Output.Format
}
