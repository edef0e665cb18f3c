package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/shibukawa/syntactix/examples/arith"
)

type fixture struct {
	ctx    *Context
	dir    string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newFixture(t *testing.T, config string) *fixture {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "syntactix.yaml")
	assert.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	f := &fixture{dir: dir, stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	f.ctx = &Context{Config: configPath, Stdout: f.stdout, Stderr: f.stderr}

	return f
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(f.dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const plainConfig = `
diagnostics:
  color: never
`

func TestEvalCmd(t *testing.T) {
	t.Run("expression", func(t *testing.T) {
		f := newFixture(t, plainConfig)
		cmd := &EvalCmd{Expr: "(2 + 3) * 4"}
		assert.NoError(t, cmd.Run(f.ctx))
		assert.Equal(t, "20\n", f.stdout.String())
	})

	t.Run("file", func(t *testing.T) {
		f := newFixture(t, plainConfig)
		path := f.write(t, "calc.txt", "7 / 2\r\n")
		cmd := &EvalCmd{File: path}
		assert.NoError(t, cmd.Run(f.ctx))
		assert.Equal(t, "3.5\n", f.stdout.String())
	})

	t.Run("syntax error is rendered", func(t *testing.T) {
		f := newFixture(t, plainConfig+"  filename: cli\n")
		cmd := &EvalCmd{Expr: "1 + * 2"}
		err := cmd.Run(f.ctx)
		assert.IsError(t, err, ErrSyntax)
		assert.Equal(t, "Syntax error (at cli)\n"+
			"1  |  1 + * 2\n"+
			"          ^\n"+
			"unexpected token '*' at line 0, char 4 (gpos 4)\n", f.stderr.String())
		assert.Equal(t, "", f.stdout.String())
	})

	t.Run("quiet suppresses the diagram", func(t *testing.T) {
		f := newFixture(t, plainConfig)
		f.ctx.Quiet = true
		err := (&EvalCmd{Expr: "1 /"}).Run(f.ctx)
		assert.IsError(t, err, ErrSyntax)
		assert.Equal(t, "", f.stderr.String())
	})

	t.Run("input validation", func(t *testing.T) {
		f := newFixture(t, plainConfig)
		assert.IsError(t, (&EvalCmd{}).Run(f.ctx), ErrNoInput)
		assert.IsError(t, (&EvalCmd{File: "x", Expr: "1"}).Run(f.ctx), ErrInputAndExpr)
		assert.IsError(t, (&EvalCmd{File: filepath.Join(f.dir, "missing.txt")}).Run(f.ctx), ErrInputFileMissing)
	})
}

func TestScanCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		f := newFixture(t, plainConfig)
		assert.NoError(t, (&ScanCmd{Expr: "2 + 3"}).Run(f.ctx))

		lines := strings.Split(strings.TrimSpace(f.stdout.String()), "\n")
		assert.Equal(t, 3, len(lines))
		assert.True(t, strings.HasPrefix(lines[1], "PLUS"))
		assert.True(t, strings.HasSuffix(lines[2], "line 0, char 4 (gpos 4)"))
	})

	t.Run("yaml from config", func(t *testing.T) {
		f := newFixture(t, plainConfig+"output:\n  format: yaml\n")
		assert.NoError(t, (&ScanCmd{Expr: "1\n  -2"}).Run(f.ctx))

		var records []tokenRecord
		assert.NoError(t, yaml.Unmarshal(f.stdout.Bytes(), &records))
		assert.Equal(t, []tokenRecord{
			{Type: "NUMBER", Lexeme: "1", Value: "1", Line: 0, Column: 0, Offset: 0},
			{Type: "MINUS", Lexeme: "-", Value: "-", Line: 1, Column: 2, Offset: 4},
			{Type: "NUMBER", Lexeme: "2", Value: "2", Line: 1, Column: 3, Offset: 5},
		}, records)
	})

	t.Run("json override", func(t *testing.T) {
		f := newFixture(t, plainConfig)
		assert.NoError(t, (&ScanCmd{Expr: "1", Format: "json"}).Run(f.ctx))
		assert.Contains(t, f.stdout.String(), `"type": "NUMBER"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		f := newFixture(t, plainConfig)
		assert.IsError(t, (&ScanCmd{Expr: "1", Format: "xml"}).Run(f.ctx), ErrUnknownFormat)
	})

	t.Run("lexer error", func(t *testing.T) {
		f := newFixture(t, plainConfig)
		err := (&ScanCmd{Expr: "1 $"}).Run(f.ctx)
		assert.IsError(t, err, ErrSyntax)
		assert.Contains(t, f.stderr.String(), "unexpected char '$' at line 0, char 2 (gpos 2)")
	})
}

func TestParseCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		f := newFixture(t, plainConfig)
		assert.NoError(t, (&ParseCmd{Expr: "1 + 2 * -3"}).Run(f.ctx))
		assert.Equal(t, "(+ 1 (* 2 -3))\n", f.stdout.String())
	})

	t.Run("yaml tree", func(t *testing.T) {
		f := newFixture(t, plainConfig)
		assert.NoError(t, (&ParseCmd{Expr: "-(1)", Format: "yaml"}).Run(f.ctx))

		var root nodeRecord
		assert.NoError(t, yaml.Unmarshal(f.stdout.Bytes(), &root))
		assert.Equal(t, "neg", root.Kind)
		assert.Equal(t, "group", root.Children[0].Kind)
		assert.Equal(t, "number", root.Children[0].Children[0].Kind)
	})

	t.Run("missing parenthesis", func(t *testing.T) {
		f := newFixture(t, plainConfig)
		err := (&ParseCmd{Expr: "(1+2"}).Run(f.ctx)
		assert.IsError(t, err, ErrSyntax)
		assert.Contains(t, f.stderr.String(), "expected ')', but did not find it at line 0, char 3 (gpos 3)")
	})
}

func TestVerboseTrace(t *testing.T) {
	f := newFixture(t, plainConfig)
	f.ctx.Verbose = true

	assert.NoError(t, (&EvalCmd{Expr: "1 + 2"}).Run(f.ctx))
	assert.Equal(t, "3\n", f.stdout.String())
	assert.Contains(t, f.stderr.String(), `emit NUMBER "1" at line 0, char 0 (gpos 0)`)
	assert.Contains(t, f.stderr.String(), `consume PLUS "+" at line 0, char 2 (gpos 2)`)
	assert.Contains(t, f.stderr.String(), "Evaluated (+ 1 2)")
}

func TestVersionCmd(t *testing.T) {
	f := newFixture(t, plainConfig)
	assert.NoError(t, (&VersionCmd{}).Run(f.ctx))
	assert.Equal(t, "syntactix v0.1.0\n", f.stdout.String())
}

func TestInvalidConfig(t *testing.T) {
	f := newFixture(t, "output:\n  format: xml\n")
	err := (&EvalCmd{Expr: "1"}).Run(f.ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestEvalDivisionByZero(t *testing.T) {
	f := newFixture(t, plainConfig)
	err := (&EvalCmd{Expr: "1 / (2 - 2)"}).Run(f.ctx)
	assert.IsError(t, err, arith.ErrDivisionByZero)
	assert.Equal(t, "Syntax error (at <input>)\ndivision by zero at line 0, char 2 (gpos 2)\n", f.stderr.String())
}

func TestEvalKeepLineEndings(t *testing.T) {
	f := newFixture(t, plainConfig+"lexer:\n  keep_line_endings: true\n")
	path := f.write(t, "calc.txt", "1 +\r\n2 *\r3\r\n")

	assert.NoError(t, (&EvalCmd{File: path}).Run(f.ctx))
	assert.Equal(t, "7\n", f.stdout.String())

	f.stdout.Reset()
	assert.NoError(t, (&ScanCmd{File: path, Format: "yaml"}).Run(f.ctx))

	var records []tokenRecord
	assert.NoError(t, yaml.Unmarshal(f.stdout.Bytes(), &records))
	assert.Equal(t, 5, len(records))
	assert.Equal(t, tokenRecord{Type: "NUMBER", Lexeme: "3", Value: "3", Line: 2, Column: 0, Offset: 9}, records[4])
}

func TestFormatFlagIsConstrained(t *testing.T) {
	newParser := func(t *testing.T) *kong.Kong {
		t.Helper()

		var cli struct {
			Scan  ScanCmd  `cmd:""`
			Parse ParseCmd `cmd:""`
		}

		parser, err := kong.New(&cli, kong.Exit(func(int) {}))
		assert.NoError(t, err)

		return parser
	}

	_, err := newParser(t).Parse([]string{"scan", "--expr", "1", "--format", "yaml"})
	assert.NoError(t, err)

	_, err = newParser(t).Parse([]string{"parse", "--expr", "1"})
	assert.NoError(t, err)

	_, err = newParser(t).Parse([]string{"scan", "--expr", "1", "--format", "xml"})
	assert.Error(t, err)
}
