package main

import "errors"

// Sentinel errors for command operations
var (
	ErrNoInput          = errors.New("no input: pass a file or --expr")
	ErrInputAndExpr     = errors.New("a file and --expr are mutually exclusive")
	ErrInputFileMissing = errors.New("input file does not exist")
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrSyntax           = errors.New("syntax error")
)
