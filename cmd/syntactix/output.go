package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/shibukawa/syntactix"
	"github.com/shibukawa/syntactix/examples/arith"
)

type tokenRecord struct {
	Type   string `yaml:"type" json:"type"`
	Lexeme string `yaml:"lexeme" json:"lexeme"`
	Value  string `yaml:"value" json:"value"`
	Line   int    `yaml:"line" json:"line"`
	Column int    `yaml:"column" json:"column"`
	Offset int    `yaml:"offset" json:"offset"`
}

func tokenRecords(tokens []arith.Token) []tokenRecord {
	records := make([]tokenRecord, len(tokens))
	for i, tok := range tokens {
		pos := tok.Pos()
		records[i] = tokenRecord{
			Type:   tok.Type().String(),
			Lexeme: tok.Lexeme(),
			Value:  fmt.Sprint(tok.Value()),
			Line:   pos.Line,
			Column: pos.Column,
			Offset: pos.Offset,
		}
	}

	return records
}

type nodeRecord struct {
	Kind     string        `yaml:"kind" json:"kind"`
	Text     string        `yaml:"text" json:"text"`
	Line     int           `yaml:"line" json:"line"`
	Column   int           `yaml:"column" json:"column"`
	Children []*nodeRecord `yaml:"children,omitempty" json:"children,omitempty"`
}

func treeRecord(node arith.Node) *nodeRecord {
	pos := node.Pos()
	record := &nodeRecord{Text: node.String(), Line: pos.Line, Column: pos.Column}

	switch n := node.(type) {
	case *arith.Number:
		record.Kind = "number"
	case *arith.Unary:
		record.Kind = "neg"
		record.Children = []*nodeRecord{treeRecord(n.Operand)}
	case *arith.Binary:
		record.Kind = n.Op.Lexeme()
		record.Children = []*nodeRecord{treeRecord(n.Left), treeRecord(n.Right)}
	case *arith.Group:
		record.Kind = "group"
		record.Children = []*nodeRecord{treeRecord(n.Inner)}
	}

	return record
}

// writeStructured encodes v as YAML or JSON.
func writeStructured(w io.Writer, format syntactix.OutputFormat, v any) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case syntactix.FormatYAML:
		data, err = yaml.Marshal(v)
	case syntactix.FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = w.Write(data)

	return err
}
