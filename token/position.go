package token

import "fmt"

// Position represents a location in the (normalized) source text.
// Offset counts runes from the start of the text; Line and Column are 0-based.
// Only Offset takes part in comparisons, Line and Column are bookkeeping.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String returns the position as "line L, char C (gpos P)"
func (p Position) String() string {
	return fmt.Sprintf("line %d, char %d (gpos %d)", p.Line, p.Column, p.Offset)
}

// Compare returns -1, 0 or +1 depending on whether p is before, at or after other.
func (p Position) Compare(other Position) int {
	switch {
	case p.Offset < other.Offset:
		return -1
	case p.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both positions point at the same offset.
func (p Position) Equal(other Position) bool {
	return p.Offset == other.Offset
}

// Before reports whether p comes before other.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// After reports whether p comes after other.
func (p Position) After(other Position) bool {
	return p.Offset > other.Offset
}
