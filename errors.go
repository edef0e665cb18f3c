package syntactix

import "errors"

// Sentinel errors shared by the scanning and parsing engines.
// Every engine error unwraps to exactly one of them.
var (
	// ErrConsumptionFailed is returned when N items were requested but fewer remain.
	ErrConsumptionFailed = errors.New("consumption failed")
	// ErrRequirementFailed is returned when none of the expected candidates matched.
	ErrRequirementFailed = errors.New("requirement failed")
	// ErrUnexpectedItem is returned when the current item has no applicable rule.
	ErrUnexpectedItem = errors.New("unexpected item")

	// ErrInvariantViolation marks a defect in grammar code (a required lookahead slot was empty).
	// It is never produced by bad input.
	ErrInvariantViolation = errors.New("parser invariant violated")
	// ErrStalledStep is returned when a scanning step returned without moving the cursor.
	ErrStalledStep = errors.New("scanning step made no progress")
)

// ErrorKind classifies input-driven failures. Both phases share the same kinds.
type ErrorKind int

const (
	// ConsumptionFailed means the input ran out before N items could be consumed.
	ConsumptionFailed ErrorKind = iota
	// RequirementFailed means none of an expected literal/type set was found.
	RequirementFailed
	// UnexpectedItem means the current char or token has no applicable rule.
	UnexpectedItem
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case ConsumptionFailed:
		return "ConsumptionFailed"
	case RequirementFailed:
		return "RequirementFailed"
	case UnexpectedItem:
		return "UnexpectedItem"
	default:
		return "Unknown"
	}
}

// Err returns the sentinel error for the kind.
func (k ErrorKind) Err() error {
	switch k {
	case ConsumptionFailed:
		return ErrConsumptionFailed
	case RequirementFailed:
		return ErrRequirementFailed
	default:
		return ErrUnexpectedItem
	}
}
