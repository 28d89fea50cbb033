package divination

import "fmt"

// InvalidLineCodeError reports a line code outside {6, 7, 8, 9}.
type InvalidLineCodeError struct {
	Code int
}

func (e *InvalidLineCodeError) Error() string {
	return fmt.Sprintf("invalid line code %d: must be 6, 7, 8 or 9", e.Code)
}

// OutOfRangeError reports a hexagram number outside [1, 64].
type OutOfRangeError struct {
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("hexagram number %d out of range: must be between 1 and 64", e.Value)
}

// UnrecognizedInputError reports text that matched none of the supported
// input notations.
type UnrecognizedInputError struct {
	Input string
}

func (e *UnrecognizedInputError) Error() string {
	return fmt.Sprintf("unrecognized input %q: expected a hexagram number (1-64), a hexagram glyph, a transition (32→34 or 32->34), or six comma-separated line codes (6,7,8,9)", e.Input)
}

// LookupError reports a hexagram number that is valid but has no record
// in the reference data. It indicates a data-integrity problem, not bad
// user input.
type LookupError struct {
	Number int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no reference record for hexagram %d", e.Number)
}

// ReconcileError reports that a reconciled transition figure failed its
// postcondition check. It can only be produced by a bug in the bit
// arithmetic, never by user input.
type ReconcileError struct {
	Want int
	Got  int
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("internal error: reconciled figure resolves to hexagram %d, expected %d", e.Got, e.Want)
}
