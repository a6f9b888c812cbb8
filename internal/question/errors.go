package question

import "fmt"

// ShapeError indicates a payload that is structurally unusable — not that a
// field was missing (aliases and placeholders absorb that), but that the
// raw value is not an object or array where one is required. Candidate
// resolution treats it as an empty result, never as fatal.
type ShapeError struct {
	Want string
	Got  any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("payload shape: want %s, got %T", e.Want, e.Got)
}
