package automaton

import (
	"errors"
	"fmt"
)

// InvalidInputReason categorizes why a terminated input was refused.
type InvalidInputReason string

const (
	// ReasonDisallowedCharacter indicates a character outside [a-z ]
	// before the end marker.
	ReasonDisallowedCharacter InvalidInputReason = "DISALLOWED_CHARACTER"

	// ReasonMissingEndMarker indicates the input does not end with '!'.
	ReasonMissingEndMarker InvalidInputReason = "MISSING_END_MARKER"

	// ReasonMisplacedEndMarker indicates a '!' somewhere other than the
	// final position.
	ReasonMisplacedEndMarker InvalidInputReason = "MISPLACED_END_MARKER"
)

// InvalidInputError reports a terminated input that violates the required
// [a-z ]*! form. It is the only error kind the machine produces: every
// input that passes validation is guaranteed to reach a verdict.
//
// The error is raised before any transition is attempted, so a failed run
// performs no work and produces no trace.
type InvalidInputError struct {
	// Reason identifies the violation category.
	Reason InvalidInputReason

	// Input is the offending terminated input.
	Input string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: invalid input %q", e.Reason, e.Input)
}

// IsInvalidInput returns true if the error is an input validation error.
// Uses errors.As to handle wrapped errors.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
