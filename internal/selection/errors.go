// Package selection resolves user menu choices into concrete catalog picks.
package selection

import "fmt"

// Error represents an error that occurs while assembling a selection
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// InvalidChoiceError reports menu input outside [0, MenuSize]. The input layer
// recovers from it by prompting again.
type InvalidChoiceError struct {
	Input    string
	MenuSize int
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %q: enter a number between 1 and %d, or 0 for Surprise Me", e.Input, e.MenuSize)
}
