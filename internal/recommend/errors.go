// Package recommend orchestrates classification, selection and the history
// and rating stores for one recommendation transaction.
package recommend

import "fmt"

// Error represents a failed recommendation or rating transaction
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("recommend error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("recommend error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
