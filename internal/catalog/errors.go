// Package catalog holds the fixed outfit menus for each temperature category.
package catalog

import "fmt"

// MalformedCatalogError reports a catalog that is missing required entries.
// It is fatal at startup.
type MalformedCatalogError struct {
	Message string
	Cause   error
}

func (e *MalformedCatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed catalog: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed catalog: %s", e.Message)
}

func (e *MalformedCatalogError) Unwrap() error {
	return e.Cause
}
