package catalog

import (
	"errors"
	"fmt"
)

// ErrCatalogNotFound is returned when no slot catalog has been defined
// for the requested turf.
var ErrCatalogNotFound = errors.New("no slots defined for this turf")

// ErrTurfNotFound is returned when the referenced turf does not exist.
var ErrTurfNotFound = errors.New("turf not found")

// ErrNotOwner is returned when the acting party does not own the turf
// whose catalog is being modified.
var ErrNotOwner = errors.New("turf does not belong to this owner")

// ValidationError reports a malformed slot definition.
type ValidationError struct {
	Slot   int // zero-based index in the submitted list; -1 for list-level problems
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Slot < 0 {
		return fmt.Sprintf("invalid slot list: %s", e.Reason)
	}
	return fmt.Sprintf("invalid slot %d: %s", e.Slot, e.Reason)
}
