// Package layout maps a résumé onto the fixed moderncv page template.
//
// Every generator is a pure function from typed résumé data to an immutable slice of
// rendering nodes; callers concatenate the slices in display order.
package layout

import "fmt"

// InvariantViolation reports a generator called with input its caller was required
// to rule out, e.g. formatting an absent location. It indicates a bug, not bad input.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Message)
}
