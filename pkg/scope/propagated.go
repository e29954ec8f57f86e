package scope

import (
	"fmt"

	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
)

// PropagatedError is a fault that ascended past its originating scope
// without a matching handler. It records the scope it escaped from;
// Unwrap exposes the fault so errors.Is, errors.As, and an enclosing
// scope's classification all see the original kind.
type PropagatedError struct {
	// Scope is the name of the scope the fault escaped.
	Scope string

	// Fault is the failure that ascended, with kind and message intact.
	Fault *fault.Fault
}

// Error implements the error interface.
func (e *PropagatedError) Error() string {
	return fmt.Sprintf("scope %q: unhandled %v", e.Scope, e.Fault)
}

// Unwrap returns the underlying fault.
func (e *PropagatedError) Unwrap() error {
	return e.Fault
}
