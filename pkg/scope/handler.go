package scope

import "github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"

// RecoverFunc is the recovery logic of a handler. Returning nil
// consumes the fault; returning an error rethrows, and whatever fault
// that error carries (possibly with a different kind) propagates to
// the caller's scope.
type RecoverFunc func(f *fault.Fault) error

// Handler maps one fault kind, or the wildcard, to recovery logic.
// Handlers are tried in declaration order; the first exact kind match
// wins, and wildcard handlers are consulted only when no exact match
// exists anywhere in the list.
type Handler struct {
	// Kind is the fault kind this handler matches, or fault.KindAny
	// for the wildcard.
	Kind fault.Kind

	// Recover runs when the handler matches. Must not be nil.
	Recover RecoverFunc
}

// On declares a handler for one exact fault kind.
func On(kind fault.Kind, fn RecoverFunc) Handler {
	return Handler{Kind: kind, Recover: fn}
}

// OnAny declares a wildcard handler. It matches any fault kind, but
// only after every exact handler in the list has failed to match.
func OnAny(fn RecoverFunc) Handler {
	return Handler{Kind: fault.KindAny, Recover: fn}
}

// Rethrow returns a RecoverFunc that remaps the fault to a different
// kind and rethrows it. Remapping is an explicit operation: the
// original fault is kept as the cause so the full chain stays visible
// to errors.Is and errors.As.
func Rethrow(as fault.Kind) RecoverFunc {
	return func(f *fault.Fault) error {
		return &fault.Fault{
			Kind:    as,
			Op:      f.Op,
			Message: f.Message,
			Err:     f,
		}
	}
}

// match selects the handler for a fault kind: first exact match in
// declaration order, else first wildcard. A fault whose kind appears
// in no declaration can only match the wildcard.
func match(handlers []Handler, kind fault.Kind) (Handler, bool) {
	for _, h := range handlers {
		if h.Kind != fault.KindAny && h.Kind == kind {
			return h, true
		}
	}
	for _, h := range handlers {
		if h.Kind == fault.KindAny {
			return h, true
		}
	}
	return Handler{}, false
}
