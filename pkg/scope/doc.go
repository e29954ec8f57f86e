// Package scope evaluates fallible operations with ordered fault
// handling and guaranteed cleanup.
//
// A scope is one Run invocation: it executes a single operation, routes
// a failure to the most specific matching handler, and guarantees that
// an attached cleanup action runs exactly once before control leaves
// the scope, whether the operation succeeded, was handled, or its fault
// is ascending to the caller.
//
// # Handler Matching
//
// Handlers are declared as an ordered list. For a failed operation the
// list is scanned twice: first for an exact kind match, then for the
// wildcard (fault.KindAny). An exact match always beats a wildcard
// regardless of declaration order, and exactly one handler runs per
// failed operation. A handler consumes the fault by returning nil, or
// rethrows by returning an error; the canned scope.Rethrow recovery
// remaps the fault's kind explicitly before it ascends.
//
// # Nesting
//
// Scopes nest by composition: when an outer operation returns an inner
// Run's *PropagatedError, the outer scope unwraps it and matches
// handlers against the fault that ascended.
//
//	res, err := scope.Run(ctx, "outer", func(ctx context.Context) (int, error) {
//	    _, err := scope.Run(ctx, "inner", riskyOp, []scope.Handler{
//	        scope.On(fault.KindOutOfRange, scope.Rethrow(fault.KindUnclassified)),
//	    })
//	    return 0, err
//	}, []scope.Handler{
//	    scope.OnAny(logAndDiscard),
//	}, scope.WithCleanup(release))
//
// Execution is strictly sequential: a scope runs its operation, its
// handler, and its cleanup to completion on the calling goroutine.
package scope
