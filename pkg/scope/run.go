package scope

import (
	"context"
	"errors"
	"fmt"

	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
)

// Run executes one operation inside a named scope.
//
// On success the result carries the operation's value and no handler
// runs. On failure the error is classified to a fault and the handlers
// are scanned in declaration order: the first exact kind match wins,
// else the first wildcard. The matched handler's Recover runs exactly
// once; returning nil consumes the fault, returning an error rethrows
// it (remapped or not) past this scope. When no handler matches, the
// fault ascends unchanged in kind and message.
//
// Whatever the outcome, a cleanup attached via WithCleanup executes
// exactly once after the outcome is decided and any handler has run,
// before control leaves the scope. The returned error is non-nil only
// when the failure propagates, and is always a *PropagatedError.
//
// Run may be nested: an inner Run's *PropagatedError returned from an
// outer scope's operation is unwrapped to its fault and fed into the
// outer scope's handler matching.
func Run[T any](ctx context.Context, name string, op Operation[T], handlers []Handler, opts ...Option) (Result[T], error) {
	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	cfg.observe(name, StatePending)

	res, err := execute(ctx, name, op, handlers)
	cfg.observe(name, res.Outcome)

	runCleanup(cfg, name)
	cfg.observe(name, StateDone)

	return res, err
}

// execute decides the scope's outcome. Cleanup is deliberately outside:
// it belongs to the invocation, not to the outcome decision.
func execute[T any](ctx context.Context, name string, op Operation[T], handlers []Handler) (Result[T], error) {
	value, err := invoke(ctx, op)
	if err == nil {
		return Result[T]{Value: value, Outcome: StateSucceeded}, nil
	}

	f := classify(err)
	h, ok := match(handlers, f.Kind)
	if !ok {
		return Result[T]{Outcome: StatePropagating, Fault: f},
			&PropagatedError{Scope: name, Fault: f}
	}

	rethrown := recoverFault(h, f)
	if rethrown == nil {
		return Result[T]{Outcome: StateHandled, Fault: f, HandledBy: h.Kind}, nil
	}

	rf := classify(rethrown)
	return Result[T]{Outcome: StatePropagating, Fault: rf, HandledBy: h.Kind},
		&PropagatedError{Scope: name, Fault: rf}
}

// invoke runs the operation, converting a panic into an unclassified
// fault so it enters the normal handler-matching path.
func invoke[T any](ctx context.Context, op Operation[T]) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fault.Errorf(fault.KindUnclassified, "operation", "panic: %v", r)
		}
	}()
	return op(ctx)
}

// recoverFault runs a handler's recovery logic. A panicking handler is
// treated as a rethrow of an unclassified fault.
func recoverFault(h Handler, f *fault.Fault) (rethrown error) {
	defer func() {
		if r := recover(); r != nil {
			rethrown = &fault.Fault{
				Kind:    fault.KindUnclassified,
				Op:      f.Op,
				Message: fmt.Sprintf("handler panic: %v", r),
				Err:     f,
			}
		}
	}()
	return h.Recover(f)
}

// classify turns the error channel into a *Fault. An inner scope's
// propagated error is unwrapped to the fault that ascended, so nested
// scopes see the original classification; anything else is adopted.
func classify(err error) *fault.Fault {
	var p *PropagatedError
	if errors.As(err, &p) {
		return p.Fault
	}
	return fault.Adopt(err)
}

// runCleanup executes the scope's cleanup exactly once. The lifecycle
// passes through StateCleanupRan from every outcome, with or without a
// bound action, and a panicking cleanup never masks the scope's outcome.
func runCleanup(cfg *runConfig, name string) {
	if cfg.cleanup != nil {
		func() {
			defer func() {
				recover()
			}()
			cfg.cleanup()
		}()
	}
	cfg.observe(name, StateCleanupRan)
}
