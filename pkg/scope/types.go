package scope

import (
	"context"

	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
)

// Operation is a unit of work that either produces a value or fails.
// An Operation is constructed immediately before Run executes it,
// executed exactly once, and discarded after its outcome is consumed.
type Operation[T any] func(ctx context.Context) (T, error)

// Cleanup is logic bound to a scope, guaranteed to execute exactly once
// after the scope's operation completes, regardless of outcome.
type Cleanup func()

// Observer receives the state transitions of a single Run invocation.
// Observers are for logging and instrumentation; the core performs no
// I/O of its own.
type Observer func(scope string, state State)

// State identifies a position in the per-invocation lifecycle:
//
//	Pending -> {Succeeded | Handled | Propagating} -> CleanupRan -> Done
//
// CleanupRan is entered from all three outcomes; Done is terminal and
// is reached exactly once per invocation.
type State int

const (
	// StatePending means the operation has not completed yet.
	StatePending State = iota
	// StateSucceeded means the operation produced a value.
	StateSucceeded
	// StateHandled means the operation failed and a handler consumed the fault.
	StateHandled
	// StatePropagating means the failure is ascending to the caller's scope.
	StatePropagating
	// StateCleanupRan means the scope's cleanup has executed.
	StateCleanupRan
	// StateDone means the invocation is complete.
	StateDone
)

// String returns the lifecycle state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateHandled:
		return "handled"
	case StatePropagating:
		return "propagating"
	case StateCleanupRan:
		return "cleanup-ran"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Run invocation.
type Result[T any] struct {
	// Value is the operation's result. Only meaningful when Outcome
	// is StateSucceeded.
	Value T

	// Outcome is the terminal outcome state: StateSucceeded,
	// StateHandled, or StatePropagating.
	Outcome State

	// Fault is the classified failure. Nil on success. On a handled
	// outcome it is the fault the handler consumed; on propagation it
	// is the fault that ascended (after any rethrow remapping).
	Fault *fault.Fault

	// HandledBy is the declared kind of the handler that ran, either
	// an exact kind or fault.KindAny. Empty when no handler ran.
	HandledBy fault.Kind
}

// Succeeded reports whether the operation produced a value.
func (r Result[T]) Succeeded() bool { return r.Outcome == StateSucceeded }

// Handled reports whether a handler consumed the failure.
func (r Result[T]) Handled() bool { return r.Outcome == StateHandled }

// Option configures a single Run invocation.
type Option func(*runConfig)

type runConfig struct {
	cleanup  Cleanup
	observer Observer
}

// WithCleanup attaches a cleanup action to the scope. It runs exactly
// once after the outcome is decided and any handler has run, before
// Run returns control to the caller.
func WithCleanup(c Cleanup) Option {
	return func(cfg *runConfig) {
		cfg.cleanup = c
	}
}

// WithObserver attaches an observer for the invocation's state transitions.
func WithObserver(o Observer) Option {
	return func(cfg *runConfig) {
		cfg.observer = o
	}
}

func (cfg *runConfig) observe(scope string, state State) {
	if cfg.observer != nil {
		cfg.observer(scope, state)
	}
}
