package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/scope"
)

// Filter returns the elements of in for which keep reports true,
// preserving order.
func Filter[T any](in []T, keep func(T) bool) []T {
	var out []T
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map applies fn to every element of in, preserving order.
func Map[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Each applies fn to every element of in, in order.
func Each[T any](in []T, fn func(T)) {
	for _, v := range in {
		fn(v)
	}
}

// ElementFault records a failed element by its position in the input.
type ElementFault struct {
	Index int
	Fault *fault.Fault
}

// TryMap maps every element of in through a fallible function. Each
// element runs in its own scope, so one element's failure — including a
// panic — is classified and recorded without aborting the rest. Values
// of failed elements are omitted from the output; faults are returned
// in input order alongside the successes.
func TryMap[T, R any](ctx context.Context, name string, in []T, fn func(ctx context.Context, v T) (R, error)) ([]R, []ElementFault) {
	var out []R
	var faults []ElementFault

	for i, v := range in {
		v := v
		res, _ := scope.Run(ctx, name, func(ctx context.Context) (R, error) {
			return fn(ctx, v)
		}, []scope.Handler{
			scope.OnAny(func(f *fault.Fault) error { return nil }),
		})

		if res.Succeeded() {
			out = append(out, res.Value)
		} else {
			faults = append(faults, ElementFault{Index: i, Fault: res.Fault})
		}
	}
	return out, faults
}

// ParallelTryMap is TryMap with bounded concurrency. Each element still
// runs in its own sequential scope; only the dispatch across elements
// is parallel. Results and faults come back in input order. A limit
// below one means one worker.
func ParallelTryMap[T, R any](ctx context.Context, name string, in []T, limit int, fn func(ctx context.Context, v T) (R, error)) ([]R, []ElementFault) {
	if limit < 1 {
		limit = 1
	}

	values := make([]R, len(in))
	succeeded := make([]bool, len(in))
	perIndex := make([]*fault.Fault, len(in))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			res, _ := scope.Run(ctx, name, func(ctx context.Context) (R, error) {
				return fn(ctx, v)
			}, []scope.Handler{
				scope.OnAny(func(f *fault.Fault) error { return nil }),
			})

			// Each worker owns its index; Wait orders these writes
			// before the collection loop below.
			if res.Succeeded() {
				values[i] = res.Value
				succeeded[i] = true
			} else {
				perIndex[i] = res.Fault
			}
			return nil
		})
	}
	// Workers capture their faults, so Wait never reports an error.
	_ = g.Wait()

	var out []R
	var faults []ElementFault
	for i := range in {
		if succeeded[i] {
			out = append(out, values[i])
		} else {
			faults = append(faults, ElementFault{Index: i, Fault: perIndex[i]})
		}
	}
	return out, faults
}
