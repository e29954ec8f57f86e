package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saiprakashreddy2023-maker/faultscope/cmd/ui"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/scope"
)

func newValidateAgeCmd() *cobra.Command {
	var rethrow bool

	cmd := &cobra.Command{
		Use:   "validate-age <age>",
		Short: "Validate an age inside a fault-handling scope",
		Long: `Validate that an age lies in [0, 120].

With --rethrow, the validation fault is caught in an inner scope,
remapped to UNCLASSIFIED, and rethrown, so the outer scope observes the
remapped kind instead of the original one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			age, err := strconv.Atoi(args[0])
			if err != nil {
				return fault.Wrap(err, fault.KindParseFailure, "parse")
			}

			out := cmd.OutOrStdout()
			if !rethrow {
				res, err := scope.Run(cmd.Context(), "validate-age", validateAgeOp(age),
					[]scope.Handler{
						scope.On(fault.KindInvalidArgument, catchPrinter(out)),
					},
					scope.WithCleanup(cleanupPrinter(out, "Cleanup code executed")),
					scope.WithObserver(stateObserver()),
				)
				if err != nil {
					return reportPropagated(out, err)
				}
				if res.Succeeded() {
					fmt.Fprintln(out, ui.SuccessMessage(fmt.Sprintf("Valid age: %d", res.Value)))
				}
				return nil
			}

			// Nested form: the inner scope catches the validation fault
			// and rethrows it with a different kind.
			inner := func(ctx context.Context) (int, error) {
				res, err := scope.Run(ctx, "validate-age", validateAgeOp(age),
					[]scope.Handler{
						scope.On(fault.KindInvalidArgument, scope.Rethrow(fault.KindUnclassified)),
					},
					scope.WithObserver(stateObserver()),
				)
				return res.Value, err
			}

			res, err := scope.Run(cmd.Context(), "outer", inner,
				[]scope.Handler{
					scope.On(fault.KindUnclassified, func(f *fault.Fault) error {
						fmt.Fprintln(out, ui.HandledMessage(f))
						fmt.Fprintf(out, "  remapped from %s\n", ui.KindBadge(fault.KindOf(f.Err)))
						return nil
					}),
				},
				scope.WithCleanup(cleanupPrinter(out, "Cleanup code executed")),
				scope.WithObserver(stateObserver()),
			)
			if err != nil {
				return reportPropagated(out, err)
			}
			if res.Succeeded() {
				fmt.Fprintln(out, ui.SuccessMessage(fmt.Sprintf("Valid age: %d", res.Value)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&rethrow, "rethrow", false, "Catch in an inner scope and rethrow as UNCLASSIFIED")

	return cmd
}
