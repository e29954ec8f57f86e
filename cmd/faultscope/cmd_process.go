package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saiprakashreddy2023-maker/faultscope/cmd/ui"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/pipeline"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/scope"
)

func newProcessCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "process <data>...",
		Short: "Parse each argument and divide 100 by it",
		Long: `Parse each argument as an integer and divide 100 by it. Each argument
runs in its own scope with three handlers: parse failure, division by
zero, and a wildcard for anything else. One bad argument never stops
the rest.

With --workers above one, arguments are dispatched concurrently while
each scope still runs sequentially.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if workers > 1 {
				values, faults := pipeline.ParallelTryMap(cmd.Context(), "process", args, workers,
					func(ctx context.Context, data string) (int, error) {
						return processOp(data)(ctx)
					})
				for _, v := range values {
					fmt.Fprintln(out, ui.SuccessMessage(fmt.Sprintf("Result: %d", v)))
				}
				for _, ef := range faults {
					fmt.Fprintf(out, "%s %s %v\n", ui.KindBadge(ef.Fault.Kind), ui.Red("argument"), args[ef.Index])
				}
				return nil
			}

			for _, data := range args {
				res, err := scope.Run(cmd.Context(), "process", processOp(data),
					[]scope.Handler{
						scope.On(fault.KindParseFailure, func(f *fault.Fault) error {
							fmt.Fprintln(out, ui.Red(fmt.Sprintf("Error: Invalid number format - %v", f.Err)))
							return nil
						}),
						scope.On(fault.KindDivisionByZero, func(f *fault.Fault) error {
							fmt.Fprintln(out, ui.Red(fmt.Sprintf("Error: Arithmetic error - %s", f.Message)))
							return nil
						}),
						scope.OnAny(func(f *fault.Fault) error {
							fmt.Fprintln(out, ui.Red(fmt.Sprintf("Error: Unexpected error - %v", f)))
							return nil
						}),
					},
					scope.WithObserver(stateObserver()),
				)
				if err != nil {
					return reportPropagated(out, err)
				}
				if res.Succeeded() {
					fmt.Fprintln(out, ui.SuccessMessage(fmt.Sprintf("Result: %d", res.Value)))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 1, "Concurrent workers for processing arguments")

	return cmd
}
