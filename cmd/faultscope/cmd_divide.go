package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saiprakashreddy2023-maker/faultscope/cmd/ui"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/scope"
)

func newDivideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "divide <a> <b>",
		Short: "Divide two integers inside a fault-handling scope",
		Long: `Divide two integers inside a scope with a division-by-zero handler.
A zero divisor is caught and reported; the cleanup line prints on every
exit path.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.Atoi(args[0])
			if err != nil {
				return fault.Wrap(err, fault.KindParseFailure, "parse")
			}
			b, err := strconv.Atoi(args[1])
			if err != nil {
				return fault.Wrap(err, fault.KindParseFailure, "parse")
			}

			out := cmd.OutOrStdout()
			res, err := scope.Run(cmd.Context(), "divide", divideOp(a, b),
				[]scope.Handler{
					scope.On(fault.KindDivisionByZero, catchPrinter(out)),
				},
				scope.WithCleanup(cleanupPrinter(out, "Cleanup code executed")),
				scope.WithObserver(stateObserver()),
			)
			if err != nil {
				return reportPropagated(out, err)
			}
			if res.Succeeded() {
				fmt.Fprintln(out, ui.SuccessMessage(fmt.Sprintf("Result: %d", res.Value)))
			}
			return nil
		},
	}

	return cmd
}
