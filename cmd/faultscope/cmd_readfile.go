package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/scope"
)

func newReadFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read-file [name]",
		Short: "Simulate reading a missing file with a not-found handler",
		Long: `Simulate reading a file that does not exist. The resource-not-found
fault is caught locally and the cleanup line prints afterwards, on the
way out of the scope.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "test.txt"
			if len(args) > 0 {
				name = args[0]
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Attempting to read file: %s\n", name)

			_, err := scope.Run(cmd.Context(), "read-file", readFileOp(name),
				[]scope.Handler{
					scope.On(fault.KindResourceNotFound, catchPrinter(out)),
				},
				scope.WithCleanup(cleanupPrinter(out, "Cleanup code executed")),
				scope.WithObserver(stateObserver()),
			)
			if err != nil {
				return reportPropagated(out, err)
			}
			return nil
		},
	}

	return cmd
}
