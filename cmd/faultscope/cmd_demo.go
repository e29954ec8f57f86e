package main

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/saiprakashreddy2023-maker/faultscope/cmd/ui"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/scope"
)

// demoRow is the summary of one scenario run.
type demoRow struct {
	scenario  string
	outcome   scope.State
	handledBy fault.Kind
	faultKind fault.Kind
	cleanups  int
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the full scenario suite and summarize the outcomes",
		Long: `Run every demo scenario — success, handled failure, wildcard catch,
nested rethrow, and unhandled propagation — and render a summary table
of outcome, handler, and cleanup for each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rows := runScenarios(cmd.Context(), out)

			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Section(" Scenario Summary "))
			fmt.Fprintln(out)

			table := tablewriter.NewWriter(out)
			table.Header("Scenario", "Outcome", "Handler", "Fault", "Cleanups")
			for _, r := range rows {
				table.Append(
					r.scenario,
					ui.FormatOutcome(r.outcome),
					ui.KindBadge(r.handledBy),
					ui.KindBadge(r.faultKind),
					fmt.Sprintf("%d", r.cleanups),
				)
			}
			table.Render()

			return nil
		},
	}

	return cmd
}

// runScenarios executes the demo scenarios sequentially and collects a
// summary row per scenario. Unhandled propagation is part of the show
// here, not a command failure.
func runScenarios(ctx context.Context, out io.Writer) []demoRow {
	var rows []demoRow

	record := func(scenario string, outcome scope.State, handledBy, kind fault.Kind, cleanups int) {
		rows = append(rows, demoRow{
			scenario:  scenario,
			outcome:   outcome,
			handledBy: handledBy,
			faultKind: kind,
			cleanups:  cleanups,
		})
	}

	quiet := func(f *fault.Fault) error { return nil }

	// Scenario: clean division.
	cleanups := 0
	res, _ := scope.Run(ctx, "divide", divideOp(10, 2),
		[]scope.Handler{scope.On(fault.KindDivisionByZero, quiet)},
		scope.WithCleanup(func() { cleanups++ }),
	)
	record("divide 10 2", res.Outcome, res.HandledBy, fault.Kind(""), cleanups)

	// Scenario: division by zero, caught by its exact handler.
	cleanups = 0
	res, _ = scope.Run(ctx, "divide", divideOp(10, 0),
		[]scope.Handler{scope.On(fault.KindDivisionByZero, quiet)},
		scope.WithCleanup(func() { cleanups++ }),
	)
	record("divide 10 0", res.Outcome, res.HandledBy, res.Fault.Kind, cleanups)

	// Scenario: wildcard catches a kind with no exact handler.
	cleanups = 0
	res, _ = scope.Run(ctx, "divide", divideOp(10, 0),
		[]scope.Handler{
			scope.On(fault.KindParseFailure, quiet),
			scope.OnAny(quiet),
		},
		scope.WithCleanup(func() { cleanups++ }),
	)
	record("divide 10 0 (wildcard)", res.Outcome, res.HandledBy, res.Fault.Kind, cleanups)

	// Scenario: nested rethrow — inner remaps the validation fault,
	// outer catches the remapped kind.
	cleanups = 0
	inner := func(ctx context.Context) (int, error) {
		r, err := scope.Run(ctx, "validate-age", validateAgeOp(150),
			[]scope.Handler{
				scope.On(fault.KindInvalidArgument, scope.Rethrow(fault.KindUnclassified)),
			},
		)
		return r.Value, err
	}
	res, _ = scope.Run(ctx, "outer", inner,
		[]scope.Handler{scope.On(fault.KindUnclassified, quiet)},
		scope.WithCleanup(func() { cleanups++ }),
	)
	record("validate-age 150 (rethrow)", res.Outcome, res.HandledBy, res.Fault.Kind, cleanups)

	// Scenario: missing file, caught locally.
	cleanups = 0
	fileRes, _ := scope.Run(ctx, "read-file", readFileOp("test.txt"),
		[]scope.Handler{scope.On(fault.KindResourceNotFound, quiet)},
		scope.WithCleanup(func() { cleanups++ }),
	)
	record("read-file test.txt", fileRes.Outcome, fileRes.HandledBy, fileRes.Fault.Kind, cleanups)

	// Scenario: multi-catch over mixed inputs.
	for _, data := range []string{"abc", "0", "25"} {
		cleanups = 0
		res, _ = scope.Run(ctx, "process", processOp(data),
			[]scope.Handler{
				scope.On(fault.KindParseFailure, quiet),
				scope.On(fault.KindDivisionByZero, quiet),
				scope.OnAny(quiet),
			},
			scope.WithCleanup(func() { cleanups++ }),
		)
		kind := fault.Kind("")
		if res.Fault != nil {
			kind = res.Fault.Kind
		}
		record("process "+data, res.Outcome, res.HandledBy, kind, cleanups)
	}

	// Scenario: no handler at all — the fault escapes the scope.
	cleanups = 0
	res, err := scope.Run(ctx, "validate-age", validateAgeOp(150), nil,
		scope.WithCleanup(func() { cleanups++ }),
	)
	record("validate-age 150 (no handler)", res.Outcome, res.HandledBy, res.Fault.Kind, cleanups)
	if err != nil {
		fmt.Fprintln(out, ui.PropagatedMessage(err))
	}

	return rows
}
