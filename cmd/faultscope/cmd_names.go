package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saiprakashreddy2023-maker/faultscope/cmd/ui"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/pipeline"
)

func newNamesCmd() *cobra.Command {
	sample := []string{"Sai", "Reddy", "Suresh", "Prakash", "Sunil"}

	cmd := &cobra.Command{
		Use:   "names [prefix] [name]...",
		Short: "Filter and lowercase the sample name list",
		Long: `Filter the sample name list by prefix, lowercase the survivors, and
print them one per line. Names given after the prefix replace the
sample list.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := "R"
			names := sample
			if len(args) > 0 {
				prefix = args[0]
			}
			if len(args) > 1 {
				names = args[1:]
			}

			out := cmd.OutOrStdout()
			kept := pipeline.Map(
				pipeline.Filter(names, func(s string) bool { return strings.HasPrefix(s, prefix) }),
				strings.ToLower,
			)
			pipeline.Each(kept, func(name string) {
				fmt.Fprintln(out, name)
			})
			if len(kept) == 0 {
				fmt.Fprintln(out, ui.Gray(fmt.Sprintf("no names start with %q", prefix)))
			}
			return nil
		},
	}

	return cmd
}
