package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/InQaaaaGit/metric_converter/internal/units"
	"github.com/spf13/cobra"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List supported units and their pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tCONVERTS TO")
			for _, d := range units.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Code, d.Singular, d.Paired)
			}
			return tw.Flush()
		},
	}
}
