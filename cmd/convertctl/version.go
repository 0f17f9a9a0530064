package main

import (
	"github.com/InQaaaaGit/metric_converter/internal/buildinfo"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of convertctl",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildinfo.NewInfo(buildVersion, buildDate, buildCommit).Fprint(cmd.OutOrStdout())
		},
	}
}
