package main

import (
	"github.com/spf13/cobra"

	"github.com/monejava/neptune-demo/cmd/neptune-demo/internal"
	"github.com/monejava/neptune-demo/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if globalFlags.GetOutputFormat() == internal.FormatJSON {
			return internal.NewJSONFormatter(cmd.OutOrStdout()).PrintJSON(version.Info())
		}
		cmd.Println(version.String())
		return nil
	},
}
