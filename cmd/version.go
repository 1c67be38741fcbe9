package cmd

import (
	"fmt"

	"github.com/alexiusacademia/woodgeo/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of woodgeo",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Timber Structure Geometry Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
