package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/woodgeo/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "woodgeo",
	Short: "Timber dome and beam lattice layout tool",
	Long: `woodgeo - Timber Structure Geometry Calculator

A CLI tool for laying out timber structures built from stock boards
and beams.

This tool helps builders work out:
  - Board rings of a spherical-cap dome (or cup)
  - Board placements with running bond and door openings
  - Stock, cost and offcut estimates
  - Stacked rotated-polygon beam lattices
  - Beam intercept marks and corner cut lists

All lengths are metric: meters for the envelope, millimeters for
sections and gaps.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   woodgeo v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Timber Structure Geometry Calculator                    ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Dome ring layout from height, diameter and board stock")
		fmt.Fprintln(out, "    • Per-board placements with door trimming")
		fmt.Fprintln(out, "    • Material, cost and offcut estimate")
		fmt.Fprintln(out, "    • Rotated polygon beam lattice with intercept markers")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'woodgeo --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
