package cmd

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/woodgeo/internal/diagram"
	"github.com/alexiusacademia/woodgeo/internal/lattice"
	"github.com/spf13/cobra"
)

var latticeScalarsCmd = &cobra.Command{
	Use:   "scalars",
	Short: "Derived lengths and the beam cut list",
	Long: `Compute the scalars shared by every layer: the turn θ, circumradius,
apothem, the gap m between the two crossings on each beam, the corner
offset c and the inward perpendicular dPerp. Every beam is marked at c
from each corner, and 2c + m = s.

Examples:
  woodgeo lattice scalars
  woodgeo lattice scalars -n 8 -s 2400 --theta 12`,
	Run: runLatticeScalars,
}

func init() {
	latticeCmd.AddCommand(latticeScalarsCmd)
}

func runLatticeScalars(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	p, err := latticeParameters(cmd)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	d, err := lattice.ComputeDerivedScalars(p.Sides, p.SideLength, p.Theta())
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	printTitle(out, "BEAM LATTICE SCALARS")
	printLatticeInput(cmd, p)

	printSection(out, "DERIVED SCALARS")
	w := newTable(out)
	fmt.Fprintf(w, "  θ (per layer):\t%.6f rad (%.3f°)\n", d.Theta, d.Theta*180/math.Pi)
	fmt.Fprintf(w, "  Circumradius (R):\t%.2f mm\n", d.R)
	fmt.Fprintf(w, "  Apothem:\t%.2f mm\n", d.Apothem)
	fmt.Fprintf(w, "  cot(π/n):\t%.6f\n", d.CotN)
	fmt.Fprintf(w, "  Crossing Gap (m):\t%.2f mm\n", d.MEdge)
	fmt.Fprintf(w, "  Corner Offset (c):\t%.2f mm\n", d.CEdge)
	fmt.Fprintf(w, "  Perpendicular (dPerp):\t%.2f mm\n", d.DPerp)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "CHECKS")
	w = newTable(out)
	residual := d.IdentityResidual()
	fmt.Fprintf(w, "  2c + m = s:\t%s (|2c + m - s| = %.2e mm)\n", check(residual <= lattice.DisplayTolerance), residual)
	fmt.Fprintf(w, "  Corner cuts on beam:\t%s\n", check(d.InnerCutsValid()))
	if math.Abs(d.Theta) >= math.Pi/float64(d.Sides) {
		fmt.Fprintf(w, "  θ < π/n:\t%s (layers no longer overlap edge to edge)\n", check(false))
	}
	w.Flush()
	fmt.Fprintln(out)

	cuts := d.Cuts()
	fmt.Fprint(out, diagram.DrawSummaryBox("CUT LIST (per beam)", []string{
		fmt.Sprintf("First mark from corner:        %8.1f mm", cuts.FirstFromCorner),
		fmt.Sprintf("Second mark from same corner:  %8.1f mm", cuts.SecondFromSameCorner),
		fmt.Sprintf("Second mark from other corner: %8.1f mm", cuts.SecondFromOppositeCorner),
		fmt.Sprintf("Mark to mark:                  %8.1f mm", cuts.CutToCutGap),
	}))
	fmt.Fprintln(out)
}
