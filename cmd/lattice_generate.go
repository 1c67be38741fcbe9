package cmd

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/woodgeo/internal/diagram"
	"github.com/alexiusacademia/woodgeo/internal/lattice"
	"github.com/alexiusacademia/woodgeo/internal/units"
	"github.com/spf13/cobra"
)

var (
	latticeGenerateRow        int
	latticeGenerateExportFile string
)

var latticeGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the beams and markers of every layer",
	Long: `Generate the lattice element list: one beam per polygon edge per
layer, the marks where each beam crosses the beams of the layers above
and below, and optionally the inner polygon and perpendicular markers.

Intercepts are listed per beam in order along the beam, with t the
fraction of the beam length from its first corner.

Examples:
  woodgeo lattice generate
  woodgeo lattice generate -n 3 -k 2 --rows 3 --row 1
  woodgeo lattice generate -n 5 --theta 15 -o lattice.svg`,
	Run: runLatticeGenerate,
}

func init() {
	latticeCmd.AddCommand(latticeGenerateCmd)

	latticeGenerateCmd.Flags().IntVarP(&latticeGenerateRow, "row", "r", -1, "List intercepts of one layer only (0-based)")
	latticeGenerateCmd.Flags().StringVarP(&latticeGenerateExportFile, "output", "o", "", "Export plan view to file (png, svg, pdf)")
}

func runLatticeGenerate(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	p, err := latticeParameters(cmd)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	if latticeGenerateRow >= p.Rows {
		fmt.Fprintf(out, "Error: row %d out of range (lattice has %d layers)\n", latticeGenerateRow, p.Rows)
		return
	}

	elements, err := lattice.Generate(p)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	counts := lattice.Count(elements)

	printTitle(out, "BEAM LATTICE")
	printLatticeInput(cmd, p)

	printSection(out, "ELEMENTS")
	w := newTable(out)
	fmt.Fprintf(w, "  Beams:\t%d\n", counts.Beams)
	fmt.Fprintf(w, "  Intercept Markers:\t%d\n", counts.Intercepts)
	fmt.Fprintf(w, "  Perpendicular Markers:\t%d\n", counts.PerpLines)
	fmt.Fprintf(w, "  Inner Polygons:\t%d\n", counts.Polylines)
	w.Flush()
	fmt.Fprintln(out)

	if counts.Intercepts > 0 {
		printSection(out, "INTERCEPTS")
		w = newTable(out)
		fmt.Fprintf(w, "  Layer\tBeam\tType\tCrosses\tt\tAlong (mm)\tX (mm)\tY (mm)\n")
		fmt.Fprintf(w, "  ─────\t────\t────\t───────\t─\t──────────\t──────\t──────\n")
		for _, e := range elements {
			m, ok := e.(*lattice.Intercept)
			if !ok || (latticeGenerateRow >= 0 && m.Row() != latticeGenerateRow) {
				continue
			}
			fmt.Fprintf(w, "  %d\t%d\t%s\t%d/%d\t%.4f\t%.1f\t%.1f\t%.1f\n",
				m.Row(), m.EdgeIndex, m.Type, m.NeighborRow, m.NeighborEdgeIndex, m.T,
				m.T*float64(p.SideLength),
				units.DisplayUnits(m.Position.X).Millimeters(),
				units.DisplayUnits(m.Position.Y).Millimeters())
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	if latticeGenerateExportFile == "" {
		return
	}
	if err := diagram.ExportPlan(latticePlan(elements), latticeGenerateExportFile); err != nil {
		fmt.Fprintf(out, "Error exporting diagram: %v\n", err)
		return
	}
	fmt.Fprintf(out, "  Diagram exported to: %s\n", latticeGenerateExportFile)
	fmt.Fprintln(out)
}

// latticePlan projects the element list onto the XY plane in mm.
func latticePlan(elements []lattice.Element) diagram.PlanData {
	plan := diagram.PlanData{Title: "Beam Lattice Plan", Unit: "mm"}
	mm := func(x, y float64) diagram.Point {
		return diagram.Point{
			X: float64(units.DisplayUnits(x).Millimeters()),
			Y: float64(units.DisplayUnits(y).Millimeters()),
		}
	}

	for _, e := range elements {
		switch el := e.(type) {
		case *lattice.Beam:
			half := float64(el.Length) / 2
			dx, dy := half*math.Cos(el.Rotation), half*math.Sin(el.Rotation)
			plan.Segments = append(plan.Segments, diagram.Segment{
				A:     mm(el.Center.X-dx, el.Center.Y-dy),
				B:     mm(el.Center.X+dx, el.Center.Y+dy),
				Group: el.Row(),
			})
		case *lattice.Intercept:
			plan.Markers = append(plan.Markers, diagram.Marker{
				At: mm(el.Position.X, el.Position.Y),
				Up: el.Type == lattice.MarkerAbove,
			})
		case *lattice.PerpLine:
			plan.Segments = append(plan.Segments, diagram.Segment{
				A:     mm(el.Start.X, el.Start.Y),
				B:     mm(el.End.X, el.End.Y),
				Group: el.Row(),
			})
		case *lattice.Polyline:
			for i := 1; i < len(el.Points); i++ {
				a, b := el.Points[i-1], el.Points[i]
				plan.Segments = append(plan.Segments, diagram.Segment{
					A:     mm(a.X, a.Y),
					B:     mm(b.X, b.Y),
					Group: el.Row(),
				})
			}
		}
	}
	return plan
}
