package cmd

import (
	"fmt"

	"github.com/alexiusacademia/woodgeo/internal/diagram"
	"github.com/alexiusacademia/woodgeo/internal/dome"
	"github.com/spf13/cobra"
)

var (
	domeLayoutShowDiagram bool
	domeLayoutExportFile  string
)

var domeLayoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Compute the ring layout and material estimate",
	Long: `Compute how many rings fit the dome height and how many boards each
ring needs, then size the stock order.

Examples:
  # Default 6 m high, 7 m wide dome of 2 m boards
  woodgeo dome layout

  # A shallow cup with an ASCII profile
  woodgeo dome layout --height 1.5 --diameter 5 --cup --diagram

  # Parameters from a file, exporting the profile
  woodgeo dome layout -f dome.json -o profile.png`,
	Run: runDomeLayout,
}

func init() {
	domeCmd.AddCommand(domeLayoutCmd)

	domeLayoutCmd.Flags().BoolVar(&domeLayoutShowDiagram, "diagram", false, "Show ASCII ring profile")
	domeLayoutCmd.Flags().StringVarP(&domeLayoutExportFile, "output", "o", "", "Export profile to file (png, svg, pdf)")
}

func runDomeLayout(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	p, err := domeParameters(cmd)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	layout := dome.ComputeLayout(p)
	materials := dome.EstimateMaterials(p, layout.TotalBoards)

	printTitle(out, "DOME RING LAYOUT")

	// Input summary
	printSection(out, "INPUT DATA")
	w := newTable(out)
	fmt.Fprintf(w, "  Shape:\t%s\n", shapeName(p))
	fmt.Fprintf(w, "  Height:\t%.2f m\n", p.DomeHeight)
	fmt.Fprintf(w, "  Base Diameter:\t%.2f m\n", p.DomeDiameter)
	fmt.Fprintf(w, "  Board:\t%.2f m × %.0f × %.0f mm\n", p.BoardLength, p.BoardWidth, p.BoardThickness)
	fmt.Fprintf(w, "  Ring Pitch:\t%.0f mm (gap %.0f mm)\n", p.Pitch(), p.VerticalGap)
	fmt.Fprintf(w, "  End Overlap:\t%.0f mm\n", p.EndOverlap)
	fmt.Fprintf(w, "  Min Boards per Ring:\t%d\n", p.MinTopBoards)
	w.Flush()
	fmt.Fprintln(out)

	// Rings
	printSection(out, "RINGS")
	w = newTable(out)
	fmt.Fprintf(w, "  Row\tHeight (mm)\tRadius (mm)\tBoards\tFull Ring\tGap/End (mm)\n")
	fmt.Fprintf(w, "  ───\t───────────\t───────────\t──────\t─────────\t────────────\n")
	for _, r := range layout.RowRecords {
		fmt.Fprintf(w, "  %d\t%.1f\t%.1f\t%d\t%d\t%.1f\n",
			r.Index, r.Height, r.Radius, r.Boards, r.FullCircleBoards, r.PerEndGap)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("LAYOUT", []string{
		fmt.Sprintf("Sphere radius: %.3f m", layout.CapRadius),
		fmt.Sprintf("Rings: %d", layout.Rows),
		fmt.Sprintf("Total boards: %d", layout.TotalBoards),
	}))
	fmt.Fprintln(out)

	// Materials
	printSection(out, "MATERIALS")
	w = newTable(out)
	if materials.Feasible {
		fmt.Fprintf(w, "  Boards per Stock:\t%d\n", materials.BoardsPerStock)
		fmt.Fprintf(w, "  Stock Pieces:\t%d\n", materials.StocksNeeded)
		fmt.Fprintf(w, "  Total Cost:\t%.2f\n", materials.TotalCost)
		fmt.Fprintf(w, "  Offcut per Stock:\t%.2f m\n", materials.OffcutPerStock)
		fmt.Fprintf(w, "  Total Offcut:\t%.2f m\n", materials.TotalOffcut)
	} else {
		fmt.Fprintf(w, "  Stock Pieces:\t⚠ board longer than stock\n")
	}
	fmt.Fprintf(w, "  Linear Meters:\t%.2f m\n", materials.TotalLinearMeters)
	fmt.Fprintf(w, "  Volume:\t%.3f m³\n", materials.TotalVolume)
	fmt.Fprintf(w, "  Weight:\t%.0f kg\n", materials.TotalWeight)
	w.Flush()
	fmt.Fprintln(out)

	if !domeLayoutShowDiagram && domeLayoutExportFile == "" {
		return
	}

	data := profileData(p, layout)
	if domeLayoutShowDiagram {
		fmt.Fprint(out, diagram.DrawASCIIRingProfile(data))
		fmt.Fprintln(out)
	}
	if domeLayoutExportFile != "" {
		if err := diagram.ExportDomeProfile(data, domeLayoutExportFile); err != nil {
			fmt.Fprintf(out, "Error exporting diagram: %v\n", err)
		} else {
			fmt.Fprintf(out, "  Diagram exported to: %s\n", domeLayoutExportFile)
		}
		fmt.Fprintln(out)
	}
}

func profileData(p dome.Parameters, layout dome.Layout) diagram.DomeProfileData {
	data := diagram.DomeProfileData{
		Height:    float64(p.DomeHeight.Millimeters()),
		Diameter:  float64(p.DomeDiameter.Millimeters()),
		CapRadius: float64(layout.CapRadius.Millimeters()),
		Inverted:  p.InvertShape,
		Rings:     make([]diagram.Ring, len(layout.RowRecords)),
	}
	for i, r := range layout.RowRecords {
		data.Rings[i] = diagram.Ring{
			Index:  r.Index,
			Height: float64(r.Height),
			Radius: float64(r.Radius),
			Boards: r.Boards,
		}
	}
	return data
}
