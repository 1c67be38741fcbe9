package cmd

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/woodgeo/internal/diagram"
	"github.com/alexiusacademia/woodgeo/internal/dome"
	"github.com/alexiusacademia/woodgeo/internal/timber"
	"github.com/spf13/cobra"
)

var (
	domeBoardsRow        int
	domeBoardsAll        bool
	domeBoardsExportFile string
)

var domeBoardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List board placements of a ring",
	Long: `Expand a ring of the layout into individual board placements.

Each board is given by its center (m) in a Z-up frame centered on the
dome axis, its heading about Z and its length after door trimming.
Odd rows are turned half a board for a running bond. With --door the
rings below the door head are cut back to the door jambs, which face +X.

Examples:
  # Boards of the apex ring
  woodgeo dome boards --row 1

  # Every ring with a door, exported as a plan view
  woodgeo dome boards --all --door -o plan.png`,
	Run: runDomeBoards,
}

func init() {
	domeCmd.AddCommand(domeBoardsCmd)

	domeBoardsCmd.Flags().IntVarP(&domeBoardsRow, "row", "r", 1, "Ring to expand (1 is the apex ring)")
	domeBoardsCmd.Flags().BoolVar(&domeBoardsAll, "all", false, "Expand every ring")
	domeBoardsCmd.Flags().StringVarP(&domeBoardsExportFile, "output", "o", "", "Export plan view to file (png, svg, pdf)")
}

func runDomeBoards(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	p, err := domeParameters(cmd)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	layout := dome.ComputeLayout(p)
	rows := layout.RowRecords
	if !domeBoardsAll {
		if domeBoardsRow < 1 || domeBoardsRow > len(rows) {
			fmt.Fprintf(out, "Error: row %d out of range (layout has %d rings)\n", domeBoardsRow, len(rows))
			return
		}
		rows = rows[domeBoardsRow-1 : domeBoardsRow]
	}

	printTitle(out, "DOME BOARD PLACEMENTS")

	plan := diagram.PlanData{Title: "Dome Board Plan", Unit: "m"}
	total, trimmed := 0, 0

	for _, row := range rows {
		boards := dome.ExpandRow(row, p)

		printSection(out, fmt.Sprintf("RING %d (r = %.1f mm, %d boards)", row.Index, row.Radius, len(boards)))
		w := newTable(out)
		fmt.Fprintf(w, "  #\tX (m)\tY (m)\tZ (m)\tHeading (°)\tLength (m)\tNote\n")
		fmt.Fprintf(w, "  ─\t─────\t─────\t─────\t───────────\t──────────\t────\n")
		for i, b := range boards {
			note := ""
			if b.Trimmed {
				note = "trimmed at door"
				trimmed++
			}
			heading := math.Mod(b.Rotation*180/math.Pi+360, 360)
			fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\t%.1f\t%.3f\t%s\n",
				i+1, b.Position.X, b.Position.Y, b.Position.Z, heading, b.Length, note)

			half := float64(b.Length) / 2
			dx, dy := half*math.Cos(b.Rotation), half*math.Sin(b.Rotation)
			plan.Segments = append(plan.Segments, diagram.Segment{
				A:     diagram.Point{X: b.Position.X - dx, Y: b.Position.Y - dy},
				B:     diagram.Point{X: b.Position.X + dx, Y: b.Position.Y + dy},
				Group: row.Index - 1,
			})
		}
		w.Flush()
		fmt.Fprintln(out)
		total += len(boards)
	}

	fmt.Fprint(out, diagram.DrawSummaryBox("BOARDS", []string{
		fmt.Sprintf("Rings listed: %d", len(rows)),
		fmt.Sprintf("Boards placed: %d", total),
		fmt.Sprintf("Trimmed at door: %d", trimmed),
	}))
	fmt.Fprintln(out)

	if domeBoardsExportFile == "" {
		return
	}

	a := float64(p.DomeDiameter) / 2
	const steps = 72
	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / steps
		plan.Outline = append(plan.Outline, diagram.Point{X: a * math.Cos(t), Y: a * math.Sin(t)})
	}
	if p.ShowDoor && p.InvertShape {
		hw := float64(timber.DoorWidth) / 2
		x := math.Sqrt(math.Max(0, a*a-hw*hw))
		plan.Openings = append(plan.Openings, diagram.Segment{
			A: diagram.Point{X: x, Y: -hw},
			B: diagram.Point{X: x, Y: hw},
		})
	}

	if err := diagram.ExportPlan(plan, domeBoardsExportFile); err != nil {
		fmt.Fprintf(out, "Error exporting diagram: %v\n", err)
		return
	}
	fmt.Fprintf(out, "  Diagram exported to: %s\n", domeBoardsExportFile)
	fmt.Fprintln(out)
}
