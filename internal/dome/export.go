package dome

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alexiusacademia/woodgeo/internal/timber"
)

// Report is the full record of one dome calculation, as written by
// WriteJSON.
type Report struct {
	Timestamp  time.Time  `json:"timestamp"`
	Parameters Parameters `json:"parameters"`
	Geometry   Layout     `json:"geometry"`
	Costs      Materials  `json:"costs"`
}

// NewReport computes the layout and materials for p.
func NewReport(p Parameters, generated time.Time) Report {
	layout := ComputeLayout(p)
	return Report{
		Timestamp:  generated,
		Parameters: p,
		Geometry:   layout,
		Costs:      EstimateMaterials(p, layout.TotalBoards),
	}
}

// WriteCSV writes the ring table followed by a summary block.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	records := [][]string{{"Row", "Height (mm)", "Radius (mm)", "Boards", "Per-End Gap (mm)"}}
	for _, row := range r.Geometry.RowRecords {
		records = append(records, []string{
			strconv.Itoa(row.Index),
			formatFloat(float64(row.Height), 1),
			formatFloat(float64(row.Radius), 1),
			strconv.Itoa(row.Boards),
			formatFloat(float64(row.PerEndGap), 1),
		})
	}

	c := r.Costs
	records = append(records,
		[]string{"Summary"},
		[]string{"Total Boards", strconv.Itoa(r.Geometry.TotalBoards)},
		[]string{"Total Cost", formatFloat(c.TotalCost, 2)},
		[]string{"Stocks Needed", strconv.Itoa(c.StocksNeeded)},
		[]string{"Total Volume (m³)", formatFloat(c.TotalVolume, 3)},
		[]string{"Total Weight (kg)", formatFloat(c.TotalWeight, 1)},
	)

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// WriteBOM writes a plain-text bill of materials.
func (r Report) WriteBOM(w io.Writer) error {
	p, c := r.Parameters, r.Costs
	lines := []string{
		"WOOD DOME BILL OF MATERIALS",
		strings.Repeat("=", 40),
		"",
		"DOME SPECIFICATIONS:",
		fmt.Sprintf("Height: %g m", float64(p.DomeHeight)),
		fmt.Sprintf("Diameter: %g m", float64(p.DomeDiameter)),
		fmt.Sprintf("Rows: %d", r.Geometry.Rows),
		"",
		"BOARD SPECIFICATIONS:",
		fmt.Sprintf("Board Length: %g m", float64(p.BoardLength)),
		fmt.Sprintf("Board Width: %g mm", float64(p.BoardWidth)),
		fmt.Sprintf("Board Thickness: %g mm", float64(p.BoardThickness)),
		fmt.Sprintf("Vertical Gap: %g mm", float64(p.VerticalGap)),
		fmt.Sprintf("End Overlap: %g mm", float64(p.EndOverlap)),
		"",
		"MATERIALS REQUIRED:",
		fmt.Sprintf("Total Boards: %d", r.Geometry.TotalBoards),
	}
	if c.Feasible {
		lines = append(lines, fmt.Sprintf("%gm Stock Pieces: %d", float64(timber.StockLength), c.StocksNeeded))
	} else {
		lines = append(lines, fmt.Sprintf("%gm Stock Pieces: board longer than stock", float64(timber.StockLength)))
	}
	lines = append(lines,
		fmt.Sprintf("Total Linear Meters: %.1f m", float64(c.TotalLinearMeters)),
		fmt.Sprintf("Total Wood Volume: %.3f m³", c.TotalVolume),
		fmt.Sprintf("Estimated Weight: %.1f kg", c.TotalWeight),
		"",
		"COST ESTIMATE:",
		fmt.Sprintf("Price per %gm Stock: %.2f", float64(timber.StockLength), p.PricePerStock),
		fmt.Sprintf("Total Cost: %.2f", c.TotalCost),
		"",
		fmt.Sprintf("Generated: %s", r.Timestamp.Format("2006-01-02 15:04:05")),
	)

	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write bill of materials: %w", err)
	}
	return nil
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
