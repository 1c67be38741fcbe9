package dome

import (
	"math"

	"github.com/alexiusacademia/woodgeo/internal/units"
)

// Row is one ring of boards. Height and radius are measured in
// millimeters; height is the ring's vertical center measured down from
// the apex.
type Row struct {
	Index            int               `json:"row"`              // 1-based, row 1 is the apex ring
	Height           units.Millimeters `json:"height"`           // distance of the ring center from the apex
	Radius           units.Millimeters `json:"radius"`           // ring radius on the cap surface
	Boards           int               `json:"boards"`           // boards actually placed (half ring when half-open)
	FullCircleBoards int               `json:"fullCircleBoards"` // boards in a complete ring
	PerEndGap        units.Millimeters `json:"perEndGap"`        // leftover circumference per board, floored at 0
	AngleStep        float64           `json:"angleStep"`        // radians between board centers
}

// Layout holds the result of ComputeLayout.
type Layout struct {
	CapRadius   units.Meters `json:"sphereRadius"` // radius of the sphere the cap is cut from
	Rows        int          `json:"rows"`
	RowRecords  []Row        `json:"rowData"`
	TotalBoards int          `json:"totalBoards"`
}

// CapRadius returns the radius of the sphere whose cap has base radius
// a and height h, from the sagitta relation R = (a² + h²) / 2h.
func CapRadius(a, h units.Meters) units.Meters {
	if h <= 0 {
		return 0
	}
	return (a*a + h*h) / (2 * h)
}

// RowCount returns how many rings of the given pitch fit in the height.
func RowCount(height units.Meters, pitch units.Millimeters) int {
	if height <= 0 || pitch <= 0 {
		return 0
	}
	return int(math.Floor(float64(height.Millimeters() / pitch)))
}

// ringRadius returns the radius of the cap cross-section at depth z
// below the apex. The radicand is clamped so extreme aspect ratios give
// a zero ring instead of NaN.
func ringRadius(capRadius, z units.Meters) units.Meters {
	d := capRadius - z
	rr := capRadius*capRadius - d*d
	if rr <= 0 {
		return 0
	}
	return units.Meters(math.Sqrt(float64(rr)))
}

// ComputeLayout partitions the dome height into rings and sizes each
// ring's board count. Degenerate parameters yield an empty layout.
func ComputeLayout(p Parameters) Layout {
	a := p.DomeDiameter / 2
	h := p.DomeHeight
	if a <= 0 || h <= 0 {
		return Layout{}
	}

	layout := Layout{
		CapRadius: CapRadius(a, h),
		Rows:      RowCount(h, p.Pitch()),
	}
	if layout.Rows == 0 {
		return layout
	}

	pitch := p.Pitch().Meters()
	effective := p.EffectiveBoardLength()
	minBoards := max(p.MinTopBoards, 1)

	layout.RowRecords = make([]Row, 0, layout.Rows)
	for i := 0; i < layout.Rows; i++ {
		z := (units.Meters(i) + 0.5) * pitch
		r := ringRadius(layout.CapRadius, z)
		circumference := 2 * math.Pi * float64(r)

		calculated := 0
		if effective > 0 {
			calculated = int(math.Round(circumference / float64(effective)))
		}
		boards := max(minBoards, calculated)

		gap := (circumference - float64(boards)*float64(effective)) / float64(boards)

		row := Row{
			Index:            i + 1,
			Height:           z.Millimeters(),
			Radius:           r.Millimeters(),
			Boards:           boards,
			FullCircleBoards: boards,
			PerEndGap:        units.Meters(math.Max(0, gap)).Millimeters(),
			AngleStep:        2 * math.Pi / float64(boards),
		}
		if p.EnableHalfOpen {
			row.Boards = halfRing(boards)
		}

		layout.TotalBoards += row.Boards
		layout.RowRecords = append(layout.RowRecords, row)
	}

	return layout
}

// halfRing returns the board count for a half-open ring.
func halfRing(fullCircle int) int {
	return (fullCircle + 1) / 2
}
