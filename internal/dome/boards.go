package dome

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/alexiusacademia/woodgeo/internal/timber"
	"github.com/alexiusacademia/woodgeo/internal/units"
)

// minBoardPiece is the shortest trimmed piece still worth placing.
const minBoardPiece units.Meters = 0.001

// BoardPlacement is one board in world space. The frame is Z-up with the
// door, when present, facing +X. Position is the center of the board.
type BoardPlacement struct {
	Position  r3.Vec       // meters
	Rotation  float64      // radians about +Z; the board's long axis follows this heading
	Length    units.Meters // after any door trimming
	Width     units.Meters
	Thickness units.Meters
	Trimmed   bool
}

// ExpandRow turns a ring descriptor into individual board placements.
//
// Boards sit on the ring tangent, evenly spaced by row.AngleStep. Odd rows
// are turned half a step for a running bond. In dome mode the ring height
// is flipped so the apex ring is at the top. With a door, boards of rings
// below the door head are dropped or cut back to the door edges.
func ExpandRow(row Row, p Parameters) []BoardPlacement {
	if row.FullCircleBoards <= 0 || row.Radius <= 0 {
		return nil
	}

	count := row.FullCircleBoards
	startAngle := 0.0
	if p.EnableHalfOpen {
		count = halfRing(row.FullCircleBoards)
		startAngle = -math.Pi / 2
	}

	rowIndex := row.Index - 1
	if rowIndex%2 == 1 {
		startAngle += row.AngleStep / 2
	}

	y := row.Height.Meters()
	if p.InvertShape {
		y = p.DomeHeight - y
	}

	radius := row.Radius.Meters()
	var door *doorCut
	if p.ShowDoor && p.InvertShape && y < timber.DoorHeight {
		door = newDoorCut(radius, timber.DoorWidth)
	}

	stagger := p.SameRowVerticalGap.Meters() / 2
	placements := make([]BoardPlacement, 0, count)

	for i := 0; i < count; i++ {
		angle := startAngle + float64(i)*row.AngleStep

		z := y + stagger
		if i%2 == 1 {
			z = y - stagger
		}

		start, end := -p.BoardLength/2, p.BoardLength/2
		trimmed := false
		if door != nil {
			var keep bool
			start, end, keep = door.trim(angle, start, end)
			if !keep {
				continue
			}
			trimmed = end-start < p.BoardLength
		}

		center := r3.Vec{
			X: float64(radius) * math.Cos(angle),
			Y: float64(radius) * math.Sin(angle),
			Z: float64(z),
		}
		tangent := r3.Vec{X: -math.Sin(angle), Y: math.Cos(angle)}
		center = r3.Add(center, r3.Scale(float64(start+end)/2, tangent))

		placements = append(placements, BoardPlacement{
			Position:  center,
			Rotation:  angle + math.Pi/2,
			Length:    end - start,
			Width:     p.BoardWidth.Meters(),
			Thickness: p.BoardThickness.Meters(),
			Trimmed:   trimmed,
		})
	}

	return placements
}

// ExpandLayout expands every row of a layout.
func ExpandLayout(layout Layout, p Parameters) [][]BoardPlacement {
	out := make([][]BoardPlacement, len(layout.RowRecords))
	for i, row := range layout.RowRecords {
		out[i] = ExpandRow(row, p)
	}
	return out
}
