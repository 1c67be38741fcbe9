package dome

import (
	"math"

	"github.com/alexiusacademia/woodgeo/internal/units"
)

// doorCut describes a rectangular opening centered on angle 0 of a ring.
// The jambs are the two vertical planes at ±width/2 from the door axis,
// which cut the ring at ±halfAngle.
type doorCut struct {
	radius    units.Meters
	halfAngle float64
}

func newDoorCut(radius, width units.Meters) *doorCut {
	if radius <= 0 {
		return nil
	}
	ratio := math.Min(1, float64(width/2)/float64(radius))
	return &doorCut{radius: radius, halfAngle: math.Asin(ratio)}
}

// trim cuts a tangent board centered at angle back to the door jambs.
// start and end are offsets along the tangent from the board center.
// keep is false when the board's center falls inside the opening or
// the remaining piece is too short to place.
func (d *doorCut) trim(angle float64, start, end units.Meters) (units.Meters, units.Meters, bool) {
	theta := normalizeAngle(angle)
	if math.Abs(theta) < d.halfAngle {
		return start, end, false
	}

	r := float64(d.radius)
	if theta > 0 {
		// Right of the door: the start end swings towards the opening.
		if theta+math.Atan(float64(start)/r) < d.halfAngle {
			start = units.Meters(r * math.Tan(d.halfAngle-theta))
		}
	} else {
		if theta+math.Atan(float64(end)/r) > -d.halfAngle {
			end = units.Meters(r * math.Tan(-d.halfAngle-theta))
		}
	}

	if end-start < minBoardPiece {
		return start, end, false
	}
	return start, end, true
}

// normalizeAngle maps a into (-π, π].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
