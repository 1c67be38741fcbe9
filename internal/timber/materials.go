package timber

import (
	"math"

	"github.com/alexiusacademia/woodgeo/internal/units"
)

// Stock and material constants for sawn softwood boards

const (
	// Stock supply
	StockLength units.Meters = 6.0 // Standard stock length sold by the yard

	// Density of dry softwood (kg/m³)
	WoodDensity = 500.0

	// Default price of one stock piece
	DefaultPricePerStock = 229.0

	// Door opening cut into the lower rings of a dome
	DoorHeight units.Meters = 2.0
	DoorWidth  units.Meters = 0.75
)

// BoardsPerStock returns how many boards of the given length can be cut
// from one stock piece. Kerf is ignored.
func BoardsPerStock(boardLength units.Meters) int {
	if boardLength <= 0 {
		return 0
	}
	// Tolerate float noise so a ratio like 6.0/1.2 never floors to 4
	return int(math.Floor(float64(StockLength)/float64(boardLength) + 1e-9))
}

// OffcutPerStock returns the length left over on each stock piece.
func OffcutPerStock(boardLength units.Meters) units.Meters {
	n := BoardsPerStock(boardLength)
	if n == 0 {
		return StockLength
	}
	return StockLength - units.Meters(n)*boardLength
}

// BoardVolume returns the volume of one board in cubic meters.
func BoardVolume(length units.Meters, width, thickness units.Millimeters) float64 {
	return float64(length) * float64(width.Meters()) * float64(thickness.Meters())
}
