// Package units carries the length units used across the engines.
//
// Dome inputs mix meters (heights, lengths) and millimeters (board
// cross-section, gaps); the lattice takes millimeters and emits positions
// in display units. Conversions between them are explicit.
package units

// Meters is a length in meters.
type Meters float64

// Millimeters is a length in millimeters.
type Millimeters float64

// DisplayUnits is the normalized scene unit used by the lattice output.
// One display unit is 300 mm (3000 mm maps to 10 units).
type DisplayUnits float64

// DisplayScale converts millimeters to display units.
const DisplayScale = 10.0 / 3000.0

// Millimeters converts m to millimeters.
func (m Meters) Millimeters() Millimeters { return Millimeters(m * 1000) }

// Meters converts mm to meters.
func (mm Millimeters) Meters() Meters { return Meters(mm / 1000) }

// Display converts mm to display units.
func (mm Millimeters) Display() DisplayUnits { return DisplayUnits(float64(mm) * DisplayScale) }

// Millimeters converts d back to millimeters.
func (d DisplayUnits) Millimeters() Millimeters { return Millimeters(float64(d) / DisplayScale) }
