package lattice

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/alexiusacademia/woodgeo/internal/units"
)

// Element is one item of a generated lattice: *Beam, *Intercept,
// *PerpLine or *Polyline. Positions are in display units (see
// units.DisplayScale) in a Z-up frame centered on the polygon axis.
type Element interface {
	// ID is unique within one Generate call.
	ID() int
	// Row is the 0-based layer the element belongs to.
	Row() int

	isElement()
}

type base struct {
	id  int
	row int
}

func (b base) ID() int  { return b.id }
func (b base) Row() int { return b.row }
func (base) isElement() {}

// Beam is one polygon edge of a layer.
type Beam struct {
	base
	EdgeIndex int
	Center    r3.Vec
	Rotation  float64 // radians about +Z, along the beam
	Length    units.DisplayUnits
	Width     units.DisplayUnits
	Height    units.DisplayUnits
}

// MarkerType tells which neighbouring layer produced an intercept.
type MarkerType string

const (
	MarkerAbove MarkerType = "above"
	MarkerBelow MarkerType = "below"
)

// Intercept marks where an edge crosses an edge of the layer above or
// below. The marker sits just outside the matching face of the beam.
type Intercept struct {
	base
	EdgeIndex         int
	Type              MarkerType
	NeighborRow       int
	NeighborEdgeIndex int
	T                 float64 // parameter along the edge from its first corner, in [0, 1]
	Position          r3.Vec
}

// PerpLine is the diagnostic segment from an edge midpoint inward by dPerp.
type PerpLine struct {
	base
	EdgeIndex int
	Start     r3.Vec
	End       r3.Vec
}

// Polyline is the closed inner profile of a layer joining the corner
// cuts of every edge. The first point is repeated at the end.
type Polyline struct {
	base
	Points []r3.Vec
}

// Compile-time checks.
var (
	_ Element = (*Beam)(nil)
	_ Element = (*Intercept)(nil)
	_ Element = (*PerpLine)(nil)
	_ Element = (*Polyline)(nil)
)

// Counts tallies elements by kind.
type Counts struct {
	Beams      int
	Intercepts int
	PerpLines  int
	Polylines  int
}

// Count tallies a generated element list.
func Count(elements []Element) Counts {
	var c Counts
	for _, e := range elements {
		switch e.(type) {
		case *Beam:
			c.Beams++
		case *Intercept:
			c.Intercepts++
		case *PerpLine:
			c.PerpLines++
		case *Polyline:
			c.Polylines++
		}
	}
	return c
}

// Intercepts returns the intercept markers of one row and edge in
// emission order, which is sorted by T.
func Intercepts(elements []Element, row, edge int) []*Intercept {
	var out []*Intercept
	for _, e := range elements {
		if m, ok := e.(*Intercept); ok && m.Row() == row && m.EdgeIndex == edge {
			out = append(out, m)
		}
	}
	return out
}
