package lattice

import (
	"math"

	"github.com/alexiusacademia/woodgeo/internal/units"
)

// DerivedScalars are the closed-form quantities of an n-gon of side s
// whose copies are turned by θ from layer to layer. Lengths in mm.
type DerivedScalars struct {
	Theta   float64           // radians
	R       units.Millimeters // circumradius
	Apothem units.Millimeters
	CotN    float64 // cot(π/n)
	MEdge   units.Millimeters
	CEdge   units.Millimeters
	DPerp   units.Millimeters
	Sides   int
	SideLen units.Millimeters
}

// ComputeDerivedScalars evaluates the edge-cut formulas.
//
//	R     = s / 2sin(π/n)
//	a     = s / 2tan(π/n)
//	mEdge = s·cot(π/n)·tan(θ/2)   span between the ±θ crossings on one edge
//	cEdge = (s − mEdge) / 2        corner to the nearer of those crossings
//	dPerp = a·tan(θ/2)             edge midpoint to either crossing
func ComputeDerivedScalars(n int, s units.Millimeters, theta float64) (DerivedScalars, error) {
	if n < 3 {
		return DerivedScalars{}, ErrTooFewSides
	}

	half := math.Pi / float64(n)
	cot := 1 / math.Tan(half)
	t := math.Tan(theta / 2)

	d := DerivedScalars{
		Theta:   theta,
		R:       s / units.Millimeters(2*math.Sin(half)),
		Apothem: s / units.Millimeters(2*math.Tan(half)),
		CotN:    cot,
		MEdge:   s * units.Millimeters(cot*t),
		Sides:   n,
		SideLen: s,
	}
	d.CEdge = (s - d.MEdge) / 2
	d.DPerp = d.Apothem * units.Millimeters(t)

	return d, nil
}

// IdentityResidual returns |2·cEdge + mEdge − s|, zero up to rounding
// for any consistent set of scalars.
func (d DerivedScalars) IdentityResidual() float64 {
	return math.Abs(float64(2*d.CEdge + d.MEdge - d.SideLen))
}

// InnerCutsValid reports whether the corner cuts lie on the edge, that
// is 0 ≤ cEdge ≤ s/2.
func (d DerivedScalars) InnerCutsValid() bool {
	return d.CEdge >= 0 && d.CEdge <= d.SideLen/2
}

// CutList gives the marking-out distances along one beam.
type CutList struct {
	FirstFromCorner          units.Millimeters
	SecondFromSameCorner     units.Millimeters
	SecondFromOppositeCorner units.Millimeters
	CutToCutGap              units.Millimeters
}

// Cuts returns the cut list for a beam of the lattice.
func (d DerivedScalars) Cuts() CutList {
	return CutList{
		FirstFromCorner:          d.CEdge,
		SecondFromSameCorner:     d.CEdge + d.MEdge,
		SecondFromOppositeCorner: d.SideLen - d.CEdge,
		CutToCutGap:              d.MEdge,
	}
}
