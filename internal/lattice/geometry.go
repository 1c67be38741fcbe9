package lattice

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Numeric tolerances used by the geometric predicates.
const (
	// ParallelTolerance bounds |d1 × d2| / (|d1|·|d2|), the sine of the
	// angle between two segment directions, below which they are treated
	// as parallel. Rotations of a polygon by multiples of its own period
	// produce exactly parallel edges that only differ by rounding.
	ParallelTolerance = 1e-9

	// ParamTolerance widens [0, 1] when accepting a parametric hit, so a
	// crossing that lands on a corner is not lost to rounding.
	ParamTolerance = 1e-9

	// DedupTolerance is the minimum parametric distance between two
	// markers on one edge. A crossing at a shared corner is found once
	// per incident neighbour edge.
	DedupTolerance = 1e-6

	// DisplayTolerance is used for identity checks shown to users.
	DisplayTolerance = 1e-3

	// thetaEpsilon is the rotation below which consecutive rows coincide.
	thetaEpsilon = 1e-12
)

// segment is a directed polygon edge from A to B.
type segment struct {
	A, B r2.Vec
}

func (s segment) dir() r2.Vec { return r2.Sub(s.B, s.A) }

// at returns the point at parameter t along s.
func (s segment) at(t float64) r2.Vec {
	return r2.Add(s.A, r2.Scale(t, s.dir()))
}

func (s segment) midpoint() r2.Vec { return s.at(0.5) }

// intersect solves A1 + t·d1 = A2 + u·d2. ok is false for parallel
// segments and for crossings outside either segment.
func intersect(s1, s2 segment) (t, u float64, ok bool) {
	d1, d2 := s1.dir(), s2.dir()
	denom := r2.Cross(d1, d2)
	if math.Abs(denom) <= ParallelTolerance*r2.Norm(d1)*r2.Norm(d2) {
		return 0, 0, false
	}

	w := r2.Sub(s2.A, s1.A)
	t = r2.Cross(w, d2) / denom
	u = r2.Cross(w, d1) / denom

	if t < -ParamTolerance || t > 1+ParamTolerance || u < -ParamTolerance || u > 1+ParamTolerance {
		return 0, 0, false
	}
	return clamp01(t), clamp01(u), true
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// regularPolygon returns the n vertices of a regular polygon with
// circumradius r about the origin, turned by rotation. Vertex k sits at
// angle 2πk/n + rotation, so edge 0's perpendicular bisector points at
// π/n + rotation.
func regularPolygon(n int, r, rotation float64) []r2.Vec {
	verts := make([]r2.Vec, n)
	for k := range verts {
		a := 2*math.Pi*float64(k)/float64(n) + rotation
		verts[k] = r2.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return verts
}

// edges returns the closed edge loop of a polygon.
func edges(verts []r2.Vec) []segment {
	out := make([]segment, len(verts))
	for i := range verts {
		out[i] = segment{A: verts[i], B: verts[(i+1)%len(verts)]}
	}
	return out
}
