package lattice

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/alexiusacademia/woodgeo/internal/units"
)

// MarkerLift is the gap between a beam face and the intercept marker
// placed outside it.
const MarkerLift units.Millimeters = 15

// hit is an intercept found on one edge before it becomes an element.
type hit struct {
	t         float64
	kind      MarkerType
	neighbor  int
	neighEdge int
}

type generator struct {
	p      Parameters
	d      DerivedScalars
	theta  float64
	nextID int
	out    []Element
}

// Generate builds every layer of the lattice: one beam per polygon edge
// per row, and optionally the intercept markers, perpendicular markers
// and inner polygon of each row. Row r is the base polygon turned by
// r·θ and lifted to r·layerHeight + layerHeight/2.
//
// The only error is ErrTooFewSides; degenerate geometry yields a
// reduced element list.
func Generate(p Parameters) ([]Element, error) {
	if p.Sides < 3 {
		return nil, ErrTooFewSides
	}
	theta := p.Theta()
	d, err := ComputeDerivedScalars(p.Sides, p.SideLength, theta)
	if err != nil {
		return nil, err
	}
	if p.Rows < 1 || p.SideLength <= 0 {
		return nil, nil
	}

	g := &generator{p: p, d: d, theta: theta}
	for row := 0; row < p.Rows; row++ {
		g.row(row)
	}
	return g.out, nil
}

func (g *generator) emit(e Element) {
	g.out = append(g.out, e)
}

// next reserves the next element id.
func (g *generator) next(row int) base {
	b := base{id: g.nextID, row: row}
	g.nextID++
	return b
}

// polygon returns the edges of row's polygon, turned by row·θ.
func (g *generator) polygon(row int) []segment {
	return edges(regularPolygon(g.p.Sides, float64(g.d.R), float64(row)*g.theta))
}

func (g *generator) row(row int) {
	p := g.p
	rotation := float64(row) * g.theta
	z := units.Millimeters(row)*p.LayerHeight + p.LayerHeight/2
	own := g.polygon(row)

	for k, e := range own {
		g.emit(&Beam{
			base:      g.next(row),
			EdgeIndex: k,
			Center:    display(e.midpoint(), z),
			Rotation:  edgeTangent(k, p.Sides) + rotation,
			Length:    p.SideLength.Display(),
			Width:     p.BeamThickness.Display(),
			Height:    p.BeamDepth.Display(),
		})
	}

	if p.ShowIntersections && math.Abs(g.theta) > thetaEpsilon {
		g.intercepts(row, own, z)
	}
	if p.ShowPerpMarkers {
		g.perpLines(row, own, z)
	}
	if p.ShowInnerPolygon && g.d.InnerCutsValid() {
		g.innerPolygon(row, own, z)
	}
}

// intercepts tests every edge of the row against every edge of the rows
// above and below and emits the crossings, sorted along each edge.
func (g *generator) intercepts(row int, own []segment, z units.Millimeters) {
	var above, below []segment
	if row+1 < g.p.Rows {
		above = g.polygon(row + 1)
	}
	if row > 0 {
		below = g.polygon(row - 1)
	}

	faceOffset := g.p.BeamDepth/2 + MarkerLift

	for k, e := range own {
		hits := collectHits(e, above, MarkerAbove, row+1, nil)
		hits = collectHits(e, below, MarkerBelow, row-1, hits)

		sort.SliceStable(hits, func(i, j int) bool { return hits[i].t < hits[j].t })

		for _, h := range hits {
			mz := z + faceOffset
			if h.kind == MarkerBelow {
				mz = z - faceOffset
			}
			g.emit(&Intercept{
				base:              g.next(row),
				EdgeIndex:         k,
				Type:              h.kind,
				NeighborRow:       h.neighbor,
				NeighborEdgeIndex: h.neighEdge,
				T:                 h.t,
				Position:          display(e.at(h.t), mz),
			})
		}
	}
}

// collectHits appends the crossings of e with the neighbour edges,
// skipping any within DedupTolerance of a hit already on e.
func collectHits(e segment, neighbour []segment, kind MarkerType, neighborRow int, hits []hit) []hit {
	for j, ne := range neighbour {
		t, _, ok := intersect(e, ne)
		if !ok {
			continue
		}
		dup := false
		for _, h := range hits {
			if math.Abs(h.t-t) < DedupTolerance {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		hits = append(hits, hit{t: t, kind: kind, neighbor: neighborRow, neighEdge: j})
	}
	return hits
}

// perpLines emits, per edge, the segment from the edge midpoint towards
// the center of length dPerp, drawn on the beam's top face.
func (g *generator) perpLines(row int, own []segment, z units.Millimeters) {
	top := z + g.p.BeamDepth/2
	for k, e := range own {
		mid := e.midpoint()
		inward := r2.Scale(-float64(g.d.DPerp), r2.Unit(mid))
		g.emit(&PerpLine{
			base:      g.next(row),
			EdgeIndex: k,
			Start:     display(mid, top),
			End:       display(r2.Add(mid, inward), top),
		})
	}
}

// innerPolygon joins the two corner cuts of every edge, at cEdge from
// each corner, into a closed loop.
func (g *generator) innerPolygon(row int, own []segment, z units.Millimeters) {
	f := float64(g.d.CEdge / g.d.SideLen)

	pts := make([]r2.Vec, 0, 2*len(own)+1)
	for _, e := range own {
		pts = append(pts, e.at(f), e.at(1-f))
	}
	if first, last := pts[0], pts[len(pts)-1]; !samePoint(first, last) {
		pts = append(pts, first)
	}

	line := &Polyline{base: g.next(row), Points: make([]r3.Vec, len(pts))}
	for i, pt := range pts {
		line.Points[i] = display(pt, z)
	}
	g.emit(line)
}

// edgeTangent is the heading of edge k of the unrotated polygon.
func edgeTangent(k, n int) float64 {
	return float64(2*k+1)*math.Pi/float64(n) + math.Pi/2
}

func samePoint(a, b r2.Vec) bool {
	return scalar.EqualWithinAbs(a.X, b.X, 1e-9) && scalar.EqualWithinAbs(a.Y, b.Y, 1e-9)
}

// display converts a plan point and height in mm to display units.
func display(pt r2.Vec, z units.Millimeters) r3.Vec {
	return r3.Vec{
		X: float64(units.Millimeters(pt.X).Display()),
		Y: float64(units.Millimeters(pt.Y).Display()),
		Z: float64(z.Display()),
	}
}
