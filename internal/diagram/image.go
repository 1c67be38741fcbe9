package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Segment is a straight piece of a plan view. Segments sharing a Group
// are drawn in the same color.
type Segment struct {
	A, B  Point
	Group int
}

// Marker is a point annotation in a plan view. Up markers are drawn as
// triangles, the rest as inverted triangles.
type Marker struct {
	At Point
	Up bool
}

// PlanData holds data for drawing a top-down view
type PlanData struct {
	Title    string
	Unit     string // axis unit label
	Segments []Segment
	Markers  []Marker

	// Outline is an optional closed reference shape, such as the dome
	// footprint, drawn dashed.
	Outline []Point
	// Openings are drawn as heavy red segments, such as a door.
	Openings []Segment
}

// ExportDomeProfile exports the dome's side view: every ring drawn as a
// horizontal chord of its diameter at its height, over the cap arc.
func ExportDomeProfile(data DomeProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = "Dome Ring Profile"
	p.X.Label.Text = "Radius (mm)"
	p.Y.Label.Text = "Height (mm)"

	level := func(depth float64) float64 {
		if data.Inverted {
			return data.Height - depth
		}
		return depth
	}

	// Cap arc from the sphere, clipped to the dome height
	if data.CapRadius > 0 && data.Height > 0 {
		const steps = 64
		left := make(plotter.XYs, 0, steps+1)
		right := make(plotter.XYs, 0, steps+1)
		for i := 0; i <= steps; i++ {
			z := data.Height * float64(i) / steps
			d := data.CapRadius - z
			r := math.Sqrt(math.Max(0, data.CapRadius*data.CapRadius-d*d))
			left = append(left, plotter.XY{X: -r, Y: level(z)})
			right = append(right, plotter.XY{X: r, Y: level(z)})
		}
		for _, pts := range []plotter.XYs{left, right} {
			arc, err := plotter.NewLine(pts)
			if err != nil {
				return err
			}
			arc.LineStyle.Width = vg.Points(1)
			arc.LineStyle.Color = color.Gray{Y: 128}
			arc.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
			p.Add(arc)
		}
	}

	// Rings
	for _, r := range data.Rings {
		y := level(r.Height)
		ring, err := plotter.NewLine(plotter.XYs{{X: -r.Radius, Y: y}, {X: r.Radius, Y: y}})
		if err != nil {
			return err
		}
		ring.LineStyle.Width = vg.Points(1.5)
		ring.LineStyle.Color = color.RGBA{R: 139, G: 90, B: 43, A: 255}
		p.Add(ring)
	}

	// Base line
	base := level(data.Height)
	baseLine, err := plotter.NewLine(plotter.XYs{{X: -data.Diameter / 2, Y: base}, {X: data.Diameter / 2, Y: base}})
	if err != nil {
		return err
	}
	baseLine.LineStyle.Width = vg.Points(2)
	baseLine.LineStyle.Color = color.Black
	p.Add(baseLine)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: data.Diameter / 2, Y: base}},
		Labels: []string{fmt.Sprintf("  Ø%.0f mm", data.Diameter)},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportPlan exports a top-down view with equal axis scales.
func ExportPlan(data PlanData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = fmt.Sprintf("X (%s)", data.Unit)
	p.Y.Label.Text = fmt.Sprintf("Y (%s)", data.Unit)

	extent := 0.0
	grow := func(pt Point) {
		extent = math.Max(extent, math.Max(math.Abs(pt.X), math.Abs(pt.Y)))
	}

	if len(data.Outline) >= 2 {
		pts := make(plotter.XYs, 0, len(data.Outline)+1)
		for _, pt := range data.Outline {
			pts = append(pts, plotter.XY{X: pt.X, Y: pt.Y})
			grow(pt)
		}
		pts = append(pts, pts[0])
		outline, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		outline.LineStyle.Color = color.Gray{Y: 160}
		outline.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(outline)
	}

	for _, s := range data.Segments {
		line, err := plotter.NewLine(plotter.XYs{{X: s.A.X, Y: s.A.Y}, {X: s.B.X, Y: s.B.Y}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(s.Group)
		p.Add(line)
		grow(s.A)
		grow(s.B)
	}

	for _, s := range data.Openings {
		line, err := plotter.NewLine(plotter.XYs{{X: s.A.X, Y: s.A.Y}, {X: s.B.X, Y: s.B.Y}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(4)
		line.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		p.Add(line)
		grow(s.A)
		grow(s.B)
	}

	var up, down plotter.XYs
	for _, m := range data.Markers {
		if m.Up {
			up = append(up, plotter.XY{X: m.At.X, Y: m.At.Y})
		} else {
			down = append(down, plotter.XY{X: m.At.X, Y: m.At.Y})
		}
		grow(m.At)
	}
	for _, set := range []struct {
		pts   plotter.XYs
		shape draw.GlyphDrawer
		color color.Color
	}{
		{up, draw.TriangleGlyph{}, color.RGBA{R: 0, G: 128, B: 0, A: 255}},
		{down, draw.PyramidGlyph{}, color.RGBA{R: 0, G: 0, B: 139, A: 255}},
	} {
		if len(set.pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(set.pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape = set.shape
		sc.GlyphStyle.Color = set.color
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
	}

	if extent > 0 {
		extent *= 1.1
		p.X.Min, p.X.Max = -extent, extent
		p.Y.Min, p.Y.Max = -extent, extent
	}

	return save(p, 7*vg.Inch, 7*vg.Inch, filename)
}

// save writes the plot in the format given by the file extension.
// Unknown extensions get ".png" appended.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
