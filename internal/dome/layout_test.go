package dome

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/woodgeo/internal/units"
)

func TestCapRadiusAtLeastHalfHeight(t *testing.T) {
	for _, a := range []units.Meters{0.5, 1, 3.5, 10, 50} {
		for _, h := range []units.Meters{0.1, 0.5, 1, 3.5, 6, 20} {
			r := CapRadius(a, h)
			if r < h/2 {
				t.Errorf("CapRadius(%v, %v) = %v, want >= %v", a, h, r, h/2)
			}
		}
	}
	if got := CapRadius(3.5, 3.5); !scalar.EqualWithinAbs(float64(got), 3.5, 1e-12) {
		t.Errorf("hemisphere cap radius = %v, want 3.5", got)
	}
	if got := CapRadius(3.5, 0); got != 0 {
		t.Errorf("CapRadius with zero height = %v, want 0", got)
	}
}

func TestComputeLayoutReferenceDome(t *testing.T) {
	p := DefaultParameters()
	p.DomeHeight = 6.0
	p.DomeDiameter = 7
	p.BoardWidth = 152
	p.VerticalGap = 29

	layout := ComputeLayout(p)

	if layout.Rows != 33 {
		t.Fatalf("rows = %d, want 33", layout.Rows)
	}
	if len(layout.RowRecords) != 33 {
		t.Fatalf("row records = %d, want 33", len(layout.RowRecords))
	}

	wantR := (3.5*3.5 + 6.0*6.0) / 12.0
	if !scalar.EqualWithinAbs(float64(layout.CapRadius), wantR, 1e-12) {
		t.Errorf("cap radius = %v, want %v", layout.CapRadius, wantR)
	}

	first := layout.RowRecords[0]
	if first.Index != 1 {
		t.Errorf("first row index = %d, want 1", first.Index)
	}
	if first.Radius >= 3500 {
		t.Errorf("first row radius = %.1f mm, want < 3500", first.Radius)
	}
	if !scalar.EqualWithinAbs(float64(first.Height), 90.5, 1e-9) {
		t.Errorf("first row height = %v, want 90.5", first.Height)
	}
	// The apex ring is small, the minimum board count applies.
	if first.Boards != p.MinTopBoards {
		t.Errorf("first row boards = %d, want %d", first.Boards, p.MinTopBoards)
	}

	// Deeper than a hemisphere, so rings may bulge past the base radius
	// but never past the sphere.
	capMM := float64(layout.CapRadius.Millimeters())
	for _, row := range layout.RowRecords {
		if float64(row.Radius) > capMM+1e-9 {
			t.Errorf("row %d radius %.1f exceeds cap radius %.1f", row.Index, row.Radius, capMM)
		}
	}
	last := layout.RowRecords[len(layout.RowRecords)-1]
	if last.Radius <= first.Radius {
		t.Errorf("last row radius %.1f should exceed first %.1f", last.Radius, first.Radius)
	}
}

func TestComputeLayoutShallowCapStaysInsideBase(t *testing.T) {
	for _, h := range []units.Meters{0.5, 1.5, 3.0, 3.5} {
		p := DefaultParameters()
		p.DomeHeight = h
		p.DomeDiameter = 7
		layout := ComputeLayout(p)
		for _, row := range layout.RowRecords {
			if row.Radius > 3500+1e-9 {
				t.Errorf("h=%v: row %d radius %.3f exceeds base radius", h, row.Index, row.Radius)
			}
		}
	}
}

func TestComputeLayoutRowInvariants(t *testing.T) {
	p := DefaultParameters()
	p.EndOverlap = 50
	layout := ComputeLayout(p)

	total := 0
	for _, row := range layout.RowRecords {
		if row.Boards < p.MinTopBoards {
			t.Errorf("row %d has %d boards, below minimum %d", row.Index, row.Boards, p.MinTopBoards)
		}
		if row.Boards != row.FullCircleBoards {
			t.Errorf("row %d: boards %d != full circle %d on a closed dome", row.Index, row.Boards, row.FullCircleBoards)
		}
		if row.PerEndGap < 0 {
			t.Errorf("row %d: negative per-end gap %v", row.Index, row.PerEndGap)
		}
		if got := row.AngleStep * float64(row.FullCircleBoards); !scalar.EqualWithinAbs(got, 2*math.Pi, 1e-9) {
			t.Errorf("row %d: angle step covers %v rad, want 2π", row.Index, got)
		}
		total += row.Boards
	}
	if total != layout.TotalBoards {
		t.Errorf("total boards = %d, want sum %d", layout.TotalBoards, total)
	}
}

func TestComputeLayoutPerEndGap(t *testing.T) {
	p := DefaultParameters()
	p.MinTopBoards = 1
	layout := ComputeLayout(p)

	for _, row := range layout.RowRecords {
		circumference := 2 * math.Pi * float64(row.Radius.Meters())
		gap := (circumference - float64(row.FullCircleBoards)*float64(p.EffectiveBoardLength())) / float64(row.FullCircleBoards)
		want := math.Max(0, gap*1000)
		if !scalar.EqualWithinAbs(float64(row.PerEndGap), want, 1e-6) {
			t.Errorf("row %d: per-end gap = %v, want %v", row.Index, row.PerEndGap, want)
		}
	}
}

func TestComputeLayoutHalfOpen(t *testing.T) {
	p := DefaultParameters()
	p.EnableHalfOpen = true
	layout := ComputeLayout(p)

	total := 0
	for _, row := range layout.RowRecords {
		want := (row.FullCircleBoards + 1) / 2
		if row.Boards != want {
			t.Errorf("row %d: boards = %d, want ceil(%d/2) = %d", row.Index, row.Boards, row.FullCircleBoards, want)
		}
		total += want
	}
	if layout.TotalBoards != total {
		t.Errorf("total boards = %d, want %d", layout.TotalBoards, total)
	}
}

func TestRowCountMonotonic(t *testing.T) {
	prev := -1
	for h := units.Meters(0.1); h <= 10; h += 0.07 {
		n := RowCount(h, 181)
		if n < prev {
			t.Fatalf("row count decreased from %d to %d at height %v", prev, n, h)
		}
		prev = n
	}

	prev = math.MaxInt
	for pitch := units.Millimeters(50); pitch <= 600; pitch += 7 {
		n := RowCount(6, pitch)
		if n > prev {
			t.Fatalf("row count increased from %d to %d at pitch %v", prev, n, pitch)
		}
		prev = n
	}
}

func TestComputeLayoutDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Parameters)
	}{
		{"height below one pitch", func(p *Parameters) { p.DomeHeight = 0.1 }},
		{"zero height", func(p *Parameters) { p.DomeHeight = 0 }},
		{"zero diameter", func(p *Parameters) { p.DomeDiameter = 0 }},
		{"zero pitch", func(p *Parameters) { p.BoardWidth = 0; p.VerticalGap = 0 }},
		{"negative pitch", func(p *Parameters) { p.VerticalGap = -500 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.modify(&p)
			layout := ComputeLayout(p)
			if layout.Rows != 0 || len(layout.RowRecords) != 0 || layout.TotalBoards != 0 {
				t.Errorf("expected empty layout, got %d rows, %d boards", layout.Rows, layout.TotalBoards)
			}
		})
	}
}

func TestComputeLayoutExtremeAspectHasNoNaN(t *testing.T) {
	for _, p := range []Parameters{
		{DomeHeight: 0.2, DomeDiameter: 100, BoardLength: 2, BoardWidth: 152, VerticalGap: 29, MinTopBoards: 1},
		{DomeHeight: 40, DomeDiameter: 0.5, BoardLength: 2, BoardWidth: 152, VerticalGap: 29, MinTopBoards: 1},
	} {
		layout := ComputeLayout(p)
		if layout.Rows == 0 {
			t.Fatalf("expected rows for %+v", p)
		}
		for _, row := range layout.RowRecords {
			if math.IsNaN(float64(row.Radius)) || math.IsNaN(float64(row.PerEndGap)) || math.IsNaN(row.AngleStep) {
				t.Fatalf("row %d has NaN fields: %+v", row.Index, row)
			}
			if row.Radius < 0 {
				t.Fatalf("row %d has negative radius %v", row.Index, row.Radius)
			}
		}
	}
}

func TestComputeLayoutOverlapConsumingBoard(t *testing.T) {
	p := DefaultParameters()
	p.EndOverlap = 2500
	layout := ComputeLayout(p)
	for _, row := range layout.RowRecords {
		if row.Boards != p.MinTopBoards {
			t.Errorf("row %d: boards = %d, want minimum %d", row.Index, row.Boards, p.MinTopBoards)
		}
	}
	if err := p.Validate(); err == nil {
		t.Error("Validate accepted an overlap longer than the board")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultParameters().Validate(); err != nil {
		t.Fatalf("default parameters invalid: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Parameters)
	}{
		{"height", func(p *Parameters) { p.DomeHeight = 0 }},
		{"diameter", func(p *Parameters) { p.DomeDiameter = -1 }},
		{"board length", func(p *Parameters) { p.BoardLength = 0 }},
		{"board width", func(p *Parameters) { p.BoardWidth = 0 }},
		{"pitch", func(p *Parameters) { p.VerticalGap = -200 }},
		{"min top boards", func(p *Parameters) { p.MinTopBoards = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.modify(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if _, ok := err.(*ValidationError); !ok {
				t.Errorf("error type = %T, want *ValidationError", err)
			}
		})
	}
}
