package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleProfile(n int) DomeProfileData {
	rings := make([]Ring, n)
	for i := range rings {
		rings[i] = Ring{
			Index:  i + 1,
			Height: float64(i+1) * 181,
			Radius: float64(i+1) * 100,
			Boards: 12 + i,
		}
	}
	return DomeProfileData{Height: 6000, Diameter: 7000, CapRadius: 4020.8, Rings: rings, Inverted: true}
}

func TestDrawASCIIRingProfile(t *testing.T) {
	out := DrawASCIIRingProfile(sampleProfile(5))
	var bars []string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "│") {
			bars = append(bars, l)
		}
	}
	if len(bars) != 5 {
		t.Fatalf("got %d ring lines, want 5:\n%s", len(bars), out)
	}
	// Dome: apex ring first and narrowest.
	if strings.Count(bars[0], "█") >= strings.Count(bars[4], "█") {
		t.Errorf("apex ring not narrower than base ring:\n%s", out)
	}
	if strings.Contains(out, "Showing") {
		t.Errorf("short profile should not be sampled")
	}
}

func TestDrawASCIIRingProfileCup(t *testing.T) {
	data := sampleProfile(5)
	data.Inverted = false
	out := DrawASCIIRingProfile(data)

	var bars []string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "│") {
			bars = append(bars, l)
		}
	}
	if strings.Count(bars[0], "█") <= strings.Count(bars[len(bars)-1], "█") {
		t.Errorf("cup should widen upward:\n%s", out)
	}
}

func TestDrawASCIIRingProfileSampled(t *testing.T) {
	out := DrawASCIIRingProfile(sampleProfile(60))
	if !strings.Contains(out, "Showing 24 of 60 rings") {
		t.Errorf("expected sampling note:\n%s", out)
	}
}

func TestDrawASCIIRingProfileEmpty(t *testing.T) {
	out := DrawASCIIRingProfile(DomeProfileData{})
	if !strings.Contains(out, "(no rings)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSampleRingsKeepsEnds(t *testing.T) {
	rings := sampleProfile(100).Rings
	got := sampleRings(rings, 10)
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if got[0].Index != 1 || got[9].Index != 100 {
		t.Errorf("ends = %d, %d, want 1, 100", got[0].Index, got[9].Index)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("MATERIALS", []string{"Stocks: 120", "Volume: 1.39 m³"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	width := len([]rune(lines[0]))
	for i, l := range lines {
		if n := len([]rune(l)); n != width {
			t.Errorf("line %d is %d runes wide, want %d:\n%s", i, n, width, out)
		}
	}
}

func TestExportDomeProfile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "profile.png")
	if err := ExportDomeProfile(sampleProfile(10), filename); err != nil {
		t.Fatalf("ExportDomeProfile: %v", err)
	}
	assertNonEmpty(t, filename)
}

func TestExportPlan(t *testing.T) {
	dir := t.TempDir()
	data := PlanData{
		Title: "Plan",
		Unit:  "mm",
		Segments: []Segment{
			{A: Point{X: 0, Y: 0}, B: Point{X: 1000, Y: 0}, Group: 0},
			{A: Point{X: 1000, Y: 0}, B: Point{X: 0, Y: 1000}, Group: 1},
		},
		Markers:  []Marker{{At: Point{X: 500, Y: 0}, Up: true}, {At: Point{X: 500, Y: 500}}},
		Outline:  []Point{{X: 1200}, {Y: 1200}, {X: -1200}, {Y: -1200}},
		Openings: []Segment{{A: Point{X: 1200, Y: -100}, B: Point{X: 1200, Y: 100}}},
	}

	// Nested directories are created; unknown extensions fall back to png.
	filename := filepath.Join(dir, "out", "plan")
	if err := ExportPlan(data, filename); err != nil {
		t.Fatalf("ExportPlan: %v", err)
	}
	assertNonEmpty(t, filename+".png")

	svg := filepath.Join(dir, "plan.svg")
	if err := ExportPlan(data, svg); err != nil {
		t.Fatalf("ExportPlan svg: %v", err)
	}
	assertNonEmpty(t, svg)
}

func assertNonEmpty(t *testing.T, filename string) {
	t.Helper()
	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("stat %s: %v", filename, err)
	}
	if info.Size() == 0 {
		t.Errorf("%s is empty", filename)
	}
}
