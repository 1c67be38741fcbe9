package diagram

import (
	"fmt"
	"math"
	"strings"
)

// Point represents a 2D coordinate in a plan or profile view
type Point struct {
	X float64
	Y float64
}

// Ring is one board ring of a dome profile
type Ring struct {
	Index  int
	Height float64 // mm from the apex
	Radius float64 // mm
	Boards int
}

// DomeProfileData holds data for drawing the ring profile of a dome
type DomeProfileData struct {
	Height    float64 // mm
	Diameter  float64 // mm
	CapRadius float64 // mm
	Rings     []Ring

	// Inverted draws the apex at the top (dome); otherwise at the bottom (cup).
	Inverted bool
}

const (
	profileWidthChars = 48
	profileMaxLines   = 24
)

// DrawASCIIRingProfile creates an ASCII side view of the rings, one bar per
// ring scaled by its radius. Tall domes are sampled down to a readable
// number of lines; the first and last ring are always shown.
func DrawASCIIRingProfile(data DomeProfileData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  RING PROFILE\n")
	sb.WriteString("  ────────────\n")

	if len(data.Rings) == 0 {
		sb.WriteString("  (no rings)\n")
		return sb.String()
	}

	maxR := 0.0
	for _, r := range data.Rings {
		maxR = math.Max(maxR, r.Radius)
	}

	rings := sampleRings(data.Rings, profileMaxLines)
	if !data.Inverted {
		reversed := make([]Ring, len(rings))
		for i, r := range rings {
			reversed[len(rings)-1-i] = r
		}
		rings = reversed
	}

	sb.WriteString(fmt.Sprintf("  %4s  %-*s  %9s  %6s\n", "Row", profileWidthChars+2, "", "Radius", "Boards"))
	for _, r := range rings {
		half := 0
		if maxR > 0 {
			half = int(math.Round(r.Radius / maxR * profileWidthChars / 2))
		}
		pad := profileWidthChars/2 - half
		bar := strings.Repeat(" ", pad) + strings.Repeat("█", 2*half) + strings.Repeat(" ", pad)
		sb.WriteString(fmt.Sprintf("  %4d  │%s│  %6.0f mm  %6d\n", r.Index, bar, r.Radius, r.Boards))
	}

	sb.WriteString("\n")
	if len(rings) < len(data.Rings) {
		sb.WriteString(fmt.Sprintf("  Showing %d of %d rings\n", len(rings), len(data.Rings)))
	}
	sb.WriteString(fmt.Sprintf("  Height = %.0f mm, base diameter = %.0f mm, sphere radius = %.0f mm\n",
		data.Height, data.Diameter, data.CapRadius))

	return sb.String()
}

// sampleRings picks at most limit rings spread evenly over the list.
func sampleRings(rings []Ring, limit int) []Ring {
	if len(rings) <= limit || limit < 2 {
		return rings
	}
	out := make([]Ring, 0, limit)
	step := float64(len(rings)-1) / float64(limit-1)
	for i := 0; i < limit; i++ {
		out = append(out, rings[int(math.Round(float64(i)*step))])
	}
	return out
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// padRight pads by rune count; %-*s counts bytes and misaligns "m³" or "²".
func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
