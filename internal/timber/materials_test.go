package timber

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/woodgeo/internal/units"
)

func TestBoardsPerStock(t *testing.T) {
	tests := []struct {
		length units.Meters
		want   int
	}{
		{2.0, 3},
		{1.2, 5},
		{2.5, 2},
		{6.0, 1},
		{6.5, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := BoardsPerStock(tt.length); got != tt.want {
			t.Errorf("BoardsPerStock(%v) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestOffcutPerStock(t *testing.T) {
	if got := OffcutPerStock(2.5); !scalar.EqualWithinAbs(float64(got), 1.0, 1e-12) {
		t.Errorf("OffcutPerStock(2.5) = %v, want 1.0", got)
	}
	if got := OffcutPerStock(7); got != StockLength {
		t.Errorf("OffcutPerStock(7) = %v, want whole stock", got)
	}
}

func TestBoardVolume(t *testing.T) {
	// 2 m x 152 mm x 38 mm
	got := BoardVolume(2, 152, 38)
	if !scalar.EqualWithinAbs(got, 0.011552, 1e-12) {
		t.Errorf("BoardVolume = %v, want 0.011552", got)
	}
}
