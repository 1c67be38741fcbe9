package dome

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestEstimateMaterials(t *testing.T) {
	p := DefaultParameters()
	m := EstimateMaterials(p, 100)

	if !m.Feasible {
		t.Fatal("2 m boards should fit 6 m stock")
	}
	if m.BoardsPerStock != 3 {
		t.Errorf("boards per stock = %d, want 3", m.BoardsPerStock)
	}
	if m.StocksNeeded != 34 {
		t.Errorf("stocks needed = %d, want 34", m.StocksNeeded)
	}
	if !scalar.EqualWithinAbs(m.TotalCost, 34*229, 1e-9) {
		t.Errorf("total cost = %v, want %v", m.TotalCost, 34*229)
	}
	if !scalar.EqualWithinAbs(m.TotalVolume, 1.1552, 1e-9) {
		t.Errorf("total volume = %v, want 1.1552", m.TotalVolume)
	}
	if !scalar.EqualWithinAbs(m.TotalWeight, 577.6, 1e-6) {
		t.Errorf("total weight = %v, want 577.6", m.TotalWeight)
	}
	if m.TotalLinearMeters != 200 {
		t.Errorf("linear meters = %v, want 200", m.TotalLinearMeters)
	}
	if m.OffcutPerStock != 0 || m.TotalOffcut != 0 {
		t.Errorf("offcut = %v / %v, want none", m.OffcutPerStock, m.TotalOffcut)
	}
}

func TestEstimateMaterialsOffcut(t *testing.T) {
	p := DefaultParameters()
	p.BoardLength = 2.5
	m := EstimateMaterials(p, 5)

	if m.BoardsPerStock != 2 || m.StocksNeeded != 3 {
		t.Fatalf("got %d per stock / %d stocks, want 2 / 3", m.BoardsPerStock, m.StocksNeeded)
	}
	if !scalar.EqualWithinAbs(float64(m.TotalOffcut), 3.0, 1e-12) {
		t.Errorf("total offcut = %v, want 3.0", m.TotalOffcut)
	}
}

func TestEstimateMaterialsBoardLongerThanStock(t *testing.T) {
	p := DefaultParameters()
	p.BoardLength = 7
	m := EstimateMaterials(p, 10)

	if m.Feasible {
		t.Error("7 m boards cannot be cut from 6 m stock")
	}
	if m.StocksNeeded != 0 || m.TotalCost != 0 {
		t.Errorf("infeasible estimate reports %d stocks costing %v", m.StocksNeeded, m.TotalCost)
	}
}

func TestEstimateMaterialsForLayout(t *testing.T) {
	p := DefaultParameters()
	layout := ComputeLayout(p)
	m := EstimateMaterials(p, layout.TotalBoards)

	if m.StocksNeeded*m.BoardsPerStock < layout.TotalBoards {
		t.Errorf("%d stocks x %d boards do not cover %d boards", m.StocksNeeded, m.BoardsPerStock, layout.TotalBoards)
	}
	if (m.StocksNeeded-1)*m.BoardsPerStock >= layout.TotalBoards {
		t.Errorf("%d stocks is more than needed for %d boards", m.StocksNeeded, layout.TotalBoards)
	}
}
