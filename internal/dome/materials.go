package dome

import (
	"github.com/alexiusacademia/woodgeo/internal/timber"
	"github.com/alexiusacademia/woodgeo/internal/units"
)

// Materials is the stock and cost estimate for a board count.
type Materials struct {
	BoardsPerStock    int          `json:"boardsPerStock"`
	StocksNeeded      int          `json:"stocksNeeded"`
	TotalCost         float64      `json:"totalCost"`
	TotalVolume       float64      `json:"totalVolume"` // m³
	TotalWeight       float64      `json:"totalWeight"` // kg
	TotalLinearMeters units.Meters `json:"totalLinearMeters"`
	OffcutPerStock    units.Meters `json:"offcutPerStock"`
	TotalOffcut       units.Meters `json:"totalOffcut"`

	// Feasible is false when a board is longer than the stock.
	Feasible bool `json:"feasible"`
}

// EstimateMaterials sizes the stock order for totalBoards boards.
func EstimateMaterials(p Parameters, totalBoards int) Materials {
	m := Materials{
		BoardsPerStock:    timber.BoardsPerStock(p.BoardLength),
		TotalVolume:       timber.BoardVolume(p.BoardLength, p.BoardWidth, p.BoardThickness) * float64(totalBoards),
		TotalLinearMeters: units.Meters(totalBoards) * p.BoardLength,
		OffcutPerStock:    timber.OffcutPerStock(p.BoardLength),
	}
	m.TotalWeight = m.TotalVolume * timber.WoodDensity

	if m.BoardsPerStock == 0 {
		return m
	}
	m.Feasible = true

	m.StocksNeeded = (totalBoards + m.BoardsPerStock - 1) / m.BoardsPerStock
	m.TotalCost = float64(m.StocksNeeded) * p.PricePerStock
	m.TotalOffcut = units.Meters(m.StocksNeeded) * m.OffcutPerStock

	return m
}
