package dome

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/woodgeo/internal/timber"
	"github.com/alexiusacademia/woodgeo/internal/units"
)

// Parameters describes a dome (or cup) built from horizontal board rings.
// Overall dimensions and board length are in meters; the board
// cross-section and every gap are in millimeters.
type Parameters struct {
	// Envelope
	DomeHeight   units.Meters `json:"domeHeight"`
	DomeDiameter units.Meters `json:"domeDiameter"`

	// Board stock
	BoardLength    units.Meters      `json:"boardLength"`
	BoardThickness units.Millimeters `json:"boardThickness"`
	BoardWidth     units.Millimeters `json:"boardWidth"`

	// Spacing
	VerticalGap        units.Millimeters `json:"verticalGap"`        // between rings
	SameRowVerticalGap units.Millimeters `json:"sameRowVerticalGap"` // stagger of neighbours in one ring
	EndOverlap         units.Millimeters `json:"endOverlap"`         // overlap at board ends

	// Minimum board count per ring, keeps the apex rings dense
	MinTopBoards int `json:"minTopBoards"`

	// Shape options
	InvertShape    bool `json:"invertShape"` // true builds a dome, false a cup
	EnableHalfOpen bool `json:"enableHalfOpen"`
	ShowDoor       bool `json:"showDoor"`

	// Costing
	PricePerStock float64 `json:"pricePerStock"`
}

// DefaultParameters returns a 6 m high, 7 m wide dome of 2 m 38x152 boards.
func DefaultParameters() Parameters {
	return Parameters{
		DomeHeight:     6.0,
		DomeDiameter:   7,
		BoardLength:    2,
		BoardThickness: 38,
		BoardWidth:     152,
		VerticalGap:    29,
		MinTopBoards:   12,
		InvertShape:    true,
		PricePerStock:  timber.DefaultPricePerStock,
	}
}

// Pitch returns the ring pitch: board width plus the gap between rings.
func (p Parameters) Pitch() units.Millimeters {
	return p.BoardWidth + p.VerticalGap
}

// EffectiveBoardLength returns the length each board contributes to a
// ring once the end overlap is taken off.
func (p Parameters) EffectiveBoardLength() units.Meters {
	return p.BoardLength - p.EndOverlap.Meters()
}

// Validate checks the parameter record before a layout is computed.
// ComputeLayout itself tolerates invalid records and returns an empty
// layout; Validate exists so callers can tell the user why.
func (p Parameters) Validate() error {
	if p.DomeHeight <= 0 {
		return &ValidationError{"dome height must be positive"}
	}
	if p.DomeDiameter <= 0 {
		return &ValidationError{"dome diameter must be positive"}
	}
	if p.BoardLength <= 0 {
		return &ValidationError{"board length must be positive"}
	}
	if p.BoardWidth <= 0 || p.BoardThickness <= 0 {
		return &ValidationError{"board cross-section must be positive"}
	}
	if p.Pitch() <= 0 {
		return &ValidationError{"board width plus vertical gap must be positive"}
	}
	if p.EffectiveBoardLength() <= 0 {
		return &ValidationError{msg: fmt.Sprintf("end overlap %.0f mm consumes the whole %.2f m board", float64(p.EndOverlap), float64(p.BoardLength))}
	}
	if p.MinTopBoards < 1 {
		return &ValidationError{"minimum top boards must be at least 1"}
	}
	return nil
}

// LoadParameters reads a JSON parameter record. Fields missing from the
// file keep their default values.
func LoadParameters(filepath string) (Parameters, error) {
	p := DefaultParameters()

	data, err := os.ReadFile(filepath)
	if err != nil {
		return p, fmt.Errorf("failed to read file: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return p, nil
}

// ValidationError represents a dome parameter validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
