package lattice

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/alexiusacademia/woodgeo/internal/units"
)

// ThetaMode selects how the per-row rotation is chosen.
type ThetaMode string

const (
	// ThetaAuto divides one polygon period 2π/n into K steps.
	ThetaAuto ThetaMode = "auto"
	// ThetaCustom uses Parameters.ThetaDeg.
	ThetaCustom ThetaMode = "custom"
)

// ErrTooFewSides is returned when a polygon has fewer than three sides.
var ErrTooFewSides = errors.New("polygon needs at least 3 sides")

// Parameters describes a stack of rotated regular polygons built from
// beams. All lengths are in millimeters.
type Parameters struct {
	Sides      int               `json:"n"`
	SideLength units.Millimeters `json:"s"`
	K          int               `json:"K"` // rotation period divisor, auto mode only
	Rows       int               `json:"rows"`

	ThetaMode ThetaMode `json:"thetaMode"`
	ThetaDeg  float64   `json:"thetaDeg"` // custom mode only

	LayerHeight   units.Millimeters `json:"layerHeight"`
	BeamThickness units.Millimeters `json:"beamThickness"`
	BeamDepth     units.Millimeters `json:"beamDepth"`

	// Output toggles
	ShowIntersections bool `json:"showIntersections"`
	ShowPerpMarkers   bool `json:"showPerpMarkers"`
	ShowInnerPolygon  bool `json:"showInnerPolygon"`
}

// DefaultParameters returns a hexagonal lattice of 3 m beams, eight rows
// high, turning a quarter of the hexagon period per row.
func DefaultParameters() Parameters {
	return Parameters{
		Sides:             6,
		SideLength:        3000,
		K:                 4,
		Rows:              8,
		ThetaMode:         ThetaAuto,
		ThetaDeg:          10,
		LayerHeight:       150,
		BeamThickness:     45,
		BeamDepth:         140,
		ShowIntersections: true,
		ShowInnerPolygon:  true,
	}
}

// Theta returns the rotation between consecutive rows in radians.
func (p Parameters) Theta() float64 {
	if p.ThetaMode == ThetaCustom {
		return p.ThetaDeg * math.Pi / 180
	}
	if p.Sides <= 0 {
		return 0
	}
	k := max(p.K, 1)
	return 2 * math.Pi / float64(p.Sides*k)
}

// Validate checks the parameter record before a lattice is generated.
func (p Parameters) Validate() error {
	if p.Sides < 3 {
		return ErrTooFewSides
	}
	if p.SideLength <= 0 {
		return &ValidationError{"side length must be positive"}
	}
	if p.Rows < 1 {
		return &ValidationError{"at least one row is required"}
	}
	switch p.ThetaMode {
	case ThetaAuto, "":
		if p.K < 1 {
			return &ValidationError{"K must be at least 1"}
		}
	case ThetaCustom:
	default:
		return &ValidationError{msg: fmt.Sprintf("unknown theta mode %q (want %q or %q)", p.ThetaMode, ThetaAuto, ThetaCustom)}
	}
	if p.LayerHeight < 0 || p.BeamThickness <= 0 || p.BeamDepth <= 0 {
		return &ValidationError{"beam and layer dimensions must be positive"}
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

// ValidationError represents a lattice parameter validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
