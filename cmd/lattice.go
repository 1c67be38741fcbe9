package cmd

import (
	"fmt"

	"github.com/alexiusacademia/woodgeo/internal/lattice"
	"github.com/alexiusacademia/woodgeo/internal/units"
	"github.com/spf13/cobra"
)

var (
	latticeFile string

	// Polygon
	latticeSides      int
	latticeSideLength float64
	latticeRows       int

	// Rotation
	latticeK         int
	latticeThetaMode string
	latticeThetaDeg  float64

	// Beam section
	latticeLayerHeight   float64
	latticeBeamThickness float64
	latticeBeamDepth     float64

	// Output toggles
	latticeIntersections bool
	latticePerp          bool
	latticeInner         bool
)

var latticeCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Stacked rotated-polygon beam lattice",
	Long: `Lay out a lattice of beams stacked in layers. Every layer is a
regular polygon of beams turned by a fixed angle from the layer below.

The turn θ is either 2π/(n·K) (auto) or given in degrees (custom).

Subcommands:
  scalars   - Derived lengths and the beam cut list
  generate  - Beams, intercept markers and inner polygons of every layer

Parameters can be loaded from a JSON file with --file; flags given on
the command line override values from the file.`,
}

func init() {
	rootCmd.AddCommand(latticeCmd)

	defaults := lattice.DefaultParameters()
	f := latticeCmd.PersistentFlags()

	f.StringVarP(&latticeFile, "file", "f", "", "Load parameters from a JSON file")

	f.IntVarP(&latticeSides, "sides", "n", defaults.Sides, "Polygon sides (at least 3)")
	f.Float64VarP(&latticeSideLength, "side-length", "s", float64(defaults.SideLength), "Polygon side, the beam length (mm)")
	f.IntVar(&latticeRows, "rows", defaults.Rows, "Number of layers")

	f.IntVarP(&latticeK, "steps", "k", defaults.K, "Steps per polygon period (auto mode)")
	f.StringVar(&latticeThetaMode, "theta-mode", string(defaults.ThetaMode), "Rotation mode: auto or custom")
	f.Float64Var(&latticeThetaDeg, "theta", defaults.ThetaDeg, "Rotation per layer in degrees (custom mode)")

	f.Float64Var(&latticeLayerHeight, "layer-height", float64(defaults.LayerHeight), "Layer height (mm)")
	f.Float64Var(&latticeBeamThickness, "thickness", float64(defaults.BeamThickness), "Beam thickness (mm)")
	f.Float64Var(&latticeBeamDepth, "depth", float64(defaults.BeamDepth), "Beam depth (mm)")

	f.BoolVar(&latticeIntersections, "intersections", defaults.ShowIntersections, "Emit intercept markers")
	f.BoolVar(&latticePerp, "perp", defaults.ShowPerpMarkers, "Emit perpendicular markers")
	f.BoolVar(&latticeInner, "inner", defaults.ShowInnerPolygon, "Emit the inner polygon of each layer")
}

// latticeParameters resolves the parameter record: defaults, then the
// JSON file if given, then any flag set on the command line.
func latticeParameters(cmd *cobra.Command) (lattice.Parameters, error) {
	p := lattice.DefaultParameters()
	if latticeFile != "" {
		var err error
		if p, err = lattice.LoadParameters(latticeFile); err != nil {
			return p, fmt.Errorf("loading %s: %w", latticeFile, err)
		}
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("sides", func() { p.Sides = latticeSides })
	set("side-length", func() { p.SideLength = units.Millimeters(latticeSideLength) })
	set("rows", func() { p.Rows = latticeRows })
	set("steps", func() { p.K = latticeK })
	set("theta-mode", func() { p.ThetaMode = lattice.ThetaMode(latticeThetaMode) })
	set("theta", func() {
		p.ThetaDeg = latticeThetaDeg
		// An explicit angle implies custom mode unless a mode was also given.
		if !flags.Changed("theta-mode") {
			p.ThetaMode = lattice.ThetaCustom
		}
	})
	set("layer-height", func() { p.LayerHeight = units.Millimeters(latticeLayerHeight) })
	set("thickness", func() { p.BeamThickness = units.Millimeters(latticeBeamThickness) })
	set("depth", func() { p.BeamDepth = units.Millimeters(latticeBeamDepth) })
	set("intersections", func() { p.ShowIntersections = latticeIntersections })
	set("perp", func() { p.ShowPerpMarkers = latticePerp })
	set("inner", func() { p.ShowInnerPolygon = latticeInner })

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid parameters: %w", err)
	}
	return p, nil
}

func printLatticeInput(cmd *cobra.Command, p lattice.Parameters) {
	out := cmd.OutOrStdout()
	printSection(out, "INPUT DATA")
	w := newTable(out)
	fmt.Fprintf(w, "  Sides (n):\t%d\n", p.Sides)
	fmt.Fprintf(w, "  Side Length (s):\t%.0f mm\n", p.SideLength)
	fmt.Fprintf(w, "  Layers:\t%d\n", p.Rows)
	if p.ThetaMode == lattice.ThetaCustom {
		fmt.Fprintf(w, "  Rotation:\tcustom, %.3f°\n", p.ThetaDeg)
	} else {
		fmt.Fprintf(w, "  Rotation:\tauto, K = %d\n", p.K)
	}
	fmt.Fprintf(w, "  Layer Height:\t%.0f mm\n", p.LayerHeight)
	fmt.Fprintf(w, "  Beam Section:\t%.0f × %.0f mm\n", p.BeamThickness, p.BeamDepth)
	w.Flush()
	fmt.Fprintln(out)
}
