package cmd

import (
	"fmt"

	"github.com/alexiusacademia/woodgeo/internal/dome"
	"github.com/alexiusacademia/woodgeo/internal/units"
	"github.com/spf13/cobra"
)

var (
	domeFile string

	// Envelope
	domeHeight   float64
	domeDiameter float64

	// Board stock
	domeBoardLength    float64
	domeBoardThickness float64
	domeBoardWidth     float64

	// Spacing
	domeGap        float64
	domeStagger    float64
	domeEndOverlap float64
	domeMinTop     int

	// Shape
	domeCup      bool
	domeHalfOpen bool
	domeDoor     bool

	domePrice float64
)

var domeCmd = &cobra.Command{
	Use:   "dome",
	Short: "Board ring layout of a spherical-cap dome",
	Long: `Lay out a dome (or cup) built from horizontal rings of boards.

The envelope is a spherical cap of the given height and base diameter.
It is cut into rings one board width plus gap apart; each ring gets as
many boards as fit its circumference.

Subcommands:
  layout  - Ring table and material estimate
  boards  - Individual board placements of one or all rings

Parameters can be loaded from a JSON file with --file; flags given on
the command line override values from the file.`,
}

func init() {
	rootCmd.AddCommand(domeCmd)

	defaults := dome.DefaultParameters()
	f := domeCmd.PersistentFlags()

	f.StringVarP(&domeFile, "file", "f", "", "Load parameters from a JSON file")

	f.Float64Var(&domeHeight, "height", float64(defaults.DomeHeight), "Dome height (m)")
	f.Float64VarP(&domeDiameter, "diameter", "d", float64(defaults.DomeDiameter), "Base diameter (m)")

	f.Float64VarP(&domeBoardLength, "board-length", "l", float64(defaults.BoardLength), "Board length (m)")
	f.Float64Var(&domeBoardThickness, "thickness", float64(defaults.BoardThickness), "Board thickness (mm)")
	f.Float64VarP(&domeBoardWidth, "width", "w", float64(defaults.BoardWidth), "Board width (mm)")

	f.Float64Var(&domeGap, "gap", float64(defaults.VerticalGap), "Vertical gap between rings (mm)")
	f.Float64Var(&domeStagger, "stagger", float64(defaults.SameRowVerticalGap), "Vertical offset between neighbours in one ring (mm)")
	f.Float64Var(&domeEndOverlap, "overlap", float64(defaults.EndOverlap), "Overlap at board ends (mm)")
	f.IntVar(&domeMinTop, "min-top", defaults.MinTopBoards, "Minimum boards per ring")

	f.BoolVar(&domeCup, "cup", !defaults.InvertShape, "Build a cup (apex at the bottom) instead of a dome")
	f.BoolVar(&domeHalfOpen, "half-open", defaults.EnableHalfOpen, "Build half rings only")
	f.BoolVar(&domeDoor, "door", defaults.ShowDoor, "Cut a door opening into the lower rings")

	f.Float64Var(&domePrice, "price", defaults.PricePerStock, "Price per 6 m stock piece")
}

// domeParameters resolves the parameter record: defaults, then the JSON
// file if given, then any flag set on the command line.
func domeParameters(cmd *cobra.Command) (dome.Parameters, error) {
	p := dome.DefaultParameters()
	if domeFile != "" {
		var err error
		if p, err = dome.LoadParameters(domeFile); err != nil {
			return p, fmt.Errorf("loading %s: %w", domeFile, err)
		}
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("height", func() { p.DomeHeight = units.Meters(domeHeight) })
	set("diameter", func() { p.DomeDiameter = units.Meters(domeDiameter) })
	set("board-length", func() { p.BoardLength = units.Meters(domeBoardLength) })
	set("thickness", func() { p.BoardThickness = units.Millimeters(domeBoardThickness) })
	set("width", func() { p.BoardWidth = units.Millimeters(domeBoardWidth) })
	set("gap", func() { p.VerticalGap = units.Millimeters(domeGap) })
	set("stagger", func() { p.SameRowVerticalGap = units.Millimeters(domeStagger) })
	set("overlap", func() { p.EndOverlap = units.Millimeters(domeEndOverlap) })
	set("min-top", func() { p.MinTopBoards = domeMinTop })
	set("cup", func() { p.InvertShape = !domeCup })
	set("half-open", func() { p.EnableHalfOpen = domeHalfOpen })
	set("door", func() { p.ShowDoor = domeDoor })
	set("price", func() { p.PricePerStock = domePrice })

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid parameters: %w", err)
	}
	return p, nil
}

func shapeName(p dome.Parameters) string {
	shape := "Dome"
	if !p.InvertShape {
		shape = "Cup"
	}
	if p.EnableHalfOpen {
		shape += " (half-open)"
	}
	return shape
}
