package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alexiusacademia/woodgeo/internal/dome"
	"github.com/spf13/cobra"
)

var (
	domeExportFormat string
	domeExportFile   string
)

var domeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ring table, full report or bill of materials",
	Long: `Write the dome calculation in a machine- or shop-readable form.

Formats:
  csv   - ring table followed by a summary block
  json  - parameters, geometry, costs and ring table
  bom   - plain-text bill of materials

Output goes to stdout unless --output is given.

Examples:
  woodgeo dome export --format csv -o rings.csv
  woodgeo dome export --format bom --door`,
	Run: runDomeExport,
}

func init() {
	domeCmd.AddCommand(domeExportCmd)

	domeExportCmd.Flags().StringVar(&domeExportFormat, "format", "csv", "Output format: csv, json or bom")
	domeExportCmd.Flags().StringVarP(&domeExportFile, "output", "o", "", "Write to file instead of stdout")
}

func runDomeExport(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	p, err := domeParameters(cmd)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	report := dome.NewReport(p, time.Now())

	var write func(io.Writer) error
	switch domeExportFormat {
	case "csv":
		write = report.WriteCSV
	case "json":
		write = report.WriteJSON
	case "bom":
		write = report.WriteBOM
	default:
		fmt.Fprintf(out, "Error: unknown format %q (want csv, json or bom)\n", domeExportFormat)
		return
	}

	if domeExportFile == "" {
		if err := write(out); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		return
	}

	if dir := filepath.Dir(domeExportFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
	}
	f, err := os.Create(domeExportFile)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	if err := write(f); err != nil {
		f.Close()
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "  Exported %s to: %s\n", domeExportFormat, domeExportFile)
}
