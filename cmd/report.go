package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const rule = "───────────────────────────────────────────────────────────────"

func printTitle(out io.Writer, title string) {
	bar := strings.Repeat("═", 63)
	fmt.Fprintln(out)
	fmt.Fprintln(out, bar)
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, bar)
	fmt.Fprintln(out)
}

func printSection(out io.Writer, name string) {
	fmt.Fprintf(out, "%s:\n", name)
	fmt.Fprintln(out, rule)
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func check(ok bool) string {
	if ok {
		return "✓"
	}
	return "⚠"
}
