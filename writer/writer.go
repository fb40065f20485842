package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/handegar/spcgen/envelope"
)

// PrintTable emits a rate table as a C array literal with one line
// per table row and 4-character cells, ready to paste into the
// player source.
func PrintTable(w io.Writer, table *envelope.Table) {
	fmt.Fprintf(w, "int %s[%d][%d] = {\n", table.Name, table.Rows, table.Cols)
	for row := 0; row < table.Rows; row++ {
		var cells []string
		for col := 0; col < table.Cols; col++ {
			cells = append(cells, fmt.Sprintf("%4d", table.Value(row, col)))
		}
		fmt.Fprintf(w, "\t{ %s },\n", strings.Join(cells, ", "))
	}
	fmt.Fprintf(w, "};\n")
}

// PrintDiagnostics writes the per-cell simulation report. 'label' is
// the rate column name (DR for decay, SR for sustain).
func PrintDiagnostics(w io.Writer, table *envelope.Table, label string) {
	for _, c := range table.Cells {
		fmt.Fprintf(w, "%s:%0.3f  SL:%0.3f  Steps to go from %d to %d: %d   "+
			"seconds/step:%0.3f  sample rate:%d\n",
			label, c.RateSeconds, c.LevelFraction,
			c.Start, c.End, c.Steps, c.SecondsPerStep, c.Rate)
	}
}

// PrintFlatTable emits a 1-D rate table as rows of eight
// 4-character cells.
func PrintFlatTable(w io.Writer, name string, rates []envelope.TimedRate) {
	fmt.Fprintf(w, "int %s[%d] = {\n", name, len(rates))
	for row := 0; row*8 < len(rates); row++ {
		last := row*8 + 8
		if last > len(rates) {
			last = len(rates)
		}

		var cells []string
		for _, r := range rates[row*8 : last] {
			cells = append(cells, fmt.Sprintf("%4d", r.Rate))
		}
		fmt.Fprintf(w, "\t%s,\n", strings.Join(cells, ", "))
	}
	fmt.Fprintf(w, "};\n")
}

// PrintAnnotatedRates writes one rate per line with the phase
// duration it was derived from as a trailing comment.
func PrintAnnotatedRates(w io.Writer, rates []envelope.TimedRate) {
	for _, r := range rates {
		fmt.Fprintf(w, "%d, // %0.3f\n", r.Rate, r.Seconds)
	}
}
