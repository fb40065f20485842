package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/handegar/spcgen/base"
	"github.com/handegar/spcgen/disasm"
	"github.com/handegar/spcgen/envelope"
	"github.com/handegar/spcgen/plot"
	"github.com/handegar/spcgen/reader"
	"github.com/handegar/spcgen/settings"
	"github.com/handegar/spcgen/writer"
)

func parseCommandLineParameters() {
	flag.StringVar(&settings.Table, "table", settings.Table,
		"Table(s) to generate (decay|sustain|attack|gain|all)")
	flag.BoolVar(&settings.Verbose, "v", settings.Verbose,
		"Print per-cell diagnostics for every table")
	flag.StringVar(&settings.SPCFilename, "spc", settings.SPCFilename,
		"SPC file to disassemble")
	flag.IntVar(&settings.StartOffset, "offset", settings.StartOffset,
		"RAM offset where disassembly starts")
	flag.BoolVar(&settings.Reformat, "reformat", settings.Reformat,
		"Reformat an opcode listing from stdin")
	flag.BoolVar(&settings.PrintOpcodeTable, "print-opcode-table", settings.PrintOpcodeTable,
		"Print the dense 256-entry opcode table")
	flag.BoolVar(&settings.PlotCurve, "plot", settings.PlotCurve,
		"Plot the decay curve for one table cell")
	flag.BoolVar(&settings.Trace, "trace", settings.Trace,
		"Step through one cell's simulation interactively")
	flag.StringVar(&settings.AuditionWav, "audition", settings.AuditionWav,
		"Render one table cell to a WAV file")
	flag.IntVar(&settings.RateIndex, "rate", settings.RateIndex,
		"Rate index of the cell for -plot/-trace/-audition")
	flag.IntVar(&settings.LevelIndex, "level", settings.LevelIndex,
		"Level index of the cell for -plot/-trace/-audition")
	flag.Parse()
}

func main() {
	fmt.Printf("* SPC envelope table generator v%s\n", settings.Version)
	parseCommandLineParameters()

	if settings.SPCFilename != "" {
		ram, err := reader.ReadSPC(settings.SPCFilename)
		if err != nil {
			fmt.Printf("Reading SPC file failed: %s\n", err)
			syscall.Exit(-1)
		}
		disasm.PrintListing(os.Stdout, ram, settings.StartOffset)
		return
	}

	if settings.Reformat {
		if err := disasm.Reformat(os.Stdin, os.Stdout); err != nil {
			fmt.Printf("Reformatting failed: %s\n", err)
			syscall.Exit(-1)
		}
		return
	}

	if settings.PrintOpcodeTable {
		base.PrintDenseTable(os.Stdout)
		return
	}

	if settings.PlotCurve || settings.Trace || settings.AuditionWav != "" {
		inspectCell()
		return
	}

	switch settings.Table {
	case "decay":
		printDecayTable()
	case "sustain":
		printSustainTable()
	case "attack":
		printAttackTable()
	case "gain":
		printGainTables()
	case "all":
		printDecayTable()
		printSustainTable()
		printAttackTable()
		printGainTables()
	default:
		fmt.Printf("Unknown table '%s'. "+
			"Expected decay, sustain, attack, gain or all.\n", settings.Table)
		syscall.Exit(-1)
	}
}

func generate(grid *envelope.Grid) *envelope.Table {
	table, err := grid.Generate()
	if err != nil {
		fmt.Printf("Generating %s failed: %s\n", grid.Name, err)
		syscall.Exit(-1)
	}
	return table
}

func printDecayTable() {
	table := generate(envelope.DecayGrid())
	if settings.Verbose {
		writer.PrintDiagnostics(os.Stdout, table, "DR")
	}
	writer.PrintTable(os.Stdout, table)
}

func printSustainTable() {
	table := generate(envelope.SustainGrid())
	writer.PrintDiagnostics(os.Stdout, table, "SR")
	fmt.Println(len(table.Cells))
	writer.PrintTable(os.Stdout, table)
}

func printAttackTable() {
	writer.PrintAnnotatedRates(os.Stdout, envelope.AttackRates())
}

func printGainTables() {
	writer.PrintFlatTable(os.Stdout, "GAIN_LINEAR", envelope.GainLinearRates())
	writer.PrintFlatTable(os.Stdout, "GAIN_BENT", envelope.GainBentRates())
}

// inspectCell runs one of the single-cell inspection modes on the
// cell selected by -rate/-level.
func inspectCell() {
	grid := envelope.SustainGrid()
	if settings.Table == "decay" {
		grid = envelope.DecayGrid()
	}
	table := generate(grid)

	if settings.RateIndex < 0 || settings.RateIndex >= table.Rows ||
		settings.LevelIndex < 0 || settings.LevelIndex >= table.Cols {
		fmt.Printf("Cell [%d][%d] is outside the %dx%d %s table\n",
			settings.RateIndex, settings.LevelIndex,
			table.Rows, table.Cols, table.Name)
		syscall.Exit(-1)
	}
	cell := table.Cell(settings.RateIndex, settings.LevelIndex)

	var err error
	if settings.Trace {
		err = plot.StepTrace(cell.Start, cell.End, grid.Ratio)
	} else if settings.PlotCurve {
		err = plot.ShowCurve(cell, grid.Ratio)
	} else {
		err = writer.AuditionWAV(settings.AuditionWav, cell, grid.Ratio)
	}

	if err != nil {
		fmt.Printf("%s\n", err)
		syscall.Exit(-1)
	}
}
