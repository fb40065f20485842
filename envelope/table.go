package envelope

import (
	"fmt"
)

// Cell is one table entry plus the intermediate values the
// diagnostics printout reports.
type Cell struct {
	RateSeconds    float64
	LevelFraction  float64
	Start          int
	End            int
	Steps          int
	SecondsPerStep float64
	Rate           int
}

// Table is a generated rate table, row-major by rate then level.
type Table struct {
	Name  string
	Rows  int
	Cols  int
	Cells []Cell
}

func (t *Table) Cell(row int, col int) Cell {
	return t.Cells[row*t.Cols+col]
}

func (t *Table) Value(row int, col int) int {
	return t.Cell(row, col).Rate
}

// Values returns the flattened integer table in emission order.
func (t *Table) Values() []int {
	var vals []int
	for _, c := range t.Cells {
		vals = append(vals, c.Rate)
	}
	return vals
}

// GridSizeError reports a parameter grid whose axes do not match the
// dimensions of the hardware table it is meant to fill.
type GridSizeError struct {
	Name   string
	Rates  int
	Levels int
	Rows   int
	Cols   int
}

func (e *GridSizeError) Error() string {
	return fmt.Sprintf("%s: expected a %dx%d parameter grid, got %d rates and %d levels",
		e.Name, e.Rows, e.Cols, e.Rates, e.Levels)
}

// Grid is the parameter space for one envelope phase: an outer axis
// of phase durations and an inner axis of sustain-level fractions.
type Grid struct {
	Name           string
	RateSeconds    []float64 // seconds per phase, one entry per hardware rate setting
	LevelFractions []float64 // sustain levels as fractions of full scale
	Ratio          float64
	Floor          int

	// Dimensions of the hardware table this grid must fill
	Rows int
	Cols int
}

// bounds gives the simulation interval for one cell. A zero floor
// means the phase travels from full scale down to the level itself.
// A positive floor means the phase starts at the level and decays
// asymptotically towards the floor.
func (g *Grid) bounds(frac float64) (int, int) {
	if g.Floor > 0 {
		return int(FullScale * frac), g.Floor
	}
	return FullScale, int(FullScale * frac)
}

// Generate runs the step simulation for every (rate, level) pair and
// fills the table in row-major order, so a consumer can index the
// flattened output as table[rate][level].
func (g *Grid) Generate() (*Table, error) {
	if len(g.RateSeconds) != g.Rows || len(g.LevelFractions) != g.Cols {
		return nil, &GridSizeError{
			Name:   g.Name,
			Rates:  len(g.RateSeconds),
			Levels: len(g.LevelFractions),
			Rows:   g.Rows,
			Cols:   g.Cols,
		}
	}

	table := &Table{Name: g.Name, Rows: g.Rows, Cols: g.Cols}
	for _, seconds := range g.RateSeconds {
		for _, frac := range g.LevelFractions {
			start, end := g.bounds(frac)
			steps := Steps(start, end, g.Ratio)

			secondsPerStep := 0.0
			if steps > 0 {
				secondsPerStep = seconds / float64(steps)
			}

			table.Cells = append(table.Cells, Cell{
				RateSeconds:    seconds,
				LevelFraction:  frac,
				Start:          start,
				End:            end,
				Steps:          steps,
				SecondsPerStep: secondsPerStep,
				Rate:           Rate(seconds, steps, SamplesPerSecond),
			})
		}
	}

	return table, nil
}

// DecayGrid is the parameter space for the DECAY_RATE table: how long
// a full-scale envelope takes to fall to each of the eight sustain
// levels, for each of the eight decay-rate settings.
func DecayGrid() *Grid {
	return &Grid{
		Name: "DECAY_RATE",
		RateSeconds: []float64{
			1.2,   // 0
			0.740, // 1
			0.440, // 2
			0.290, // 3
			0.180, // 4
			0.110, // 5
			0.074, // 6
			0.037, // 7
		},
		LevelFractions: LevelFractions(),
		Ratio:          DecayRatio,
		Floor:          0,
		Rows:           8,
		Cols:           8,
	}
}

// SustainGrid is the parameter space for the SUSTAIN_RATE table: how
// long the release takes to fall from each sustain level towards
// silence, for each of the 32 release-rate settings.
func SustainGrid() *Grid {
	return &Grid{
		Name: "SUSTAIN_RATE",
		RateSeconds: []float64{
			0,     // 0
			38.0,  // 1
			28.0,  // 2
			24.0,  // 3
			19.0,  // 4
			14.0,  // 5
			12.0,  // 6
			9.4,   // 7
			7.1,   // 8
			5.9,   // 9
			4.7,   // 10
			3.5,   // 11
			2.9,   // 12
			2.4,   // 13
			1.8,   // 14
			1.5,   // 15
			1.2,   // 16
			0.880, // 17
			0.740, // 18
			0.590, // 19
			0.440, // 20
			0.370, // 21
			0.290, // 22
			0.220, // 23
			0.180, // 24
			0.150, // 25
			0.110, // 26
			0.092, // 27
			0.074, // 28
			0.055, // 29
			0.037, // 30
			0.018, // 31
		},
		LevelFractions: LevelFractions(),
		Ratio:          DecayRatio,
		Floor:          SustainFloor,
		Rows:           32,
		Cols:           8,
	}
}

// LevelFractions returns the eight sustain levels the DSP can hold,
// (k+1)/8 of full scale.
func LevelFractions() []float64 {
	var fracs []float64
	for k := 0; k < 8; k++ {
		fracs = append(fracs, float64(k+1)/8.0)
	}
	return fracs
}
