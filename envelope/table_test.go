package envelope

import (
	"errors"
	"testing"
)

func Test_DecayTable(t *testing.T) {
	table, err := DecayGrid().Generate()
	if err != nil {
		t.Fatalf("DecayGrid().Generate() failed: %s", err)
	}

	t.Run("Dimensions", func(t *testing.T) {
		if table.Rows != 8 || table.Cols != 8 {
			t.Errorf("Expected an 8x8 table. Got %dx%d", table.Rows, table.Cols)
		}
		if len(table.Cells) != 64 {
			t.Errorf("Expected 64 cells. Got %d", len(table.Cells))
		}
	})

	t.Run("FirstCell", func(t *testing.T) {
		// 1.2s from full scale down to 1/8 (2048 -> 256)
		cell := table.Cell(0, 0)
		if cell.Start != 2048 || cell.End != 256 {
			t.Errorf("Expected bounds 2048 -> 256. Got %d -> %d",
				cell.Start, cell.End)
		}
		if cell.Steps != 532 {
			t.Errorf("Expected 532 steps. Got %d", cell.Steps)
		}
		if cell.Rate != 72 {
			t.Errorf("DECAY_RATE[0][0] != 72. Got %d", cell.Rate)
		}
	})

	t.Run("FirstRow", func(t *testing.T) {
		expected := []int{72, 108, 152, 215, 317, 518, 1097, 0}
		for col, e := range expected {
			if v := table.Value(0, col); v != e {
				t.Errorf("DECAY_RATE[0][%d] != %d. Got %d", col, e, v)
			}
		}
	})

	t.Run("FullLevelNeedsNoSteps", func(t *testing.T) {
		// Sustain level 8/8 means the decay phase has nowhere to go
		for row := 0; row < table.Rows; row++ {
			cell := table.Cell(row, 7)
			if cell.Steps != 0 || cell.Rate != 0 {
				t.Errorf("DECAY_RATE[%d][7]: expected 0 steps/rate. "+
					"Got %d steps, rate %d", row, cell.Steps, cell.Rate)
			}
		}
	})
}

func Test_SustainTable(t *testing.T) {
	table, err := SustainGrid().Generate()
	if err != nil {
		t.Fatalf("SustainGrid().Generate() failed: %s", err)
	}

	t.Run("Dimensions", func(t *testing.T) {
		if table.Rows != 32 || table.Cols != 8 {
			t.Errorf("Expected a 32x8 table. Got %dx%d", table.Rows, table.Cols)
		}
		if len(table.Cells) != 256 {
			t.Errorf("Expected 256 cells. Got %d", len(table.Cells))
		}
	})

	t.Run("NonNegative", func(t *testing.T) {
		for i, v := range table.Values() {
			if v < 0 {
				t.Errorf("Cell #%d is negative: %d", i, v)
			}
		}
	})

	t.Run("Bounds", func(t *testing.T) {
		// Release runs from the sustain level down to the floor
		cell := table.Cell(1, 0)
		if cell.Start != 256 || cell.End != SustainFloor {
			t.Errorf("Expected bounds 256 -> %d. Got %d -> %d",
				SustainFloor, cell.Start, cell.End)
		}
	})

	t.Run("SecondRow", func(t *testing.T) {
		// 38s release, the slowest non-infinite setting
		expected := []int{1208, 1027, 944, 894, 858, 830, 809, 791}
		for col, e := range expected {
			if v := table.Value(1, col); v != e {
				t.Errorf("SUSTAIN_RATE[1][%d] != %d. Got %d", col, e, v)
			}
		}
	})

	t.Run("MonotonicInSeconds", func(t *testing.T) {
		// More seconds per phase means more samples per step
		for col := 0; col < table.Cols; col++ {
			for a := 0; a < table.Rows; a++ {
				for b := 0; b < table.Rows; b++ {
					ca, cb := table.Cell(a, col), table.Cell(b, col)
					if ca.RateSeconds > cb.RateSeconds && ca.Rate < cb.Rate {
						t.Errorf("Level %d: %0.3fs gives rate %d but "+
							"%0.3fs gives rate %d", col,
							ca.RateSeconds, ca.Rate,
							cb.RateSeconds, cb.Rate)
					}
				}
			}
		}
	})
}

func Test_GridValidation(t *testing.T) {
	t.Run("ShortRateAxis", func(t *testing.T) {
		grid := SustainGrid()
		grid.RateSeconds = grid.RateSeconds[:31]
		_, err := grid.Generate()
		if err == nil {
			t.Fatalf("Expected an error for 31 rate entries")
		}
		var sizeErr *GridSizeError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("Expected a GridSizeError. Got %T: %s", err, err)
		}
		if sizeErr.Rates != 31 || sizeErr.Rows != 32 {
			t.Errorf("Bad error contents: %+v", sizeErr)
		}
	})

	t.Run("ShortLevelAxis", func(t *testing.T) {
		grid := DecayGrid()
		grid.LevelFractions = grid.LevelFractions[:7]
		if _, err := grid.Generate(); err == nil {
			t.Fatalf("Expected an error for 7 level entries")
		}
	})
}
