package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/handegar/spcgen/envelope"
)

func Test_PrintTable(t *testing.T) {
	table, err := envelope.DecayGrid().Generate()
	if err != nil {
		t.Fatalf("Generate() failed: %s", err)
	}

	var buf bytes.Buffer
	PrintTable(&buf, table)
	lines := strings.Split(buf.String(), "\n")

	if lines[0] != "int DECAY_RATE[8][8] = {" {
		t.Errorf("Bad header: %q", lines[0])
	}
	expected := "\t{   72,  108,  152,  215,  317,  518, 1097,    0 },"
	if lines[1] != expected {
		t.Errorf("Bad first row.\nexpected=%q\n     got=%q", expected, lines[1])
	}
	if lines[9] != "};" {
		t.Errorf("Bad footer: %q", lines[9])
	}
	if len(lines) != 11 { // header + 8 rows + footer + trailing newline
		t.Errorf("Expected 11 lines. Got %d", len(lines))
	}
}

func Test_PrintDiagnostics(t *testing.T) {
	table, err := envelope.DecayGrid().Generate()
	if err != nil {
		t.Fatalf("Generate() failed: %s", err)
	}

	var buf bytes.Buffer
	PrintDiagnostics(&buf, table, "DR")
	lines := strings.Split(buf.String(), "\n")

	expected := "DR:1.200  SL:0.125  Steps to go from 2048 to 256: 532   " +
		"seconds/step:0.002  sample rate:72"
	if lines[0] != expected {
		t.Errorf("Bad diagnostics line.\nexpected=%q\n     got=%q",
			expected, lines[0])
	}
	if len(lines) != 65 { // 64 cells + trailing newline
		t.Errorf("Expected 65 lines. Got %d", len(lines))
	}
}

func Test_PrintFlatTable(t *testing.T) {
	var buf bytes.Buffer
	PrintFlatTable(&buf, "GAIN_LINEAR", envelope.GainLinearRates())
	lines := strings.Split(buf.String(), "\n")

	if lines[0] != "int GAIN_LINEAR[32] = {" {
		t.Errorf("Bad header: %q", lines[0])
	}
	expected := "\t   0, 2050, 1550, 1300, 1000,  750,  650,  500,"
	if lines[1] != expected {
		t.Errorf("Bad first row.\nexpected=%q\n     got=%q", expected, lines[1])
	}
	if lines[5] != "};" {
		t.Errorf("Bad footer: %q", lines[5])
	}
}

func Test_PrintAnnotatedRates(t *testing.T) {
	var buf bytes.Buffer
	PrintAnnotatedRates(&buf, envelope.AttackRates())
	lines := strings.Split(buf.String(), "\n")

	if lines[0] != "2050, // 4.100" {
		t.Errorf("Bad first line: %q", lines[0])
	}
	if lines[15] != "0, // 0.000" {
		t.Errorf("Bad last line: %q", lines[15])
	}
}

func Test_RenderCell(t *testing.T) {
	table, err := envelope.SustainGrid().Generate()
	if err != nil {
		t.Fatalf("Generate() failed: %s", err)
	}

	// 0.018s from 2048 down to the floor
	cell := table.Cell(31, 7)
	if cell.Rate != 0 {
		t.Fatalf("Expected rate 0 for the fastest release. Got %d", cell.Rate)
	}

	// 1.2s from 2048 down to the floor
	cell = table.Cell(16, 7)
	samples := renderCell(cell, envelope.DecayRatio, 440.0)

	expected := cell.Steps*cell.Rate + envelope.SamplesPerSecond/2
	if len(samples) != expected {
		t.Errorf("Expected %d samples. Got %d", expected, len(samples))
	}

	// The tail must sit at the floor level
	floorGain := float64(envelope.SustainFloor) / float64(envelope.FullScale)
	for i := len(samples) - 100; i < len(samples); i++ {
		v := samples[i][0]
		if v > floorGain || v < -floorGain {
			t.Fatalf("Sample #%d is louder than the floor: %f", i, v)
		}
	}
}
