package plot

import (
	"fmt"

	termui "github.com/gizak/termui/v3"
	widgets "github.com/gizak/termui/v3/widgets"

	"github.com/handegar/spcgen/envelope"
)

// ShowCurve plots the simulated decay for one table cell in the
// terminal until 'q' or Escape is pressed.
func ShowCurve(cell envelope.Cell, ratio float64) error {
	if cell.Steps == 0 {
		return fmt.Errorf("cell %0.3fs/%0.3f has no decay to plot",
			cell.RateSeconds, cell.LevelFraction)
	}

	if err := termui.Init(); err != nil {
		return err
	}
	defer termui.Close()

	data := curve(cell, ratio)

	render := func() {
		width, height := termui.TerminalDimensions()

		curveView := widgets.NewPlot()
		curveView.Title = fmt.Sprintf(" %s: %0.3fs, %d -> %d (%d steps, rate %d) ",
			"Envelope", cell.RateSeconds, cell.Start, cell.End,
			cell.Steps, cell.Rate)
		curveView.Data = [][]float64{data}
		curveView.SetRect(0, 0, width, height-1)
		curveView.AxesColor = termui.ColorWhite
		curveView.LineColors = []termui.Color{termui.ColorGreen}

		helpLine := widgets.NewParagraph()
		helpLine.Border = false
		helpLine.Text = "[ q/ESC: quit ]"
		helpLine.SetRect(0, height-1, width, height)

		termui.Render(curveView, helpLine)
	}
	render()

	for e := range termui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Resize>":
			render()
		}
	}

	return nil
}

// curve runs the decay simulation once and keeps every envelope
// value, scaled to full-scale fractions for the plot axis.
func curve(cell envelope.Cell, ratio float64) []float64 {
	var points []float64

	env := float64(cell.Start)
	points = append(points, env/float64(envelope.FullScale))
	for env > float64(cell.End) {
		env = env * ratio
		points = append(points, env/float64(envelope.FullScale))
	}

	return points
}
