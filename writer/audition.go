package writer

import (
	"fmt"
	"math"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/handegar/spcgen/envelope"
	"github.com/handegar/spcgen/utils"
)

type WriteStreamer struct {
	Data           [][2]float64
	SamplesWritten int
}

func (ws *WriteStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := 0; i < len(samples); i++ {
		if ws.SamplesWritten+i >= len(ws.Data) {
			return i, false
		}

		utils.Assert(len(ws.Data[ws.SamplesWritten+i]) == 2, "Index out of bounds")

		samples[i][0] = ws.Data[ws.SamplesWritten+i][0]
		samples[i][1] = ws.Data[ws.SamplesWritten+i][1]
	}

	ws.SamplesWritten += len(samples)
	return len(samples), ws.SamplesWritten < len(ws.Data)
}

func (ws *WriteStreamer) Err() error {
	return nil
}

// AuditionWAV renders a sine tone shaped by one table cell and writes
// it to a WAV file, so a cell can be checked by ear. The envelope is
// stepped exactly the way the hardware consumes the cell: multiplied
// by the decay ratio once every 'rate' samples.
func AuditionWAV(filename string, cell envelope.Cell, ratio float64) error {
	if cell.Rate == 0 {
		return fmt.Errorf("cell %0.3fs/%0.3f needs no envelope stepping, "+
			"nothing to audition", cell.RateSeconds, cell.LevelFraction)
	}

	samples := renderCell(cell, ratio, 440.0)
	format := beep.Format{
		SampleRate:  beep.SampleRate(envelope.SamplesPerSecond),
		NumChannels: 2,
		Precision:   2,
	}

	return saveAsWAV(filename, format, samples)
}

func renderCell(cell envelope.Cell, ratio float64, toneHz float64) [][2]float64 {
	// Half a second of tail so the stop is audible
	total := cell.Steps*cell.Rate + envelope.SamplesPerSecond/2

	var samples [][2]float64
	env := float64(cell.Start)
	for i := 0; i < total; i++ {
		if i > 0 && i%cell.Rate == 0 && env > float64(cell.End) {
			env = env * ratio
		}

		gain := env / float64(envelope.FullScale)
		v := math.Sin(2.0*math.Pi*toneHz*float64(i)/
			float64(envelope.SamplesPerSecond)) * gain
		samples = append(samples, [2]float64{v, v})
	}

	return samples
}

func saveAsWAV(filename string, wavFormat beep.Format, samples [][2]float64) error {
	fmt.Printf("* Writing to '%s' (%d samples, %d channels)\n",
		filename, len(samples), len(samples[0]))
	outWAVFile, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating output file: %s\n", err)
		return err
	}

	var outStream *WriteStreamer = new(WriteStreamer)
	outStream.Data = samples

	err = wav.Encode(outWAVFile, outStream, wavFormat)
	if err != nil {
		fmt.Printf("Error writing samples: %s\n", err)
		return err
	}

	return nil
}
