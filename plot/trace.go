package plot

import (
	"github.com/eiannone/keyboard"
	"github.com/fatih/color"
)

const tracePrompt = "< (N)ext step | (R)un to end | (Q)uit >"

// StepTrace walks one decay simulation a step at a time on the
// keyboard, printing the envelope value after every multiply.
func StepTrace(start int, end int, ratio float64) error {
	if err := keyboard.Open(); err != nil {
		return err
	}
	defer keyboard.Close()

	color.White("Decaying from %d to %d, ratio %f", start, end, ratio)

	env := float64(start)
	steps := 0
	runToEnd := false
	for env > float64(end) {
		env = env * ratio
		steps += 1

		if runToEnd {
			continue
		}

		color.Cyan("  step %d: env=%f", steps, env)
		color.Yellow(tracePrompt)
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return err
			}

			if char == 'q' || key == keyboard.KeyEsc {
				color.Red("Aborted after %d steps", steps)
				return nil
			} else if char == 'n' {
				break
			} else if char == 'r' {
				color.Red("Running to end")
				runToEnd = true
				break
			}
		}
	}

	color.Green("Reached %d after %d steps", end, steps)
	return nil
}
