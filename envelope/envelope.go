package envelope

// Envelope unit constants for the SPC700 DSP
const (
	SamplesPerSecond = 32000

	// Max value of the 11-bit envelope register
	FullScale = 2048

	// The release phase is asymptotic and would never satisfy a
	// strict ">0" test, so it stops at a small positive floor
	// instead of at silence.
	SustainFloor = 5
)

// DecayRatio is the multiplicative shrink the hardware applies to the
// envelope once per step during exponential decay.
const DecayRatio = 1.0 - (1.0 / 256.0)

// Steps counts how many multiplications by 'ratio' are needed to
// bring 'start' down to 'target'. A start already at or below the
// target needs no steps at all.
func Steps(start int, target int, ratio float64) int {
	steps := 0
	env := float64(start)
	for env > float64(target) {
		env = env * ratio
		steps += 1
	}
	return steps
}

// Rate converts the duration of a whole phase into the integer sample
// divisor the DSP consumes: how many samples to wait between each
// envelope adjustment. Fractional sample counts are truncated.
func Rate(totalSeconds float64, steps int, samplesPerSecond int) int {
	if steps == 0 {
		// No steps needed, so no time per step either
		return 0
	}

	secondsPerStep := totalSeconds / float64(steps)
	return int(secondsPerStep * float64(samplesPerSecond))
}
