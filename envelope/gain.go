package envelope

// The attack and GAIN ramps are linear, so their rates come straight
// from the phase duration and a fixed step count. No simulation.

// TimedRate pairs a derived integer rate with the phase duration it
// was derived from, for the annotated printouts.
type TimedRate struct {
	Seconds float64
	Rate    int
}

// Attack raises the envelope by 32 units per step
const attackStep = 32

// GAIN linear mode raises/lowers by 1/64 of full scale per step
const gainLinearSteps = 64

// GAIN bent-line mode adds 1/64 up to 75% of full scale, then 1/256
// for the remainder.
const gainBentSteps = (3 * FullScale / 4) / (FullScale / 64)
const gainBentTailSteps = (FullScale - 3*FullScale/4) / (FullScale / 256)

var attackSeconds = []float64{
	4.1,
	2.6,
	1.5,
	1.0,
	0.640,
	0.380,
	0.260,
	0.160,
	0.096,
	0.064,
	0.040,
	0.024,
	0.016,
	0.010,
	0.006,
	0.000,
}

var gainLinearSeconds = []float64{
	0.0,   // 0
	4.1,   // 1
	3.1,   // 2
	2.6,   // 3
	2.0,   // 4
	1.5,   // 5
	1.3,   // 6
	1.0,   // 7
	0.770, // 8
	0.640, // 9
	0.510, // A
	0.380, // B
	0.320, // C
	0.260, // D
	0.190, // E
	0.160, // F
	0.130, // 10
	0.096, // 11
	0.080, // 12
	0.064, // 13
	0.048, // 14
	0.040, // 15
	0.032, // 16
	0.024, // 17
	0.020, // 18
	0.016, // 19
	0.012, // 1A
	0.010, // 1B
	0.008, // 1C
	0.006, // 1D
	0.004, // 1E
	0.002, // 1F
}

var gainBentSeconds = []float64{
	0.0,    // 0
	7.2,    // 1
	5.4,    // 2
	4.6,    // 3
	3.5,    // 4
	2.6,    // 5
	2.3,    // 6
	1.8,    // 7
	1.3,    // 8
	1.1,    // 9
	0.900,  // A
	0.670,  // B
	0.560,  // C
	0.450,  // D
	0.340,  // E
	0.280,  // F
	0.220,  // 10
	0.170,  // 11
	0.140,  // 12
	0.110,  // 13
	0.084,  // 14
	0.070,  // 15
	0.056,  // 16
	0.042,  // 17
	0.035,  // 18
	0.028,  // 19
	0.021,  // 1A
	0.018,  // 1B
	0.014,  // 1C
	0.011,  // 1D
	0.007,  // 1E
	0.0035, // 1F
}

func linearRates(seconds []float64, steps int) []TimedRate {
	var rates []TimedRate
	for _, t := range seconds {
		samples := t * float64(SamplesPerSecond)
		rates = append(rates, TimedRate{
			Seconds: t,
			Rate:    int(samples / float64(steps)),
		})
	}
	return rates
}

// AttackRates returns the 16 attack-rate divisors, annotated with the
// attack time each one represents.
func AttackRates() []TimedRate {
	return linearRates(attackSeconds, FullScale/attackStep)
}

// GainLinearRates returns the 32 linear-GAIN divisors.
func GainLinearRates() []TimedRate {
	return linearRates(gainLinearSeconds, gainLinearSteps)
}

// GainBentRates returns the 32 bent-line-GAIN divisors.
func GainBentRates() []TimedRate {
	return linearRates(gainBentSeconds, gainBentSteps+gainBentTailSteps)
}
