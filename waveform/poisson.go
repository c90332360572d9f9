package waveform

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// QuantileFunc maps a probability and a Poisson rate to the smallest
// non-negative integer k (returned as a float64, always integer-valued) whose
// cumulative probability at the given rate reaches p. Implementations must be
// monotonically non-decreasing in p for a fixed rate, and must return 0 for
// rate 0, where the distribution places all mass at zero.
type QuantileFunc func(p, rate float64) float64

// PoissonQuantile is the default QuantileFunc. The CDF comes from gonum's
// Poisson distribution (regularized incomplete gamma), inverted by bracketing
// above the mean and binary-searching the integers below the bracket.
func PoissonQuantile(p, rate float64) float64 {
	if p <= 0 || rate == 0 {
		return 0
	}

	dist := distuv.Poisson{Lambda: rate}

	// mean + 10 sigma covers any p we are asked for in practice; double the
	// bracket if it somehow does not.
	hi := math.Ceil(rate + 10*math.Sqrt(rate) + 10)
	for dist.CDF(hi) < p {
		hi *= 2
	}

	lo := 0.0
	for lo < hi {
		mid := math.Floor((lo + hi) / 2)
		if dist.CDF(mid) >= p {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
