package waveform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ComputeLimits returns element-wise lower and upper bounds of the central
// (1 - alpha) Poisson credible interval for wf, treating each element's value
// as the rate of its own Poisson distribution. alpha/2 probability mass is
// excluded from each tail. A zero element yields a zero-width interval at 0.
//
// wf is not modified. alpha must lie strictly between 0 and 1, and every
// element of wf must be a non-negative number.
func ComputeLimits(wf mat.Matrix, alpha float64) (lower, upper *mat.Dense, err error) {
	return ComputeLimitsFunc(wf, alpha, PoissonQuantile)
}

// ComputeLimitsFunc is ComputeLimits with a caller-supplied quantile
// primitive, so the interval semantics can be backed by a different
// statistics library or a test stub.
func ComputeLimitsFunc(wf mat.Matrix, alpha float64, quantile QuantileFunc) (lower, upper *mat.Dense, err error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, nil, fmt.Errorf("%w: %v not in (0, 1)", ErrInvalidAlpha, alpha)
	}

	rows, cols := wf.Dims()
	lower = mat.NewDense(rows, cols, nil)
	upper = mat.NewDense(rows, cols, nil)

	pLo := alpha / 2
	pHi := 1 - alpha/2
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := wf.At(i, j)
			if v < 0 || math.IsNaN(v) {
				return nil, nil, fmt.Errorf("%w: %v at (%d, %d)", ErrNegativeRate, v, i, j)
			}
			lower.Set(i, j, quantile(pLo, v))
			upper.Set(i, j, quantile(pHi, v))
		}
	}
	return lower, upper, nil
}
