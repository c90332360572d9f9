package waveform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultAlpha is the significance level used by Overlap: the credible
// interval at each bin keeps 95% of the probability mass.
const DefaultAlpha = 0.05

// Overlap is OverlapAlpha at DefaultAlpha.
func Overlap(a, b mat.Matrix) ([]float64, error) {
	return OverlapAlpha(a, b, DefaultAlpha)
}

// OverlapAlpha scores how much two same-shaped waveform matrices agree,
// returning one value per row. Per bin, each input's central (1 - alpha)
// Poisson credible interval is computed; per row, the clipped widths where
// the two intervals intersect are summed and divided by the union of the two
// interval areas. Identical rows score 1, rows whose intervals never touch
// score 0.
//
// A row that is entirely zero in both inputs has zero union area; its entry
// is NaN (0/0) rather than an arbitrary 0 or 1, and callers should check
// with math.IsNaN before interpreting it.
func OverlapAlpha(a, b mat.Matrix, alpha float64) ([]float64, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, ar, ac, br, bc)
	}

	l1, u1, err := ComputeLimits(a, alpha)
	if err != nil {
		return nil, err
	}
	l2, u2, err := ComputeLimits(b, alpha)
	if err != nil {
		return nil, err
	}

	// Intersection of the two intervals per bin, clipped at zero where they
	// do not meet.
	inter := mat.NewDense(ar, ac, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			hi := math.Min(u1.At(i, j), u2.At(i, j))
			lo := math.Max(l1.At(i, j), l2.At(i, j))
			if d := hi - lo; d > 0 {
				inter.Set(i, j, d)
			}
		}
	}

	var w1, w2 mat.Dense
	w1.Sub(u1, l1)
	w2.Sub(u2, l2)

	out := make([]float64, ar)
	for i := 0; i < ar; i++ {
		interArea := floats.Sum(inter.RawRowView(i))
		union := floats.Sum(w1.RawRowView(i)) + floats.Sum(w2.RawRowView(i)) - interArea
		out[i] = interArea / union
	}
	return out, nil
}
