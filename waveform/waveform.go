// Package waveform computes a similarity metric ("waveform overlap") between
// pairs of discretely sampled signals, such as simulated lidar waveform
// returns. Each row of a matrix is one waveform; each column is a time bin
// holding an expected photon count. For every bin a central Poisson credible
// interval is derived from the bin's own value, and two waveforms are scored
// row by row as intersection-over-union of their interval sets.
package waveform

import "errors"

// Sentinel errors returned by ComputeLimits and Overlap. Callers can match
// them with errors.Is; the wrapped messages carry the offending values.
var (
	// ErrShapeMismatch reports two waveform matrices whose row or column
	// counts differ. No numeric work is done once shapes disagree.
	ErrShapeMismatch = errors.New("waveform: shape mismatch")

	// ErrInvalidAlpha reports a significance level outside (0, 1).
	ErrInvalidAlpha = errors.New("waveform: alpha out of range")

	// ErrNegativeRate reports a waveform element that is negative or NaN,
	// which is not a valid Poisson rate.
	ErrNegativeRate = errors.New("waveform: invalid rate")
)
