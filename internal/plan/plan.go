// Package plan decomposes a tempo ratio into a chain of bounded stretch stages.
//
// ffmpeg's atempo filter accepts a per-stage factor in [0.5, 2.0]. Ratios
// outside that range are expressed as a chain of stages whose product equals
// the overall ratio.
package plan

import "errors"

// Per-stage factor bounds imposed by the atempo filter.
const (
	MinStage = 0.5
	MaxStage = 2.0
)

// Tolerance below which a remainder is treated as exactly 1.0.
const tolerance = 1e-6

// ErrInvalidRatio reports a non-positive tempo ratio, which has no meaningful
// stretch decomposition.
var ErrInvalidRatio = errors.New("tempo ratio must be > 0")

// Ratio returns the multiplicative stretch factor taking sourceBPM to targetBPM.
func Ratio(sourceBPM, targetBPM int) float64 {
	return float64(targetBPM) / float64(sourceBPM)
}

// Stages decomposes the targetBPM/sourceBPM ratio into an ordered chain of
// factors, each within [MinStage, MaxStage], whose product reconstructs the
// ratio within tolerance. The chain is never empty: a ratio within tolerance
// of 1.0 yields the single identity stage [1.0].
func Stages(sourceBPM, targetBPM int) ([]float64, error) {
	if sourceBPM <= 0 || targetBPM <= 0 {
		return nil, ErrInvalidRatio
	}

	r := Ratio(sourceBPM, targetBPM)
	var factors []float64
	for r > MaxStage {
		factors = append(factors, MaxStage)
		r /= MaxStage
	}
	for r < MinStage {
		factors = append(factors, MinStage)
		r /= MinStage
	}
	if r-1.0 > tolerance || 1.0-r > tolerance {
		factors = append(factors, r)
	}
	if len(factors) == 0 {
		factors = []float64{1.0}
	}
	return factors, nil
}
