// 16 Mar 2026
// Pseudocount policy and sequence weights. Shallow alignments need
// smoothing or a single zero count sends a log to minus infinity.
// Deep alignments have the statistical power to do without, and
// smoothing would just flatten real signal.

package mi

import (
	"errors"
	"fmt"
	"math"
)

// Errors a caller can test for with errors.Is. The alignment shape
// errors live in pkg/seq.
var (
	ErrBadWeights = errors.New("invalid sequence weights")
	ErrChunkSize  = errors.New("invalid chunk size")
)

// weights may be off from summing to exactly 1 by this much.
const weightTol = 1e-6

// AdaptivePseudocount picks a smoothing constant from alignment
// depth. The thresholds are the ones every caller of this engine has
// always used, so both computation paths must agree on them.
func AdaptivePseudocount(nseq int) float64 {
	switch {
	case nseq <= 25:
		return 0.5
	case nseq <= 100:
		return 0.2
	default:
		return 0.0
	}
}

// resolvePseudocount uses an explicit value verbatim, including 0.0
// which means no smoothing at all. Otherwise it picks adaptively.
func resolvePseudocount(opts *Options, nseq int) float64 {
	if opts.Pseudocount != nil {
		return *opts.Pseudocount
	}
	return AdaptivePseudocount(nseq)
}

// resolveWeights returns the per-sequence weight vector and whether
// it is the uniform default. Given weights are checked: right length,
// no negatives, summing to 1 within tolerance.
func resolveWeights(opts *Options, nseq int) ([]float64, bool, error) {
	if opts.Weights == nil {
		w := make([]float64, nseq)
		for i := range w {
			w[i] = 1 / float64(nseq)
		}
		return w, true, nil
	}
	w := opts.Weights
	if len(w) != nseq {
		return nil, false, fmt.Errorf("%d weights for %d sequences: %w",
			len(w), nseq, ErrBadWeights)
	}
	var sum float64
	for i, x := range w {
		if x < 0 {
			return nil, false, fmt.Errorf("weight %d is negative (%g): %w",
				i, x, ErrBadWeights)
		}
		sum += x
	}
	if math.Abs(sum-1) > weightTol {
		return nil, false, fmt.Errorf("weights sum to %g, not 1: %w",
			sum, ErrBadWeights)
	}
	return w, false, nil
}
