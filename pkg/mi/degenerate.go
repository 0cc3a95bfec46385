// 16 Mar 2026

package mi

import (
	"gonum.org/v1/gonum/mat"
)

// zeroResult is the shortcut for an alignment with at most one
// distinct sequence. There is no covariation to measure, so paying
// the full pairwise cost would be wasted work. One shared zero matrix
// stands in for raw, corrected and the aliases. Chunk bookkeeping is
// deliberately left at its zero value: the shortcut takes precedence
// over chunking.
func zeroResult(siteLen int, method string, params Params) *Result {
	z := mat.NewDense(siteLen, siteLen, nil)
	r := &Result{
		MI:       z,
		Scores:   z,
		Coupling: z,
		Method:   method,
		TopPairs: []Pair{},
		Params:   params,
	}
	if method == MethodEnhanced {
		r.APC = z
	}
	return r
}
