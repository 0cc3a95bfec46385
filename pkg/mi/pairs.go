// 16 Mar 2026

package mi

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// rankAbove says whether pair a sorts before pair b: higher score
// first, ties broken by position so the list is deterministic.
func rankAbove(a, b Pair) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}

// topPairs ranks the couplings in a matrix. Only pairs with i < j and
// |i-j| >= minSep are candidates, sorted by descending score and cut
// off at maxPairs. The list is kept sorted as candidates arrive and
// never grows past maxPairs, so the working set stays O(maxPairs)
// even when the matrix has millions of candidate pairs.
func topPairs(m *mat.Dense, minSep, maxPairs int) []Pair {
	if maxPairs <= 0 {
		return nil
	}
	n, _ := m.Dims()
	pairs := make([]Pair, 0, maxPairs)
	for i := 0; i < n; i++ {
		for j := i + minSep; j < n; j++ {
			p := Pair{I: i, J: j, Score: m.At(i, j)}
			if len(pairs) == maxPairs {
				if !rankAbove(p, pairs[maxPairs-1]) {
					continue
				}
				pairs = pairs[:maxPairs-1]
			}
			k := sort.Search(len(pairs), func(k int) bool {
				return rankAbove(p, pairs[k])
			})
			pairs = append(pairs, Pair{})
			copy(pairs[k+1:], pairs[k:])
			pairs[k] = p
		}
	}
	return pairs
}
