// 16 Mar 2026

package mi

import (
	"gonum.org/v1/gonum/mat"
)

// apcCorrect applies the average product correction to a raw coupling
// matrix. Each entry loses the product of its column means over the
// grand mean, which is the background coupling an alignment of this
// depth and phylogeny would show anyway.
// corrected(i,j) = raw(i,j) - mean_i * mean_j / grand.
// Means exclude the diagonal. A zero grand mean would normally have
// been caught as a degenerate alignment upstream, but if it shows up
// here the correction is defined as zero everywhere.
func apcCorrect(raw *mat.Dense) *mat.Dense {
	n, _ := raw.Dims()
	out := mat.NewDense(n, n, nil)
	if n < 2 {
		return out
	}
	mean := make([]float64, n)
	var grand float64
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			if j != i {
				sum += raw.At(i, j)
			}
		}
		mean[i] = sum / float64(n-1)
		grand += sum
	}
	grand /= float64(n * (n - 1))
	if grand == 0 {
		return out
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			out.Set(i, j, raw.At(i, j)-mean[i]*mean[j]/grand)
		}
	}
	return out
}
