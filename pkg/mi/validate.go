// 21 Mar 2026

package mi

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrBadResult is wrapped by everything Check complains about.
var ErrBadResult = errors.New("invalid result record")

// finiteSym complains if a matrix is not square of size n, carries a
// NaN or infinity, or is not symmetric.
func finiteSym(name string, m *mat.Dense, n int) error {
	nr, nc := m.Dims()
	if nr != n || nc != n {
		return fmt.Errorf("%s matrix is %dx%d, want %d: %w", name, nr, nc, n, ErrBadResult)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s matrix has %v at %d,%d: %w", name, v, i, j, ErrBadResult)
			}
			if v != m.At(j, i) {
				return fmt.Errorf("%s matrix asymmetric at %d,%d: %w", name, i, j, ErrBadResult)
			}
		}
	}
	return nil
}

// Check makes sure a result record is internally consistent: the
// matrices are present, square, finite and symmetric, the raw MI is
// non-negative with a zero diagonal, the aliases point where the
// method label says, and the ranked pairs are in range. Calculations
// produce valid records by construction; this is for records that
// crossed a serialisation boundary or were built by hand.
func (r *Result) Check() error {
	if r.MI == nil || r.Scores == nil || r.Coupling == nil {
		return fmt.Errorf("missing matrix field: %w", ErrBadResult)
	}
	n, _ := r.MI.Dims()
	if err := finiteSym("mi", r.MI, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if d := r.MI.At(i, i); d != 0 {
			return fmt.Errorf("mi diagonal %d is %v: %w", i, d, ErrBadResult)
		}
		for j := i + 1; j < n; j++ {
			if v := r.MI.At(i, j); v < 0 {
				return fmt.Errorf("negative mi at %d,%d: %w", i, j, ErrBadResult)
			}
		}
	}
	switch r.Method {
	case MethodEnhanced:
		if r.APC == nil {
			return fmt.Errorf("enhanced record with no corrected matrix: %w", ErrBadResult)
		}
		if err := finiteSym("apc", r.APC, n); err != nil {
			return err
		}
		if r.Scores != r.APC || r.Coupling != r.APC {
			return fmt.Errorf("enhanced aliases astray: %w", ErrBadResult)
		}
	case MethodBasic:
		if r.APC != nil {
			return fmt.Errorf("basic record carries a corrected matrix: %w", ErrBadResult)
		}
		if r.Scores != r.MI || r.Coupling != r.MI {
			return fmt.Errorf("basic aliases astray: %w", ErrBadResult)
		}
	default:
		return fmt.Errorf("method %q: %w", r.Method, ErrBadResult)
	}
	for k, p := range r.TopPairs {
		if p.I < 0 || p.J <= p.I || p.J >= n {
			return fmt.Errorf("pair %d is (%d,%d) for %d columns: %w",
				k, p.I, p.J, n, ErrBadResult)
		}
	}
	return nil
}
