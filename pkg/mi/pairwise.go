// 16 Mar 2026
// The inner machinery for pairwise mutual information. A pairCtx is
// built once per calculation and then asked for blocks of the
// coupling matrix, so the chunked and unchunked paths run exactly the
// same code over exactly the same tables.

package mi

import (
	"math"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/rna_mi/pkg/seq"
	"gonum.org/v1/gonum/mat"
)

// pairCtx carries everything the pair loops need. codes is the
// alignment with each symbol replaced by its count-table row, margin
// holds the weighted symbol counts per column. Each column of margin
// sums to 1 before smoothing because the weights do.
type pairCtx struct {
	codes  *matrix.BMatrix2d
	w      []float64
	margin [][]float64 // [site][symbol] weighted counts
	joint  []float64   // scratch for one pair, nsym*nsym
	nsym   int
	pc     float64
}

func newPairCtx(seqgrp *seq.SeqGrp, w []float64, pc float64) *pairCtx {
	nsym := seqgrp.GetNSym()
	siteLen := seqgrp.GetLen()
	cc := &pairCtx{
		codes: seqgrp.Encode(),
		w:     w,
		joint: make([]float64, nsym*nsym),
		nsym:  nsym,
		pc:    pc,
	}
	backing := make([]float64, siteLen*nsym)
	cc.margin = make([][]float64, siteLen)
	for i := range cc.margin {
		cc.margin[i] = backing[i*nsym : (i+1)*nsym]
	}
	for is, row := range cc.codes.Mat {
		wt := w[is]
		for i, c := range row {
			cc.margin[i][c] += wt
		}
	}
	return cc
}

// miPair returns the mutual information between columns i and j in
// bits. The joint table gets the pseudocount added to every cell and
// the marginals are the sums of the smoothed joint, so both are
// proper distributions and the sum cannot go negative except by
// rounding, which we clip.
func (cc *pairCtx) miPair(i, j int) float64 {
	nsym := cc.nsym
	joint := cc.joint
	for k := range joint {
		joint[k] = 0
	}
	for is, row := range cc.codes.Mat {
		joint[int(row[i])*nsym+int(row[j])] += cc.w[is]
	}
	pc := cc.pc
	den := 1 + pc*float64(nsym*nsym)
	pcMarg := pc * float64(nsym) // nsym joint cells contribute to one marginal
	mgi, mgj := cc.margin[i], cc.margin[j]

	var mi float64
	for a := 0; a < nsym; a++ {
		pa := (mgi[a] + pcMarg) / den
		if pa <= 0 {
			continue
		}
		for b := 0; b < nsym; b++ {
			pab := (joint[a*nsym+b] + pc) / den
			if pab <= 0 { // only with pc == 0: a zero count is
				continue //  a zero contribution
			}
			pb := (mgj[b] + pcMarg) / den
			mi += pab * math.Log2(pab/(pa*pb))
		}
	}
	if mi < 0 {
		mi = 0
	}
	return mi
}

// miBlock fills the [rlo,rhi) x [clo,chi) block of the coupling
// matrix, and the mirrored entries, visiting each unordered pair
// once. With the full range it computes the whole matrix. The
// diagonal stays zero.
func (cc *pairCtx) miBlock(dst *mat.Dense, rlo, rhi, clo, chi int) {
	for i := rlo; i < rhi; i++ {
		jlo := clo
		if jlo <= i {
			jlo = i + 1
		}
		for j := jlo; j < chi; j++ {
			v := cc.miPair(i, j)
			dst.Set(i, j, v)
			dst.Set(j, i, v)
		}
	}
}
