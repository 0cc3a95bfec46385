// 17 Mar 2026
// Chunking keeps the working set bounded when sequences get long.
// The column range is cut into contiguous windows and every pair of
// windows is handed to the same block computation the plain path
// uses, writing into the right offset of one full size accumulator.
// Intermediate state is O(window^2) while the final matrix is still
// O(L^2). Results are identical to the unchunked path because each
// column pair is computed independently from the same tables.

package mi

import (
	"fmt"

	"github.com/andrew-torda/rna_mi/pkg/seq"
	"gonum.org/v1/gonum/mat"
)

// window is a half open column range [lo, hi).
type window struct {
	lo, hi int
}

// mkWindows partitions [0, siteLen) into contiguous windows no longer
// than maxLen.
func mkWindows(siteLen, maxLen int) []window {
	var ws []window
	for lo := 0; lo < siteLen; lo += maxLen {
		hi := lo + maxLen
		if hi > siteLen {
			hi = siteLen
		}
		ws = append(ws, window{lo, hi})
	}
	return ws
}

// ChunkAndAnalyze is the enhanced calculation with a bound on how
// many columns are in flight at once. With maxLen at least the
// sequence length it degenerates to a single window and behaves
// exactly like CalcEnhanced, apart from the chunk bookkeeping in the
// result. A degenerate alignment short-circuits before any windows
// are made and its result carries no chunk bookkeeping at all.
func ChunkAndAnalyze(seqgrp *seq.SeqGrp, maxLen int, opts *Options) (*Result, error) {
	if maxLen <= 0 {
		return nil, fmt.Errorf("max chunk length %d: %w", maxLen, ErrChunkSize)
	}
	opts, params, err := prologue(seqgrp, opts)
	if err != nil {
		return nil, err
	}
	if seqgrp.NDistinct(2) <= 1 {
		opts.vsay("degenerate alignment, returning zero couplings")
		params.SingleSequence = true
		return zeroResult(seqgrp.GetLen(), MethodEnhanced, params), nil
	}
	siteLen := seqgrp.GetLen()
	ws := mkWindows(siteLen, maxLen)
	params.MaxChunkLen = maxLen
	params.NChunks = len(ws)
	opts.vsay("length", siteLen, "in", len(ws), "chunks of at most", maxLen)

	cc := newPairCtx(seqgrp, params.weights(seqgrp.GetNSeq()), params.Pseudocount)
	raw := mat.NewDense(siteLen, siteLen, nil)
	for ia, wa := range ws {
		for _, wb := range ws[ia:] {
			cc.miBlock(raw, wa.lo, wa.hi, wb.lo, wb.hi)
		}
		opts.vsay("done rows", wa.lo, "to", wa.hi)
	}
	return finishEnhanced(raw, opts, params), nil
}

// ChunkAndAnalyzeStrings is ChunkAndAnalyze on a plain string slice.
func ChunkAndAnalyzeStrings(msa []string, maxLen int, opts *Options) (*Result, error) {
	return ChunkAndAnalyze(seq.Str2SeqGrp(msa), maxLen, opts)
}
