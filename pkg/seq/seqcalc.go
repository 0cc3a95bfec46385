// 14 Mar 2026
// seqcalc does the simple, common calculations on a set of sequences.
// The functions live in this package since they need access to the
// internals of a sequence.

package seq

import (
	"github.com/andrew-torda/matrix"
)

// UsageSite counts how many of each symbol appear at each site in the
// alignment. The result looks like [number_of_symbol_types][length_of_seq].
// We store it as float32, since it will usually be normalised later and
// the inaccuracy from working with floats is no problem.
func (seqgrp *SeqGrp) UsageSite() *matrix.FMatrix2d {
	if len(seqgrp.revmap) == 0 {
		seqgrp.mapsyms()
	}
	nrow := len(seqgrp.revmap)
	ncol := seqgrp.GetLen()
	counts := matrix.NewFMatrix2d(nrow, ncol)
	for _, ss := range seqgrp.seqs {
		for i, c := range ss.GetSeq() {
			counts.Mat[seqgrp.mapping[c]][i] += 1
		}
	}
	return counts
}

// GapFrac returns a slice with the fraction of gap characters at each
// position. If there are no gaps at all, we quietly return nil.
func (seqgrp *SeqGrp) GapFrac() []float32 {
	counts := seqgrp.UsageSite()
	gappos := seqgrp.mapping[GapChar]
	if gappos == badMap {
		return nil
	}
	nseq := float32(seqgrp.GetNSeq())
	gapfrac := make([]float32, seqgrp.GetLen())
	for i, c := range counts.Mat[gappos] {
		gapfrac[i] = c / nseq
	}
	return gapfrac
}

// Encode writes the alignment as a matrix of small integers,
// [nseq][length], where each entry is the count-table row for the
// symbol at that site. Downstream loops that visit every pair of
// columns want this rather than re-doing the byte lookup each time,
// and the contiguous backing store keeps them cache friendly.
func (seqgrp *SeqGrp) Encode() *matrix.BMatrix2d {
	if len(seqgrp.revmap) == 0 {
		seqgrp.mapsyms()
	}
	codes := matrix.NewBMatrix2d(seqgrp.GetNSeq(), seqgrp.GetLen())
	for is, ss := range seqgrp.seqs {
		row := codes.Mat[is]
		for i, c := range ss.GetSeq() {
			row[i] = byte(seqgrp.mapping[c])
		}
	}
	return codes
}
