// 16 Mar 2026

// Package mi turns a multiple sequence alignment into a symmetric
// position by position coupling matrix based on mutual information.
// There are two entry points. CalcEnhanced is the one to use. It
// applies the average product correction and its Scores and Coupling
// fields point to the corrected matrix. Calc is the older flavour
// with no correction, where Scores and Coupling point to the raw
// matrix. It is kept so old downstream consumers see the numbers they
// always saw. ChunkAndAnalyze is CalcEnhanced with bounded working
// set for long sequences.
package mi

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/rna_mi/pkg/seq"
	"gonum.org/v1/gonum/mat"
)

// Method labels stored in a result.
const (
	MethodBasic    = "mutual_information"
	MethodEnhanced = "mutual_information_enhanced"
)

// Defaults for the ranked pair list. Pairs closer than the minimum
// separation carry little structural information, so they are not
// worth reporting.
const (
	DfltMinSeparation = 4
	DfltMaxPairs      = 100
)

// Options are the knobs a caller can turn. The zero value does the
// right thing: adaptive pseudocount, uniform weights, default pair
// bounds, quiet.
type Options struct {
	Pseudocount   *float64  // nil means choose from alignment depth
	Weights       []float64 // per sequence, must sum to 1. nil means uniform
	MinSeparation int       // minimum |i-j| for ranked pairs, 0 means default
	MaxPairs      int       // bound on the ranked pair list, 0 means default
	Verbose       bool      // progress chatter, no effect on results
	Wrtr          io.Writer // where chatter goes, nil means stderr
}

// Pair is one ranked coupling, with I < J.
type Pair struct {
	I, J  int
	Score float64
}

// Params records what a calculation actually used, so a result can be
// interpreted without the options that produced it.
type Params struct {
	Pseudocount    float64
	Weights        []float64 // nil when uniform weighting was used
	UniformWeights bool
	SingleSequence bool // alignment had at most one distinct sequence
	MaxChunkLen    int  // 0 unless the chunking entry point ran
	NChunks        int  // 0 unless the chunking entry point ran
}

// Result is what a calculation returns. MI is the raw matrix. APC is
// the corrected one, nil on the basic path. Scores and Coupling are
// aliases kept for downstream consumers; which matrix they point to
// depends on the entry point. Nothing here is mutated after return.
type Result struct {
	MI       *mat.Dense
	APC      *mat.Dense
	Scores   *mat.Dense
	Coupling *mat.Dense
	Method   string
	TopPairs []Pair
	Params   Params
}

// vsay prints progress chatter if the caller asked for it.
func (opts *Options) vsay(args ...interface{}) {
	if opts == nil || !opts.Verbose {
		return
	}
	w := opts.Wrtr
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, args...)
}

// minSep and maxPairs apply the defaults.
func (opts *Options) minSep() int {
	if opts.MinSeparation > 0 {
		return opts.MinSeparation
	}
	return DfltMinSeparation
}
func (opts *Options) maxPairs() int {
	if opts.MaxPairs > 0 {
		return opts.MaxPairs
	}
	return DfltMaxPairs
}

// prologue validates the alignment and resolves parameters. Every
// failure happens here, before any computation, so we never hand back
// a partial matrix.
func prologue(seqgrp *seq.SeqGrp, opts *Options) (*Options, Params, error) {
	if opts == nil {
		opts = &Options{}
	}
	var params Params
	if err := seqgrp.Check(); err != nil {
		return opts, params, err
	}
	nseq := seqgrp.GetNSeq()
	params.Pseudocount = resolvePseudocount(opts, nseq)
	w, uniform, err := resolveWeights(opts, nseq)
	if err != nil {
		return opts, params, err
	}
	params.UniformWeights = uniform
	if !uniform {
		params.Weights = w
	}
	return opts, params, nil
}

// weights gives the weight vector matching params, rebuilding the
// uniform one when none was recorded.
func (params *Params) weights(nseq int) []float64 {
	if params.Weights != nil {
		return params.Weights
	}
	w := make([]float64, nseq)
	for i := range w {
		w[i] = 1 / float64(nseq)
	}
	return w
}

// Calc computes the raw mutual information matrix for an alignment.
// This is the legacy basic path: no average product correction is
// applied and Scores and Coupling both point to the raw matrix.
func Calc(seqgrp *seq.SeqGrp, opts *Options) (*Result, error) {
	opts, params, err := prologue(seqgrp, opts)
	if err != nil {
		return nil, err
	}
	if seqgrp.NDistinct(2) <= 1 {
		opts.vsay("degenerate alignment, returning zero couplings")
		params.SingleSequence = true
		return zeroResult(seqgrp.GetLen(), MethodBasic, params), nil
	}
	L := seqgrp.GetLen()
	cc := newPairCtx(seqgrp, params.weights(seqgrp.GetNSeq()), params.Pseudocount)
	raw := mat.NewDense(L, L, nil)
	cc.miBlock(raw, 0, L, 0, L)
	return &Result{
		MI:       raw,
		Scores:   raw,
		Coupling: raw,
		Method:   MethodBasic,
		TopPairs: topPairs(raw, opts.minSep(), opts.maxPairs()),
		Params:   params,
	}, nil
}

// CalcStrings is Calc on a plain string slice.
func CalcStrings(msa []string, opts *Options) (*Result, error) {
	return Calc(seq.Str2SeqGrp(msa), opts)
}

// CalcEnhanced computes the mutual information matrix and applies the
// average product correction. Scores and Coupling both point to the
// corrected matrix. This is the canonical path.
func CalcEnhanced(seqgrp *seq.SeqGrp, opts *Options) (*Result, error) {
	opts, params, err := prologue(seqgrp, opts)
	if err != nil {
		return nil, err
	}
	if seqgrp.NDistinct(2) <= 1 {
		opts.vsay("degenerate alignment, returning zero couplings")
		params.SingleSequence = true
		return zeroResult(seqgrp.GetLen(), MethodEnhanced, params), nil
	}
	L := seqgrp.GetLen()
	cc := newPairCtx(seqgrp, params.weights(seqgrp.GetNSeq()), params.Pseudocount)
	raw := mat.NewDense(L, L, nil)
	cc.miBlock(raw, 0, L, 0, L)
	return finishEnhanced(raw, opts, params), nil
}

// CalcEnhancedStrings is CalcEnhanced on a plain string slice.
func CalcEnhancedStrings(msa []string, opts *Options) (*Result, error) {
	return CalcEnhanced(seq.Str2SeqGrp(msa), opts)
}

// finishEnhanced does the part shared by the plain and chunked
// enhanced paths: correction, ranking and packing the result.
func finishEnhanced(raw *mat.Dense, opts *Options, params Params) *Result {
	apc := apcCorrect(raw)
	return &Result{
		MI:       raw,
		APC:      apc,
		Scores:   apc,
		Coupling: apc,
		Method:   MethodEnhanced,
		TopPairs: topPairs(apc, opts.minSep(), opts.maxPairs()),
		Params:   params,
	}
}
