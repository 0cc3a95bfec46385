// 20 Mar 2026
// Read up a multiple sequence alignment, calculate the coupling
// matrix and write the ranked pairs. This is the guts of the mifeat
// command, living here so it can be tested. It sits above pkg/mi and
// pkg/store, which know nothing about each other's files or flags.

package mifeat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/andrew-torda/rna_mi/pkg/memtrack"
	"github.com/andrew-torda/rna_mi/pkg/mi"
	"github.com/andrew-torda/rna_mi/pkg/numseq"
	"github.com/andrew-torda/rna_mi/pkg/seq"
	"github.com/andrew-torda/rna_mi/pkg/store"
)

// CmdFlag holds everything that comes from the command line.
type CmdFlag struct {
	Pseudocount float64 // negative means choose from alignment depth
	MaxChunk    int     // split long alignments, 0 means do not chunk
	MinSep      int     // minimum |i-j| for ranked pairs
	MaxPairs    int     // bound on the ranked pair list
	WeightsFile string  // per sequence weights, one per line
	TargetID    string  // save features under this name
	OutDir      string  // where saved features go
	MemPlot     string  // write a memory use plot here
	Basic       bool    // raw mutual information, no correction
	Verbose     bool
}

// vsay prints progress chatter if the caller asked for it.
func (flags *CmdFlag) vsay(args ...interface{}) {
	if flags.Verbose {
		fmt.Fprintln(os.Stderr, args...)
	}
}

// readWeights reads one float per line. Blank lines and lines starting
// with "#" are skipped, so a weights file can carry a comment.
func readWeights(fname string) ([]float64, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	var w []float64
	scn := bufio.NewScanner(fp)
	for scn.Scan() {
		s := strings.TrimSpace(scn.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("weights file %s: %w", fname, err)
		}
		w = append(w, x)
	}
	if err := scn.Err(); err != nil {
		return nil, err
	}
	return w, nil
}

// wrtPairs writes the ranked pairs as a csv file for plotting or
// feeding to whatever comes next in the pipeline.
func wrtPairs(wrtr io.Writer, r *mi.Result) error {
	if _, err := fmt.Fprintln(wrtr, `"i","j","score"`); err != nil {
		return err
	}
	for _, p := range r.TopPairs {
		if _, err := fmt.Fprintf(wrtr, "%d,%d,%.6g\n", p.I, p.J, p.Score); err != nil {
			return err
		}
	}
	return nil
}

// Mymain does the work for the mifeat command. Reading from infile,
// or stdin if it is empty, writing ranked pairs to outfile, or stdout.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	var chatter io.Writer
	if flags.Verbose {
		chatter = os.Stderr
	}
	tracker := memtrack.New(chatter)
	tracker.Log("start")

	opts := &mi.Options{
		MinSeparation: flags.MinSep,
		MaxPairs:      flags.MaxPairs,
		Verbose:       flags.Verbose,
	}
	if flags.Pseudocount >= 0 {
		pc := flags.Pseudocount
		opts.Pseudocount = &pc
	}
	if flags.WeightsFile != "" {
		w, err := readWeights(flags.WeightsFile)
		if err != nil {
			return err
		}
		opts.Weights = w
	}

	if flags.Verbose && infile != "" {
		if n, err := numseq.Count(infile); err == nil {
			flags.vsay(infile, "has", n, "sequences, adaptive pseudocount would be",
				mi.AdaptivePseudocount(n))
		}
	}

	seqgrp, err := seq.Readfile(infile)
	if err != nil {
		return err
	}
	if err := seqgrp.Upper(); err != nil {
		return err
	}
	tracker.Log("alignment read")

	var r *mi.Result
	done := tracker.Section("coupling matrix")
	switch {
	case flags.Basic:
		r, err = mi.Calc(seqgrp, opts)
	case flags.MaxChunk > 0:
		r, err = mi.ChunkAndAnalyze(seqgrp, flags.MaxChunk, opts)
	default:
		r, err = mi.CalcEnhanced(seqgrp, opts)
	}
	done()
	if err != nil {
		return err
	}

	if flags.TargetID != "" {
		if err := store.Save(flags.OutDir, flags.TargetID, r); err != nil {
			return err
		}
		flags.vsay("features saved to", store.Path(flags.OutDir, flags.TargetID))
		tracker.Log("features saved")
	}

	wrtr := os.Stdout
	if outfile != "" {
		fp, err := os.Create(outfile)
		if err != nil {
			return err
		}
		defer fp.Close()
		wrtr = fp
	}
	if err := wrtPairs(wrtr, r); err != nil {
		return err
	}

	if flags.MemPlot != "" {
		tracker.Log("end")
		if err := tracker.Plot(flags.MemPlot); err != nil {
			return err
		}
	}
	return nil
}
