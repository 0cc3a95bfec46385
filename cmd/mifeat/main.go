// 20 Mar 2026
// Read a multiple sequence alignment and calculate mutual
// information coupling features.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/rna_mi/pkg/mi"
	"github.com/andrew-torda/rna_mi/pkg/mifeat"
	"github.com/andrew-torda/rna_mi/pkg/seq"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [infile [outfile]]")
	long := `Do not just type the command name. It will wait on input from stdin.
Given no arguments, read from stdin and write ranked pairs to stdout.
Given one argument, read from the given file name, but write to stdout.
Given two arguments, read from the first one, write to the second.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags mifeat.CmdFlag
	var infile, outfile string

	flag.Float64Var(&flags.Pseudocount, "p", -1, "pseudocount, negative means pick from alignment depth")
	flag.IntVar(&flags.MaxChunk, "c", 0, "work in column chunks of this size, 0 means all at once")
	flag.IntVar(&flags.MinSep, "s", mi.DfltMinSeparation, "minimum sequence separation for ranked pairs")
	flag.IntVar(&flags.MaxPairs, "n", mi.DfltMaxPairs, "number of ranked pairs to report")
	flag.StringVar(&flags.WeightsFile, "w", "", "file with one sequence weight per line")
	flag.StringVar(&flags.TargetID, "t", "", "target name, save the feature archive under it")
	flag.StringVar(&flags.OutDir, "d", ".", "directory for the feature archive")
	flag.StringVar(&flags.MemPlot, "m", "", "filename to write a memory use plot to")
	flag.BoolVar(&flags.Basic, "b", false, "raw mutual information, skip the average product correction")
	flag.BoolVar(&flags.Verbose, "v", false, "print progress chatter")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := mifeat.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(seq.ExitFailure)
	}
	os.Exit(seq.ExitSuccess)
}
