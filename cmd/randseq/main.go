// 31 July 2020, rewritten 20 Mar 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/andrew-torda/rna_mi/pkg/randseq"
	"github.com/andrew-torda/rna_mi/pkg/seq"
)

// parsePairs turns "3:17,5:20" into column pairs.
func parsePairs(s string) ([][2]int, error) {
	if s == "" {
		return nil, nil
	}
	var pairs [][2]int
	for _, field := range strings.Split(s, ",") {
		ij := strings.Split(field, ":")
		if len(ij) != 2 {
			return nil, fmt.Errorf("bad pair %q, want i:j", field)
		}
		i, err := strconv.Atoi(ij[0])
		if err != nil {
			return nil, err
		}
		j, err := strconv.Atoi(ij[1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]int{i, j})
	}
	return pairs, nil
}

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.Args
	var pairStr string

	f.Int64Var(&args.Seed, "r", iseed, "random number seed")
	f.Float64Var(&args.Mutate, "m", 0.3, "per-site chance of differing from consensus")
	f.Float64Var(&args.GapFrac, "g", 0, "per-site chance of a gap")
	f.StringVar(&pairStr, "c", "", "column pairs to force to covary, like 3:17,5:20")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(seq.ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Too few args\nrandseq [..] file nseq length")
		f.Usage()
		os.Exit(seq.ExitUsageError)
	}

	var err error
	if args.Pairs, err = parsePairs(pairStr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(seq.ExitUsageError)
	}

	wrtr := os.Stdout
	fname := f.Args()[0]
	if fname != "-" && fname != "" {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(seq.ExitFailure)
		}
		defer ft.Close()
		wrtr = ft
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(f.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[1])
		os.Exit(seq.ExitFailure)
	} else {
		args.NSeq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Args()[2], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[2])
		os.Exit(seq.ExitFailure)
	} else {
		args.Len = int(nlen)
	}
	for i, s := range randseq.Alignment(&args) {
		fmt.Fprintf(wrtr, ">s%d\n%s\n", i, s)
	}
	os.Exit(seq.ExitSuccess)
}
