// 3 Aug 2020, rewritten 20 Mar 2026

// Count the sequences in a fasta file and say which pseudocount the
// coupling calculation would pick for an alignment of that depth.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/andrew-torda/rna_mi/pkg/mi"
	"github.com/andrew-torda/rna_mi/pkg/numseq"
	"github.com/andrew-torda/rna_mi/pkg/seq"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "filename")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(seq.ExitUsageError)
	}
	fname := os.Args[1]
	nOccur, err := numseq.Count(fname)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(nOccur, "sequences, adaptive pseudocount", mi.AdaptivePseudocount(nOccur))
	os.Exit(seq.ExitSuccess)
}
