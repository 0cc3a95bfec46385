// 31 July 2020, rewritten 20 Mar 2026

/*
Randseq makes random nucleotide alignments for testing and
benchmarking.

Usage:

	randseq [options] fname nseq length

will generate nseq sequences of length length and write them in fasta
format to fname, or to standard output if fname is "-".

Flags:

	-r seed
		random number seed
	-m rate
		per-site chance that a sequence differs from the consensus
	-g rate
		per-site chance of a gap instead of a base
	-c pairs
		column pairs forced to covary, written like 3:17,5:20.
		Whatever base a sequence gets at the first column, the
		Watson-Crick partner goes at the second. This gives a
		coupling calculation something to find.

The content is random, but the same seed always gives the same
alignment, so test cases are reproducible.
*/
package main
