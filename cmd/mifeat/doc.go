// 20 Mar 2026

/*
Mifeat reads a multiple sequence alignment in fasta format and
calculates a mutual information coupling matrix over the columns.
By default the average product correction is applied, which removes
most of the background signal that comes from columns which are simply
variable, rather than co-varying. The ranked pairs are written as a
csv file with a header line which programs like excel like, but
gnuplot is less keen on.

Given no explicit input path, it reads from standard input. Given no
output filename, it writes to standard output.

Probabilities are smoothed with a pseudocount. Left to itself, the
program picks one based on how deep the alignment is. Small alignments
get heavy smoothing, big ones get none. Use -p to force a value, and
-p 0 to turn smoothing off.

Usage:

	mifeat [flags] [input [output]]

The flags are:

	-p pseudocount
		Force a pseudocount. A negative value, the default, lets the
		program choose from the number of sequences.
	-c chunksize
		Work on column chunks of this many columns at a time. The
		numbers do not change, only the working set size.
	-s separation
		Do not report pairs closer than this along the sequence.
	-n npairs
		How many ranked pairs to report.
	-w weightsfile
		Read one weight per sequence from this file, one per line.
		Weights must be non-negative and sum to one.
	-t target
		A name for this alignment. If given, the full feature set,
		matrices and all, is saved as a compressed archive named
		after it.
	-d directory
		Where the feature archive goes. Default is the current
		directory.
	-m plotfile
		Write a plot of memory use over the run. The suffix picks
		the format (.png, .pdf, .svg).
	-b
		Report raw mutual information with no correction.
	-v
		Chatter about progress on standard error.
*/
package main
