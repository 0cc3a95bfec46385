// 18 Mar 2026

// Package randseq makes random nucleotide alignments for testing and
// benchmarking. The alignments can be pure noise, or have chosen
// column pairs forced to covary so a coupling calculation has
// something to find.
package randseq

import (
	"math/rand"
)

var bases = []byte{'A', 'C', 'G', 'U'}

// partner pairs each base with its Watson-Crick partner, which is how
// we plant covariation: whatever base a sequence has at column i, the
// partner goes at column j.
var partner = map[byte]byte{'A': 'U', 'U': 'A', 'C': 'G', 'G': 'C'}

// Args says what kind of alignment to make.
type Args struct {
	Seed    int64
	NSeq    int
	Len     int
	Mutate  float64  // per-site chance a sequence differs from consensus
	GapFrac float64  // per-site chance of a gap instead of a base
	Pairs   [][2]int // column pairs forced to covary
}

// Alignment returns NSeq random sequences of length Len. All
// sequences start from one random consensus, then mutate and gap
// sites independently, then the planted pairs are overwritten with
// complementary bases. The same Args always give the same alignment.
func Alignment(args *Args) []string {
	rnd := rand.New(rand.NewSource(args.Seed))
	consensus := make([]byte, args.Len)
	for i := range consensus {
		consensus[i] = bases[rnd.Intn(len(bases))]
	}
	msa := make([]string, args.NSeq)
	for is := 0; is < args.NSeq; is++ {
		s := make([]byte, args.Len)
		copy(s, consensus)
		for i := range s {
			if rnd.Float64() < args.Mutate {
				s[i] = bases[rnd.Intn(len(bases))]
			}
			if rnd.Float64() < args.GapFrac {
				s[i] = '-'
			}
		}
		for _, p := range args.Pairs {
			b := bases[rnd.Intn(len(bases))]
			s[p[0]] = b
			s[p[1]] = partner[b]
		}
		msa[is] = string(s)
	}
	return msa
}
