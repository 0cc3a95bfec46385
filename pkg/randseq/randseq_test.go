// 18 Mar 2026

package randseq_test

import (
	"testing"

	"github.com/andrew-torda/rna_mi/pkg/randseq"
)

func TestAlignment(t *testing.T) {
	args := &randseq.Args{Seed: 7, NSeq: 20, Len: 40, Mutate: 0.3,
		Pairs: [][2]int{{3, 17}}}
	msa := randseq.Alignment(args)
	if len(msa) != 20 {
		t.Fatal("want 20 sequences, got", len(msa))
	}
	for _, s := range msa {
		if len(s) != 40 {
			t.Fatal("want length 40, got", len(s))
		}
	}
	pair := map[byte]byte{'A': 'U', 'U': 'A', 'C': 'G', 'G': 'C'}
	for _, s := range msa {
		if pair[s[3]] != s[17] {
			t.Fatal("planted pair not complementary:", string(s[3]), string(s[17]))
		}
	}
	again := randseq.Alignment(args)
	for i := range msa {
		if msa[i] != again[i] {
			t.Fatal("same seed gave different alignments")
		}
	}
}
