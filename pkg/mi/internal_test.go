// 17 Mar 2026
// White box tests for the pieces behind the public entry points.

package mi

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/andrew-torda/rna_mi/pkg/seq"
	"gonum.org/v1/gonum/mat"
)

func closeEnough(x, y float64) bool { return math.Abs(x-y) < 1e-12 }

func strGrp(msa []string) *seq.SeqGrp { return seq.Str2SeqGrp(msa) }

func TestApcCorrectByHand(t *testing.T) {
	raw := mat.NewDense(3, 3, []float64{
		0, 1, 2,
		1, 0, 3,
		2, 3, 0,
	})
	// row means excluding the diagonal: 1.5, 2, 2.5; grand mean 2
	want := [][]float64{
		{0, 1 - 1.5*2.0/2, 2 - 1.5*2.5/2},
		{1 - 2.0*1.5/2, 0, 3 - 2.0*2.5/2},
		{2 - 2.5*1.5/2, 3 - 2.5*2.0/2, 0},
	}
	out := apcCorrect(raw)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !closeEnough(out.At(i, j), want[i][j]) {
				t.Fatal("apc at", i, j, "got", out.At(i, j), "want", want[i][j])
			}
		}
	}
	// symmetry comes for free from a symmetric input
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if out.At(i, j) != out.At(j, i) {
				t.Fatal("apc asymmetric at", i, j)
			}
		}
	}
}

func TestApcZeroGrandMean(t *testing.T) {
	out := apcCorrect(mat.NewDense(4, 4, nil))
	var sum float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum += math.Abs(out.At(i, j))
		}
	}
	if sum != 0 {
		t.Fatal("zero input did not give zero correction")
	}
}

func TestApcOneColumn(t *testing.T) {
	out := apcCorrect(mat.NewDense(1, 1, nil))
	if nr, nc := out.Dims(); nr != 1 || nc != 1 || out.At(0, 0) != 0 {
		t.Fatal("1x1 correction broke")
	}
}

func TestMkWindows(t *testing.T) {
	ss := []struct {
		siteLen, maxLen int
		want            []window
	}{
		{10, 4, []window{{0, 4}, {4, 8}, {8, 10}}},
		{5, 5, []window{{0, 5}}},
		{5, 100, []window{{0, 5}}},
		{6, 3, []window{{0, 3}, {3, 6}}},
	}
	for _, s := range ss {
		got := mkWindows(s.siteLen, s.maxLen)
		if len(got) != len(s.want) {
			t.Fatal("windows(", s.siteLen, s.maxLen, ") gave", got)
		}
		for i := range got {
			if got[i] != s.want[i] {
				t.Fatal("window", i, "got", got[i], "want", s.want[i])
			}
		}
	}
}

func TestTopPairs(t *testing.T) {
	m := mat.NewDense(6, 6, nil)
	set := func(i, j int, v float64) { m.Set(i, j, v); m.Set(j, i, v) }
	set(0, 1, 9) // below separation, must never appear
	set(0, 4, 5)
	set(1, 5, 7)
	set(0, 5, 3)

	got := topPairs(m, 4, 10)
	want := []Pair{{1, 5, 7}, {0, 4, 5}, {0, 5, 3}}
	// with minSep 4 on 6 columns there are only 3 candidates
	if len(got) != 3 {
		t.Fatal("expected 3 candidates, got", got)
	}
	for i := 0; i < 3; i++ {
		if got[i] != want[i] {
			t.Fatal("rank", i, "got", got[i], "want", want[i])
		}
	}

	if got := topPairs(m, 4, 2); len(got) != 2 || got[0] != want[0] {
		t.Fatal("truncation broke:", got)
	}
	if got := topPairs(m, 6, 10); len(got) != 0 {
		t.Fatal("separation filter let something through:", got)
	}
}

// The bounded selection must give exactly what sorting all candidates
// would, including the position tiebreak on equal scores.
func TestTopPairsMatchesFullSort(t *testing.T) {
	const n = 40
	m := mat.NewDense(n, n, nil)
	rnd := rand.New(rand.NewSource(13))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := float64(rnd.Intn(8)) // few levels, so ties happen
			m.Set(i, j, v)
			m.Set(j, i, v)
		}
	}
	for _, minSep := range []int{1, 4} {
		var all []Pair
		for i := 0; i < n; i++ {
			for j := i + minSep; j < n; j++ {
				all = append(all, Pair{I: i, J: j, Score: m.At(i, j)})
			}
		}
		sort.Slice(all, func(a, b int) bool { return rankAbove(all[a], all[b]) })
		for _, maxPairs := range []int{1, 7, 100, len(all), len(all) + 10} {
			got := topPairs(m, minSep, maxPairs)
			want := all
			if len(want) > maxPairs {
				want = want[:maxPairs]
			}
			if len(got) != len(want) {
				t.Fatal("minSep", minSep, "maxPairs", maxPairs,
					"got", len(got), "pairs, want", len(want))
			}
			for k := range want {
				if got[k] != want[k] {
					t.Fatal("rank", k, "got", got[k], "want", want[k])
				}
			}
		}
	}
}

// The smoothed joint must stay consistent with the smoothed
// marginals: summing p(a,b) over b has to give p(a), or the MI sum is
// not well defined.
func TestSmoothedTablesConsistent(t *testing.T) {
	msa := []string{"ACGU", "AC-U", "AGGU", "ACGA"}
	grp := strGrp(msa)
	w := []float64{0.25, 0.25, 0.25, 0.25}
	cc := newPairCtx(grp, w, 0.5)
	nsym := cc.nsym
	den := 1 + 0.5*float64(nsym*nsym)
	for k := range cc.joint {
		cc.joint[k] = 0
	}
	for is, row := range cc.codes.Mat {
		cc.joint[int(row[0])*nsym+int(row[2])] += w[is]
	}
	for a := 0; a < nsym; a++ {
		var sum float64
		for b := 0; b < nsym; b++ {
			sum += (cc.joint[a*nsym+b] + 0.5) / den
		}
		pa := (cc.margin[0][a] + 0.5*float64(nsym)) / den
		if !closeEnough(sum, pa) {
			t.Fatal("marginal", a, "is", pa, "joint sums to", sum)
		}
	}
}

func TestMiPairKnownValue(t *testing.T) {
	// two columns in perfect lockstep, no smoothing: MI equals the
	// column entropy, here 1 bit (A half the time, C the other half)
	msa := []string{"AA", "CC", "AA", "CC"}
	cc := newPairCtx(strGrp(msa), []float64{0.25, 0.25, 0.25, 0.25}, 0)
	if got := cc.miPair(0, 1); !closeEnough(got, 1.0) {
		t.Fatal("lockstep columns: want 1 bit, got", got)
	}
	// independent columns, no smoothing: MI is zero
	msa = []string{"AA", "AC", "CA", "CC"}
	cc = newPairCtx(strGrp(msa), []float64{0.25, 0.25, 0.25, 0.25}, 0)
	if got := cc.miPair(0, 1); !closeEnough(got, 0.0) {
		t.Fatal("independent columns: want 0, got", got)
	}
}
