// 20 Mar 2026

package mifeat_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/rna_mi/pkg/mi"
	"github.com/andrew-torda/rna_mi/pkg/mifeat"
	"github.com/andrew-torda/rna_mi/pkg/seq"
	"github.com/andrew-torda/rna_mi/pkg/store"
)

var smallMsa = []string{
	"ACGUACGU",
	"ACGCACGU",
	"ACGAACGU",
	"ACGCACGU",
}

func wrtMsa(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	for i, s := range smallMsa {
		b.WriteString(">s")
		b.WriteByte(byte('0' + i))
		b.WriteByte('\n')
		b.WriteString(s)
		b.WriteByte('\n')
	}
	infile, err := seq.WrtTemp(b.String())
	if err != nil {
		t.Fatal("fail writing test file")
	}
	return infile
}

// End to end: fasta in, ranked pairs and a feature archive out.
func TestMymain(t *testing.T) {
	infile := wrtMsa(t)
	defer os.Remove(infile)

	dir := t.TempDir()
	outfile := filepath.Join(dir, "pairs.csv")
	flags := mifeat.CmdFlag{
		Pseudocount: -1, // adaptive
		MinSep:      1,
		MaxPairs:    5,
		TargetID:    "rna_test",
		OutDir:      dir,
	}
	if err := mifeat.Mymain(&flags, infile, outfile); err != nil {
		t.Fatal("mymain:", err)
	}

	out, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal("pairs file:", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 6 { // header + 5 pairs
		t.Fatal("pairs file has", len(lines), "lines")
	}
	if lines[0] != `"i","j","score"` {
		t.Fatal("bad header:", lines[0])
	}

	r, err := store.Load(dir, "rna_test")
	if err != nil {
		t.Fatal("loading archive:", err)
	}
	if r.Method != mi.MethodEnhanced {
		t.Fatal("archive method:", r.Method)
	}
	if got := r.Params.Pseudocount; got != 0.5 { // 4 sequences
		t.Fatal("archive pseudocount:", got)
	}
	if len(r.TopPairs) != 5 {
		t.Fatal("archive has", len(r.TopPairs), "pairs")
	}
}

func TestMymainWeightsFile(t *testing.T) {
	infile := wrtMsa(t)
	defer os.Remove(infile)

	wfile, err := seq.WrtTemp("# hand tuned\n0.4\n0.3\n0.2\n0.1\n")
	if err != nil {
		t.Fatal("fail writing weights file")
	}
	defer os.Remove(wfile)

	dir := t.TempDir()
	flags := mifeat.CmdFlag{
		Pseudocount: 0.2,
		WeightsFile: wfile,
		TargetID:    "weighted",
		OutDir:      dir,
	}
	if err := mifeat.Mymain(&flags, infile, filepath.Join(dir, "p.csv")); err != nil {
		t.Fatal("mymain:", err)
	}
	r, err := store.Load(dir, "weighted")
	if err != nil {
		t.Fatal("loading archive:", err)
	}
	if r.Params.UniformWeights {
		t.Fatal("weights file ignored")
	}
	if len(r.Params.Weights) != 4 || r.Params.Weights[0] != 0.4 {
		t.Fatal("weights not recorded:", r.Params.Weights)
	}
}

func TestMymainBadInput(t *testing.T) {
	flags := mifeat.CmdFlag{Pseudocount: -1}
	if err := mifeat.Mymain(&flags, "/no/such/alignment.fa", ""); err == nil {
		t.Fatal("missing input did not give an error")
	}
}
