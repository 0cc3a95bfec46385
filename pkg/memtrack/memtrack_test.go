// 19 Mar 2026

package memtrack_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/rna_mi/pkg/memtrack"
)

func TestLogAndCSV(t *testing.T) {
	var chatter bytes.Buffer
	tr := memtrack.New(&chatter)
	if mb := tr.Log("start"); mb <= 0 {
		t.Fatal("heap reading", mb)
	}
	func() {
		defer tr.Section("work")()
		junk := make([]byte, 1<<20)
		junk[len(junk)-1] = 1
	}()
	if tr.NPoints() != 3 {
		t.Fatal("expected 3 checkpoints, got", tr.NPoints())
	}
	if !strings.Contains(chatter.String(), "starting work") {
		t.Fatal("section start not echoed:", chatter.String())
	}

	var csv bytes.Buffer
	if err := tr.WriteCSV(&csv); err != nil {
		t.Fatal("csv:", err)
	}
	lines := strings.Split(strings.TrimSpace(csv.String()), "\n")
	if len(lines) != 4 { // header + 3 checkpoints
		t.Fatal("csv has", len(lines), "lines")
	}
}

// Two trackers must not share history.
func TestTrackersIndependent(t *testing.T) {
	a, b := memtrack.New(nil), memtrack.New(nil)
	a.Log("only in a")
	if b.NPoints() != 0 {
		t.Fatal("history leaked between trackers")
	}
}

func TestPlot(t *testing.T) {
	tr := memtrack.New(nil)
	if err := tr.Plot("nothing.png"); err == nil {
		t.Fatal("plotting an empty history should fail")
	}
	tr.Log("one")
	tr.Log("two")
	dir := t.TempDir()
	fname := filepath.Join(dir, "mem.png")
	if err := tr.Plot(fname); err != nil {
		t.Fatal("plot:", err)
	}
	if fi, err := os.Stat(fname); err != nil || fi.Size() == 0 {
		t.Fatal("plot file missing or empty")
	}
}
