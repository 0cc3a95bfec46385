// 19 Mar 2026

// Package memtrack records memory use over the course of one run.
// A Tracker is made per run and passed around explicitly. There is no
// package level history on purpose: several targets may be processed
// concurrently by a batch runner and their histories must not mix.
package memtrack

import (
	"fmt"
	"io"
	"runtime"
	"time"
)

// Point is one labelled checkpoint.
type Point struct {
	When   time.Time
	Label  string
	HeapMB float64
}

// Tracker accumulates checkpoints for one run.
type Tracker struct {
	start  time.Time
	points []Point
	wrtr   io.Writer // nil means keep quiet
}

// New makes a tracker. Checkpoints are echoed to wrtr as they happen,
// or recorded silently if wrtr is nil.
func New(wrtr io.Writer) *Tracker {
	return &Tracker{start: time.Now(), wrtr: wrtr}
}

// heapMB asks the runtime how much heap is live right now.
func heapMB() float64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return float64(ms.HeapAlloc) / (1024 * 1024)
}

// Log records a labelled checkpoint and returns the heap use in
// megabytes at that moment.
func (tr *Tracker) Log(label string) float64 {
	mb := heapMB()
	tr.points = append(tr.points, Point{When: time.Now(), Label: label, HeapMB: mb})
	if tr.wrtr != nil {
		fmt.Fprintf(tr.wrtr, "%s: %.1f MB\n", label, mb)
	}
	return mb
}

// Section brackets a stretch of code. Use as
//
//	defer tr.Section("pairwise MI")()
//
// It logs at entry, and the returned function logs again and reports
// the elapsed time.
func (tr *Tracker) Section(label string) func() {
	t0 := time.Now()
	before := tr.Log("starting " + label)
	return func() {
		after := tr.Log("finished " + label)
		if tr.wrtr != nil {
			fmt.Fprintf(tr.wrtr, "%s took %d ms, heap %+.1f MB\n",
				label, time.Since(t0).Milliseconds(), after-before)
		}
	}
}

// NPoints says how many checkpoints have been recorded.
func (tr *Tracker) NPoints() int { return len(tr.points) }

// WriteCSV dumps the history for plotting with some other program.
func (tr *Tracker) WriteCSV(wrtr io.Writer) error {
	if _, err := fmt.Fprintln(wrtr, `"seconds","heap_mb","label"`); err != nil {
		return err
	}
	for _, p := range tr.points {
		secs := p.When.Sub(tr.start).Seconds()
		if _, err := fmt.Fprintf(wrtr, "%.3f,%.2f,%q\n", secs, p.HeapMB, p.Label); err != nil {
			return err
		}
	}
	return nil
}
