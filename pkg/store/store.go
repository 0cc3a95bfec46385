// 18 Mar 2026

// Package store saves coupling results to disk and gets them back.
// One target gets one compressed archive, named after the target, so
// a batch runner upstream can come back later and pick out the
// features it wants. The numbers must survive the round trip bit for
// bit, which gob gives us for free.
package store

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andrew-torda/rna_mi/pkg/mi"
	"gonum.org/v1/gonum/mat"
)

const suffix = "_mi_features.gob.gz"

// Path says where the archive for a target lives under dir.
func Path(dir, targetID string) string {
	return filepath.Join(dir, targetID+suffix)
}

// archive is the on-disk form of a result. Matrices go as flat
// row-major slices. The aliases are not stored, they are rebuilt on
// loading from the method label.
type archive struct {
	TargetID string
	Method   string
	SiteLen  int
	MI       []float64
	APC      []float64 // nil on the basic path
	TopPairs []mi.Pair
	Params   mi.Params
}

// flat copies a matrix out as one row-major slice.
func flat(m *mat.Dense) []float64 {
	if m == nil {
		return nil
	}
	nr, nc := m.Dims()
	out := make([]float64, 0, nr*nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

// Save writes a result to dir, keyed by targetID. The directory is
// created if need be. A record that fails its own consistency check
// is refused rather than written, so a broken archive is never the
// thing a later run trips over.
func Save(dir, targetID string, r *mi.Result) error {
	if err := r.Check(); err != nil {
		return fmt.Errorf("refusing to save %s: %w", targetID, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("feature dir %s: %w", dir, err)
	}
	siteLen, _ := r.MI.Dims()
	arch := archive{
		TargetID: targetID,
		Method:   r.Method,
		SiteLen:  siteLen,
		MI:       flat(r.MI),
		APC:      flat(r.APC),
		TopPairs: r.TopPairs,
		Params:   r.Params,
	}
	fp, err := os.Create(Path(dir, targetID))
	if err != nil {
		return fmt.Errorf("feature archive: %w", err)
	}
	defer fp.Close()
	zw := gzip.NewWriter(fp)
	if err := gob.NewEncoder(zw).Encode(&arch); err != nil {
		return fmt.Errorf("encoding features for %s: %w", targetID, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive for %s: %w", targetID, err)
	}
	return nil
}

// Load reads the archive for a target back into a result. The alias
// fields point where the method label says they should: the corrected
// matrix on the enhanced path, the raw one otherwise.
func Load(dir, targetID string) (*mi.Result, error) {
	fp, err := os.Open(Path(dir, targetID))
	if err != nil {
		return nil, fmt.Errorf("feature archive: %w", err)
	}
	defer fp.Close()
	zr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, fmt.Errorf("reading archive for %s: %w", targetID, err)
	}
	defer zr.Close()
	var arch archive
	if err := gob.NewDecoder(zr).Decode(&arch); err != nil {
		return nil, fmt.Errorf("decoding features for %s: %w", targetID, err)
	}

	n := arch.SiteLen
	r := &mi.Result{
		MI:       mat.NewDense(n, n, arch.MI),
		Method:   arch.Method,
		TopPairs: arch.TopPairs,
		Params:   arch.Params,
	}
	if arch.APC != nil {
		r.APC = mat.NewDense(n, n, arch.APC)
	}
	if r.Method == mi.MethodEnhanced && r.APC != nil {
		r.Scores, r.Coupling = r.APC, r.APC
	} else {
		r.Scores, r.Coupling = r.MI, r.MI
	}
	if err := r.Check(); err != nil {
		return nil, fmt.Errorf("archive for %s: %w", targetID, err)
	}
	return r, nil
}
