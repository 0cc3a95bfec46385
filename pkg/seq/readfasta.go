// Reader for fasta format files.

package seq

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const cmmtChar = '>'

// dropWhite removes ascii white space from a byte slice, in place.
// Sequence lines are allowed to contain spaces and we do not want
// them in our alignment columns.
func dropWhite(s []byte) []byte {
	var isWhite = [256]bool{
		'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
	}
	n := 0
	for _, c := range s {
		if !isWhite[c] {
			s[n] = c
			n++
		}
	}
	return s[:n]
}

// ReadFasta reads fasta formatted input into a seqgrp. A record is a
// comment line starting with ">" followed by sequence lines until the
// next comment. A record with no sequence at all is an error, as is
// input with no records.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp) error {
	scnr := bufio.NewScanner(rdr)
	scnr.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var cmmt string
	var s []byte
	var started bool
	flush := func() error {
		if !started {
			return nil
		}
		if len(s) == 0 {
			return errors.New("zero length sequence after " + cmmt)
		}
		seqgrp.seqs = append(seqgrp.seqs, seq{cmmt: cmmt, seq: s})
		s = nil
		return nil
	}
	for scnr.Scan() {
		line := scnr.Bytes()
		if len(line) > 0 && line[0] == cmmtChar {
			if err := flush(); err != nil {
				return err
			}
			cmmt = string(bytes.TrimSpace(line[1:]))
			started = true
			continue
		}
		if !started { // junk before the first ">" line
			if len(bytes.TrimSpace(line)) != 0 {
				return errors.New("sequence data before first comment line")
			}
			continue
		}
		s = append(s, dropWhite(append([]byte(nil), line...))...)
	}
	if err := scnr.Err(); err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}
	if seqgrp.GetNSeq() == 0 {
		return errors.New("no sequences found")
	}
	return nil
}

// Readfile takes a filename and reads sequences from it. An empty
// name means standard input. The group comes back checked, so all
// sequences have the same, non-zero length.
func Readfile(fname string) (*SeqGrp, error) {
	seqgrp := new(SeqGrp)
	var fp io.ReadCloser = os.Stdin
	if fname != "" {
		var err error
		if fp, err = os.Open(fname); err != nil {
			return nil, err
		}
		defer fp.Close()
	}
	if err := ReadFasta(fp, seqgrp); err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	if err := seqgrp.Check(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	return seqgrp, nil
}

// WrtTemp writes a string to a temporary file and returns the
// filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	fTmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}
	if _, err := io.WriteString(fTmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", fTmp.Name())
	}
	name := fTmp.Name()
	fTmp.Close()
	return name, nil
}
