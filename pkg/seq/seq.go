// 14 Mar 2026

// Package seq holds a multiple sequence alignment and the machinery
// for turning it into per-column symbol tables. Sequences usually
// begin their lives in fasta format, but tests and callers can also
// build a group directly from strings.
package seq

import (
	"errors"
	"fmt"
	"strings"
)

// A gap is always a minus sign. Dots and other conventions get
// converted on the way in, or not at all. We do not care here.
const GapChar byte = '-'

// We only read ascii characters, so anything at or above this is not valid.
const MaxSym uint8 = 127

const badMap = 255 // marks a symbol as not seen in the mapping table

// Exit codes shared by the command line programs.
const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Errors a caller can test for with errors.Is. Anything wrong with an
// alignment is found before any statistics are calculated.
var (
	ErrEmptyAln  = errors.New("empty alignment")
	ErrRaggedAln = errors.New("sequences of unequal length")
	ErrBadSymbol = errors.New("symbol outside the ascii range")
)

// seq is one sequence with its comment from the fasta file.
type seq struct {
	cmmt string
	seq  []byte
}

// GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// GetCmmt returns the comment, without the leading ">"
func (s seq) GetCmmt() string { return s.cmmt }

// Len returns the sequence length
func (s seq) Len() int { return len(s.seq) }

// Upper changes a sequence to upper case, in place. It only works
// with bytes, not runes. Symbols at MaxSym or above are an error.
func (s *seq) Upper() error {
	const diff = 'a' - 'A'
	for i, c := range s.seq {
		if c >= MaxSym {
			return fmt.Errorf("bad symbol %q at position %d in %q", c, i, s.cmmt)
		}
		if 'a' <= c && c <= 'z' {
			s.seq[i] -= diff
		}
	}
	return nil
}

// SeqGrp is a group of aligned sequences with bookkeeping for the
// symbols that actually occur. mapping['C'] tells me which row of a
// count table belongs to C. revmap goes the other way.
type SeqGrp struct {
	symUsed  [MaxSym]bool
	mapping  [MaxSym]uint8
	revmap   []uint8
	seqs     []seq
	usedKnwn bool
}

// GetNSeq returns the number of sequences
func (seqgrp *SeqGrp) GetNSeq() int { return len(seqgrp.seqs) }

// GetLen returns the length of the first sequence. After Check has
// been called, this is the length of every sequence.
func (seqgrp *SeqGrp) GetLen() int {
	if len(seqgrp.seqs) == 0 {
		return 0
	}
	return len(seqgrp.seqs[0].GetSeq())
}

// GetSeqSlc returns the slice of sequences
func (seqgrp *SeqGrp) GetSeqSlc() []seq { return seqgrp.seqs }

// GetMap tells us which count-table row holds tallies for symbol c.
func (seqgrp *SeqGrp) GetMap(c byte) uint8 { return seqgrp.mapping[c] }

// GetRevmap returns the symbol stored in each count-table row.
func (seqgrp *SeqGrp) GetRevmap() []uint8 {
	if len(seqgrp.revmap) == 0 {
		seqgrp.mapsyms()
	}
	return seqgrp.revmap
}

// GetNSym returns the number of distinct symbols used in the group.
func (seqgrp *SeqGrp) GetNSym() int {
	if len(seqgrp.revmap) == 0 {
		seqgrp.mapsyms()
	}
	return len(seqgrp.revmap)
}

// Check makes sure the group really is an alignment. Zero sequences
// or zero-length sequences give ErrEmptyAln. Differing lengths give
// ErrRaggedAln. Bytes at or above MaxSym give ErrBadSymbol, since the
// symbol tables are sized for ascii and would be indexed out of range.
// Nothing downstream should run if this fails.
func (seqgrp *SeqGrp) Check() error {
	if len(seqgrp.seqs) == 0 {
		return fmt.Errorf("no sequences: %w", ErrEmptyAln)
	}
	want := seqgrp.seqs[0].Len()
	if want == 0 {
		return fmt.Errorf("zero length sequences: %w", ErrEmptyAln)
	}
	for i, ss := range seqgrp.seqs {
		if l := ss.Len(); l != want {
			return fmt.Errorf("sequence %d has length %d, first has %d: %w",
				i, l, want, ErrRaggedAln)
		}
		for _, c := range ss.GetSeq() {
			if c >= MaxSym {
				return fmt.Errorf("sequence %d has byte %#x: %w",
					i, c, ErrBadSymbol)
			}
		}
	}
	return nil
}

// NDistinct counts the distinct sequences in the group, stopping as
// soon as it has seen want of them. Comparison is byte exact, so case
// matters. With want = 2 this is a cheap test for an alignment that
// carries no covariation signal at all.
func (seqgrp *SeqGrp) NDistinct(want int) int {
	seen := make(map[string]struct{}, want)
	for _, s := range seqgrp.seqs {
		seen[string(s.GetSeq())] = struct{}{}
		if len(seen) >= want {
			break
		}
	}
	return len(seen)
}

// Upper uppercases all the members of a group of sequences.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	return nil
}

// SetSymUsed fills out the table which says whether or not a symbol
// occurs anywhere in the group.
func (seqgrp *SeqGrp) SetSymUsed() {
	for _, ss := range seqgrp.seqs {
		for _, c := range ss.GetSeq() {
			seqgrp.symUsed[c] = true
		}
	}
	seqgrp.usedKnwn = true
}

// mapsyms looks at the symbols (characters, bases) used in a seqgrp
// and makes the little arrays for mapping between symbols and
// count-table rows.
func (seqgrp *SeqGrp) mapsyms() {
	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	for i := range seqgrp.mapping { // Initialise with bad value, to
		seqgrp.mapping[i] = badMap // trap errors later
	}
	var n uint8
	for i := range seqgrp.symUsed {
		if seqgrp.symUsed[i] {
			seqgrp.mapping[i] = n
			seqgrp.revmap = append(seqgrp.revmap, uint8(i))
			n++
		}
	}
}

// FindNdx returns the index of the sequence whose comment contains a
// string. Numbering starts from zero. -1 means not found.
func (seqgrp *SeqGrp) FindNdx(s string) int {
	s = strings.TrimLeft(s, " >\t")
	for i, sq := range seqgrp.seqs {
		if strings.Contains(sq.GetCmmt(), s) {
			return i
		}
	}
	return -1
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is optional. Sequences need names, so without a prefix they
// are called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	seqgrp := new(SeqGrp)
	for i, s := range sIn {
		seqgrp.seqs = append(seqgrp.seqs,
			seq{cmmt: fmt.Sprint(base, i), seq: []byte(s)})
	}
	return seqgrp
}

// Strings returns the sequences as plain strings, in order.
func (seqgrp *SeqGrp) Strings() []string {
	out := make([]string, len(seqgrp.seqs))
	for i, s := range seqgrp.seqs {
		out[i] = string(s.GetSeq())
	}
	return out
}
