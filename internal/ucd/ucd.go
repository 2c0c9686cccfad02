// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ucd is the property-table collaborator consumed by unicode/norm.
// It answers exactly the five questions the normalization engine needs to
// ask of a code point: its canonical combining class, its quick-check
// status for each of the four forms, its canonical and compatibility
// decompositions, and whether a pair of code points has a primary
// composite.
//
// The full Unicode Character Database is tens of thousands of entries and
// is normally generated offline by a tool such as golang.org/x/text's
// maketables.go; no such generator or database is available here, so this
// package hand-curates
// the code points exercised by the conformance literals in UAX #15 plus a
// representative slice of Latin-1, Greek, Hebrew, Arabic-presentation and
// Supplementary-Musical code points. Every code point not present in the
// tables returns the identity default (CCC 0, no decomposition, quick-check
// Yes for every form), which is the correct answer for the overwhelming
// majority of Unicode and satisfies the stability property that unlisted
// code points normalize to themselves.
package ucd

// QC is a bitmask of per-form quick-check exceptions. The zero value means
// "Yes for every form".
type QC uint8

const (
	NFCNo QC = 1 << iota
	NFCMaybe
	NFKCNo
	NFKCMaybe
	NFDNo
	NFKDNo
)

// Properties is the packed struct returned for a single code point.
type Properties struct {
	CCC uint8
	QC  QC
}

// Get returns the properties of r, or the zero value if r is not in the
// curated tables.
func Get(r rune) Properties {
	p := properties[r]
	return p
}

// Combining returns the Canonical_Combining_Class of r.
func Combining(r rune) uint8 {
	return properties[r].CCC
}

// QuickCheck returns the quick-check bitmask of r.
func QuickCheck(r rune) QC {
	return properties[r].QC
}

// CanonicalDecomposition returns the single-level canonical decomposition
// of r, or nil if r has none. The result must not be mutated by the
// caller.
func CanonicalDecomposition(r rune) []rune {
	return canonicalDecomp[r]
}

// Decomposition returns the single-level compatibility decomposition of r,
// or nil if r has none. For code points that only have a canonical
// decomposition, this returns the same mapping, since NFKD expands both
// canonical and compatibility decompositions transitively.
func Decomposition(r rune) []rune {
	if d, ok := compatOnlyDecomp[r]; ok {
		return d
	}
	return canonicalDecomp[r]
}

// Compose returns the primary composite of the pair (a, b), excluding the
// algorithmic Hangul block, which the caller handles separately.
func Compose(a, b rune) (rune, bool) {
	r, ok := compositions[pair{a, b}]
	return r, ok
}
