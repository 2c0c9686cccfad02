// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucd

// pair is a composition key. Named distinctly from a plain [2]rune so that
// the compositions map reads as a property table, not raw arithmetic on
// code points.
type pair struct {
	a, b rune
}

// canonicalDecomp holds the single-level canonical ("tag-less") decomposition
// of every code point this package knows about that has one. Multi-level
// decompositions (e.g. 0xFB2C, 0x1D160) are expressed as a chain: the
// decomposer in unicode/norm is responsible for the transitive expansion.
var canonicalDecomp = map[rune][]rune{
	// Latin-1 Supplement, upper case.
	0x00C0: {0x0041, 0x0300}, // À
	0x00C1: {0x0041, 0x0301}, // Á
	0x00C2: {0x0041, 0x0302}, // Â
	0x00C3: {0x0041, 0x0303}, // Ã
	0x00C4: {0x0041, 0x0308}, // Ä
	0x00C5: {0x0041, 0x030A}, // Å
	0x00C7: {0x0043, 0x0327}, // Ç
	0x00C8: {0x0045, 0x0300}, // È
	0x00C9: {0x0045, 0x0301}, // É
	0x00CA: {0x0045, 0x0302}, // Ê
	0x00CB: {0x0045, 0x0308}, // Ë
	0x00CC: {0x0049, 0x0300}, // Ì
	0x00CD: {0x0049, 0x0301}, // Í
	0x00CE: {0x0049, 0x0302}, // Î
	0x00CF: {0x0049, 0x0308}, // Ï
	0x00D1: {0x004E, 0x0303}, // Ñ
	0x00D2: {0x004F, 0x0300}, // Ò
	0x00D3: {0x004F, 0x0301}, // Ó
	0x00D4: {0x004F, 0x0302}, // Ô
	0x00D5: {0x004F, 0x0303}, // Õ
	0x00D6: {0x004F, 0x0308}, // Ö
	0x00D9: {0x0055, 0x0300}, // Ù
	0x00DA: {0x0055, 0x0301}, // Ú
	0x00DB: {0x0055, 0x0302}, // Û
	0x00DC: {0x0055, 0x0308}, // Ü
	0x00DD: {0x0059, 0x0301}, // Ý

	// Latin-1 Supplement, lower case.
	0x00E0: {0x0061, 0x0300}, // à
	0x00E1: {0x0061, 0x0301}, // á
	0x00E2: {0x0061, 0x0302}, // â
	0x00E3: {0x0061, 0x0303}, // ã
	0x00E4: {0x0061, 0x0308}, // ä
	0x00E5: {0x0061, 0x030A}, // å
	0x00E7: {0x0063, 0x0327}, // ç
	0x00E8: {0x0065, 0x0300}, // è
	0x00E9: {0x0065, 0x0301}, // é
	0x00EA: {0x0065, 0x0302}, // ê
	0x00EB: {0x0065, 0x0308}, // ë
	0x00EC: {0x0069, 0x0300}, // ì
	0x00ED: {0x0069, 0x0301}, // í
	0x00EE: {0x0069, 0x0302}, // î
	0x00EF: {0x0069, 0x0308}, // ï
	0x00F1: {0x006E, 0x0303}, // ñ
	0x00F2: {0x006F, 0x0300}, // ò
	0x00F3: {0x006F, 0x0301}, // ó
	0x00F4: {0x006F, 0x0302}, // ô
	0x00F5: {0x006F, 0x0303}, // õ
	0x00F6: {0x006F, 0x0308}, // ö
	0x00F9: {0x0075, 0x0300}, // ù
	0x00FA: {0x0075, 0x0301}, // ú
	0x00FB: {0x0075, 0x0302}, // û
	0x00FC: {0x0075, 0x0308}, // ü
	0x00FD: {0x0079, 0x0301}, // ý
	0x00FF: {0x0079, 0x0308}, // ÿ

	// Latin Extended Additional, dot-above / dot-below pair used by the
	// conformance literals in UAX #15.
	0x1E0A: {0x0044, 0x0307}, // Ḋ LATIN CAPITAL LETTER D WITH DOT ABOVE
	0x1E0C: {0x0044, 0x0323}, // Ḍ LATIN CAPITAL LETTER D WITH DOT BELOW

	// Greek, the two textbook "longest decomposition" examples.
	0x0390: {0x03B9, 0x0308, 0x0301}, // ΐ GREEK SMALL LETTER IOTA WITH DIALYTIKA AND TONOS
	0x1F82: {0x03B1, 0x0313, 0x0300, 0x0345}, // ᾂ GREEK SMALL LETTER ALPHA WITH PSILI AND VARIA AND YPOGEGRAMMENI

	// Hebrew presentation forms: a two-level canonical decomposition that
	// is a full composition exclusion (see qcExcludedFromComposition
	// below), so it does not fully recompose under NFC.
	0xFB49: {0x05E9, 0x05BC},         // שּ HEBREW LETTER SHIN WITH DAGESH
	0xFB2C: {0xFB49, 0x05C1},         // שּׁ HEBREW LETTER SHIN WITH DAGESH AND SHIN DOT

	// Musical symbols: another two-level canonical decomposition that is a
	// full composition exclusion.
	0x1D15F: {0x1D158, 0x1D165}, // MUSICAL SYMBOL QUARTER NOTE
	0x1D160: {0x1D15F, 0x1D16E}, // MUSICAL SYMBOL SIXTEENTH NOTE
}

// compatOnlyDecomp holds compatibility decompositions for code points that
// have no canonical decomposition at all (Decomposition falls back to
// canonicalDecomp for everything else).
var compatOnlyDecomp = map[rune][]rune{
	// The textbook maximum-expansion example: an eighteen-code-point
	// Arabic ligature.
	0xFDFA: {
		0x0635, 0x0644, 0x0649, 0x0020, 0x0627, 0x0644, 0x0644, 0x0647,
		0x0020, 0x0639, 0x0644, 0x064A, 0x0647, 0x0020, 0x0648, 0x0633,
		0x0644, 0x0645,
	}, // ﷺ ARABIC LIGATURE SALLALLAHOU ALAYHE WASALLAM

	0xFB01: {0x0066, 0x0069}, // ﬁ LATIN SMALL LIGATURE FI
	0xFB02: {0x0066, 0x006C}, // ﬂ LATIN SMALL LIGATURE FL
	0x00B2: {0x0032},         // ² SUPERSCRIPT TWO
	0x00B3: {0x0033},         // ³ SUPERSCRIPT THREE
	0xFF01: {0x0021},         // ！ FULLWIDTH EXCLAMATION MARK
}

// cccExceptions holds the Canonical_Combining_Class of every code point
// this package knows to be a non-starter. Everything else defaults to 0.
var cccExceptions = map[rune]uint8{
	0x0300: 230, 0x0301: 230, 0x0302: 230, 0x0303: 230, 0x0304: 230,
	0x0305: 230, 0x0306: 230, 0x0307: 230, 0x0308: 230, 0x0309: 230,
	0x030A: 230, 0x030B: 230, 0x030C: 230,
	0x0313: 230, // psili
	0x0316: 220, 0x0317: 220,
	0x0323: 220, 0x0324: 220, 0x0325: 220,
	0x0327: 202, 0x0328: 202,
	0x0345: 240, // iota subscript / ypogegrammeni
	0x05BC: 21,  // Hebrew point dagesh or mapiq
	0x05C1: 24,  // Hebrew point shin dot
	0x1D165: 216, 0x1D16E: 216, // musical combining stem / flag
}

// qcCombinesBackward lists combining marks that appear as the trailing
// element of at least one canonical composition in real Unicode data,
// hence carry NFC_QC/NFKC_QC = Maybe: whether they end up composed away
// depends on what precedes them.
var qcCombinesBackward = []rune{
	0x0300, 0x0301, 0x0302, 0x0303, 0x0304, 0x0306, 0x0307, 0x0308, 0x0309,
	0x030A, 0x030B, 0x030C, 0x0327, 0x0328, 0x0323, 0x0345,
	0x05BC, 0x05C1, 0x1D165, 0x1D16E,
}

// qcExcludedFromComposition lists decomposable code points whose full
// canonical decomposition does not recompose to themselves — Unicode's
// Composition Exclusions. These carry NFC_QC/NFKC_QC = No, and (crucially)
// the pairs that would otherwise reform them are absent from compositions.
var qcExcludedFromComposition = []rune{0xFB49, 0xFB2C, 0x1D15F, 0x1D160}

// compositions holds every primary composite this package knows about,
// excluding the algorithmic Hangul block (handled by unicode/norm's own
// Hangul algorithmics) and excluding the pairs named by
// qcExcludedFromComposition.
var compositions = map[pair]rune{
	{0x0041, 0x0300}: 0x00C0, {0x0041, 0x0301}: 0x00C1,
	{0x0041, 0x0302}: 0x00C2, {0x0041, 0x0303}: 0x00C3,
	{0x0041, 0x0308}: 0x00C4, {0x0041, 0x030A}: 0x00C5,
	{0x0043, 0x0327}: 0x00C7,
	{0x0045, 0x0300}: 0x00C8, {0x0045, 0x0301}: 0x00C9,
	{0x0045, 0x0302}: 0x00CA, {0x0045, 0x0308}: 0x00CB,
	{0x0049, 0x0300}: 0x00CC, {0x0049, 0x0301}: 0x00CD,
	{0x0049, 0x0302}: 0x00CE, {0x0049, 0x0308}: 0x00CF,
	{0x004E, 0x0303}: 0x00D1,
	{0x004F, 0x0300}: 0x00D2, {0x004F, 0x0301}: 0x00D3,
	{0x004F, 0x0302}: 0x00D4, {0x004F, 0x0303}: 0x00D5,
	{0x004F, 0x0308}: 0x00D6,
	{0x0055, 0x0300}: 0x00D9, {0x0055, 0x0301}: 0x00DA,
	{0x0055, 0x0302}: 0x00DB, {0x0055, 0x0308}: 0x00DC,
	{0x0059, 0x0301}: 0x00DD,

	{0x0061, 0x0300}: 0x00E0, {0x0061, 0x0301}: 0x00E1,
	{0x0061, 0x0302}: 0x00E2, {0x0061, 0x0303}: 0x00E3,
	{0x0061, 0x0308}: 0x00E4, {0x0061, 0x030A}: 0x00E5,
	{0x0063, 0x0327}: 0x00E7,
	{0x0065, 0x0300}: 0x00E8, {0x0065, 0x0301}: 0x00E9,
	{0x0065, 0x0302}: 0x00EA, {0x0065, 0x0308}: 0x00EB,
	{0x0069, 0x0300}: 0x00EC, {0x0069, 0x0301}: 0x00ED,
	{0x0069, 0x0302}: 0x00EE, {0x0069, 0x0308}: 0x00EF,
	{0x006E, 0x0303}: 0x00F1,
	{0x006F, 0x0300}: 0x00F2, {0x006F, 0x0301}: 0x00F3,
	{0x006F, 0x0302}: 0x00F4, {0x006F, 0x0303}: 0x00F5,
	{0x006F, 0x0308}: 0x00F6,
	{0x0075, 0x0300}: 0x00F9, {0x0075, 0x0301}: 0x00FA,
	{0x0075, 0x0302}: 0x00FB, {0x0075, 0x0308}: 0x00FC,
	{0x0079, 0x0301}: 0x00FD, {0x0079, 0x0308}: 0x00FF,

	{0x0044, 0x0307}: 0x1E0A,
	{0x0044, 0x0323}: 0x1E0C,
}

// properties is derived at package initialization from the tables above,
// mirroring the split golang.org/x/text's own generator makes between
// hand-tuned source facts and the derived per-rune property struct that the
// algorithm packages actually consume.
var properties map[rune]Properties

func init() {
	properties = make(map[rune]Properties)

	set := func(r rune) *Properties {
		p := properties[r]
		return &p
	}
	put := func(r rune, p Properties) { properties[r] = p }

	for r, ccc := range cccExceptions {
		p := set(r)
		p.CCC = ccc
		put(r, *p)
	}

	for r := range canonicalDecomp {
		p := set(r)
		p.QC |= NFDNo | NFKDNo
		put(r, *p)
	}
	for r := range compatOnlyDecomp {
		p := set(r)
		p.QC |= NFKDNo | NFKCNo
		put(r, *p)
	}

	for _, r := range qcCombinesBackward {
		p := set(r)
		p.QC |= NFCMaybe | NFKCMaybe
		put(r, *p)
	}
	for _, r := range qcExcludedFromComposition {
		p := set(r)
		p.QC |= NFCNo | NFKCNo
		put(r, *p)
	}
}
