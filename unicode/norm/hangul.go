// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

// Hangul Syllable constants, per the Unicode Hangul Syllable Decomposition
// algorithm (UAX #15, section 16).
const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3 // last Hangul syllable, inclusive

	jamoLBase = 0x1100
	jamoVBase = 0x1161
	jamoTBase = 0x11A7

	jamoLCount = 19
	jamoVCount = 21
	jamoTCount = 28

	jamoNCount = jamoVCount * jamoTCount // 588
	hangulCount = jamoLCount * jamoNCount // 11172
)

// isHangul reports whether r is a precomposed Hangul syllable.
func isHangul(r rune) bool {
	return hangulBase <= r && r <= hangulEnd
}

// hangulDecompose pushes the Jamo decomposition of the Hangul syllable r
// onto dst: an L and a V, and a T only if the syllable has a trailing
// consonant. It reports whether r was a valid Hangul syllable and pushes
// nothing if not; callers are expected to have already checked isHangul,
// so a false return is a defensive fallback, not a normal code path.
// Writing straight into dst instead of returning a slice keeps Hangul
// decomposition allocation-free, matching every other code path through
// the streaming engine.
func hangulDecompose(dst *runeBuffer, r rune) bool {
	si := r - hangulBase
	if si < 0 || si >= hangulCount {
		return false
	}
	l := jamoLBase + si/jamoNCount
	v := jamoVBase + (si%jamoNCount)/jamoTCount
	t := jamoTBase + si%jamoTCount
	dst.push(l)
	dst.push(v)
	if t != jamoTBase {
		dst.push(t)
	}
	return true
}

// hangulComposition composes a and b per the two Hangul composition rules:
// an L and a V compose into an LV syllable, and an LV syllable and a T
// compose into an LVT syllable. It reports false if a and b do not compose.
func hangulComposition(a, b rune) (rune, bool) {
	if li := a - jamoLBase; 0 <= li && li < jamoLCount {
		if vi := b - jamoVBase; 0 <= vi && vi < jamoVCount {
			return hangulBase + (li*jamoVCount+vi)*jamoTCount, true
		}
		return 0, false
	}
	if si := a - hangulBase; 0 <= si && si < hangulCount && si%jamoTCount == 0 {
		if ti := b - jamoTBase; 0 < ti && ti < jamoTCount {
			return a + ti, true
		}
	}
	return 0, false
}
