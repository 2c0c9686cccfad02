// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "github.com/normstream/unorm/internal/ucd"

// maxDecompExpansion bounds how many code points a single rune can
// decompose into. 18 is the real Unicode maximum (U+FDFA, the Arabic
// ligature curated in internal/ucd); nothing in the tables decomposes
// further.
const maxDecompExpansion = 18

// decomposeInto writes the full, transitive decomposition of r to dst,
// clearing dst first. compat selects compatibility decomposition (used by
// NFKC/NFKD); false selects canonical decomposition (used by NFC/NFD).
//
// Hangul syllables are handled algorithmically. Everything else is
// expanded with a small work stack: pop a code point, look up its
// single-level decomposition, and either push its constituents back onto
// the stack (it decomposes further) or append it to the output (it is a
// leaf). Popping is LIFO, which locally reverses each level of expansion;
// reversing the accumulated output once at the end restores left-to-right
// order.
func decomposeInto(dst *runeBuffer, r rune, compat bool) {
	dst.clear()
	if isHangul(r) {
		if !hangulDecompose(dst, r) {
			// Defensive: isHangul already guarantees this doesn't happen.
			dst.push(r)
		}
		return
	}

	var stack runeBuffer
	stack.push(r)
	for stack.len() > 0 {
		x := stack.pop()
		var d []rune
		if compat {
			d = ucd.Decomposition(x)
		} else {
			d = ucd.CanonicalDecomposition(x)
		}
		if len(d) == 0 {
			dst.push(x)
			continue
		}
		for _, y := range d {
			stack.push(y)
		}
	}
	dst.reverse()
}
