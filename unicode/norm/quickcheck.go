// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"github.com/normstream/unorm/internal/runeio"
	"github.com/normstream/unorm/internal/ucd"
)

// scanQuickCheck implements the quick-check predicate: a single
// left-to-right pass answering "is this already in form f" with
// Yes/No/Maybe, without decomposing anything. next must return ok=false
// once the input is exhausted.
//
// An earlier variant of this scan skipped one code point after any code
// point in the supplementary private-use ranges (a heuristic apparently
// tied to a UTF-16 surrogate-pair worldview, see the design notes). This
// rewrite operates on code points throughout and drops that skip: it has
// no basis in UAX #15's quick-check algorithm, and the tables this
// package curates contain no supplementary private-use code points for
// it to matter to either way.
func scanQuickCheck(next func() (rune, bool), f Form) qcStatus {
	var lastCanonicalClass uint8
	status := qcYes
	for {
		c, ok := next()
		if !ok {
			return status
		}
		ccc := ucd.Combining(c)
		if lastCanonicalClass > ccc && ccc != 0 {
			return qcNo
		}
		switch check := isAllowed(ucd.QuickCheck(c), f); check {
		case qcNo:
			return qcNo
		case qcMaybe:
			status = qcMaybe
		}
		lastCanonicalClass = ccc
	}
}

func isNFBytes(b []byte, f Form) bool {
	i := 0
	next := func() (rune, bool) {
		if i >= len(b) {
			return 0, false
		}
		r, size := runeio.DecodeInBytes(b, i)
		i += size
		return r, true
	}
	return scanQuickCheck(next, f) == qcYes
}

func isNFString(s string, f Form) bool {
	i := 0
	next := func() (rune, bool) {
		if i >= len(s) {
			return 0, false
		}
		r, size := runeio.DecodeInString(s, i)
		i += size
		return r, true
	}
	return scanQuickCheck(next, f) == qcYes
}
