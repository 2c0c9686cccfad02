// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

// canonicalSort stably reorders runs of non-starters in buf by Canonical
// Combining Class, keeping ccc in lockstep. Since buf never holds more
// than maxBufferSize entries, a bubble sort with an early exit on a clean
// pass is simple and fast enough: adjacent code points are swapped only
// when both are non-starters (ccc>0) and out of order, per the Unicode
// reorderable-pair rule (D108). Starters are never moved.
func canonicalSort(buf *runeBuffer, ccc *cccBuffer) {
	n := buf.len()
	for {
		swapped := false
		for i := 0; i+1 < n; i++ {
			c0, c1 := ccc.at(i), ccc.at(i+1)
			if c0 > c1 && c1 > 0 {
				buf.data[i], buf.data[i+1] = buf.data[i+1], buf.data[i]
				ccc.data[i], ccc.data[i+1] = ccc.data[i+1], ccc.data[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
