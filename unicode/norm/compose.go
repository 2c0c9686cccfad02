// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "github.com/normstream/unorm/internal/ucd"

// canonicalCompose recomposes buf in place per the "blocked by previous
// non-starter" rule (Unicode D117). It assumes buf has already been
// canonically sorted.
func canonicalCompose(buf *runeBuffer) {
	n := buf.len()
	lastStarterIdx := -1
	lastCCC := -1 // sentinel: no code point buffered yet
	pos := 0

	for i := 0; i < n; i++ {
		c := buf.at(i)

		if lastStarterIdx != -1 && lastStarterIdx+1 == pos {
			if composed, ok := hangulComposition(buf.at(lastStarterIdx), c); ok {
				buf.set(lastStarterIdx, composed)
				lastCCC = 0
				continue
			}
		}

		ccc := int(ucd.Combining(c))

		if lastStarterIdx == -1 {
			if ccc == 0 {
				lastStarterIdx = pos
			}
			buf.set(pos, c)
			pos++
			lastCCC = ccc
			continue
		}

		if lastCCC >= ccc && lastCCC > 0 {
			// Blocked: an intervening non-starter has ccc >= ccc(c).
			buf.set(pos, c)
			pos++
			lastCCC = ccc
			continue
		}

		if composed, ok := ucd.Compose(buf.at(lastStarterIdx), c); ok {
			buf.set(lastStarterIdx, composed)
			lastCCC = 0
			continue
		}

		if ccc == 0 {
			buf.set(pos, c)
			lastStarterIdx = pos
			pos++
			lastCCC = 0
			continue
		}

		buf.set(pos, c)
		pos++
		lastCCC = ccc
	}

	buf.setLen(pos)
}
