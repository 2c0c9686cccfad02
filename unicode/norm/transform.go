// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"unicode/utf8"

	"github.com/normstream/unorm/transform"
)

// dstSink is the sink used by Transform: it writes emitted code points
// directly into the caller's dst slice and flags overflow instead of
// growing, so Transform can detect ErrShortDst and roll back to the last
// code point it fully committed.
type dstSink struct {
	dst      []byte
	n        int
	overflow bool
}

func (s *dstSink) emit(r rune) {
	if s.overflow {
		return
	}
	var tmp [utf8.UTFMax]byte
	size := utf8.EncodeRune(tmp[:], r)
	if s.n+size > len(s.dst) {
		s.overflow = true
		return
	}
	copy(s.dst[s.n:], tmp[:size])
	s.n += size
}

// Transform implements transform.Transformer, normalizing src into dst
// incrementally. Because a new engine is built fresh on every call rather
// than persisted across calls, nSrc only ever advances up to the start of
// the segment currently sitting unflushed inside the engine's outBuf.
// That start moves forward every time a rune's processing flushes
// whatever the buffer held going in (the flushed bytes are already in
// dst, so the segment left behind began with the rune being processed,
// not some earlier one); it never moves backward. The caller presents
// the whole unflushed segment again, together with whatever new bytes
// follow, on the next call. This trades a little re-decoding at chunk
// boundaries for a Transformer with no state to carry between calls.
//
// Because the underlying engine's buffers are bounded, a single call may
// need to write up to maxBufferSize code points at once; callers should
// either grow dst on ErrShortDst or give dst enough room to guarantee
// progress.
func (f Form) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	sk := &dstSink{dst: dst}
	eng := newEngine(f, sk)

	n := len(src)
	i := 0
	segStart := 0
	for i < n {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 && !atEOF && !utf8.FullRune(src[i:]) {
			err = transform.ErrShortSrc
			break
		}
		isLast := atEOF && i+size >= n
		runeStart := i
		wasEmpty := eng.outBuf.len() == 0

		savedEng := *eng
		savedN := sk.n
		sk.overflow = false

		eng.processRune(r, isLast)

		if sk.overflow {
			*eng = savedEng
			sk.n = savedN
			err = transform.ErrShortDst
			break
		}
		i += size
		flushed := sk.n != savedN
		switch {
		case eng.outBuf.len() == 0:
			// Everything through i has been fully emitted: safe to
			// report all of it as consumed.
			segStart = i
		case wasEmpty, flushed:
			// Either the buffer was empty before this rune (so this
			// rune starts a fresh segment), or processing this rune
			// flushed whatever the buffer held before it (so anything
			// left over was pushed while decomposing this rune, not
			// carried from an earlier one). Either way the still-
			// buffered content begins here, not at the old segStart.
			segStart = runeStart
		}
		// Otherwise the buffer neither emptied nor flushed: it is still
		// the same unflushed segment that began at the existing
		// segStart, so segStart must not move forward.
	}

	if err == nil && !atEOF && segStart < n {
		err = transform.ErrShortSrc
	}
	return sk.n, segStart, err
}
