// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "github.com/normstream/unorm/internal/ucd"

// window drives one side of a canonical-equivalence comparison. It shares
// the streaming engine's decompose/accumulate/safe-break machinery but,
// instead of flushing to a sink, it stops as soon as a window is full and
// hands the triggering code point to the next window — no composition,
// no grapheme-joiner insertion, since a comparison only needs decomposed,
// reordered chunks to line up.
type window struct {
	src    source
	srcPos int

	dcpBuf runeBuffer
	dcpIdx int

	outBuf runeBuffer
	cccBuf cccBuffer

	pendingValid bool
	pendingRune  rune
	pendingCCC   uint8

	exhausted bool
}

func newWindow(src source) *window {
	return &window{src: src}
}

// nextDecomposed returns the next canonically-decomposed code point across
// the whole input, decoding a fresh input rune whenever the current one's
// decomposition is exhausted. ok is false once there is nothing left.
func (w *window) nextDecomposed() (d rune, ccc uint8, isLastInput bool, ok bool) {
	if w.dcpIdx >= w.dcpBuf.len() {
		if w.srcPos >= w.src.len() {
			return 0, 0, false, false
		}
		r, size := w.src.decode(w.srcPos)
		w.srcPos += size
		decomposeInto(&w.dcpBuf, r, false)
		w.dcpIdx = 0
	}
	d = w.dcpBuf.at(w.dcpIdx)
	ccc = ucd.Combining(d)
	isLastDcp := w.dcpIdx == w.dcpBuf.len()-1
	isLastInput = isLastDcp && w.srcPos >= w.src.len()
	w.dcpIdx++
	return d, ccc, isLastInput, true
}

// fill advances the window to its next full segment: a starter (or the
// very start of input) up to, but not including, the next safe break.
// The final segment of the input includes its terminating code point
// even if that code point is itself a safe break, matching the streaming
// engine's own end-of-input handling.
func (w *window) fill() {
	w.outBuf.clear()
	w.cccBuf.clear()

	if w.pendingValid {
		w.outBuf.push(w.pendingRune)
		w.cccBuf.push(w.pendingCCC)
		w.pendingValid = false
	}

	for {
		d, ccc, finished, ok := w.nextDecomposed()
		if !ok {
			w.exhausted = true
			return
		}
		qc := isAllowed(ucd.QuickCheck(d), NFD)
		safeBreak := qc == qcYes && ccc == 0
		mustBreak := finished || safeBreak || w.outBuf.spaceLeft() == 1

		if mustBreak && w.outBuf.len() > 0 {
			if finished {
				w.outBuf.push(d)
				w.cccBuf.push(ccc)
				w.exhausted = true
			} else {
				w.pendingValid = true
				w.pendingRune = d
				w.pendingCCC = ccc
			}
			return
		}

		w.outBuf.push(d)
		w.cccBuf.push(ccc)
		if finished {
			w.exhausted = true
			return
		}
	}
}

// cmpNfd reports whether a and b are canonically equivalent, without
// materializing either NFD form: it drives two windows in lockstep,
// comparing sorted segments pairwise and stopping at the first mismatch.
func cmpNfd(a, b source) bool {
	wa := newWindow(a)
	wb := newWindow(b)
	for {
		wa.fill()
		wb.fill()
		canonicalSort(&wa.outBuf, &wa.cccBuf)
		canonicalSort(&wb.outBuf, &wb.cccBuf)
		if !wa.outBuf.equal(&wb.outBuf) {
			return false
		}
		if wa.outBuf.len() == 0 && wb.outBuf.len() == 0 {
			return true
		}
	}
}

// Equal reports whether a and b are canonically equivalent: NFD(a) ==
// NFD(b), computed without materializing either normal form.
func Equal(a, b []byte) bool {
	return cmpNfd(byteSource(a), byteSource(b))
}

// EqualString reports whether a and b are canonically equivalent.
func EqualString(a, b string) bool {
	return cmpNfd(stringSource(a), stringSource(b))
}
