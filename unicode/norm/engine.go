// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "github.com/normstream/unorm/internal/ucd"

// cgj is U+034F COMBINING GRAPHEME JOINER, the stability marker the engine
// inserts at forced flush boundaries that fall inside a run of
// non-starters, so that re-normalizing the output cannot reorder across
// the boundary.
const cgj rune = 0x034F

// sink receives the code points the engine emits, one at a time. The
// implementations are a growing byte slice (materializing API), a small
// fixed-size queue (iterator API, keeping the whole pipeline O(1) extra
// memory), and the caller's dst slice (Transform).
type sink interface {
	emit(r rune)
}

// engine is the streaming normalization state machine of one Form
// instance. It owns three bounded buffers and never allocates on its own
// account; only its sink may allocate (the materializing API's sink
// does, by design; the iterator API's does not).
type engine struct {
	form Form
	out  sink

	outBuf  runeBuffer
	cccBuf  cccBuffer
	dcpBuf  runeBuffer
	lastCCC int
}

func newEngine(f Form, out sink) *engine {
	return &engine{form: f, out: out}
}

func (e *engine) reset() {
	e.outBuf.clear()
	e.cccBuf.clear()
	e.lastCCC = 0
}

// processRune feeds one already-decoded input code point through the
// pipeline: decompose, and for each resulting code point, decide whether
// this is a safe point to flush the buffer, flush if so (sorting and,
// for composing forms, recomposing first), and otherwise accumulate.
//
// isLastInput must be true exactly when c is the last code point of the
// input; the final flush of a normalization run happens as part of
// processing that code point, not as a separate step, so that "finished"
// and "safe break" share the same flushing logic.
func (e *engine) processRune(c rune, isLastInput bool) {
	decomposeInto(&e.dcpBuf, c, e.form.compat())
	dn := e.dcpBuf.len()
	for i := 0; i < dn; i++ {
		d := e.dcpBuf.at(i)
		ccc := ucd.Combining(d)
		qc := isAllowed(ucd.QuickCheck(d), e.form)

		finished := isLastInput && i == dn-1
		safeBreak := qc == qcYes && ccc == 0
		mustFlush := finished || safeBreak || e.outBuf.spaceLeft() == 1

		if mustFlush {
			if finished {
				e.outBuf.push(d)
				e.cccBuf.push(ccc)
			}

			canonicalSort(&e.outBuf, &e.cccBuf)
			if e.form.composes() {
				canonicalCompose(&e.outBuf)
			}
			for j := 0; j < e.outBuf.len(); j++ {
				e.out.emit(e.outBuf.at(j))
			}
			e.outBuf.clear()
			e.cccBuf.clear()

			if !finished && e.lastCCC != 0 && ccc != 0 {
				// Forced flush inside a non-starter run: without a
				// marker, re-normalizing the emitted output could
				// reorder combining marks across this boundary.
				e.outBuf.push(cgj)
				e.cccBuf.push(0)
			}
		}

		e.lastCCC = int(ccc)
		if !finished {
			e.outBuf.push(d)
			e.cccBuf.push(ccc)
		}
	}
}
