// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "github.com/normstream/unorm/internal/runeio"

// source abstracts over []byte and string so Iter can share one
// implementation between Form.Iter and Form.IterString.
type source interface {
	decode(i int) (r rune, size int)
	len() int
}

type byteSource []byte

func (b byteSource) decode(i int) (rune, int) { return runeio.DecodeInBytes(b, i) }
func (b byteSource) len() int                 { return len(b) }

type stringSource string

func (s stringSource) decode(i int) (rune, int) { return runeio.DecodeInString(string(s), i) }
func (s stringSource) len() int                 { return len(s) }

// maxQueueSize is queueSink's capacity. Next resets the queue once per
// processRune call, but a single processRune call can flush the engine's
// buffer more than once: a run of non-starters can fill outBuf up to
// maxBufferSize-1 code points, and the very next code point can decompose
// into as many as maxDecompExpansion further code points, each one its
// own starter and hence its own safe-break flush. The queue has to hold
// everything emitted between two resets, not just one flush's worth.
// Must be >= maxBufferSize + maxDecompExpansion (32 + 18 = 50).
const maxQueueSize = 64

// queueSink is the iterator's sink: a fixed-size queue that never grows.
type queueSink struct {
	data [maxQueueSize]rune
	n    int
}

func (q *queueSink) emit(r rune) { q.data[q.n] = r; q.n++ }
func (q *queueSink) reset()      { q.n = 0 }

// Iter is a pull iterator over the normalized code points of a byte
// slice or string, produced with O(1) extra memory: it holds the same
// three fixed-size buffers as the materializing API, plus a fixed-size
// output queue instead of a growing result buffer.
type Iter struct {
	eng    *engine
	q      queueSink
	read   int
	src    source
	srcPos int
	done   bool
}

func newIter(f Form, src source) *Iter {
	it := &Iter{src: src}
	it.eng = newEngine(f, &it.q)
	return it
}

// Iter returns a lazy iterator over f(src).
func (f Form) Iter(src []byte) *Iter {
	return newIter(f, byteSource(src))
}

// IterString returns a lazy iterator over f(s).
func (f Form) IterString(s string) *Iter {
	return newIter(f, stringSource(s))
}

// Next returns the next code point of the normalized sequence, or
// (0, false) once the sequence is exhausted.
func (it *Iter) Next() (rune, bool) {
	for it.read >= it.q.n {
		if it.done {
			return 0, false
		}
		it.q.reset()
		it.read = 0
		if it.srcPos >= it.src.len() {
			it.done = true
			continue
		}
		r, size := it.src.decode(it.srcPos)
		it.srcPos += size
		isLast := it.srcPos >= it.src.len()
		it.eng.processRune(r, isLast)
		if isLast {
			it.done = true
		}
	}
	r := it.q.data[it.read]
	it.read++
	return r, true
}
