// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "testing"

type sliceSink struct{ out []rune }

func (s *sliceSink) emit(r rune) { s.out = append(s.out, r) }

func TestEngineNFDDecomposes(t *testing.T) {
	sk := &sliceSink{}
	eng := newEngine(NFD, sk)
	eng.processRune(0x00E9, true) // é, one input rune, atEOF
	want := []rune{0x0065, 0x0301}
	if len(sk.out) != len(want) {
		t.Fatalf("emitted %U; want %U", sk.out, want)
	}
	for i := range want {
		if sk.out[i] != want[i] {
			t.Errorf("[%d] = %U; want %U", i, sk.out[i], want[i])
		}
	}
}

func TestEngineNFCRecomposesAcrossCalls(t *testing.T) {
	sk := &sliceSink{}
	eng := newEngine(NFC, sk)
	eng.processRune(0x0065, false) // e, more input to come
	eng.processRune(0x0301, true)  // acute, last
	want := []rune{0x00E9}
	if len(sk.out) != len(want) || sk.out[0] != want[0] {
		t.Fatalf("emitted %U; want %U", sk.out, want)
	}
}

func TestEngineFlushesOnSafeBreakBeforeFinished(t *testing.T) {
	sk := &sliceSink{}
	eng := newEngine(NFC, sk)
	eng.processRune('a', false)
	if len(sk.out) != 0 {
		t.Fatalf("emitted %U after first starter; want nothing yet", sk.out)
	}
	eng.processRune('b', false)
	if len(sk.out) != 1 || sk.out[0] != 'a' {
		t.Fatalf("emitted %U after second starter; want ['a'] flushed early", sk.out)
	}
	eng.processRune('c', true)
	want := []rune{'a', 'b', 'c'}
	if len(sk.out) != len(want) {
		t.Fatalf("final emitted %U; want %U", sk.out, want)
	}
	for i := range want {
		if sk.out[i] != want[i] {
			t.Errorf("[%d] = %U; want %U", i, sk.out[i], want[i])
		}
	}
}

func TestEngineForcedFlushInsertsCGJ(t *testing.T) {
	sk := &sliceSink{}
	eng := newEngine(NFC, sk)
	eng.processRune('a', false)
	for i := 0; i < maxBufferSize+8; i++ {
		eng.processRune(0x0301, false)
	}
	eng.processRune(0x0301, true)

	found := false
	for _, r := range sk.out {
		if r == cgj {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("emitted output %U never inserted a grapheme joiner despite overflowing the buffer", sk.out)
	}
}

func TestEngineResetClearsState(t *testing.T) {
	sk := &sliceSink{}
	eng := newEngine(NFC, sk)
	eng.processRune('a', false)
	if eng.outBuf.len() == 0 {
		t.Fatalf("expected a pending starter before reset")
	}
	eng.reset()
	if eng.outBuf.len() != 0 || eng.cccBuf.len() != 0 || eng.lastCCC != 0 {
		t.Errorf("reset() left state behind: outBuf=%d cccBuf=%d lastCCC=%d",
			eng.outBuf.len(), eng.cccBuf.len(), eng.lastCCC)
	}
}
