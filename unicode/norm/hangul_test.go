// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "testing"

func TestIsHangul(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{0xAC00, true},  // 가, first syllable
		{0xD7A3, true},  // last syllable
		{0xABFF, false}, // one below the block
		{0xD7A4, false}, // one above the block
		{'A', false},
	}
	for _, tt := range tests {
		if got := isHangul(tt.r); got != tt.want {
			t.Errorf("isHangul(%U) = %v; want %v", tt.r, got, tt.want)
		}
	}
}

func TestHangulDecomposition(t *testing.T) {
	tests := []struct {
		r    rune
		want []rune
	}{
		{0xAC00, []rune{jamoLBase, jamoVBase}},                // 가 = LV, no trailing consonant
		{0xAC01, []rune{jamoLBase, jamoVBase, jamoTBase + 1}}, // 각 = LVT
		{0xD7A3, []rune{0x1112, 0x1175, 0x11C2}},              // last syllable, LVT
	}
	for _, tt := range tests {
		var buf runeBuffer
		if ok := hangulDecompose(&buf, tt.r); !ok {
			t.Fatalf("hangulDecompose(%U) = false; want true", tt.r)
		}
		got := buf.slice()
		if len(got) != len(tt.want) {
			t.Fatalf("hangulDecompose(%U) = %v; want length %d", tt.r, got, len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("hangulDecompose(%U)[%d] = %U; want %U", tt.r, i, got[i], tt.want[i])
			}
		}
	}
}

func TestHangulComposition(t *testing.T) {
	l, v := rune(jamoLBase), rune(jamoVBase)
	lv, ok := hangulComposition(l, v)
	if !ok || lv != 0xAC00 {
		t.Fatalf("hangulComposition(L, V) = (%U, %v); want (0xAC00, true)", lv, ok)
	}
	t0 := rune(jamoTBase + 1)
	lvt, ok := hangulComposition(lv, t0)
	if !ok || lvt != 0xAC01 {
		t.Fatalf("hangulComposition(LV, T) = (%U, %v); want (0xAC01, true)", lvt, ok)
	}
	if _, ok := hangulComposition(lv, jamoTBase); ok {
		t.Errorf("hangulComposition(LV, jamoTBase) reported ok; jamoTBase itself is not a trailing consonant")
	}
	if _, ok := hangulComposition('A', v); ok {
		t.Errorf("hangulComposition('A', V) reported ok; 'A' is not an L jamo")
	}
}

func TestHangulRoundTrip(t *testing.T) {
	for _, r := range []rune{0xAC00, 0xAC01, 0xD7A3, 0xB098} {
		var buf runeBuffer
		if ok := hangulDecompose(&buf, r); !ok {
			t.Fatalf("hangulDecompose(%U) = false; want true", r)
		}
		d := buf.slice()
		var got rune
		var ok bool
		got, ok = hangulComposition(d[0], d[1])
		if !ok {
			t.Fatalf("%U: hangulComposition(%U, %U) failed", r, d[0], d[1])
		}
		if len(d) == 3 {
			got, ok = hangulComposition(got, d[2])
			if !ok {
				t.Fatalf("%U: hangulComposition with trailing consonant failed", r)
			}
		}
		if got != r {
			t.Errorf("round trip of %U produced %U", r, got)
		}
	}
}
