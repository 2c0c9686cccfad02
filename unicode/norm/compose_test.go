// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "testing"

func bufOf(rs ...rune) runeBuffer {
	var b runeBuffer
	for _, r := range rs {
		b.push(r)
	}
	return b
}

func TestCanonicalComposeSimplePair(t *testing.T) {
	b := bufOf('A', 0x0300)
	canonicalCompose(&b)
	if got, want := b.slice(), []rune{0x00C0}; len(got) != 1 || got[0] != want[0] {
		t.Fatalf("compose(A, grave) = %U; want %U", got, want)
	}
}

func TestCanonicalComposeHangul(t *testing.T) {
	l, v, tt := rune(jamoLBase), rune(jamoVBase), rune(jamoTBase+1)
	b := bufOf(l, v, tt)
	canonicalCompose(&b)
	got := b.slice()
	if len(got) != 1 {
		t.Fatalf("compose(L,V,T) = %U; want a single Hangul syllable", got)
	}
	want, _ := hangulComposition(l, v)
	want, _ = hangulComposition(want, tt)
	if got[0] != want {
		t.Errorf("compose(L,V,T) = %U; want %U", got[0], want)
	}
}

func TestCanonicalComposeUnblockedAcrossLowerCCC(t *testing.T) {
	// D + dot-below (202... actually 220) + dot-above: nothing here blocks
	// since D+dot-below composes on its own; verifies sequential composition
	// keeps working after an earlier pair in the same buffer already composed.
	b := bufOf('D', 0x0323, 0x0307)
	canonicalCompose(&b)
	got := b.slice()
	want := []rune{0x1E0C, 0x0307}
	if len(got) != len(want) {
		t.Fatalf("compose(D,dotbelow,dotabove) = %U; want %U", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %U; want %U", i, got[i], want[i])
		}
	}
}

func TestCanonicalComposeBlockedByIntervening(t *testing.T) {
	// e + psili(ccc 230) + acute(ccc 230): e+acute would compose to é, but
	// the intervening psili has ccc equal to the acute's, which blocks
	// composition per Unicode's D117 rule.
	b := bufOf('e', 0x0313, 0x0301)
	canonicalCompose(&b)
	got := b.slice()
	want := []rune{'e', 0x0313, 0x0301}
	if len(got) != len(want) {
		t.Fatalf("compose(e,psili,acute) = %U; want unchanged %U", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %U; want %U", i, got[i], want[i])
		}
	}
}

func TestCanonicalComposeNoComposite(t *testing.T) {
	b := bufOf('x', 'y')
	canonicalCompose(&b)
	got := b.slice()
	if len(got) != 2 || got[0] != 'x' || got[1] != 'y' {
		t.Errorf("compose(x,y) = %U; want unchanged", got)
	}
}
