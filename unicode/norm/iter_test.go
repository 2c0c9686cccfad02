// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "testing"

func drain(it *Iter) []rune {
	var out []rune
	for {
		r, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

func TestIterStringNFC(t *testing.T) {
	it := NFC.IterString("cafe\u0301")
	got := drain(it)
	want := []rune("caf\u00e9")
	if len(got) != len(want) {
		t.Fatalf("Iter over %+q = %U; want %U", "cafe\u0301", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %U; want %U", i, got[i], want[i])
		}
	}
}

func TestIterNFD(t *testing.T) {
	it := NFD.Iter([]byte("caf\u00e9"))
	got := drain(it)
	want := []rune("cafe\u0301")
	if len(got) != len(want) {
		t.Fatalf("Iter over %+q = %U; want %U", "caf\u00e9", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %U; want %U", i, got[i], want[i])
		}
	}
}

func TestIterMatchesMaterializing(t *testing.T) {
	s := "Voulez-vous un " + "caf\u00e9" + "?"
	for _, f := range []Form{NFC, NFD, NFKC, NFKD} {
		it := f.IterString(s)
		got := string(drain(it))
		want := f.String(s)
		if got != want {
			t.Errorf("%v: Iter = %+q; want %+q", f, got, want)
		}
	}
}

func TestIterExhausted(t *testing.T) {
	it := NFC.IterString("a")
	if r, ok := it.Next(); !ok || r != 'a' {
		t.Fatalf("first Next() = (%q, %v); want ('a', true)", r, ok)
	}
	if _, ok := it.Next(); ok {
		t.Errorf("Next() after exhaustion reported ok=true")
	}
	if _, ok := it.Next(); ok {
		t.Errorf("Next() is not idempotent once exhausted")
	}
}

func TestIterEmptyInput(t *testing.T) {
	it := NFC.IterString("")
	if _, ok := it.Next(); ok {
		t.Errorf("Next() on empty input reported ok=true")
	}
}
