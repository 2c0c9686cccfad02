// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "testing"

func TestIsNFStringYes(t *testing.T) {
	tests := []struct {
		f Form
		s string
	}{
		{NFC, "hello, world"},
		{NFD, "hello, world"},
		{NFC, "caf\u00e9"},       // precomposed e-acute: already NFC
		{NFD, "cafe\u0301"},      // decomposed e + acute: already NFD
		{NFC, "\ufb01sh"},        // ligature fi: NFC does not touch compat decompositions
		{NFD, "\ufb01sh"},
	}
	for _, tt := range tests {
		if !isNFString(tt.s, tt.f) {
			t.Errorf("isNFString(%+q, %v) = false; want true", tt.s, tt.f)
		}
	}
}

func TestIsNFStringNo(t *testing.T) {
	tests := []struct {
		f Form
		s string
	}{
		{NFD, "caf\u00e9"},   // precomposed e-acute is not NFD
		{NFC, "cafe\u0301"},  // decomposed form is not NFC (acute combines backward)
		{NFKC, "\ufb01sh"},   // ligature must expand under NFKC
		{NFKD, "\ufb01sh"},   // and under NFKD
		{NFC, "\ufb49"},      // composition exclusion: never a valid NFC literal
		{NFD, "\ufb49"},      // and it still has a canonical decomposition
	}
	for _, tt := range tests {
		if isNFString(tt.s, tt.f) {
			t.Errorf("isNFString(%+q, %v) = true; want false", tt.s, tt.f)
		}
	}
}

func TestIsNFBytesMatchesString(t *testing.T) {
	s := "Voulez-vous un caf\u00e9?"
	if got, want := isNFBytes([]byte(s), NFC), isNFString(s, NFC); got != want {
		t.Errorf("isNFBytes/isNFString disagree: %v vs %v", got, want)
	}
}

func TestQuickCheckOutOfOrderIsNo(t *testing.T) {
	// Acute (ccc 230) followed by dot-below (ccc 220) is out of canonical
	// order; the order check must reject it regardless of form.
	s := "\u0301\u0323"
	for _, f := range []Form{NFC, NFD, NFKC, NFKD} {
		if isNFString(s, f) {
			t.Errorf("isNFString(out-of-order, %v) = true; want false", f)
		}
	}
}
