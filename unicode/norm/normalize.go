// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package norm contains types and functions for normalizing Unicode
// strings and code-point sequences to one of the four Unicode
// Normalization Forms (NFC, NFD, NFKC, NFKD), and for comparing strings
// for canonical equivalence.
//
// The materializing entry points (Bytes, String, Append, AppendString)
// build and return a normalized result. The Iter entry points normalize
// lazily with O(1) extra memory, suitable for very large or untrusted
// input: internal buffers are fixed-size regardless of how long a run of
// combining marks the input contains, and pathological runs are handled
// by inserting a U+034F COMBINING GRAPHEME JOINER rather than growing
// without bound.
package norm

import (
	"unicode/utf8"

	"github.com/normstream/unorm/internal/runeio"
)

// byteSink is the materializing API's sink: it grows its buffer by
// doubling, exactly like append.
type byteSink struct {
	buf []byte
}

func (s *byteSink) emit(r rune) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	s.buf = append(s.buf, tmp[:n]...)
}

// Bytes returns f(b). It may return b unmodified if b is already in form
// f.
func (f Form) Bytes(b []byte) []byte {
	if isNFBytes(b, f) {
		return b
	}
	sk := &byteSink{buf: make([]byte, 0, len(b))}
	runBytes(f, b, sk)
	return sk.buf
}

// String returns f(s). It may return s unmodified if s is already in
// form f.
func (f Form) String(s string) string {
	if isNFString(s, f) {
		return s
	}
	sk := &byteSink{buf: make([]byte, 0, len(s))}
	runString(f, s, sk)
	return string(sk.buf)
}

// Append returns f(append(dst, src...)). dst must be nil, empty, or
// already equal to f(dst); the result normalizes the whole concatenation
// so that combining marks spanning the dst/src boundary are handled
// correctly.
func (f Form) Append(dst []byte, src ...byte) []byte {
	if len(src) == 0 {
		return dst
	}
	combined := append(append([]byte(nil), dst...), src...)
	return f.Bytes(combined)
}

// AppendString returns f(append(dst, []byte(src)...)).
func (f Form) AppendString(dst []byte, src string) []byte {
	if src == "" {
		return dst
	}
	combined := append([]byte(nil), dst...)
	combined = append(combined, src...)
	return f.Bytes(combined)
}

// IsNormal reports whether b == f(b). A false result is conclusive; a
// true result is conclusive for well-formed input but, per the
// quick-check predicate's soundness-not-completeness guarantee, some
// already-normalized strings can be reported as not normal (Maybe is
// treated as false).
func (f Form) IsNormal(b []byte) bool {
	return isNFBytes(b, f)
}

// IsNormalString reports whether s == f(s), with the same soundness
// caveat as IsNormal.
func (f Form) IsNormalString(s string) bool {
	return isNFString(s, f)
}

func runBytes(f Form, b []byte, out sink) {
	eng := newEngine(f, out)
	n := len(b)
	i := 0
	for i < n {
		r, size := runeio.DecodeInBytes(b, i)
		i += size
		eng.processRune(r, i >= n)
	}
}

func runString(f Form, s string, out sink) {
	eng := newEngine(f, out)
	n := len(s)
	i := 0
	for i < n {
		r, size := runeio.DecodeInString(s, i)
		i += size
		eng.processRune(r, i >= n)
	}
}
