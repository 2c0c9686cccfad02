// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runeio decodes UTF-8 one code point at a time, for callers that
// walk a byte slice or string index by index rather than ranging over it.
// It is the UTF-8 collaborator consumed by unicode/norm: malformed
// sequences decode to U+FFFD with a width of one byte, matching the
// behavior of a range clause over a string with invalid UTF-8.
package runeio

import "unicode/utf8"

// DecodeInString decodes the code point starting at byte index i in s and
// returns it along with its width in bytes. It returns (utf8.RuneError, 1)
// if s[i:] does not begin with valid UTF-8.
func DecodeInString(s string, i int) (r rune, size int) {
	return utf8.DecodeRuneInString(s[i:])
}

// DecodeInBytes decodes the code point starting at byte index i in b and
// returns it along with its width in bytes. It returns (utf8.RuneError, 1)
// if b[i:] does not begin with valid UTF-8.
func DecodeInBytes(b []byte, i int) (r rune, size int) {
	return utf8.DecodeRune(b[i:])
}
