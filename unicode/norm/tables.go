// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "github.com/normstream/unorm/internal/ucd"

// Form denotes one of the four Unicode normalization forms.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

// formInfo classifies a Form along the two axes the engine cares about.
type formInfo struct {
	compat   bool // compatibility decomposition, vs. canonical
	composes bool // recompose after decomposing
}

var formTable = [...]formInfo{
	NFC:  {compat: false, composes: true},
	NFD:  {compat: false, composes: false},
	NFKC: {compat: true, composes: true},
	NFKD: {compat: true, composes: false},
}

func (f Form) compat() bool   { return formTable[f].compat }
func (f Form) composes() bool { return formTable[f].composes }

// qcStatus is the tri-state result of a quick-check lookup.
type qcStatus int

const (
	qcYes qcStatus = iota
	qcNo
	qcMaybe
)

// maskStatus pairs a QC bit with the status it reports when set.
type maskStatus struct {
	mask   ucd.QC
	status qcStatus
}

// nfMasks enumerates, per form, the (mask, status) pairs isAllowed applies
// in order; the first mask that matches wins, and no match means Yes.
// NFD and NFKD only ever produce No, never Maybe, matching the property
// that the two decomposed-only forms never have a "might compose" case.
var nfMasks = [...][2]maskStatus{
	NFC:  {{ucd.NFCNo, qcNo}, {ucd.NFCMaybe, qcMaybe}},
	NFD:  {{ucd.NFDNo, qcNo}, {ucd.NFDNo, qcNo}},
	NFKC: {{ucd.NFKCNo, qcNo}, {ucd.NFKCMaybe, qcMaybe}},
	NFKD: {{ucd.NFKDNo, qcNo}, {ucd.NFKDNo, qcNo}},
}

// isAllowed reports the quick-check status of a code point's QC bitmask
// with respect to form f.
func isAllowed(qc ucd.QC, f Form) qcStatus {
	for _, ms := range nfMasks[f] {
		if qc&ms.mask != 0 {
			return ms.status
		}
	}
	return qcYes
}
