// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/wavestx/digest"
	"github.com/bitmark-inc/wavestx/fault"
)

// NativeName - text form of the native asset
const NativeName = "WAVES"

// ID - native or issued asset
//
// the zero value is the native asset
type ID struct {
	issued bool
	id     digest.Digest
}

// Native - the chain's own token
var Native = ID{}

// Issued - an asset created by an issue transaction
func Issued(d digest.Digest) ID {
	return ID{issued: true, id: d}
}

// IDFromBytes - empty is native, 32 bytes is an issued asset
func IDFromBytes(buffer []byte) (ID, error) {
	if 0 == len(buffer) {
		return Native, nil
	}
	d := digest.Digest{}
	if err := digest.DigestFromBytes(&d, buffer); nil != err {
		return Native, fault.ErrInvalidAssetId
	}
	return Issued(d), nil
}

// IsNative - true for the chain's own token
func (a ID) IsNative() bool {
	return !a.issued
}

// Digest - id of the issue transaction, zero for native
func (a ID) Digest() digest.Digest {
	return a.id
}

// Bytes - empty for native
func (a ID) Bytes() []byte {
	if !a.issued {
		return []byte{}
	}
	return append([]byte{}, a.id[:]...)
}

func (a ID) String() string {
	if !a.issued {
		return NativeName
	}
	return a.id.String()
}

// MarshalText - base58 or WAVES
func (a ID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - base58 or WAVES
func (a *ID) UnmarshalText(s []byte) error {
	if NativeName == string(s) || 0 == len(s) {
		*a = Native
		return nil
	}
	d := digest.Digest{}
	if err := d.UnmarshalText(s); nil != err {
		return fault.ErrInvalidAssetId
	}
	*a = Issued(d)
	return nil
}
