// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/wavestx/fault"
)

// Length - number of bytes in the digest
const Length = 32

// Digest - type for a Blake2b-256 digest
// used for transaction ids, lease ids and asset ids
// represented as base58 text for print and JSON encoding
// to convert to bytes just use d[:]
type Digest [Length]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return blake2b.Sum256(record)
}

// String - base58 text for use by the fmt package (for %s)
func (digest Digest) String() string {
	return base58.Encode(digest[:])
}

// GoString - for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<Blake2b-256:" + base58.Encode(digest[:]) + ">"
}

// IsZero - true if every byte is zero
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// MarshalText - convert digest to base58 text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(digest[:])), nil
}

// UnmarshalText - convert base58 text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	buffer, err := base58.Decode(string(s))
	if nil != err {
		return fault.ErrInvalidBase58
	}
	return DigestFromBytes(digest, buffer)
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrNotDigest
	}
	copy(digest[:], buffer)
	return nil
}
