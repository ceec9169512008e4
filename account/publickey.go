// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/wavestx/fault"
)

// PublicKeyLength - bytes in a public key
const PublicKeyLength = 32

// PublicKey - the sender key of a transaction or order
type PublicKey [PublicKeyLength]byte

// PublicKeyFromBytes - validate length and convert
func PublicKeyFromBytes(buffer []byte) (PublicKey, error) {
	pk := PublicKey{}
	if PublicKeyLength != len(buffer) {
		return pk, fault.ErrInvalidPublicKey
	}
	copy(pk[:], buffer)
	return pk, nil
}

// PublicKeyFromBase58 - decode the text form
func PublicKeyFromBase58(s string) (PublicKey, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return PublicKey{}, fault.ErrInvalidBase58
	}
	return PublicKeyFromBytes(buffer)
}

// Bytes - copy of the key bytes
func (pk PublicKey) Bytes() []byte {
	return append([]byte{}, pk[:]...)
}

// IsZero - true for the absent sender of a genesis transaction
func (pk PublicKey) IsZero() bool {
	return PublicKey{} == pk
}

func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

// MarshalText - base58 JSON form
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText - from base58 JSON form
func (pk *PublicKey) UnmarshalText(s []byte) error {
	k, err := PublicKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*pk = k
	return nil
}
