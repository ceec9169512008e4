// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/wavestx/fault"
)

// miscellaneous constants
const (
	AddressLength       = 26
	PublicKeyHashLength = 20

	addressVersion = 0x01
	checksumLength = 4
	headerLength   = 2
	bodyLength     = headerLength + PublicKeyHashLength
)

// Address - version, chain id, public key hash and checksum
type Address [AddressLength]byte

// NewAddress - derive the address of a public key on a chain
func NewAddress(chainId byte, pk PublicKey) Address {
	h := secureHash(pk[:])
	return AddressFromPart(h[:PublicKeyHashLength], chainId)
}

// AddressFromPart - rebuild an address from the 20 byte public key hash
//
// this is the form carried by the protobuf recipient
func AddressFromPart(publicKeyHash []byte, chainId byte) Address {
	a := Address{}
	a[0] = addressVersion
	a[1] = chainId
	copy(a[headerLength:bodyLength], publicKeyHash)
	checksum := secureHash(a[:bodyLength])
	copy(a[bodyLength:], checksum[:checksumLength])
	return a
}

// AddressFromBytes - validate the version and checksum of a raw address
func AddressFromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if AddressLength != len(buffer) {
		return a, fault.ErrNotAddress
	}
	if addressVersion != buffer[0] {
		return a, fault.ErrWrongAddressVersion
	}
	checksum := secureHash(buffer[:bodyLength])
	if !bytes.Equal(checksum[:checksumLength], buffer[bodyLength:]) {
		return a, fault.ErrWrongAddressChecksum
	}
	copy(a[:], buffer)
	return a, nil
}

// AddressFromBase58 - decode and validate the text form
func AddressFromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.ErrInvalidBase58
	}
	return AddressFromBytes(buffer)
}

// ChainId - network byte
func (a Address) ChainId() byte {
	return a[1]
}

// PublicKeyHash - the 20 byte hash part
func (a Address) PublicKeyHash() []byte {
	return append([]byte{}, a[headerLength:bodyLength]...)
}

// Bytes - copy of the raw address
func (a Address) Bytes() []byte {
	return append([]byte{}, a[:]...)
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

// MarshalText - base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - from base58 JSON form
func (a *Address) UnmarshalText(s []byte) error {
	address, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*a = address
	return nil
}

// keccak256(blake2b256(data))
func secureHash(data []byte) []byte {
	b := blake2b.Sum256(data)
	k := sha3.NewLegacyKeccak256()
	k.Write(b[:])
	return k.Sum(nil)
}
