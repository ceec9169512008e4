// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/fault"
)

const testPublicKey = "60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"

func publicKey(t *testing.T) account.PublicKey {
	b, err := hex.DecodeString(testPublicKey)
	assert.Nil(t, err)
	pk, err := account.PublicKeyFromBytes(b)
	assert.Nil(t, err)
	return pk
}

func keccakOfBlake(data []byte) []byte {
	b := blake2b.Sum256(data)
	k := sha3.NewLegacyKeccak256()
	k.Write(b[:])
	return k.Sum(nil)
}

func TestPublicKey(t *testing.T) {
	pk := publicKey(t)

	text, err := pk.MarshalText()
	assert.Nil(t, err)

	var pk2 account.PublicKey
	assert.Nil(t, pk2.UnmarshalText(text))
	assert.Equal(t, pk, pk2)

	_, err = account.PublicKeyFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidPublicKey, err)

	assert.True(t, account.PublicKey{}.IsZero())
	assert.False(t, pk.IsZero())
}

func TestNewAddress(t *testing.T) {
	pk := publicKey(t)
	a := account.NewAddress('T', pk)

	assert.Equal(t, byte(1), a[0])
	assert.Equal(t, byte('T'), a.ChainId())
	assert.Equal(t, keccakOfBlake(pk[:])[:20], a.PublicKeyHash())
	assert.Equal(t, keccakOfBlake(a[:22])[:4], a[22:])

	// the text form of a testnet address starts with "3N"
	assert.Equal(t, "3N", a.String()[:2])

	// a different chain gives a different address for the same key
	assert.NotEqual(t, a, account.NewAddress('W', pk))

	assert.Equal(t, a, account.AddressFromPart(a.PublicKeyHash(), 'T'))
}

func TestNetworkAddresses(t *testing.T) {
	tests := []struct {
		publicKey string
		chainId   byte
		address   string
	}{
		{"5CnGfSjguYfzWzaRmbxzCbF5qRNGTXEvayytSANkqQ6A", 'W', "3PQ8bp1aoqHQo3icNqFv6VM36V1jzPeaG1v"},
		{"BstqhtQjQN9X78i6mEpaNnf6cMsZZRDVHNv3CqguXbxq", 'W', "3PQvBCHPnxXprTNq1rwdcDuxt6VGKRTM9wT"},
		{"FckK43s6tQ9BBW77hSKuyRnfnrKuf6B7sEuJzcgkSDVf", 'W', "3PETfqHg9HyL92nfiujN5fBW6Ac1TYiVAAc"},
		{"5CnGfSjguYfzWzaRmbxzCbF5qRNGTXEvayytSANkqQ6A", 'T', "3NC7nrggwhk2AbRC7kzv92yDjbVyALeGzE5"},
		{"BstqhtQjQN9X78i6mEpaNnf6cMsZZRDVHNv3CqguXbxq", 'T', "3NCuNExVvpzSE15QkngdemY9XCyVVGhHA9h"},
		{"5CnGfSjguYfzWzaRmbxzCbF5qRNGTXEvayytSANkqQ6A", 'x', "3cgHWJbRKGEhi32DEe6ucVV24FfF7u2mxit"},
	}
	for i, item := range tests {
		pk, err := account.PublicKeyFromBase58(item.publicKey)
		assert.Nil(t, err, "%d", i)
		a := account.NewAddress(item.chainId, pk)
		assert.Equal(t, item.address, a.String(), "%d", i)

		a2, err := account.AddressFromBase58(item.address)
		assert.Nil(t, err, "%d", i)
		assert.Equal(t, a, a2, "%d", i)
		assert.Equal(t, item.chainId, a2.ChainId(), "%d", i)
	}
}

func TestAddressFromBytes(t *testing.T) {
	a := account.NewAddress('W', publicKey(t))

	a2, err := account.AddressFromBytes(a.Bytes())
	assert.Nil(t, err)
	assert.Equal(t, a, a2)

	a3, err := account.AddressFromBase58(a.String())
	assert.Nil(t, err)
	assert.Equal(t, a, a3)

	bad := a.Bytes()
	bad[25] ^= 0xff
	_, err = account.AddressFromBytes(bad)
	assert.Equal(t, fault.ErrWrongAddressChecksum, err)

	bad = a.Bytes()
	bad[0] = 2
	_, err = account.AddressFromBytes(bad)
	assert.Equal(t, fault.ErrWrongAddressVersion, err)

	_, err = account.AddressFromBytes(a[:25])
	assert.Equal(t, fault.ErrNotAddress, err)
}

func TestAlias(t *testing.T) {
	valid := []string{"rich", "alice@home", "a-b.c_d", "012345678901234567890123456789"}
	for _, name := range valid {
		a, err := account.NewAlias('T', name)
		assert.Nil(t, err, name)
		assert.Equal(t, name, a.Name())
		assert.Equal(t, "alias:T:"+name, a.String())

		a2, err := account.AliasFromString(a.String())
		assert.Nil(t, err)
		assert.Equal(t, a, a2)

		a3, n, err := account.AliasFromBytes(a.Bytes())
		assert.Nil(t, err)
		assert.Equal(t, 4+len(name), n)
		assert.Equal(t, a, a3)
	}

	invalid := []string{"abc", "UPPER", "has space", "0123456789012345678901234567890", ""}
	for _, name := range invalid {
		_, err := account.NewAlias('T', name)
		assert.Equal(t, fault.ErrInvalidAlias, err, name)
	}

	_, err := account.AliasFromString("alias:T")
	assert.Equal(t, fault.ErrInvalidAlias, err)
	_, err = account.AliasFromString("name:T:rich")
	assert.Equal(t, fault.ErrInvalidAlias, err)

	_, _, err = account.AliasFromBytes([]byte{2, 'T', 0, 10, 'a'})
	assert.Equal(t, fault.ErrTruncated, err)
}

func TestRecipient(t *testing.T) {
	address := account.NewAddress('T', publicKey(t))
	alias, err := account.NewAlias('T', "rich")
	assert.Nil(t, err)

	var none account.Recipient
	assert.False(t, none.IsPresent())
	assert.Equal(t, byte(0), none.ChainId())
	assert.Equal(t, []byte{}, none.Bytes())

	r := account.RecipientFromAddress(address)
	assert.True(t, r.IsPresent())
	assert.False(t, r.IsAlias())
	assert.Equal(t, address, r.Address())
	assert.Equal(t, byte('T'), r.ChainId())

	r2, n, err := account.RecipientFromBytes(r.Bytes())
	assert.Nil(t, err)
	assert.Equal(t, account.AddressLength, n)
	assert.Equal(t, r, r2)

	ra := account.RecipientFromAlias(alias)
	assert.True(t, ra.IsAlias())
	assert.Equal(t, "alias:T:rich", ra.String())
	assert.NotEqual(t, r, ra)

	ra2, n, err := account.RecipientFromBytes(append(ra.Bytes(), 0xff))
	assert.Nil(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, ra, ra2)

	_, _, err = account.RecipientFromBytes([]byte{3})
	assert.Equal(t, fault.ErrUnknownRecipientType, err)
	_, _, err = account.RecipientFromBytes([]byte{})
	assert.Equal(t, fault.ErrTruncated, err)
}

func TestRecipientFromString(t *testing.T) {
	address := account.NewAddress('T', publicKey(t))

	r, err := account.RecipientFromString(address.String())
	assert.Nil(t, err)
	assert.Equal(t, account.RecipientFromAddress(address), r)

	ra, err := account.RecipientFromString("alias:T:rich")
	assert.Nil(t, err)
	assert.True(t, ra.IsAlias())
	assert.Equal(t, "rich", ra.Alias().Name())

	_, err = account.RecipientFromString("alias:T")
	assert.Equal(t, fault.ErrInvalidAlias, err)

	_, err = account.RecipientFromString("0OIl")
	assert.NotNil(t, err)
}
