// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/binary"
	"strings"

	"github.com/bitmark-inc/wavestx/fault"
)

// alias limits
const (
	AliasMinLength = 4
	AliasMaxLength = 30

	aliasVersion  = 0x02
	aliasPrefix   = "alias"
	aliasAlphabet = "-.0123456789@_abcdefghijklmnopqrstuvwxyz"
)

// Alias - a human readable name bound to an address on one chain
type Alias struct {
	chainId byte
	name    string
}

// NewAlias - validate the name and create an alias
func NewAlias(chainId byte, name string) (Alias, error) {
	if !validAliasName(name) {
		return Alias{}, fault.ErrInvalidAlias
	}
	return Alias{chainId: chainId, name: name}, nil
}

// AliasFromString - parse the "alias:<chain>:<name>" form
func AliasFromString(s string) (Alias, error) {
	parts := strings.SplitN(s, ":", 3)
	if 3 != len(parts) || aliasPrefix != parts[0] || 1 != len(parts[1]) {
		return Alias{}, fault.ErrInvalidAlias
	}
	return NewAlias(parts[1][0], parts[2])
}

// AliasFromBytes - parse [0x02][chain][u16 length][name] and return the bytes used
func AliasFromBytes(buffer []byte) (Alias, int, error) {
	if len(buffer) < 4 {
		return Alias{}, 0, fault.ErrTruncated
	}
	if aliasVersion != buffer[0] {
		return Alias{}, 0, fault.ErrUnknownRecipientType
	}
	n := 4 + int(binary.BigEndian.Uint16(buffer[2:4]))
	if len(buffer) < n {
		return Alias{}, 0, fault.ErrTruncated
	}
	a, err := NewAlias(buffer[1], string(buffer[4:n]))
	if nil != err {
		return Alias{}, 0, err
	}
	return a, n, nil
}

// ChainId - network byte
func (a Alias) ChainId() byte {
	return a.chainId
}

// Name - the alias without prefix
func (a Alias) Name() string {
	return a.name
}

// Bytes - binary form
func (a Alias) Bytes() []byte {
	buffer := make([]byte, 4, 4+len(a.name))
	buffer[0] = aliasVersion
	buffer[1] = a.chainId
	binary.BigEndian.PutUint16(buffer[2:], uint16(len(a.name)))
	return append(buffer, a.name...)
}

func (a Alias) String() string {
	return aliasPrefix + ":" + string([]byte{a.chainId}) + ":" + a.name
}

// MarshalText - JSON form
func (a Alias) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - from JSON form
func (a *Alias) UnmarshalText(s []byte) error {
	alias, err := AliasFromString(string(s))
	if nil != err {
		return err
	}
	*a = alias
	return nil
}

func validAliasName(name string) bool {
	if len(name) < AliasMinLength || len(name) > AliasMaxLength {
		return false
	}
	for _, c := range name {
		if !strings.ContainsRune(aliasAlphabet, c) {
			return false
		}
	}
	return true
}
