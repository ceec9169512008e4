// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"strings"

	"github.com/bitmark-inc/wavestx/fault"
)

type recipientKind byte

const (
	noRecipient recipientKind = iota
	addressRecipient
	aliasRecipient
)

// Recipient - either an address or an alias
//
// the zero value is an absent recipient
type Recipient struct {
	kind    recipientKind
	address Address
	alias   Alias
}

// RecipientFromAddress - address recipient
func RecipientFromAddress(a Address) Recipient {
	return Recipient{kind: addressRecipient, address: a}
}

// RecipientFromAlias - alias recipient
func RecipientFromAlias(a Alias) Recipient {
	return Recipient{kind: aliasRecipient, alias: a}
}

// RecipientFromBytes - parse the binary form and return the bytes used
//
// an address starts with 0x01, an alias with 0x02
func RecipientFromBytes(buffer []byte) (Recipient, int, error) {
	if 0 == len(buffer) {
		return Recipient{}, 0, fault.ErrTruncated
	}
	switch buffer[0] {
	case addressVersion:
		if len(buffer) < AddressLength {
			return Recipient{}, 0, fault.ErrTruncated
		}
		a, err := AddressFromBytes(buffer[:AddressLength])
		if nil != err {
			return Recipient{}, 0, err
		}
		return RecipientFromAddress(a), AddressLength, nil
	case aliasVersion:
		a, n, err := AliasFromBytes(buffer)
		if nil != err {
			return Recipient{}, 0, err
		}
		return RecipientFromAlias(a), n, nil
	default:
		return Recipient{}, 0, fault.ErrUnknownRecipientType
	}
}

// IsPresent - false for the zero value
func (r Recipient) IsPresent() bool {
	return noRecipient != r.kind
}

// IsAlias - true for an alias recipient
func (r Recipient) IsAlias() bool {
	return aliasRecipient == r.kind
}

// Address - the address, valid when present and not an alias
func (r Recipient) Address() Address {
	return r.address
}

// Alias - the alias, valid when IsAlias
func (r Recipient) Alias() Alias {
	return r.alias
}

// ChainId - network of the address or alias
func (r Recipient) ChainId() byte {
	switch r.kind {
	case addressRecipient:
		return r.address.ChainId()
	case aliasRecipient:
		return r.alias.ChainId()
	default:
		return 0
	}
}

// Bytes - binary form, empty for an absent recipient
func (r Recipient) Bytes() []byte {
	switch r.kind {
	case addressRecipient:
		return r.address.Bytes()
	case aliasRecipient:
		return r.alias.Bytes()
	default:
		return []byte{}
	}
}

func (r Recipient) String() string {
	switch r.kind {
	case addressRecipient:
		return r.address.String()
	case aliasRecipient:
		return r.alias.String()
	default:
		return ""
	}
}

// MarshalText - address or alias JSON form
func (r Recipient) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// RecipientFromString - parse either "alias:<chain>:<name>" or a
// base58 address
func RecipientFromString(s string) (Recipient, error) {
	if strings.HasPrefix(s, aliasPrefix+":") {
		alias, err := AliasFromString(s)
		if nil != err {
			return Recipient{}, err
		}
		return RecipientFromAlias(alias), nil
	}
	address, err := AddressFromBase58(s)
	if nil != err {
		return Recipient{}, err
	}
	return RecipientFromAddress(address), nil
}
