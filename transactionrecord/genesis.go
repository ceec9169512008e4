// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/account"
)

// Genesis - initial distribution to an address
//
// has no sender; the legacy layout carries no fee or proofs
type Genesis struct {
	envelope
	recipient account.Address
	amount    int64
}

func newGenesis(e envelope, recipient account.Address, amount int64) (*Genesis, error) {
	return &Genesis{envelope: e, recipient: recipient, amount: amount}, nil
}

// Recipient - address receiving the amount
func (tx *Genesis) Recipient() account.Address { return tx.recipient }

// Amount - native amount
func (tx *Genesis) Amount() int64 { return tx.amount }

// Equal - structural equality
func (tx *Genesis) Equal(other Transaction) bool {
	o, ok := other.(*Genesis)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.recipient == o.recipient &&
		tx.amount == o.amount
}

// AddProof - copy with one more proof
func (tx *Genesis) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// GenesisBuilder - builder for Genesis
type GenesisBuilder struct {
	builder[*GenesisBuilder]
	recipient account.Address
	amount    int64
}

// NewGenesis - start a genesis transaction
func NewGenesis(chainId byte, recipient account.Address, amount int64) *GenesisBuilder {
	b := &GenesisBuilder{recipient: recipient, amount: amount}
	b.builder = newBuilder(b, GenesisTag, chainId)
	return b
}

// Build - validate and create the transaction
func (b *GenesisBuilder) Build() (*Genesis, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newGenesis(e, b.recipient, b.amount)
}
