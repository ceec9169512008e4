// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/asset"
)

// Burn - destroy some quantity of an asset
type Burn struct {
	envelope
	amount asset.Amount
}

func newBurn(e envelope, amount asset.Amount) (*Burn, error) {
	return &Burn{envelope: e, amount: amount}, nil
}

func (tx *Burn) Amount() asset.Amount { return tx.amount }

func (tx *Burn) Equal(other Transaction) bool {
	o, ok := other.(*Burn)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.amount == o.amount
}

func (tx *Burn) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// BurnBuilder - builder for Burn
type BurnBuilder struct {
	builder[*BurnBuilder]
	amount asset.Amount
}

// NewBurn - start a burn
func NewBurn(chainId byte, amount asset.Amount) *BurnBuilder {
	b := &BurnBuilder{amount: amount}
	b.builder = newBuilder(b, BurnTag, chainId)
	return b
}

func (b *BurnBuilder) Build() (*Burn, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newBurn(e, b.amount)
}
