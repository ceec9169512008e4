// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/asset"
)

// Reissue - increase the quantity of an asset
type Reissue struct {
	envelope
	amount     asset.Amount
	reissuable bool
}

func newReissue(e envelope, amount asset.Amount, reissuable bool) (*Reissue, error) {
	return &Reissue{envelope: e, amount: amount, reissuable: reissuable}, nil
}

func (tx *Reissue) Amount() asset.Amount { return tx.amount }
func (tx *Reissue) Reissuable() bool     { return tx.reissuable }

func (tx *Reissue) Equal(other Transaction) bool {
	o, ok := other.(*Reissue)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.amount == o.amount &&
		tx.reissuable == o.reissuable
}

func (tx *Reissue) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// ReissueBuilder - builder for Reissue
type ReissueBuilder struct {
	builder[*ReissueBuilder]
	amount     asset.Amount
	reissuable bool
}

// NewReissue - start a reissue
func NewReissue(chainId byte, amount asset.Amount, reissuable bool) *ReissueBuilder {
	b := &ReissueBuilder{amount: amount, reissuable: reissuable}
	b.builder = newBuilder(b, ReissueTag, chainId)
	return b
}

func (b *ReissueBuilder) Build() (*Reissue, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newReissue(e, b.amount, b.reissuable)
}
