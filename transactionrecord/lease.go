// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/fault"
)

// Lease - lend native balance to a recipient for generating
type Lease struct {
	envelope
	recipient account.Recipient
	amount    int64
}

func newLease(e envelope, recipient account.Recipient, amount int64) (*Lease, error) {
	if !recipient.IsPresent() {
		return nil, fault.ErrRecipientRequired
	}
	return &Lease{envelope: e, recipient: recipient, amount: amount}, nil
}

func (tx *Lease) Recipient() account.Recipient { return tx.recipient }
func (tx *Lease) Amount() int64                { return tx.amount }

// Equal - structural equality
func (tx *Lease) Equal(other Transaction) bool {
	o, ok := other.(*Lease)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.recipient == o.recipient &&
		tx.amount == o.amount
}

// AddProof - copy with one more proof
func (tx *Lease) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// LeaseBuilder - builder for Lease
type LeaseBuilder struct {
	builder[*LeaseBuilder]
	recipient account.Recipient
	amount    int64
}

// NewLease - start a lease
func NewLease(chainId byte, recipient account.Recipient, amount int64) *LeaseBuilder {
	b := &LeaseBuilder{recipient: recipient, amount: amount}
	b.builder = newBuilder(b, LeaseTag, chainId)
	return b
}

// Build - validate and create the transaction
func (b *LeaseBuilder) Build() (*Lease, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newLease(e, b.recipient, b.amount)
}
