// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/account"
)

// Payment - native transfer to an address (OBSOLETE)
type Payment struct {
	envelope
	recipient account.Address
	amount    int64
}

func newPayment(e envelope, recipient account.Address, amount int64) (*Payment, error) {
	return &Payment{envelope: e, recipient: recipient, amount: amount}, nil
}

// Recipient - address receiving the amount
func (tx *Payment) Recipient() account.Address { return tx.recipient }

// Amount - native amount
func (tx *Payment) Amount() int64 { return tx.amount }

// Equal - structural equality
func (tx *Payment) Equal(other Transaction) bool {
	o, ok := other.(*Payment)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.recipient == o.recipient &&
		tx.amount == o.amount
}

// AddProof - copy with one more proof
func (tx *Payment) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// PaymentBuilder - builder for Payment
type PaymentBuilder struct {
	builder[*PaymentBuilder]
	recipient account.Address
	amount    int64
}

// NewPayment - start a payment
func NewPayment(chainId byte, recipient account.Address, amount int64) *PaymentBuilder {
	b := &PaymentBuilder{recipient: recipient, amount: amount}
	b.builder = newBuilder(b, PaymentTag, chainId)
	return b
}

// Build - validate and create the transaction
func (b *PaymentBuilder) Build() (*Payment, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newPayment(e, b.recipient, b.amount)
}
