// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"

	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/fault"
)

// Transfer - send an amount of any asset to a recipient
type Transfer struct {
	envelope
	recipient  account.Recipient
	amount     asset.Amount
	attachment []byte
}

func newTransfer(e envelope, recipient account.Recipient, amount asset.Amount, attachment []byte) (*Transfer, error) {
	if !recipient.IsPresent() {
		return nil, fault.ErrRecipientRequired
	}
	return &Transfer{
		envelope:   e,
		recipient:  recipient,
		amount:     amount,
		attachment: cloneBytes(attachment),
	}, nil
}

func (tx *Transfer) Recipient() account.Recipient { return tx.recipient }
func (tx *Transfer) Amount() asset.Amount         { return tx.amount }
func (tx *Transfer) Attachment() []byte           { return cloneBytes(tx.attachment) }

// Equal - structural equality
func (tx *Transfer) Equal(other Transaction) bool {
	o, ok := other.(*Transfer)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.recipient == o.recipient &&
		tx.amount == o.amount &&
		bytes.Equal(tx.attachment, o.attachment)
}

// AddProof - copy with one more proof
func (tx *Transfer) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// TransferBuilder - builder for Transfer
type TransferBuilder struct {
	builder[*TransferBuilder]
	recipient  account.Recipient
	amount     asset.Amount
	attachment []byte
}

// NewTransfer - start a transfer
func NewTransfer(chainId byte, recipient account.Recipient, amount asset.Amount) *TransferBuilder {
	b := &TransferBuilder{recipient: recipient, amount: amount}
	b.builder = newBuilder(b, TransferTag, chainId)
	return b
}

// Attachment - arbitrary bytes carried with the transfer
func (b *TransferBuilder) Attachment(attachment []byte) *TransferBuilder {
	b.attachment = attachment
	return b
}

// Build - validate and create the transaction
func (b *TransferBuilder) Build() (*Transfer, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newTransfer(e, b.recipient, b.amount, b.attachment)
}
