// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/fault"
)

// MassTransferEntry - one recipient of a mass transfer
type MassTransferEntry struct {
	Recipient account.Recipient `json:"recipient"`
	Amount    int64             `json:"amount"`
}

// MassTransfer - transfers of one asset to many recipients
type MassTransfer struct {
	envelope
	asset      asset.ID
	transfers  []MassTransferEntry
	attachment []byte
}

func newMassTransfer(e envelope, a asset.ID, transfers []MassTransferEntry, attachment []byte) (*MassTransfer, error) {
	for i, t := range transfers {
		if !t.Recipient.IsPresent() {
			return nil, errors.Wrapf(fault.ErrRecipientRequired, "transfer: %d", i)
		}
	}
	return &MassTransfer{
		envelope:   e,
		asset:      a,
		transfers:  append([]MassTransferEntry{}, transfers...),
		attachment: cloneBytes(attachment),
	}, nil
}

func (tx *MassTransfer) Asset() asset.ID { return tx.asset }

// Transfers - copy of the entries
func (tx *MassTransfer) Transfers() []MassTransferEntry {
	return append([]MassTransferEntry{}, tx.transfers...)
}

func (tx *MassTransfer) Attachment() []byte { return cloneBytes(tx.attachment) }

// Equal - structural equality
func (tx *MassTransfer) Equal(other Transaction) bool {
	o, ok := other.(*MassTransfer)
	if !ok || nil == o ||
		!tx.envelope.equal(&o.envelope) ||
		tx.asset != o.asset ||
		!bytes.Equal(tx.attachment, o.attachment) ||
		len(tx.transfers) != len(o.transfers) {
		return false
	}
	for i := range tx.transfers {
		if tx.transfers[i] != o.transfers[i] {
			return false
		}
	}
	return true
}

// AddProof - copy with one more proof
func (tx *MassTransfer) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// MassTransferBuilder - builder for MassTransfer
type MassTransferBuilder struct {
	builder[*MassTransferBuilder]
	asset      asset.ID
	transfers  []MassTransferEntry
	attachment []byte
}

// NewMassTransfer - start a mass transfer of the native asset
func NewMassTransfer(chainId byte, transfers []MassTransferEntry) *MassTransferBuilder {
	b := &MassTransferBuilder{asset: asset.Native, transfers: transfers}
	b.builder = newBuilder(b, MassTransferTag, chainId)
	return b
}

// Asset - the asset transferred
func (b *MassTransferBuilder) Asset(a asset.ID) *MassTransferBuilder {
	b.asset = a
	return b
}

func (b *MassTransferBuilder) Attachment(attachment []byte) *MassTransferBuilder {
	b.attachment = attachment
	return b
}

// Build - validate and create the transaction
func (b *MassTransferBuilder) Build() (*MassTransfer, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newMassTransfer(e, b.asset, b.transfers, b.attachment)
}
