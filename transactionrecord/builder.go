// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"time"

	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
)

// setters shared by every builder
//
// B is the concrete builder so that chained calls keep its type
type builder[B any] struct {
	self         B
	tag          TagType
	version      byte
	chainId      byte
	sender       account.PublicKey
	fee          asset.Amount
	timestamp    int64
	timestampSet bool
	proofs       []Proof
}

// defaults: latest version, minimum fee in the native asset
func newBuilder[B any](self B, tag TagType, chainId byte) builder[B] {
	return builder[B]{
		self:    self,
		tag:     tag,
		version: tag.LatestVersion(),
		chainId: chainId,
		fee:     asset.NativeAmount(tag.MinFee()),
	}
}

// Version - override the latest version
func (b *builder[B]) Version(version byte) B {
	b.version = version
	return b.self
}

// ChainId - override the chain given to the constructor
func (b *builder[B]) ChainId(chainId byte) B {
	b.chainId = chainId
	return b.self
}

// Sender - public key of the sender
func (b *builder[B]) Sender(sender account.PublicKey) B {
	b.sender = sender
	return b.self
}

// Fee - fee value, the asset is kept
func (b *builder[B]) Fee(value int64) B {
	b.fee.Value = value
	return b.self
}

// FeeAsset - pay the fee in a sponsored asset
func (b *builder[B]) FeeAsset(a asset.ID) B {
	b.fee.Asset = a
	return b.self
}

// FeeAmount - fee value and asset
func (b *builder[B]) FeeAmount(fee asset.Amount) B {
	b.fee = fee
	return b.self
}

// Timestamp - milliseconds since the epoch, default is the build time
func (b *builder[B]) Timestamp(timestamp int64) B {
	b.timestamp = timestamp
	b.timestampSet = true
	return b.self
}

// Proofs - initial proofs
func (b *builder[B]) Proofs(proofs ...Proof) B {
	b.proofs = proofs
	return b.self
}

func (b *builder[B]) makeEnvelope() (envelope, error) {
	timestamp := b.timestamp
	if !b.timestampSet {
		timestamp = time.Now().UnixMilli()
	}
	return newEnvelope(b.tag, b.version, b.chainId, b.sender, b.fee, timestamp, b.proofs)
}
