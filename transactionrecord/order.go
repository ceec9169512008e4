// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
	"time"

	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/fault"
)

// order limits
const (
	OrderLatestVersion    = 4
	OrderDefaultFee       = 300000
	OrderDefaultLifetime  = 30 * 24 * time.Hour
	orderProtobufVersion  = 4
	orderMinLegacyVersion = 2
)

// OrderSide - buy or sell
type OrderSide byte

// the two sides, numbered as on the wire
const (
	Buy  OrderSide = 0
	Sell OrderSide = 1
)

func (side OrderSide) String() string {
	switch side {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "*unknown*"
	}
}

// Order - a signed request to trade, matched into an Exchange
//
// amount is in the amount asset of the pair, price in the price asset
type Order struct {
	version    byte
	chainId    byte
	sender     account.PublicKey
	matcher    account.PublicKey
	side       OrderSide
	amount     asset.Amount
	price      asset.Amount
	timestamp  int64
	expiration int64
	fee        asset.Amount
	proofs     Proofs
}

func newOrder(version byte, chainId byte, sender account.PublicKey, matcher account.PublicKey, side OrderSide, amount asset.Amount, price asset.Amount, timestamp int64, expiration int64, fee asset.Amount, proofs []Proof) (*Order, error) {
	if version < 1 || version > OrderLatestVersion {
		return nil, fault.ErrInvalidVersion
	}
	if Buy != side && Sell != side {
		return nil, fault.ErrInvalidOrder
	}
	p, err := normaliseProofs(proofs)
	if nil != err {
		return nil, err
	}
	return &Order{
		version:    version,
		chainId:    chainId,
		sender:     sender,
		matcher:    matcher,
		side:       side,
		amount:     amount,
		price:      price,
		timestamp:  timestamp,
		expiration: expiration,
		fee:        fee,
		proofs:     p,
	}, nil
}

func (o *Order) Version() byte              { return o.version }
func (o *Order) ChainId() byte              { return o.chainId }
func (o *Order) Sender() account.PublicKey  { return o.sender }
func (o *Order) Matcher() account.PublicKey { return o.matcher }
func (o *Order) Side() OrderSide            { return o.side }
func (o *Order) Amount() asset.Amount       { return o.amount }
func (o *Order) Price() asset.Amount        { return o.price }
func (o *Order) Timestamp() int64           { return o.timestamp }
func (o *Order) Expiration() int64          { return o.expiration }

// Fee - matcher fee
func (o *Order) Fee() asset.Amount { return o.fee }

// Proofs - copy of the proof list and of each proof
func (o *Order) Proofs() Proofs { return o.proofs.clone() }

// Equal - structural equality
func (o *Order) Equal(other *Order) bool {
	if nil == o || nil == other {
		return o == other
	}
	if o.version != other.version ||
		o.chainId != other.chainId ||
		o.sender != other.sender ||
		o.matcher != other.matcher ||
		o.side != other.side ||
		o.amount != other.amount ||
		o.price != other.price ||
		o.timestamp != other.timestamp ||
		o.expiration != other.expiration ||
		o.fee != other.fee ||
		len(o.proofs) != len(other.proofs) {
		return false
	}
	for i := range o.proofs {
		if !bytes.Equal(o.proofs[i], other.proofs[i]) {
			return false
		}
	}
	return true
}

// AddProof - copy with one more proof
func (o *Order) AddProof(proof Proof) (*Order, error) {
	if len(o.proofs) >= MaxProofs {
		return nil, fault.ErrTooManyProofs
	}
	c := *o
	c.proofs = append(o.proofs.clone(), append(Proof{}, proof...))
	return &c, nil
}

// OrderBuilder - builder for Order
type OrderBuilder struct {
	version       byte
	chainId       byte
	sender        account.PublicKey
	matcher       account.PublicKey
	side          OrderSide
	amount        asset.Amount
	price         asset.Amount
	timestamp     int64
	timestampSet  bool
	expiration    int64
	expirationSet bool
	fee           asset.Amount
	proofs        []Proof
}

// NewOrder - start an order
//
// the expiration defaults to thirty days after the timestamp
func NewOrder(chainId byte, side OrderSide, matcher account.PublicKey, amount asset.Amount, price asset.Amount) *OrderBuilder {
	return &OrderBuilder{
		version: OrderLatestVersion,
		chainId: chainId,
		side:    side,
		matcher: matcher,
		amount:  amount,
		price:   price,
		fee:     asset.NativeAmount(OrderDefaultFee),
	}
}

func (b *OrderBuilder) Version(version byte) *OrderBuilder {
	b.version = version
	return b
}

func (b *OrderBuilder) Sender(sender account.PublicKey) *OrderBuilder {
	b.sender = sender
	return b
}

func (b *OrderBuilder) Timestamp(timestamp int64) *OrderBuilder {
	b.timestamp = timestamp
	b.timestampSet = true
	return b
}

func (b *OrderBuilder) Expiration(expiration int64) *OrderBuilder {
	b.expiration = expiration
	b.expirationSet = true
	return b
}

// Fee - matcher fee value and asset
func (b *OrderBuilder) Fee(fee asset.Amount) *OrderBuilder {
	b.fee = fee
	return b
}

func (b *OrderBuilder) Proofs(proofs ...Proof) *OrderBuilder {
	b.proofs = proofs
	return b
}

// Build - validate and create the order
func (b *OrderBuilder) Build() (*Order, error) {
	timestamp := b.timestamp
	if !b.timestampSet {
		timestamp = time.Now().UnixMilli()
	}
	expiration := b.expiration
	if !b.expirationSet {
		expiration = timestamp + OrderDefaultLifetime.Milliseconds()
	}
	return newOrder(b.version, b.chainId, b.sender, b.matcher, b.side, b.amount, b.price, timestamp, expiration, b.fee, b.proofs)
}
