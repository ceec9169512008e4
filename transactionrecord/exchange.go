// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/fault"
)

// Exchange - a buy order and a sell order matched by the matcher
//
// the orders keep the sequence they were given in, which is the
// sequence of the encodings
type Exchange struct {
	envelope
	order1         *Order
	order2         *Order
	amount         int64
	price          int64
	buyMatcherFee  int64
	sellMatcherFee int64
}

func newExchange(e envelope, order1 *Order, order2 *Order, amount int64, price int64, buyMatcherFee int64, sellMatcherFee int64) (*Exchange, error) {
	if nil == order1 || nil == order2 || order1.side == order2.side {
		return nil, fault.ErrInvalidOrder
	}
	return &Exchange{
		envelope:       e,
		order1:         order1,
		order2:         order2,
		amount:         amount,
		price:          price,
		buyMatcherFee:  buyMatcherFee,
		sellMatcherFee: sellMatcherFee,
	}, nil
}

// Order1 - first order as encoded
func (tx *Exchange) Order1() *Order { return tx.order1 }

// Order2 - second order as encoded
func (tx *Exchange) Order2() *Order { return tx.order2 }

// BuyOrder - the order on the buy side
func (tx *Exchange) BuyOrder() *Order {
	if Buy == tx.order1.side {
		return tx.order1
	}
	return tx.order2
}

// SellOrder - the order on the sell side
func (tx *Exchange) SellOrder() *Order {
	if Sell == tx.order1.side {
		return tx.order1
	}
	return tx.order2
}

func (tx *Exchange) Amount() int64         { return tx.amount }
func (tx *Exchange) Price() int64          { return tx.price }
func (tx *Exchange) BuyMatcherFee() int64  { return tx.buyMatcherFee }
func (tx *Exchange) SellMatcherFee() int64 { return tx.sellMatcherFee }

// Equal - structural equality
func (tx *Exchange) Equal(other Transaction) bool {
	o, ok := other.(*Exchange)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.order1.Equal(o.order1) &&
		tx.order2.Equal(o.order2) &&
		tx.amount == o.amount &&
		tx.price == o.price &&
		tx.buyMatcherFee == o.buyMatcherFee &&
		tx.sellMatcherFee == o.sellMatcherFee
}

// AddProof - copy with one more proof
func (tx *Exchange) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// ExchangeBuilder - builder for Exchange
type ExchangeBuilder struct {
	builder[*ExchangeBuilder]
	order1         *Order
	order2         *Order
	amount         int64
	price          int64
	buyMatcherFee  int64
	sellMatcherFee int64
	buyFeeSet      bool
	sellFeeSet     bool
}

// NewExchange - start an exchange of two orders
//
// the matcher fees default to the fees of the orders
func NewExchange(chainId byte, order1 *Order, order2 *Order, amount int64, price int64) *ExchangeBuilder {
	b := &ExchangeBuilder{order1: order1, order2: order2, amount: amount, price: price}
	b.builder = newBuilder(b, ExchangeTag, chainId)
	return b
}

func (b *ExchangeBuilder) BuyMatcherFee(fee int64) *ExchangeBuilder {
	b.buyMatcherFee = fee
	b.buyFeeSet = true
	return b
}

func (b *ExchangeBuilder) SellMatcherFee(fee int64) *ExchangeBuilder {
	b.sellMatcherFee = fee
	b.sellFeeSet = true
	return b
}

// Build - validate and create the transaction
func (b *ExchangeBuilder) Build() (*Exchange, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	if nil == b.order1 || nil == b.order2 {
		return nil, fault.ErrInvalidOrder
	}
	buyFee := b.buyMatcherFee
	sellFee := b.sellMatcherFee
	for _, o := range []*Order{b.order1, b.order2} {
		if Buy == o.side && !b.buyFeeSet {
			buyFee = o.fee.Value
		}
		if Sell == o.side && !b.sellFeeSet {
			sellFee = o.fee.Value
		}
	}
	return newExchange(e, b.order1, b.order2, b.amount, b.price, buyFee, sellFee)
}
