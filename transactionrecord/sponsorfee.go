// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/asset"
)

// SponsorFee - allow fees to be paid in an asset
//
// the amount is the minimum fee in that asset, zero cancels sponsorship
type SponsorFee struct {
	envelope
	minFee asset.Amount
}

func newSponsorFee(e envelope, minFee asset.Amount) (*SponsorFee, error) {
	return &SponsorFee{envelope: e, minFee: minFee}, nil
}

func (tx *SponsorFee) MinFee() asset.Amount { return tx.minFee }

func (tx *SponsorFee) Equal(other Transaction) bool {
	o, ok := other.(*SponsorFee)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.minFee == o.minFee
}

func (tx *SponsorFee) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// SponsorFeeBuilder - builder for SponsorFee
type SponsorFeeBuilder struct {
	builder[*SponsorFeeBuilder]
	minFee asset.Amount
}

// NewSponsorFee - start a sponsorship
func NewSponsorFee(chainId byte, minFee asset.Amount) *SponsorFeeBuilder {
	b := &SponsorFeeBuilder{minFee: minFee}
	b.builder = newBuilder(b, SponsorFeeTag, chainId)
	return b
}

func (b *SponsorFeeBuilder) Build() (*SponsorFee, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newSponsorFee(e, b.minFee)
}
