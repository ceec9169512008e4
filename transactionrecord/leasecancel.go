// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/digest"
)

// LeaseCancel - end a lease, identified by the id of the lease transaction
type LeaseCancel struct {
	envelope
	leaseId digest.Digest
}

func newLeaseCancel(e envelope, leaseId digest.Digest) (*LeaseCancel, error) {
	return &LeaseCancel{envelope: e, leaseId: leaseId}, nil
}

func (tx *LeaseCancel) LeaseId() digest.Digest { return tx.leaseId }

func (tx *LeaseCancel) Equal(other Transaction) bool {
	o, ok := other.(*LeaseCancel)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.leaseId == o.leaseId
}

func (tx *LeaseCancel) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// LeaseCancelBuilder - builder for LeaseCancel
type LeaseCancelBuilder struct {
	builder[*LeaseCancelBuilder]
	leaseId digest.Digest
}

// NewLeaseCancel - start a lease cancel
func NewLeaseCancel(chainId byte, leaseId digest.Digest) *LeaseCancelBuilder {
	b := &LeaseCancelBuilder{leaseId: leaseId}
	b.builder = newBuilder(b, LeaseCancelTag, chainId)
	return b
}

func (b *LeaseCancelBuilder) Build() (*LeaseCancel, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newLeaseCancel(e, b.leaseId)
}
