// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/fault"
)

// MaxProofs - maximum number of proofs on a transaction or order
const MaxProofs = 8

// Proof - a signature or other script argument
type Proof []byte

// Proofs - ordered list of proofs
type Proofs []Proof

// String - base58 text
func (p Proof) String() string {
	return base58.Encode(p)
}

// MarshalText - base58 JSON form
func (p Proof) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(p)), nil
}

// UnmarshalText - from base58 JSON form
func (p *Proof) UnmarshalText(s []byte) error {
	b, err := base58.Decode(string(s))
	if nil != err {
		return fault.ErrInvalidBase58
	}
	*p = b
	return nil
}

// fields shared by all transaction types
type envelope struct {
	tag       TagType
	version   byte
	chainId   byte
	sender    account.PublicKey
	fee       asset.Amount
	timestamp int64
	proofs    Proofs
}

// validate the shared fields
//
// nil proofs become empty
func newEnvelope(tag TagType, version byte, chainId byte, sender account.PublicKey, fee asset.Amount, timestamp int64, proofs []Proof) (envelope, error) {
	if version < 1 || version > tag.LatestVersion() {
		return envelope{}, fault.ErrInvalidVersion
	}
	p, err := normaliseProofs(proofs)
	if nil != err {
		return envelope{}, err
	}
	return envelope{
		tag:       tag,
		version:   version,
		chainId:   chainId,
		sender:    sender,
		fee:       fee,
		timestamp: timestamp,
		proofs:    p,
	}, nil
}

func normaliseProofs(proofs []Proof) (Proofs, error) {
	if len(proofs) > MaxProofs {
		return nil, fault.ErrTooManyProofs
	}
	return Proofs(proofs).clone(), nil
}

// deep copy, nil becomes empty
func (p Proofs) clone() Proofs {
	c := make(Proofs, len(p))
	for i, proof := range p {
		c[i] = append(Proof{}, proof...)
	}
	return c
}

func (e *envelope) envelopeData() *envelope { return e }

// Type - transaction type
func (e *envelope) Type() TagType { return e.tag }

// Version - transaction version
func (e *envelope) Version() byte { return e.version }

// ChainId - network byte
func (e *envelope) ChainId() byte { return e.chainId }

// Sender - public key of the sender
func (e *envelope) Sender() account.PublicKey { return e.sender }

// Fee - fee amount and asset
func (e *envelope) Fee() asset.Amount { return e.fee }

// Timestamp - milliseconds since the epoch
func (e *envelope) Timestamp() int64 { return e.timestamp }

// Proofs - copy of the proof list and of each proof
func (e *envelope) Proofs() Proofs {
	return e.proofs.clone()
}

func (e *envelope) equal(other *envelope) bool {
	if e.tag != other.tag ||
		e.version != other.version ||
		e.chainId != other.chainId ||
		e.sender != other.sender ||
		e.fee != other.fee ||
		e.timestamp != other.timestamp ||
		len(e.proofs) != len(other.proofs) {
		return false
	}
	for i := range e.proofs {
		if !bytes.Equal(e.proofs[i], other.proofs[i]) {
			return false
		}
	}
	return true
}

// replace the proof list with a longer copy
func (e *envelope) appendProof(proof Proof) error {
	if len(e.proofs) >= MaxProofs {
		return fault.ErrTooManyProofs
	}
	e.proofs = append(e.proofs.clone(), append(Proof{}, proof...))
	return nil
}

// copy a byte slice, nil becomes empty
func cloneBytes(b []byte) []byte {
	return append([]byte{}, b...)
}

// copy of a transaction with one more proof
func withProof[T any, P interface {
	*T
	Transaction
}](tx P, proof Proof) (Transaction, error) {
	c := *tx
	if err := P(&c).envelopeData().appendProof(proof); nil != err {
		return nil, err
	}
	return P(&c), nil
}
