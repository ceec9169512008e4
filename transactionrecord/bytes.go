// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/wavestx/digest"
	"github.com/bitmark-inc/wavestx/fault"
)

// BodyBytes - the message that is signed
//
// the unsigned protobuf transaction for protobuf versions,
// otherwise the legacy body without proofs
func BodyBytes(tx Transaction) ([]byte, error) {
	if tx.Type().IsProtobuf(tx.Version()) {
		m, err := transactionToProtobuf(tx)
		if nil != err {
			return nil, err
		}
		return marshalMessage(m)
	}
	return packBody(tx)
}

// ID - hash of the body bytes
func ID(tx Transaction) (digest.Digest, error) {
	body, err := BodyBytes(tx)
	if nil != err {
		return digest.Digest{}, err
	}
	return digest.NewDigest(body), nil
}

// ToBytes - the signed form of a transaction
//
// protobuf versions are the signed protobuf message; legacy versions
// are the body followed by the proofs or the single signature
func ToBytes(tx Transaction) ([]byte, error) {
	if tx.Type().IsProtobuf(tx.Version()) {
		return MarshalProtobuf(tx)
	}

	body, err := packBody(tx)
	if nil != err {
		return nil, err
	}
	proofs := tx.envelopeData().proofs

	switch tx.Type() {
	case GenesisTag:
		if 0 != len(proofs) {
			return nil, errors.Wrap(fault.ErrInvalidSignature, "genesis has no proofs")
		}
		return body, nil

	case PaymentTag:
		if 1 != len(proofs) || signatureSize != len(proofs[0]) {
			return nil, errors.Wrap(fault.ErrInvalidSignature, "payment needs one signature")
		}
		return append(body, proofs[0]...), nil

	case ExchangeTag:
		return appendProofs(body, proofs)

	default:
		return appendProofs(append(Packed{0}, body...), proofs)
	}
}

// FromBytes - decode the signed form of a transaction
//
// the leading byte selects the layout: zero for proofs, one for
// genesis, two for payment, anything else is protobuf; the chain id
// must match and the whole of the data must be used
func FromBytes(data []byte, chainId byte) (Transaction, error) {
	if 0 == len(data) {
		return nil, fault.ErrTruncated
	}

	switch TagType(data[0]) {
	case NullTag, GenesisTag, PaymentTag:
		tx, n, err := Packed(data).Unpack(chainId)
		if nil == err && n != len(data) {
			err = fault.ErrTrailingBytes
		}
		if nil != err {
			logDecodeFailure("legacy", len(data), err)
			return nil, err
		}
		return tx, nil

	default:
		tx, err := UnmarshalProtobuf(data)
		if nil == err && tx.ChainId() != chainId {
			err = errors.Wrapf(fault.ErrChainIdMismatch, "expected: %q actual: %q", chainId, tx.ChainId())
		}
		if nil != err {
			logDecodeFailure("protobuf", len(data), err)
			return nil, err
		}
		return tx, nil
	}
}

// OrderBodyBytes - the message that is signed for an order
//
// versions 2 and 3 use the legacy layout, later ones protobuf
func OrderBodyBytes(o *Order) ([]byte, error) {
	if o.version >= orderProtobufVersion {
		return marshalMessage(orderBodyToProtobuf(o))
	}
	return packOrderBody(o)
}

// OrderID - hash of the order body bytes
func OrderID(o *Order) (digest.Digest, error) {
	body, err := OrderBodyBytes(o)
	if nil != err {
		return digest.Digest{}, err
	}
	return digest.NewDigest(body), nil
}
