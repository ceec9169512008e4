// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/wavestx/fault"
)

//go:generate mockgen -source=sign.go -destination=mocks/mock_signer.go -package=mocks

// Signer - produces a signature over a message
//
// key handling and the signature scheme are up to the implementation
type Signer interface {
	Sign(message []byte) ([]byte, error)
}

// Sign - add the signature of the body bytes as the next proof
func Sign(tx Transaction, signer Signer) (Transaction, error) {
	body, err := BodyBytes(tx)
	if nil != err {
		return nil, err
	}
	signature, err := signer.Sign(body)
	if nil != err {
		return nil, errors.Wrapf(fault.ErrSignerFailed, "%s: %s", tx.Type(), err)
	}
	return tx.AddProof(signature)
}

// SignOrder - add the signature of the order body bytes as the next proof
func SignOrder(o *Order, signer Signer) (*Order, error) {
	body, err := OrderBodyBytes(o)
	if nil != err {
		return nil, err
	}
	signature, err := signer.Sign(body)
	if nil != err {
		return nil, errors.Wrapf(fault.ErrSignerFailed, "order: %s", err)
	}
	return o.AddProof(signature)
}
