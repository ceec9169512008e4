// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/transactionrecord"
	"github.com/bitmark-inc/wavestx/transactionrecord/mocks"
)

func TestSignUsesBodyBytes(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	signature := make([]byte, 64)
	signature[0] = 0x5a

	for i, tx := range latestTransactions() {
		body, err := transactionrecord.BodyBytes(tx)
		if nil != err {
			t.Errorf("%d: %s: body bytes error: %s", i, tx.Type(), err)
			continue
		}

		signer := mocks.NewMockSigner(ctl)
		signer.EXPECT().Sign(body).Return(signature, nil).Times(1)

		signed, err := transactionrecord.Sign(tx, signer)
		if nil != err {
			t.Errorf("%d: %s: sign error: %s", i, tx.Type(), err)
			continue
		}
		proofs := signed.Proofs()
		assert.Equal(t, len(tx.Proofs())+1, len(proofs), "%d: %s", i, tx.Type())
		assert.Equal(t, transactionrecord.Proof(signature), proofs[len(proofs)-1], "%d: %s", i, tx.Type())

		// proofs are not part of the signed message
		body2, err := transactionrecord.BodyBytes(signed)
		assert.Nil(t, err)
		assert.Equal(t, body, body2, "%d: %s", i, tx.Type())
	}
}

func TestSignLegacyBody(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tx := must(transactionrecord.NewBurn(testChain, asset.NewAmount(1, testAsset)).Version(2).Sender(senderKey).Timestamp(testTimestamp).Build())
	body := must(transactionrecord.BodyBytes(tx))
	assert.Equal(t, byte(transactionrecord.BurnTag), body[0])

	signer := mocks.NewMockSigner(ctl)
	signer.EXPECT().Sign(body).Return([]byte{0x01}, nil)

	signed, err := transactionrecord.Sign(tx, signer)
	assert.Nil(t, err)

	b := must(transactionrecord.ToBytes(signed))
	tx2, err := transactionrecord.FromBytes(b, testChain)
	assert.Nil(t, err)
	assert.True(t, signed.Equal(tx2))
}

func TestSignerFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tx := must(transactionrecord.NewSetScript(testChain, nil).Build())

	signer := mocks.NewMockSigner(ctl)
	signer.EXPECT().Sign(gomock.Any()).Return(nil, fmt.Errorf("device locked"))

	_, err := transactionrecord.Sign(tx, signer)
	assert.Equal(t, fault.ErrSignerFailed, errors.Cause(err))
	assert.True(t, fault.IsErrProcess(err))
	assert.Contains(t, err.Error(), "device locked")
}

func TestSignOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	buy, _ := testOrders(3, testAsset)
	body := must(transactionrecord.OrderBodyBytes(buy))

	signer := mocks.NewMockSigner(ctl)
	signer.EXPECT().Sign(body).Return([]byte{0x07}, nil)

	signed, err := transactionrecord.SignOrder(buy, signer)
	assert.Nil(t, err)
	assert.Equal(t, len(buy.Proofs())+1, len(signed.Proofs()))
	assert.False(t, buy.Equal(signed))
}
