// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/proto"

	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/digest"
	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/transactionrecord"
	"github.com/bitmark-inc/wavestx/util"
)

func TestLegacyRoundTrip(t *testing.T) {
	for i, tx := range legacyTransactions() {
		assert.False(t, tx.Type().IsProtobuf(tx.Version()), "%d: %s", i, tx.Type())

		b, err := transactionrecord.ToBytes(tx)
		if nil != err {
			t.Errorf("%d: %s: to bytes error: %s", i, tx.Type(), err)
			continue
		}
		tx2, err := transactionrecord.FromBytes(b, testChain)
		if nil != err {
			t.Errorf("%d: %s: from bytes error: %s", i, tx.Type(), err)
			t.Errorf("%d: %s", i, util.FormatBytes("bytes", b))
			continue
		}
		if !tx.Equal(tx2) {
			t.Errorf("%d: %s: mismatch: %+v  expected: %+v", i, tx.Type(), tx2, tx)
		}

		// same record again gives the same bytes
		b2, err := transactionrecord.ToBytes(tx2)
		assert.Nil(t, err)
		if !bytes.Equal(b, b2) {
			t.Errorf("%d: %s: %s", i, tx.Type(), util.FormatBytes("actual", b2))
			t.Errorf("%d: %s: %s", i, tx.Type(), util.FormatBytes("expected", b))
		}
	}
}

func TestLegacyTruncated(t *testing.T) {
	for i, tx := range legacyTransactions() {
		b := must(transactionrecord.ToBytes(tx))
		for _, n := range []int{1, len(b) / 2, len(b) - 1} {
			_, err := transactionrecord.FromBytes(b[:n], testChain)
			if nil == err {
				t.Errorf("%d: %s: length: %d: unexpected success", i, tx.Type(), n)
				continue
			}
			assert.True(t, fault.IsErrDecode(err) || fault.IsErrInvalid(err), "%d: %s: %d: error: %s", i, tx.Type(), n, err)
		}
	}

	_, err := transactionrecord.FromBytes([]byte{}, testChain)
	assert.Equal(t, fault.ErrTruncated, err)
}

func TestLegacyTrailingBytes(t *testing.T) {
	for i, tx := range legacyTransactions() {
		b := must(transactionrecord.ToBytes(tx))
		_, err := transactionrecord.FromBytes(append(b, 0x00), testChain)
		assert.Equal(t, fault.ErrTrailingBytes, err, "%d: %s", i, tx.Type())
	}
}

func TestLegacyLeaseCancelLayout(t *testing.T) {
	leaseId := digest.NewDigest([]byte("lease"))
	tx := must(transactionrecord.NewLeaseCancel(testChain, leaseId).Version(2).Sender(senderKey).Fee(100000).Timestamp(testTimestamp).Proofs(testProof).Build())

	expected := []byte{0x09, 0x02, testChain}
	expected = append(expected, senderKey[:]...)
	expected = append(expected, 0, 0, 0, 0, 0, 0x01, 0x86, 0xa0)
	ts := make([]byte, 8)
	binary.BigEndian.PutUint64(ts, uint64(testTimestamp))
	expected = append(expected, ts...)
	expected = append(expected, leaseId[:]...)

	body, err := transactionrecord.BodyBytes(tx)
	assert.Nil(t, err)
	if !bytes.Equal(expected, body) {
		t.Errorf("body: %s", util.FormatBytes("actual", body))
		t.Fatalf("body: %s", util.FormatBytes("expected", expected))
	}

	signed := append([]byte{0x00}, expected...)
	signed = append(signed, 0x01, 0x00, 0x01, 0x00, 0x03, 0x01, 0x02, 0x03)
	b, err := transactionrecord.ToBytes(tx)
	assert.Nil(t, err)
	assert.Equal(t, signed, b)

	id, err := transactionrecord.ID(tx)
	assert.Nil(t, err)
	assert.Equal(t, digest.NewDigest(expected), id)
}

func TestLegacyGenesisLayout(t *testing.T) {
	tx := must(transactionrecord.NewGenesis(testChain, testAddress(), 1000).Timestamp(testTimestamp).Build())
	b, err := transactionrecord.ToBytes(tx)
	assert.Nil(t, err)
	assert.Equal(t, 1+8+26+8, len(b))
	assert.Equal(t, byte(transactionrecord.GenesisTag), b[0])

	withProof, err := tx.AddProof(testProof)
	assert.Nil(t, err)
	_, err = transactionrecord.ToBytes(withProof)
	assert.Equal(t, fault.ErrInvalidSignature, errors.Cause(err))

	// the layout has no room for a sender or a fee
	withSender := must(transactionrecord.NewGenesis(testChain, testAddress(), 1000).Sender(senderKey).Timestamp(testTimestamp).Build())
	_, err = transactionrecord.ToBytes(withSender)
	assert.Equal(t, fault.ErrUnsupportedLayout, errors.Cause(err))
	assert.Contains(t, err.Error(), "sender")

	withFee := must(transactionrecord.NewGenesis(testChain, testAddress(), 1000).FeeAmount(asset.NativeAmount(5)).Timestamp(testTimestamp).Build())
	_, err = transactionrecord.ToBytes(withFee)
	assert.Equal(t, fault.ErrUnsupportedLayout, errors.Cause(err))
	assert.Contains(t, err.Error(), "fee")
	assert.True(t, fault.IsErrInvalid(err))

	// the protobuf layout carries both
	b, err = transactionrecord.MarshalProtobuf(withFee)
	assert.Nil(t, err)
	tx2, err := transactionrecord.UnmarshalProtobuf(b)
	assert.Nil(t, err)
	assert.Equal(t, asset.NativeAmount(5), tx2.Fee())
}

func TestLegacyExchangeSenderIsMatcher(t *testing.T) {
	buy, sell := testOrders(3, testAsset)
	tx := must(transactionrecord.NewExchange(testChain, buy, sell, 100, 2000).Version(2).Sender(senderKey).Timestamp(testTimestamp).Build())

	_, err := transactionrecord.ToBytes(tx)
	assert.Equal(t, fault.ErrUnsupportedLayout, errors.Cause(err))
	assert.Contains(t, err.Error(), "matcher")
	assert.True(t, fault.IsErrInvalid(err))

	_, err = transactionrecord.BodyBytes(tx)
	assert.Equal(t, fault.ErrUnsupportedLayout, errors.Cause(err))

	tx = must(transactionrecord.NewExchange(testChain, buy, sell, 100, 2000).Version(2).Sender(matcherKey).Timestamp(testTimestamp).Build())
	b, err := transactionrecord.ToBytes(tx)
	assert.Nil(t, err)
	tx2, err := transactionrecord.FromBytes(b, testChain)
	assert.Nil(t, err)
	assert.Equal(t, matcherKey, tx2.Sender())
	assert.True(t, tx.Equal(tx2))
}

func TestLegacyPaymentSignature(t *testing.T) {
	tx := must(transactionrecord.NewPayment(testChain, testAddress(), 1000).Sender(senderKey).Timestamp(testTimestamp).Build())
	_, err := transactionrecord.ToBytes(tx)
	assert.Equal(t, fault.ErrInvalidSignature, errors.Cause(err))

	signed := must(tx.AddProof(make(transactionrecord.Proof, 64)))
	b, err := transactionrecord.ToBytes(signed)
	assert.Nil(t, err)
	assert.Equal(t, 1+8+32+26+8+8+64, len(b))
}

func TestLegacyChainMismatch(t *testing.T) {
	tx := must(transactionrecord.NewBurn(testChain, asset.NewAmount(7, testAsset)).Version(2).Sender(senderKey).Timestamp(testTimestamp).Build())
	b := must(transactionrecord.ToBytes(tx))

	_, err := transactionrecord.FromBytes(b, 'W')
	assert.Equal(t, fault.ErrChainIdMismatch, errors.Cause(err))
}

func TestLegacyFeeAssetRejected(t *testing.T) {
	tx := must(transactionrecord.NewLease(testChain, addressRecipient(), 100).Version(2).FeeAsset(testAsset).Sender(senderKey).Build())
	_, err := transactionrecord.ToBytes(tx)
	assert.Equal(t, fault.ErrInvalidFeeAsset, err)

	// the protobuf version carries any fee asset
	tx = must(transactionrecord.NewLease(testChain, addressRecipient(), 100).FeeAsset(testAsset).Sender(senderKey).Build())
	_, err = transactionrecord.ToBytes(tx)
	assert.Nil(t, err)
}

func TestLegacyNativeAssetRejected(t *testing.T) {
	tx := must(transactionrecord.NewBurn(testChain, asset.NativeAmount(7)).Version(2).Sender(senderKey).Build())
	_, err := transactionrecord.ToBytes(tx)
	assert.Equal(t, fault.ErrNativeAssetNotAllowed, err)
}

func TestLegacyDeleteEntryRejected(t *testing.T) {
	tx := must(transactionrecord.NewData(testChain, transactionrecord.NewDeleteEntry("k")).Version(1).Sender(senderKey).Build())
	_, err := transactionrecord.ToBytes(tx)
	assert.Equal(t, fault.ErrInvalidDataEntry, errors.Cause(err))
}

func TestLegacyFieldTooLong(t *testing.T) {
	tx := must(transactionrecord.NewTransfer(testChain, addressRecipient(), asset.NativeAmount(1)).Version(2).Attachment(make([]byte, 65536)).Sender(senderKey).Build())
	_, err := transactionrecord.ToBytes(tx)
	assert.Equal(t, fault.ErrInvalidFieldLength, err)
}

func TestLegacyUnsupportedVersion(t *testing.T) {
	tx := must(transactionrecord.NewTransfer(testChain, addressRecipient(), asset.NativeAmount(1)).Version(1).Sender(senderKey).Build())
	_, err := transactionrecord.ToBytes(tx)
	assert.Equal(t, fault.ErrUnsupportedLayout, errors.Cause(err))

	// proofs marker followed by issue at its protobuf version
	_, err = transactionrecord.FromBytes([]byte{0x00, 0x03, 0x03, testChain}, testChain)
	assert.Equal(t, fault.ErrUnsupportedLayout, errors.Cause(err))
}

func TestLegacyBadOption(t *testing.T) {
	tx := must(transactionrecord.NewSetScript(testChain, nil).Version(1).Sender(senderKey).Build())
	b := must(transactionrecord.ToBytes(tx))

	// script flag follows marker, type, version, chain and key
	b[4+32] = 0x05
	_, err := transactionrecord.FromBytes(b, testChain)
	assert.Equal(t, fault.ErrNotOption, err)
}

func TestOrderBodyBytes(t *testing.T) {
	buy, _ := testOrders(3, testAsset)
	body, err := transactionrecord.OrderBodyBytes(buy)
	assert.Nil(t, err)
	assert.Equal(t, byte(3), body[0])
	assert.Equal(t, senderKey[:], body[1:33])
	assert.Equal(t, matcherKey[:], body[33:65])

	id, err := transactionrecord.OrderID(buy)
	assert.Nil(t, err)
	assert.Equal(t, digest.NewDigest(body), id)

	buy, _ = testOrders(2, testAsset)
	_, err = transactionrecord.OrderBodyBytes(buy)
	assert.Equal(t, fault.ErrInvalidFeeAsset, err)

	buy, _ = testOrders(4, testAsset)
	body, err = transactionrecord.OrderBodyBytes(buy)
	assert.Nil(t, err)
	m := transactionrecord.OrderToProtobuf(buy)
	assert.NotEqual(t, 0, len(m.Proofs))
	m.Proofs = nil
	expected, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
	assert.Nil(t, err)
	assert.Equal(t, expected, body)
}
