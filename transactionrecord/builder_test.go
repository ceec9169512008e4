// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/digest"
	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/invocation"
	"github.com/bitmark-inc/wavestx/transactionrecord"
)

func TestTagTable(t *testing.T) {
	tests := []struct {
		tag     transactionrecord.TagType
		name    string
		latest  byte
		fee     int64
		proto   byte
		legacy  byte
		noProto bool
	}{
		{transactionrecord.GenesisTag, "Genesis", 1, 0, 0, 1, true},
		{transactionrecord.PaymentTag, "Payment", 1, 100000, 0, 1, true},
		{transactionrecord.IssueTag, "Issue", 3, 100000000, 3, 2, false},
		{transactionrecord.TransferTag, "Transfer", 3, 100000, 3, 2, false},
		{transactionrecord.ExchangeTag, "Exchange", 3, 300000, 3, 2, false},
		{transactionrecord.MassTransferTag, "MassTransfer", 2, 100000, 2, 1, false},
		{transactionrecord.SetScriptTag, "SetScript", 2, 1000000, 2, 1, false},
		{transactionrecord.InvokeScriptTag, "InvokeScript", 2, 500000, 2, 1, false},
		{transactionrecord.UpdateAssetInfoTag, "UpdateAssetInfo", 1, 100000, 1, 0, false},
	}

	for i, test := range tests {
		assert.Equal(t, test.name, test.tag.String(), "%d", i)
		assert.Equal(t, test.latest, test.tag.LatestVersion(), "%d", i)
		assert.Equal(t, test.fee, test.tag.MinFee(), "%d", i)
		if test.noProto {
			assert.False(t, test.tag.IsProtobuf(test.latest), "%d", i)
		} else {
			assert.True(t, test.tag.IsProtobuf(test.proto), "%d", i)
			assert.True(t, test.tag.IsProtobuf(test.latest), "%d", i)
		}
		if 0 != test.legacy {
			assert.False(t, test.tag.IsProtobuf(test.legacy), "%d", i)
		}
	}

	assert.Equal(t, "*unknown*", transactionrecord.InvalidTag.String())
	assert.Equal(t, byte(0), transactionrecord.InvalidTag.LatestVersion())
}

func TestBuilderDefaults(t *testing.T) {
	before := time.Now().UnixMilli()
	tx, err := transactionrecord.NewTransfer(testChain, addressRecipient(), asset.NativeAmount(1)).Build()
	after := time.Now().UnixMilli()
	assert.Nil(t, err)

	assert.Equal(t, transactionrecord.TransferTag, tx.Type())
	assert.Equal(t, byte(3), tx.Version())
	assert.Equal(t, testChain, tx.ChainId())
	assert.Equal(t, asset.NativeAmount(100000), tx.Fee())
	assert.True(t, tx.Sender().IsZero())
	assert.True(t, tx.Timestamp() >= before && tx.Timestamp() <= after)
	assert.NotNil(t, tx.Proofs())
	assert.Equal(t, 0, len(tx.Proofs()))
	assert.NotNil(t, tx.Attachment())
	assert.Equal(t, 0, len(tx.Attachment()))

	name, ok := transactionrecord.RecordName(tx)
	assert.True(t, ok)
	assert.Equal(t, "Transfer", name)
}

func TestBuilderFee(t *testing.T) {
	tx := must(transactionrecord.NewTransfer(testChain, addressRecipient(), asset.NativeAmount(1)).Fee(7).FeeAsset(testAsset).Build())
	assert.Equal(t, asset.NewAmount(7, testAsset), tx.Fee())

	tx = must(transactionrecord.NewTransfer(testChain, addressRecipient(), asset.NativeAmount(1)).FeeAmount(asset.NewAmount(9, otherAsset)).Build())
	assert.Equal(t, asset.NewAmount(9, otherAsset), tx.Fee())

	issue := must(transactionrecord.NewIssue(testChain, "gold", 1, 0).Build())
	assert.Equal(t, asset.NativeAmount(100000000), issue.Fee())
	assert.True(t, issue.Reissuable())
	assert.Equal(t, "", issue.Description())
	assert.Equal(t, 0, len(issue.DescriptionBytes()))
	assert.Equal(t, []byte("gold"), issue.NameBytes())
	assert.NotNil(t, issue.Script())
}

func TestIssueTextBytes(t *testing.T) {
	description := []byte{0xd0, 0xbc, 0xd0, 0xb8, 0xd1, 0x80}
	issue := must(transactionrecord.NewIssue(testChain, "gold", 1, 0).DescriptionBytes(description).Build())
	assert.Equal(t, "мир", issue.Description())
	assert.Equal(t, description, issue.DescriptionBytes())

	// the accessor returns a copy
	b := issue.DescriptionBytes()
	b[0] = 0
	assert.Equal(t, description, issue.DescriptionBytes())

	// bytes that are not UTF-8 survive the legacy layout only
	raw := []byte{0xff, 0xfe, 'x'}
	legacy := must(transactionrecord.NewIssue(testChain, "gold", 1, 0).DescriptionBytes(raw).Version(2).Sender(senderKey).Timestamp(testTimestamp).Build())
	tx, err := transactionrecord.FromBytes(must(transactionrecord.ToBytes(legacy)), testChain)
	assert.Nil(t, err)
	assert.Equal(t, raw, tx.(*transactionrecord.Issue).DescriptionBytes())

	latest := must(transactionrecord.NewIssue(testChain, "gold", 1, 0).DescriptionBytes(raw).Sender(senderKey).Timestamp(testTimestamp).Build())
	_, err = transactionrecord.ToBytes(latest)
	assert.True(t, fault.IsErrInvalid(err), "error: %v", err)
}

func TestBuilderVersion(t *testing.T) {
	_, err := transactionrecord.NewBurn(testChain, asset.NewAmount(1, testAsset)).Version(0).Build()
	assert.Equal(t, fault.ErrInvalidVersion, err)

	_, err = transactionrecord.NewBurn(testChain, asset.NewAmount(1, testAsset)).Version(4).Build()
	assert.Equal(t, fault.ErrInvalidVersion, err)

	tx, err := transactionrecord.NewBurn(testChain, asset.NewAmount(1, testAsset)).Version(1).Build()
	assert.Nil(t, err)
	assert.Equal(t, byte(1), tx.Version())
}

func TestBuilderChainId(t *testing.T) {
	tx := must(transactionrecord.NewSetScript(testChain, nil).ChainId('W').Build())
	assert.Equal(t, byte('W'), tx.ChainId())
}

func TestBuilderValidation(t *testing.T) {
	_, err := transactionrecord.NewTransfer(testChain, account.Recipient{}, asset.NativeAmount(1)).Build()
	assert.Equal(t, fault.ErrRecipientRequired, err)

	_, err = transactionrecord.NewLease(testChain, account.Recipient{}, 1).Build()
	assert.Equal(t, fault.ErrRecipientRequired, err)

	_, err = transactionrecord.NewMassTransfer(testChain, []transactionrecord.MassTransferEntry{{Amount: 1}}).Build()
	assert.Equal(t, fault.ErrRecipientRequired, errors.Cause(err))

	_, err = transactionrecord.NewInvokeScript(testChain, account.Recipient{}, invocation.Default()).Build()
	assert.Equal(t, fault.ErrMissingDApp, err)

	_, err = transactionrecord.NewUpdateAssetInfo(testChain, asset.Native, "name", "description").Build()
	assert.Equal(t, fault.ErrNativeAssetNotAllowed, err)

	_, err = transactionrecord.NewData(testChain, transactionrecord.NewIntegerEntry("a", 1), nil).Build()
	assert.Equal(t, fault.ErrInvalidDataEntry, errors.Cause(err))

	buy, sell := testOrders(4, asset.Native)
	_, err = transactionrecord.NewExchange(testChain, buy, buy, 1, 1).Build()
	assert.Equal(t, fault.ErrInvalidOrder, err)

	_, err = transactionrecord.NewExchange(testChain, nil, sell, 1, 1).Build()
	assert.Equal(t, fault.ErrInvalidOrder, err)
}

func TestEmptyFunctionIsDefault(t *testing.T) {
	tx := must(transactionrecord.NewInvokeScript(testChain, addressRecipient(), invocation.Function{}).Build())
	assert.True(t, tx.Function().IsDefault())
	assert.Equal(t, 0, len(tx.Payments()))
}

func TestExchangeMatcherFees(t *testing.T) {
	buy, sell := testOrders(4, asset.Native)

	tx := must(transactionrecord.NewExchange(testChain, sell, buy, 1, 1).Build())
	assert.Equal(t, buy.Fee().Value, tx.BuyMatcherFee())
	assert.Equal(t, sell.Fee().Value, tx.SellMatcherFee())
	assert.Equal(t, buy, tx.BuyOrder())
	assert.Equal(t, sell, tx.SellOrder())
	assert.Equal(t, sell, tx.Order1())

	tx = must(transactionrecord.NewExchange(testChain, buy, sell, 1, 1).BuyMatcherFee(5).SellMatcherFee(6).Build())
	assert.Equal(t, int64(5), tx.BuyMatcherFee())
	assert.Equal(t, int64(6), tx.SellMatcherFee())
}

func TestOrderDefaults(t *testing.T) {
	o := must(transactionrecord.NewOrder(testChain, transactionrecord.Sell, matcherKey, asset.NewAmount(1, testAsset), asset.NativeAmount(2)).Timestamp(testTimestamp).Build())
	assert.Equal(t, byte(transactionrecord.OrderLatestVersion), o.Version())
	assert.Equal(t, asset.NativeAmount(transactionrecord.OrderDefaultFee), o.Fee())
	assert.Equal(t, testTimestamp+transactionrecord.OrderDefaultLifetime.Milliseconds(), o.Expiration())
	assert.Equal(t, "sell", o.Side().String())

	_, err := transactionrecord.NewOrder(testChain, transactionrecord.OrderSide(2), matcherKey, asset.NativeAmount(1), asset.NativeAmount(1)).Build()
	assert.Equal(t, fault.ErrInvalidOrder, err)
}

func TestProofLimit(t *testing.T) {
	proofs := make([]transactionrecord.Proof, transactionrecord.MaxProofs+1)
	_, err := transactionrecord.NewSetScript(testChain, nil).Proofs(proofs...).Build()
	assert.Equal(t, fault.ErrTooManyProofs, err)

	var tx transactionrecord.Transaction = must(transactionrecord.NewSetScript(testChain, nil).Build())
	for i := 0; i < transactionrecord.MaxProofs; i += 1 {
		tx, err = tx.AddProof(transactionrecord.Proof{byte(i)})
		assert.Nil(t, err)
	}
	assert.Equal(t, transactionrecord.MaxProofs, len(tx.Proofs()))

	_, err = tx.AddProof(testProof)
	assert.Equal(t, fault.ErrTooManyProofs, err)
}

func TestAddProofKeepsOriginal(t *testing.T) {
	for i, tx := range latestTransactions() {
		before := len(tx.Proofs())
		tx2, err := tx.AddProof(testProof)
		if nil != err {
			t.Errorf("%d: %s: add proof error: %s", i, tx.Type(), err)
			continue
		}
		assert.Equal(t, before, len(tx.Proofs()), "%d: %s", i, tx.Type())
		assert.Equal(t, before+1, len(tx2.Proofs()), "%d: %s", i, tx.Type())
		assert.Equal(t, testProof, tx2.Proofs()[before], "%d: %s", i, tx.Type())
		assert.False(t, tx.Equal(tx2), "%d: %s", i, tx.Type())
		assert.Equal(t, tx.Type(), tx2.Type(), "%d", i)
	}
}

func TestProofsAreCopies(t *testing.T) {
	proof := transactionrecord.Proof{1, 2, 3}
	tx := must(transactionrecord.NewSetScript(testChain, []byte{9}).Proofs(proof).Build())
	proof[0] = 0xff
	assert.Equal(t, byte(1), tx.Proofs()[0][0])

	proofs := tx.Proofs()
	proofs[0] = nil
	assert.Equal(t, 3, len(tx.Proofs()[0]))

	tx.Proofs()[0][0] = 0xee
	assert.Equal(t, transactionrecord.Proof{1, 2, 3}, tx.Proofs()[0])

	// a copy with one more proof shares no bytes with the original
	signed, err := tx.AddProof(transactionrecord.Proof{4})
	assert.Nil(t, err)
	signed.Proofs()[0][0] = 0xee
	assert.Equal(t, transactionrecord.Proof{1, 2, 3}, signed.Proofs()[0])
	assert.Equal(t, transactionrecord.Proof{1, 2, 3}, tx.Proofs()[0])
	assert.Equal(t, 1, len(tx.Proofs()))

	script := tx.Script()
	script[0] = 0
	assert.Equal(t, []byte{9}, tx.Script())
}

func TestEqualDifferentTypes(t *testing.T) {
	all := latestTransactions()
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, a.Equal(b), "%d: %s  %d: %s", i, a.Type(), j, b.Type())
		}
	}
}

func TestLeaseThenCancel(t *testing.T) {
	lease := must(transactionrecord.NewLease(testChain, aliasRecipient(), 100).Sender(senderKey).Timestamp(testTimestamp).Build())
	assert.True(t, lease.Recipient().IsAlias())
	assert.Equal(t, "rich", lease.Recipient().Alias().Name())
	assert.Equal(t, int64(100), lease.Amount())

	id, err := transactionrecord.ID(lease)
	assert.Nil(t, err)

	cancel := must(transactionrecord.NewLeaseCancel(testChain, id).Sender(senderKey).Timestamp(testTimestamp).Build())
	assert.Equal(t, id, cancel.LeaseId())
	assert.False(t, lease.Equal(cancel))
	assert.False(t, cancel.Equal(lease))

	body, err := transactionrecord.BodyBytes(lease)
	assert.Nil(t, err)
	assert.Equal(t, digest.NewDigest(body), id)
}

func TestOrderProofsAreCopies(t *testing.T) {
	buy, _ := testOrders(4, asset.Native)
	signed, err := buy.AddProof(transactionrecord.Proof{7, 8})
	assert.Nil(t, err)

	assert.Equal(t, 2, len(signed.Proofs()))

	signed.Proofs()[1][0] = 0
	assert.Equal(t, transactionrecord.Proof{7, 8}, signed.Proofs()[1])

	buy.Proofs()[0][0] = 0xee
	signed.Proofs()[0][0] = 0xee
	assert.Equal(t, testProof, buy.Proofs()[0])
	assert.Equal(t, testProof, signed.Proofs()[0])
}

func TestFunctionIsCopied(t *testing.T) {
	binary := invocation.BinaryArg{1, 2}
	tx := must(transactionrecord.NewInvokeScript(testChain, addressRecipient(), invocation.New("f", invocation.ListArg{binary})).Sender(senderKey).Build())
	binary[0] = 0xff

	f := tx.Function()
	f.Args[0].(invocation.ListArg)[0].(invocation.BinaryArg)[1] = 0xff
	f.Args[0] = invocation.IntegerArg(1)

	expected := invocation.New("f", invocation.ListArg{invocation.BinaryArg{1, 2}})
	assert.True(t, expected.Equal(tx.Function()), "function: %+v", tx.Function())
}
