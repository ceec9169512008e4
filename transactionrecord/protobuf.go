// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"math"

	"github.com/pkg/errors"
	g "github.com/wavesplatform/gowaves/pkg/grpc/generated/waves"
	"google.golang.org/protobuf/proto"

	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/digest"
	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/invocation"
)

// signed messages and ids depend on the exact bytes
var protobufOptions = proto.MarshalOptions{Deterministic: true}

// ToProtobuf - convert to the signed protobuf message
func ToProtobuf(tx Transaction) (*g.SignedTransaction, error) {
	unsigned, err := transactionToProtobuf(tx)
	if nil != err {
		return nil, err
	}
	return &g.SignedTransaction{
		Transaction: &g.SignedTransaction_WavesTransaction{WavesTransaction: unsigned},
		Proofs:      proofsToProtobuf(tx.envelopeData().proofs),
	}, nil
}

// FromProtobuf - convert a signed protobuf message
//
// a message without a Waves transaction or without transaction data
// is unrecognised
func FromProtobuf(signed *g.SignedTransaction) (Transaction, error) {
	unsigned := signed.GetWavesTransaction()
	if nil == unsigned || nil == unsigned.GetData() {
		return nil, fault.ErrUnrecognisedVariant
	}
	return transactionFromProtobuf(unsigned, signed.GetProofs())
}

// MarshalProtobuf - bytes of the signed protobuf message
func MarshalProtobuf(tx Transaction) ([]byte, error) {
	signed, err := ToProtobuf(tx)
	if nil != err {
		return nil, err
	}
	return marshalMessage(signed)
}

// UnmarshalProtobuf - decode the bytes of a signed protobuf message
func UnmarshalProtobuf(buffer []byte) (Transaction, error) {
	signed := &g.SignedTransaction{}
	if err := proto.Unmarshal(buffer, signed); nil != err {
		return nil, errors.Wrap(fault.ErrMalformedProtobuf, err.Error())
	}
	return FromProtobuf(signed)
}

// text fields must be UTF-8 to marshal
func marshalMessage(m proto.Message) ([]byte, error) {
	buffer, err := protobufOptions.Marshal(m)
	if nil != err {
		return nil, errors.Wrap(fault.ErrMarshalProtobuf, err.Error())
	}
	return buffer, nil
}

// the unsigned message, also the source of the body bytes
func transactionToProtobuf(tx Transaction) (*g.Transaction, error) {
	m := &g.Transaction{
		ChainId:         int32(tx.ChainId()),
		SenderPublicKey: publicKeyToProtobuf(tx.Sender()),
		Fee:             amountToProtobuf(tx.Fee()),
		Timestamp:       tx.Timestamp(),
		Version:         int32(tx.Version()),
	}

	switch t := tx.(type) {

	case *Genesis:
		m.Data = &g.Transaction_Genesis{Genesis: &g.GenesisTransactionData{
			RecipientAddress: t.recipient.Bytes(),
			Amount:           t.amount,
		}}

	case *Payment:
		m.Data = &g.Transaction_Payment{Payment: &g.PaymentTransactionData{
			RecipientAddress: t.recipient.Bytes(),
			Amount:           t.amount,
		}}

	case *Issue:
		m.Data = &g.Transaction_Issue{Issue: &g.IssueTransactionData{
			Name:        t.name,
			Description: t.description,
			Amount:      t.quantity,
			Decimals:    int32(t.decimals),
			Reissuable:  t.reissuable,
			Script:      cloneBytes(t.script),
		}}

	case *Transfer:
		m.Data = &g.Transaction_Transfer{Transfer: &g.TransferTransactionData{
			Recipient:  recipientToProtobuf(t.recipient),
			Amount:     amountToProtobuf(t.amount),
			Attachment: cloneBytes(t.attachment),
		}}

	case *Reissue:
		m.Data = &g.Transaction_Reissue{Reissue: &g.ReissueTransactionData{
			AssetAmount: amountToProtobuf(t.amount),
			Reissuable:  t.reissuable,
		}}

	case *Burn:
		m.Data = &g.Transaction_Burn{Burn: &g.BurnTransactionData{
			AssetAmount: amountToProtobuf(t.amount),
		}}

	case *Exchange:
		m.Data = &g.Transaction_Exchange{Exchange: &g.ExchangeTransactionData{
			Amount:         t.amount,
			Price:          t.price,
			BuyMatcherFee:  t.buyMatcherFee,
			SellMatcherFee: t.sellMatcherFee,
			Orders:         []*g.Order{OrderToProtobuf(t.order1), OrderToProtobuf(t.order2)},
		}}

	case *Lease:
		m.Data = &g.Transaction_Lease{Lease: &g.LeaseTransactionData{
			Recipient: recipientToProtobuf(t.recipient),
			Amount:    t.amount,
		}}

	case *LeaseCancel:
		m.Data = &g.Transaction_LeaseCancel{LeaseCancel: &g.LeaseCancelTransactionData{
			LeaseId: cloneBytes(t.leaseId[:]),
		}}

	case *CreateAlias:
		m.Data = &g.Transaction_CreateAlias{CreateAlias: &g.CreateAliasTransactionData{
			Alias: t.alias.Name(),
		}}

	case *MassTransfer:
		transfers := make([]*g.MassTransferTransactionData_Transfer, len(t.transfers))
		for i, transfer := range t.transfers {
			transfers[i] = &g.MassTransferTransactionData_Transfer{
				Recipient: recipientToProtobuf(transfer.Recipient),
				Amount:    transfer.Amount,
			}
		}
		m.Data = &g.Transaction_MassTransfer{MassTransfer: &g.MassTransferTransactionData{
			AssetId:    t.asset.Bytes(),
			Transfers:  transfers,
			Attachment: cloneBytes(t.attachment),
		}}

	case *Data:
		entries := make([]*g.DataTransactionData_DataEntry, len(t.entries))
		for i, entry := range t.entries {
			entries[i] = dataEntryToProtobuf(entry)
		}
		m.Data = &g.Transaction_DataTransaction{DataTransaction: &g.DataTransactionData{
			Data: entries,
		}}

	case *SetScript:
		m.Data = &g.Transaction_SetScript{SetScript: &g.SetScriptTransactionData{
			Script: cloneBytes(t.script),
		}}

	case *SponsorFee:
		m.Data = &g.Transaction_SponsorFee{SponsorFee: &g.SponsorFeeTransactionData{
			MinFee: amountToProtobuf(t.minFee),
		}}

	case *SetAssetScript:
		m.Data = &g.Transaction_SetAssetScript{SetAssetScript: &g.SetAssetScriptTransactionData{
			AssetId: t.asset.Bytes(),
			Script:  cloneBytes(t.script),
		}}

	case *InvokeScript:
		payments := make([]*g.Amount, len(t.payments))
		for i, payment := range t.payments {
			payments[i] = amountToProtobuf(payment)
		}
		m.Data = &g.Transaction_InvokeScript{InvokeScript: &g.InvokeScriptTransactionData{
			DApp:         recipientToProtobuf(t.dApp),
			FunctionCall: t.function.Bytes(),
			Payments:     payments,
		}}

	case *UpdateAssetInfo:
		m.Data = &g.Transaction_UpdateAssetInfo{UpdateAssetInfo: &g.UpdateAssetInfoTransactionData{
			AssetId:     t.asset.Bytes(),
			Name:        t.name,
			Description: t.description,
		}}

	default:
		fault.Criticalf("protobuf: unsupported transaction: %T", tx)
		return nil, errors.Wrapf(fault.ErrUnsupportedVariant, "%T", tx)
	}

	return m, nil
}

func transactionFromProtobuf(m *g.Transaction, proofs [][]byte) (Transaction, error) {
	if m.ChainId < 0 || m.ChainId > math.MaxUint8 {
		return nil, fault.ErrInvalidChain
	}
	if m.Version < 1 || m.Version > math.MaxUint8 {
		return nil, fault.ErrInvalidVersion
	}
	chainId := byte(m.ChainId)
	version := byte(m.Version)

	sender, err := publicKeyFromProtobuf(m.SenderPublicKey)
	if nil != err {
		return nil, err
	}
	fee, err := amountFromProtobuf(m.Fee)
	if nil != err {
		return nil, errors.Wrap(err, "fee")
	}
	envelopeFor := func(tag TagType) (envelope, error) {
		return newEnvelope(tag, version, chainId, sender, fee, m.Timestamp, proofsFromProtobuf(proofs))
	}

	switch data := m.Data.(type) {

	case *g.Transaction_Genesis:
		d := data.Genesis
		e, err := envelopeFor(GenesisTag)
		if nil != err {
			return nil, err
		}
		recipient, err := account.AddressFromBytes(d.GetRecipientAddress())
		if nil != err {
			return nil, err
		}
		return newGenesis(e, recipient, d.GetAmount())

	case *g.Transaction_Payment:
		d := data.Payment
		e, err := envelopeFor(PaymentTag)
		if nil != err {
			return nil, err
		}
		recipient, err := account.AddressFromBytes(d.GetRecipientAddress())
		if nil != err {
			return nil, err
		}
		return newPayment(e, recipient, d.GetAmount())

	case *g.Transaction_Issue:
		d := data.Issue
		e, err := envelopeFor(IssueTag)
		if nil != err {
			return nil, err
		}
		if d.GetDecimals() < 0 || d.GetDecimals() > math.MaxUint8 {
			return nil, errors.Wrap(fault.ErrInvalidCount, "decimals")
		}
		return newIssue(e, d.GetName(), d.GetDescription(), d.GetAmount(), byte(d.GetDecimals()), d.GetReissuable(), d.GetScript())

	case *g.Transaction_Transfer:
		d := data.Transfer
		e, err := envelopeFor(TransferTag)
		if nil != err {
			return nil, err
		}
		recipient, err := recipientFromProtobuf(d.GetRecipient(), chainId)
		if nil != err {
			return nil, err
		}
		amount, err := amountFromProtobuf(d.GetAmount())
		if nil != err {
			return nil, err
		}
		return newTransfer(e, recipient, amount, d.GetAttachment())

	case *g.Transaction_Reissue:
		d := data.Reissue
		e, err := envelopeFor(ReissueTag)
		if nil != err {
			return nil, err
		}
		amount, err := amountFromProtobuf(d.GetAssetAmount())
		if nil != err {
			return nil, err
		}
		return newReissue(e, amount, d.GetReissuable())

	case *g.Transaction_Burn:
		d := data.Burn
		e, err := envelopeFor(BurnTag)
		if nil != err {
			return nil, err
		}
		amount, err := amountFromProtobuf(d.GetAssetAmount())
		if nil != err {
			return nil, err
		}
		return newBurn(e, amount)

	case *g.Transaction_Exchange:
		d := data.Exchange
		e, err := envelopeFor(ExchangeTag)
		if nil != err {
			return nil, err
		}
		orders := d.GetOrders()
		if 2 != len(orders) {
			return nil, errors.Wrapf(fault.ErrInvalidOrder, "order count: %d", len(orders))
		}
		order1, err := OrderFromProtobuf(orders[0])
		if nil != err {
			return nil, errors.Wrap(err, "order: 1")
		}
		order2, err := OrderFromProtobuf(orders[1])
		if nil != err {
			return nil, errors.Wrap(err, "order: 2")
		}
		return newExchange(e, order1, order2, d.GetAmount(), d.GetPrice(), d.GetBuyMatcherFee(), d.GetSellMatcherFee())

	case *g.Transaction_Lease:
		d := data.Lease
		e, err := envelopeFor(LeaseTag)
		if nil != err {
			return nil, err
		}
		recipient, err := recipientFromProtobuf(d.GetRecipient(), chainId)
		if nil != err {
			return nil, err
		}
		return newLease(e, recipient, d.GetAmount())

	case *g.Transaction_LeaseCancel:
		d := data.LeaseCancel
		e, err := envelopeFor(LeaseCancelTag)
		if nil != err {
			return nil, err
		}
		leaseId := digest.Digest{}
		if err := digest.DigestFromBytes(&leaseId, d.GetLeaseId()); nil != err {
			return nil, err
		}
		return newLeaseCancel(e, leaseId)

	case *g.Transaction_CreateAlias:
		d := data.CreateAlias
		e, err := envelopeFor(CreateAliasTag)
		if nil != err {
			return nil, err
		}
		alias, err := account.NewAlias(chainId, d.GetAlias())
		if nil != err {
			return nil, err
		}
		return newCreateAlias(e, alias)

	case *g.Transaction_MassTransfer:
		d := data.MassTransfer
		e, err := envelopeFor(MassTransferTag)
		if nil != err {
			return nil, err
		}
		id, err := asset.IDFromBytes(d.GetAssetId())
		if nil != err {
			return nil, err
		}
		transfers := make([]MassTransferEntry, len(d.GetTransfers()))
		for i, transfer := range d.GetTransfers() {
			if nil == transfer {
				return nil, errors.Wrapf(fault.ErrMissingRecipient, "transfer: %d", i)
			}
			recipient, err := recipientFromProtobuf(transfer.GetRecipient(), chainId)
			if nil != err {
				return nil, errors.Wrapf(err, "transfer: %d", i)
			}
			transfers[i] = MassTransferEntry{Recipient: recipient, Amount: transfer.GetAmount()}
		}
		return newMassTransfer(e, id, transfers, d.GetAttachment())

	case *g.Transaction_DataTransaction:
		d := data.DataTransaction
		e, err := envelopeFor(DataTag)
		if nil != err {
			return nil, err
		}
		entries := make([]DataEntry, len(d.GetData()))
		for i, entry := range d.GetData() {
			if entries[i], err = dataEntryFromProtobuf(entry); nil != err {
				return nil, errors.Wrapf(err, "entry: %d", i)
			}
		}
		return newData(e, entries)

	case *g.Transaction_SetScript:
		d := data.SetScript
		e, err := envelopeFor(SetScriptTag)
		if nil != err {
			return nil, err
		}
		return newSetScript(e, d.GetScript())

	case *g.Transaction_SponsorFee:
		d := data.SponsorFee
		e, err := envelopeFor(SponsorFeeTag)
		if nil != err {
			return nil, err
		}
		minFee, err := amountFromProtobuf(d.GetMinFee())
		if nil != err {
			return nil, err
		}
		return newSponsorFee(e, minFee)

	case *g.Transaction_SetAssetScript:
		d := data.SetAssetScript
		e, err := envelopeFor(SetAssetScriptTag)
		if nil != err {
			return nil, err
		}
		id, err := asset.IDFromBytes(d.GetAssetId())
		if nil != err {
			return nil, err
		}
		return newSetAssetScript(e, id, d.GetScript())

	case *g.Transaction_InvokeScript:
		d := data.InvokeScript
		e, err := envelopeFor(InvokeScriptTag)
		if nil != err {
			return nil, err
		}
		if nil == d.GetDApp() {
			return nil, fault.ErrMissingDApp
		}
		dApp, err := recipientFromProtobuf(d.GetDApp(), chainId)
		if nil != err {
			return nil, err
		}
		function, err := invocation.Decode(d.GetFunctionCall())
		if nil != err {
			return nil, err
		}
		payments := make([]asset.Amount, len(d.GetPayments()))
		for i, payment := range d.GetPayments() {
			if nil == payment {
				return nil, errors.Wrapf(fault.ErrMalformedProtobuf, "payment: %d", i)
			}
			if payments[i], err = amountFromProtobuf(payment); nil != err {
				return nil, errors.Wrapf(err, "payment: %d", i)
			}
		}
		return newInvokeScript(e, dApp, function, payments)

	case *g.Transaction_UpdateAssetInfo:
		d := data.UpdateAssetInfo
		e, err := envelopeFor(UpdateAssetInfoTag)
		if nil != err {
			return nil, err
		}
		id, err := asset.IDFromBytes(d.GetAssetId())
		if nil != err {
			return nil, err
		}
		return newUpdateAssetInfo(e, id, d.GetName(), d.GetDescription())

	default:
		return nil, fault.ErrUnrecognisedVariant
	}
}

// OrderToProtobuf - convert an order to its protobuf message
func OrderToProtobuf(o *Order) *g.Order {
	m := orderBodyToProtobuf(o)
	m.Proofs = proofsToProtobuf(o.proofs)
	return m
}

// the order without proofs, the signed message of a protobuf order
func orderBodyToProtobuf(o *Order) *g.Order {
	m := &g.Order{
		ChainId:          int32(o.chainId),
		MatcherPublicKey: publicKeyToProtobuf(o.matcher),
		AssetPair: &g.AssetPair{
			AmountAssetId: o.amount.Asset.Bytes(),
			PriceAssetId:  o.price.Asset.Bytes(),
		},
		OrderSide:  g.Order_Side(o.side),
		Amount:     o.amount.Value,
		Price:      o.price.Value,
		Timestamp:  o.timestamp,
		Expiration: o.expiration,
		MatcherFee: amountToProtobuf(o.fee),
		Version:    int32(o.version),
	}
	// a set oneof is always written, so the zero key is left out
	if !o.sender.IsZero() {
		m.Sender = &g.Order_SenderPublicKey{SenderPublicKey: o.sender.Bytes()}
	}
	return m
}

// OrderFromProtobuf - convert an order message
//
// only orders signed by a public key with the default price mode
// are supported
func OrderFromProtobuf(m *g.Order) (*Order, error) {
	if nil == m {
		return nil, fault.ErrInvalidOrder
	}
	if m.ChainId < 0 || m.ChainId > math.MaxUint8 {
		return nil, fault.ErrInvalidChain
	}
	if m.Version < 1 || m.Version > math.MaxUint8 {
		return nil, fault.ErrInvalidVersion
	}
	if g.Order_BUY != m.OrderSide && g.Order_SELL != m.OrderSide {
		return nil, fault.ErrInvalidOrderSide
	}
	if _, ok := m.Sender.(*g.Order_Eip712Signature); ok {
		return nil, errors.Wrap(fault.ErrUnsupportedVariant, "eip712 order")
	}
	if g.Order_DEFAULT != m.PriceMode {
		return nil, errors.Wrapf(fault.ErrUnsupportedVariant, "price mode: %s", m.PriceMode)
	}
	sender, err := publicKeyFromProtobuf(m.GetSenderPublicKey())
	if nil != err {
		return nil, err
	}
	matcher, err := publicKeyFromProtobuf(m.MatcherPublicKey)
	if nil != err {
		return nil, err
	}
	amountAsset, err := asset.IDFromBytes(m.GetAssetPair().GetAmountAssetId())
	if nil != err {
		return nil, err
	}
	priceAsset, err := asset.IDFromBytes(m.GetAssetPair().GetPriceAssetId())
	if nil != err {
		return nil, err
	}
	fee, err := amountFromProtobuf(m.MatcherFee)
	if nil != err {
		return nil, err
	}
	return newOrder(byte(m.Version), byte(m.ChainId), sender, matcher, OrderSide(m.OrderSide),
		asset.NewAmount(m.Amount, amountAsset), asset.NewAmount(m.Price, priceAsset),
		m.Timestamp, m.Expiration, fee, proofsFromProtobuf(m.Proofs))
}

// the zero key is sent as no bytes
func publicKeyToProtobuf(pk account.PublicKey) []byte {
	if pk.IsZero() {
		return nil
	}
	return pk.Bytes()
}

func publicKeyFromProtobuf(buffer []byte) (account.PublicKey, error) {
	if 0 == len(buffer) {
		return account.PublicKey{}, nil
	}
	return account.PublicKeyFromBytes(buffer)
}

func amountToProtobuf(a asset.Amount) *g.Amount {
	return &g.Amount{AssetId: a.Asset.Bytes(), Amount: a.Value}
}

// an absent amount is zero of the native asset
func amountFromProtobuf(m *g.Amount) (asset.Amount, error) {
	if nil == m {
		return asset.NativeAmount(0), nil
	}
	id, err := asset.IDFromBytes(m.AssetId)
	if nil != err {
		return asset.Amount{}, err
	}
	return asset.NewAmount(m.Amount, id), nil
}

// an address is carried as its public key hash
func recipientToProtobuf(r account.Recipient) *g.Recipient {
	switch {
	case r.IsAlias():
		return &g.Recipient{Recipient: &g.Recipient_Alias{Alias: r.Alias().Name()}}
	case r.IsPresent():
		return &g.Recipient{Recipient: &g.Recipient_PublicKeyHash{PublicKeyHash: r.Address().PublicKeyHash()}}
	default:
		return &g.Recipient{}
	}
}

// the chain of the transaction completes the address or alias
func recipientFromProtobuf(m *g.Recipient, chainId byte) (account.Recipient, error) {
	switch r := m.GetRecipient().(type) {
	case *g.Recipient_PublicKeyHash:
		if account.PublicKeyHashLength != len(r.PublicKeyHash) {
			return account.Recipient{}, fault.ErrNotAddress
		}
		return account.RecipientFromAddress(account.AddressFromPart(r.PublicKeyHash, chainId)), nil
	case *g.Recipient_Alias:
		alias, err := account.NewAlias(chainId, r.Alias)
		if nil != err {
			return account.Recipient{}, err
		}
		return account.RecipientFromAlias(alias), nil
	default:
		return account.Recipient{}, fault.ErrMissingRecipient
	}
}

// a delete entry has no value member
func dataEntryToProtobuf(entry DataEntry) *g.DataTransactionData_DataEntry {
	m := &g.DataTransactionData_DataEntry{Key: entry.Key()}
	switch e := entry.(type) {
	case IntegerEntry:
		m.Value = &g.DataTransactionData_DataEntry_IntValue{IntValue: e.value}
	case BooleanEntry:
		m.Value = &g.DataTransactionData_DataEntry_BoolValue{BoolValue: e.value}
	case BinaryEntry:
		m.Value = &g.DataTransactionData_DataEntry_BinaryValue{BinaryValue: cloneBytes(e.value)}
	case StringEntry:
		m.Value = &g.DataTransactionData_DataEntry_StringValue{StringValue: e.value}
	}
	return m
}

// no value member is a deletion of the key
func dataEntryFromProtobuf(m *g.DataTransactionData_DataEntry) (DataEntry, error) {
	if nil == m {
		return nil, fault.ErrInvalidDataEntry
	}
	switch v := m.Value.(type) {
	case nil:
		return NewDeleteEntry(m.Key), nil
	case *g.DataTransactionData_DataEntry_IntValue:
		return NewIntegerEntry(m.Key, v.IntValue), nil
	case *g.DataTransactionData_DataEntry_BoolValue:
		return NewBooleanEntry(m.Key, v.BoolValue), nil
	case *g.DataTransactionData_DataEntry_BinaryValue:
		return NewBinaryEntry(m.Key, v.BinaryValue), nil
	case *g.DataTransactionData_DataEntry_StringValue:
		return NewStringEntry(m.Key, v.StringValue), nil
	default:
		return nil, fault.ErrUnknownDataType
	}
}

func proofsToProtobuf(proofs Proofs) [][]byte {
	p := make([][]byte, len(proofs))
	for i, proof := range proofs {
		p[i] = cloneBytes(proof)
	}
	return p
}

func proofsFromProtobuf(proofs [][]byte) []Proof {
	p := make([]Proof, len(proofs))
	for i, proof := range proofs {
		p[i] = proof
	}
	return p
}
