// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/digest"
	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/invocation"
)

// Unpack - turn a legacy byte slice into a record
//
// the chain id is checked against the layouts that carry one and is
// given to the layouts that do not; returns the number of bytes used
func (record Packed) Unpack(chainId byte) (t Transaction, n int, e error) {

	// any slice out of range means the record was cut short
	defer func() {
		if r := recover(); nil != r {
			t = nil
			n = 0
			e = fault.ErrTruncated
		}
	}()

	if 0 == len(record) {
		return nil, 0, fault.ErrTruncated
	}

	// reads past the end must fail even when capacity remains
	r := &reader{record: record[:len(record):len(record)]}
	switch TagType(record[0]) {
	case GenesisTag:
		r.n = 1
		t, e = r.genesis(chainId)
	case PaymentTag:
		r.n = 1
		t, e = r.payment(chainId)
	case NullTag:
		tag := TagType(record[1])
		version := record[2]
		r.n = 3
		if 0 == legacyVersion(tag) || version != legacyVersion(tag) || tag <= PaymentTag {
			return nil, 0, errors.Wrapf(fault.ErrUnsupportedLayout, "%s version: %d", tag, version)
		}
		t, e = r.proven(tag, version, chainId)
	default:
		return nil, 0, fault.ErrNotTransactionPack
	}
	if nil != e {
		return nil, 0, e
	}
	return t, r.n, nil
}

// cursor over a legacy record
type reader struct {
	record Packed
	n      int
}

func (r *reader) byte() byte {
	b := r.record[r.n]
	r.n += 1
	return b
}

func (r *reader) bytes(length int) []byte {
	b := cloneBytes(r.record[r.n : r.n+length])
	r.n += length
	return b
}

func (r *reader) bool() (bool, error) {
	switch r.byte() {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.ErrNotOption
	}
}

func (r *reader) uint16() int {
	v := binary.BigEndian.Uint16(r.record[r.n:])
	r.n += 2
	return int(v)
}

func (r *reader) uint32() int {
	v := binary.BigEndian.Uint32(r.record[r.n:])
	r.n += 4
	return int(v)
}

func (r *reader) int64() int64 {
	v := binary.BigEndian.Uint64(r.record[r.n:])
	r.n += 8
	return int64(v)
}

func (r *reader) shortBytes() []byte {
	return r.bytes(r.uint16())
}

func (r *reader) publicKey() account.PublicKey {
	pk := account.PublicKey{}
	r.n += copy(pk[:], r.record[r.n:r.n+account.PublicKeyLength])
	return pk
}

func (r *reader) address() (account.Address, error) {
	return account.AddressFromBytes(r.bytes(account.AddressLength))
}

func (r *reader) recipient() (account.Recipient, error) {
	recipient, length, err := account.RecipientFromBytes(r.record[r.n:])
	if nil != err {
		return account.Recipient{}, err
	}
	r.n += length
	return recipient, nil
}

func (r *reader) digest() digest.Digest {
	d := digest.Digest{}
	r.n += copy(d[:], r.record[r.n:r.n+digest.Length])
	return d
}

func (r *reader) assetId() asset.ID {
	return asset.Issued(r.digest())
}

func (r *reader) assetOption() (asset.ID, error) {
	switch r.byte() {
	case 0:
		return asset.Native, nil
	case 1:
		return r.assetId(), nil
	default:
		return asset.Native, fault.ErrNotOption
	}
}

func (r *reader) scriptOption() ([]byte, error) {
	switch r.byte() {
	case 0:
		return []byte{}, nil
	case 1:
		return r.shortBytes(), nil
	default:
		return nil, fault.ErrNotOption
	}
}

func (r *reader) functionOption() (invocation.Function, error) {
	switch r.byte() {
	case 0:
		return invocation.Default(), nil
	case 1:
		f, length, err := invocation.Packed(r.record[r.n:]).Unpack()
		if nil != err {
			return invocation.Function{}, err
		}
		r.n += length
		return f, nil
	default:
		return invocation.Function{}, fault.ErrNotOption
	}
}

func (r *reader) proofs() ([]Proof, error) {
	if proofsVersion != r.byte() {
		return nil, fault.ErrInvalidVersion
	}
	count := r.uint16()
	if count > MaxProofs {
		return nil, fault.ErrTooManyProofs
	}
	proofs := make([]Proof, count)
	for i := range proofs {
		proofs[i] = r.shortBytes()
	}
	return proofs, nil
}

func (r *reader) chainId(expected byte) error {
	if c := r.byte(); c != expected {
		return errors.Wrapf(fault.ErrChainIdMismatch, "expected: %q actual: %q", expected, c)
	}
	return nil
}

func (r *reader) genesis(chainId byte) (Transaction, error) {
	timestamp := r.int64()
	recipient, err := r.address()
	if nil != err {
		return nil, err
	}
	amount := r.int64()
	e, err := newEnvelope(GenesisTag, 1, chainId, account.PublicKey{}, asset.NativeAmount(0), timestamp, nil)
	if nil != err {
		return nil, err
	}
	return newGenesis(e, recipient, amount)
}

func (r *reader) payment(chainId byte) (Transaction, error) {
	timestamp := r.int64()
	sender := r.publicKey()
	recipient, err := r.address()
	if nil != err {
		return nil, err
	}
	amount := r.int64()
	fee := r.int64()
	signature := r.bytes(signatureSize)
	e, err := newEnvelope(PaymentTag, 1, chainId, sender, asset.NativeAmount(fee), timestamp, []Proof{signature})
	if nil != err {
		return nil, err
	}
	return newPayment(e, recipient, amount)
}

// the types whose signed form ends with proofs
func (r *reader) proven(tag TagType, version byte, chainId byte) (Transaction, error) {
	switch tag {

	case IssueTag:
		if err := r.chainId(chainId); nil != err {
			return nil, err
		}
		sender := r.publicKey()
		name := string(r.shortBytes())
		description := string(r.shortBytes())
		quantity := r.int64()
		decimals := r.byte()
		reissuable, err := r.bool()
		if nil != err {
			return nil, err
		}
		fee := r.int64()
		timestamp := r.int64()
		script, err := r.scriptOption()
		if nil != err {
			return nil, err
		}
		e, err := r.envelope(tag, version, chainId, sender, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newIssue(e, name, description, quantity, decimals, reissuable, script)

	case TransferTag:
		sender := r.publicKey()
		amountAsset, err := r.assetOption()
		if nil != err {
			return nil, err
		}
		feeAsset, err := r.assetOption()
		if nil != err {
			return nil, err
		}
		timestamp := r.int64()
		amount := r.int64()
		fee := r.int64()
		recipient, err := r.recipient()
		if nil != err {
			return nil, err
		}
		attachment := r.shortBytes()
		e, err := r.envelope(tag, version, chainId, sender, asset.NewAmount(fee, feeAsset), timestamp)
		if nil != err {
			return nil, err
		}
		return newTransfer(e, recipient, asset.NewAmount(amount, amountAsset), attachment)

	case ReissueTag:
		if err := r.chainId(chainId); nil != err {
			return nil, err
		}
		sender := r.publicKey()
		id := r.assetId()
		quantity := r.int64()
		reissuable, err := r.bool()
		if nil != err {
			return nil, err
		}
		fee := r.int64()
		timestamp := r.int64()
		e, err := r.envelope(tag, version, chainId, sender, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newReissue(e, asset.NewAmount(quantity, id), reissuable)

	case BurnTag:
		if err := r.chainId(chainId); nil != err {
			return nil, err
		}
		sender := r.publicKey()
		id := r.assetId()
		amount := r.int64()
		fee := r.int64()
		timestamp := r.int64()
		e, err := r.envelope(tag, version, chainId, sender, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newBurn(e, asset.NewAmount(amount, id))

	case ExchangeTag:
		orders := [2]*Order{}
		for i := range orders {
			length := r.uint32()
			o, err := unpackOrder(r.record[r.n:r.n+length:r.n+length], chainId)
			if nil != err {
				return nil, errors.Wrapf(err, "order: %d", i+1)
			}
			r.n += length
			orders[i] = o
		}
		price := r.int64()
		amount := r.int64()
		buyMatcherFee := r.int64()
		sellMatcherFee := r.int64()
		fee := r.int64()
		timestamp := r.int64()
		e, err := r.envelope(tag, version, chainId, orders[0].matcher, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newExchange(e, orders[0], orders[1], amount, price, buyMatcherFee, sellMatcherFee)

	case LeaseTag:
		if 0 != r.byte() {
			return nil, fault.ErrNotOption
		}
		sender := r.publicKey()
		recipient, err := r.recipient()
		if nil != err {
			return nil, err
		}
		amount := r.int64()
		fee := r.int64()
		timestamp := r.int64()
		e, err := r.envelope(tag, version, chainId, sender, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newLease(e, recipient, amount)

	case LeaseCancelTag:
		if err := r.chainId(chainId); nil != err {
			return nil, err
		}
		sender := r.publicKey()
		fee := r.int64()
		timestamp := r.int64()
		leaseId := r.digest()
		e, err := r.envelope(tag, version, chainId, sender, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newLeaseCancel(e, leaseId)

	case CreateAliasTag:
		sender := r.publicKey()
		aliasBytes := r.shortBytes()
		alias, length, err := account.AliasFromBytes(aliasBytes)
		if nil != err {
			return nil, err
		}
		if length != len(aliasBytes) {
			return nil, fault.ErrInvalidAlias
		}
		fee := r.int64()
		timestamp := r.int64()
		e, err := r.envelope(tag, version, chainId, sender, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newCreateAlias(e, alias)

	case MassTransferTag:
		sender := r.publicKey()
		id, err := r.assetOption()
		if nil != err {
			return nil, err
		}
		count := r.uint16()
		transfers := make([]MassTransferEntry, 0, count)
		for i := 0; i < count; i += 1 {
			recipient, err := r.recipient()
			if nil != err {
				return nil, errors.Wrapf(err, "transfer: %d", i)
			}
			transfers = append(transfers, MassTransferEntry{Recipient: recipient, Amount: r.int64()})
		}
		timestamp := r.int64()
		fee := r.int64()
		attachment := r.shortBytes()
		e, err := r.envelope(tag, version, chainId, sender, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newMassTransfer(e, id, transfers, attachment)

	case DataTag:
		sender := r.publicKey()
		count := r.uint16()
		entries := make([]DataEntry, 0, count)
		for i := 0; i < count; i += 1 {
			entry, err := r.dataEntry()
			if nil != err {
				return nil, errors.Wrapf(err, "entry: %d", i)
			}
			entries = append(entries, entry)
		}
		timestamp := r.int64()
		fee := r.int64()
		e, err := r.envelope(tag, version, chainId, sender, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newData(e, entries)

	case SetScriptTag:
		if err := r.chainId(chainId); nil != err {
			return nil, err
		}
		sender := r.publicKey()
		script, err := r.scriptOption()
		if nil != err {
			return nil, err
		}
		fee := r.int64()
		timestamp := r.int64()
		e, err := r.envelope(tag, version, chainId, sender, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newSetScript(e, script)

	case SponsorFeeTag:
		sender := r.publicKey()
		id := r.assetId()
		minFee := r.int64()
		fee := r.int64()
		timestamp := r.int64()
		e, err := r.envelope(tag, version, chainId, sender, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newSponsorFee(e, asset.NewAmount(minFee, id))

	case SetAssetScriptTag:
		if err := r.chainId(chainId); nil != err {
			return nil, err
		}
		sender := r.publicKey()
		id := r.assetId()
		fee := r.int64()
		timestamp := r.int64()
		script, err := r.scriptOption()
		if nil != err {
			return nil, err
		}
		e, err := r.envelope(tag, version, chainId, sender, asset.NativeAmount(fee), timestamp)
		if nil != err {
			return nil, err
		}
		return newSetAssetScript(e, id, script)

	case InvokeScriptTag:
		if err := r.chainId(chainId); nil != err {
			return nil, err
		}
		sender := r.publicKey()
		dApp, err := r.recipient()
		if nil != err {
			return nil, err
		}
		function, err := r.functionOption()
		if nil != err {
			return nil, err
		}
		count := r.uint16()
		payments := make([]asset.Amount, 0, count)
		for i := 0; i < count; i += 1 {
			end := r.uint16() + r.n
			value := r.int64()
			id, err := r.assetOption()
			if nil != err {
				return nil, errors.Wrapf(err, "payment: %d", i)
			}
			if end != r.n {
				return nil, errors.Wrapf(fault.ErrInvalidCount, "payment: %d", i)
			}
			payments = append(payments, asset.NewAmount(value, id))
		}
		fee := r.int64()
		feeAsset, err := r.assetOption()
		if nil != err {
			return nil, err
		}
		timestamp := r.int64()
		e, err := r.envelope(tag, version, chainId, sender, asset.NewAmount(fee, feeAsset), timestamp)
		if nil != err {
			return nil, err
		}
		return newInvokeScript(e, dApp, function, payments)

	default:
		return nil, errors.Wrapf(fault.ErrUnsupportedLayout, "%s version: %d", tag, version)
	}
}

// read the trailing proofs and create the shared fields
func (r *reader) envelope(tag TagType, version byte, chainId byte, sender account.PublicKey, fee asset.Amount, timestamp int64) (envelope, error) {
	proofs, err := r.proofs()
	if nil != err {
		return envelope{}, err
	}
	return newEnvelope(tag, version, chainId, sender, fee, timestamp, proofs)
}

func (r *reader) dataEntry() (DataEntry, error) {
	key := string(r.shortBytes())
	switch r.byte() {
	case integerDataType:
		return NewIntegerEntry(key, r.int64()), nil
	case booleanDataType:
		value, err := r.bool()
		if nil != err {
			return nil, err
		}
		return NewBooleanEntry(key, value), nil
	case binaryDataType:
		return NewBinaryEntry(key, r.shortBytes()), nil
	case stringDataType:
		return NewStringEntry(key, string(r.shortBytes())), nil
	default:
		return nil, fault.ErrUnknownDataType
	}
}

// an order of an exchange, the whole record must be used
func unpackOrder(record Packed, chainId byte) (*Order, error) {
	r := &reader{record: record}
	version := r.byte()
	if version < orderMinLegacyVersion || version >= orderProtobufVersion {
		return nil, errors.Wrapf(fault.ErrUnsupportedLayout, "order version: %d", version)
	}
	sender := r.publicKey()
	matcher := r.publicKey()
	amountAsset, err := r.assetOption()
	if nil != err {
		return nil, err
	}
	priceAsset, err := r.assetOption()
	if nil != err {
		return nil, err
	}
	side := OrderSide(r.byte())
	if Buy != side && Sell != side {
		return nil, fault.ErrInvalidOrderSide
	}
	price := r.int64()
	amount := r.int64()
	timestamp := r.int64()
	expiration := r.int64()
	fee := asset.NativeAmount(r.int64())
	if 3 == version {
		if fee.Asset, err = r.assetOption(); nil != err {
			return nil, err
		}
	}
	proofs, err := r.proofs()
	if nil != err {
		return nil, err
	}
	if r.n != len(record) {
		return nil, fault.ErrTrailingBytes
	}
	return newOrder(version, chainId, sender, matcher, side, asset.NewAmount(amount, amountAsset), asset.NewAmount(price, priceAsset), timestamp, expiration, fee, proofs)
}
