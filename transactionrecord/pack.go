// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/invocation"
)

// Packed - legacy binary records are just a byte slice
type Packed []byte

// layout constants
const (
	proofsVersion = 1
	signatureSize = 64

	// data entry value types
	integerDataType = 0
	booleanDataType = 1
	binaryDataType  = 2
	stringDataType  = 3
)

// the single legacy version of a type, zero if there is none
//
// this is the version just before protobuf, or 1 for the types that
// were never moved to protobuf
func legacyVersion(tag TagType) byte {
	if tag >= InvalidTag {
		return 0
	}
	switch p := tagTable[tag].protobufVersion; p {
	case 0:
		return 1
	default:
		return p - 1
	}
}

// pack the unsigned legacy body of a transaction
//
// Pack type and version followed by the fields of the type in the
// order fixed by the network; the exchange body starts with a zero
// byte and has no sender, which must be the matcher key of the first
// order; genesis has neither sender nor fee
func packBody(tx Transaction) (Packed, error) {
	tag := tx.Type()
	version := tx.Version()
	if 0 == legacyVersion(tag) || version != legacyVersion(tag) {
		return nil, errors.Wrapf(fault.ErrUnsupportedLayout, "%s version: %d", tag, version)
	}

	e := tx.envelopeData()
	switch t := tx.(type) {

	case *Genesis:
		if !t.sender.IsZero() {
			return nil, errors.Wrap(fault.ErrUnsupportedLayout, "genesis has no sender")
		}
		if asset.NativeAmount(0) != t.fee {
			return nil, errors.Wrap(fault.ErrUnsupportedLayout, "genesis has no fee")
		}
		message := Packed{byte(GenesisTag)}
		message = appendInt64(message, t.timestamp)
		message = append(message, t.recipient[:]...)
		return appendInt64(message, t.amount), nil

	case *Payment:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		message := Packed{byte(PaymentTag)}
		message = appendInt64(message, t.timestamp)
		message = append(message, t.sender[:]...)
		message = append(message, t.recipient[:]...)
		message = appendInt64(message, t.amount)
		return appendInt64(message, t.fee.Value), nil

	case *Issue:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		message := packHeader(e, true)
		message, err := appendShortBytes(message, []byte(t.name))
		if nil != err {
			return nil, err
		}
		message, err = appendShortBytes(message, []byte(t.description))
		if nil != err {
			return nil, err
		}
		message = appendInt64(message, t.quantity)
		message = append(message, t.decimals)
		message = appendBool(message, t.reissuable)
		message = appendInt64(message, t.fee.Value)
		message = appendInt64(message, t.timestamp)
		return appendScriptOption(message, t.script)

	case *Transfer:
		message := packHeader(e, false)
		message = appendAssetOption(message, t.amount.Asset)
		message = appendAssetOption(message, t.fee.Asset)
		message = appendInt64(message, t.timestamp)
		message = appendInt64(message, t.amount.Value)
		message = appendInt64(message, t.fee.Value)
		message = append(message, t.recipient.Bytes()...)
		return appendShortBytes(message, t.attachment)

	case *Reissue:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		message, err := appendAssetId(packHeader(e, true), t.amount.Asset)
		if nil != err {
			return nil, err
		}
		message = appendInt64(message, t.amount.Value)
		message = appendBool(message, t.reissuable)
		message = appendInt64(message, t.fee.Value)
		return appendInt64(message, t.timestamp), nil

	case *Burn:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		message, err := appendAssetId(packHeader(e, true), t.amount.Asset)
		if nil != err {
			return nil, err
		}
		message = appendInt64(message, t.amount.Value)
		message = appendInt64(message, t.fee.Value)
		return appendInt64(message, t.timestamp), nil

	case *Exchange:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		if t.sender != t.order1.matcher {
			return nil, errors.Wrap(fault.ErrUnsupportedLayout, "exchange sender is not the order matcher")
		}
		message := Packed{0, byte(ExchangeTag), t.version}
		for _, o := range []*Order{t.order1, t.order2} {
			order, err := packOrder(o)
			if nil != err {
				return nil, err
			}
			message = appendUint32(message, uint32(len(order)))
			message = append(message, order...)
		}
		message = appendInt64(message, t.price)
		message = appendInt64(message, t.amount)
		message = appendInt64(message, t.buyMatcherFee)
		message = appendInt64(message, t.sellMatcherFee)
		message = appendInt64(message, t.fee.Value)
		return appendInt64(message, t.timestamp), nil

	case *Lease:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		message := Packed{byte(LeaseTag), t.version, 0}
		message = append(message, t.sender[:]...)
		message = append(message, t.recipient.Bytes()...)
		message = appendInt64(message, t.amount)
		message = appendInt64(message, t.fee.Value)
		return appendInt64(message, t.timestamp), nil

	case *LeaseCancel:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		message := packHeader(e, true)
		message = appendInt64(message, t.fee.Value)
		message = appendInt64(message, t.timestamp)
		return append(message, t.leaseId[:]...), nil

	case *CreateAlias:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		message, err := appendShortBytes(packHeader(e, false), t.alias.Bytes())
		if nil != err {
			return nil, err
		}
		message = appendInt64(message, t.fee.Value)
		return appendInt64(message, t.timestamp), nil

	case *MassTransfer:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		if len(t.transfers) > math.MaxUint16 {
			return nil, errors.Wrap(fault.ErrInvalidFieldLength, "transfers")
		}
		message := appendAssetOption(packHeader(e, false), t.asset)
		message = appendUint16(message, uint16(len(t.transfers)))
		for _, transfer := range t.transfers {
			message = append(message, transfer.Recipient.Bytes()...)
			message = appendInt64(message, transfer.Amount)
		}
		message = appendInt64(message, t.timestamp)
		message = appendInt64(message, t.fee.Value)
		return appendShortBytes(message, t.attachment)

	case *Data:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		if len(t.entries) > math.MaxUint16 {
			return nil, errors.Wrap(fault.ErrInvalidFieldLength, "entries")
		}
		message := appendUint16(packHeader(e, false), uint16(len(t.entries)))
		for i, entry := range t.entries {
			var err error
			message, err = appendDataEntry(message, entry)
			if nil != err {
				return nil, errors.Wrapf(err, "entry: %d", i)
			}
		}
		message = appendInt64(message, t.timestamp)
		return appendInt64(message, t.fee.Value), nil

	case *SetScript:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		message, err := appendScriptOption(packHeader(e, true), t.script)
		if nil != err {
			return nil, err
		}
		message = appendInt64(message, t.fee.Value)
		return appendInt64(message, t.timestamp), nil

	case *SponsorFee:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		message, err := appendAssetId(packHeader(e, false), t.minFee.Asset)
		if nil != err {
			return nil, err
		}
		message = appendInt64(message, t.minFee.Value)
		message = appendInt64(message, t.fee.Value)
		return appendInt64(message, t.timestamp), nil

	case *SetAssetScript:
		if err := requireNativeFee(e); nil != err {
			return nil, err
		}
		message, err := appendAssetId(packHeader(e, true), t.asset)
		if nil != err {
			return nil, err
		}
		message = appendInt64(message, t.fee.Value)
		message = appendInt64(message, t.timestamp)
		return appendScriptOption(message, t.script)

	case *InvokeScript:
		message := packHeader(e, true)
		message = append(message, t.dApp.Bytes()...)
		message = appendFunctionOption(message, t.function)
		if len(t.payments) > math.MaxUint16 {
			return nil, errors.Wrap(fault.ErrInvalidFieldLength, "payments")
		}
		message = appendUint16(message, uint16(len(t.payments)))
		for _, payment := range t.payments {
			p := appendInt64(Packed{}, payment.Value)
			p = appendAssetOption(p, payment.Asset)
			message = appendUint16(message, uint16(len(p)))
			message = append(message, p...)
		}
		message = appendInt64(message, t.fee.Value)
		message = appendAssetOption(message, t.fee.Asset)
		return appendInt64(message, t.timestamp), nil

	default:
		return nil, errors.Wrapf(fault.ErrUnsupportedLayout, "%s version: %d", tag, version)
	}
}

// pack a v2 or v3 order with its proofs
func packOrder(o *Order) (Packed, error) {
	message, err := packOrderBody(o)
	if nil != err {
		return nil, err
	}
	return appendProofs(message, o.proofs)
}

// Pack version, keys, asset pair, side, price, amount, timestamp,
// expiration and matcher fee; version 3 adds the matcher fee asset
func packOrderBody(o *Order) (Packed, error) {
	if o.version < orderMinLegacyVersion || o.version >= orderProtobufVersion {
		return nil, errors.Wrapf(fault.ErrUnsupportedLayout, "order version: %d", o.version)
	}
	if 2 == o.version && !o.fee.Asset.IsNative() {
		return nil, fault.ErrInvalidFeeAsset
	}
	message := Packed{o.version}
	message = append(message, o.sender[:]...)
	message = append(message, o.matcher[:]...)
	message = appendAssetOption(message, o.amount.Asset)
	message = appendAssetOption(message, o.price.Asset)
	message = append(message, byte(o.side))
	message = appendInt64(message, o.price.Value)
	message = appendInt64(message, o.amount.Value)
	message = appendInt64(message, o.timestamp)
	message = appendInt64(message, o.expiration)
	message = appendInt64(message, o.fee.Value)
	if 3 == o.version {
		message = appendAssetOption(message, o.fee.Asset)
	}
	return message, nil
}

// type, version and optionally the chain id, then the sender
func packHeader(e *envelope, withChainId bool) Packed {
	message := Packed{byte(e.tag), e.version}
	if withChainId {
		message = append(message, e.chainId)
	}
	return append(message, e.sender[:]...)
}

// layouts without a fee asset field
func requireNativeFee(e *envelope) error {
	if !e.fee.Asset.IsNative() {
		return fault.ErrInvalidFeeAsset
	}
	return nil
}

// append proofs
//
// version byte, count and each proof prefixed by its length
func appendProofs(buffer Packed, proofs Proofs) (Packed, error) {
	buffer = append(buffer, proofsVersion)
	buffer = appendUint16(buffer, uint16(len(proofs)))
	for _, proof := range proofs {
		var err error
		buffer, err = appendShortBytes(buffer, proof)
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

// append a data entry
//
// key, value type and value; deletion has no legacy form
func appendDataEntry(buffer Packed, entry DataEntry) (Packed, error) {
	buffer, err := appendShortBytes(buffer, []byte(entry.Key()))
	if nil != err {
		return nil, err
	}
	switch e := entry.(type) {
	case IntegerEntry:
		buffer = append(buffer, integerDataType)
		return appendInt64(buffer, e.value), nil
	case BooleanEntry:
		buffer = append(buffer, booleanDataType)
		return appendBool(buffer, e.value), nil
	case BinaryEntry:
		buffer = append(buffer, binaryDataType)
		return appendShortBytes(buffer, e.value)
	case StringEntry:
		buffer = append(buffer, stringDataType)
		return appendShortBytes(buffer, []byte(e.value))
	default:
		return nil, fault.ErrInvalidDataEntry
	}
}

// flag 0 for the default call, otherwise flag 1 and the packed call
func appendFunctionOption(buffer Packed, function invocation.Function) Packed {
	if function.IsDefault() {
		return append(buffer, 0)
	}
	buffer = append(buffer, 1)
	return append(buffer, function.Pack()...)
}

// flag 0 for native, otherwise flag 1 and the 32 byte id
func appendAssetOption(buffer Packed, a asset.ID) Packed {
	if a.IsNative() {
		return append(buffer, 0)
	}
	d := a.Digest()
	buffer = append(buffer, 1)
	return append(buffer, d[:]...)
}

// 32 byte id, the native asset has none
func appendAssetId(buffer Packed, a asset.ID) (Packed, error) {
	if a.IsNative() {
		return nil, fault.ErrNativeAssetNotAllowed
	}
	d := a.Digest()
	return append(buffer, d[:]...), nil
}

// flag 0 for no script, otherwise flag 1 and the script with its length
func appendScriptOption(buffer Packed, script []byte) (Packed, error) {
	if 0 == len(script) {
		return append(buffer, 0), nil
	}
	return appendShortBytes(append(buffer, 1), script)
}

// append bytes prefixed by uint16(length)
func appendShortBytes(buffer Packed, data []byte) (Packed, error) {
	if len(data) > math.MaxUint16 {
		return nil, fault.ErrInvalidFieldLength
	}
	buffer = appendUint16(buffer, uint16(len(data)))
	return append(buffer, data...), nil
}

func appendBool(buffer Packed, value bool) Packed {
	if value {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

func appendUint16(buffer Packed, value uint16) Packed {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, value)
	return append(buffer, b...)
}

func appendUint32(buffer Packed, value uint32) Packed {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, value)
	return append(buffer, b...)
}

func appendInt64(buffer Packed, value int64) Packed {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(value))
	return append(buffer, b...)
}
