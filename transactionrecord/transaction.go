// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
)

// TagType - type code for transactions
type TagType byte

// enumerate the possible transaction types
// this is the type byte of the legacy layout
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	GenesisTag         = TagType(iota) // initial distribution
	PaymentTag         = TagType(iota) // OBSOLETE: native transfer
	IssueTag           = TagType(iota) // create asset
	TransferTag        = TagType(iota) // transfer any asset
	ReissueTag         = TagType(iota) // increase asset quantity
	BurnTag            = TagType(iota) // destroy asset quantity
	ExchangeTag        = TagType(iota) // matched pair of orders
	LeaseTag           = TagType(iota) // lease native balance
	LeaseCancelTag     = TagType(iota) // end a lease
	CreateAliasTag     = TagType(iota) // bind an alias
	MassTransferTag    = TagType(iota) // many transfers of one asset
	DataTag            = TagType(iota) // account data entries
	SetScriptTag       = TagType(iota) // account script
	SponsorFeeTag      = TagType(iota) // pay fees in an asset
	SetAssetScriptTag  = TagType(iota) // asset script
	InvokeScriptTag    = TagType(iota) // call a dApp
	UpdateAssetInfoTag = TagType(iota) // rename asset

	// this item must be last
	InvalidTag = TagType(iota)
)

// per type limits
//
// protobufVersion is the first version that is only encoded as
// protobuf, zero for types that never are
type tagInfo struct {
	name            string
	latestVersion   byte
	minFee          int64
	protobufVersion byte
}

var tagTable = [InvalidTag]tagInfo{
	NullTag:            {"*unknown*", 0, 0, 0},
	GenesisTag:         {"Genesis", 1, 0, 0},
	PaymentTag:         {"Payment", 1, 100000, 0},
	IssueTag:           {"Issue", 3, 100000000, 3},
	TransferTag:        {"Transfer", 3, 100000, 3},
	ReissueTag:         {"Reissue", 3, 100000, 3},
	BurnTag:            {"Burn", 3, 100000, 3},
	ExchangeTag:        {"Exchange", 3, 300000, 3},
	LeaseTag:           {"Lease", 3, 100000, 3},
	LeaseCancelTag:     {"LeaseCancel", 3, 100000, 3},
	CreateAliasTag:     {"CreateAlias", 3, 100000, 3},
	MassTransferTag:    {"MassTransfer", 2, 100000, 2},
	DataTag:            {"Data", 2, 100000, 2},
	SetScriptTag:       {"SetScript", 2, 1000000, 2},
	SponsorFeeTag:      {"SponsorFee", 2, 100000, 2},
	SetAssetScriptTag:  {"SetAssetScript", 2, 100000000, 2},
	InvokeScriptTag:    {"InvokeScript", 2, 500000, 2},
	UpdateAssetInfoTag: {"UpdateAssetInfo", 1, 100000, 1},
}

// String - name of the type
func (tag TagType) String() string {
	if tag >= InvalidTag {
		return tagTable[NullTag].name
	}
	return tagTable[tag].name
}

// LatestVersion - highest version a type supports
func (tag TagType) LatestVersion() byte {
	if tag >= InvalidTag {
		return 0
	}
	return tagTable[tag].latestVersion
}

// MinFee - default fee of a type in the native asset
func (tag TagType) MinFee() int64 {
	if tag >= InvalidTag {
		return 0
	}
	return tagTable[tag].minFee
}

// IsProtobuf - true if the version of this type has no legacy layout
func (tag TagType) IsProtobuf(version byte) bool {
	if tag >= InvalidTag {
		return false
	}
	p := tagTable[tag].protobufVersion
	return 0 != p && version >= p
}

// Transaction - generic transaction interface
//
// implemented only by the types of this package
type Transaction interface {
	Type() TagType
	Version() byte
	ChainId() byte
	Sender() account.PublicKey
	Fee() asset.Amount
	Timestamp() int64
	Proofs() Proofs

	// structural equality, false for different types
	Equal(other Transaction) bool

	// a copy with one more proof, the receiver is unchanged
	AddProof(proof Proof) (Transaction, error)

	envelopeData() *envelope
}

// RecordName - the name of a transaction type
func RecordName(record interface{}) (string, bool) {
	if tx, ok := record.(Transaction); ok {
		return tx.Type().String(), true
	}
	if _, ok := record.(*Order); ok {
		return "Order", true
	}
	return "*unknown*", false
}
