// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/chain"
	"github.com/bitmark-inc/wavestx/digest"
	"github.com/bitmark-inc/wavestx/transactionrecord"
)

const (
	formatBinary   = "binary"
	formatProtobuf = "protobuf"
)

type transactionView struct {
	Type      string                   `json:"type"`
	Version   byte                     `json:"version"`
	Chain     string                   `json:"chain"`
	Format    string                   `json:"format"`
	Id        digest.Digest            `json:"id"`
	Sender    account.PublicKey        `json:"sender"`
	Fee       asset.Amount             `json:"fee"`
	Timestamp int64                    `json:"timestamp"`
	Proofs    transactionrecord.Proofs `json:"proofs"`
	Details   interface{}              `json:"details"`
}

type orderView struct {
	Id         digest.Digest            `json:"id"`
	Version    byte                     `json:"version"`
	Side       string                   `json:"side"`
	Sender     account.PublicKey        `json:"sender"`
	Matcher    account.PublicKey        `json:"matcher"`
	Amount     asset.Amount             `json:"amount"`
	Price      asset.Amount             `json:"price"`
	Fee        asset.Amount             `json:"fee"`
	Timestamp  int64                    `json:"timestamp"`
	Expiration int64                    `json:"expiration"`
	Proofs     transactionrecord.Proofs `json:"proofs"`
}

type dataEntryView struct {
	Key   string      `json:"key"`
	Type  string      `json:"type"`
	Value interface{} `json:"value,omitempty"`
}

// format a transaction would be written in by ToBytes
func formatOf(tx transactionrecord.Transaction) string {
	if tx.Type().IsProtobuf(tx.Version()) {
		return formatProtobuf
	}
	return formatBinary
}

func describe(tx transactionrecord.Transaction) (*transactionView, error) {
	id, err := transactionrecord.ID(tx)
	if nil != err {
		return nil, err
	}

	details, err := describeDetails(tx)
	if nil != err {
		return nil, err
	}

	chainName := chain.Name(tx.ChainId())
	if "" == chainName {
		chainName = string([]byte{tx.ChainId()})
	}

	return &transactionView{
		Type:      tx.Type().String(),
		Version:   tx.Version(),
		Chain:     chainName,
		Format:    formatOf(tx),
		Id:        id,
		Sender:    tx.Sender(),
		Fee:       tx.Fee(),
		Timestamp: tx.Timestamp(),
		Proofs:    tx.Proofs(),
		Details:   details,
	}, nil
}

func describeDetails(tx transactionrecord.Transaction) (interface{}, error) {
	switch tx := tx.(type) {

	case *transactionrecord.Genesis:
		return map[string]interface{}{
			"recipient": tx.Recipient(),
			"amount":    tx.Amount(),
		}, nil

	case *transactionrecord.Payment:
		return map[string]interface{}{
			"recipient": tx.Recipient(),
			"amount":    tx.Amount(),
		}, nil

	case *transactionrecord.Issue:
		return map[string]interface{}{
			"name":        tx.Name(),
			"description": tx.Description(),
			"quantity":    tx.Quantity(),
			"decimals":    tx.Decimals(),
			"reissuable":  tx.Reissuable(),
			"script":      tx.Script(),
		}, nil

	case *transactionrecord.Transfer:
		return map[string]interface{}{
			"recipient":  tx.Recipient(),
			"amount":     tx.Amount(),
			"attachment": tx.Attachment(),
		}, nil

	case *transactionrecord.Reissue:
		return map[string]interface{}{
			"amount":     tx.Amount(),
			"reissuable": tx.Reissuable(),
		}, nil

	case *transactionrecord.Burn:
		return map[string]interface{}{
			"amount": tx.Amount(),
		}, nil

	case *transactionrecord.Exchange:
		order1, err := describeOrder(tx.Order1())
		if nil != err {
			return nil, err
		}
		order2, err := describeOrder(tx.Order2())
		if nil != err {
			return nil, err
		}
		return map[string]interface{}{
			"order1":         order1,
			"order2":         order2,
			"amount":         tx.Amount(),
			"price":          tx.Price(),
			"buyMatcherFee":  tx.BuyMatcherFee(),
			"sellMatcherFee": tx.SellMatcherFee(),
		}, nil

	case *transactionrecord.Lease:
		return map[string]interface{}{
			"recipient": tx.Recipient(),
			"amount":    tx.Amount(),
		}, nil

	case *transactionrecord.LeaseCancel:
		return map[string]interface{}{
			"leaseId": tx.LeaseId(),
		}, nil

	case *transactionrecord.CreateAlias:
		return map[string]interface{}{
			"alias": tx.Alias(),
		}, nil

	case *transactionrecord.MassTransfer:
		return map[string]interface{}{
			"asset":      tx.Asset(),
			"transfers":  tx.Transfers(),
			"attachment": tx.Attachment(),
		}, nil

	case *transactionrecord.Data:
		entries := make([]dataEntryView, 0, len(tx.Entries()))
		for _, entry := range tx.Entries() {
			entries = append(entries, describeDataEntry(entry))
		}
		return map[string]interface{}{
			"entries": entries,
		}, nil

	case *transactionrecord.SetScript:
		return map[string]interface{}{
			"script": tx.Script(),
		}, nil

	case *transactionrecord.SponsorFee:
		return map[string]interface{}{
			"minFee": tx.MinFee(),
		}, nil

	case *transactionrecord.SetAssetScript:
		return map[string]interface{}{
			"asset":  tx.Asset(),
			"script": tx.Script(),
		}, nil

	case *transactionrecord.InvokeScript:
		return map[string]interface{}{
			"dApp":     tx.DApp(),
			"function": tx.Function(),
			"payments": tx.Payments(),
		}, nil

	case *transactionrecord.UpdateAssetInfo:
		return map[string]interface{}{
			"asset":       tx.Asset(),
			"name":        tx.Name(),
			"description": tx.Description(),
		}, nil

	default:
		return nil, nil
	}
}

func describeOrder(o *transactionrecord.Order) (*orderView, error) {
	id, err := transactionrecord.OrderID(o)
	if nil != err {
		return nil, err
	}
	return &orderView{
		Id:         id,
		Version:    o.Version(),
		Side:       o.Side().String(),
		Sender:     o.Sender(),
		Matcher:    o.Matcher(),
		Amount:     o.Amount(),
		Price:      o.Price(),
		Fee:        o.Fee(),
		Timestamp:  o.Timestamp(),
		Expiration: o.Expiration(),
		Proofs:     o.Proofs(),
	}, nil
}

func describeDataEntry(entry transactionrecord.DataEntry) dataEntryView {
	switch e := entry.(type) {
	case transactionrecord.IntegerEntry:
		return dataEntryView{Key: e.Key(), Type: "integer", Value: e.Value()}
	case transactionrecord.BooleanEntry:
		return dataEntryView{Key: e.Key(), Type: "boolean", Value: e.Value()}
	case transactionrecord.BinaryEntry:
		return dataEntryView{Key: e.Key(), Type: "binary", Value: e.Value()}
	case transactionrecord.StringEntry:
		return dataEntryView{Key: e.Key(), Type: "string", Value: e.Value()}
	default:
		return dataEntryView{Key: entry.Key(), Type: "delete"}
	}
}
