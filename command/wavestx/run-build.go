// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/digest"
	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/transactionrecord"
)

// common fields of every built transaction
func envelopeFlags(tag transactionrecord.TagType) []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "sender, s",
			Value: "",
			Usage: "*sender public `KEY` (base58)",
		},
		cli.Int64Flag{
			Name:  "fee, f",
			Value: tag.MinFee(),
			Usage: " fee in the native asset `NUMBER`",
		},
		cli.Int64Flag{
			Name:  "timestamp",
			Value: 0,
			Usage: " timestamp in milliseconds `NUMBER` (default: now)",
		},
		cli.IntFlag{
			Name:  "tx-version",
			Value: int(tag.LatestVersion()),
			Usage: " transaction `VERSION`",
		},
	}
}

type envelopeOptions struct {
	sender    account.PublicKey
	fee       int64
	timestamp int64
	version   byte
}

func getEnvelopeOptions(c *cli.Context) (*envelopeOptions, error) {
	sender, err := account.PublicKeyFromBase58(c.String("sender"))
	if nil != err {
		return nil, errors.Wrap(err, "sender")
	}

	version := c.Int("tx-version")
	if version < 1 || version > 255 {
		return nil, errors.Wrapf(fault.ErrInvalidVersion, "version: %d", version)
	}

	return &envelopeOptions{
		sender:    sender,
		fee:       c.Int64("fee"),
		timestamp: c.Int64("timestamp"),
		version:   byte(version),
	}, nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	options, err := getEnvelopeOptions(c)
	if nil != err {
		return err
	}
	recipient, err := account.RecipientFromString(c.String("recipient"))
	if nil != err {
		return errors.Wrap(err, "recipient")
	}

	amount := asset.NativeAmount(c.Int64("amount"))
	if s := c.String("asset"); "" != s {
		var id asset.ID
		if err := id.UnmarshalText([]byte(s)); nil != err {
			return errors.Wrap(err, "asset")
		}
		amount = asset.NewAmount(amount.Value, id)
	}

	b := transactionrecord.NewTransfer(m.chainId, recipient, amount).
		Attachment([]byte(c.String("attachment")))
	b.Sender(options.sender)
	b.Fee(options.fee)
	b.Version(options.version)
	if 0 != options.timestamp {
		b.Timestamp(options.timestamp)
	}

	tx, err := b.Build()
	if nil != err {
		return err
	}
	return printBuilt(m, tx)
}

func runLease(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	options, err := getEnvelopeOptions(c)
	if nil != err {
		return err
	}
	recipient, err := account.RecipientFromString(c.String("recipient"))
	if nil != err {
		return errors.Wrap(err, "recipient")
	}

	b := transactionrecord.NewLease(m.chainId, recipient, c.Int64("amount"))
	b.Sender(options.sender)
	b.Fee(options.fee)
	b.Version(options.version)
	if 0 != options.timestamp {
		b.Timestamp(options.timestamp)
	}

	tx, err := b.Build()
	if nil != err {
		return err
	}
	return printBuilt(m, tx)
}

func runLeaseCancel(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	options, err := getEnvelopeOptions(c)
	if nil != err {
		return err
	}

	var leaseId digest.Digest
	if err := leaseId.UnmarshalText([]byte(c.String("lease"))); nil != err {
		return errors.Wrap(err, "lease")
	}

	b := transactionrecord.NewLeaseCancel(m.chainId, leaseId)
	b.Sender(options.sender)
	b.Fee(options.fee)
	b.Version(options.version)
	if 0 != options.timestamp {
		b.Timestamp(options.timestamp)
	}

	tx, err := b.Build()
	if nil != err {
		return err
	}
	return printBuilt(m, tx)
}

// unsigned transaction with the bytes a signer needs
func printBuilt(m *metadata, tx transactionrecord.Transaction) error {
	view, err := describe(tx)
	if nil != err {
		return err
	}
	body, err := transactionrecord.BodyBytes(tx)
	if nil != err {
		return err
	}
	packed, err := transactionrecord.ToBytes(tx)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "body: %d bytes  full: %d bytes\n", len(body), len(packed))
	}
	m.log.Infof("built: %s v%d id: %s", view.Type, view.Version, view.Id)

	result := struct {
		*transactionView
		Body  string `json:"body"`
		Bytes string `json:"bytes"`
	}{
		transactionView: view,
		Body:            encodeBytes(m.config.Encoding, body),
		Bytes:           encodeBytes(m.config.Encoding, packed),
	}
	return printJson(m.w, result)
}
