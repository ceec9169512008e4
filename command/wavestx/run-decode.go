// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/invocation"
	"github.com/bitmark-inc/wavestx/transactionrecord"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := decodeTransaction(m, c.String("bytes"))
	if nil != err {
		return err
	}

	view, err := describe(tx)
	if nil != err {
		return err
	}

	m.log.Infof("decoded: %s v%d id: %s", view.Type, view.Version, view.Id)
	return printJson(m.w, view)
}

func runConvert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := decodeTransaction(m, c.String("bytes"))
	if nil != err {
		return err
	}

	var converted []byte
	switch to := c.String("to"); to {
	case formatProtobuf:
		converted, err = transactionrecord.MarshalProtobuf(tx)
	case formatBinary:
		if formatProtobuf == formatOf(tx) {
			return errors.Wrapf(fault.ErrUnsupportedLayout, "%s version: %d", tx.Type(), tx.Version())
		}
		converted, err = transactionrecord.ToBytes(tx)
	default:
		return errors.Wrapf(fault.ErrInvalidEncoding, "format: %q", to)
	}
	if nil != err {
		return err
	}

	result := struct {
		Type   string `json:"type"`
		Format string `json:"format"`
		Bytes  string `json:"bytes"`
	}{
		Type:   tx.Type().String(),
		Format: c.String("to"),
		Bytes:  encodeBytes(m.config.Encoding, converted),
	}
	return printJson(m.w, result)
}

func runCall(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	buffer, err := decodeBytes(m.config.Encoding, c.String("bytes"))
	if nil != err {
		return err
	}

	function, err := invocation.Decode(buffer)
	if nil != err {
		return err
	}
	return printJson(m.w, function)
}

// either format, chosen by the leading byte
func decodeTransaction(m *metadata, text string) (transactionrecord.Transaction, error) {
	buffer, err := decodeBytes(m.config.Encoding, text)
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "chain: %q  bytes: %d\n", m.config.Chain, len(buffer))
	}

	return transactionrecord.FromBytes(buffer, m.chainId)
}
