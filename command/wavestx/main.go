// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/wavestx/chain"
	"github.com/bitmark-inc/wavestx/configuration"
	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/transactionrecord"
)

type metadata struct {
	config  *configuration.Configuration
	chainId byte
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "wavestx"
	app.Usage = "inspect, convert and build Waves transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` (Lua)",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Mainnet,
			Usage: " chain `NAME` [mainnet|testnet|stagenet]",
		},
		cli.StringFlag{
			Name:  "encoding, e",
			Value: "",
			Usage: " byte `ENCODING` [base58|base64|hex]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "decode a binary or protobuf transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "bytes, b",
					Value: "",
					Usage: "*encoded transaction `BYTES`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "convert",
			Usage:     "re-encode a transaction in the other format",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "bytes, b",
					Value: "",
					Usage: "*encoded transaction `BYTES`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: formatProtobuf,
					Usage: " target `FORMAT` [binary|protobuf]",
				},
			},
			Action: runConvert,
		},
		{
			Name:      "call",
			Usage:     "decode an encoded function call",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "bytes, b",
					Value: "",
					Usage: "*encoded function call `BYTES`",
				},
			},
			Action: runCall,
		},
		{
			Name:      "transfer",
			Usage:     "build an unsigned transfer",
			ArgsUsage: "\n   (* = required)",
			Flags: append(envelopeFlags(transactionrecord.TransferTag),
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*receiving `ADDRESS` or alias:<chain>:<name>",
				},
				cli.Int64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*quantity to transfer `NUMBER`",
				},
				cli.StringFlag{
					Name:  "asset",
					Value: "",
					Usage: " asset `ID` (default: native)",
				},
				cli.StringFlag{
					Name:  "attachment",
					Value: "",
					Usage: " attachment `TEXT`",
				},
			),
			Action: runTransfer,
		},
		{
			Name:      "lease",
			Usage:     "build an unsigned lease",
			ArgsUsage: "\n   (* = required)",
			Flags: append(envelopeFlags(transactionrecord.LeaseTag),
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*leasing `ADDRESS` or alias:<chain>:<name>",
				},
				cli.Int64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*quantity to lease `NUMBER`",
				},
			),
			Action: runLease,
		},
		{
			Name:      "cancel",
			Usage:     "build an unsigned lease cancel",
			ArgsUsage: "\n   (* = required)",
			Flags: append(envelopeFlags(transactionrecord.LeaseCancelTag),
				cli.StringFlag{
					Name:  "lease, l",
					Value: "",
					Usage: "*lease transaction `TXID`",
				},
			),
			Action: runLeaseCancel,
		},
		{
			Name:  "version",
			Usage: "display wavestx version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command {
			return nil
		}

		verbose := c.GlobalBool("verbose")
		network := strings.ToLower(c.GlobalString("network"))

		var config *configuration.Configuration
		var err error

		if file := c.GlobalString("config"); "" != file {
			if verbose {
				fmt.Fprintf(c.App.ErrWriter, "reading config file: %s\n", file)
			}
			variables := map[string]string{
				"chain_name": network,
			}
			config, err = configuration.GetConfiguration(file, variables)
		} else {
			config, err = configuration.Default(network)
		}
		if nil != err {
			return err
		}

		// command line overrides the file
		if c.GlobalIsSet("network") {
			config.Chain = network
		}
		if encoding := c.GlobalString("encoding"); "" != encoding {
			config.Encoding = strings.ToLower(encoding)
		}
		if !chain.Valid(config.Chain) {
			return errors.Wrapf(fault.ErrInvalidChain, "chain: %q", config.Chain)
		}

		return startup(c.App, config, verbose)
	}

	// shut down in reverse order
	app.After = func(c *cli.Context) error {
		shutdown(c.App)
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s\n", err)
	}
}

// start logging then the subsystems
//
// the metadata is stored as soon as logging is running, so After
// finalises whatever was started even when a later step fails
func startup(app *cli.App, config *configuration.Configuration, verbose bool) error {
	if err := logger.Initialise(config.Logging); nil != err {
		return err
	}
	log := logger.New("main")
	log.Info("starting…")
	log.Debugf("configuration: %+v", config)

	if nil == app.Metadata {
		app.Metadata = map[string]interface{}{}
	}
	app.Metadata["config"] = &metadata{
		config:  config,
		chainId: config.ChainId(),
		verbose: verbose,
		log:     log,
		e:       app.ErrWriter,
		w:       app.Writer,
	}

	if err := fault.Initialise(); nil != err {
		log.Errorf("fault initialise error: %s", err)
		return err
	}
	if err := transactionrecord.Initialise(); nil != err {
		log.Errorf("transaction initialise error: %s", err)
		return err
	}
	return nil
}

// finalising a subsystem that never started is harmless
func shutdown(app *cli.App) {
	m, ok := app.Metadata["config"].(*metadata)
	if !ok {
		return
	}
	delete(app.Metadata, "config")

	transactionrecord.Finalise()
	fault.Finalise()
	m.log.Info("shutting down…")
	logger.Finalise()
}
