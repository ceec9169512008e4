// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// wavestx - inspect, convert and build Waves transactions
//
// byte arguments are read in the configured encoding unless they
// carry an explicit "base58:", "base64:" or "hex:" prefix
//
//   wavestx --network=testnet decode --bytes=<BYTES>
//   wavestx convert --bytes=<BYTES> --to=protobuf
//   wavestx call --bytes=<BYTES>
//   wavestx transfer --sender=<KEY> --recipient=<ADDRESS> --amount=100
//   wavestx lease --sender=<KEY> --recipient=alias:T:rich --amount=100
//   wavestx cancel --sender=<KEY> --lease=<TXID>
package main
