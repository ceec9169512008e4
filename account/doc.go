// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - public keys, addresses and aliases
//
// An address is derived from a public key and a chain id:
//
//   [0x01][chain id][20 byte public key hash][4 byte checksum]
//
// a recipient is either an address or an alias on the same chain
package account
