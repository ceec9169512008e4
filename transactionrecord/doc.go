// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - transactions of the Waves network
//
// seventeen transaction types plus the order embedded in an exchange.
// Every type is immutable once built and can be converted:
//
//   - to and from the generated Waves protobuf messages
//   - to and from the legacy binary layout (versions before protobuf)
//
// values are created with the New<Type> builders, which fill in the
// latest version, the minimum fee and the current time
package transactionrecord
