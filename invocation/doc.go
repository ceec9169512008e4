// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package invocation - script function calls and their binary form
//
// A call is packed as:
//
//   [0x09][0x01][int32 name length][name][int32 argument count][arguments...]
//
// and each argument as a one byte type followed by its value:
//
//   0x00  integer  int64
//   0x01  binary   int32 length, bytes
//   0x02  string   int32 length, UTF-8 bytes
//   0x06  true     -
//   0x07  false    -
//   0x0b  list     int32 count, arguments...
//
// all integers are big endian
package invocation
