// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - asset identifiers and amounts
//
// an asset is either the native token of the chain or an issued
// asset identified by the id of its issue transaction
package asset
