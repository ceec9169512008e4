// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

// Amount - a quantity of some asset
type Amount struct {
	Value int64 `json:"value"`
	Asset ID    `json:"asset"`
}

// NewAmount - quantity of an asset
func NewAmount(value int64, a ID) Amount {
	return Amount{Value: value, Asset: a}
}

// NativeAmount - quantity of the native token
func NativeAmount(value int64) Amount {
	return Amount{Value: value, Asset: Native}
}
