// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/digest"
	"github.com/bitmark-inc/wavestx/fault"
)

func TestNative(t *testing.T) {
	var zero asset.ID
	assert.True(t, zero.IsNative())
	assert.Equal(t, asset.Native, zero)
	assert.Equal(t, []byte{}, zero.Bytes())
	assert.Equal(t, "WAVES", zero.String())

	a, err := asset.IDFromBytes(nil)
	assert.Nil(t, err)
	assert.Equal(t, asset.Native, a)
}

func TestIssued(t *testing.T) {
	d := digest.NewDigest([]byte("issue"))
	a := asset.Issued(d)
	assert.False(t, a.IsNative())
	assert.Equal(t, d, a.Digest())
	assert.NotEqual(t, asset.Native, a)

	a2, err := asset.IDFromBytes(a.Bytes())
	assert.Nil(t, err)
	assert.Equal(t, a, a2)

	_, err = asset.IDFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidAssetId, err)
}

func TestAmountJSON(t *testing.T) {
	amounts := []asset.Amount{
		asset.NativeAmount(100000),
		asset.NewAmount(42, asset.Issued(digest.NewDigest([]byte("token")))),
	}
	for _, amount := range amounts {
		buffer, err := json.Marshal(amount)
		assert.Nil(t, err)

		var a asset.Amount
		assert.Nil(t, json.Unmarshal(buffer, &a))
		assert.Equal(t, amount, a)
	}
}
