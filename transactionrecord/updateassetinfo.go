// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/fault"
)

// UpdateAssetInfo - change the name and description of an issued asset
type UpdateAssetInfo struct {
	envelope
	asset       asset.ID
	name        string
	description string
}

func newUpdateAssetInfo(e envelope, a asset.ID, name string, description string) (*UpdateAssetInfo, error) {
	if a.IsNative() {
		return nil, fault.ErrNativeAssetNotAllowed
	}
	return &UpdateAssetInfo{envelope: e, asset: a, name: name, description: description}, nil
}

func (tx *UpdateAssetInfo) Asset() asset.ID     { return tx.asset }
func (tx *UpdateAssetInfo) Name() string        { return tx.name }
func (tx *UpdateAssetInfo) Description() string { return tx.description }

func (tx *UpdateAssetInfo) Equal(other Transaction) bool {
	o, ok := other.(*UpdateAssetInfo)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.asset == o.asset &&
		tx.name == o.name &&
		tx.description == o.description
}

func (tx *UpdateAssetInfo) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// UpdateAssetInfoBuilder - builder for UpdateAssetInfo
type UpdateAssetInfoBuilder struct {
	builder[*UpdateAssetInfoBuilder]
	asset       asset.ID
	name        string
	description string
}

// NewUpdateAssetInfo - start an asset info update
func NewUpdateAssetInfo(chainId byte, a asset.ID, name string, description string) *UpdateAssetInfoBuilder {
	b := &UpdateAssetInfoBuilder{asset: a, name: name, description: description}
	b.builder = newBuilder(b, UpdateAssetInfoTag, chainId)
	return b
}

func (b *UpdateAssetInfoBuilder) Build() (*UpdateAssetInfo, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newUpdateAssetInfo(e, b.asset, b.name, b.description)
}
