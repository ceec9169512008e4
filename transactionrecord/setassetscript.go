// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"

	"github.com/bitmark-inc/wavestx/asset"
)

// SetAssetScript - replace the script of a scripted asset
type SetAssetScript struct {
	envelope
	asset  asset.ID
	script []byte
}

func newSetAssetScript(e envelope, a asset.ID, script []byte) (*SetAssetScript, error) {
	return &SetAssetScript{envelope: e, asset: a, script: cloneBytes(script)}, nil
}

func (tx *SetAssetScript) Asset() asset.ID { return tx.asset }
func (tx *SetAssetScript) Script() []byte  { return cloneBytes(tx.script) }

func (tx *SetAssetScript) Equal(other Transaction) bool {
	o, ok := other.(*SetAssetScript)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.asset == o.asset &&
		bytes.Equal(tx.script, o.script)
}

func (tx *SetAssetScript) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// SetAssetScriptBuilder - builder for SetAssetScript
type SetAssetScriptBuilder struct {
	builder[*SetAssetScriptBuilder]
	asset  asset.ID
	script []byte
}

// NewSetAssetScript - start a set asset script
func NewSetAssetScript(chainId byte, a asset.ID, script []byte) *SetAssetScriptBuilder {
	b := &SetAssetScriptBuilder{asset: a, script: script}
	b.builder = newBuilder(b, SetAssetScriptTag, chainId)
	return b
}

func (b *SetAssetScriptBuilder) Build() (*SetAssetScript, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newSetAssetScript(e, b.asset, b.script)
}
