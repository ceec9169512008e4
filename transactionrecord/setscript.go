// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
)

// SetScript - attach a script to the sender's account, empty removes it
type SetScript struct {
	envelope
	script []byte
}

func newSetScript(e envelope, script []byte) (*SetScript, error) {
	return &SetScript{envelope: e, script: cloneBytes(script)}, nil
}

func (tx *SetScript) Script() []byte { return cloneBytes(tx.script) }

func (tx *SetScript) Equal(other Transaction) bool {
	o, ok := other.(*SetScript)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		bytes.Equal(tx.script, o.script)
}

func (tx *SetScript) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// SetScriptBuilder - builder for SetScript
type SetScriptBuilder struct {
	builder[*SetScriptBuilder]
	script []byte
}

// NewSetScript - start a set script
func NewSetScript(chainId byte, script []byte) *SetScriptBuilder {
	b := &SetScriptBuilder{script: script}
	b.builder = newBuilder(b, SetScriptTag, chainId)
	return b
}

func (b *SetScriptBuilder) Build() (*SetScript, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newSetScript(e, b.script)
}
