// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/account"
)

// CreateAlias - bind an alias to the sender's address
type CreateAlias struct {
	envelope
	alias account.Alias
}

func newCreateAlias(e envelope, alias account.Alias) (*CreateAlias, error) {
	return &CreateAlias{envelope: e, alias: alias}, nil
}

func (tx *CreateAlias) Alias() account.Alias { return tx.alias }

func (tx *CreateAlias) Equal(other Transaction) bool {
	o, ok := other.(*CreateAlias)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.alias == o.alias
}

func (tx *CreateAlias) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// CreateAliasBuilder - builder for CreateAlias
type CreateAliasBuilder struct {
	builder[*CreateAliasBuilder]
	alias account.Alias
}

// NewCreateAlias - start an alias creation
func NewCreateAlias(chainId byte, alias account.Alias) *CreateAliasBuilder {
	b := &CreateAliasBuilder{alias: alias}
	b.builder = newBuilder(b, CreateAliasTag, chainId)
	return b
}

func (b *CreateAliasBuilder) Build() (*CreateAlias, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newCreateAlias(e, b.alias)
}
