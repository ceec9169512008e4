// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
)

// Issue - create a new asset, its id is the transaction id
type Issue struct {
	envelope
	name        string
	description string
	quantity    int64
	decimals    byte
	reissuable  bool
	script      []byte
}

func newIssue(e envelope, name string, description string, quantity int64, decimals byte, reissuable bool, script []byte) (*Issue, error) {
	return &Issue{
		envelope:    e,
		name:        name,
		description: description,
		quantity:    quantity,
		decimals:    decimals,
		reissuable:  reissuable,
		script:      cloneBytes(script),
	}, nil
}

func (tx *Issue) Name() string        { return tx.name }
func (tx *Issue) Description() string { return tx.description }
func (tx *Issue) Quantity() int64     { return tx.quantity }
func (tx *Issue) Decimals() byte      { return tx.decimals }
func (tx *Issue) Reissuable() bool    { return tx.reissuable }

// NameBytes - the name as it is carried on the wire
func (tx *Issue) NameBytes() []byte { return []byte(tx.name) }

// DescriptionBytes - the description as it is carried on the wire
func (tx *Issue) DescriptionBytes() []byte { return []byte(tx.description) }

// Script - asset script, empty for none
func (tx *Issue) Script() []byte { return cloneBytes(tx.script) }

// Equal - structural equality
func (tx *Issue) Equal(other Transaction) bool {
	o, ok := other.(*Issue)
	return ok && nil != o &&
		tx.envelope.equal(&o.envelope) &&
		tx.name == o.name &&
		tx.description == o.description &&
		tx.quantity == o.quantity &&
		tx.decimals == o.decimals &&
		tx.reissuable == o.reissuable &&
		bytes.Equal(tx.script, o.script)
}

// AddProof - copy with one more proof
func (tx *Issue) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// IssueBuilder - builder for Issue
type IssueBuilder struct {
	builder[*IssueBuilder]
	name        string
	description string
	quantity    int64
	decimals    byte
	reissuable  bool
	script      []byte
}

// NewIssue - start an issue, reissuable unless changed
func NewIssue(chainId byte, name string, quantity int64, decimals byte) *IssueBuilder {
	b := &IssueBuilder{
		name:       name,
		quantity:   quantity,
		decimals:   decimals,
		reissuable: true,
	}
	b.builder = newBuilder(b, IssueTag, chainId)
	return b
}

// Description - free text
func (b *IssueBuilder) Description(description string) *IssueBuilder {
	b.description = description
	return b
}

// DescriptionBytes - free text given as raw bytes
func (b *IssueBuilder) DescriptionBytes(description []byte) *IssueBuilder {
	b.description = string(description)
	return b
}

// Reissuable - allow later reissue
func (b *IssueBuilder) Reissuable(reissuable bool) *IssueBuilder {
	b.reissuable = reissuable
	return b
}

// Script - compiled asset script
func (b *IssueBuilder) Script(script []byte) *IssueBuilder {
	b.script = script
	return b
}

// Build - validate and create the transaction
func (b *IssueBuilder) Build() (*Issue, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newIssue(e, b.name, b.description, b.quantity, b.decimals, b.reissuable, b.script)
}
