// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/wavestx/fault"
)

// DataEntry - a key with a typed value, or a deletion of the key
type DataEntry interface {
	Key() string
	equal(other DataEntry) bool
}

// IntegerEntry - 64 bit signed value
type IntegerEntry struct {
	key   string
	value int64
}

// BooleanEntry - true or false
type BooleanEntry struct {
	key   string
	value bool
}

// BinaryEntry - arbitrary bytes
type BinaryEntry struct {
	key   string
	value []byte
}

// StringEntry - UTF-8 text
type StringEntry struct {
	key   string
	value string
}

// DeleteEntry - remove the key from account storage
type DeleteEntry struct {
	key string
}

func NewIntegerEntry(key string, value int64) IntegerEntry { return IntegerEntry{key, value} }
func NewBooleanEntry(key string, value bool) BooleanEntry  { return BooleanEntry{key, value} }
func NewBinaryEntry(key string, value []byte) BinaryEntry  { return BinaryEntry{key, cloneBytes(value)} }
func NewStringEntry(key string, value string) StringEntry  { return StringEntry{key, value} }
func NewDeleteEntry(key string) DeleteEntry                { return DeleteEntry{key} }

func (e IntegerEntry) Key() string { return e.key }
func (e BooleanEntry) Key() string { return e.key }
func (e BinaryEntry) Key() string  { return e.key }
func (e StringEntry) Key() string  { return e.key }
func (e DeleteEntry) Key() string  { return e.key }

func (e IntegerEntry) Value() int64 { return e.value }
func (e BooleanEntry) Value() bool  { return e.value }
func (e BinaryEntry) Value() []byte { return cloneBytes(e.value) }
func (e StringEntry) Value() string { return e.value }

func (e IntegerEntry) equal(other DataEntry) bool {
	o, ok := other.(IntegerEntry)
	return ok && e == o
}

func (e BooleanEntry) equal(other DataEntry) bool {
	o, ok := other.(BooleanEntry)
	return ok && e == o
}

func (e BinaryEntry) equal(other DataEntry) bool {
	o, ok := other.(BinaryEntry)
	return ok && e.key == o.key && bytes.Equal(e.value, o.value)
}

func (e StringEntry) equal(other DataEntry) bool {
	o, ok := other.(StringEntry)
	return ok && e == o
}

func (e DeleteEntry) equal(other DataEntry) bool {
	o, ok := other.(DeleteEntry)
	return ok && e == o
}

// Data - write entries to the sender's account storage
type Data struct {
	envelope
	entries []DataEntry
}

func newData(e envelope, entries []DataEntry) (*Data, error) {
	for i, entry := range entries {
		if nil == entry {
			return nil, errors.Wrapf(fault.ErrInvalidDataEntry, "entry: %d", i)
		}
	}
	return &Data{envelope: e, entries: append([]DataEntry{}, entries...)}, nil
}

// Entries - copy of the entry list
func (tx *Data) Entries() []DataEntry {
	return append([]DataEntry{}, tx.entries...)
}

// Equal - structural equality
func (tx *Data) Equal(other Transaction) bool {
	o, ok := other.(*Data)
	if !ok || nil == o || !tx.envelope.equal(&o.envelope) || len(tx.entries) != len(o.entries) {
		return false
	}
	for i := range tx.entries {
		if !tx.entries[i].equal(o.entries[i]) {
			return false
		}
	}
	return true
}

// AddProof - copy with one more proof
func (tx *Data) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// DataBuilder - builder for Data
type DataBuilder struct {
	builder[*DataBuilder]
	entries []DataEntry
}

// NewData - start a data transaction
func NewData(chainId byte, entries ...DataEntry) *DataBuilder {
	b := &DataBuilder{entries: entries}
	b.builder = newBuilder(b, DataTag, chainId)
	return b
}

// Build - validate and create the transaction
func (b *DataBuilder) Build() (*Data, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newData(e, b.entries)
}
