// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/wavestx/account"
	"github.com/bitmark-inc/wavestx/asset"
	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/invocation"
)

// InvokeScript - call a function of a dApp, optionally with payments
type InvokeScript struct {
	envelope
	dApp     account.Recipient
	function invocation.Function
	payments []asset.Amount
}

// an empty function becomes the default call
func newInvokeScript(e envelope, dApp account.Recipient, function invocation.Function, payments []asset.Amount) (*InvokeScript, error) {
	if !dApp.IsPresent() {
		return nil, fault.ErrMissingDApp
	}
	if "" == function.Name && 0 == len(function.Args) {
		function = invocation.Default()
	} else {
		function = invocation.New(function.Name, function.Clone().Args...)
	}
	return &InvokeScript{
		envelope: e,
		dApp:     dApp,
		function: function,
		payments: append([]asset.Amount{}, payments...),
	}, nil
}

func (tx *InvokeScript) DApp() account.Recipient { return tx.dApp }

// Function - copy of the call
func (tx *InvokeScript) Function() invocation.Function { return tx.function.Clone() }

// Payments - copy of the attached payments
func (tx *InvokeScript) Payments() []asset.Amount {
	return append([]asset.Amount{}, tx.payments...)
}

// Equal - structural equality
func (tx *InvokeScript) Equal(other Transaction) bool {
	o, ok := other.(*InvokeScript)
	if !ok || nil == o ||
		!tx.envelope.equal(&o.envelope) ||
		tx.dApp != o.dApp ||
		!tx.function.Equal(o.function) ||
		len(tx.payments) != len(o.payments) {
		return false
	}
	for i := range tx.payments {
		if tx.payments[i] != o.payments[i] {
			return false
		}
	}
	return true
}

// AddProof - copy with one more proof
func (tx *InvokeScript) AddProof(proof Proof) (Transaction, error) {
	return withProof(tx, proof)
}

// InvokeScriptBuilder - builder for InvokeScript
type InvokeScriptBuilder struct {
	builder[*InvokeScriptBuilder]
	dApp     account.Recipient
	function invocation.Function
	payments []asset.Amount
}

// NewInvokeScript - start a script invocation
func NewInvokeScript(chainId byte, dApp account.Recipient, function invocation.Function) *InvokeScriptBuilder {
	b := &InvokeScriptBuilder{dApp: dApp, function: function}
	b.builder = newBuilder(b, InvokeScriptTag, chainId)
	return b
}

// Payments - amounts attached to the call
func (b *InvokeScriptBuilder) Payments(payments ...asset.Amount) *InvokeScriptBuilder {
	b.payments = payments
	return b
}

// Build - validate and create the transaction
func (b *InvokeScriptBuilder) Build() (*InvokeScript, error) {
	e, err := b.makeEnvelope()
	if nil != err {
		return nil, err
	}
	return newInvokeScript(e, b.dApp, b.function, b.payments)
}
