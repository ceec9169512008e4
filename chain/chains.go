// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Mainnet  = "mainnet"
	Testnet  = "testnet"
	Stagenet = "stagenet"
)

// chain id bytes carried in addresses and transactions
const (
	MainnetId  byte = 'W'
	TestnetId  byte = 'T'
	StagenetId byte = 'S'
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Mainnet, Testnet, Stagenet:
		return true
	default:
		return false
	}
}

// Id - chain id byte for a name, zero for an unknown name
func Id(name string) byte {
	switch name {
	case Mainnet:
		return MainnetId
	case Testnet:
		return TestnetId
	case Stagenet:
		return StagenetId
	default:
		return 0
	}
}

// Name - name for a chain id byte, or empty
func Name(id byte) string {
	switch id {
	case MainnetId:
		return Mainnet
	case TestnetId:
		return Testnet
	case StagenetId:
		return Stagenet
	default:
		return ""
	}
}
