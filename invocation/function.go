// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invocation

import (
	"bytes"
)

// DefaultName - function invoked when no call is given
const DefaultName = "default"

// ArgType - one byte discriminator of an argument
type ArgType byte

// argument discriminators
const (
	IntegerType ArgType = 0x00
	BinaryType  ArgType = 0x01
	StringType  ArgType = 0x02
	TrueType    ArgType = 0x06
	FalseType   ArgType = 0x07
	ListType    ArgType = 0x0b
)

// Arg - one argument of a call
//
// implemented only by the types below
type Arg interface {
	Type() ArgType
	pack(buffer Packed) Packed
}

// argument kinds
type IntegerArg int64
type BooleanArg bool
type BinaryArg []byte
type StringArg string
type ListArg []Arg

func (IntegerArg) Type() ArgType { return IntegerType }
func (BinaryArg) Type() ArgType  { return BinaryType }
func (StringArg) Type() ArgType  { return StringType }
func (ListArg) Type() ArgType    { return ListType }

// Type - a boolean has no payload, the value selects the discriminator
func (b BooleanArg) Type() ArgType {
	if b {
		return TrueType
	}
	return FalseType
}

// Function - name and arguments of a call
type Function struct {
	Name string
	Args []Arg
}

// New - create a call
func New(name string, args ...Arg) Function {
	if nil == args {
		args = []Arg{}
	}
	return Function{Name: name, Args: args}
}

// Default - the call used when none is specified
func Default() Function {
	return Function{Name: DefaultName, Args: []Arg{}}
}

// IsDefault - true for the default call with no arguments
//
// the default call is encoded as absent
func (f Function) IsDefault() bool {
	return DefaultName == f.Name && 0 == len(f.Args)
}

// Equal - structural comparison
func (f Function) Equal(other Function) bool {
	return f.Name == other.Name && equalArgs(f.Args, other.Args)
}

// Clone - deep copy, binary and list arguments share nothing
func (f Function) Clone() Function {
	return Function{Name: f.Name, Args: cloneArgs(f.Args)}
}

func cloneArgs(args []Arg) []Arg {
	c := make([]Arg, len(args))
	for i, arg := range args {
		c[i] = cloneArg(arg)
	}
	return c
}

func cloneArg(arg Arg) Arg {
	switch a := arg.(type) {
	case BinaryArg:
		return append(BinaryArg{}, a...)
	case ListArg:
		return ListArg(cloneArgs(a))
	default:
		return arg
	}
}

// EqualArg - structural comparison of two arguments
func EqualArg(a Arg, b Arg) bool {
	switch x := a.(type) {
	case IntegerArg:
		y, ok := b.(IntegerArg)
		return ok && x == y
	case BooleanArg:
		y, ok := b.(BooleanArg)
		return ok && x == y
	case StringArg:
		y, ok := b.(StringArg)
		return ok && x == y
	case BinaryArg:
		y, ok := b.(BinaryArg)
		return ok && bytes.Equal(x, y)
	case ListArg:
		y, ok := b.(ListArg)
		return ok && equalArgs(x, y)
	default:
		return false
	}
}

func equalArgs(a []Arg, b []Arg) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualArg(a[i], b[i]) {
			return false
		}
	}
	return true
}
