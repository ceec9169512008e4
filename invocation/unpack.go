// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invocation

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/wavestx/fault"
)

// Unpack - turn a byte slice into a call
//
// returns the number of bytes used, the remainder is not examined
func (record Packed) Unpack() (f Function, n int, e error) {

	// any slice out of range means the record was cut short
	defer func() {
		if r := recover(); nil != r {
			f = Function{}
			n = 0
			e = fault.ErrTruncated
		}
	}()

	// reads past the end must fail even when capacity remains
	record = record[:len(record):len(record)]

	if len(record) < 2 {
		return Function{}, 0, fault.ErrTruncated
	}
	if functionCallTag != record[0] || userFunctionTag != record[1] {
		return Function{}, 0, fault.ErrWrongFunctionCallHeader
	}
	n = 2

	nameLength := int(binary.BigEndian.Uint32(record[n:]))
	n += 4
	name := string(record[n : n+nameLength])
	n += nameLength

	args, argsLength, err := unpackArgs(record[n:])
	if nil != err {
		return Function{}, 0, errors.Wrapf(err, "function: %q", name)
	}
	n += argsLength

	return Function{Name: name, Args: args}, n, nil
}

// Decode - the whole of the buffer must be one call
//
// an empty buffer is the default call
func Decode(buffer []byte) (Function, error) {
	if 0 == len(buffer) {
		return Default(), nil
	}
	f, n, err := Packed(buffer).Unpack()
	if nil != err {
		return Function{}, err
	}
	if n != len(buffer) {
		return Function{}, fault.ErrTrailingBytes
	}
	return f, nil
}

// int32 count followed by the arguments
func unpackArgs(record Packed) ([]Arg, int, error) {
	count := binary.BigEndian.Uint32(record)
	n := 4

	args := []Arg{}
	for i := uint32(0); i < count; i += 1 {
		arg, argLength, err := unpackArg(record[n:])
		if nil != err {
			return nil, 0, errors.Wrapf(err, "argument: %d", i)
		}
		n += argLength
		args = append(args, arg)
	}
	return args, n, nil
}

func unpackArg(record Packed) (Arg, int, error) {
	n := 1
	switch ArgType(record[0]) {

	case IntegerType:
		value := binary.BigEndian.Uint64(record[n:])
		return IntegerArg(int64(value)), n + 8, nil

	case BinaryType:
		length := int(binary.BigEndian.Uint32(record[n:]))
		n += 4
		value := record[n : n+length]
		data := make([]byte, length)
		copy(data, value)
		return BinaryArg(data), n + length, nil

	case StringType:
		length := int(binary.BigEndian.Uint32(record[n:]))
		n += 4
		return StringArg(record[n : n+length]), n + length, nil

	case TrueType:
		return BooleanArg(true), n, nil

	case FalseType:
		return BooleanArg(false), n, nil

	case ListType:
		items, itemsLength, err := unpackArgs(record[n:])
		if nil != err {
			return nil, 0, err
		}
		return ListArg(items), n + itemsLength, nil

	default:
		return nil, 0, errors.Wrapf(fault.ErrUnknownArgumentType, "type: 0x%02x", record[0])
	}
}
