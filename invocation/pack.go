// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invocation

import (
	"encoding/binary"
)

// Packed - packed call
type Packed []byte

// call header
const (
	functionCallTag = 0x09
	userFunctionTag = 0x01
)

// Pack - pack header, name and arguments
func (f Function) Pack() Packed {
	buffer := Packed{functionCallTag, userFunctionTag}
	buffer = appendBytes(buffer, []byte(f.Name))
	buffer = appendUint32(buffer, uint32(len(f.Args)))
	for _, arg := range f.Args {
		buffer = arg.pack(buffer)
	}
	return buffer
}

// Bytes - packed form, empty for the default call
func (f Function) Bytes() []byte {
	if f.IsDefault() {
		return []byte{}
	}
	return f.Pack()
}

func (i IntegerArg) pack(buffer Packed) Packed {
	buffer = append(buffer, byte(IntegerType))
	return appendUint64(buffer, uint64(i))
}

func (b BooleanArg) pack(buffer Packed) Packed {
	return append(buffer, byte(b.Type()))
}

func (b BinaryArg) pack(buffer Packed) Packed {
	buffer = append(buffer, byte(BinaryType))
	return appendBytes(buffer, b)
}

func (s StringArg) pack(buffer Packed) Packed {
	buffer = append(buffer, byte(StringType))
	return appendBytes(buffer, []byte(s))
}

func (l ListArg) pack(buffer Packed) Packed {
	buffer = append(buffer, byte(ListType))
	buffer = appendUint32(buffer, uint32(len(l)))
	for _, arg := range l {
		buffer = arg.pack(buffer)
	}
	return buffer
}

// append bytes prefixed by int32(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = appendUint32(buffer, uint32(len(data)))
	return append(buffer, data...)
}

func appendUint32(buffer Packed, value uint32) Packed {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, value)
	return append(buffer, b...)
}

func appendUint64(buffer Packed, value uint64) Packed {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, value)
	return append(buffer, b...)
}
