// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invocation_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/wavestx/fault"
	"github.com/bitmark-inc/wavestx/invocation"
	"github.com/bitmark-inc/wavestx/util"
)

func TestPackKnownBytes(t *testing.T) {
	f := invocation.New("transfer",
		invocation.StringArg("ab"),
		invocation.IntegerArg(5),
		invocation.BooleanArg(true),
		invocation.BooleanArg(false),
		invocation.BinaryArg{0xff},
	)

	expected := []byte{
		0x09, 0x01,
		0x00, 0x00, 0x00, 0x08, 't', 'r', 'a', 'n', 's', 'f', 'e', 'r',
		0x00, 0x00, 0x00, 0x05,
		0x02, 0x00, 0x00, 0x00, 0x02, 'a', 'b',
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05,
		0x06,
		0x07,
		0x01, 0x00, 0x00, 0x00, 0x01, 0xff,
	}

	packed := f.Pack()
	if !bytes.Equal(packed, expected) {
		t.Errorf("pack: got: %s", util.FormatBytes("actual", packed))
		t.Fatalf("pack: expected: %s", util.FormatBytes("expected", expected))
	}

	f2, n, err := packed.Unpack()
	assert.Nil(t, err)
	assert.Equal(t, len(expected), n)
	assert.True(t, f.Equal(f2))
}

func TestNestedRoundTrip(t *testing.T) {
	f := invocation.New("deep",
		invocation.ListArg{
			invocation.IntegerArg(-1),
			invocation.ListArg{
				invocation.StringArg("inner"),
				invocation.ListArg{
					invocation.BooleanArg(true),
					invocation.BinaryArg{1, 2, 3},
					invocation.BinaryArg{},
					invocation.ListArg{},
				},
			},
		},
		invocation.StringArg(""),
		invocation.IntegerArg(9223372036854775807),
	)

	b := f.Bytes()
	f2, err := invocation.Decode(b)
	assert.Nil(t, err)
	assert.True(t, f.Equal(f2))
	assert.Equal(t, b, []byte(f2.Pack()))

	// decode then encode is the identity on the bytes
	f3, err := invocation.Decode(f2.Bytes())
	assert.Nil(t, err)
	assert.True(t, f2.Equal(f3))
}

func TestClone(t *testing.T) {
	inner := invocation.BinaryArg{1, 2, 3}
	f := invocation.New("copy", invocation.ListArg{inner, invocation.StringArg("s")}, invocation.BinaryArg{4})

	c := f.Clone()
	assert.True(t, f.Equal(c))

	c.Args[1].(invocation.BinaryArg)[0] = 0xff
	c.Args[0].(invocation.ListArg)[0].(invocation.BinaryArg)[0] = 0xff
	c.Args[0].(invocation.ListArg)[1] = invocation.IntegerArg(7)
	c.Args[0] = invocation.BooleanArg(false)

	assert.Equal(t, invocation.BinaryArg{1, 2, 3}, inner)
	assert.Equal(t, invocation.BinaryArg{4}, f.Args[1])
	assert.Equal(t, invocation.StringArg("s"), f.Args[0].(invocation.ListArg)[1])
	assert.False(t, f.Equal(c))
}

func TestDefault(t *testing.T) {
	d := invocation.Default()
	assert.True(t, d.IsDefault())
	assert.Equal(t, []byte{}, d.Bytes())

	d2, err := invocation.Decode(nil)
	assert.Nil(t, err)
	assert.True(t, d.Equal(d2))

	// a named default with arguments is not the default call
	f := invocation.New(invocation.DefaultName, invocation.IntegerArg(1))
	assert.False(t, f.IsDefault())
	assert.NotEqual(t, 0, len(f.Bytes()))

	assert.False(t, invocation.New("other").IsDefault())
}

func TestEqual(t *testing.T) {
	a := invocation.New("f", invocation.IntegerArg(1))
	assert.False(t, a.Equal(invocation.New("g", invocation.IntegerArg(1))))
	assert.False(t, a.Equal(invocation.New("f", invocation.IntegerArg(2))))
	assert.False(t, a.Equal(invocation.New("f", invocation.StringArg("1"))))
	assert.False(t, a.Equal(invocation.New("f")))
	assert.True(t, invocation.New("f").Equal(invocation.Function{Name: "f"}))
}

func TestDecodeErrors(t *testing.T) {
	good := invocation.New("f", invocation.IntegerArg(1)).Pack()

	// unknown discriminator
	bad := append([]byte{}, good...)
	bad[len(bad)-9] = 0x05
	_, err := invocation.Decode(bad)
	assert.True(t, fault.IsErrDecode(err))
	assert.Contains(t, err.Error(), fault.ErrUnknownArgumentType.Error())

	// truncated
	_, err = invocation.Decode(good[:len(good)-1])
	assert.Equal(t, fault.ErrTruncated, err)

	// trailing
	_, err = invocation.Decode(append(append([]byte{}, good...), 0))
	assert.Equal(t, fault.ErrTrailingBytes, err)

	// header
	_, err = invocation.Decode([]byte{0x09, 0x02, 0, 0, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, fault.ErrWrongFunctionCallHeader, err)

	// huge declared length
	_, err = invocation.Decode([]byte{0x09, 0x01, 0, 0, 0, 0, 0, 0, 0, 1, 0x01, 0x7f, 0xff, 0xff, 0xff})
	assert.Equal(t, fault.ErrTruncated, err)
}

func TestJSON(t *testing.T) {
	f := invocation.New("f",
		invocation.IntegerArg(7),
		invocation.ListArg{invocation.BooleanArg(false)},
		invocation.BinaryArg{0x01},
	)
	buffer, err := json.Marshal(f)
	assert.Nil(t, err)
	assert.Equal(t, `{"function":"f","args":[{"type":"integer","value":7},{"type":"list","value":[{"type":"boolean","value":false}]},{"type":"binary","value":"base64:AQ=="}]}`, string(buffer))
}
