// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

const bytesPerLine = 8

// FormatBytes - Go source for a byte slice, used by tests to dump
// the expected value of an encoding
func FormatBytes(name string, data []byte) string {
	if 0 == len(data) {
		return name + " := []byte{}"
	}

	s := strings.Builder{}
	s.WriteString(name)
	s.WriteString(" := []byte{")
	for i, b := range data {
		if 0 == i%bytesPerLine {
			s.WriteString("\n\t")
		} else {
			s.WriteByte(' ')
		}
		fmt.Fprintf(&s, "0x%02x,", b)
	}
	s.WriteString("\n}")
	return s.String()
}
