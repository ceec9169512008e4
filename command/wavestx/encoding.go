// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/wavestx/configuration"
	"github.com/bitmark-inc/wavestx/fault"
)

// decodeBytes - text to bytes, an explicit prefix overrides the
// default encoding
func decodeBytes(defaultEncoding string, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if "" == text {
		return nil, fault.ErrTruncated
	}

	encoding := defaultEncoding
	if n := strings.IndexByte(text, ':'); n > 0 {
		switch prefix := strings.ToLower(text[:n]); prefix {
		case configuration.EncodingBase58, configuration.EncodingBase64, configuration.EncodingHex:
			encoding = prefix
			text = text[n+1:]
		}
	}

	var b []byte
	var err error
	switch encoding {
	case configuration.EncodingBase58:
		b, err = base58.Decode(text)
	case configuration.EncodingBase64:
		b, err = base64.StdEncoding.DecodeString(text)
	case configuration.EncodingHex:
		b, err = hex.DecodeString(text)
	default:
		return nil, errors.Wrapf(fault.ErrInvalidEncoding, "encoding: %q", encoding)
	}
	if nil != err {
		return nil, errors.Wrapf(fault.ErrInvalidEncoding, "%s: %s", encoding, err)
	}
	return b, nil
}

// encodeBytes - bytes to text in the configured encoding
func encodeBytes(encoding string, b []byte) string {
	switch encoding {
	case configuration.EncodingBase64:
		return base64.StdEncoding.EncodeToString(b)
	case configuration.EncodingHex:
		return hex.EncodeToString(b)
	default:
		return base58.Encode(b)
	}
}
