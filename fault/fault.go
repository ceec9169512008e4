// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type DecodeError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecipientError GenericError
type UnrecognisedError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = InvalidError("already initialised")
	ErrChainIdMismatch         = DecodeError("chain id mismatch")
	ErrInvalidAlias            = InvalidError("invalid alias")
	ErrInvalidAssetId          = InvalidError("invalid asset id")
	ErrInvalidBase58           = InvalidError("invalid base58 text")
	ErrInvalidChain            = InvalidError("invalid chain")
	ErrInvalidCount            = DecodeError("invalid count")
	ErrInvalidDataEntry        = InvalidError("invalid data entry")
	ErrInvalidDirectory        = InvalidError("invalid directory")
	ErrInvalidEncoding         = InvalidError("invalid encoding")
	ErrInvalidFieldLength      = InvalidError("field is too long")
	ErrInvalidFeeAsset         = InvalidError("fee asset is not allowed for this layout")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidOrder            = InvalidError("invalid order")
	ErrInvalidOrderSide        = DecodeError("invalid order side")
	ErrInvalidPublicKey        = InvalidError("invalid public key")
	ErrInvalidSignature        = InvalidError("invalid signature")
	ErrInvalidVersion          = InvalidError("invalid version")
	ErrMalformedProtobuf       = DecodeError("malformed protobuf")
	ErrMarshalProtobuf         = InvalidError("cannot marshal protobuf")
	ErrMissingDApp             = InvalidError("dApp recipient is required")
	ErrMissingRecipient        = RecipientError("recipient is not set")
	ErrNativeAssetNotAllowed   = InvalidError("native asset is not allowed")
	ErrNotAddress              = DecodeError("not an address")
	ErrNotConfigurationTable   = InvalidError("configuration did not return a table")
	ErrNotDigest               = DecodeError("not a digest")
	ErrNotFoundConfigFile      = NotFoundError("configuration file is not found")
	ErrNotOption               = DecodeError("invalid option flag")
	ErrNotTransactionPack      = DecodeError("not a transaction pack")
	ErrRecipientRequired       = InvalidError("recipient is required")
	ErrSignerFailed            = ProcessError("signer failed")
	ErrTooManyProofs           = InvalidError("too many proofs")
	ErrTrailingBytes           = DecodeError("trailing bytes after decode")
	ErrTruncated               = DecodeError("truncated data")
	ErrUnknownArgumentType     = DecodeError("unknown argument type")
	ErrUnknownDataType         = DecodeError("unknown data entry type")
	ErrUnknownRecipientType    = DecodeError("unknown recipient type")
	ErrUnknownTransactionType  = DecodeError("unknown transaction type")
	ErrUnrecognisedVariant     = UnrecognisedError("transaction data is not set")
	ErrUnsupportedLayout       = InvalidError("binary layout is not supported for this version")
	ErrUnsupportedVariant      = InvalidError("unsupported transaction variant")
	ErrWrongAddressChecksum    = DecodeError("address checksum mismatch")
	ErrWrongAddressVersion     = DecodeError("address version mismatch")
	ErrWrongFunctionCallHeader = DecodeError("wrong function call header")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e DecodeError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e RecipientError) Error() string    { return string(e) }
func (e UnrecognisedError) Error() string { return string(e) }

// determine the class of an error
func IsErrDecode(e error) bool       { _, ok := errors.Cause(e).(DecodeError); return ok }
func IsErrInvalid(e error) bool      { _, ok := errors.Cause(e).(InvalidError); return ok }
func IsErrNotFound(e error) bool     { _, ok := errors.Cause(e).(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := errors.Cause(e).(ProcessError); return ok }
func IsErrRecipient(e error) bool    { _, ok := errors.Cause(e).(RecipientError); return ok }
func IsErrUnrecognised(e error) bool { _, ok := errors.Cause(e).(UnrecognisedError); return ok }
