// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EncodingError GenericError
type ExternalError GenericError
type InvalidError GenericError
type KeyError GenericError
type NotFoundError GenericError
type SchemaError GenericError

// common errors - keep in alphabetic order
var (
	AbiNotFound               = NotFoundError("abi not found for account")
	AbiParseFailed            = SchemaError("abi parse failed")
	AliasCycle                = SchemaError("type alias cycle")
	AlreadyInitialised        = InvalidError("already initialised")
	ArityMismatch             = SchemaError("struct and array arity mismatch")
	ArrayExpected             = EncodingError("array expected")
	AssetFormat               = EncodingError("invalid asset format")
	BinaryExtensionNotLast    = SchemaError("binary extension field must be last")
	BlockIdLength             = KeyError("reference block id must be 32 bytes")
	BooleanExpected           = EncodingError("boolean expected")
	ChainIdLength             = KeyError("chain id must be 32 bytes")
	ChecksumMismatch          = KeyError("checksum mismatch")
	ConfigurationNotTable     = InvalidError("configuration file must return a table")
	DeadlineExceeded          = EncodingError("serialization time limit exceeded")
	DecompressionFailed       = EncodingError("decompression failed")
	DigestLength              = KeyError("digest must be 32 bytes")
	DuplicateType             = SchemaError("duplicate type definition")
	FetchFailed               = ExternalError("abi fetch failed")
	FixedLengthMismatch       = EncodingError("fixed length value has wrong size")
	HexExpected               = EncodingError("hex string expected")
	IntegerOutOfRange         = EncodingError("integer out of range")
	InternalFailure           = GenericError("internal failure")
	InvalidBase58             = KeyError("invalid base58 string")
	InvalidCompression        = InvalidError("invalid compression type")
	InvalidDirectory          = InvalidError("invalid directory")
	InvalidFileName           = InvalidError("file name must not contain a path")
	InvalidJSON               = EncodingError("invalid json")
	InvalidLoggerChannel      = InvalidError("invalid logger channel")
	InvalidName               = EncodingError("invalid name")
	InvalidPrivateKey         = KeyError("invalid private key")
	InvalidPublicKey          = KeyError("invalid public key")
	InvalidRequestRate        = InvalidError("requests per second must be positive")
	InvalidSignature          = KeyError("invalid signature")
	InvalidSymbol             = EncodingError("invalid symbol")
	InvalidTime               = EncodingError("invalid time")
	KeyPrefix                 = KeyError("unrecognised key prefix")
	MaximumDepthExceeded      = SchemaError("maximum recursion depth exceeded")
	MissingField              = EncodingError("missing required field")
	NumberExpected            = EncodingError("number expected")
	ObjectExpected            = EncodingError("object expected")
	RateLimiting              = ExternalError("rate limit exceeded")
	StringExpected            = EncodingError("string expected")
	StructBaseCycle           = SchemaError("struct base cycle")
	TrailingBytes             = EncodingError("trailing bytes after value")
	Truncated                 = EncodingError("data truncated")
	UnknownAction             = SchemaError("unknown action")
	UnknownType               = SchemaError("unknown type")
	UnknownVariantMember      = EncodingError("unknown variant member")
	UnsupportedKeyType        = KeyError("unsupported key type")
	VariantIndexOutOfRange    = EncodingError("variant index out of range")
	VarintOverflow            = EncodingError("varint overflow")
	WrongNumberOfVariantItems = EncodingError("variant must be [type, value]")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EncodingError) Error() string { return string(e) }
func (e ExternalError) Error() string { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e KeyError) Error() string      { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e SchemaError) Error() string   { return string(e) }

// determine the class of an error
// wrapped errors are unwrapped to find the class
func IsErrEncoding(e error) bool { var t EncodingError; return errors.As(e, &t) }
func IsErrExternal(e error) bool { var t ExternalError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrKey(e error) bool      { var t KeyError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrSchema(e error) bool   { var t SchemaError; return errors.As(e, &t) }
