// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package symbol - token symbols and asset quantities
//
// a symbol is a 64 bit value: the low byte is the decimal precision
// and the remaining seven bytes hold the upper case ticker, first
// character lowest
package symbol

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/eosapi/fault"
)

// limits
const (
	MaximumPrecision  = 18
	MaximumCodeLength = 7
)

// Symbol - precision and ticker code
type Symbol struct {
	Precision uint8
	Code      string
}

// CodeFromString - pack a ticker into the 56 bit code value
func CodeFromString(code string) (uint64, error) {
	if 0 == len(code) || len(code) > MaximumCodeLength {
		return 0, fault.InvalidSymbol
	}
	value := uint64(0)
	for i := 0; i < len(code); i += 1 {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return 0, fault.InvalidSymbol
		}
		value |= uint64(c) << uint(8*i)
	}
	return value, nil
}

// CodeToString - unpack a code value back to its ticker
func CodeToString(code uint64) string {
	s := make([]byte, 0, MaximumCodeLength)
	for ; 0 != code; code >>= 8 {
		s = append(s, byte(code&0xff))
	}
	return string(s)
}

// Encode - combine precision and ticker into a single value
func Encode(precision int, code string) (uint64, error) {
	if precision < 0 || precision > MaximumPrecision {
		return 0, fault.InvalidSymbol
	}
	c, err := CodeFromString(code)
	if nil != err {
		return 0, err
	}
	return c<<8 | uint64(precision), nil
}

// Decode - split a symbol value
func Decode(value uint64) Symbol {
	return Symbol{
		Precision: uint8(value & 0xff),
		Code:      CodeToString(value >> 8),
	}
}

// DecodeValid - split a symbol value that must have a valid precision
// and ticker
func DecodeValid(value uint64) (Symbol, error) {
	s := Decode(value)
	v, err := s.Value()
	if nil != err {
		return Symbol{}, err
	}
	if v != value {
		return Symbol{}, fault.InvalidSymbol
	}
	return s, nil
}

// Value - the packed 64 bit form
func (s Symbol) Value() (uint64, error) {
	return Encode(int(s.Precision), s.Code)
}

// String - text form "precision,CODE"
func (s Symbol) String() string {
	return strconv.Itoa(int(s.Precision)) + "," + s.Code
}

// ParseSymbol - read the "precision,CODE" text form
func ParseSymbol(s string) (Symbol, error) {
	parts := strings.Split(s, ",")
	if 2 != len(parts) {
		return Symbol{}, fault.InvalidSymbol
	}
	precision, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if nil != err {
		return Symbol{}, fault.InvalidSymbol
	}
	sym := Symbol{
		Precision: uint8(precision),
		Code:      strings.TrimSpace(parts[1]),
	}
	if _, err := Encode(precision, sym.Code); nil != err {
		return Symbol{}, err
	}
	return sym, nil
}
