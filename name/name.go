// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package name - account and action names packed into 64 bits
//
// a name is up to 13 characters from ".12345abcdefghijklmnopqrstuvwxyz",
// the first 12 take 5 bits each from the most significant end and the
// 13th takes the low 4 bits, so it is restricted to ".12345abcdefghij"
package name

import (
	"strings"

	"github.com/bitmark-inc/eosapi/fault"
)

// MaximumLength - characters in the longest name
const MaximumLength = 13

const charMap = ".12345abcdefghijklmnopqrstuvwxyz"

// Parse - convert a string to its 64 bit value
func Parse(s string) (uint64, error) {
	if len(s) > MaximumLength {
		return 0, fault.InvalidName
	}

	value := uint64(0)
	for i := 0; i < len(s); i += 1 {
		c, ok := charToSymbol(s[i])
		if !ok {
			return 0, fault.InvalidName
		}
		if i < MaximumLength-1 {
			value |= uint64(c&0x1f) << uint(64-5*(i+1))
		} else {
			if c > 0x0f {
				return 0, fault.InvalidName
			}
			value |= uint64(c)
		}
	}
	return value, nil
}

// Encode - convert a string to its 64 bit value
//
// returns zero for an invalid name
func Encode(s string) uint64 {
	value, err := Parse(s)
	if nil != err {
		return 0
	}
	return value
}

// Decode - convert a 64 bit value back to a string
//
// trailing '.' padding is removed
func Decode(value uint64) string {
	var buffer [MaximumLength]byte

	for i := 0; i < MaximumLength; i += 1 {
		if 0 == i {
			buffer[MaximumLength-1] = charMap[value&0x0f]
			value >>= 4
		} else {
			buffer[MaximumLength-1-i] = charMap[value&0x1f]
			value >>= 5
		}
	}
	return strings.TrimRight(string(buffer[:]), ".")
}

// Valid - true if s is a name that survives a round trip unchanged
func Valid(s string) bool {
	value, err := Parse(s)
	if nil != err {
		return false
	}
	return Decode(value) == s
}

func charToSymbol(c byte) (byte, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return c - 'a' + 6, true
	case c >= '1' && c <= '5':
		return c - '1' + 1, true
	case '.' == c:
		return 0, true
	default:
		return 0, false
	}
}
