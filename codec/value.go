// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/eosapi/fault"
)

// layout of all time values, fractional seconds are optional on input
const timeLayout = "2006-01-02T15:04:05"

// integers arrive as json.Number or as decimal strings
func toBig(value interface{}) (*big.Int, error) {
	s := ""
	switch v := value.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, fault.NumberExpected
		}
		b, _ := big.NewFloat(v).Int(nil)
		return b, nil
	case int:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	default:
		return nil, fault.NumberExpected
	}

	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fault.NumberExpected
	}
	return b, nil
}

func toInt(value interface{}, minimum int64, maximum int64) (int64, error) {
	b, err := toBig(value)
	if nil != err {
		return 0, err
	}
	if !b.IsInt64() {
		return 0, fault.IntegerOutOfRange
	}
	n := b.Int64()
	if n < minimum || n > maximum {
		return 0, fault.IntegerOutOfRange
	}
	return n, nil
}

func toUint(value interface{}, maximum uint64) (uint64, error) {
	b, err := toBig(value)
	if nil != err {
		return 0, err
	}
	if b.Sign() < 0 || !b.IsUint64() {
		return 0, fault.IntegerOutOfRange
	}
	n := b.Uint64()
	if n > maximum {
		return 0, fault.IntegerOutOfRange
	}
	return n, nil
}

func toFloat(value interface{}, bits int) (float64, error) {
	s := ""
	switch v := value.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	case float64:
		return v, nil
	default:
		return 0, fault.NumberExpected
	}
	f, err := strconv.ParseFloat(s, bits)
	if nil != err {
		return 0, fault.NumberExpected
	}
	return f, nil
}

func toBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case json.Number:
		switch v.String() {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
	case string:
		switch v {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, fault.BooleanExpected
}

func toString(value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fault.StringExpected
	}
	return s, nil
}

// hex text, optionally constrained to an exact byte length
func toHex(value interface{}, length int) ([]byte, error) {
	s, err := toString(value)
	if nil != err {
		return nil, fault.HexExpected
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.HexExpected
	}
	if length >= 0 && len(b) != length {
		return nil, fault.FixedLengthMismatch
	}
	return b, nil
}

// ISO-8601 without zone, interpreted as UTC
func toTime(value interface{}) (time.Time, error) {
	s, err := toString(value)
	if nil != err {
		return time.Time{}, fault.InvalidTime
	}
	t, err := time.Parse(timeLayout, strings.TrimSuffix(s, "Z"))
	if nil != err {
		return time.Time{}, fault.InvalidTime
	}
	return t, nil
}
