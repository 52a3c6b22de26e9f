// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package symbol

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/eosapi/fault"
)

// MaximumAmount - largest magnitude an asset may hold
const MaximumAmount = int64(1)<<62 - 1

// Asset - a quantity of some token
//
// text form is "amount CODE" where the amount carries exactly
// Precision decimal places e.g. "1.0000 EOS"
type Asset struct {
	Amount int64
	Symbol Symbol
}

// ParseAsset - read the text form of an asset
func ParseAsset(s string) (Asset, error) {
	s = strings.TrimSpace(s)
	space := strings.IndexByte(s, ' ')
	if space <= 0 {
		return Asset{}, fault.AssetFormat
	}
	amountText := s[:space]
	code := strings.TrimSpace(s[space+1:])

	negative := false
	if strings.HasPrefix(amountText, "-") {
		negative = true
		amountText = amountText[1:]
	}

	precision := 0
	digits := amountText
	if dot := strings.IndexByte(amountText, '.'); dot >= 0 {
		precision = len(amountText) - dot - 1
		digits = amountText[:dot] + amountText[dot+1:]
		if 0 == dot || 0 == precision {
			return Asset{}, fault.AssetFormat
		}
	}
	if 0 == len(digits) || precision > MaximumPrecision {
		return Asset{}, fault.AssetFormat
	}

	amount, err := strconv.ParseInt(digits, 10, 64)
	if nil != err || amount < 0 || amount > MaximumAmount {
		return Asset{}, fault.AssetFormat
	}
	if negative {
		amount = -amount
	}

	if _, err := Encode(precision, code); nil != err {
		return Asset{}, err
	}

	return Asset{
		Amount: amount,
		Symbol: Symbol{
			Precision: uint8(precision),
			Code:      code,
		},
	}, nil
}

// Check - amount within range and a valid symbol
func (a Asset) Check() error {
	if a.Amount > MaximumAmount || a.Amount < -MaximumAmount {
		return fault.AssetFormat
	}
	_, err := a.Symbol.Value()
	return err
}

// String - text form of the asset
func (a Asset) String() string {
	sign := ""
	magnitude := uint64(a.Amount)
	if a.Amount < 0 {
		sign = "-"
		magnitude = -magnitude
	}
	digits := strconv.FormatUint(magnitude, 10)

	p := int(a.Symbol.Precision)
	if p > 0 {
		if len(digits) <= p {
			digits = strings.Repeat("0", p-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-p] + "." + digits[len(digits)-p:]
	}
	return sign + digits + " " + a.Symbol.Code
}
