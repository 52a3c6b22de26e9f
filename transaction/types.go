// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/keypair"
)

const expirationLayout = "2006-01-02T15:04:05"

// TimePointSec - whole seconds since the Unix epoch
type TimePointSec uint32

// Time - as a UTC time
func (t TimePointSec) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// MarshalText - "2006-01-02T15:04:05"
func (t TimePointSec) MarshalText() ([]byte, error) {
	return []byte(t.Time().Format(expirationLayout)), nil
}

// UnmarshalText - ISO-8601 without zone, UTC assumed
func (t *TimePointSec) UnmarshalText(s []byte) error {
	tm, err := time.Parse(expirationLayout, strings.TrimSuffix(string(s), "Z"))
	if nil != err {
		return fault.InvalidTime
	}
	seconds := tm.Unix()
	if seconds < 0 || seconds > 0xffffffff {
		return fault.InvalidTime
	}
	*t = TimePointSec(seconds)
	return nil
}

// HexBytes - byte string rendered as hex in JSON
type HexBytes []byte

// MarshalText - lower case hex
func (h HexBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(h)), nil
}

// UnmarshalText - hex of any case
func (h *HexBytes) UnmarshalText(s []byte) error {
	b, err := hex.DecodeString(string(s))
	if nil != err {
		return fault.HexExpected
	}
	*h = b
	return nil
}

// PermissionLevel - an authorising account and permission
type PermissionLevel struct {
	Actor      string `json:"actor"`
	Permission string `json:"permission"`
}

// Action - a contract call with already packed arguments
type Action struct {
	Account       string            `json:"account"`
	Name          string            `json:"name"`
	Authorization []PermissionLevel `json:"authorization"`
	Data          HexBytes          `json:"data"`
}

// Extension - opaque typed extension, JSON form is [type, "hex"]
type Extension struct {
	Type uint16
	Data HexBytes
}

// MarshalJSON - two element array
func (x Extension) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{x.Type, x.Data})
}

// UnmarshalJSON - two element array
func (x *Extension) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	err := json.Unmarshal(b, &pair)
	if nil != err || 2 != len(pair) {
		return fault.ArrayExpected
	}
	err = json.Unmarshal(pair[0], &x.Type)
	if nil != err {
		return fault.NumberExpected
	}
	return json.Unmarshal(pair[1], &x.Data)
}

// Header - fields common to every transaction
type Header struct {
	Expiration       TimePointSec `json:"expiration"`
	RefBlockNum      uint16       `json:"ref_block_num"`
	RefBlockPrefix   uint32       `json:"ref_block_prefix"`
	MaxNetUsageWords uint32       `json:"max_net_usage_words"`
	MaxCPUUsageMS    uint8        `json:"max_cpu_usage_ms"`
	DelaySec         uint32       `json:"delay_sec"`
}

// Transaction - header and actions
type Transaction struct {
	Header
	ContextFreeActions []Action    `json:"context_free_actions"`
	Actions            []Action    `json:"actions"`
	Extensions         []Extension `json:"transaction_extensions"`
}

// SignedTransaction - transaction with signatures and context free data
type SignedTransaction struct {
	Transaction
	Signatures      []keypair.Signature `json:"signatures"`
	ContextFreeData []HexBytes          `json:"context_free_data"`
}

// replace missing lists with empty ones
func (t *Transaction) normalise() {
	if nil == t.ContextFreeActions {
		t.ContextFreeActions = []Action{}
	}
	if nil == t.Actions {
		t.Actions = []Action{}
	}
	for _, list := range [][]Action{t.ContextFreeActions, t.Actions} {
		for i := range list {
			if nil == list[i].Authorization {
				list[i].Authorization = []PermissionLevel{}
			}
			if nil == list[i].Data {
				list[i].Data = HexBytes{}
			}
		}
	}
	if nil == t.Extensions {
		t.Extensions = []Extension{}
	}
}

func (s *SignedTransaction) normalise() {
	s.Transaction.normalise()
	if nil == s.Signatures {
		s.Signatures = []keypair.Signature{}
	}
	if nil == s.ContextFreeData {
		s.ContextFreeData = []HexBytes{}
	}
}

// JSON - chain JSON form with every list present
func (t Transaction) JSON() ([]byte, error) {
	t.normalise()
	return json.Marshal(t)
}

// JSON - chain JSON form with every list present
func (s SignedTransaction) JSON() ([]byte, error) {
	s.normalise()
	return json.Marshal(s)
}

// ParseSignedTransaction - read the JSON form, missing lists are empty
func ParseSignedTransaction(text []byte) (*SignedTransaction, error) {
	var s SignedTransaction
	err := json.Unmarshal(text, &s)
	if nil != err {
		return nil, jsonError(err)
	}
	s.normalise()
	return &s, nil
}

// keep errors raised by the field decoders, classify the rest
func jsonError(err error) error {
	if fault.IsErrEncoding(err) || fault.IsErrKey(err) || fault.IsErrInvalid(err) {
		return err
	}
	return fmt.Errorf("%w: %s", fault.InvalidJSON, err)
}
