// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec_test

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/eosapi/abi"
	"github.com/bitmark-inc/eosapi/codec"
	"github.com/bitmark-inc/eosapi/fault"
)

const tokenABI = `{
  "version": "eosio::abi/1.1",
  "types": [{"new_type_name": "account_name", "type": "name"}],
  "structs": [
    {"name": "transfer", "base": "", "fields": [
      {"name": "from", "type": "account_name"},
      {"name": "to", "type": "account_name"},
      {"name": "quantity", "type": "asset"},
      {"name": "memo", "type": "string"}
    ]}
  ],
  "actions": [{"name": "transfer", "type": "transfer", "ricardian_contract": ""}]
}`

const testABI = `{
  "version": "eosio::abi/1.1",
  "structs": [
    {"name": "node", "base": "", "fields": [
      {"name": "value", "type": "uint8"},
      {"name": "next", "type": "node?"}
    ]},
    {"name": "header", "base": "", "fields": [{"name": "id", "type": "uint16"}]},
    {"name": "record", "base": "header", "fields": [
      {"name": "tags", "type": "string[]"},
      {"name": "choice", "type": "choice"},
      {"name": "extra", "type": "uint32$"},
      {"name": "more", "type": "string$"}
    ]}
  ],
  "variants": [{"name": "choice", "types": ["uint8", "string"]}],
  "actions": [
    {"name": "chain", "type": "node"},
    {"name": "record", "type": "record"}
  ]
}`

const transferJSON = `{"from":"alice","to":"bob","quantity":"1.0000 EOS","memo":"hi"}`
const transferHex = "0000000000855c340000000000000e3d102700000000000004454f5300000000026869"

func newCodec(t *testing.T, text string, options codec.Options) *codec.Codec {
	d, err := abi.Parse([]byte(text))
	if nil != err {
		t.Fatalf("abi parse error: %s", err)
	}
	return codec.New(d, options)
}

func TestPackTransfer(t *testing.T) {
	c := newCodec(t, tokenABI, codec.Options{MaxTime: codec.DefaultMaxTime})

	packed, err := c.Pack("transfer", []byte(transferJSON))
	assert.Nil(t, err, "pack error")
	assert.Equal(t, transferHex, hex.EncodeToString(packed), "packed")

	unpacked, err := c.Unpack("transfer", packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, transferJSON, string(unpacked), "unpacked")
}

func TestPackPositional(t *testing.T) {
	c := newCodec(t, tokenABI, codec.Options{})

	packed, err := c.Pack("transfer", []byte(`["alice", "bob", "1.0000 EOS", "hi"]`))
	assert.Nil(t, err, "pack error")
	assert.Equal(t, transferHex, hex.EncodeToString(packed), "packed")

	_, err = c.Pack("transfer", []byte(`["alice", "bob"]`))
	assert.True(t, errors.Is(err, fault.ArityMismatch), "short array: %v", err)
	assert.True(t, fault.IsErrSchema(err), "schema class")
}

func TestPackErrors(t *testing.T) {
	c := newCodec(t, tokenABI, codec.Options{})

	tests := []struct {
		action string
		args   string
		err    error
	}{
		{"transfer", `{"from":"alice","to":"bob","quantity":"1.0000 EOS"}`, fault.MissingField},
		{"transfer", `{"from":"alice","to":"bob","quantity":"1.0000 EOS","memo":7}`, fault.StringExpected},
		{"transfer", `{"from":"ALICE","to":"bob","quantity":"1.0000 EOS","memo":""}`, fault.InvalidName},
		{"transfer", `{"from":"alice","to":"bob","quantity":"1.0000","memo":""}`, fault.AssetFormat},
		{"transfer", `"alice"`, fault.ObjectExpected},
		{"transfer", `{"from":`, fault.InvalidJSON},
		{"transfer", `{} {}`, fault.InvalidJSON},
		{"issue", `{}`, fault.UnknownAction},
	}

	for i, item := range tests {
		_, err := c.Pack(item.action, []byte(item.args))
		if !errors.Is(err, item.err) {
			t.Errorf("%d: pack: %s  error: %v  expected: %v", i, item.args, err, item.err)
		}
	}
}

func TestUnpackErrors(t *testing.T) {
	c := newCodec(t, tokenABI, codec.Options{})

	packed, _ := hex.DecodeString(transferHex)

	_, err := c.Unpack("transfer", packed[:len(packed)-1])
	assert.True(t, errors.Is(err, fault.Truncated), "truncated: %v", err)

	_, err = c.Unpack("transfer", append(append([]byte{}, packed...), 0))
	assert.True(t, errors.Is(err, fault.TrailingBytes), "trailing: %v", err)

	_, err = c.Unpack("transfer", nil)
	assert.True(t, errors.Is(err, fault.Truncated), "empty: %v", err)
	assert.True(t, fault.IsErrEncoding(err), "encoding class")
}

func TestVariantAndExtension(t *testing.T) {
	c := newCodec(t, testABI, codec.Options{})

	tests := []struct {
		args   string
		packed string
		output string
	}{
		{
			`{"id":1,"tags":["a"],"choice":["uint8",5]}`,
			"0100" + "010161" + "0005",
			`{"id":1,"tags":["a"],"choice":["uint8",5]}`,
		},
		{
			`{"id":2,"tags":[],"choice":["string","x"],"extra":7}`,
			"0200" + "00" + "010178" + "07000000",
			`{"id":2,"tags":[],"choice":["string","x"],"extra":7}`,
		},
		{
			`{"id":3,"tags":[],"choice":["uint8",0],"extra":1,"more":"z"}`,
			"0300" + "00" + "0000" + "01000000" + "017a",
			`{"id":3,"tags":[],"choice":["uint8",0],"extra":1,"more":"z"}`,
		},
	}

	for i, item := range tests {
		packed, err := c.Pack("record", []byte(item.args))
		if nil != err {
			t.Errorf("%d: pack error: %s", i, err)
			continue
		}
		if hex.EncodeToString(packed) != item.packed {
			t.Errorf("%d: packed: %x  expected: %s", i, packed, item.packed)
		}
		output, err := c.Unpack("record", packed)
		if nil != err {
			t.Errorf("%d: unpack error: %s", i, err)
			continue
		}
		if string(output) != item.output {
			t.Errorf("%d: output: %s  expected: %s", i, output, item.output)
		}
	}

	_, err := c.Pack("record", []byte(`{"id":1,"tags":[],"choice":["int64",5]}`))
	assert.True(t, errors.Is(err, fault.UnknownVariantMember), "unknown member: %v", err)

	_, err = c.Pack("record", []byte(`{"id":1,"tags":[],"choice":["uint8"]}`))
	assert.True(t, errors.Is(err, fault.WrongNumberOfVariantItems), "single item: %v", err)

	_, err = c.Pack("record", []byte(`{"id":1,"tags":[],"choice":["uint8",1],"more":"z"}`))
	assert.True(t, errors.Is(err, fault.MissingField), "extension gap: %v", err)

	_, err = c.Unpack("record", []byte{1, 0, 0, 9, 0})
	assert.True(t, errors.Is(err, fault.VariantIndexOutOfRange), "variant index: %v", err)
}

func TestOptionalChain(t *testing.T) {
	c := newCodec(t, testABI, codec.Options{})

	packed, err := c.Pack("chain", []byte(`{"value":1,"next":{"value":2,"next":null}}`))
	assert.Nil(t, err, "pack error")
	assert.Equal(t, "01010200", hex.EncodeToString(packed), "packed")

	output, err := c.Unpack("chain", packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, `{"value":1,"next":{"value":2,"next":null}}`, string(output), "output")

	_, err = c.Unpack("chain", []byte{1, 2})
	assert.True(t, errors.Is(err, fault.BooleanExpected), "bad flag: %v", err)
}

func TestMaximumDepth(t *testing.T) {
	c := newCodec(t, testABI, codec.Options{MaxDepth: 8})

	deep := strings.Repeat(`{"value":1,"next":`, 10) + "null" + strings.Repeat("}", 10)
	_, err := c.Pack("chain", []byte(deep))
	assert.True(t, errors.Is(err, fault.MaximumDepthExceeded), "pack depth: %v", err)
	assert.True(t, fault.IsErrSchema(err), "schema class")

	data := []byte{}
	for i := 0; i < 10; i += 1 {
		data = append(data, 1, 1)
	}
	data = append(data, 1, 0)
	_, err = c.Unpack("chain", data)
	assert.True(t, errors.Is(err, fault.MaximumDepthExceeded), "unpack depth: %v", err)

	shallow := strings.Repeat(`{"value":1,"next":`, 2) + "null" + strings.Repeat("}", 2)
	_, err = c.Pack("chain", []byte(shallow))
	assert.Nil(t, err, "shallow pack")
}

func TestDeadline(t *testing.T) {
	c := newCodec(t, testABI, codec.Options{MaxTime: time.Nanosecond})

	tags := strings.Repeat(`"a",`, 20000) + `"a"`
	_, err := c.Pack("record", []byte(`{"id":1,"tags":[`+tags+`],"choice":["uint8",1]}`))
	assert.True(t, errors.Is(err, fault.DeadlineExceeded), "deadline: %v", err)
}

func TestDecodeEncodeValue(t *testing.T) {
	c := newCodec(t, tokenABI, codec.Options{})

	packed, _ := hex.DecodeString(transferHex)
	value, err := c.Decode("transfer", packed)
	if !assert.Nil(t, err, "decode error") {
		return
	}

	object, ok := value.(codec.Object)
	if !assert.True(t, ok, "object type") {
		return
	}
	memo, ok := object.Get("memo")
	assert.True(t, ok, "memo present")
	assert.Equal(t, "hi", memo, "memo")

	repacked, err := c.Encode("transfer", value)
	assert.Nil(t, err, "encode error")
	assert.Equal(t, packed, repacked, "repacked")
}

func TestUnpackActionResult(t *testing.T) {
	c := newCodec(t, `{
  "version": "eosio::abi/1.2",
  "structs": [{"name": "balance", "base": "", "fields": [{"name": "quantity", "type": "asset"}]}],
  "actions": [
    {"name": "getbalance", "type": "balance"},
    {"name": "noresult", "type": "balance"}
  ],
  "action_results": [{"name": "getbalance", "result_type": "asset"}]
}`, codec.Options{})

	data, _ := hex.DecodeString("102700000000000004454f5300000000")
	result, err := c.UnpackActionResult("getbalance", data)
	assert.Nil(t, err, "unpack result")
	assert.Equal(t, `"1.0000 EOS"`, string(result), "result")

	_, err = c.UnpackActionResult("noresult", nil)
	assert.True(t, errors.Is(err, fault.UnknownAction), "no result type: %v", err)

	_, err = c.UnpackActionResult("getbalance", data[:2])
	assert.True(t, errors.Is(err, fault.Truncated), "truncated: %v", err)
}
